package buytrain

import (
	"errors"
	"testing"

	"railfounding/internal/app"
	"railfounding/internal/app/session"
	"railfounding/internal/config"
	"railfounding/internal/domain"
	"railfounding/internal/gamedata"
)

const testCatalog = `
bank_cash: 2000
corporations:
  - {id: UP, name: Union Pacific}
  - {id: CC, name: Colorado Coal, type: coal}
  - {id: WO, name: Wyoming Oil, type: oil}
trains:
  - name: "4"
    price: 400
    count: 1
    variants:
      - {name: "4", price: 400}
      - {name: "4+", price: 440}
      - {name: "3+3", price: 460}
  - {name: "P", price: 120, count: 1, fuel_dependent: true}
  - {name: "2", price: 100, count: 1}
`

func newGame(t *testing.T) *session.Game {
	t.Helper()
	catalog, err := gamedata.Parse([]byte(testCatalog))
	if err != nil {
		t.Fatalf("parse catalog: %v", err)
	}
	g := session.New(catalog.Build(), config.Defaults())
	for _, corp := range g.World.Corporations {
		domain.Spend(g.Bank(), corp, 500)
	}
	return g
}

func TestProcessBuyTrainPrunesVariants(t *testing.T) {
	g := newGame(t)
	corp := g.World.Corporations["UP"]
	step := New(g, nil, nil)
	train := g.Depot().First()

	evs, err := step.ProcessBuyTrain(BuyTrainAction{Entity: corp, Train: train, Variant: "4+"})
	if err != nil {
		t.Fatalf("ProcessBuyTrain error: %v", err)
	}

	if train.Name != "4+" || train.Price != 440 {
		t.Fatalf("train = %s at %d, want 4+ at 440", train.Name, train.Price)
	}
	if len(train.Variants) != 1 || train.Variants[0].Name != "4+" {
		t.Fatalf("variants = %+v, want only 4+", train.Variants)
	}
	if alt := train.Alternates(); len(alt) != 0 {
		t.Fatalf("alternates = %+v, want none", alt)
	}
	if corp.Cash() != 60 || g.Bank().Cash() != 940 {
		t.Fatalf("corp %d bank %d, want 60 and 940", corp.Cash(), g.Bank().Cash())
	}
	if train.Owner != corp || g.Depot().Contains(train) {
		t.Fatalf("train not moved to corporation")
	}
	if len(evs) != 2 || evs[0].Kind != app.EventTrainBought || evs[1].Kind != app.EventVariantsPruned {
		t.Fatalf("events = %+v", evs)
	}
}

func TestProcessBuyTrainRejections(t *testing.T) {
	g := newGame(t)
	up := g.World.Corporations["UP"]
	head := g.Depot().First()
	fuel := g.Depot().Trains()[1]
	step := New(g, nil, nil)

	tests := []struct {
		name   string
		action BuyTrainAction
		want   error
	}{
		{name: "coal company", action: BuyTrainAction{Entity: g.World.Corporations["CC"], Train: head}, want: app.ErrStepSkipped},
		{name: "unknown variant", action: BuyTrainAction{Entity: up, Train: head, Variant: "5"}, want: app.ErrUnknownVariant},
		{name: "fuel train without supply", action: BuyTrainAction{Entity: up, Train: fuel}, want: app.ErrTrainUnavailable},
		{name: "not in depot", action: BuyTrainAction{Entity: up, Train: &domain.Train{ID: "x"}}, want: app.ErrTrainUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := step.ProcessBuyTrain(tt.action); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if len(head.Variants) != 3 || head.Name != "4" {
				t.Fatalf("rejected purchase changed the train")
			}
			if len(g.Depot().Trains()) != 3 {
				t.Fatalf("rejected purchase changed the depot")
			}
		})
	}
}

func TestProcessBuyTrainInsufficientCash(t *testing.T) {
	g := newGame(t)
	up := g.World.Corporations["UP"]
	step := New(g, nil, nil)

	_, err := step.ProcessBuyTrain(BuyTrainAction{Entity: up, Train: g.Depot().First(), Variant: "3+3"})
	if err != nil {
		t.Fatalf("first purchase error: %v", err)
	}
	_, err = step.ProcessBuyTrain(BuyTrainAction{Entity: up, Train: g.Depot().Trains()[1]})
	if !errors.Is(err, app.ErrInsufficientCash) {
		t.Fatalf("err = %v, want ErrInsufficientCash", err)
	}
	if up.Cash() != 40 || len(up.Trains) != 1 || !g.Depot().Contains(g.Depot().Trains()[1]) {
		t.Fatalf("rejected purchase changed state: cash %d trains %d", up.Cash(), len(up.Trains))
	}
}

func TestProcessBuyTrainAlwaysCharges(t *testing.T) {
	g := newGame(t)
	up := g.World.Corporations["UP"]
	bank := g.Bank().Cash()
	step := New(g, nil, nil)

	if _, err := step.ProcessBuyTrain(BuyTrainAction{Entity: up, Train: g.Depot().First()}); err != nil {
		t.Fatalf("ProcessBuyTrain error: %v", err)
	}
	if up.Cash() != 100 || g.Bank().Cash() != bank+400 {
		t.Fatalf("corp %d bank %d, want 100 and %d", up.Cash(), g.Bank().Cash(), bank+400)
	}
}

func TestActionsAndPurchasable(t *testing.T) {
	g := newGame(t)
	up := g.World.Corporations["UP"]
	supplied := SkipCoalAndOil{Supplied: func(c *domain.Corporation) bool { return c == up }}

	plain := New(g, nil, nil)
	if got := plain.Actions(g.World.Corporations["WO"]); got != nil {
		t.Fatalf("oil company actions = %v, want none", got)
	}
	if got := plain.Actions(up); len(got) != 2 || got[0] != ActionBuyTrain {
		t.Fatalf("railroad actions = %v", got)
	}
	if got := plain.Purchasable(up); len(got) != 2 {
		t.Fatalf("purchasable without supply = %d, want 2", len(got))
	}

	fueled := New(g, nil, supplied)
	if got := fueled.Purchasable(up); len(got) != 3 {
		t.Fatalf("purchasable with supply = %d, want 3", len(got))
	}
	fuel := g.Depot().Trains()[1]
	if _, err := fueled.ProcessBuyTrain(BuyTrainAction{Entity: up, Train: fuel}); err != nil {
		t.Fatalf("fuel train purchase error: %v", err)
	}
	if len(fuel.Variants) != 1 || fuel.Variants[0].Name != "P" {
		t.Fatalf("variants = %+v, want the bought configuration", fuel.Variants)
	}
}

func TestBaseStepKeepsVariants(t *testing.T) {
	g := newGame(t)
	base := NewBaseStep(g)
	train := g.Depot().First()

	if _, err := base.ProcessBuyTrain(BuyTrainAction{Entity: g.World.Corporations["CC"], Train: train}); err != nil {
		t.Fatalf("ProcessBuyTrain error: %v", err)
	}
	if len(train.Variants) != 3 {
		t.Fatalf("base step pruned variants: %+v", train.Variants)
	}
}
