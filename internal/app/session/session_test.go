package session

import (
	"testing"

	"railfounding/internal/config"
	"railfounding/internal/domain"
	"railfounding/internal/gamedata"
)

const testCatalog = `
bank_cash: 1000
corporations:
  - {id: UP, name: Union Pacific}
hexes:
  - {id: E11, location: Denver, tile: city, potential_metro: true}
  - {id: D20, location: Chicago, tile: city, metro: true}
trains:
  - {name: "2", price: 100, count: 2}
`

func newGame(t *testing.T) *Game {
	t.Helper()
	catalog, err := gamedata.Parse([]byte(testCatalog))
	if err != nil {
		t.Fatalf("parse catalog: %v", err)
	}
	return New(catalog.Build(), config.Defaults(), domain.NewPlayer("p1", "Alice", 300))
}

func TestBuyTrainMovesTrainAndCash(t *testing.T) {
	g := newGame(t)
	corp := g.World.Corporations["UP"]
	domain.Spend(g.Bank(), corp, 150)
	train := g.Depot().First()
	total := g.TotalCash()

	if err := g.BuyTrain(corp, train, 100); err != nil {
		t.Fatalf("BuyTrain error: %v", err)
	}
	if corp.Cash() != 50 || g.Bank().Cash() != 950 {
		t.Fatalf("corp %d bank %d, want 50 and 950", corp.Cash(), g.Bank().Cash())
	}
	if train.Owner != corp || len(corp.Trains) != 1 {
		t.Fatalf("train not owned by corporation")
	}
	if g.Depot().Contains(train) {
		t.Fatalf("train still in depot")
	}
	if err := g.BuyTrain(corp, train, 0); err == nil {
		t.Fatalf("buying a train twice should fail")
	}
	if got := g.TotalCash(); got != total {
		t.Fatalf("total cash = %d, want %d", got, total)
	}
}

func TestConvertPotentialMetro(t *testing.T) {
	g := newGame(t)
	denver := g.World.Hexes["E11"]

	g.ConvertPotentialMetro(denver)
	g.ConvertPotentialMetro(denver)

	if len(g.PotentialMetropolitanHexes()) != 0 {
		t.Fatalf("potential metros = %d, want 0", len(g.PotentialMetropolitanHexes()))
	}
	if got := len(g.ActiveMetropolitanHexes()); got != 2 {
		t.Fatalf("active metros = %d, want 2", got)
	}
	if denver.Tile.Name != "metropolis" {
		t.Fatalf("tile = %q, want metropolis", denver.Tile.Name)
	}
	if len(g.World.PotentialMetro) != 1 {
		t.Fatalf("conversion must not change the built world")
	}
}

func TestLogSinkAndCurrency(t *testing.T) {
	g := newGame(t)
	var mirrored []string
	g.SetLogSink(func(line string) { mirrored = append(mirrored, line) })

	g.Log("Alice passes")
	g.ClearGraph()

	if len(g.Lines()) != 1 || len(mirrored) != 1 || mirrored[0] != "Alice passes" {
		t.Fatalf("lines %v mirrored %v", g.Lines(), mirrored)
	}
	if g.GraphVersion() != 1 {
		t.Fatalf("graph version = %d, want 1", g.GraphVersion())
	}
	if got := g.FormatCurrency(1234); got != "$1,234" {
		t.Fatalf("FormatCurrency = %q, want $1,234", got)
	}
}
