package buytrain

import (
	"railfounding/internal/app"
	"railfounding/internal/domain"
	"railfounding/internal/ports"
)

// SkipCoalAndOil keeps coal and oil companies out of train buying. Fuel-dependent trains
// are offered to a railroad only when Supplied reports a fuel source for it.
type SkipCoalAndOil struct {
	Supplied func(corp *domain.Corporation) bool
}

// SkipsStep implements ports.FuelCapability.
func (c SkipCoalAndOil) SkipsStep(corp *domain.Corporation) bool {
	return corp.Type == domain.CorporationCoal || corp.Type == domain.CorporationOil
}

// SkipsFuelTrains implements ports.FuelCapability.
func (c SkipCoalAndOil) SkipsFuelTrains(corp *domain.Corporation) bool {
	return c.SkipsStep(corp) || c.Supplied == nil || !c.Supplied(corp)
}

var _ ports.FuelCapability = SkipCoalAndOil{}

// Step is the variant purchase step. It filters what the wrapped Buyer offers by the
// fuel capability and, once a train is bought, discards its other configurations.
type Step struct {
	base Buyer
	fuel ports.FuelCapability
}

// New wraps base. A nil base buys from the game's depot; a nil fuel uses SkipCoalAndOil
// with no supplied railroads.
func New(game ports.Game, base Buyer, fuel ports.FuelCapability) *Step {
	if base == nil {
		base = NewBaseStep(game)
	}
	if fuel == nil {
		fuel = SkipCoalAndOil{}
	}
	return &Step{base: base, fuel: fuel}
}

// Actions implements Buyer.
func (s *Step) Actions(corp *domain.Corporation) []string {
	if corp == nil || s.fuel.SkipsStep(corp) {
		return nil
	}
	return s.base.Actions(corp)
}

// Purchasable implements Buyer.
func (s *Step) Purchasable(corp *domain.Corporation) []*domain.Train {
	trains := s.base.Purchasable(corp)
	if !s.fuel.SkipsFuelTrains(corp) {
		return trains
	}
	var out []*domain.Train
	for _, t := range trains {
		if !t.FuelDependent {
			out = append(out, t)
		}
	}
	return out
}

// ProcessBuyTrain implements Buyer.
func (s *Step) ProcessBuyTrain(action BuyTrainAction) ([]app.Event, error) {
	corp, train := action.Entity, action.Train
	if s.fuel.SkipsStep(corp) {
		return nil, app.Errorf(app.CodeStepSkipped, "%s does not buy trains", corp.Name)
	}
	if train != nil && train.FuelDependent && s.fuel.SkipsFuelTrains(corp) {
		return nil, app.Errorf(app.CodeTrainUnavailable, "%s cannot run the %s train", corp.Name, train.Name)
	}

	events, err := s.base.ProcessBuyTrain(action)
	if err != nil {
		return nil, err
	}

	train.RemoveVariants()
	return append(events, app.Event{
		Kind:    app.EventVariantsPruned,
		Payload: app.TrainPayload{CorporationID: corp.ID, TrainID: train.ID, Variant: train.Name},
	}), nil
}

var _ Buyer = (*Step)(nil)
