// Package buytrain implements the train purchase step: a corporation buys a train from the
// depot, optionally choosing one of its configurations.
package buytrain

import (
	"fmt"

	"railfounding/internal/app"
	"railfounding/internal/domain"
	"railfounding/internal/ports"
)

// Action names reported by Actions.
const (
	ActionBuyTrain = "buy_train"
	ActionPass     = "pass"
)

// BuyTrainAction buys Train for Entity at list price. Variant selects a configuration;
// empty keeps the current one. Free grants go through ports.Game.BuyTrain instead.
type BuyTrainAction struct {
	Entity  *domain.Corporation
	Train   *domain.Train
	Variant string
}

// Buyer is a train purchase step.
type Buyer interface {
	// Actions lists the actions corp may take, none when the step does not apply.
	Actions(corp *domain.Corporation) []string
	// Purchasable lists the depot trains offered to corp.
	Purchasable(corp *domain.Corporation) []*domain.Train
	ProcessBuyTrain(action BuyTrainAction) ([]app.Event, error)
}

// BaseStep buys trains straight from the depot.
type BaseStep struct {
	game ports.Game
}

// NewBaseStep creates the generic purchase step.
func NewBaseStep(game ports.Game) *BaseStep {
	return &BaseStep{game: game}
}

// Actions implements Buyer.
func (s *BaseStep) Actions(corp *domain.Corporation) []string {
	if corp == nil || s.game.Depot().First() == nil {
		return nil
	}
	return []string{ActionBuyTrain, ActionPass}
}

// Purchasable implements Buyer.
func (s *BaseStep) Purchasable(*domain.Corporation) []*domain.Train {
	return s.game.Depot().Trains()
}

// ProcessBuyTrain validates the purchase, pays the bank and moves the train to the
// corporation. Nothing changes when validation fails.
func (s *BaseStep) ProcessBuyTrain(action BuyTrainAction) ([]app.Event, error) {
	corp, train := action.Entity, action.Train
	if train == nil || !s.game.Depot().Contains(train) {
		return nil, app.ErrTrainUnavailable
	}

	name, price := train.Name, train.Price
	if action.Variant != "" && action.Variant != train.Name {
		v, ok := train.Variant(action.Variant)
		if !ok {
			return nil, app.Errorf(app.CodeUnknownVariant, "%s is not a configuration of the %s train", action.Variant, train.Name)
		}
		name, price = v.Name, v.Price
	}
	if corp.Cash() < price {
		return nil, app.Errorf(app.CodeInsufficientCash, "%s cannot afford a %s train for %s",
			corp.Name, name, s.game.FormatCurrency(price))
	}

	if err := train.SelectVariant(name); err != nil {
		return nil, err
	}
	if err := s.game.BuyTrain(corp, train, price); err != nil {
		return nil, fmt.Errorf("buy train: %w", err)
	}

	s.game.Log(fmt.Sprintf("%s buys a %s train for %s", corp.Name, train.Name, s.game.FormatCurrency(price)))
	return []app.Event{{
		Kind: app.EventTrainBought,
		Payload: app.TrainPayload{
			CorporationID: corp.ID,
			TrainID:       train.ID,
			Variant:       train.Name,
			Price:         price,
		},
	}}, nil
}

var _ Buyer = (*BaseStep)(nil)
