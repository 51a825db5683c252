package auction

import "railfounding/internal/domain"

// Action is a player decision submitted to the step.
type Action interface {
	Actor() *domain.Player
}

// Bid is an offer for a corporation's founding lot.
type Bid struct {
	Entity      *domain.Player
	Corporation *domain.Corporation
	Price       int
}

// BidAction opens or raises an auction.
type BidAction struct {
	Entity      *domain.Player
	Corporation *domain.Corporation
	Price       int
}

// PassAction declines to bid.
type PassAction struct {
	Entity *domain.Player
}

// AssignAction contributes one of the winner's companies to the new corporation.
type AssignAction struct {
	Entity  *domain.Player
	Company *domain.Company
}

// ChooseSizeAction picks the number of shares the corporation is founded with.
type ChooseSizeAction struct {
	Entity *domain.Player
	Size   int
}

func (a BidAction) Actor() *domain.Player        { return a.Entity }
func (a PassAction) Actor() *domain.Player       { return a.Entity }
func (a AssignAction) Actor() *domain.Player     { return a.Entity }
func (a ChooseSizeAction) Actor() *domain.Player { return a.Entity }
