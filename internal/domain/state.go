package domain

import "github.com/google/uuid"

// Phase represents the lifecycle stage of a founding auction.
type Phase string

const (
	// PhaseIdle indicates no bid has been placed yet.
	PhaseIdle Phase = "idle"
	// PhaseAuctionOpen indicates an opening bid was placed on a corporation.
	PhaseAuctionOpen Phase = "auction_open"
	// PhaseBidding indicates at least one raise or pass followed the opening bid.
	PhaseBidding Phase = "bidding"
	// PhaseResolved indicates the winning bid has been applied.
	PhaseResolved Phase = "resolved"
	// PhaseAssigning indicates the winner is contributing companies.
	PhaseAssigning Phase = "assigning"
	// PhaseParring indicates the corporation size was chosen and par setup is running.
	PhaseParring Phase = "parring"
	// PhaseComplete indicates the cycle finished; the step accepts no more actions.
	PhaseComplete Phase = "complete"
)

// PendingTrack is a deferred track placement request handled after the current step.
type PendingTrack struct {
	ID     string
	Entity *Corporation
	Hexes  []*Hex
}

// NewPendingTrack builds a request with a fresh identifier.
func NewPendingTrack(entity *Corporation, hexes ...*Hex) PendingTrack {
	return PendingTrack{
		ID:     uuid.NewString(),
		Entity: entity,
		Hexes:  hexes,
	}
}

// Round holds the transient context shared by the steps of one stock round.
type Round struct {
	// NeededCitySubsidy is the amount an opening bid exceeded the bidder's raw bidding power.
	NeededCitySubsidy int
	// PendingTracks is consumed by the track step once the founding completes.
	PendingTracks []PendingTrack
}

// Reset clears the round context between rounds.
func (r *Round) Reset() {
	r.NeededCitySubsidy = 0
	r.PendingTracks = nil
}
