package auction

import (
	"strconv"

	"railfounding/internal/app"
	"railfounding/internal/config"
	"railfounding/internal/domain"
	"railfounding/internal/ports"
)

// Rules is the bidding and parring arithmetic a variant may replace. The Step calls
// these instead of hard-coding them so a variant can decorate the defaults.
type Rules interface {
	// MaxBid is the most entity may bid for corp; corp may be nil before one is chosen.
	MaxBid(entity *domain.Player, corp *domain.Corporation) int
	MinIncrement() int
	// MustBidIncrementMultiple requires every bid to be a multiple of MinIncrement.
	MustBidIncrementMultiple() bool
	ValidateBid(entity *domain.Player, corp *domain.Corporation, price int) error
	ParPrice(bid int) int
	// ContributionCanExceedCorporationCash lets a contributed company's value exceed
	// the corporation's treasury.
	ContributionCanExceedCorporationCash() bool
}

// DefaultRules is the generic founding auction: bidding power is cash plus company
// value, bids move in multiples of the base increment and par is half the bid.
type DefaultRules struct {
	Game   ports.Game
	Config config.VariantConfig
}

// MaxBid implements Rules.
func (r DefaultRules) MaxBid(entity *domain.Player, _ *domain.Corporation) int {
	return min(domain.BiddingPower(entity), r.Config.MaxBid)
}

// MinIncrement implements Rules.
func (r DefaultRules) MinIncrement() int {
	return r.Config.BaseMinIncrement
}

// MustBidIncrementMultiple implements Rules.
func (r DefaultRules) MustBidIncrementMultiple() bool {
	return true
}

// ValidateBid implements Rules.
func (r DefaultRules) ValidateBid(entity *domain.Player, corp *domain.Corporation, price int) error {
	maxBid := r.MaxBid(entity, corp)
	if price > maxBid {
		return app.Errorf(app.CodeBidTooHigh, "Cannot afford bid, maximum bidding power is %s", r.Game.FormatCurrency(maxBid)).
			WithMetadata("max_bid", strconv.Itoa(maxBid))
	}
	return nil
}

// ParPrice implements Rules.
func (r DefaultRules) ParPrice(bid int) int {
	return bid / 2
}

// ContributionCanExceedCorporationCash implements Rules.
func (r DefaultRules) ContributionCanExceedCorporationCash() bool {
	return false
}

var _ Rules = DefaultRules{}
