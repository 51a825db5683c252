package usa

import (
	"strconv"

	"railfounding/internal/app"
	"railfounding/internal/app/auction"
	"railfounding/internal/config"
	"railfounding/internal/domain"
	"railfounding/internal/ports"
)

// Rules decorates the generic auction arithmetic: subsidies count toward bidding power,
// bids move by a single dollar and par is capped.
type Rules struct {
	base auction.Rules
	game ports.Game
	cfg  config.VariantConfig
}

// NewRules wraps base. A nil base uses auction.DefaultRules.
func NewRules(game ports.Game, cfg config.VariantConfig, base auction.Rules) *Rules {
	if base == nil {
		base = auction.DefaultRules{Game: game, Config: cfg}
	}
	return &Rules{base: base, game: game, cfg: cfg}
}

// MaxBid adds the subsidy the corporation will bring: its own city subsidy once the home
// token is placed, otherwise the largest subsidy on the map.
func (r *Rules) MaxBid(entity *domain.Player, corp *domain.Corporation) int {
	return r.base.MaxBid(entity, corp) + r.subsidyAllowance(corp)
}

func (r *Rules) subsidyAllowance(corp *domain.Corporation) int {
	if corp == nil || corp.HomeHex() == nil {
		return r.MaxCitySubsidy()
	}
	if subsidy := CitySubsidy(corp); subsidy != nil {
		return subsidy.Value
	}
	return 0
}

// MaxCitySubsidy is the largest subsidy value on the map, 0 if there are none.
func (r *Rules) MaxCitySubsidy() int {
	best := 0
	for _, s := range r.game.SubsidiesByHex() {
		best = max(best, s.Value)
	}
	return best
}

// MinIncrement implements auction.Rules.
func (r *Rules) MinIncrement() int {
	return r.cfg.MinIncrement
}

// MustBidIncrementMultiple implements auction.Rules.
func (r *Rules) MustBidIncrementMultiple() bool {
	return false
}

// ValidateBid rejects bids above MaxBid.
func (r *Rules) ValidateBid(entity *domain.Player, corp *domain.Corporation, price int) error {
	maxBid := r.MaxBid(entity, corp)
	if price > maxBid {
		return app.Errorf(app.CodeBidTooHigh, "Invalid bid, maximum bidding power is %s", r.game.FormatCurrency(maxBid)).
			WithMetadata("max_bid", strconv.Itoa(maxBid))
	}
	return nil
}

// ParPrice caps the generic par price.
func (r *Rules) ParPrice(bid int) int {
	return min(r.base.ParPrice(bid), r.cfg.MaxParPrice)
}

// ContributionCanExceedCorporationCash implements auction.Rules. The bank covers any
// resulting deficit at the end of the assignment.
func (r *Rules) ContributionCanExceedCorporationCash() bool {
	return true
}

// CitySubsidy returns the corporation's cash subsidy, the only company it may hold with a
// positive value before founding.
func CitySubsidy(corp *domain.Corporation) *domain.Company {
	for _, c := range corp.Companies() {
		if c.Value > 0 {
			return c
		}
	}
	return nil
}

var _ auction.Rules = (*Rules)(nil)
