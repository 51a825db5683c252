// Package usa is the founding auction variant where city subsidies add to a bidder's
// power, the treasury is fixed at twice par and subsidy companies pay out or mark the
// home city when the corporation pars.
package usa

import (
	"fmt"
	"strconv"

	"railfounding/internal/app"
	"railfounding/internal/app/auction"
	"railfounding/internal/config"
	"railfounding/internal/domain"
	"railfounding/internal/ports"
)

// ParStep runs one corporation's founding cycle. It delegates the generic auction to an
// auction.Step and layers the variant's resolution and company effects around it.
type ParStep struct {
	game  ports.Game
	round *domain.Round
	cfg   config.VariantConfig
	rules *Rules
	base  *auction.Step
}

// New creates a step for players in seat order. round carries the transient auction
// context shared with the rest of the stock round.
func New(game ports.Game, round *domain.Round, cfg config.VariantConfig, players []*domain.Player) (*ParStep, error) {
	rules := NewRules(game, cfg, nil)
	base, err := auction.New(game, rules, cfg, players)
	if err != nil {
		return nil, err
	}
	return &ParStep{game: game, round: round, cfg: cfg, rules: rules, base: base}, nil
}

// Phase returns the current lifecycle phase.
func (s *ParStep) Phase() domain.Phase { return s.base.Phase() }

// CurrentEntity returns the player expected to act.
func (s *ParStep) CurrentEntity() *domain.Player { return s.base.CurrentEntity() }

// Auctioning returns the corporation under auction, or nil.
func (s *ParStep) Auctioning() *domain.Corporation { return s.base.Auctioning() }

// WinningBid returns the resolved bid, or nil.
func (s *ParStep) WinningBid() *auction.Bid { return s.base.WinningBid() }

// MaxBid is the entity's bidding power for corp including subsidies.
func (s *ParStep) MaxBid(entity *domain.Player, corp *domain.Corporation) int {
	return s.rules.MaxBid(entity, corp)
}

// MinBid is the lowest acceptable bid for corp.
func (s *ParStep) MinBid(corp *domain.Corporation) int { return s.base.MinBid(corp) }

// MaxCitySubsidy is the largest subsidy on the map.
func (s *ParStep) MaxCitySubsidy() int { return s.rules.MaxCitySubsidy() }

// ParPrice is the capped par price for a bid.
func (s *ParStep) ParPrice(bid int) int { return s.rules.ParPrice(bid) }

// AutoActions passes for an entity that can no longer reach the minimum bid.
func (s *ParStep) AutoActions(entity *domain.Player) []auction.Action {
	switch s.base.Phase() {
	case domain.PhaseAuctionOpen, domain.PhaseBidding:
	default:
		return nil
	}
	corp := s.base.Auctioning()
	if s.MaxBid(entity, corp) < s.MinBid(corp) {
		return []auction.Action{auction.PassAction{Entity: entity}}
	}
	return nil
}

// Process dispatches any action to its handler.
func (s *ParStep) Process(action auction.Action) ([]app.Event, error) {
	switch a := action.(type) {
	case auction.BidAction:
		return s.AddBid(a)
	case auction.PassAction:
		return s.Pass(a)
	case auction.AssignAction:
		return s.ProcessAssign(a)
	case auction.ChooseSizeAction:
		return s.ChooseSize(a)
	default:
		return nil, fmt.Errorf("usa: unsupported action %T", action)
	}
}

// AddBid places a bid. An opening bid beyond the bidder's raw bidding power records the
// shortfall on the round as the city subsidy the bid depends on.
func (s *ParStep) AddBid(action auction.BidAction) ([]app.Event, error) {
	opening := s.base.Auctioning() == nil
	shortfall := action.Price - domain.BiddingPower(action.Entity)

	events, err := s.base.AddBid(action)
	if err != nil {
		return nil, err
	}
	if opening && shortfall > 0 {
		s.round.NeededCitySubsidy = shortfall
	}
	return events, nil
}

// Pass removes the entity from the auction and resolves it when one bidder remains.
func (s *ParStep) Pass(action auction.PassAction) ([]app.Event, error) {
	events, winner, err := s.base.Pass(action)
	if err != nil || winner == nil {
		return events, err
	}
	more, err := s.WinBid(*winner)
	if err != nil {
		return events, err
	}
	return append(events, more...), nil
}

// WinBid resolves the auction. The corporation keeps exactly twice its par price and
// returns the rest to the bank; a cash subsidy is paid from the bank to the winner and
// closes.
func (s *ParStep) WinBid(winner auction.Bid) ([]app.Event, error) {
	events, err := s.base.WinBid(winner)
	if err != nil {
		return nil, err
	}

	corp := winner.Corporation
	bank := s.game.Bank()
	if extra := corp.Cash() - corp.SharePrice*2; extra > 0 {
		domain.Spend(corp, bank, extra)
		events = append(events, app.Event{
			Kind:    app.EventCashReturned,
			Payload: app.CashPayload{From: corp.ID, To: "bank", Amount: extra},
		})
	}

	if subsidy := CitySubsidy(corp); subsidy != nil {
		s.game.Log(fmt.Sprintf("Subsidy contributes %s", s.game.FormatCurrency(subsidy.Value)))
		domain.Spend(bank, winner.Entity, subsidy.Value)
		subsidy.Close()
		events = append(events, app.Event{
			Kind:    app.EventSubsidyPaid,
			Payload: app.CompanyPayload{CompanyID: subsidy.ID, CorporationID: corp.ID, Value: subsidy.Value},
		})
	}

	return s.maybePar(events)
}

// TransferSubsidyOwnership moves subsidy into to's portfolio.
func (s *ParStep) TransferSubsidyOwnership(to domain.CompanyOwner, subsidy *domain.Company) {
	domain.TransferCompany(to, subsidy)
}

// ClaimHomeSubsidies moves every subsidy lying on the corporation's home hex to the
// corporation. It is called once the home token is placed.
func (s *ParStep) ClaimHomeSubsidies(corp *domain.Corporation) []*domain.Company {
	hex := corp.HomeHex()
	if hex == nil {
		return nil
	}
	claimed := hex.Companies()
	for _, subsidy := range claimed {
		s.TransferSubsidyOwnership(corp, subsidy)
	}
	return claimed
}

// AvailableSubsidiaries lists the companies entity may still contribute: the winner's
// companies while the winner is acting, otherwise none. A nil entity means the current one.
func (s *ParStep) AvailableSubsidiaries(entity *domain.Player) []*domain.Company {
	if entity == nil {
		entity = s.CurrentEntity()
	}
	winning := s.base.WinningBid()
	if winning == nil || winning.Entity != entity || s.base.Phase() == domain.PhaseComplete {
		return nil
	}
	return entity.Companies()
}

// ProcessAssign contributes a company to the new corporation. The total value contributed
// may not exceed the winning bid. Free-train and metropolis grants apply immediately, and
// any deficit left in the treasury is covered by the bank before returning.
func (s *ParStep) ProcessAssign(action auction.AssignAction) ([]app.Event, error) {
	if err := s.base.ValidateAssign(action); err != nil {
		return nil, err
	}

	winning := s.base.WinningBid()
	corp := winning.Corporation
	company := action.Company
	current := domain.CompanyValue(corp.Companies())
	if current+company.Value > winning.Price {
		remaining := winning.Price - current
		return nil, app.Errorf(app.CodeContributionExceedsBid,
			"Total company contributions cannot exceed winning bid. %s remaining.", s.game.FormatCurrency(remaining)).
			WithMetadata("remaining", strconv.Itoa(remaining))
	}

	var events []app.Event
	switch company.Effect {
	case domain.EffectFreeTrainGrant:
		if corp.HasEffect(domain.EffectNoSubsidy) {
			evs, err := s.grantFreeTrain(corp, company)
			if err != nil {
				return nil, err
			}
			events = append(events, evs...)
		}
	case domain.EffectMetroUpgradeGrant:
		events = append(events, s.upgradeHome(corp, company)...)
	case domain.EffectPlain, domain.EffectNoSubsidy, domain.EffectFlatBonus, domain.EffectTieredBonus:
	}

	events = append(events, s.base.CommitAssign(action)...)

	if cash := corp.Cash(); cash < 0 {
		domain.Spend(s.game.Bank(), corp, -cash)
		events = append(events, app.Event{
			Kind:    app.EventDeficitCovered,
			Payload: app.CashPayload{From: "bank", To: corp.ID, Amount: -cash},
		})
	}

	return s.maybePar(events)
}

func (s *ParStep) grantFreeTrain(corp *domain.Corporation, company *domain.Company) ([]app.Event, error) {
	train := s.game.Depot().First()
	if train == nil {
		s.game.Log(fmt.Sprintf("No train is available for %s to grant", company.Name))
		return nil, nil
	}
	s.game.Log(fmt.Sprintf("%s immediately gets a free %s train and %s closes", corp.Name, train.Name, company.Name))
	if err := s.game.BuyTrain(corp, train, 0); err != nil {
		return nil, fmt.Errorf("grant free train: %w", err)
	}
	company.Close()
	return []app.Event{
		{
			Kind:    app.EventFreeTrainGranted,
			Payload: app.TrainPayload{CorporationID: corp.ID, TrainID: train.ID, Variant: train.Name},
		},
		{
			Kind:    app.EventCompanyClosed,
			Payload: app.CompanyPayload{CompanyID: company.ID, CorporationID: corp.ID, Value: company.Value},
		},
	}, nil
}

func (s *ParStep) upgradeHome(corp *domain.Corporation, company *domain.Company) []app.Event {
	hex := corp.HomeHex()
	if hex == nil ||
		!domain.ContainsHex(s.game.PotentialMetropolitanHexes(), hex) ||
		domain.ContainsHex(s.game.ActiveMetropolitanHexes(), hex) {
		return nil
	}
	s.game.Log(fmt.Sprintf("%s turns %s into a metropolis", company.Name, hex.LocationName))
	s.game.ConvertPotentialMetro(hex)
	s.game.ClearGraph()
	return []app.Event{{
		Kind:    app.EventMetroConverted,
		Payload: app.MetroConvertedPayload{HexID: hex.ID},
	}}
}

// ChooseSize records the share count and pars the corporation.
func (s *ParStep) ChooseSize(action auction.ChooseSizeAction) ([]app.Event, error) {
	events, err := s.base.ChooseSize(action)
	if err != nil {
		return nil, err
	}
	more, err := s.ParCorporation()
	if err != nil {
		return events, err
	}
	return append(events, more...), nil
}

// ParCorporation resolves the corporation's marker companies, queues the metropolitan
// track request for the conversion hex and completes founding. It does nothing until a
// corporation size has been chosen.
func (s *ParStep) ParCorporation() ([]app.Event, error) {
	switch s.base.Phase() {
	case domain.PhaseResolved, domain.PhaseAssigning, domain.PhaseParring:
	default:
		return nil, app.ErrWrongPhase
	}
	if s.base.CorporationSize() == 0 {
		return nil, nil
	}
	if err := s.base.ValidatePar(); err != nil {
		return nil, err
	}
	corp := s.base.WinningBid().Corporation

	var events []app.Event
	for _, c := range corp.Companies() {
		switch c.Effect {
		case domain.EffectNoSubsidy:
			c.Close()
			events = append(events, closedEvent(corp, c))
		case domain.EffectFlatBonus:
			events = append(events, s.placeMarker(corp, c, domain.IconPlusTen)...)
		case domain.EffectTieredBonus:
			events = append(events, s.placeMarker(corp, c, domain.IconPlusTenTwenty)...)
		case domain.EffectPlain, domain.EffectFreeTrainGrant, domain.EffectMetroUpgradeGrant:
		}
	}

	if hex := corp.HomeHex(); hex != nil && hex.ID == s.cfg.MetroConversionHex && s.game.MetroDenver() {
		request := domain.NewPendingTrack(corp, hex)
		s.round.PendingTracks = append(s.round.PendingTracks, request)
		events = append(events, app.Event{
			Kind:    app.EventTrackQueued,
			Payload: app.TrackQueuedPayload{Request: request},
		})
	}

	more, err := s.base.ParCorporation()
	if err != nil {
		return nil, err
	}
	return append(events, more...), nil
}

func (s *ParStep) placeMarker(corp *domain.Corporation, c *domain.Company, icon string) []app.Event {
	var events []app.Event
	if hex := corp.HomeHex(); hex != nil {
		hex.Tile.AddIcon(domain.Icon{Name: icon, Sticky: true})
		events = append(events, app.Event{
			Kind:    app.EventMarkerPlaced,
			Payload: app.MarkerPlacedPayload{HexID: hex.ID, Icon: icon},
		})
	}
	c.Close()
	return append(events, closedEvent(corp, c))
}

func closedEvent(corp *domain.Corporation, c *domain.Company) app.Event {
	return app.Event{
		Kind:    app.EventCompanyClosed,
		Payload: app.CompanyPayload{CompanyID: c.ID, CorporationID: corp.ID, Value: c.Value},
	}
}

// maybePar finishes founding once the size is known and the winner has nothing left to
// contribute and owes nothing.
func (s *ParStep) maybePar(events []app.Event) ([]app.Event, error) {
	winner := s.base.WinningBid().Entity
	if s.base.CorporationSize() == 0 || winner.Cash() < 0 || len(s.AvailableSubsidiaries(winner)) > 0 {
		return events, nil
	}
	more, err := s.ParCorporation()
	if err != nil {
		return events, err
	}
	return append(events, more...), nil
}
