// Package auction implements the generic founding auction: a player opens bidding on a
// corporation, the others raise or pass, the winner pays for the founding lot,
// contributes companies, chooses a size and the corporation pars.
package auction

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"railfounding/internal/app"
	"railfounding/internal/config"
	"railfounding/internal/domain"
	"railfounding/internal/ports"
)

// ErrTooFewPlayers is returned when a step is created without players.
var ErrTooFewPlayers = errors.New("auction needs at least one player")

// Step holds the state of one founding cycle. It does not resolve a finished auction
// on its own: Pass returns the winning bid and the caller applies it with WinBid, so a
// variant wrapping the Step runs its own resolution.
type Step struct {
	game  ports.Game
	rules Rules
	cfg   config.VariantConfig

	players []*domain.Player
	turn    int
	passes  int

	phase      domain.Phase
	auctioning *domain.Corporation
	bidders    []*domain.Player
	highest    *Bid
	winningBid *Bid
	size       int
}

// New creates a step in the idle phase. players are in seat order; the first acts first.
func New(game ports.Game, rules Rules, cfg config.VariantConfig, players []*domain.Player) (*Step, error) {
	if len(players) == 0 {
		return nil, ErrTooFewPlayers
	}
	if rules == nil {
		rules = DefaultRules{Game: game, Config: cfg}
	}
	return &Step{
		game:    game,
		rules:   rules,
		cfg:     cfg,
		players: slices.Clone(players),
		phase:   domain.PhaseIdle,
	}, nil
}

// Phase returns the current lifecycle phase.
func (s *Step) Phase() domain.Phase { return s.phase }

// Auctioning returns the corporation under auction, or nil.
func (s *Step) Auctioning() *domain.Corporation { return s.auctioning }

// HighestBid returns the current high bid, or nil.
func (s *Step) HighestBid() *Bid { return s.highest }

// WinningBid returns the resolved bid, or nil before resolution.
func (s *Step) WinningBid() *Bid { return s.winningBid }

// CorporationSize returns the chosen share count, 0 while undecided.
func (s *Step) CorporationSize() int { return s.size }

// Bidders returns the players still in the auction.
func (s *Step) Bidders() []*domain.Player { return slices.Clone(s.bidders) }

// CurrentEntity returns the player expected to act.
func (s *Step) CurrentEntity() *domain.Player {
	switch s.phase {
	case domain.PhaseAuctionOpen, domain.PhaseBidding:
		return s.bidders[s.turn]
	case domain.PhaseResolved, domain.PhaseAssigning, domain.PhaseParring:
		return s.winningBid.Entity
	case domain.PhaseIdle:
		return s.players[s.turn]
	default:
		return nil
	}
}

// MinBid is the lowest acceptable bid for corp.
func (s *Step) MinBid(corp *domain.Corporation) int {
	if s.highest != nil && s.auctioning == corp {
		return s.highest.Price + s.rules.MinIncrement()
	}
	return s.cfg.MinBid
}

// AutoActions returns the actions taken on entity's behalf. The generic auction has none.
func (s *Step) AutoActions(*domain.Player) []Action {
	return nil
}

// AddBid opens an auction on the corporation or raises the current one.
func (s *Step) AddBid(action BidAction) ([]app.Event, error) {
	if err := s.validateBid(action); err != nil {
		return nil, err
	}

	opening := s.auctioning == nil
	if opening {
		s.auctioning = action.Corporation
		s.bidders = rotate(s.players, slices.Index(s.players, action.Entity))
		s.phase = domain.PhaseAuctionOpen
	} else {
		s.phase = domain.PhaseBidding
	}
	s.passes = 0
	s.highest = &Bid{Entity: action.Entity, Corporation: action.Corporation, Price: action.Price}
	s.turn = (slices.Index(s.bidders, action.Entity) + 1) % len(s.bidders)

	s.game.Log(fmt.Sprintf("%s bids %s for %s", action.Entity.Name, s.game.FormatCurrency(action.Price), action.Corporation.Name))
	return []app.Event{{
		Kind: app.EventBidPlaced,
		Payload: app.BidPlacedPayload{
			PlayerID:      action.Entity.ID,
			CorporationID: action.Corporation.ID,
			Price:         action.Price,
		},
	}}, nil
}

func (s *Step) validateBid(action BidAction) error {
	switch s.phase {
	case domain.PhaseIdle:
	case domain.PhaseAuctionOpen, domain.PhaseBidding:
		if action.Corporation != s.auctioning {
			return app.Errorf(app.CodeWrongPhase, "%s is already being auctioned", s.auctioning.Name)
		}
	default:
		return app.ErrWrongPhase
	}
	if action.Entity != s.CurrentEntity() {
		return app.Errorf(app.CodeNotBidder, "It is not %s's turn to bid", action.Entity.Name)
	}

	minBid := s.MinBid(action.Corporation)
	if action.Price < minBid {
		return app.Errorf(app.CodeBidTooLow, "Minimum bid is %s", s.game.FormatCurrency(minBid)).
			WithMetadata("min_bid", strconv.Itoa(minBid))
	}
	if inc := s.rules.MinIncrement(); s.rules.MustBidIncrementMultiple() && inc > 0 && action.Price%inc != 0 {
		return app.Errorf(app.CodeBadIncrement, "Bids must be a multiple of %s", s.game.FormatCurrency(inc))
	}
	return s.rules.ValidateBid(action.Entity, action.Corporation, action.Price)
}

// Pass removes the entity from the auction, or declines to open one. When only the high
// bidder remains the winning bid is returned and must be applied with WinBid.
func (s *Step) Pass(action PassAction) ([]app.Event, *Bid, error) {
	switch s.phase {
	case domain.PhaseIdle, domain.PhaseAuctionOpen, domain.PhaseBidding:
	default:
		return nil, nil, app.ErrWrongPhase
	}
	if action.Entity != s.CurrentEntity() {
		return nil, nil, app.Errorf(app.CodeNotBidder, "It is not %s's turn", action.Entity.Name)
	}

	s.game.Log(fmt.Sprintf("%s passes", action.Entity.Name))
	events := []app.Event{{
		Kind:    app.EventBidderPassed,
		Payload: app.BidderPassedPayload{PlayerID: action.Entity.ID},
	}}

	if s.phase == domain.PhaseIdle {
		s.passes++
		s.turn = (s.turn + 1) % len(s.players)
		if s.passes == len(s.players) {
			s.phase = domain.PhaseComplete
		}
		return events, nil, nil
	}

	// The high bidder only holds the turn when nobody else is left, so its pass ends the auction.
	if action.Entity == s.highest.Entity {
		return events, s.closeBidding(), nil
	}

	idx := slices.Index(s.bidders, action.Entity)
	s.bidders = slices.Delete(s.bidders, idx, idx+1)
	s.phase = domain.PhaseBidding
	if len(s.bidders) <= 1 {
		return events, s.closeBidding(), nil
	}
	s.turn = idx % len(s.bidders)
	return events, nil, nil
}

func (s *Step) closeBidding() *Bid {
	s.bidders = []*domain.Player{s.highest.Entity}
	s.turn = 0
	winner := *s.highest
	return &winner
}

// WinBid applies the winning bid: the winner pays the price into the corporation's
// treasury, becomes president and the share price is set from the bid.
func (s *Step) WinBid(winner Bid) ([]app.Event, error) {
	switch s.phase {
	case domain.PhaseAuctionOpen, domain.PhaseBidding:
	default:
		return nil, app.ErrWrongPhase
	}

	corp := winner.Corporation
	s.winningBid = &winner
	s.bidders = []*domain.Player{winner.Entity}
	s.turn = 0
	corp.SharePrice = s.rules.ParPrice(winner.Price)
	corp.President = winner.Entity
	// The winner may go negative here; contributed companies refund it.
	domain.Spend(winner.Entity, corp, winner.Price)
	s.phase = domain.PhaseResolved

	if len(s.cfg.CorporationSizes) == 1 {
		s.size = s.cfg.CorporationSizes[0]
		corp.Size = s.size
	}

	s.game.Log(fmt.Sprintf("%s wins bid on %s for %s", winner.Entity.Name, corp.Name, s.game.FormatCurrency(winner.Price)))
	return []app.Event{{
		Kind: app.EventAuctionWon,
		Payload: app.AuctionWonPayload{
			PlayerID:      winner.Entity.ID,
			CorporationID: corp.ID,
			Price:         winner.Price,
			SharePrice:    corp.SharePrice,
		},
	}}, nil
}

// ValidateAssign checks an assignment without changing state.
func (s *Step) ValidateAssign(action AssignAction) error {
	switch s.phase {
	case domain.PhaseResolved, domain.PhaseAssigning:
	default:
		return app.ErrWrongPhase
	}
	if action.Entity != s.winningBid.Entity {
		return app.Errorf(app.CodeNotWinner, "%s did not win %s", action.Entity.Name, s.winningBid.Corporation.Name)
	}
	company := action.Company
	if company == nil || company.Closed() || !company.OwnedBy(action.Entity) {
		return app.ErrCompanyNotOwned
	}
	corp := s.winningBid.Corporation
	if !s.rules.ContributionCanExceedCorporationCash() && company.Value > corp.Cash() {
		return app.Errorf(app.CodeContributionExceedsCash, "%s cannot exceed %s treasury of %s",
			company.Name, corp.Name, s.game.FormatCurrency(corp.Cash()))
	}
	return nil
}

// CommitAssign applies a validated assignment: the corporation pays the company's value to
// the contributing player and takes the company. A company closed by a one-shot effect
// still pays out but stays closed.
func (s *Step) CommitAssign(action AssignAction) []app.Event {
	company := action.Company
	corp := s.winningBid.Corporation

	s.game.Log(fmt.Sprintf("%s used for forming %s contributing %s value",
		company.Name, corp.Name, s.game.FormatCurrency(company.Value)))
	if !company.Closed() {
		domain.TransferCompany(corp, company)
	}
	domain.Spend(corp, action.Entity, company.Value)
	s.phase = domain.PhaseAssigning

	return []app.Event{{
		Kind:    app.EventCompanyAssigned,
		Payload: app.CompanyPayload{CompanyID: company.ID, CorporationID: corp.ID, Value: company.Value},
	}}
}

// ProcessAssign validates and applies an assignment.
func (s *Step) ProcessAssign(action AssignAction) ([]app.Event, error) {
	if err := s.ValidateAssign(action); err != nil {
		return nil, err
	}
	return s.CommitAssign(action), nil
}

// ChooseSize records the corporation's share count and ends the assignment window.
func (s *Step) ChooseSize(action ChooseSizeAction) ([]app.Event, error) {
	switch s.phase {
	case domain.PhaseResolved, domain.PhaseAssigning:
	default:
		return nil, app.ErrWrongPhase
	}
	if action.Entity != s.winningBid.Entity {
		return nil, app.Errorf(app.CodeNotWinner, "%s did not win %s", action.Entity.Name, s.winningBid.Corporation.Name)
	}
	if !slices.Contains(s.cfg.CorporationSizes, action.Size) {
		return nil, app.Errorf(app.CodeInvalidSize, "%d is not a valid corporation size", action.Size)
	}
	if err := s.checkWinnerSolvent(); err != nil {
		return nil, err
	}

	s.size = action.Size
	s.winningBid.Corporation.Size = action.Size
	s.phase = domain.PhaseParring
	return []app.Event{{
		Kind:    app.EventSizeChosen,
		Payload: app.CorporationParredPayload{CorporationID: s.winningBid.Corporation.ID, Size: action.Size},
	}}, nil
}

// ValidatePar checks that the corporation can be parred without changing state.
func (s *Step) ValidatePar() error {
	switch s.phase {
	case domain.PhaseResolved, domain.PhaseAssigning, domain.PhaseParring:
	default:
		return app.ErrWrongPhase
	}
	if s.size == 0 {
		return app.Errorf(app.CodeInvalidSize, "corporation size not chosen")
	}
	return s.checkWinnerSolvent()
}

// checkWinnerSolvent rejects finishing the founding while the winner still owes part of
// the bid; contributing companies refunds it.
func (s *Step) checkWinnerSolvent() error {
	winner := s.winningBid.Entity
	if cash := winner.Cash(); cash < 0 {
		return app.Errorf(app.CodeNegativeCash, "%s must contribute companies to cover %s owed",
			winner.Name, s.game.FormatCurrency(-cash)).
			WithMetadata("owed", strconv.Itoa(-cash))
	}
	return nil
}

// ParCorporation floats the corporation and completes the cycle.
func (s *Step) ParCorporation() ([]app.Event, error) {
	if err := s.ValidatePar(); err != nil {
		return nil, err
	}

	corp := s.winningBid.Corporation
	corp.Floated = true
	s.auctioning = nil
	s.highest = nil
	s.bidders = nil
	s.phase = domain.PhaseComplete

	s.game.Log(fmt.Sprintf("%s pars at %s as a %d-share corporation", corp.Name, s.game.FormatCurrency(corp.SharePrice), s.size))
	return []app.Event{{
		Kind: app.EventCorporationParred,
		Payload: app.CorporationParredPayload{
			CorporationID: corp.ID,
			SharePrice:    corp.SharePrice,
			Size:          s.size,
		},
	}}, nil
}

func rotate(players []*domain.Player, start int) []*domain.Player {
	if start < 0 {
		start = 0
	}
	out := make([]*domain.Player, 0, len(players))
	out = append(out, players[start:]...)
	return append(out, players[:start]...)
}
