// Package session is the in-memory game session the steps run against.
package session

import (
	"fmt"

	"railfounding/internal/config"
	"railfounding/internal/domain"
	"railfounding/internal/gamedata"
	"railfounding/internal/money"
	"railfounding/internal/ports"
)

// Game holds one game's shared objects and implements ports.Game.
type Game struct {
	World   *gamedata.World
	Players []*domain.Player

	potentialMetro []*domain.Hex
	activeMetro    []*domain.Hex
	metroDenver    bool
	formatter      *money.Formatter

	log  []string
	sink func(string)

	// graphVersion increases every time the route graph is invalidated.
	graphVersion int
}

// New wraps a built world.
func New(world *gamedata.World, cfg config.VariantConfig, players ...*domain.Player) *Game {
	return &Game{
		World:          world,
		Players:        players,
		potentialMetro: append([]*domain.Hex(nil), world.PotentialMetro...),
		activeMetro:    append([]*domain.Hex(nil), world.ActiveMetro...),
		metroDenver:    cfg.MetroDenver,
		formatter:      money.NewFormatter(cfg.Locale),
	}
}

// SetLogSink mirrors every game log line to fn.
func (g *Game) SetLogSink(fn func(string)) {
	g.sink = fn
}

// Bank implements ports.Game.
func (g *Game) Bank() *domain.Bank { return g.World.Bank }

// Depot implements ports.Game.
func (g *Game) Depot() *domain.Depot { return g.World.Depot }

// SubsidiesByHex implements ports.Game.
func (g *Game) SubsidiesByHex() map[string]domain.SubsidyDescriptor { return g.World.SubsidiesByHex }

// BuyTrain implements ports.Game.
func (g *Game) BuyTrain(corp *domain.Corporation, train *domain.Train, price int) error {
	if !g.World.Depot.Remove(train) {
		return fmt.Errorf("train %s is not in the depot", train.ID)
	}
	if price > 0 {
		domain.Spend(corp, g.World.Bank, price)
	}
	train.Owner = corp
	corp.Trains = append(corp.Trains, train)
	return nil
}

// ConvertPotentialMetro implements ports.Game.
func (g *Game) ConvertPotentialMetro(hex *domain.Hex) {
	for i, h := range g.potentialMetro {
		if h == hex {
			g.potentialMetro = append(g.potentialMetro[:i], g.potentialMetro[i+1:]...)
			break
		}
	}
	if !domain.ContainsHex(g.activeMetro, hex) {
		g.activeMetro = append(g.activeMetro, hex)
	}
	hex.Tile.Name = "metropolis"
}

// ClearGraph implements ports.Game.
func (g *Game) ClearGraph() { g.graphVersion++ }

// GraphVersion reports how many times the route graph was invalidated.
func (g *Game) GraphVersion() int { return g.graphVersion }

// PotentialMetropolitanHexes implements ports.Game.
func (g *Game) PotentialMetropolitanHexes() []*domain.Hex { return g.potentialMetro }

// ActiveMetropolitanHexes implements ports.Game.
func (g *Game) ActiveMetropolitanHexes() []*domain.Hex { return g.activeMetro }

// MetroDenver implements ports.Game.
func (g *Game) MetroDenver() bool { return g.metroDenver }

// Log implements ports.Game.
func (g *Game) Log(msg string) {
	g.log = append(g.log, msg)
	if g.sink != nil {
		g.sink(msg)
	}
}

// Lines returns the game log.
func (g *Game) Lines() []string {
	return append([]string(nil), g.log...)
}

// FormatCurrency implements ports.Game.
func (g *Game) FormatCurrency(amount int) string { return g.formatter.Format(amount) }

// TotalCash sums the bank, every player and every corporation.
func (g *Game) TotalCash() int {
	total := g.World.Bank.Cash()
	for _, p := range g.Players {
		total += p.Cash()
	}
	for _, c := range g.World.Corporations {
		total += c.Cash()
	}
	return total
}

var _ ports.Game = (*Game)(nil)
