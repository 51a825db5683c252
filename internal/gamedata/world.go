package gamedata

import (
	"fmt"

	"railfounding/internal/domain"
)

// World is the set of live objects built from a catalog for one game.
type World struct {
	Bank         *domain.Bank
	Depot        *domain.Depot
	Hexes        map[string]*domain.Hex
	Corporations map[string]*domain.Corporation

	// Companies holds the private companies, which the caller deals to players.
	Companies map[string]*domain.Company
	Subsidies map[string]*domain.Company

	SubsidiesByHex map[string]domain.SubsidyDescriptor
	PotentialMetro []*domain.Hex
	ActiveMetro    []*domain.Hex
}

// Build instantiates the catalog. Subsidies are placed on their hexes and trains are
// queued in catalog order.
func (c *Catalog) Build() *World {
	w := &World{
		Bank:           domain.NewBank(c.BankCash),
		Hexes:          make(map[string]*domain.Hex, len(c.Hexes)),
		Corporations:   make(map[string]*domain.Corporation, len(c.Corporations)),
		Companies:      make(map[string]*domain.Company, len(c.Companies)),
		Subsidies:      make(map[string]*domain.Company, len(c.Subsidies)),
		SubsidiesByHex: make(map[string]domain.SubsidyDescriptor, len(c.Subsidies)),
	}

	for _, spec := range c.Hexes {
		hex := domain.NewHex(spec.ID, spec.Location)
		hex.Tile.Name = spec.Tile
		w.Hexes[spec.ID] = hex
		switch {
		case spec.Metro:
			w.ActiveMetro = append(w.ActiveMetro, hex)
		case spec.PotentialMetro:
			w.PotentialMetro = append(w.PotentialMetro, hex)
		}
	}

	for _, spec := range c.Corporations {
		w.Corporations[spec.ID] = domain.NewCorporation(spec.ID, spec.Name, domain.CorporationType(spec.Type))
	}

	for _, spec := range c.Companies {
		w.Companies[spec.ID] = spec.company()
	}

	for _, spec := range c.Subsidies {
		company := spec.company()
		w.Subsidies[spec.ID] = company
		domain.TransferCompany(w.Hexes[spec.Hex], company)
		w.SubsidiesByHex[spec.Hex] = domain.SubsidyDescriptor{ID: spec.ID, Name: spec.Name, Value: spec.Value}
	}

	var trains []*domain.Train
	for _, spec := range c.Trains {
		for i := 0; i < spec.Count; i++ {
			trains = append(trains, spec.train(i))
		}
	}
	w.Depot = domain.NewDepot(trains...)

	return w
}

func (s CompanySpec) company() *domain.Company {
	return &domain.Company{ID: s.ID, Name: s.Name, Value: s.Value, Effect: s.effect}
}

func (s TrainSpec) train(index int) *domain.Train {
	t := &domain.Train{
		ID:            fmt.Sprintf("%s-%d", s.Name, index),
		Name:          s.Name,
		Price:         s.Price,
		FuelDependent: s.FuelDependent,
	}
	for _, v := range s.Variants {
		t.Variants = append(t.Variants, domain.TrainVariant{Name: v.Name, Price: v.Price})
	}
	return t
}
