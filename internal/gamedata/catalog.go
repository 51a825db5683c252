// Package gamedata loads the static game catalog: corporations, map hexes, private
// companies, subsidies and the train roster.
package gamedata

import (
	"fmt"
	"os"

	"railfounding/internal/domain"

	"gopkg.in/yaml.v3"
)

type CorporationSpec struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type HexSpec struct {
	ID             string `yaml:"id"`
	Location       string `yaml:"location"`
	Tile           string `yaml:"tile"`
	PotentialMetro bool   `yaml:"potential_metro"`
	Metro          bool   `yaml:"metro"`
}

type CompanySpec struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Value  int    `yaml:"value"`
	Effect string `yaml:"effect"`

	// Hex places the company on the map as a subsidy.
	Hex string `yaml:"hex"`

	effect domain.CompanyEffect
}

type VariantSpec struct {
	Name  string `yaml:"name"`
	Price int    `yaml:"price"`
}

type TrainSpec struct {
	Name          string        `yaml:"name"`
	Price         int           `yaml:"price"`
	Count         int           `yaml:"count"`
	FuelDependent bool          `yaml:"fuel_dependent"`
	Variants      []VariantSpec `yaml:"variants"`
}

// Catalog is the parsed game data file.
type Catalog struct {
	BankCash     int               `yaml:"bank_cash"`
	Corporations []CorporationSpec `yaml:"corporations"`
	Hexes        []HexSpec         `yaml:"hexes"`
	Companies    []CompanySpec     `yaml:"companies"`
	Subsidies    []CompanySpec     `yaml:"subsidies"`
	Trains       []TrainSpec       `yaml:"trains"`
}

// Load reads and validates a catalog file.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(raw)
}

// Parse decodes catalog YAML and resolves company effects.
func Parse(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if err := c.resolve(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) resolve() error {
	hexes := make(map[string]bool, len(c.Hexes))
	for _, h := range c.Hexes {
		if hexes[h.ID] {
			return fmt.Errorf("catalog: duplicate hex %s", h.ID)
		}
		hexes[h.ID] = true
	}

	seen := make(map[string]bool)
	subsidyHexes := make(map[string]string)
	resolveList := func(list []CompanySpec, needHex bool) error {
		for i := range list {
			spec := &list[i]
			if seen[spec.ID] {
				return fmt.Errorf("catalog: duplicate company %s", spec.ID)
			}
			seen[spec.ID] = true
			effect, err := domain.ParseCompanyEffect(spec.Effect)
			if err != nil {
				return fmt.Errorf("catalog: company %s: %w", spec.ID, err)
			}
			spec.effect = effect
			if !needHex {
				continue
			}
			if !hexes[spec.Hex] {
				return fmt.Errorf("catalog: subsidy %s placed on unknown hex %q", spec.ID, spec.Hex)
			}
			if other, ok := subsidyHexes[spec.Hex]; ok {
				return fmt.Errorf("catalog: subsidies %s and %s share hex %s", other, spec.ID, spec.Hex)
			}
			subsidyHexes[spec.Hex] = spec.ID
		}
		return nil
	}
	if err := resolveList(c.Companies, false); err != nil {
		return err
	}
	if err := resolveList(c.Subsidies, true); err != nil {
		return err
	}

	for _, t := range c.Trains {
		if t.Count <= 0 {
			return fmt.Errorf("catalog: train %s has no units", t.Name)
		}
	}
	return nil
}
