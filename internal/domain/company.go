package domain

import "fmt"

// CompanyEffect is the one-shot rule a company triggers when it changes hands or a
// corporation pars. It is resolved once when game data is loaded.
type CompanyEffect int

const (
	// EffectPlain has no special rule. A plain company with a positive value is a cash subsidy.
	EffectPlain CompanyEffect = iota
	// EffectNoSubsidy marks a home city without a subsidy.
	EffectNoSubsidy
	// EffectFlatBonus adds a +10 revenue marker to the home tile.
	EffectFlatBonus
	// EffectTieredBonus adds a +10/+20 revenue marker to the home tile.
	EffectTieredBonus
	// EffectFreeTrainGrant gives a corporation without a subsidy the cheapest depot train.
	EffectFreeTrainGrant
	// EffectMetroUpgradeGrant turns a potential metropolis home into a metropolis.
	EffectMetroUpgradeGrant
)

var effectNames = map[CompanyEffect]string{
	EffectPlain:             "plain",
	EffectNoSubsidy:         "no_subsidy",
	EffectFlatBonus:         "flat_bonus",
	EffectTieredBonus:       "tiered_bonus",
	EffectFreeTrainGrant:    "free_train_grant",
	EffectMetroUpgradeGrant: "metro_upgrade_grant",
}

func (e CompanyEffect) String() string {
	if name, ok := effectNames[e]; ok {
		return name
	}
	return fmt.Sprintf("effect(%d)", int(e))
}

// ParseCompanyEffect maps a catalog name to an effect. An empty name is EffectPlain.
func ParseCompanyEffect(name string) (CompanyEffect, error) {
	if name == "" {
		return EffectPlain, nil
	}
	for effect, n := range effectNames {
		if n == name {
			return effect, nil
		}
	}
	return EffectPlain, fmt.Errorf("unknown company effect %q", name)
}

// Company is a private company or a subsidy.
type Company struct {
	ID     string
	Name   string
	Value  int
	Effect CompanyEffect

	owner  CompanyOwner
	closed bool
}

// Owner returns the current owner, nil once closed or before placement.
func (c *Company) Owner() CompanyOwner { return c.owner }

// Closed reports whether the company has been removed from play.
func (c *Company) Closed() bool { return c.closed }

// Close removes the company from play.
func (c *Company) Close() {
	if c.owner != nil {
		c.owner.removeCompany(c)
	}
	c.owner = nil
	c.closed = true
}

// OwnedBy reports whether owner holds the company.
func (c *Company) OwnedBy(owner CompanyOwner) bool {
	return owner != nil && c.owner == owner
}

// SubsidyDescriptor is the catalog view of a subsidy placed on a hex, available before
// any corporation claims it.
type SubsidyDescriptor struct {
	ID    string
	Name  string
	Value int
}
