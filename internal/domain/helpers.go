package domain

import "fmt"

// Holder is a party that can hold cash. Only domain types implement it so every
// movement of money goes through Spend.
type Holder interface {
	Cash() int
	adjustCash(delta int)
}

// CompanyOwner is a party that can own companies.
type CompanyOwner interface {
	Companies() []*Company
	addCompany(c *Company)
	removeCompany(c *Company)
}

type purse struct {
	cash int
}

// Cash returns the current balance.
func (p *purse) Cash() int { return p.cash }

func (p *purse) adjustCash(delta int) { p.cash += delta }

type portfolio struct {
	companies []*Company
}

// Companies returns a snapshot of the owned companies in acquisition order.
func (p *portfolio) Companies() []*Company {
	out := make([]*Company, len(p.companies))
	copy(out, p.companies)
	return out
}

func (p *portfolio) addCompany(c *Company) {
	for _, existing := range p.companies {
		if existing == c {
			return
		}
	}
	p.companies = append(p.companies, c)
}

func (p *portfolio) removeCompany(c *Company) {
	for i, existing := range p.companies {
		if existing == c {
			p.companies = append(p.companies[:i], p.companies[i+1:]...)
			return
		}
	}
}

// Spend moves amount from one holder to another. The debit and the credit are
// applied together, so the sum of all balances never changes.
func Spend(from, to Holder, amount int) {
	if amount < 0 {
		panic(fmt.Sprintf("domain: negative spend %d", amount))
	}
	from.adjustCash(-amount)
	to.adjustCash(amount)
}

// TransferCompany moves c into the portfolio of to and updates its owner.
func TransferCompany(to CompanyOwner, c *Company) {
	if c.owner != nil {
		c.owner.removeCompany(c)
	}
	c.owner = to
	to.addCompany(c)
}

// CompanyValue sums the value of the given companies.
func CompanyValue(companies []*Company) int {
	total := 0
	for _, c := range companies {
		total += c.Value
	}
	return total
}

// BiddingPower is the player's cash plus the value of the companies it could contribute.
func BiddingPower(p *Player) int {
	return p.Cash() + CompanyValue(p.Companies())
}
