package domain

// Bank is the process-wide pool of currency.
type Bank struct {
	purse
}

// NewBank creates a bank holding cash.
func NewBank(cash int) *Bank {
	return &Bank{purse: purse{cash: cash}}
}

// Player is a bidding entity.
type Player struct {
	ID   string
	Name string
	purse
	portfolio
}

// NewPlayer creates a player with a starting balance.
func NewPlayer(id, name string, cash int) *Player {
	return &Player{ID: id, Name: name, purse: purse{cash: cash}}
}

// Token is a station marker. The first token of a corporation is its home.
type Token struct {
	Hex  *Hex
	Used bool
}

// Corporation is a public company founded through the par auction.
type Corporation struct {
	ID         string
	Name       string
	Type       CorporationType
	SharePrice int
	Size       int
	President  *Player
	Floated    bool
	Tokens     []*Token
	Trains     []*Train
	purse
	portfolio
}

// NewCorporation creates a corporation with one unplaced home token.
func NewCorporation(id, name string, typ CorporationType) *Corporation {
	if typ == "" {
		typ = CorporationRailroad
	}
	return &Corporation{
		ID:     id,
		Name:   name,
		Type:   typ,
		Tokens: []*Token{{}},
	}
}

// PlaceHomeToken puts the first token on hex.
func (c *Corporation) PlaceHomeToken(hex *Hex) {
	if len(c.Tokens) == 0 {
		c.Tokens = append(c.Tokens, &Token{})
	}
	c.Tokens[0].Hex = hex
	c.Tokens[0].Used = true
}

// HomeHex returns the hex of the placed home token, or nil.
func (c *Corporation) HomeHex() *Hex {
	if len(c.Tokens) == 0 || !c.Tokens[0].Used {
		return nil
	}
	return c.Tokens[0].Hex
}

// HasEffect reports whether the corporation owns a company with the given effect.
func (c *Corporation) HasEffect(effect CompanyEffect) bool {
	for _, company := range c.companies {
		if company.Effect == effect {
			return true
		}
	}
	return false
}

// Hex is a map location. Subsidies lie on a hex until a corporation claims them.
type Hex struct {
	ID           string
	LocationName string
	Tile         *Tile
	portfolio
}

// NewHex creates a hex with an empty tile.
func NewHex(id, locationName string) *Hex {
	return &Hex{ID: id, LocationName: locationName, Tile: &Tile{}}
}

// Icon is a marker drawn on a tile. Sticky icons survive tile upgrades.
type Icon struct {
	Name   string
	Sticky bool
}

// Tile is the tile currently laid on a hex.
type Tile struct {
	Name  string
	Icons []Icon
}

// AddIcon appends a marker to the tile.
func (t *Tile) AddIcon(icon Icon) {
	t.Icons = append(t.Icons, icon)
}

// HasIcon reports whether a marker with name is present.
func (t *Tile) HasIcon(name string) bool {
	for _, icon := range t.Icons {
		if icon.Name == name {
			return true
		}
	}
	return false
}

// ContainsHex reports whether hex is in hexes.
func ContainsHex(hexes []*Hex, hex *Hex) bool {
	for _, h := range hexes {
		if h == hex {
			return true
		}
	}
	return false
}
