package ports

import "railfounding/internal/domain"

// Game is the session-level collaborator the round steps act on. The round context
// (domain.Round) is passed to the steps separately.
type Game interface {
	// Bank returns the currency pool.
	Bank() *domain.Bank

	// Depot returns the shared pool of purchasable trains.
	Depot() *domain.Depot

	// SubsidiesByHex maps hex IDs to the subsidy placed there.
	SubsidiesByHex() map[string]domain.SubsidyDescriptor

	// BuyTrain moves train from the depot to corp for price (0 for a free train).
	// Returns an error if the train is no longer in the depot.
	BuyTrain(corp *domain.Corporation, train *domain.Train, price int) error

	// ConvertPotentialMetro upgrades hex to an active metropolis.
	ConvertPotentialMetro(hex *domain.Hex)

	// ClearGraph invalidates cached route connectivity.
	ClearGraph()

	PotentialMetropolitanHexes() []*domain.Hex
	ActiveMetropolitanHexes() []*domain.Hex

	// MetroDenver reports whether the metropolitan conversion track feature is enabled.
	MetroDenver() bool

	// Log appends a line to the game log.
	Log(msg string)

	FormatCurrency(amount int) string
}
