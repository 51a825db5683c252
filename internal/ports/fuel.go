package ports

import "railfounding/internal/domain"

// FuelCapability decides, per corporation, whether train buying applies and whether
// fuel-dependent trains are offered.
type FuelCapability interface {
	// SkipsStep reports whether the corporation never buys trains.
	SkipsStep(corp *domain.Corporation) bool
	// SkipsFuelTrains reports whether fuel-dependent trains are hidden from the corporation.
	SkipsFuelTrains(corp *domain.Corporation) bool
}
