package domain

// Sticky tile icons placed by bonus subsidies.
const (
	IconPlusTen       = "plus_ten"
	IconPlusTenTwenty = "plus_ten_twenty"
)

// CorporationType distinguishes railroads from the minor fuel companies.
type CorporationType string

const (
	CorporationRailroad CorporationType = "railroad"
	CorporationCoal     CorporationType = "coal"
	CorporationOil      CorporationType = "oil"
)

// DefaultCorporationSizes lists the share counts a founder may choose from.
var DefaultCorporationSizes = []int{2, 5, 10}
