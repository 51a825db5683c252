package app

import "railfounding/internal/domain"

// EventKind identifies emitted step events for the host to dispatch.
type EventKind string

const (
	EventBidPlaced         EventKind = "bid_placed"
	EventBidderPassed      EventKind = "bidder_passed"
	EventAuctionWon        EventKind = "auction_won"
	EventCashReturned      EventKind = "cash_returned"
	EventSubsidyPaid       EventKind = "subsidy_paid"
	EventCompanyAssigned   EventKind = "company_assigned"
	EventDeficitCovered    EventKind = "deficit_covered"
	EventFreeTrainGranted  EventKind = "free_train_granted"
	EventMetroConverted    EventKind = "metro_converted"
	EventMarkerPlaced      EventKind = "marker_placed"
	EventCompanyClosed     EventKind = "company_closed"
	EventTrackQueued       EventKind = "track_queued"
	EventSizeChosen        EventKind = "size_chosen"
	EventCorporationParred EventKind = "corporation_parred"
	EventTrainBought       EventKind = "train_bought"
	EventVariantsPruned    EventKind = "variants_pruned"
)

// Event is a step event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // player IDs; empty means broadcast
}

type BidPlacedPayload struct {
	PlayerID      string
	CorporationID string
	Price         int
}

type BidderPassedPayload struct {
	PlayerID string
}

type AuctionWonPayload struct {
	PlayerID      string
	CorporationID string
	Price         int
	SharePrice    int
}

type CashPayload struct {
	From   string
	To     string
	Amount int
}

type CompanyPayload struct {
	CompanyID     string
	CorporationID string
	Value         int
}

type TrainPayload struct {
	CorporationID string
	TrainID       string
	Variant       string
	Price         int
}

type MarkerPlacedPayload struct {
	HexID string
	Icon  string
}

type MetroConvertedPayload struct {
	HexID string
}

type TrackQueuedPayload struct {
	Request domain.PendingTrack
}

type CorporationParredPayload struct {
	CorporationID string
	SharePrice    int
	Size          int
}
