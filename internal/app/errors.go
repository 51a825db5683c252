package app

import "fmt"

// Code is a machine-readable reason for a rejected action.
type Code string

const (
	CodeBidTooHigh              Code = "bid_too_high"
	CodeBidTooLow               Code = "bid_too_low"
	CodeBadIncrement            Code = "bad_increment"
	CodeContributionExceedsBid  Code = "contribution_exceeds_bid"
	CodeContributionExceedsCash Code = "contribution_exceeds_cash"
	CodeWrongPhase              Code = "wrong_phase"
	CodeNotBidder               Code = "not_bidder"
	CodeNotWinner               Code = "not_winner"
	CodeCompanyNotOwned         Code = "company_not_owned"
	CodeInvalidSize             Code = "invalid_size"
	CodeInsufficientCash        Code = "insufficient_cash"
	CodeTrainUnavailable        Code = "train_unavailable"
	CodeUnknownVariant          Code = "unknown_variant"
	CodeStepSkipped             Code = "step_skipped"
	CodeNegativeCash            Code = "negative_cash"
)

// GameError is a user-facing validation failure. Message is shown to the player as is.
type GameError struct {
	Code     Code
	Message  string
	Metadata map[string]string
}

// Error implements the error interface.
func (e *GameError) Error() string {
	return e.Message
}

// Is reports whether target matches this error by code.
func (e *GameError) Is(target error) bool {
	if t, ok := target.(*GameError); ok {
		return e.Code == t.Code
	}
	return false
}

// Errorf creates a GameError with a formatted message.
func Errorf(code Code, format string, args ...any) *GameError {
	return &GameError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithMetadata attaches key/value context, such as the computed limit, for clients.
func (e *GameError) WithMetadata(kv ...string) *GameError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]string, len(kv)/2)
	}
	for i := 0; i+1 < len(kv); i += 2 {
		e.Metadata[kv[i]] = kv[i+1]
	}
	return e
}

// Sentinels for errors.Is comparisons.
var (
	ErrBidTooHigh              = &GameError{Code: CodeBidTooHigh, Message: "bid exceeds bidding power"}
	ErrBidTooLow               = &GameError{Code: CodeBidTooLow, Message: "bid below minimum"}
	ErrBadIncrement            = &GameError{Code: CodeBadIncrement, Message: "bid increment not allowed"}
	ErrContributionExceedsBid  = &GameError{Code: CodeContributionExceedsBid, Message: "contributions exceed winning bid"}
	ErrContributionExceedsCash = &GameError{Code: CodeContributionExceedsCash, Message: "contribution exceeds corporation cash"}
	ErrWrongPhase              = &GameError{Code: CodeWrongPhase, Message: "action not allowed in this phase"}
	ErrNotBidder               = &GameError{Code: CodeNotBidder, Message: "entity is not an active bidder"}
	ErrNotWinner               = &GameError{Code: CodeNotWinner, Message: "entity did not win the auction"}
	ErrCompanyNotOwned         = &GameError{Code: CodeCompanyNotOwned, Message: "company not owned by entity"}
	ErrInvalidSize             = &GameError{Code: CodeInvalidSize, Message: "invalid corporation size"}
	ErrInsufficientCash        = &GameError{Code: CodeInsufficientCash, Message: "insufficient cash"}
	ErrTrainUnavailable        = &GameError{Code: CodeTrainUnavailable, Message: "train not available"}
	ErrUnknownVariant          = &GameError{Code: CodeUnknownVariant, Message: "unknown train variant"}
	ErrStepSkipped             = &GameError{Code: CodeStepSkipped, Message: "step does not apply"}
	ErrNegativeCash            = &GameError{Code: CodeNegativeCash, Message: "winner has a negative balance"}
)
