package engine

// Error is a game rule violation with a stable machine readable code. Codes
// are part of the wire contract and must not change between releases.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrGameNotFound      = &Error{Code: "GAME_NOT_FOUND", Message: "no game found for this room"}
	ErrNoPlayer          = &Error{Code: "NO_PLAYER", Message: "player is not part of this game"}
	ErrNotYourTurn       = &Error{Code: "NOT_YOUR_TURN", Message: "it is not this player's turn"}
	ErrNoCard            = &Error{Code: "NO_CARD", Message: "card is not in the player's hand"}
	ErrNoCardsLeft       = &Error{Code: "NO_CARDS_LEFT", Message: "both the draw and discard piles are empty"}
	ErrHandLimitReached  = &Error{Code: "HAND_LIMIT_REACHED", Message: "hand already holds the maximum number of cards"}
	ErrDuplicateOrgan    = &Error{Code: "DUPLICATE_ORGAN", Message: "an organ of this color is already in play"}
	ErrNoTarget          = &Error{Code: "NO_TARGET", Message: "this card requires a target"}
	ErrInvalidTarget     = &Error{Code: "INVALID_TARGET", Message: "the chosen target is not valid for this card"}
	ErrNoOrgan           = &Error{Code: "NO_ORGAN", Message: "the targeted organ does not exist"}
	ErrColorMismatch     = &Error{Code: "COLOR_MISMATCH", Message: "card color does not match the target"}
	ErrImmuneOrgan       = &Error{Code: "IMMUNE_ORGAN", Message: "the targeted organ is immune"}
	ErrAlreadyImmune     = &Error{Code: "ALREADY_IMMUNE", Message: "the organ is already immune"}
	ErrEmptyDiscard      = &Error{Code: "EMPTY_DISCARD", Message: "the discard pile is empty"}
	ErrOrganNotTreatable = &Error{Code: "ORGAN_NOT_INFECTED_OR_VACCINATED", Message: "the organ is neither infected nor vaccinated"}
	ErrInvalidAction     = &Error{Code: "INVALID_ACTION", Message: "this action is not allowed right now"}
	ErrUnsupportedCard   = &Error{Code: "UNSUPPORTED_CARD", Message: "this card kind cannot be played"}
	ErrUnsupportedTreat  = &Error{Code: "UNSUPPORTED_TREATMENT", Message: "this treatment is not supported"}
	ErrServer            = &Error{Code: "SERVER_ERROR", Message: "internal server error"}
)
