package game

// Error is a recoverable rejection reported only to the acting player. It
// never mutates match state and never reaches the broadcast slot.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrNotYourTurn        = &Error{"not_your_turn", "it is not your turn"}
	ErrInvalidDestination = &Error{"invalid_destination", "that is not a valid position"}
	ErrInvalidStart       = &Error{"invalid_start", "the match cannot be started"}
	ErrInvalidDisproof    = &Error{"invalid_disproof", "that card cannot disprove the suspicion"}
	ErrInvalidSuspicion   = &Error{"invalid_suspicion", "the suspicion is not valid here"}
	ErrUnknownCard        = &Error{"unknown_card", "no such card"}
	ErrUnimplemented      = &Error{"unimplemented_action", "no such action"}
	ErrMatchNotStarted    = &Error{"match_not_started", "the match has not started"}
	ErrMatchOver          = &Error{"match_over", "the match is already over"}
	ErrAccusationSpent    = &Error{"accusation_spent", "you already used your accusation"}
	ErrSpectator          = &Error{"spectator", "failed accusers can only watch"}

	ErrMatchStarted = &Error{"match_started", "the match already started"}
	ErrMatchFull    = &Error{"match_full", "the match is full"}
)
