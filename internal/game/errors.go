package game

import "errors"

// Sentinel errors for caller contract violations. All are hard failures
// surfaced synchronously; no operation partially applies before rejecting.
var (
	// ErrInvalidConfig indicates a construction contract violation, such as
	// a player count outside the supported range or a non-positive target
	// score.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrHandEnded indicates a mutating call against a hand that has
	// already reached its terminal state.
	ErrHandEnded = errors.New("hand has ended")

	// ErrMatchOver indicates a command against a game whose match winner
	// has already been decided.
	ErrMatchOver = errors.New("match is over")

	// ErrIllegalPlay indicates the chosen card fails the legality relation
	// against the current discard top.
	ErrIllegalPlay = errors.New("illegal play")

	// ErrMissingColor indicates a wild card was played without a chosen
	// color.
	ErrMissingColor = errors.New("no color chosen for wild card")

	// ErrExtraneousColor indicates a color was supplied for a card that
	// already has an intrinsic color.
	ErrExtraneousColor = errors.New("color chosen for a colored card")

	// ErrPlayerOutOfRange indicates a player index outside the hand.
	ErrPlayerOutOfRange = errors.New("player index out of range")
)
