package apperror

import "errors"

// Kind groups errors by how the caller should treat them.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindAuthorization
	KindState
	KindInvariant
)

var (
	ErrSamePlayer       = errors.New("two distinct players are required")
	ErrInvalidLockIndex = errors.New("invalid lock index")

	ErrMatchNotFound  = errors.New("match not found")
	ErrSheetNotFound  = errors.New("score sheet not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrStateNotFound  = errors.New("runtime state not found")

	ErrPlayerNotInMatch = errors.New("player does not belong to this match")
	ErrNotYourTurn      = errors.New("it's not your turn")

	ErrNoRollsLeft    = errors.New("maximum 3 rolls per turn")
	ErrCategoryFilled = errors.New("category is already filled")
	ErrMatchFinished  = errors.New("match is already finished")

	ErrNoWinner = errors.New("cannot determine a winner")
)

// KindOf - classifies an error chain so transports can map it to a status code.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrSamePlayer), errors.Is(err, ErrInvalidLockIndex):
		return KindValidation
	case errors.Is(err, ErrMatchNotFound), errors.Is(err, ErrSheetNotFound),
		errors.Is(err, ErrPlayerNotFound), errors.Is(err, ErrStateNotFound):
		return KindNotFound
	case errors.Is(err, ErrPlayerNotInMatch), errors.Is(err, ErrNotYourTurn):
		return KindAuthorization
	case errors.Is(err, ErrNoRollsLeft), errors.Is(err, ErrCategoryFilled), errors.Is(err, ErrMatchFinished):
		return KindState
	case errors.Is(err, ErrNoWinner):
		return KindInvariant
	default:
		return KindUnknown
	}
}
