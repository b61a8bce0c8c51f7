package shogi

import "errors"

// Expected, recoverable outcomes. Callers compare with errors.Is; none of
// these cross the board boundary as panics.
var (
	ErrNotYourPiece            = errors.New("no piece of the side to move on the source square")
	ErrIllegalDestination      = errors.New("destination is not reachable by the piece")
	ErrPromotionNotAllowed     = errors.New("piece cannot promote on this move")
	ErrMustPromote             = errors.New("piece has no further moves unless promoted")
	ErrSelfCheck               = errors.New("move would leave own king in check")
	ErrOccupiedSquare          = errors.New("drop destination is occupied")
	ErrPieceUnavailableForDrop = errors.New("no such piece in hand")
	ErrDropRestricted          = errors.New("drop violates placement restriction")
	ErrInvalidPieceKind        = errors.New("invalid piece kind")
	ErrOutOfBounds             = errors.New("square outside the board")
)
