package game

import "github.com/pkg/errors"

// Move rejections are recoverable outcomes of MakeMove and Resign, never
// faults. Callers match them with errors.Is.
var (
	ErrInvalidTurn      = errors.New("not your turn")
	ErrGameNotOngoing   = errors.New("game is not ongoing")
	ErrNoPieceAtSource  = errors.New("no piece at source square")
	ErrWrongColorPiece  = errors.New("cannot move opponent's piece")
	ErrIllegalMove      = errors.New("illegal move")
	ErrMoveExposesCheck = errors.New("move would leave king in check")
	ErrUnknownPlayer    = errors.New("unknown player id")
)
