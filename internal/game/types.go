// Package game implements the Chess 39 engine: board setup from generated
// armies, move validation, check and end-of-game detection, move history,
// and position serialization.
package game

import (
	"fmt"
	"strings"

	"github.com/Harel-levin/chess-39-project/internal/shared"
)

// Local aliases keep the package signatures short; the canonical
// definitions live in internal/shared.
type (
	Color           = shared.Color
	PieceType       = shared.PieceType
	Square          = shared.Square
	CastlingRights  = shared.CastlingRights
	CastlingSide    = shared.CastlingSide
	EnPassantTarget = shared.EnPassantTarget
)

const (
	White = shared.White
	Black = shared.Black

	Pawn   = shared.Pawn
	Knight = shared.Knight
	Bishop = shared.Bishop
	Rook   = shared.Rook
	Queen  = shared.Queen
	King   = shared.King

	CastlingNone = shared.CastlingNone
	CastlingAll  = shared.CastlingAll

	CastleKingside  = shared.CastleKingside
	CastleQueenside = shared.CastleQueenside
)

var (
	CoordToSquare      = shared.CoordToSquare
	SquareFromCoords   = shared.SquareFromCoords
	NewEnPassantTarget = shared.NewEnPassantTarget
	NoEnPassantTarget  = shared.NoEnPassantTarget
)

// Piece is a board occupant. Occupants are values: reads copy, no two
// squares alias the same occupant.
type Piece struct {
	Kind  PieceType
	Color Color
}

// Status is the game-over state machine. It only ever moves away from
// StatusOngoing, never back.
type Status uint8

const (
	StatusOngoing Status = iota
	StatusCheckmate
	StatusStalemate
	StatusResignation
	StatusDraw
)

func (s Status) String() string {
	switch s {
	case StatusOngoing:
		return "ongoing"
	case StatusCheckmate:
		return "checkmate"
	case StatusStalemate:
		return "stalemate"
	case StatusResignation:
		return "resignation"
	case StatusDraw:
		return "draw"
	default:
		return fmt.Sprintf("status(%d)", s)
	}
}

func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ongoing":
		return StatusOngoing, true
	case "checkmate":
		return StatusCheckmate, true
	case "stalemate":
		return StatusStalemate, true
	case "resignation":
		return StatusResignation, true
	case "draw":
		return StatusDraw, true
	default:
		return StatusOngoing, false
	}
}

func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Status) UnmarshalText(text []byte) error {
	parsed, ok := ParseStatus(string(text))
	if !ok {
		return fmt.Errorf("invalid status %q", string(text))
	}
	*s = parsed
	return nil
}

// MoveRequest is passed in by an external layer to request a move.
type MoveRequest struct {
	From         Square
	To           Square
	PlayerID     string
	Promotion    PieceType
	HasPromotion bool
}

// MoveResult reports a successfully applied move. Rejections are reported
// as errors (see errors.go), not results.
type MoveResult struct {
	Captured   PieceType `json:"captured,omitempty"`
	HasCapture bool      `json:"hasCapture"`
	InCheck    bool      `json:"inCheck"`
	Checkmate  bool      `json:"checkmate"`
	Status     Status    `json:"status"`
}

// MoveRecord is one entry of the append-only move history.
type MoveRecord struct {
	From       Square    `json:"from"`
	To         Square    `json:"to"`
	Piece      PieceType `json:"piece"`
	Captured   PieceType `json:"captured,omitempty"`
	HasCapture bool      `json:"hasCapture"`
	Number     int       `json:"moveNumber"`
}

// Move is a from/to pair, as produced by LegalMoves.
type Move struct {
	From Square
	To   Square
}
