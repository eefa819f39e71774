package game

import (
	"github.com/pkg/errors"
)

// Snapshot is the single lossless representation of a game handed to
// external layers for persistence, caching and notification. Board
// contents travel as the FEN placement field; every other aggregate field
// is carried verbatim.
type Snapshot struct {
	WhitePlayerID  string          `json:"whitePlayerId"`
	BlackPlayerID  string          `json:"blackPlayerId"`
	Turn           Color           `json:"turn"`
	Placement      string          `json:"placement"`
	Castling       CastlingRights  `json:"castling"`
	EnPassant      EnPassantTarget `json:"enPassant"`
	HalfmoveClock  int             `json:"halfmoveClock"`
	FullmoveNumber int             `json:"fullmoveNumber"`
	History        []MoveRecord    `json:"history"`
	Status         Status          `json:"status"`
	Winner         *Color          `json:"winner,omitempty"`
}

// Snapshot serializes every field of the engine aggregate.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		WhitePlayerID:  e.whitePlayerID,
		BlackPlayerID:  e.blackPlayerID,
		Turn:           e.turn,
		Placement:      encodePlacement(&e.board),
		Castling:       e.castling,
		EnPassant:      e.enPassant,
		HalfmoveClock:  e.halfmoveClock,
		FullmoveNumber: e.fullmoveNumber,
		History:        e.History(),
		Status:         e.status,
	}
	if e.hasWinner {
		winner := e.winner
		snap.Winner = &winner
	}
	return snap
}

// FromSnapshot reconstructs an engine from a previously produced snapshot.
// All fields, including a terminal status, are restored verbatim rather
// than recomputed.
func FromSnapshot(snap Snapshot) (*Engine, error) {
	board, err := parsePlacement(snap.Placement)
	if err != nil {
		return nil, errors.Wrap(err, "snapshot placement")
	}

	e := &Engine{
		board:          board,
		whitePlayerID:  snap.WhitePlayerID,
		blackPlayerID:  snap.BlackPlayerID,
		turn:           snap.Turn,
		castling:       snap.Castling,
		enPassant:      snap.EnPassant,
		halfmoveClock:  snap.HalfmoveClock,
		fullmoveNumber: snap.FullmoveNumber,
		history:        append([]MoveRecord(nil), snap.History...),
		status:         snap.Status,
	}
	if snap.Winner != nil {
		e.winner = *snap.Winner
		e.hasWinner = true
	}
	return e, nil
}
