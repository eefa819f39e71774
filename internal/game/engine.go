package game

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/Harel-levin/chess-39-project/internal/army"
	"github.com/Harel-levin/chess-39-project/internal/shared"
)

// Engine drives one game: it owns the board, the turn state machine,
// castling rights, the en-passant window, the move counters, the history
// and the terminal status. A single Engine must only be mutated by one
// caller at a time; independent engines share nothing.
type Engine struct {
	board          Board
	whitePlayerID  string
	blackPlayerID  string
	turn           Color
	castling       CastlingRights
	enPassant      EnPassantTarget
	halfmoveClock  int
	fullmoveNumber int
	history        []MoveRecord
	status         Status
	winner         Color
	hasWinner      bool
}

// NewEngine creates a game between the two given player identities, with
// both armies freshly generated and placed. Player ids are opaque tokens;
// the engine only ever compares them.
func NewEngine(whitePlayerID, blackPlayerID string) (*Engine, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return NewEngineWithRand(whitePlayerID, blackPlayerID, rng)
}

// NewEngineWithRand is NewEngine with an injected random source, for
// reproducible setups.
func NewEngineWithRand(whitePlayerID, blackPlayerID string, rng *rand.Rand) (*Engine, error) {
	gen := army.NewGenerator(rng)
	white, err := gen.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "generate white army")
	}
	black, err := gen.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "generate black army")
	}

	e := &Engine{
		whitePlayerID:  whitePlayerID,
		blackPlayerID:  blackPlayerID,
		turn:           White,
		castling:       CastlingAll,
		enPassant:      NoEnPassantTarget(),
		fullmoveNumber: 1,
		status:         StatusOngoing,
	}
	e.board.Setup(white, black, rng)
	return e, nil
}

func (e *Engine) Turn() Color { return e.turn }

func (e *Engine) Status() Status { return e.status }

func (e *Engine) Castling() CastlingRights { return e.castling }

func (e *Engine) EnPassant() EnPassantTarget { return e.enPassant }

func (e *Engine) HalfmoveClock() int { return e.halfmoveClock }

func (e *Engine) FullmoveNumber() int { return e.fullmoveNumber }

func (e *Engine) Board() *Board { return &e.board }

func (e *Engine) Winner() (Color, bool) { return e.winner, e.hasWinner }

func (e *Engine) PlayerID(c Color) string {
	if c == White {
		return e.whitePlayerID
	}
	return e.blackPlayerID
}

// History returns a copy of the move history; the engine's own record is
// append-only and never handed out mutable.
func (e *Engine) History() []MoveRecord {
	out := make([]MoveRecord, len(e.history))
	copy(out, e.history)
	return out
}

// InCheck reports whether the side to move is currently in check.
func (e *Engine) InCheck() bool { return e.isInCheck(e.turn) }

// MakeMove validates and applies one move. Rejections come back as the
// sentinel errors in errors.go and leave the engine untouched.
func (e *Engine) MakeMove(req MoveRequest) (MoveResult, error) {
	if req.PlayerID != e.PlayerID(e.turn) {
		return MoveResult{}, ErrInvalidTurn
	}
	if e.status != StatusOngoing {
		return MoveResult{}, errors.Wrapf(ErrGameNotOngoing, "game is %s", e.status)
	}

	pc, ok := e.board.At(req.From)
	if !ok {
		return MoveResult{}, ErrNoPieceAtSource
	}
	if pc.Color != e.turn {
		return MoveResult{}, ErrWrongColorPiece
	}

	if !e.validMove(req.From, req.To, pc) {
		return MoveResult{}, errors.Wrapf(ErrIllegalMove, "%s %s-%s", pc.Kind, req.From, req.To)
	}
	if e.exposesCheck(req.From, req.To, pc.Color) {
		return MoveResult{}, ErrMoveExposesCheck
	}

	captured, hasCapture := e.executeMove(req, pc)

	e.history = append(e.history, MoveRecord{
		From:       req.From,
		To:         req.To,
		Piece:      pc.Kind,
		Captured:   captured,
		HasCapture: hasCapture,
		Number:     e.fullmoveNumber,
	})

	e.turn = e.turn.Opposite()
	if e.turn == White {
		e.fullmoveNumber++
	}

	e.updateStatus()

	return MoveResult{
		Captured:   captured,
		HasCapture: hasCapture,
		InCheck:    e.isInCheck(e.turn),
		Checkmate:  e.status == StatusCheckmate,
		Status:     e.status,
	}, nil
}

// executeMove applies an already validated move: capture (including the en
// passant victim), the piece move itself, promotion, the castling rook
// hop, rights and en-passant bookkeeping, and the halfmove clock.
func (e *Engine) executeMove(req MoveRequest, pc Piece) (PieceType, bool) {
	var captured PieceType
	hasCapture := false

	if victim, ok := e.board.At(req.To); ok {
		captured = victim.Kind
		hasCapture = true
		e.clearRookRightOnCorner(victim, req.To)
		e.board.clear(req.To)
	} else if pc.Kind == Pawn && req.From.File() != req.To.File() {
		// Diagonal move to an empty square was validated as en passant.
		if victimSq, ok := e.enPassantVictimSquare(req.To, pc.Color); ok {
			if victim, ok := e.board.At(victimSq); ok {
				captured = victim.Kind
				hasCapture = true
				e.board.clear(victimSq)
			}
		}
	}

	e.board.clear(req.From)
	moved := pc
	if pc.Kind == Pawn && isLastRank(req.To, pc.Color) {
		moved.Kind = promotionKind(req)
	}
	e.board.put(req.To, moved)

	if pc.Kind == King && absInt(req.To.File()-req.From.File()) == 2 {
		e.moveCastlingRook(req.From, req.To, pc.Color)
	}

	switch pc.Kind {
	case King:
		e.castling = e.castling.WithoutColor(pc.Color)
	case Rook:
		e.clearRookRightOnCorner(pc, req.From)
	}

	e.enPassant = NoEnPassantTarget()
	if pc.Kind == Pawn && absInt(req.To.Rank()-req.From.Rank()) == 2 {
		midRank := (req.From.Rank() + req.To.Rank()) / 2
		if sq, ok := SquareFromCoords(midRank, req.From.File()); ok {
			e.enPassant = NewEnPassantTarget(sq)
		}
	}

	if pc.Kind == Pawn || hasCapture {
		e.halfmoveClock = 0
	} else {
		e.halfmoveClock++
	}

	return captured, hasCapture
}

func (e *Engine) enPassantVictimSquare(target Square, attacker Color) (Square, bool) {
	if epSq, ok := e.enPassant.Square(); !ok || epSq != target {
		return 0, false
	}
	victimRank := target.Rank() - 1
	if attacker == Black {
		victimRank = target.Rank() + 1
	}
	return SquareFromCoords(victimRank, target.File())
}

func (e *Engine) moveCastlingRook(kingFrom, kingTo Square, color Color) {
	rank := kingFrom.Rank()
	rookFromFile, rookToFile := 7, kingTo.File()-1
	if kingTo.File() < kingFrom.File() {
		rookFromFile, rookToFile = 0, kingTo.File()+1
	}
	rookFrom, okFrom := SquareFromCoords(rank, rookFromFile)
	rookTo, okTo := SquareFromCoords(rank, rookToFile)
	if !okFrom || !okTo {
		return
	}
	rook, ok := e.board.At(rookFrom)
	if !ok || rook.Kind != Rook || rook.Color != color {
		return
	}
	e.board.clear(rookFrom)
	e.board.put(rookTo, rook)
}

// clearRookRightOnCorner drops the castling right tied to a rook leaving
// (or being captured on) its home corner.
func (e *Engine) clearRookRightOnCorner(pc Piece, sq Square) {
	if pc.Kind != Rook {
		return
	}
	homeRank := 0
	if pc.Color == Black {
		homeRank = 7
	}
	if sq.Rank() != homeRank {
		return
	}
	switch sq.File() {
	case 0:
		e.castling = e.castling.Without(shared.CastlingRight(pc.Color, CastleQueenside))
	case 7:
		e.castling = e.castling.Without(shared.CastlingRight(pc.Color, CastleKingside))
	}
}

func isLastRank(sq Square, color Color) bool {
	if color == White {
		return sq.Rank() == 7
	}
	return sq.Rank() == 0
}

func promotionKind(req MoveRequest) PieceType {
	if req.HasPromotion {
		switch req.Promotion {
		case Queen, Rook, Bishop, Knight:
			return req.Promotion
		}
	}
	return Queen
}

// ResignResult reports the outcome of a resignation.
type ResignResult struct {
	Winner Color `json:"winner"`
}

// Resign ends an ongoing game in favor of the opponent of playerID.
func (e *Engine) Resign(playerID string) (ResignResult, error) {
	if e.status != StatusOngoing {
		return ResignResult{}, errors.Wrapf(ErrGameNotOngoing, "game is %s", e.status)
	}
	var loser Color
	switch playerID {
	case e.whitePlayerID:
		loser = White
	case e.blackPlayerID:
		loser = Black
	default:
		return ResignResult{}, ErrUnknownPlayer
	}
	e.status = StatusResignation
	e.winner = loser.Opposite()
	e.hasWinner = true
	return ResignResult{Winner: e.winner}, nil
}
