package game

import "github.com/Harel-levin/chess-39-project/internal/shared"

// validMove reports whether moving pc from one square to another is
// geometrically legal: per-kind movement shape, path clearance and capture
// target rules. It ignores whose turn it is and whether the mover's own
// king ends up in check; attack detection is defined in exactly these
// terms.
func (e *Engine) validMove(from, to Square, pc Piece) bool {
	if from == to {
		return false
	}
	if dest, ok := e.board.At(to); ok && dest.Color == pc.Color {
		return false
	}

	switch pc.Kind {
	case Pawn:
		return e.validPawnMove(from, to, pc.Color)
	case Knight:
		return offsetMatch(from, to, shared.KnightOffsets[:])
	case Bishop:
		return e.validSlide(from, to, diagonal)
	case Rook:
		return e.validSlide(from, to, orthogonal)
	case Queen:
		return e.validSlide(from, to, diagonal) || e.validSlide(from, to, orthogonal)
	case King:
		return e.validKingMove(from, to, pc.Color)
	default:
		return false
	}
}

type slideShape uint8

const (
	orthogonal slideShape = iota
	diagonal
)

func (e *Engine) validSlide(from, to Square, shape slideShape) bool {
	dr := absInt(to.Rank() - from.Rank())
	df := absInt(to.File() - from.File())
	switch shape {
	case orthogonal:
		if dr != 0 && df != 0 {
			return false
		}
	case diagonal:
		if dr != df || dr == 0 {
			return false
		}
	}
	return e.pathClear(from, to)
}

func (e *Engine) pathClear(from, to Square) bool {
	for _, sq := range shared.Line(from, to) {
		if e.board.occ.Has(sq) {
			return false
		}
	}
	return true
}

func offsetMatch(from, to Square, offsets []shared.Delta) bool {
	dr := to.Rank() - from.Rank()
	df := to.File() - from.File()
	for _, d := range offsets {
		if d.DR == dr && d.DF == df {
			return true
		}
	}
	return false
}

func (e *Engine) validPawnMove(from, to Square, color Color) bool {
	dir, startRank := 1, 1
	if color == Black {
		dir, startRank = -1, 6
	}

	dest, destOccupied := e.board.At(to)
	dr := to.Rank() - from.Rank()
	df := to.File() - from.File()

	// Single push.
	if df == 0 && dr == dir {
		return !destOccupied
	}

	// Double push from the starting rank, both squares empty.
	if df == 0 && from.Rank() == startRank && dr == 2*dir {
		mid, ok := SquareFromCoords(from.Rank()+dir, from.File())
		if !ok {
			return false
		}
		return !destOccupied && !e.board.occ.Has(mid)
	}

	// Diagonal capture, including onto the en-passant target.
	if absInt(df) == 1 && dr == dir {
		if destOccupied && dest.Color != color {
			return true
		}
		if epSq, ok := e.enPassant.Square(); ok && epSq == to {
			return true
		}
	}

	return false
}

func (e *Engine) validKingMove(from, to Square, color Color) bool {
	dr := absInt(to.Rank() - from.Rank())
	df := absInt(to.File() - from.File())

	if dr <= 1 && df <= 1 {
		return true
	}
	if df == 2 && dr == 0 {
		return e.canCastle(from, to, color)
	}
	return false
}

// canCastle checks a two-file king move: the right must be intact, the king
// not currently in check, every square between king and rook empty, a rook
// of the right color on the corner, and no square the king crosses or lands
// on attacked. Rooks live on files a/h; a randomized king placed too close
// to the edge simply has no legal castle in that direction.
func (e *Engine) canCastle(from, to Square, color Color) bool {
	side := CastleKingside
	rookFile := 7
	step := 1
	if to.File() < from.File() {
		side = CastleQueenside
		rookFile = 0
		step = -1
	}

	if !e.castling.HasSide(color, side) {
		return false
	}
	if e.isInCheck(color) {
		return false
	}

	rookSq, ok := SquareFromCoords(from.Rank(), rookFile)
	if !ok {
		return false
	}
	rook, occupied := e.board.At(rookSq)
	if !occupied || rook.Color != color || rook.Kind != Rook {
		return false
	}

	for file := from.File() + step; file != rookFile; file += step {
		sq, ok := SquareFromCoords(from.Rank(), file)
		if !ok {
			return false
		}
		if e.board.occ.Has(sq) {
			return false
		}
	}

	enemy := color.Opposite()
	for file := from.File(); file != to.File()+step; file += step {
		sq, ok := SquareFromCoords(from.Rank(), file)
		if !ok {
			return false
		}
		if e.isSquareAttacked(sq, enemy) {
			return false
		}
	}

	return true
}

// isSquareAttacked reports whether any piece of byColor has a geometrically
// legal move ending on target, scanning the whole board. Kings attack only
// their eight neighbor squares here; the castling branch never captures and
// evaluating it would recurse back into attack detection.
func (e *Engine) isSquareAttacked(target Square, byColor Color) bool {
	result := false
	e.board.occ.Iter(func(from Square) {
		if result || from == target {
			return
		}
		pc := e.board.grid[from]
		if pc.Color != byColor {
			return
		}
		if pc.Kind == King {
			if offsetMatch(from, target, shared.KingOffsets[:]) {
				result = true
			}
			return
		}
		if e.validMove(from, target, pc) {
			result = true
		}
	})
	return result
}

func (e *Engine) findKing(color Color) (Square, bool) {
	found := false
	var kingSq Square
	e.board.occ.Iter(func(sq Square) {
		if found {
			return
		}
		pc := e.board.grid[sq]
		if pc.Kind == King && pc.Color == color {
			kingSq = sq
			found = true
		}
	})
	return kingSq, found
}

func (e *Engine) isInCheck(color Color) bool {
	kingSq, ok := e.findKing(color)
	if !ok {
		return false
	}
	return e.isSquareAttacked(kingSq, color.Opposite())
}

// exposesCheck simulates the move on a value copy of the board and reports
// whether color's king would be attacked afterwards. An en-passant capture
// also removes the victim pawn, which can be the only blocker on the
// capture rank. The live board is restored unconditionally, so no other
// reader inside the call can observe the half-applied position.
func (e *Engine) exposesCheck(from, to Square, color Color) bool {
	saved := e.board

	pc := e.board.grid[from]
	if pc.Kind == Pawn && from.File() != to.File() && !e.board.occ.Has(to) {
		if victimSq, ok := e.enPassantVictimSquare(to, color); ok {
			e.board.clear(victimSq)
		}
	}
	e.board.clear(from)
	e.board.put(to, pc)

	inCheck := e.isInCheck(color)

	e.board = saved
	return inCheck
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
