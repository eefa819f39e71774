package game

// fiftyMoveHalfmoves is the halfmove-clock threshold for the fifty-move
// draw: one hundred plies without a capture or pawn move.
const fiftyMoveHalfmoves = 100

func (e *Engine) hasLegalMove(color Color) bool {
	found := false
	e.board.occ.Iter(func(from Square) {
		if found {
			return
		}
		pc := e.board.grid[from]
		if pc.Color != color {
			return
		}
		for to := Square(0); to < 64; to++ {
			if !e.validMove(from, to, pc) {
				continue
			}
			if e.exposesCheck(from, to, color) {
				continue
			}
			found = true
			return
		}
	})
	return found
}

// LegalMoves enumerates every fully legal move for the side to move. An
// empty slice on an ongoing game means the position is terminal and the
// next status update will record mate or stalemate.
func (e *Engine) LegalMoves() []Move {
	var moves []Move
	e.board.occ.Iter(func(from Square) {
		pc := e.board.grid[from]
		if pc.Color != e.turn {
			return
		}
		for to := Square(0); to < 64; to++ {
			if !e.validMove(from, to, pc) {
				continue
			}
			if e.exposesCheck(from, to, pc.Color) {
				continue
			}
			moves = append(moves, Move{From: from, To: to})
		}
	})
	return moves
}

// updateStatus recomputes the terminal conditions for the side to move.
// The fifty-move draw is evaluated last and takes precedence over a mate
// or stalemate reached in the same position.
func (e *Engine) updateStatus() {
	if !e.hasLegalMove(e.turn) {
		if e.isInCheck(e.turn) {
			e.status = StatusCheckmate
			e.winner = e.turn.Opposite()
			e.hasWinner = true
		} else {
			e.status = StatusStalemate
		}
	}

	if e.halfmoveClock >= fiftyMoveHalfmoves {
		e.status = StatusDraw
		e.hasWinner = false
	}
}
