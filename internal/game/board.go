package game

import (
	"math/rand"
	"strings"

	"github.com/Harel-levin/chess-39-project/internal/shared"
)

// Board is a total mapping from the 64 squares to optional occupants,
// backed by a value grid and an occupancy bitboard. It is cheap to copy by
// value, which the engine relies on for the self-check simulation.
type Board struct {
	grid [64]Piece
	occ  Bitboard
}

// At returns a copy of the occupant on sq, if any.
func (b *Board) At(sq Square) (Piece, bool) {
	if !b.occ.Has(sq) {
		return Piece{}, false
	}
	return b.grid[sq], true
}

func (b *Board) Occupied() Bitboard { return b.occ }

func (b *Board) put(sq Square, pc Piece) {
	b.grid[sq] = pc
	b.occ = b.occ.Add(sq)
}

func (b *Board) clear(sq Square) {
	b.grid[sq] = Piece{}
	b.occ = b.occ.Remove(sq)
}

// Setup places the two generated armies. Per side: the king goes on a
// uniformly random back-rank square, pawns fill the second rank left to
// right, and the remaining pieces fill the free back-rank squares left to
// right. Pieces that do not fit are dropped rather than failing; that can
// only happen when the generator's invariants were violated upstream.
func (b *Board) Setup(white, black []shared.PieceType, rng *rand.Rand) {
	b.placeArmy(white, White, rng)
	b.placeArmy(black, Black, rng)
}

func (b *Board) placeArmy(pieces []shared.PieceType, color Color, rng *rand.Rand) {
	backRank, pawnRank := 0, 1
	if color == Black {
		backRank, pawnRank = 7, 6
	}

	kingFile := rng.Intn(8)
	kingSq, _ := SquareFromCoords(backRank, kingFile)
	b.put(kingSq, Piece{Kind: King, Color: color})

	pawnFile := 0
	backFile := 0
	for _, pt := range pieces {
		switch pt {
		case King:
			// Already placed.
		case Pawn:
			if pawnFile > 7 {
				continue
			}
			sq, _ := SquareFromCoords(pawnRank, pawnFile)
			b.put(sq, Piece{Kind: Pawn, Color: color})
			pawnFile++
		default:
			for backFile == kingFile {
				backFile++
			}
			if backFile > 7 {
				continue
			}
			sq, _ := SquareFromCoords(backRank, backFile)
			b.put(sq, Piece{Kind: pt, Color: color})
			backFile++
		}
	}
}

// String renders an ASCII diagram, rank 8 at the top, white pieces in
// uppercase.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteString(" | ")
		for file := 0; file < 8; file++ {
			sq, _ := SquareFromCoords(rank, file)
			pc, ok := b.At(sq)
			if !ok {
				sb.WriteString(". ")
				continue
			}
			letter := pc.Kind.String()
			if pc.Color == Black {
				letter = strings.ToLower(letter)
			}
			sb.WriteString(letter)
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("    ---------------\n")
	sb.WriteString("    a b c d e f g h")
	return sb.String()
}
