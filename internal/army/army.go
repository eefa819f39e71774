// Package army generates randomized Chess 39 armies: a set of pieces whose
// point values sum to a fixed budget, filled out with pawns and capped by a
// maximum pawn count, plus exactly one king.
package army

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/Harel-levin/chess-39-project/internal/shared"
)

const (
	// TargetPoints is the exact point budget one side's pieces must sum
	// to, king excluded.
	TargetPoints = 39
	// MaxPawns bounds the pawn fill; an attempt needing more is rejected.
	MaxPawns = 8
	// MaxArmySize is the total piece count one side may field, king
	// included. Cheap minor-piece draws can overshoot it (11 knights and
	// 6 pawns still sum to 39), so it is a rejection condition of its own.
	MaxArmySize = 16

	// The rejection loop terminates almost surely, not provably. The cap
	// turns pathological non-termination into a reportable fault.
	maxAttempts = 10000
)

// ErrBudgetExhausted is returned when no valid army was found within the
// attempt cap. Reaching it indicates a broken random source rather than an
// unlucky run.
var ErrBudgetExhausted = errors.New("army: attempt limit reached without a valid army")

var majorPieces = [...]shared.PieceType{
	shared.Queen,
	shared.Rook,
	shared.Bishop,
	shared.Knight,
}

// Generator produces armies from an injected random source so that
// generation is reproducible under test.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate returns an army whose values sum to TargetPoints with at most
// MaxPawns pawns and a trailing king. Major pieces are drawn in a shuffled
// order with uniform counts bounded by the remaining budget; the remainder
// is filled with pawns, and the whole attempt is discarded when that fill
// would exceed MaxPawns.
func (g *Generator) Generate() ([]shared.PieceType, error) {
	order := make([]shared.PieceType, len(majorPieces))
	copy(order, majorPieces[:])

	for attempt := 0; attempt < maxAttempts; attempt++ {
		army := make([]shared.PieceType, 0, 16)
		remaining := TargetPoints

		g.rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})

		for _, pt := range order {
			maxCount := remaining / pt.Value()
			count := g.rng.Intn(maxCount + 1)
			for i := 0; i < count; i++ {
				army = append(army, pt)
			}
			remaining -= count * pt.Value()
		}

		// Pawns are worth one point each, so the leftover budget is
		// exactly the pawn count.
		if remaining > MaxPawns || len(army)+remaining+1 > MaxArmySize {
			continue
		}
		for i := 0; i < remaining; i++ {
			army = append(army, shared.Pawn)
		}
		army = append(army, shared.King)
		return army, nil
	}
	return nil, errors.Wrapf(ErrBudgetExhausted, "after %d attempts", maxAttempts)
}
