package shared

// Delta is a rank/file displacement. Jumping pieces use exact offsets,
// sliding pieces repeat a direction until blocked.
type Delta struct {
	DR int
	DF int
}

var (
	KnightOffsets = [...]Delta{
		{DR: 2, DF: 1}, {DR: 2, DF: -1}, {DR: -2, DF: 1}, {DR: -2, DF: -1},
		{DR: 1, DF: 2}, {DR: 1, DF: -2}, {DR: -1, DF: 2}, {DR: -1, DF: -2},
	}
	KingOffsets = [...]Delta{
		{DR: 1, DF: 0}, {DR: -1, DF: 0}, {DR: 0, DF: 1}, {DR: 0, DF: -1},
		{DR: 1, DF: 1}, {DR: 1, DF: -1}, {DR: -1, DF: 1}, {DR: -1, DF: -1},
	}
)

// Line returns the squares strictly between from and to when they share a
// rank, file or diagonal, and nil otherwise. Adjacent squares yield an
// empty line.
func Line(from, to Square) []Square {
	dr := to.Rank() - from.Rank()
	df := to.File() - from.File()
	stepR := normalize(dr)
	stepF := normalize(df)

	aligned := false
	switch {
	case dr == 0 && df != 0:
		stepR = 0
		aligned = true
	case df == 0 && dr != 0:
		stepF = 0
		aligned = true
	case abs(dr) == abs(df) && dr != 0:
		aligned = true
	}

	if !aligned {
		return nil
	}

	distance := maxInt(abs(dr), abs(df)) - 1
	if distance <= 0 {
		return nil
	}

	squares := make([]Square, 0, distance)
	rank := from.Rank()
	file := from.File()
	for i := 0; i < distance; i++ {
		rank += stepR
		file += stepF
		sq, ok := SquareFromCoords(rank, file)
		if !ok {
			return nil
		}
		squares = append(squares, sq)
	}
	return squares
}

func normalize(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
