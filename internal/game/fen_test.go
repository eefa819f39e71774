package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFENCanonicalRoundTrip(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"k7/8/8/8/4p3/8/3P4/K7 w - - 0 1",
		"k7/8/8/8/3Pp3/8/8/K7 b - d3 0 12",
		"4k3/8/8/8/8/8/8/R3K2R w KQ - 42 30",
		"8/8/8/8/8/2k5/1q6/K7 w - - 0 1",
	}
	for _, fen := range fens {
		pos, err := ParsePosition(fen)
		require.NoError(t, err, "fen %q", fen)
		require.Equal(t, fen, EncodePosition(pos), "fen %q", fen)
	}
}

func TestFENRoundTripOverFreshGames(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		eng, err := NewEngineWithRand("white", "black", rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		fen := eng.FEN()
		pos, err := ParsePosition(fen)
		require.NoError(t, err, "seed %d: %q", seed, fen)
		require.Equal(t, fen, EncodePosition(pos), "seed %d", seed)

		require.Equal(t, eng.Turn(), pos.Turn, "seed %d", seed)
		require.Equal(t, eng.Castling(), pos.Castling, "seed %d", seed)
		require.Equal(t, eng.HalfmoveClock(), pos.HalfmoveClock, "seed %d", seed)
		require.Equal(t, eng.FullmoveNumber(), pos.FullmoveNumber, "seed %d", seed)
	}
}

func TestFENTracksPlay(t *testing.T) {
	eng := engineFromFEN(t, "k7/8/8/8/4p3/8/3P4/K7 w - - 0 1")
	mustMove(t, eng, "d2", "d4")
	require.Equal(t, "k7/8/8/8/3Pp3/8/8/K7 b - d3 0 1", eng.FEN())

	mustMove(t, eng, "e4", "d3")
	require.Equal(t, "k7/8/8/8/8/3p4/8/K7 w - - 0 2", eng.FEN())
}

func TestParsePositionRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want []error
	}{
		{
			name: "too few fields",
			fen:  "k7/8/8/8/8/8/8/K7 w - -",
			want: []error{ErrFENFieldCount},
		},
		{
			name: "too many fields",
			fen:  "k7/8/8/8/8/8/8/K7 w - - 0 1 extra",
			want: []error{ErrFENFieldCount},
		},
		{
			name: "unknown piece letter",
			fen:  "k7/8/8/8/8/8/8/X7 w - - 0 1",
			want: []error{ErrFENPiece},
		},
		{
			name: "wrong rank count",
			fen:  "k7/8/8/8/8/8/K7 w - - 0 1",
			want: []error{ErrFENPlacement},
		},
		{
			name: "rank covering too few files",
			fen:  "k7/8/8/8/8/8/8/K6 w - - 0 1",
			want: []error{ErrFENPlacement},
		},
		{
			name: "rank overflowing eight files",
			fen:  "k7/8/8/8/8/8/8/K7P w - - 0 1",
			want: []error{ErrFENPlacement},
		},
		{
			name: "empty run of nine",
			fen:  "k7/9/8/8/8/8/8/K7 w - - 0 1",
			want: []error{ErrFENPlacement},
		},
		{
			name: "empty run of zero",
			fen:  "k7/8/8/8/8/8/8/K07 w - - 0 1",
			want: []error{ErrFENPlacement},
		},
		{
			name: "bad active color",
			fen:  "k7/8/8/8/8/8/8/K7 x - - 0 1",
			want: []error{ErrFENColor},
		},
		{
			name: "non-numeric halfmove clock",
			fen:  "k7/8/8/8/8/8/8/K7 w - - zero 1",
			want: []error{ErrFENClock},
		},
		{
			name: "negative halfmove clock",
			fen:  "k7/8/8/8/8/8/8/K7 w - - -3 1",
			want: []error{ErrFENClock},
		},
		{
			name: "zero fullmove number",
			fen:  "k7/8/8/8/8/8/8/K7 w - - 0 0",
			want: []error{ErrFENClock},
		},
		{
			name: "several bad fields reported together",
			fen:  "k7/8/8/8/8/8/8/K7 x - - zero 1",
			want: []error{ErrFENColor, ErrFENClock},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePosition(tt.fen)
			require.Error(t, err)
			for _, sentinel := range tt.want {
				require.ErrorIs(t, err, sentinel)
			}
		})
	}
}

func TestFromPositionDetectsTerminalStates(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		status Status
	}{
		{
			name:   "checkmate on the board",
			fen:    "8/8/8/8/8/2k5/1q6/K7 w - - 0 1",
			status: StatusCheckmate,
		},
		{
			name:   "stalemate on the board",
			fen:    "k7/8/1Q6/8/8/8/8/7K b - - 0 1",
			status: StatusStalemate,
		},
		{
			name:   "clock already at the draw threshold",
			fen:    "k7/8/8/8/8/8/8/K6R w - - 100 80",
			status: StatusDraw,
		},
		{
			name:   "ordinary middlegame",
			fen:    "k7/8/8/8/4p3/8/3P4/K7 w - - 0 1",
			status: StatusOngoing,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			eng := engineFromFEN(t, tt.fen)
			require.Equal(t, tt.status, eng.Status())
		})
	}
}
