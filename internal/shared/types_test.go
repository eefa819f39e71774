package shared

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSquareNotationRoundTrip(t *testing.T) {
	for sq := Square(0); sq < 64; sq++ {
		parsed, ok := CoordToSquare(sq.String())
		require.True(t, ok, "square %d", sq)
		require.Equal(t, sq, parsed)
	}
}

func TestCoordToSquareRejectsInvalid(t *testing.T) {
	for _, coord := range []string{"", "e", "e44", "i4", "a0", "a9", "E4", "44"} {
		_, ok := CoordToSquare(coord)
		require.False(t, ok, "coord %q", coord)
	}
}

func TestSquareRankFile(t *testing.T) {
	sq, ok := CoordToSquare("e4")
	require.True(t, ok)
	require.Equal(t, 3, sq.Rank())
	require.Equal(t, 4, sq.File())
}

func TestPieceValues(t *testing.T) {
	tests := []struct {
		pt    PieceType
		value int
	}{
		{Pawn, 1},
		{Knight, 3},
		{Bishop, 3},
		{Rook, 5},
		{Queen, 9},
		{King, 0},
	}
	for _, tt := range tests {
		require.Equal(t, tt.value, tt.pt.Value(), "piece %s", tt.pt)
	}
}

func TestParsePromotionPiece(t *testing.T) {
	for _, s := range []string{"q", "queen", "R", "bishop", "n"} {
		_, ok := ParsePromotionPiece(s)
		require.True(t, ok, "input %q", s)
	}
	for _, s := range []string{"p", "pawn", "k", "king", ""} {
		_, ok := ParsePromotionPiece(s)
		require.False(t, ok, "input %q", s)
	}
}

func TestCastlingRightsStringRoundTrip(t *testing.T) {
	tests := []string{"-", "K", "Q", "k", "q", "KQ", "kq", "KQkq", "Kq"}
	for _, s := range tests {
		rights, err := ParseCastlingRights(s)
		require.NoError(t, err, "input %q", s)
		require.Equal(t, s, rights.String())
	}

	_, err := ParseCastlingRights("KX")
	require.Error(t, err)
}

func TestCastlingRightsMonotoneOps(t *testing.T) {
	rights := CastlingAll
	rights = rights.WithoutColor(White)
	require.False(t, rights.HasSide(White, CastleKingside))
	require.False(t, rights.HasSide(White, CastleQueenside))
	require.True(t, rights.HasSide(Black, CastleKingside))

	rights = rights.Without(CastlingRight(Black, CastleQueenside))
	require.True(t, rights.HasSide(Black, CastleKingside))
	require.False(t, rights.HasSide(Black, CastleQueenside))
}

func TestEnPassantTargetRoundTrip(t *testing.T) {
	none, err := ParseEnPassantTarget("-")
	require.NoError(t, err)
	require.False(t, none.Valid())
	require.Equal(t, "-", none.String())

	target, err := ParseEnPassantTarget("d6")
	require.NoError(t, err)
	sq, ok := target.Square()
	require.True(t, ok)
	require.Equal(t, "d6", sq.String())

	_, err = ParseEnPassantTarget("z9")
	require.Error(t, err)
}

func TestLine(t *testing.T) {
	mustSquare := func(coord string) Square {
		sq, ok := CoordToSquare(coord)
		require.True(t, ok, "coord %q", coord)
		return sq
	}

	tests := []struct {
		name string
		from string
		to   string
		want []string
	}{
		{name: "file", from: "a1", to: "a4", want: []string{"a2", "a3"}},
		{name: "rank", from: "h5", to: "e5", want: []string{"g5", "f5"}},
		{name: "diagonal", from: "c1", to: "g5", want: []string{"d2", "e3", "f4"}},
		{name: "adjacent", from: "e4", to: "e5", want: nil},
		{name: "knight shape", from: "b1", to: "c3", want: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := Line(mustSquare(tt.from), mustSquare(tt.to))
			require.Len(t, got, len(tt.want))
			for i, coord := range tt.want {
				require.Equal(t, mustSquare(coord), got[i])
			}
		})
	}
}

func TestColorOpposite(t *testing.T) {
	require.Equal(t, Black, White.Opposite())
	require.Equal(t, White, Black.Opposite())
}
