package game

import (
	"strconv"
	"strings"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/Harel-levin/chess-39-project/internal/shared"
)

// FEN parse failures, matchable with errors.Is. Decoding collects one
// wrapped error per malformed field so a caller sees everything wrong with
// a string at once.
var (
	ErrFENFieldCount = errors.New("fen: wrong number of fields")
	ErrFENPlacement  = errors.New("fen: malformed piece placement")
	ErrFENPiece      = errors.New("fen: unknown piece letter")
	ErrFENColor      = errors.New("fen: invalid active color")
	ErrFENClock      = errors.New("fen: non-numeric clock field")
)

// Position is the FEN-field tuple: board contents plus the metadata needed
// to resume play.
type Position struct {
	Board          Board
	Turn           Color
	Castling       CastlingRights
	EnPassant      EnPassantTarget
	HalfmoveClock  int
	FullmoveNumber int
}

// Position returns a copy of the engine's current position tuple.
func (e *Engine) Position() Position {
	return Position{
		Board:          e.board,
		Turn:           e.turn,
		Castling:       e.castling,
		EnPassant:      e.enPassant,
		HalfmoveClock:  e.halfmoveClock,
		FullmoveNumber: e.fullmoveNumber,
	}
}

// FEN encodes the current position as a single-line six-field string.
func (e *Engine) FEN() string { return EncodePosition(e.Position()) }

// FromPosition builds an engine over an existing position, for example one
// decoded from FEN. Terminal conditions already present in the position
// are detected immediately.
func FromPosition(pos Position, whitePlayerID, blackPlayerID string) *Engine {
	e := &Engine{
		board:          pos.Board,
		whitePlayerID:  whitePlayerID,
		blackPlayerID:  blackPlayerID,
		turn:           pos.Turn,
		castling:       pos.Castling,
		enPassant:      pos.EnPassant,
		halfmoveClock:  pos.HalfmoveClock,
		fullmoveNumber: pos.FullmoveNumber,
		status:         StatusOngoing,
	}
	e.updateStatus()
	return e
}

// EncodePosition renders the six space-separated FEN fields: placement
// with empty-run compression (rank 8 first, white uppercase), active
// color, castling availability, en-passant target, halfmove clock and
// fullmove number.
func EncodePosition(pos Position) string {
	var sb strings.Builder
	sb.WriteString(encodePlacement(&pos.Board))
	sb.WriteByte(' ')
	if pos.Turn == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(pos.EnPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.FullmoveNumber))
	return sb.String()
}

// ParsePosition is the inverse of EncodePosition.
func ParsePosition(fen string) (Position, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) != 6 {
		return Position{}, errors.Wrapf(ErrFENFieldCount, "got %d, want 6", len(fields))
	}

	var pos Position
	var result *multierror.Error

	board, err := parsePlacement(fields[0])
	if err != nil {
		result = multierror.Append(result, err)
	} else {
		pos.Board = board
	}

	switch fields[1] {
	case "w":
		pos.Turn = White
	case "b":
		pos.Turn = Black
	default:
		result = multierror.Append(result, errors.Wrapf(ErrFENColor, "%q", fields[1]))
	}

	castling, err := shared.ParseCastlingRights(fields[2])
	if err != nil {
		result = multierror.Append(result, err)
	} else {
		pos.Castling = castling
	}

	enPassant, err := shared.ParseEnPassantTarget(fields[3])
	if err != nil {
		result = multierror.Append(result, err)
	} else {
		pos.EnPassant = enPassant
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		result = multierror.Append(result, errors.Wrapf(ErrFENClock, "halfmove %q", fields[4]))
	} else {
		pos.HalfmoveClock = halfmove
	}

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		result = multierror.Append(result, errors.Wrapf(ErrFENClock, "fullmove %q", fields[5]))
	} else {
		pos.FullmoveNumber = fullmove
	}

	if err := result.ErrorOrNil(); err != nil {
		return Position{}, err
	}
	return pos, nil
}

func encodePlacement(b *Board) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		emptyRun := 0
		for file := 0; file < 8; file++ {
			sq, _ := SquareFromCoords(rank, file)
			pc, ok := b.At(sq)
			if !ok {
				emptyRun++
				continue
			}
			if emptyRun > 0 {
				sb.WriteString(strconv.Itoa(emptyRun))
				emptyRun = 0
			}
			letter := pc.Kind.String()
			if pc.Color == Black {
				letter = strings.ToLower(letter)
			}
			sb.WriteString(letter)
		}
		if emptyRun > 0 {
			sb.WriteString(strconv.Itoa(emptyRun))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

func parsePlacement(s string) (Board, error) {
	var board Board
	rows := strings.Split(s, "/")
	if len(rows) != 8 {
		return Board{}, errors.Wrapf(ErrFENPlacement, "got %d ranks, want 8", len(rows))
	}
	for i, row := range rows {
		rank := 7 - i
		file := 0
		for _, r := range row {
			if r >= '0' && r <= '9' {
				if r == '0' || r == '9' {
					return Board{}, errors.Wrapf(ErrFENPlacement, "empty run %q in rank %d", string(r), rank+1)
				}
				file += int(r - '0')
				continue
			}
			pt, ok := pieceFromFENLetter(r)
			if !ok {
				return Board{}, errors.Wrapf(ErrFENPiece, "%q in rank %d", string(r), rank+1)
			}
			color := Black
			if r >= 'A' && r <= 'Z' {
				color = White
			}
			sq, ok := SquareFromCoords(rank, file)
			if !ok {
				return Board{}, errors.Wrapf(ErrFENPlacement, "rank %d overflows 8 files", rank+1)
			}
			board.put(sq, Piece{Kind: pt, Color: color})
			file++
		}
		if file != 8 {
			return Board{}, errors.Wrapf(ErrFENPlacement, "rank %d covers %d files, want 8", rank+1, file)
		}
	}
	return board, nil
}

func pieceFromFENLetter(r rune) (PieceType, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return 0, false
	}
}
