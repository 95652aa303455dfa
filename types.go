// Package chess implements the position core of a chess engine: the board
// representation, move application and reversal, incremental hashing,
// static exchange evaluation and draw detection, for standard chess and seven
// variants (Chess960, Three-Check, King-of-the-Hill, Racing Kings, Horde,
// Atomic, Antichess).
package chess

// Color identifies a side.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// PieceType identifies a kind of piece, ignoring color.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PieceTypeNB = 7
)

var pieceTypeLetters = [PieceTypeNB]rune{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}

func (pt PieceType) String() string {
	if pt >= PieceTypeNB {
		return "?"
	}
	return string(pieceTypeLetters[pt])
}

// Piece fuses a Color and a PieceType into a single small value, following
// the teacher's (White|PieceType) encoding so that Piece.Color/Piece.Type
// are cheap masks rather than a struct dereference.
type Piece uint8

const (
	NoPiece Piece = 0
)

// MakePiece fuses a color and piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(pt)<<1 | Piece(c)
}

func (p Piece) Color() Color       { return Color(p & 1) }
func (p Piece) Type() PieceType    { return PieceType(p >> 1) }
func (p Piece) IsNone() bool       { return p == NoPiece }

var (
	WP = MakePiece(White, Pawn)
	WN = MakePiece(White, Knight)
	WB = MakePiece(White, Bishop)
	WR = MakePiece(White, Rook)
	WQ = MakePiece(White, Queen)
	WK = MakePiece(White, King)
	BP = MakePiece(Black, Pawn)
	BN = MakePiece(Black, Knight)
	BB = MakePiece(Black, Bishop)
	BR = MakePiece(Black, Rook)
	BQ = MakePiece(Black, Queen)
	BK = MakePiece(Black, King)
)

var pieceLetters = map[Piece]rune{
	NoPiece: '.',
	WP: 'P', WN: 'N', WB: 'B', WR: 'R', WQ: 'Q', WK: 'K',
	BP: 'p', BN: 'n', BB: 'b', BR: 'r', BQ: 'q', BK: 'k',
}

func (p Piece) String() string {
	if r, ok := pieceLetters[p]; ok {
		return string(r)
	}
	return "?"
}

func pieceFromChar(c rune) Piece {
	for p, r := range pieceLetters {
		if r == c && p != NoPiece {
			return p
		}
	}
	return NoPiece
}

// File and Rank are 0-7, file A/rank 1 = 0.
type File int8
type Rank int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// Square is a board square, 0..63, file-major within rank (a1=0, b1=1, ...,
// h1=7, a2=8, ..., h8=63), matching the teacher's layout.
type Square int8

const (
	A1, B1, C1, D1, E1, F1, G1, H1 Square = 8*iota + 0, 8*iota + 1, 8*iota + 2,
		8*iota + 3, 8*iota + 4, 8*iota + 5, 8*iota + 6, 8*iota + 7
	A2, B2, C2, D2, E2, F2, G2, H2
	A3, B3, C3, D3, E3, F3, G3, H3
	A4, B4, C4, D4, E4, F4, G4, H4
	A5, B5, C5, D5, E5, F5, G5, H5
	A6, B6, C6, D6, E6, F6, G6, H6
	A7, B7, C7, D7, E7, F7, G7, H7
	A8, B8, C8, D8, E8, F8, G8, H8

	NoSquare Square = -1

	SquareNB = 64
)

// MakeSquare returns the square with the given file and rank.
func MakeSquare(f File, r Rank) Square { return Square(int(r)*8 + int(f)) }

func (sq Square) File() File { return File(int(sq) % 8) }
func (sq Square) Rank() Rank { return Rank(int(sq) / 8) }

// RelativeRank returns the square's rank relative to the given side.
func (sq Square) RelativeRank(c Color) Rank {
	if c == White {
		return sq.Rank()
	}
	return Rank8 - sq.Rank()
}

var squareNames = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

func (sq Square) String() string {
	if sq == NoSquare || sq < 0 || int(sq) >= len(squareNames) {
		return "-"
	}
	return squareNames[sq]
}

func squareFromString(s string) Square {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare
	}
	return MakeSquare(File(s[0]-'a'), Rank(s[1]-'1'))
}

// CastlingRight identifies one of the four (color, wing) castling rights.
type CastlingRight uint8

const (
	WhiteOO CastlingRight = iota
	WhiteOOO
	BlackOO
	BlackOOO
	CastlingRightNB = 4
)

func castlingRight(c Color, kingside bool) CastlingRight {
	switch {
	case c == White && kingside:
		return WhiteOO
	case c == White && !kingside:
		return WhiteOOO
	case c == Black && kingside:
		return BlackOO
	default:
		return BlackOOO
	}
}

// Variant is a bitmask of rule-set modifiers; the zero value is standard
// chess. Only the combinations named by the constants below are meaningful,
// per spec.md §3 ("Most combinations are nonsensical").
type Variant uint16

const (
	Chess960 Variant = 1 << iota
	ThreeCheck
	KingOfTheHill
	RacingKings
	Horde
	Atomic
	Antichess
)

func (v Variant) Has(f Variant) bool { return v&f != 0 }

func (v Variant) String() string {
	if v == 0 {
		return "chess"
	}
	names := []struct {
		f Variant
		s string
	}{
		{Chess960, "chess960"}, {ThreeCheck, "3check"}, {KingOfTheHill, "koth"},
		{RacingKings, "racingkings"}, {Horde, "horde"}, {Atomic, "atomic"},
		{Antichess, "antichess"},
	}
	s := ""
	for _, n := range names {
		if v.Has(n.f) {
			if s != "" {
				s += "+"
			}
			s += n.s
		}
	}
	return s
}

// HasKing reports whether a position of this variant is expected to have a
// king for the given color in the normal course of play (Horde's white side
// never has one; after Atomic removes the last king or Antichess is played
// to the end, a position may transiently violate this too).
func (v Variant) HasKing(c Color) bool {
	return !(v.Has(Horde) && c == White) && !v.Has(Antichess)
}
