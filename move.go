package chess

// MoveKind distinguishes the four move shapes named in spec.md §3/§6.
// Castling is encoded as "king captures own rook" (From = king square,
// To = rook square) so that Chess960 castling needs no special case beyond
// this tag.
type MoveKind uint8

const (
	Normal MoveKind = iota
	Promotion
	EnPassant
	Castling
)

// Move packs (from, to, promotion piece type, kind) into a 16-bit integer,
// matching the compact encoding described in spec.md §6: from(6) to(6)
// promotion(2) kind(2). The promotion field stores PieceType-Knight
// (Knight=0 .. Queen=3) to fit two bits.
type Move uint16

const NullMove Move = 0

func MakeMove(from, to Square, kind MoveKind, promotion PieceType) Move {
	var promoBits uint16
	if kind == Promotion {
		promoBits = uint16(promotion-Knight) & 0x3
	}
	return Move(uint16(from)&0x3f | (uint16(to)&0x3f)<<6 | promoBits<<12 | uint16(kind)<<14)
}

func (m Move) From() Square       { return Square(m & 0x3f) }
func (m Move) To() Square         { return Square((m >> 6) & 0x3f) }
func (m Move) Kind() MoveKind     { return MoveKind((m >> 14) & 0x3) }
func (m Move) PromotionType() PieceType {
	if m.Kind() != Promotion {
		return NoPieceType
	}
	return PieceType((m>>12)&0x3) + Knight
}

func (m Move) IsNull() bool { return m == NullMove }

// Uci returns the move in Universal Chess Interface notation, following the
// teacher's Uci/San naming split but operating on the packed encoding.
func (m Move) Uci() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.Kind() == Promotion {
		s += string(pieceTypeLetters[m.PromotionType()] + ('a' - 'A'))
	}
	return s
}

func (m Move) String() string { return m.Uci() }
