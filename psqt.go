package chess

// Score packs a midgame and endgame evaluation term into one int32 (high 16
// bits endgame, low 16 bits midgame), the idiom used throughout the pack's
// evaluation code (e.g. daystram/gambit's packed score, GooseEngine's
// evaluation_util) to keep incremental PSQT updates to a single add/sub
// instead of two. The position core only maintains this incrementally; it
// does not interpret it (spec.md §1: "evaluation function ... are inputs").
type Score int32

func MakeScore(mg, eg int16) Score { return Score(int32(eg)<<16 | int32(uint16(mg))) }
func (s Score) MG() int16          { return int16(uint32(s) & 0xffff) }
func (s Score) EG() int16          { return int16(uint32(s) >> 16) }

// PieceValue holds material point values, indexed by PieceType. These are
// inputs to the (out-of-scope) evaluator; the position core only sums them
// for NonPawnMaterial. SEE uses its own seeValue table below.
var PieceValue = [PieceTypeNB]Score{
	NoPieceType: MakeScore(0, 0),
	Pawn:        MakeScore(126, 208),
	Knight:      MakeScore(781, 854),
	Bishop:      MakeScore(825, 915),
	Rook:        MakeScore(1276, 1380),
	Queen:       MakeScore(2538, 2682),
	King:        MakeScore(0, 0),
}

// seeValue is the plain material value used by SEE, where the king's value
// must still dominate every other piece (so that losing a king is never
// mistaken for a good trade) without overflowing int.
var seeValue = [PieceTypeNB]int{
	NoPieceType: 0,
	Pawn:        208,
	Knight:      854,
	Bishop:      915,
	Rook:        1380,
	Queen:       2682,
	King:        32000,
}

// pieceSquareTable[pt][sq] holds the (midgame, endgame) bonus for a white
// piece of type pt standing on sq; black's tables are the vertical mirror,
// applied in psqBonus.
var pieceSquareTable [PieceTypeNB][64]Score

func init() {
	// A small, deliberately simple set of positional tendencies (center
	// control for knights/bishops, open files for rooks, king safety early
	// vs. activity late) — illustrative inputs, not tuned engine weights;
	// spec.md §1 treats these as inputs to an external evaluator.
	centerBonus := func(sq Square) int16 {
		f, r := int(sq.File()), int(sq.Rank())
		df, dr := f-3, r-3
		if df < 0 {
			df = -df
		}
		if dr < 0 {
			dr = -dr
		}
		dist := df
		if dr > dist {
			dist = dr
		}
		return int16(3 - dist)
	}
	for sq := A1; sq <= H8; sq++ {
		c := centerBonus(sq)
		pieceSquareTable[Pawn][sq] = MakeScore(c, c/2)
		pieceSquareTable[Knight][sq] = MakeScore(4*c, 4*c)
		pieceSquareTable[Bishop][sq] = MakeScore(3*c, 3*c)
		pieceSquareTable[Rook][sq] = MakeScore(0, c)
		pieceSquareTable[Queen][sq] = MakeScore(c, c)
		rank := sq.Rank()
		pieceSquareTable[King][sq] = MakeScore(int16(8-2*int(rank)), 4*c)
	}
}

// psqBonus returns the incremental piece-square score for placing piece p on
// sq, from white's point of view: a black piece reads the mirrored square and
// its bonus is returned negated, ready to fold into StateInfo.Psq.
func psqBonus(p Piece, sq Square) Score {
	pt := p.Type()
	if pt == NoPieceType {
		return 0
	}
	s := sq
	if p.Color() == Black {
		s = MakeSquare(sq.File(), Rank8-sq.Rank())
	}
	v := pieceSquareTable[pt][s]
	if p.Color() == Black {
		return MakeScore(-v.MG(), -v.EG())
	}
	return v
}
