package chess

// BlastEntry records one piece removed by an Atomic explosion, so that
// UndoMove can restore it. StateInfo.Blast holds these (square, piece)
// pairs in a growable slice, not a fixed-size array or a sparse 64-entry map.
type BlastEntry struct {
	Square Square
	Piece  Piece
}

// StateInfo is the per-ply mutable metadata described in spec.md §3. States
// form a singly-linked history chain; the chain is a stack owned by the
// caller (the search), per spec.md §5 — DoMove writes into a caller-supplied
// slot and links it to the current state, UndoMove simply moves the
// Position's state pointer back to Previous without freeing anything.
type StateInfo struct {
	Key         uint64
	PawnKey     uint64
	MaterialKey uint64

	NonPawnMaterial [2]Score
	Psq             Score

	CastlingRights uint8 // bit i set <=> CastlingRight(i) is available
	EpSquare       Square
	Rule50         int
	PliesFromNull  int

	Checkers Bitboard

	BlockersForKing [2]Bitboard
	CheckSquares    [PieceTypeNB]Bitboard

	CapturedPiece Piece

	// ChecksGiven is Three-Check's running count per side; meaningless
	// (left at zero) outside that variant.
	ChecksGiven [2]int

	// Blast holds the pieces removed by the Atomic explosion that produced
	// this state (empty outside Atomic or for non-capturing moves).
	Blast []BlastEntry

	Previous *StateInfo
}

// clone copies every field of prev into st except the fields DoMove is
// about to recompute (Checkers, the blocker/check-square caches, and
// CapturedPiece/Blast, which describe *this* move rather than carrying
// over), matching step 1 of spec.md §4.8.
func (st *StateInfo) clone(prev *StateInfo) {
	*st = StateInfo{
		Key:             prev.Key,
		PawnKey:         prev.PawnKey,
		MaterialKey:     prev.MaterialKey,
		NonPawnMaterial: prev.NonPawnMaterial,
		Psq:             prev.Psq,
		CastlingRights:  prev.CastlingRights,
		EpSquare:        NoSquare,
		Rule50:          prev.Rule50,
		PliesFromNull:   prev.PliesFromNull,
		ChecksGiven:     prev.ChecksGiven,
		Previous:        prev,
	}
}

func (st *StateInfo) hasCastling(cr CastlingRight) bool {
	return st.CastlingRights&(1<<cr) != 0
}

func (st *StateInfo) setCastling(cr CastlingRight, ok bool) {
	if ok {
		st.CastlingRights |= 1 << cr
	} else {
		st.CastlingRights &^= 1 << cr
	}
}
