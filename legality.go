package chess

// Legal reports whether the pseudo-legal move m leaves the side to move's
// own king safe, per spec.md §4.5. The variant branches are checked before
// the standard-chess rules; each variant's branch is documented inline.
func (pos *Position) Legal(m Move) bool {
	switch {
	case pos.variant.Has(Antichess):
		// No check concept: every pseudo-legal move is legal.
		return true
	case pos.variant.Has(RacingKings):
		return !pos.GivesCheck(m)
	case pos.variant.Has(Horde) && pos.sideToMove == White && pos.KingSquare(White) == NoSquare:
		return true
	case pos.variant.Has(Atomic):
		return pos.legalAtomic(m)
	default:
		return pos.legalStandard(m)
	}
}

func (pos *Position) legalStandard(m Move) bool {
	us := pos.sideToMove
	from, to := m.From(), m.To()
	kingSq := pos.KingSquare(us)
	if kingSq == NoSquare {
		return true // no king to endanger (e.g. a variant mid-setup)
	}

	if m.Kind() == EnPassant {
		capSq := MakeSquare(to.File(), from.Rank())
		occupied := pos.Occupied() &^ SquareBB(from) &^ SquareBB(capSq) | SquareBB(to)
		return pos.AttackersTo(kingSq, occupied)&pos.byColor[us.Other()]&^SquareBB(capSq) == 0
	}

	if m.Kind() == Castling {
		return pos.legalCastling(m)
	}

	if from == kingSq {
		// A non-castling king move: the destination must not be attacked
		// with the king itself removed from the occupancy.
		occupied := pos.Occupied() &^ SquareBB(from)
		return pos.AttackersTo(to, occupied)&pos.byColor[us.Other()] == 0
	}

	// While in check, any other move must capture the single checker or
	// block its line to the king.
	if pos.st.Checkers != 0 {
		if pos.st.Checkers.More() {
			return false
		}
		if !(Between(kingSq, pos.st.Checkers.LSB()) | pos.st.Checkers).Has(to) {
			return false
		}
	}

	// Any other move is legal unless the piece is pinned and the move
	// would leave the king-from-piece ray.
	if pos.st.BlockersForKing[us]&SquareBB(from) == 0 {
		return true
	}
	return Aligned(kingSq, from, to)
}

// legalCastling checks that the king is not currently in check, does not
// pass through an attacked square, and does not land on one, matching the
// standard castling-through-check rule even though spec.md §4.5 calls this
// "assumed legal" for the move-generation path; the core must still verify
// it since nothing upstream does.
func (pos *Position) legalCastling(m Move) bool {
	if pos.st.Checkers != 0 {
		return false
	}
	us := pos.sideToMove
	kingSq := m.From()
	rookSq := m.To()
	kingside := rookSq > kingSq
	kingTo := []Square{G1, C1}[boolIndex(!kingside)]
	if kingSq.Rank() == Rank8 {
		kingTo = []Square{G8, C8}[boolIndex(!kingside)]
	}
	occupiedAfter := pos.Occupied() &^ SquareBB(kingSq) &^ SquareBB(rookSq) | SquareBB(kingTo)
	path := Between(kingSq, kingTo) | SquareBB(kingTo) | SquareBB(kingSq)
	for b := path; b != 0; {
		sq := b.PopLSB()
		if pos.AttackersTo(sq, occupiedAfter)&pos.byColor[us.Other()] != 0 {
			return false
		}
	}
	return true
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}

// legalAtomic implements spec.md §4.5's Atomic rule: the king never
// captures; otherwise a move is legal if it blasts the enemy king (an
// immediate win, legal regardless of the own king's fate) or if the own
// king survives the explosion and is not left attacked by a slider through
// the revised occupancy (Atomic kings cannot be attacked by a
// non-adjacent-to-own-king piece if the two kings are adjacent, but that
// nuance only matters for GivesCheck; legality only cares about survival).
func (pos *Position) legalAtomic(m Move) bool {
	us := pos.sideToMove
	from, to := m.From(), m.To()
	isCapture := pos.board[to] != NoPiece || m.Kind() == EnPassant

	if pos.board[from].Type() == King && isCapture {
		return false
	}
	if !isCapture {
		return pos.legalStandard(m)
	}

	blastSquares := atomicBlastSquares(to, pos)
	ownKingSq := pos.KingSquare(us)
	enemyKingSq := pos.KingSquare(us.Other())
	if enemyKingSq != NoSquare && blastSquares.Has(enemyKingSq) {
		return true // wins outright regardless of own king's fate
	}
	if ownKingSq == NoSquare {
		return true
	}
	if blastSquares.Has(ownKingSq) {
		return false
	}
	// Revised occupancy after the capture and explosion.
	occupied := pos.Occupied() &^ SquareBB(from) &^ blastSquares
	if m.Kind() != EnPassant {
		occupied |= SquareBB(to) &^ blastSquares
	}
	attackers := pos.AttackersTo(ownKingSq, occupied) & pos.byColor[us.Other()] &^ blastSquares
	return attackers == 0
}

// atomicBlastSquares returns the bitboard of pieces an explosion on to
// would remove: every piece (any color) adjacent to to, excluding pawns,
// plus the capturing/captured pieces on to itself, per spec.md §4.8 step 5.
func atomicBlastSquares(to Square, pos *Position) Bitboard {
	blast := KingAttacksBB(to) &^ pos.byType[Pawn]
	return blast | SquareBB(to)
}

// PseudoLegal validates a move recovered from a possibly-corrupt
// transposition entry, per spec.md §4.6 and §7 (CorruptMove). It does not
// rebuild the full move list; it checks the move's own shape against the
// board directly, including en-passant and promotion moves. Only castling
// falls back to containment in the generated pseudo-legal list.
func (pos *Position) PseudoLegal(m Move) bool {
	if m.IsNull() {
		return false
	}
	if decided, _ := pos.VariantWinner(); decided {
		return false
	}
	from, to := m.From(), m.To()
	if from < A1 || from > H8 || to < A1 || to > H8 {
		return false
	}
	us := pos.sideToMove
	p := pos.board[from]
	if p == NoPiece || p.Color() != us {
		return false
	}
	if m.Kind() == Castling {
		for _, mm := range pos.PseudoLegalMoves() {
			if mm.Kind() == Castling && mm.From() == from && mm.To() == to {
				return true
			}
		}
		return false
	}
	if pos.board[to] != NoPiece && pos.board[to].Color() == us {
		return false
	}
	if m.Kind() == EnPassant {
		return to == pos.st.EpSquare && p.Type() == Pawn &&
			PawnAttacksBB(us, from).Has(to)
	}
	if m.Kind() == Promotion {
		if p.Type() != Pawn || to.RelativeRank(us) != Rank8 {
			return false
		}
	} else if p.Type() == Pawn && to.RelativeRank(us) == Rank8 {
		return false // a pawn reaching the last rank must be a Promotion move
	}

	switch p.Type() {
	case Pawn:
		if !pos.pawnGeometryOk(from, to, us) {
			return false
		}
	default:
		if !AttacksBB(p.Type(), from, pos.Occupied()).Has(to) {
			return false
		}
	}

	// Under check, a non-king move must block the check or capture the
	// single checker; a king move must not re-land on an attacked square.
	if pos.st.Checkers != 0 {
		if pos.st.Checkers.More() && p.Type() != King {
			return false // double check: only a king move can escape
		}
		if p.Type() != King {
			checkerSq := pos.st.Checkers.LSB()
			allowed := Between(pos.KingSquare(us), checkerSq) | pos.st.Checkers
			if !allowed.Has(to) {
				return false
			}
		} else if pos.AttackersTo(to, pos.Occupied()&^SquareBB(from))&pos.byColor[us.Other()] != 0 {
			return false
		}
	}
	return true
}

func (pos *Position) pawnGeometryOk(from, to Square, us Color) bool {
	forward := north
	if us == Black {
		forward = south
	}
	fromBB := SquareBB(from)
	single := shift(fromBB, forward)
	if single.Has(to) {
		return pos.board[to] == NoPiece
	}
	startRank := Rank2
	if us == Black {
		startRank = Rank7
	}
	if from.Rank() == startRank {
		if double := shift(single, forward); double.Has(to) {
			return pos.board[to] == NoPiece && pos.board[single.LSB()] == NoPiece
		}
	}
	if (shift(fromBB, forward+east).Has(to) || shift(fromBB, forward+west).Has(to)) {
		return pos.board[to] != NoPiece && pos.board[to].Color() != us
	}
	return false
}

// GivesCheck reports whether making m would put the opponent in check, per
// spec.md §4.7. The hint is trusted by DoMove (it must not be called with a
// wrong answer, per spec.md §6's consumer contract).
func (pos *Position) GivesCheck(m Move) bool {
	if pos.variant.Has(Antichess) || pos.variant.Has(RacingKings) {
		return false
	}
	them := pos.sideToMove.Other()
	from, to := m.From(), m.To()
	enemyKingSq := pos.KingSquare(them)
	if enemyKingSq == NoSquare {
		return false
	}

	if pos.variant.Has(Atomic) {
		return pos.givesCheckAtomic(m)
	}

	return pos.givesCheckDirect(from, to, m.Kind(), m.PromotionType(), enemyKingSq)
}

// givesCheckDirect implements the non-variant-specific direct/discovered
// check test: direct checks via CheckSquares, discovered checks via
// BlockersForKing, and the promotion/en-passant/castling special cases. It
// never re-dispatches on variant, so Atomic's non-capturing moves can call
// it directly instead of recursing back through GivesCheck.
func (pos *Position) givesCheckDirect(from, to Square, kind MoveKind, promotion PieceType, enemyKingSq Square) bool {
	us := pos.sideToMove
	them := us.Other()
	pt := pos.board[from].Type()
	if kind != Castling && kind != Promotion && kind != EnPassant {
		if pt != King && pos.st.CheckSquares[pt].Has(to) {
			return true
		}
	}

	// Discovered check: moving a piece that blocks an own slider's attack
	// on the enemy king, off the line between that slider and the king.
	if pos.st.BlockersForKing[them].Has(from) && !Aligned(from, to, enemyKingSq) {
		return true
	}

	switch kind {
	case Promotion:
		occupied := pos.Occupied() &^ SquareBB(from) | SquareBB(to)
		return AttacksBB(promotion, to, occupied).Has(enemyKingSq)
	case EnPassant:
		capSq := MakeSquare(to.File(), from.Rank())
		occupied := pos.Occupied() &^ SquareBB(from) &^ SquareBB(capSq) | SquareBB(to)
		return (RookAttacksBB(enemyKingSq, occupied)&(pos.byColor[us]&(pos.byType[Rook]|pos.byType[Queen])) != 0) ||
			(BishopAttacksBB(enemyKingSq, occupied)&(pos.byColor[us]&(pos.byType[Bishop]|pos.byType[Queen])) != 0)
	case Castling:
		kingside := to > from
		rookDest := []Square{F1, D1}[boolIndex(!kingside)]
		if from.Rank() == Rank8 {
			rookDest = []Square{F8, D8}[boolIndex(!kingside)]
		}
		occupied := pos.Occupied() &^ SquareBB(from) &^ SquareBB(to) | SquareBB(rookDest)
		return RookAttacksBB(rookDest, occupied).Has(enemyKingSq)
	default:
		return false
	}
}

// givesCheckAtomic accounts for Atomic's extra logic per spec.md §4.7:
// adjacent kings nullify all checks, and captures remove blasted pieces
// which may uncover (or destroy) discovered checks. Ported from the
// original's two king-adjacency legs: a king move that lands adjacent to
// the enemy king is never a check, and neither is any move played while the
// kings are already adjacent.
func (pos *Position) givesCheckAtomic(m Move) bool {
	us := pos.sideToMove
	from, to := m.From(), m.To()
	enemyKingSq := pos.KingSquare(us.Other())
	ownKingSq := pos.KingSquare(us)

	if pos.board[from].Type() == King && KingAttacksBB(enemyKingSq).Has(to) {
		return false // the king move itself lands adjacent to the enemy king
	}
	if ownKingSq != NoSquare && KingAttacksBB(enemyKingSq).Has(ownKingSq) {
		return false // kings are already adjacent before the move
	}

	isCapture := pos.board[to] != NoPiece || m.Kind() == EnPassant
	if !isCapture {
		return pos.givesCheckDirect(from, to, m.Kind(), m.PromotionType(), enemyKingSq)
	}
	blast := atomicBlastSquares(to, pos)
	if blast.Has(enemyKingSq) {
		return false // king is blasted away, not checked
	}
	occupied := pos.Occupied() &^ SquareBB(from) &^ blast
	attackers := pos.AttackersTo(enemyKingSq, occupied) & pos.byColor[us] &^ blast
	return attackers != 0
}
