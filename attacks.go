package chess

// AttackersTo returns the bitboard of every piece (either color) attacking
// sq given occupied as the blocker set, per spec.md §4.3: the union of pawn
// attacks (both colors, masked to the opponent's pawns), knight attacks,
// king attacks, and slider attacks through occupied.
func (pos *Position) AttackersTo(sq Square, occupied Bitboard) Bitboard {
	return (PawnAttacksBB(White, sq) & pos.Pieces(Black, Pawn)) |
		(PawnAttacksBB(Black, sq) & pos.Pieces(White, Pawn)) |
		(KnightAttacksBB(sq) & pos.byType[Knight]) |
		(KingAttacksBB(sq) & pos.byType[King]) |
		(RookAttacksBB(sq, occupied) & (pos.byType[Rook] | pos.byType[Queen])) |
		(BishopAttacksBB(sq, occupied) & (pos.byType[Bishop] | pos.byType[Queen]))
}

// attackersToCurrent is AttackersTo using the position's live occupancy.
func (pos *Position) attackersToCurrent(sq Square) Bitboard {
	return pos.AttackersTo(sq, pos.Occupied())
}

// SliderBlockers returns the bitboard of pieces that lie between any slider
// in sliders and target such that removing that piece would expose an
// attack on target, per spec.md §4.3. This also serves as the pinned-piece
// detector (sliders = enemy sliders) and the discovered-check-candidate
// detector (sliders = own sliders, target = enemy king).
func (pos *Position) SliderBlockers(sliders Bitboard, target Square) Bitboard {
	var blockers Bitboard
	occupied := pos.Occupied()
	snipers := ((RookAttacksBB(target, EmptyBB) & (pos.byType[Rook] | pos.byType[Queen])) |
		(BishopAttacksBB(target, EmptyBB) & (pos.byType[Bishop] | pos.byType[Queen]))) & sliders
	for s := snipers; s != 0; {
		sniperSq := s.PopLSB()
		between := Between(sniperSq, target) & occupied
		if between != 0 && !between.More() {
			blockers |= between
		}
	}
	return blockers
}

// setCheckInfo recomputes st.BlockersForKing and st.CheckSquares from the
// live board, per spec.md §4.4. Called after every board mutation.
func (pos *Position) setCheckInfo(st *StateInfo) {
	whiteKing := pos.KingSquare(White)
	blackKing := pos.KingSquare(Black)

	if whiteKing == NoSquare {
		st.BlockersForKing[White] = EmptyBB
	} else {
		st.BlockersForKing[White] = pos.SliderBlockers(pos.byColor[Black], whiteKing)
	}
	if blackKing == NoSquare {
		st.BlockersForKing[Black] = EmptyBB
	} else {
		st.BlockersForKing[Black] = pos.SliderBlockers(pos.byColor[White], blackKing)
	}

	// Variants with no meaningful king for the side about to move (Horde
	// white, Antichess, or Atomic once a king has been blasted) have no
	// check concept at all; zero every cache per spec.md §4.4.
	enemyKing := blackKing
	if pos.sideToMove == Black {
		enemyKing = whiteKing
	}
	if enemyKing == NoSquare || pos.variant.Has(Antichess) {
		for pt := range st.CheckSquares {
			st.CheckSquares[pt] = EmptyBB
		}
		return
	}

	occupied := pos.Occupied()
	st.CheckSquares[Pawn] = PawnAttacksBB(pos.sideToMove.Other(), enemyKing)
	st.CheckSquares[Knight] = KnightAttacksBB(enemyKing)
	st.CheckSquares[Bishop] = BishopAttacksBB(enemyKing, occupied)
	st.CheckSquares[Rook] = RookAttacksBB(enemyKing, occupied)
	st.CheckSquares[Queen] = st.CheckSquares[Bishop] | st.CheckSquares[Rook]
	st.CheckSquares[King] = EmptyBB
}

// checkersAfterMove recomputes the checkers bitboard for the side that is
// about to move (i.e. after the move that produced st), variant-aware per
// spec.md §4.8 step 11.
func (pos *Position) checkersAfterMove() Bitboard {
	switch {
	case pos.variant.Has(Antichess):
		return EmptyBB
	case pos.variant.Has(RacingKings):
		return EmptyBB // Racing Kings has no check concept (§4.5)
	case pos.variant.Has(Horde) && pos.sideToMove == White && pos.KingSquare(White) == NoSquare:
		return EmptyBB
	case pos.variant.Has(Atomic) && pos.KingSquare(pos.sideToMove) == NoSquare:
		return EmptyBB
	default:
		kingSq := pos.KingSquare(pos.sideToMove)
		if kingSq == NoSquare {
			return EmptyBB
		}
		return pos.attackersToCurrent(kingSq) & pos.byColor[pos.sideToMove.Other()]
	}
}
