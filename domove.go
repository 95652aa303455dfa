package chess

// DoMove applies move m to pos, writing the resulting StateInfo into
// newState and linking it onto the state chain, per spec.md §4.8. givesCheck
// must equal pos.GivesCheck(m); per the consumer contract in spec.md §6 the
// hint is trusted, not re-verified, because recomputing it here would defeat
// the point of the cache it primes.
func (pos *Position) DoMove(m Move, newState *StateInfo, givesCheck bool) {
	newState.clone(pos.st)
	prev := pos.st
	pos.st = newState
	pos.gamePly++
	pos.st.PliesFromNull = prev.PliesFromNull + 1

	us := pos.sideToMove
	them := us.Other()
	from, to := m.From(), m.To()
	piece := pos.board[from]

	key := prev.Key ^ zobristSide()
	if prev.EpSquare != NoSquare {
		key ^= zobristEnPassant(prev.EpSquare.File())
	}

	if m.Kind() == Castling {
		pos.st.CapturedPiece = NoPiece
		pos.doCastle(us, from, to, false, &key)
		pos.st.Rule50 = prev.Rule50 + 1
	} else {
		captureSq := to
		if m.Kind() == EnPassant {
			captureSq = MakeSquare(to.File(), from.Rank())
		}
		captured := pos.board[captureSq]
		isCapture := captured != NoPiece

		if isCapture {
			pos.st.CapturedPiece = captured
			pos.st.Rule50 = 0
			if pos.variant.Has(Atomic) {
				pos.doAtomicCapture(from, to, captureSq, &key)
			} else {
				key ^= zobristPiece(captured, captureSq)
				if captured.Type() == Pawn {
					pos.st.PawnKey ^= zobristPiece(captured, captureSq)
				} else if captured.Type() != King {
					pos.st.NonPawnMaterial[them] -= PieceValue[captured.Type()]
				}
				pos.st.MaterialKey ^= zobristPiece(captured, Square(pos.pieceCount[captured]-1))
				pos.st.Psq -= psqBonus(captured, captureSq)
				pos.removePiece(captureSq)
			}
		} else {
			pos.st.CapturedPiece = NoPiece
			pos.st.Rule50 = prev.Rule50 + 1
		}

		pos.revokeCastling(from, to, &key)

		atomicConsumed := pos.variant.Has(Atomic) && isCapture
		if !atomicConsumed {
			key ^= zobristPiece(piece, from)
			pos.movePiece(from, to)
			key ^= zobristPiece(piece, to)
			pos.st.Psq += psqBonus(piece, to) - psqBonus(piece, from)
		}

		if piece.Type() == Pawn && !atomicConsumed {
			pos.st.PawnKey ^= zobristPiece(piece, from) ^ zobristPiece(piece, to)
			pos.st.Rule50 = 0
			switch {
			case to == from+16 || to == from-16:
				epSq := MakeSquare(from.File(), Rank((int(from.Rank())+int(to.Rank()))/2))
				if PawnAttacksBB(us, epSq)&pos.Pieces(them, Pawn) != 0 {
					pos.st.EpSquare = epSq
					key ^= zobristEnPassant(epSq.File())
				}
			case m.Kind() == Promotion:
				promoted := MakePiece(us, m.PromotionType())
				pos.removePiece(to)
				pos.putPiece(promoted, to)
				key ^= zobristPiece(piece, to) ^ zobristPiece(promoted, to)
				pos.st.PawnKey ^= zobristPiece(piece, to)
				pos.st.MaterialKey ^= zobristPiece(piece, Square(pos.pieceCount[piece])) ^
					zobristPiece(promoted, Square(pos.pieceCount[promoted]-1))
				pos.st.NonPawnMaterial[us] += PieceValue[m.PromotionType()]
				pos.st.Psq += psqBonus(promoted, to) - psqBonus(piece, to)
			}
		} else if piece.Type() == Pawn {
			pos.st.Rule50 = 0
		}
	}

	pos.sideToMove = them
	if pos.variant.Has(ThreeCheck) && givesCheck {
		key ^= zobristChecks(us, pos.st.ChecksGiven[us])
		pos.st.ChecksGiven[us]++
		key ^= zobristChecks(us, pos.st.ChecksGiven[us])
	}
	pos.st.Key = key
	pos.st.Checkers = pos.checkersAfterMove()
	pos.setCheckInfo(pos.st)
}

// doAtomicCapture executes the explosion for a capturing move whose
// attacker still sits on from and lands on to, with the captured piece on
// captureSq (equal to `to` for a normal capture, or the pawn behind `to`
// for en-passant). It removes the captured piece, the attacker itself, and
// every non-pawn piece adjacent to the destination square, updating every
// incremental hash and recording each removal in st.Blast for UndoMove, per
// spec.md §4.8 step 5 and §9 ("Atomic blast pieces").
func (pos *Position) doAtomicCapture(from, to, captureSq Square, key *uint64) {
	blast := atomicBlastSquares(to, pos) | SquareBB(from) | SquareBB(captureSq)
	for b := blast; b != 0; {
		sq := b.PopLSB()
		p := pos.board[sq]
		if p == NoPiece {
			continue
		}
		pos.st.Blast = append(pos.st.Blast, BlastEntry{Square: sq, Piece: p})
		*key ^= zobristPiece(p, sq)
		if p.Type() == Pawn {
			pos.st.PawnKey ^= zobristPiece(p, sq)
		} else if p.Type() != King {
			pos.st.NonPawnMaterial[p.Color()] -= PieceValue[p.Type()]
		}
		pos.st.MaterialKey ^= zobristPiece(p, Square(pos.pieceCount[p]-1))
		pos.st.Psq -= psqBonus(p, sq)
		pos.revokeCastling(sq, sq, key)
		pos.removePiece(sq)
	}
}

// revokeCastling clears any castling rights rooted on from or to (a king or
// rook moving off, or a rook being captured or blasted on, its castling
// square), per spec.md §4.8 step 7.
func (pos *Position) revokeCastling(from, to Square, key *uint64) {
	mask := pos.castlingRightsMask[from] | pos.castlingRightsMask[to]
	if mask == 0 || mask&uint8(pos.st.CastlingRights) == 0 {
		return
	}
	*key ^= zobristCastling(pos.st.CastlingRights)
	pos.st.CastlingRights &^= mask
	*key ^= zobristCastling(pos.st.CastlingRights)
}

// doCastle relocates the king and rook for a castling move; reverse=true
// undoes it by swapping the from/to roles, matching the original's single
// helper used by both do_move and undo_move (spec.md §4.8). key is the
// in-progress Zobrist key being built by DoMove; it is nil on the reverse
// (UndoMove) path, where no key needs computing.
func (pos *Position) doCastle(us Color, kingFrom, rookFrom Square, reverse bool, key *uint64) {
	kingside := rookFrom > kingFrom
	kingTo := []Square{G1, C1}[boolIndex(!kingside)]
	rookTo := []Square{F1, D1}[boolIndex(!kingside)]
	if kingFrom.Rank() == Rank8 {
		kingTo = []Square{G8, C8}[boolIndex(!kingside)]
		rookTo = []Square{F8, D8}[boolIndex(!kingside)]
	}
	if reverse {
		kingFrom, kingTo = kingTo, kingFrom
		rookFrom, rookTo = rookTo, rookFrom
	} else {
		pos.revokeCastling(kingFrom, rookFrom, key)
		king, rook := MakePiece(us, King), MakePiece(us, Rook)
		*key ^= zobristPiece(king, kingFrom) ^ zobristPiece(king, kingTo) ^
			zobristPiece(rook, rookFrom) ^ zobristPiece(rook, rookTo)
		pos.st.Psq += psqBonus(king, kingTo) - psqBonus(king, kingFrom) +
			psqBonus(rook, rookTo) - psqBonus(rook, rookFrom)
	}
	pos.removePiece(kingFrom)
	pos.removePiece(rookFrom)
	pos.putPiece(MakePiece(us, King), kingTo)
	pos.putPiece(MakePiece(us, Rook), rookTo)
}

// UndoMove reverses m, restoring the prior state exactly, per spec.md §4.8.
func (pos *Position) UndoMove(m Move) {
	pos.sideToMove = pos.sideToMove.Other()
	us := pos.sideToMove
	from, to := m.From(), m.To()

	switch {
	case m.Kind() == Castling:
		pos.doCastle(us, from, to, true, nil)
	case pos.variant.Has(Atomic) && pos.st.CapturedPiece != NoPiece:
		for _, be := range pos.st.Blast {
			pos.putPiece(be.Piece, be.Square)
		}
	default:
		if m.Kind() == Promotion {
			pos.removePiece(to)
			pos.putPiece(MakePiece(us, Pawn), to)
		}
		pos.movePiece(to, from)
		if m.Kind() == EnPassant {
			capSq := MakeSquare(to.File(), from.Rank())
			pos.putPiece(pos.st.CapturedPiece, capSq)
		} else if pos.st.CapturedPiece != NoPiece {
			pos.putPiece(pos.st.CapturedPiece, to)
		}
	}
	pos.gamePly--
	pos.st = pos.st.Previous
}

// DoNullMove passes the move without changing the board, forbidden while in
// check (spec.md §4.8).
func (pos *Position) DoNullMove(newState *StateInfo) {
	assertf(pos.st.Checkers == 0, "DoNullMove called while in check")
	newState.clone(pos.st)
	prev := pos.st
	pos.st = newState
	pos.st.PliesFromNull = 0
	pos.st.Rule50 = prev.Rule50 + 1
	key := prev.Key ^ zobristSide()
	if prev.EpSquare != NoSquare {
		key ^= zobristEnPassant(prev.EpSquare.File())
	}
	pos.st.Key = key
	pos.sideToMove = pos.sideToMove.Other()
	pos.st.Checkers = EmptyBB
	pos.setCheckInfo(pos.st)
}

// UndoNullMove restores the state pointer popped by DoNullMove.
func (pos *Position) UndoNullMove() {
	pos.sideToMove = pos.sideToMove.Other()
	pos.st = pos.st.Previous
}
