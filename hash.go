package chess

// setState recomputes every hash and cache on st from the live board from
// scratch, per spec.md §4.2's call from SetFEN and used as the oracle that
// pos_is_ok compares the incrementally maintained hashes against (spec.md
// §8, property 2).
func (pos *Position) setState(st *StateInfo) {
	st.Key, st.PawnKey, st.MaterialKey = 0, 0, 0
	st.NonPawnMaterial = [2]Score{}
	st.Psq = 0

	for sq := A1; sq <= H8; sq++ {
		p := pos.board[sq]
		if p == NoPiece {
			continue
		}
		st.Key ^= zobristPiece(p, sq)
		st.Psq += psqBonus(p, sq)
		if p.Type() == Pawn {
			st.PawnKey ^= zobristPiece(p, sq)
		} else if p.Type() != King {
			st.NonPawnMaterial[p.Color()] += PieceValue[p.Type()]
		}
	}
	for pt := Pawn; pt <= King; pt++ {
		for c := White; c <= Black; c++ {
			p := MakePiece(c, pt)
			for i := 0; i < pos.pieceCount[p]; i++ {
				st.MaterialKey ^= zobristPiece(p, Square(i))
			}
		}
	}
	if st.EpSquare != NoSquare {
		st.Key ^= zobristEnPassant(st.EpSquare.File())
	}
	st.Key ^= zobristCastling(st.CastlingRights)
	if pos.sideToMove == Black {
		st.Key ^= zobristSide()
	}
	if pos.variant.Has(ThreeCheck) {
		st.Key ^= zobristChecks(White, st.ChecksGiven[White])
		st.Key ^= zobristChecks(Black, st.ChecksGiven[Black])
	}

	st.Checkers = pos.checkersAfterMove()
	pos.setCheckInfo(st)
}

// KeyAfter returns the Zobrist key the position would have after making m,
// without mutating the position — the one bit of lookahead spec.md §5/§6
// grants a transposition table for prefetch. It accounts for the side to
// move, the moved, captured and promoted pieces, and the clearing of the
// current en-passant file. It does not account for castling-right changes,
// a new en-passant square, castling's king and rook relocation, Three-Check
// counters or Atomic explosions; for such moves the result differs from the
// key DoMove produces.
func (pos *Position) KeyAfter(m Move) uint64 {
	from, to := m.From(), m.To()
	p := pos.board[from]
	key := pos.st.Key ^ zobristSide()

	captured := pos.board[to]
	if m.Kind() == EnPassant {
		capSq := MakeSquare(to.File(), from.Rank())
		captured = pos.board[capSq]
		key ^= zobristPiece(captured, capSq)
	} else if captured != NoPiece {
		key ^= zobristPiece(captured, to)
	}

	key ^= zobristPiece(p, from)
	if m.Kind() == Promotion {
		key ^= zobristPiece(MakePiece(p.Color(), m.PromotionType()), to)
	} else {
		key ^= zobristPiece(p, to)
	}

	if pos.st.EpSquare != NoSquare {
		key ^= zobristEnPassant(pos.st.EpSquare.File())
	}
	return key
}
