package chess

// PseudoLegalMoves enumerates every pseudo-legal move for the side to move:
// geometrically valid moves that may leave the own king in check. This is
// the "legal_moves(pos) oracle" spec.md §1 says the core needs only for
// rare cases (IsDraw's fifty-move exception, PseudoLegal's castling check,
// SAN, Perft, tests); a real search
// is expected to bring its own, faster, move generator.
func (pos *Position) PseudoLegalMoves() []Move {
	var moves []Move
	us := pos.sideToMove
	for b := pos.byColor[us]; b != 0; {
		sq := b.PopLSB()
		switch pos.board[sq].Type() {
		case Pawn:
			pos.genPawnMoves(sq, &moves)
		case Knight:
			pos.genStepMoves(sq, KnightAttacksBB(sq), &moves)
		case Bishop:
			pos.genStepMoves(sq, BishopAttacksBB(sq, pos.Occupied()), &moves)
		case Rook:
			pos.genStepMoves(sq, RookAttacksBB(sq, pos.Occupied()), &moves)
		case Queen:
			pos.genStepMoves(sq, QueenAttacksBB(sq, pos.Occupied()), &moves)
		case King:
			pos.genStepMoves(sq, KingAttacksBB(sq), &moves)
			pos.genCastlingMoves(sq, &moves)
		}
	}
	return moves
}

// LegalMoves filters PseudoLegalMoves through Legal.
func (pos *Position) LegalMoves() []Move {
	pseudo := pos.PseudoLegalMoves()
	moves := pseudo[:0]
	for _, m := range pseudo {
		if pos.Legal(m) {
			moves = append(moves, m)
		}
	}
	return moves
}

func (pos *Position) genStepMoves(from Square, targets Bitboard, moves *[]Move) {
	us := pos.sideToMove
	for b := targets &^ pos.byColor[us]; b != 0; {
		to := b.PopLSB()
		*moves = append(*moves, MakeMove(from, to, Normal, NoPieceType))
	}
}

func (pos *Position) genPawnMoves(from Square, moves *[]Move) {
	us := pos.sideToMove
	forward := north
	if us == Black {
		forward = south
	}
	fromBB := SquareBB(from)
	occupied := pos.Occupied()

	single := shift(fromBB, forward)
	if single != 0 && single&occupied == 0 {
		pos.addPawnMove(from, single.LSB(), moves)
		startRank := Rank2
		if us == Black {
			startRank = Rank7
		}
		if from.Rank() == startRank {
			double := shift(single, forward)
			if double != 0 && double&occupied == 0 {
				*moves = append(*moves, MakeMove(from, double.LSB(), Normal, NoPieceType))
			}
		}
	}
	for _, d := range []direction{forward + east, forward + west} {
		to := shift(fromBB, d)
		if to == 0 {
			continue
		}
		toSq := to.LSB()
		if to&pos.byColor[us.Other()] != 0 {
			pos.addPawnMove(from, toSq, moves)
		} else if toSq == pos.st.EpSquare {
			*moves = append(*moves, MakeMove(from, toSq, EnPassant, NoPieceType))
		}
	}
}

func (pos *Position) addPawnMove(from, to Square, moves *[]Move) {
	if to.RelativeRank(pos.sideToMove) == Rank8 {
		for _, pt := range []PieceType{Queen, Rook, Bishop, Knight} {
			*moves = append(*moves, MakeMove(from, to, Promotion, pt))
		}
		return
	}
	*moves = append(*moves, MakeMove(from, to, Normal, NoPieceType))
}

// genCastlingMoves emits a Castling move (encoded king-captures-own-rook)
// for each available right whose path is currently clear, per spec.md §3/§6.
// It does not check whether the king passes through an attacked square;
// Legal verifies that.
func (pos *Position) genCastlingMoves(kingSq Square, moves *[]Move) {
	us := pos.sideToMove
	for _, cr := range []CastlingRight{castlingRight(us, true), castlingRight(us, false)} {
		if !pos.st.hasCastling(cr) {
			continue
		}
		rookSq := pos.castlingRookSquare[cr]
		if rookSq == NoSquare {
			continue
		}
		if pos.castlingPath[cr]&pos.Occupied() != 0 {
			continue
		}
		*moves = append(*moves, MakeMove(kingSq, rookSq, Castling, NoPieceType))
	}
}
