package chess

import "fmt"

// PosIsOk re-derives every invariant of spec.md §3 from the live board and
// reports the first mismatch found, or nil if none. With full set, it also
// re-derives the incremental hashes/material/psq via setState and compares
// them against the live StateInfo — the original hard-codes this behind a
// "Fast" debug flag; this core exposes it as an explicit parameter instead,
// per the Open Question resolution in DESIGN.md, so callers decide the cost.
func (pos *Position) PosIsOk(full bool) error {
	if pos.variant.HasKing(White) && (pos.KingSquare(White) == NoSquare || pos.board[pos.KingSquare(White)] != WK) {
		return fmt.Errorf("chess: white king missing or misplaced")
	}
	if pos.variant.HasKing(Black) && (pos.KingSquare(Black) == NoSquare || pos.board[pos.KingSquare(Black)] != BK) {
		return fmt.Errorf("chess: black king missing or misplaced")
	}

	var byType [PieceTypeNB]Bitboard
	var byColor [2]Bitboard
	for sq := A1; sq <= H8; sq++ {
		p := pos.board[sq]
		if p == NoPiece {
			continue
		}
		byType[p.Type()] |= SquareBB(sq)
		byColor[p.Color()] |= SquareBB(sq)
	}
	for pt := Pawn; pt <= King; pt++ {
		if byType[pt] != pos.byType[pt] {
			return fmt.Errorf("chess: byType[%v] disagrees with mailbox", pt)
		}
	}
	for c := White; c <= Black; c++ {
		if byColor[c] != pos.byColor[c] {
			return fmt.Errorf("chess: byColor[%v] disagrees with mailbox", c)
		}
	}
	if pos.byColor[White]&pos.byColor[Black] != 0 {
		return fmt.Errorf("chess: white and black occupy the same square")
	}

	for pt := Pawn; pt <= King; pt++ {
		for c := White; c <= Black; c++ {
			p := MakePiece(c, pt)
			if pos.pieceCount[p] != (pos.byColor[c] & pos.byType[pt]).Count() {
				return fmt.Errorf("chess: pieceCount[%v] disagrees with bitboards", p)
			}
			for i := 0; i < pos.pieceCount[p]; i++ {
				sq := pos.pieceList[p][i]
				if pos.board[sq] != p {
					return fmt.Errorf("chess: pieceList entry for %v at %v disagrees with mailbox", p, sq)
				}
				if int(pos.index[sq]) != i {
					return fmt.Errorf("chess: index[%v] disagrees with pieceList position", sq)
				}
			}
		}
	}

	if pos.pieceCount[WK] > 1 || pos.pieceCount[BK] > 1 {
		return fmt.Errorf("chess: more than one king for a side")
	}

	for cr := CastlingRight(0); cr < CastlingRightNB; cr++ {
		if !pos.st.hasCastling(cr) {
			continue
		}
		rookSq := pos.castlingRookSquare[cr]
		if rookSq == NoSquare || pos.board[rookSq] != MakePiece(Color(cr/2), Rook) {
			return fmt.Errorf("chess: castling right %v claims a rook that is not there", cr)
		}
	}

	if pos.st.EpSquare != NoSquare && !pos.epSquareIsPlausible(pos.st.EpSquare) {
		return fmt.Errorf("chess: implausible en-passant square %v", pos.st.EpSquare)
	}

	if !full && !debug {
		return nil
	}

	var want StateInfo
	want.CastlingRights = pos.st.CastlingRights
	want.EpSquare = pos.st.EpSquare
	want.ChecksGiven = pos.st.ChecksGiven
	pos.setState(&want)
	switch {
	case want.Key != pos.st.Key:
		return fmt.Errorf("chess: incremental Key disagrees with from-scratch recomputation")
	case want.PawnKey != pos.st.PawnKey:
		return fmt.Errorf("chess: incremental PawnKey disagrees with from-scratch recomputation")
	case want.MaterialKey != pos.st.MaterialKey:
		return fmt.Errorf("chess: incremental MaterialKey disagrees with from-scratch recomputation")
	case want.NonPawnMaterial != pos.st.NonPawnMaterial:
		return fmt.Errorf("chess: incremental NonPawnMaterial disagrees with from-scratch recomputation")
	case want.Psq != pos.st.Psq:
		return fmt.Errorf("chess: incremental Psq disagrees with from-scratch recomputation")
	case want.Checkers != pos.st.Checkers:
		return fmt.Errorf("chess: incremental Checkers disagrees with from-scratch recomputation")
	}
	return nil
}
