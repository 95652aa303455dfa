package chess

// See estimates the material swing of playing m by simulating the sequence
// of minimum-value recaptures on its destination square, per spec.md §4.9.
// It is grounded on original_source/src/position.cpp's min_attacker
// template recursion: attacker types are tried in increasing value order
// (pawn, knight, bishop, rook, queen, king), and removing a pawn, bishop or
// queen rescans for diagonal X-rays while removing a rook or queen rescans
// for orthogonal X-rays.
func (pos *Position) See(m Move) int {
	if m.Kind() == Castling {
		return 0
	}

	from, to := m.From(), m.To()
	attacker := pos.board[from]

	if pos.variant.Has(Atomic) {
		return pos.seeAtomic(m)
	}

	captureSq := to
	captured := pos.board[to]
	if m.Kind() == EnPassant {
		captureSq = MakeSquare(to.File(), from.Rank())
		captured = pos.board[captureSq]
	}

	if pos.variant.Has(ThreeCheck) && pos.GivesCheck(m) {
		return seeKnownWin
	}

	gain := make([]int, 0, 32)
	gain = append(gain, seeValue[captured.Type()])

	occupied := pos.Occupied() &^ SquareBB(from)
	if m.Kind() == EnPassant {
		occupied &^= SquareBB(captureSq)
	}

	stm := attacker.Color()
	attackers := pos.AttackersTo(to, occupied) & occupied
	attackerValue := seeValue[attacker.Type()]

	for {
		stm = stm.Other()
		attackers &= occupied
		stmAttackers := attackers & pos.byColor[stm]
		if stmAttackers == 0 {
			break
		}
		pt, sq := leastValuableAttacker(pos, stmAttackers)
		gain = append(gain, attackerValue-gain[len(gain)-1])
		attackerValue = seeValue[pt]

		occupied &^= SquareBB(sq)
		// X-ray rescan: a pawn, bishop or queen leaving uncovers a diagonal
		// slider; a rook or queen leaving uncovers an orthogonal slider.
		if pt == Pawn || pt == Bishop || pt == Queen {
			attackers |= BishopAttacksBB(to, occupied) & (pos.byType[Bishop] | pos.byType[Queen])
		}
		if pt == Rook || pt == Queen {
			attackers |= RookAttacksBB(to, occupied) & (pos.byType[Rook] | pos.byType[Queen])
		}
		attackers &= occupied

		if pt == King && attackers&pos.byColor[stm.Other()] != 0 {
			// capturing with the king into a still-defended square is
			// illegal; roll back this round's gain entry and stop as if
			// this recapture never happened.
			gain = gain[:len(gain)-1]
			break
		}
	}
	for i := len(gain) - 1; i > 0; i-- {
		if v := -gain[i]; v < gain[i-1] {
			gain[i-1] = v
		}
	}
	return gain[0]
}

// seeKnownWin is the sentinel SeeSign/See return for a Three-Check move
// that itself gives check (spec.md §4.9's "known-win sentinel").
const seeKnownWin = 1 << 20

// leastValuableAttacker scans piece types from pawn to king (the ordering
// min_attacker's template recursion walks) and returns the first non-empty
// attacker of that type together with one of its squares.
func leastValuableAttacker(pos *Position, attackers Bitboard) (PieceType, Square) {
	for pt := Pawn; pt <= King; pt++ {
		if b := attackers & pos.byType[pt]; b != 0 {
			return pt, b.LSB()
		}
	}
	return NoPieceType, NoSquare
}

// SeeSign is the fast path of spec.md §4.9: when the captured piece is
// already worth at least as much as the attacker, the capture cannot be a
// material loss regardless of recaptures, so the full simulation is
// unnecessary.
func (pos *Position) SeeSign(m Move) int {
	from, to := m.From(), m.To()
	captureSq := to
	if m.Kind() == EnPassant {
		captureSq = MakeSquare(to.File(), from.Rank())
	}
	captured := pos.board[captureSq]
	attacker := pos.board[from]
	if seeValue[captured.Type()] >= seeValue[attacker.Type()] {
		return 1
	}
	return pos.See(m)
}

// seeAtomic computes the net material swing of an Atomic explosion
// directly, per spec.md §4.9: if the king is caught in the blast, the move
// is worth a mate value; otherwise the swing is simply the sum of every
// piece the blast removes, signed by which side loses it, since Atomic
// explosions have no further recapture sequence to simulate.
func (pos *Position) seeAtomic(m Move) int {
	from, to := m.From(), m.To()
	captureSq := to
	if m.Kind() == EnPassant {
		captureSq = MakeSquare(to.File(), from.Rank())
	}
	if pos.board[captureSq] == NoPiece {
		return 0
	}
	us := pos.board[from].Color()
	blast := atomicBlastSquares(to, pos) | SquareBB(from) | SquareBB(captureSq)
	if blast.Has(pos.KingSquare(us.Other())) {
		return seeValue[King]
	}
	if blast.Has(pos.KingSquare(us)) {
		return -seeValue[King]
	}
	swing := 0
	for b := blast; b != 0; {
		sq := b.PopLSB()
		p := pos.board[sq]
		if p == NoPiece {
			continue
		}
		if p.Color() == us {
			swing -= seeValue[p.Type()]
		} else {
			swing += seeValue[p.Type()]
		}
	}
	return swing
}
