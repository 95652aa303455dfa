package chess

import "testing"

// SEE scenarios grounded in spec.md §8's worked examples. The rook on e7
// defends e5 along the file so the exchange is a genuine even trade; a bare
// hanging rook (no defender) would score a full rook win instead of 0.
func TestSeeEqualTrade(t *testing.T) {
	pos, _ := mustFEN(t, "4k3/4r3/8/4r3/8/8/4R3/4K3 w - - 0 1", 0)
	m := findMove(t, pos, E2, E5)
	if got := pos.See(m); got != 0 {
		t.Errorf("Re2xe5 SEE = %d, want 0", got)
	}
}

func TestSeeWinsRookForKnight(t *testing.T) {
	pos, _ := mustFEN(t, "4k3/8/8/4r3/8/5N2/4R3/4K3 w - - 0 1", 0)
	m := findMove(t, pos, F3, E5)
	if got := pos.See(m); got != seeValue[Rook] {
		t.Errorf("Nf3xe5 SEE = %d, want %d", got, seeValue[Rook])
	}
}

func TestSeeBadCapture(t *testing.T) {
	// White queen takes a pawn defended by a bishop: after Qxd5 Bxd5, white
	// loses a queen for a pawn, a clearly bad trade.
	pos, _ := mustFEN(t, "4k3/8/2b5/3p4/8/3Q4/8/4K3 w - - 0 1", 0)
	m := findMove(t, pos, D3, D5)
	if got := pos.See(m); got >= 0 {
		t.Errorf("Qxd5 SEE = %d, want negative (queen lost for a pawn)", got)
	}
}

// TestSeeKingCaptureIntoDefendedSquareStops covers the case where the least
// valuable attacker left in an exchange is the king, but the destination is
// still defended: Nxe5 wins a pawn, Bxe5 recaptures the knight, and White's
// only other attacker on e5 is the king on f4 -- but capturing with the king
// would walk into the queen on h8, revealed once the bishop leaves g7. The
// exchange must stop with the king's recapture discarded rather than folded
// into the negamax back-substitution.
func TestSeeKingCaptureIntoDefendedSquareStops(t *testing.T) {
	pos, _ := mustFEN(t, "k6q/6b1/8/4p3/5K2/3N4/8/8 w - - 0 1", 0)
	m := findMove(t, pos, D3, E5)
	want := seeValue[Pawn] - seeValue[Knight]
	if got := pos.See(m); got != want {
		t.Errorf("Nxe5 SEE = %d, want %d (pawn won, knight lost, king shut out by the queen)", got, want)
	}
}

func TestSeeSignFastPath(t *testing.T) {
	pos, _ := mustFEN(t, "4k3/4r3/8/4r3/8/8/4R3/4K3 w - - 0 1", 0)
	m := findMove(t, pos, E2, E5)
	if pos.SeeSign(m) < 0 {
		t.Errorf("SeeSign for an equal trade should not be negative")
	}
}

func findMove(t *testing.T, pos *Position, from, to Square) Move {
	t.Helper()
	for _, m := range pos.PseudoLegalMoves() {
		if m.From() == from && m.To() == to {
			return m
		}
	}
	t.Fatalf("no pseudo-legal move %v-%v found", from, to)
	return NullMove
}
