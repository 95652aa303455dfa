package chess

import "testing"

// Shuffling both knights out and back twice revisits the starting position
// twice more (a threefold repetition), the classic way to reach a draw
// without any capture or pawn move resetting Rule50.
func TestThreefoldRepetitionDetected(t *testing.T) {
	pos, _ := mustFEN(t, startFEN, 0)
	shuffle := [][2]Square{
		{G1, F3}, {G8, F6}, {F3, G1}, {F6, G8},
	}
	states := make([]StateInfo, 2*len(shuffle))
	i := 0
	for round := 0; round < 2; round++ {
		for _, sq := range shuffle {
			m := findMove(t, pos, sq[0], sq[1])
			pos.DoMove(m, &states[i], pos.GivesCheck(m))
			i++
		}
	}
	if !pos.IsDraw(0) {
		t.Fatalf("position repeated three times should be drawn")
	}
}

func TestNoRepetitionNoDraw(t *testing.T) {
	pos, _ := mustFEN(t, startFEN, 0)
	var st StateInfo
	m := findMove(t, pos, E2, E4)
	pos.DoMove(m, &st, pos.GivesCheck(m))
	if pos.IsDraw(0) {
		t.Fatalf("a single move should never be reported as a repetition draw")
	}
}
