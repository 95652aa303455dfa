package chess

import "testing"

// Perft scenarios reproduced verbatim from spec.md §8; these are the
// standard chess-programming community perft results (starting position,
// Kiwipete, and positions 3-5) plus one Chess960 scenario, used across
// engines as move-generator correctness fixtures.
func TestPerft(t *testing.T) {
	if testing.Short() {
		t.Skip("perft is expensive; run without -short for the full sweep")
	}
	cases := []struct {
		name  string
		fen   string
		v     Variant
		depth int
		want  uint64
	}{
		{"start", startFEN, 0, 5, 4865609},
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 0, 4, 4085603},
		{"position3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 0, 5, 674624},
		{"position4", "r3k2r/Pp1p1pb1/1n1Qp1p1/2qPN3/1p2P3/2N5/P1p1B1PP/R3K2R b KQkq - 0 1", 0, 4, 422333},
		{"position5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 0, 4, 2103487},
		{"chess960", "bqnb1rkr/pp3ppp/3ppn2/2p5/5P2/P2P4/NPP1P1PP/BQ1BNRKR w HFhf - 2 9", Chess960, 4, 9421566},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pos, _ := mustFEN(t, c.fen, c.v)
			got := Perft(pos, c.depth)
			if got != c.want {
				t.Errorf("perft(%d) from %q = %d, want %d", c.depth, c.fen, got, c.want)
			}
		})
	}
}

func TestPerftShallow(t *testing.T) {
	pos, _ := mustFEN(t, startFEN, 0)
	if got := Perft(pos, 1); got != 20 {
		t.Errorf("perft(1) from start = %d, want 20", got)
	}
	if got := Perft(pos, 2); got != 400 {
		t.Errorf("perft(2) from start = %d, want 400", got)
	}
	if got := Perft(pos, 3); got != 8902 {
		t.Errorf("perft(3) from start = %d, want 8902", got)
	}
}
