package chess

// Perft counts the number of leaf nodes reached by exhaustively playing out
// every legal move to depth plies, the classic move-generator correctness
// check spec.md §8 states as an end-to-end testable property. It is not
// used by the position core itself; it is exposed because every engine in
// the pack that has a working move generator also exposes a perft command
// for verifying it (grounded on the original's Position::perft-adjacent
// debug tooling).
func Perft(pos *Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := pos.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		var st StateInfo
		pos.DoMove(m, &st, pos.GivesCheck(m))
		nodes += Perft(pos, depth-1)
		pos.UndoMove(m)
	}
	return nodes
}
