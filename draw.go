package chess

// IsDraw reports whether the position is drawn by the fifty-move rule or
// threefold repetition, per spec.md §4.10. ply is the number of plies
// already searched from the root: a single earlier occurrence no more than
// ply plies back already counts as a draw. Pass 0 outside a search context,
// where two earlier occurrences are needed.
func (pos *Position) IsDraw(ply int) bool {
	st := pos.st

	if st.Rule50 > 99 {
		if st.Checkers == 0 || len(pos.LegalMoves()) > 0 {
			return true
		}
	}

	return pos.isRepetition(ply)
}

// isRepetition walks the state chain two plies at a time (positions with
// the same side to move) looking for a StateInfo sharing the current key,
// per spec.md §4.10's threefold-repetition property, no further back than
// the last irreversible move. Two matching ancestors (the third occurrence
// including the current one) count as a draw; so does a single one that lies
// no more than ply plies back when ply > 0.
func (pos *Position) isRepetition(ply int) bool {
	st := pos.st
	end := st.PliesFromNull
	if st.Rule50 < end {
		end = st.Rule50
	}
	if end < 4 {
		return false
	}

	cur := st
	count := 0
	for dist := 2; dist <= end; dist += 2 {
		if cur == nil || cur.Previous == nil {
			break
		}
		cur = cur.Previous.Previous
		if cur == nil {
			break
		}
		if cur.Key == st.Key {
			count++
			if count >= 2 || (ply > 0 && dist <= ply) {
				return true
			}
		}
	}
	return false
}

// HasGameCycle reports whether the position has occurred at least once
// earlier in the state chain (a weaker test than IsDraw's threefold
// requirement), useful for search-time cycle detection the way the
// original exposes has_game_cycle/has_repeated as a cheaper companion to
// the full draw test.
func (pos *Position) HasGameCycle(ply int) bool {
	st := pos.st
	end := st.PliesFromNull
	if st.Rule50 < end {
		end = st.Rule50
	}
	if end < 4 {
		return false
	}
	cur := st
	for i := 2; i <= end; i += 2 {
		if cur == nil || cur.Previous == nil {
			break
		}
		cur = cur.Previous.Previous
		if cur == nil {
			break
		}
		if cur.Key == st.Key {
			return true
		}
	}
	return false
}
