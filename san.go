package chess

import (
	"bytes"
	"errors"
	"strings"
)

// ErrInvalidSAN is returned by ParseSAN when no legal move matches the
// given notation, or more than one does.
var ErrInvalidSAN = errors.New("chess: invalid move notation")

// ParseSAN parses a move in algebraic notation against pos, accepting the
// same forgiving variety of forms the teacher's ParseMove does: standard
// SAN (Bb5, cxd3, O-O, f8=Q), lowercase piece letters, and plain
// from-to notation (e2e4, f7f8q). Grounded on
// _examples/malbrecht-chess/move.go's ParseMove, adapted to resolve against
// Position.LegalMoves instead of a mailbox Board.
func (pos *Position) ParseSAN(s string) (Move, error) {
	if s == "--" || s == "0000" {
		return NullMove, nil
	}
	var (
		f0, r0    = -1, -1
		f1, r1    = -1, -1
		piece     = NoPieceType
		promotion = NoPieceType
		castle    = 0 // 0 = not castling, 1 = kingside, 2 = queenside
	)

	if len(s) < 2 {
		return NullMove, ErrInvalidSAN
	}
	switch {
	case strings.HasPrefix(s, "O-O-O") || strings.HasPrefix(s, "0-0-0"):
		castle = 2
	case strings.HasPrefix(s, "O-O") || strings.HasPrefix(s, "0-0"):
		castle = 1
	default:
		if p := pieceTypeFromChar(rune(s[0])); p != NoPieceType {
			if s[0] != 'b' || (len(s) > 2 && s[1] >= 'a' && s[1] <= 'h') {
				piece = p
				s = s[1:]
			}
		}
		for _, c := range s {
			if promotion == Bishop && ((c >= 'a' && c <= 'h') || (c >= '1' && c <= '8')) {
				f0, f1 = f1, int(FileB)
				promotion = NoPieceType
			}
			switch c {
			case 'b', 'n', 'r', 'q', 'B', 'N', 'R', 'Q':
				promotion = pieceTypeFromChar(c)
			case 'a', 'c', 'd', 'e', 'f', 'g', 'h':
				f0, f1 = f1, int(c-'a')
			case '1', '2', '3', '4', '5', '6', '7', '8':
				r0, r1 = r1, int(c-'1')
			}
		}
		if piece == NoPieceType && (f0 == -1 || r0 == -1) {
			piece = Pawn
		}
		if f0 != -1 && f1 != -1 && r0 != -1 && r1 != -1 {
			from, to := MakeSquare(File(f0), Rank(r0)), MakeSquare(File(f1), Rank(r1))
			p := pos.board[from]
			if p.Type() == King && p.Color() == pos.sideToMove &&
				(pos.board[to] == MakePiece(pos.sideToMove, Rook) || to == from+2 || to == from-2) {
				if to < from {
					castle = 2
				} else {
					castle = 1
				}
			}
		}
	}

	if castle != 0 {
		us := pos.sideToMove
		kingSq := pos.KingSquare(us)
		rookSq := pos.castlingRookSquare[castlingRight(us, castle == 1)]
		if kingSq == NoSquare || rookSq == NoSquare {
			return NullMove, ErrInvalidSAN
		}
		f0, r0, f1, r1 = int(kingSq.File()), int(kingSq.Rank()), int(rookSq.File()), int(rookSq.Rank())
	}

	var match Move
	found := false
	for _, m := range pos.LegalMoves() {
		from, to := m.From(), m.To()
		p := pos.board[from]
		if piece != NoPieceType && p.Type() != piece {
			continue
		}
		if f0 != -1 && int(from.File()) != f0 {
			continue
		}
		if r0 != -1 && int(from.Rank()) != r0 {
			continue
		}
		if f1 != -1 && int(to.File()) != f1 {
			continue
		}
		if r1 != -1 && int(to.Rank()) != r1 {
			continue
		}
		mp := m.PromotionType()
		if mp != promotion {
			continue
		}
		if found {
			return NullMove, ErrInvalidSAN // ambiguous
		}
		match = m
		found = true
	}
	if !found {
		return NullMove, ErrInvalidSAN
	}
	return match, nil
}

func pieceTypeFromChar(c rune) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPieceType
	}
}

// SAN renders m in Standard Algebraic Notation relative to pos (the
// position m is to be played from), including check/mate suffixes computed
// by speculatively applying the move. Grounded on
// _examples/malbrecht-chess/move.go's algebraicNotation.
func (pos *Position) SAN(m Move) string {
	if m.IsNull() {
		return "--"
	}
	from, to := m.From(), m.To()
	piece := pos.board[from].Type()
	var buf bytes.Buffer

	if m.Kind() == Castling {
		if to > from {
			buf.WriteString("O-O")
		} else {
			buf.WriteString("O-O-O")
		}
	} else {
		var disFile, disRank bool
		isCapture := pos.board[to] != NoPiece || m.Kind() == EnPassant
		switch piece {
		case Pawn:
			isCapture = from.File() != to.File()
			disFile = isCapture
		case Knight, Bishop, Rook, Queen:
			for _, n := range pos.LegalMoves() {
				if n.To() != to || n.From() == from {
					continue
				}
				if pos.board[n.From()].Type() != piece {
					continue
				}
				if n.From().File() != from.File() {
					disFile = true
				} else {
					disRank = true
				}
			}
		}
		if piece != Pawn {
			buf.WriteRune(pieceTypeLetters[piece])
		}
		if disFile {
			buf.WriteRune(rune('a' + from.File()))
		}
		if disRank {
			buf.WriteRune(rune('1' + from.Rank()))
		}
		if isCapture {
			buf.WriteRune('x')
		}
		buf.WriteRune(rune('a' + to.File()))
		buf.WriteRune(rune('1' + to.Rank()))
		if m.Kind() == Promotion {
			buf.WriteRune('=')
			buf.WriteRune(pieceTypeLetters[m.PromotionType()])
		}
	}

	if givesCheck := pos.GivesCheck(m); givesCheck {
		var st StateInfo
		pos.DoMove(m, &st, givesCheck)
		mate := len(pos.LegalMoves()) == 0
		pos.UndoMove(m)
		if mate {
			buf.WriteRune('#')
		} else {
			buf.WriteRune('+')
		}
	}
	return buf.String()
}
