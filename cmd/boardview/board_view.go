package main

import (
	"strings"

	chess "github.com/corvid-chess/multichess"
)

// pieceGlyphs maps a Piece to the Unicode chess symbol used to render it;
// NoPiece renders as a blank cell.
var pieceGlyphs = map[chess.Piece]string{
	chess.WK: "♔", chess.WQ: "♕", chess.WR: "♖", chess.WB: "♗", chess.WN: "♘", chess.WP: "♙",
	chess.BK: "♚", chess.BQ: "♛", chess.BR: "♜", chess.BB: "♝", chess.BN: "♞", chess.BP: "♟",
}

// renderBoard renders pos as an 8x8 grid, files a..h left to right and ranks
// 8..1 top to bottom (white's perspective), matching how FEN and algebraic
// notation are read. lastFrom/lastTo highlight the most recently played move;
// pass chess.NoSquare for both to disable highlighting.
func renderBoard(pos *chess.Position, lastFrom, lastTo chess.Square) string {
	var b strings.Builder
	b.WriteString("  a b c d e f g h\n")
	for r := chess.Rank(7); r >= 0; r-- {
		b.WriteByte(byte('1' + r))
		b.WriteByte(' ')
		for f := chess.File(0); f <= 7; f++ {
			sq := chess.MakeSquare(f, r)
			p := pos.PieceOn(sq)
			b.WriteString(cell(p, sq == lastFrom || sq == lastTo))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func cell(p chess.Piece, highlight bool) string {
	glyph, ok := pieceGlyphs[p]
	if !ok {
		glyph = "."
	}
	if highlight {
		return "[" + glyph + "]"
	}
	return " " + glyph + " "
}
