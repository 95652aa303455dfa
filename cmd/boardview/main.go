// Command boardview is a terminal inspector for stepping through a chess
// position or a PGN game: arrows/h,l/n,p move through history, i opens a
// command line accepting a SAN move or one of fen/pgn/perft/undo.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	chess "github.com/corvid-chess/multichess"
)

func main() {
	fen := flag.String("fen", "", "starting FEN (defaults to the standard starting position)")
	chess960 := flag.Bool("chess960", false, "treat the starting FEN as Chess960")
	pgnPath := flag.String("pgn", "", "load and step through the main line of a PGN file")
	flag.Parse()

	var variant chess.Variant
	if *chess960 {
		variant |= chess.Chess960
	}

	m, err := NewModel(*fen, variant)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *pgnPath != "" {
		if err := m.loadPGN(*pgnPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
