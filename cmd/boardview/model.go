package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	chess "github.com/corvid-chess/multichess"
	"github.com/corvid-chess/multichess/pgn"
)

type mode int

const (
	modeNormal mode = iota
	modeInput
)

// ply is one step of game history: the position reached after playing Move
// (NullMove for the initial ply) from the previous ply's position.
type ply struct {
	pos  *chess.Position
	move chess.Move
	san  string
}

type Model struct {
	plies []ply
	cur   int

	m        mode
	input    textinput.Model
	logLines []string

	width  int
	height int
}

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func NewModel(fen string, variant chess.Variant) (Model, error) {
	if fen == "" {
		fen = startFEN
	}
	pos := &chess.Position{}
	var st chess.StateInfo
	if err := pos.SetFEN(fen, variant, &st); err != nil {
		return Model{}, fmt.Errorf("invalid starting FEN %q: %w", fen, err)
	}

	ti := textinput.New()
	ti.Placeholder = "move or command..."
	ti.Prompt = "> "
	ti.CharLimit = 200
	ti.Width = 60

	return Model{
		plies: []ply{{pos: pos, move: chess.NullMove}},
		cur:   0,
		m:     modeNormal,
		input: ti,
		logLines: []string{
			"ready — arrows/h,l step through moves, i enters a command",
		},
	}, nil
}

func (m *Model) current() *chess.Position { return m.plies[m.cur].pos }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = clampInt(m.width-4, 30, 80)
		return m, nil

	case tea.KeyMsg:
		switch m.m {
		case modeNormal:
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "i":
				m.m = modeInput
				m.input.SetValue("")
				m.input.Focus()
				return m, nil
			case "left", "h", "p":
				if m.cur > 0 {
					m.cur--
				}
				return m, nil
			case "right", "l", "n":
				if m.cur < len(m.plies)-1 {
					m.cur++
				}
				return m, nil
			case "home":
				m.cur = 0
				return m, nil
			case "end":
				m.cur = len(m.plies) - 1
				return m, nil
			default:
				return m, nil
			}

		case modeInput:
			switch msg.String() {
			case "esc":
				m.m = modeNormal
				m.input.Blur()
				return m, nil
			case "enter":
				line := strings.TrimSpace(m.input.Value())
				m.input.SetValue("")
				m.m = modeNormal
				m.input.Blur()
				if line != "" {
					m.execCommand(line)
				}
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *Model) execCommand(line string) {
	m.appendLog("> " + line)
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return
	}

	switch parts[0] {
	case "fen":
		fen := strings.TrimSpace(strings.TrimPrefix(line, "fen"))
		pos := &chess.Position{}
		var st chess.StateInfo
		if err := pos.SetFEN(fen, 0, &st); err != nil {
			m.appendLog(fmt.Sprintf("bad FEN: %v", err))
			return
		}
		m.plies = []ply{{pos: pos, move: chess.NullMove}}
		m.cur = 0
		m.appendLog("position reset from FEN")

	case "pgn":
		if len(parts) != 2 {
			m.appendLog("usage: pgn <path>")
			return
		}
		if err := m.loadPGN(parts[1]); err != nil {
			m.appendLog(fmt.Sprintf("pgn load failed: %v", err))
		}

	case "perft":
		if len(parts) != 2 {
			m.appendLog("usage: perft <depth>")
			return
		}
		depth, err := strconv.Atoi(parts[1])
		if err != nil || depth < 0 {
			m.appendLog("perft: depth must be a non-negative integer")
			return
		}
		nodes := chess.Perft(m.current(), depth)
		m.appendLog(fmt.Sprintf("perft(%d) = %d", depth, nodes))

	case "undo":
		if m.cur > 0 {
			m.plies = m.plies[:m.cur]
			m.cur--
			m.appendLog("undone")
		}

	default:
		m.tryMove(line)
	}
}

// tryMove attempts to parse line as a SAN move from the current position and,
// if legal, truncates any forward history and appends the resulting ply.
func (m *Model) tryMove(line string) {
	pos := m.current()
	mv, err := pos.ParseSAN(line)
	if err != nil {
		m.appendLog(fmt.Sprintf("unrecognized command or illegal move: %v", err))
		return
	}
	next := &chess.Position{}
	*next = *pos
	var st chess.StateInfo
	next.DoMove(mv, &st, pos.GivesCheck(mv))

	m.plies = append(m.plies[:m.cur+1], ply{pos: next, move: mv, san: line})
	m.cur++
	m.appendLog(fmt.Sprintf("played %s", line))
}

func (m *Model) loadPGN(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var db pgn.DB
	errs := db.Parse(string(data))
	if len(errs) > 0 {
		return errs[0]
	}
	if len(db.Games) == 0 {
		return fmt.Errorf("no games found")
	}
	game := db.Games[0]
	if err := db.ParseMoves(game); err != nil {
		return err
	}

	newPlies := []ply{{pos: game.Root.Position, move: chess.NullMove}}
	for n := game.Root.Next; n != nil; n = n.Next {
		newPlies = append(newPlies, ply{pos: n.Position, move: n.Move, san: n.Parent.Position.SAN(n.Move)})
	}
	m.plies = newPlies
	m.cur = len(m.plies) - 1
	m.appendLog(fmt.Sprintf("loaded %s: %d plies", path, len(m.plies)-1))
	return nil
}

func (m *Model) appendLog(s string) {
	m.logLines = append(m.logLines, s)
	if len(m.logLines) > 200 {
		m.logLines = m.logLines[len(m.logLines)-200:]
	}
}

func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	pos := m.current()
	modeStr := "NORMAL"
	if m.m == modeInput {
		modeStr = "INPUT"
	}
	header := titleStyle.Render(fmt.Sprintf("boardview  ply %d/%d  mode:%s  %s to move",
		m.cur, len(m.plies)-1, modeStr, pos.SideToMove()))

	var lastFrom, lastTo chess.Square = chess.NoSquare, chess.NoSquare
	if !m.plies[m.cur].move.IsNull() {
		lastFrom, lastTo = m.plies[m.cur].move.From(), m.plies[m.cur].move.To()
	}
	boardBox := boxStyle.Render(renderBoard(pos, lastFrom, lastTo))

	logHeight := clampInt(m.height-14, 4, 20)
	logStart := clampInt(len(m.logLines)-logHeight, 0, len(m.logLines))
	logBody := strings.Join(m.logLines[logStart:], "\n")
	logBox := boxStyle.Width(clampInt(m.width-2, 20, 100)).Height(logHeight).Render(logBody)

	var inputLine string
	if m.m == modeInput {
		inputLine = m.input.View()
	} else {
		inputLine = "press i to enter a move (SAN) or command (fen/pgn/perft/undo)"
	}
	inputBox := boxStyle.Width(clampInt(m.width-2, 20, 100)).Render(inputLine)

	return header + "\n" + boardBox + "\n" + logBox + "\n" + inputBox + "\n"
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
