package pgn

import (
	"fmt"
	"strconv"
	"strings"
)

// parser drives a scanner and builds the Game/Node tree from its tokens.
type parser struct {
	sc      *scanner
	pos     int   // position of current token in input
	tok     token // current token
	lastTok token // previous token
}

// ParseError describes a problem parsing a pgn file.
type ParseError struct {
	Line    int
	Col     int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Message)
}

// scanPanic and parsePanic distinguish panics raised by the scanner or
// parser from genuine runtime panics, so recover can tell them apart.
type (
	scanPanic  string
	parsePanic string
)

func (p *parser) fail(format string, args ...interface{}) {
	panic(parsePanic(fmt.Sprintf(format, args...)))
}

// recover catches a scanPanic or parsePanic and turns it into a ParseError
// in *errp, then repositions the scanner at the next game so a caller
// parsing a whole database can continue past one bad game.
func (p *parser) recover(errp *error) {
	err := recover()
	if err == nil {
		return
	}
	var (
		line int
		col  int
		msg  string
	)
	switch v := err.(type) {
	case scanPanic:
		line, col = p.sc.coords(-1)
		msg = string(v)
	case parsePanic:
		line, col = p.sc.coords(p.pos - p.sc.pos)
		msg = string(v)
	default:
		panic(err)
	}
	*errp = &ParseError{Line: line, Col: col, Message: msg}
	p.sc.recoverAtBlankLine()
	p.tok = token{}
}

// advance fetches the next token from the scanner.
func (p *parser) advance() {
	p.lastTok = p.tok
	p.pos = p.sc.pos
	p.tok = p.sc.scan()
}

// accept consumes a token (skipping comments) if it has the requested kind.
func (p *parser) accept(kind tokKind) bool {
	for p.tok.kind == tokComment {
		p.advance()
	}
	if p.tok.kind != kind {
		return false
	}
	p.advance()
	return true
}

// expect is like accept, but panics if the token kind does not match.
func (p *parser) expect(kind tokKind) token {
	if !p.accept(kind) {
		p.fail("expected %s, got %s", kind, p.tok.kind)
	}
	return p.lastTok
}

// unescape unquotes and unescapes a backslash-escaped PGN string.
func unescape(s string) string {
	return strings.Replace(unquote(s), "\\", "", -1)
}

// unquote removes the first and last character from s, trimming the result.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	return strings.TrimSpace(s[1 : len(s)-1])
}

// readGame reads the game information of the next game in the input file. It
// returns nil,nil if no more games are available.
func (p *parser) readGame() (game *Game, err error) {
	defer p.recover(&err)
	if p.tok == (token{}) {
		p.advance()
	}
	if p.accept(tokEOF) {
		return nil, nil
	}
	var (
		mtext0    = p.pos
		mtextline = p.sc.line
		tags      = make(map[string]string)
	)
	for p.accept(tokLBracket) {
		tag := p.expect(tokSymbol).val
		val := p.expect(tokString).val
		tags[tag] = unescape(val)
		p.expect(tokRBracket)
		// Remember where the movetext starts. Maintaining this inside the
		// loop ensures that leading comments, which the next accept() call
		// would skip, are still included in the movetext.
		mtext0 = p.pos
		mtextline = p.sc.line
	}
	if len(tags) == 0 {
		p.fail("no game tags found")
	}
	// Parsing and validating the moves in the movetext section is postponed
	// until parseMoves is called. Here we just scan ahead to count plies in
	// the main line and to recover the game result if it wasn't in the tags.
	plies := 0
	depth := 0
loop:
	for {
		switch p.tok.kind {
		case tokLParen:
			depth++
		case tokRParen:
			depth--
		case tokSymbol:
			if depth == 0 {
				plies++
			}
		case tokResult:
			if result, ok := tags["Result"]; !ok {
				tags["Result"] = p.tok.val
			} else if result != p.tok.val {
				p.fail("game result %q differs from Result tag %q", p.tok.val, result)
			}
		case tokLBracket, tokEOF:
			break loop
		}
		p.advance()
	}
	mtext1 := p.pos
	if tags["Result"] == "" {
		tags["Result"] = "*"
	}
	g, err := NewGame(tags)
	if err != nil {
		p.fail("%s", err)
	}
	g.plies = plies
	g.movelex = newScanner(p.sc.input[mtext0:mtext1], mtextline)
	return g, nil
}

// parseMoves parses a movetext section, knowing that p.sc has been set up to
// scan a single such section.
func (p *parser) parseMoves(root *Node) (err error) {
	defer p.recover(&err)
	if p.tok == (token{}) {
		p.advance()
	}
	p.variation(root, 0)
	return nil
}

// variation parses a recursive variation (a list of moves).
func (p *parser) variation(node *Node, depth int) {
	for {
		switch p.tok.kind {
		case tokSymbol: // a move
			move, err := node.Position.ParseSAN(p.tok.val)
			if err != nil {
				p.fail("%q: %s", p.tok.val, err)
			}
			node = node.Insert(move)
		case tokComment:
			node.Comment = append(node.Comment, unquote(p.tok.val))
		case tokAnnotation:
			node.AddNag(p.nag(p.tok.val))
		case tokLParen:
			if node.IsRoot() {
				p.fail("variation without a preceeding move")
			}
			p.advance()
			p.variation(node.NewVariation(), depth+1)
		case tokRParen:
			if depth == 0 {
				p.fail("unexpected right parenthesis")
			}
			return
		case tokEOF, tokLBracket:
			if depth != 0 {
				p.fail("%d unclosed variations", depth)
			}
			return
		case tokMoveNumber, tokDots, tokResult:
			// ignore
		default:
			p.fail("unexpected token: %s", p.tok.kind)
		}
		p.advance()
	}
}

// nag extracts a Nag from s, which is either a "$N" glyph or one of the
// shorthand punctuation annotations ("!", "??", "!?", ...).
func (p *parser) nag(s string) Nag {
	if len(s) >= 2 && s[0] == '$' {
		if n, err := strconv.Atoi(s[1:]); err == nil {
			return Nag(n)
		}
	} else {
		switch s {
		case "!":
			return 1
		case "?":
			return 2
		case "!!":
			return 3
		case "??":
			return 4
		case "!?":
			return 5
		case "?!":
			return 6
		}
	}
	p.fail("%q: invalid annotation", s)
	panic("unreachable")
}
