package pgn

import (
	"reflect"
	"testing"
)

type scanTest struct {
	name   string
	input  string
	tokens []token
}

var tEOF = token{tokEOF, ""}

var scanTests = []scanTest{
	{"empty", "", []token{tEOF}},
	{"spaces", " \t\r", []token{tEOF}},
	{"pragma", "% ignore this line", []token{tEOF}},
	{"line comment", "; line comment", []token{tEOF}},
	{"block comment", "{ block\ncomment }", []token{
		{tokComment, "{ block\ncomment }"},
		tEOF,
	}},
	{"tag", `[Event "casual game"]`, []token{
		{tokLBracket, "["},
		{tokSymbol, "Event"},
		{tokString, `"casual game"`},
		{tokRBracket, "]"},
		tEOF,
	}},
	{"moves", "12. O-O-O Bxe5+ (12... e8=Q)", []token{
		{tokMoveNumber, "12"},
		{tokDots, "."},
		{tokSymbol, "O-O-O"},
		{tokSymbol, "Bxe5+"},
		{tokLParen, "("},
		{tokMoveNumber, "12"},
		{tokDots, "..."},
		{tokSymbol, "e8=Q"},
		{tokRParen, ")"},
		tEOF,
	}},
	{"results", `1-0 0-1 1/2-1/2 *`, []token{
		{tokResult, "1-0"},
		{tokResult, "0-1"},
		{tokResult, "1/2-1/2"},
		{tokResult, "*"},
		tEOF,
	}},
	{"annotations", `$4 $12 Bxe5+? Bxe5+?!`, []token{
		{tokAnnotation, "$4"},
		{tokAnnotation, "$12"},
		{tokSymbol, "Bxe5+"},
		{tokAnnotation, "?"},
		{tokSymbol, "Bxe5+"},
		{tokAnnotation, "?!"},
		tEOF,
	}},
	{"escaped string", `[Event "a\"b"]`, []token{
		{tokLBracket, "["},
		{tokSymbol, "Event"},
		{tokString, `"a\"b"`},
		{tokRBracket, "]"},
		tEOF,
	}},
	// errors
	{"badchar", "[Event \x01]", []token{
		{tokLBracket, "["},
		{tokSymbol, "Event"},
		{tokNone, "unexpected character: U+0001"},
	}},
	{"unclosed string", `"casual game`, []token{
		{tokNone, "unclosed quoted string"},
	}},
	{"unclosed comment", `{ block\ncomment`, []token{
		{tokNone, "unclosed block comment"},
	}},
	{"bad nag", `$a`, []token{
		{tokNone, "expected digit"},
	}},
}

// scanAll runs the scanner over the whole test input, turning a scanPanic
// into a trailing tokNone token instead of letting it escape.
func scanAll(t *scanTest) (tokens []token) {
	defer func() {
		if e := recover(); e != nil {
			err, ok := e.(scanPanic)
			if !ok {
				panic(e)
			}
			tokens = append(tokens, token{tokNone, string(err)})
		}
	}()
	s := newScanner(t.input, 1)
	for {
		tok := s.scan()
		tokens = append(tokens, tok)
		if tok.kind == tokEOF {
			break
		}
	}
	return
}

func TestScan(t *testing.T) {
	for _, test := range scanTests {
		got := scanAll(&test)
		if !reflect.DeepEqual(got, test.tokens) {
			t.Errorf("%s: got\n\t%v\nexpected\n\t%v", test.name, got, test.tokens)
		}
	}
}
