package pgn

import "strconv"

// Nag is a Numeric Annotation Glyph, the PGN standard's numeric code for a
// move annotation symbol ($1 = "!", $2 = "?", ...). The teacher's pgn
// package references this type without defining it in the retrieval pack;
// it is reconstructed here from the PGN specification's standard glyph
// table, the same codes parser.nag() accepts as $N or as the bang/query
// shorthand.
type Nag int

const (
	NagGood          Nag = 1 // !
	NagMistake       Nag = 2 // ?
	NagBrilliant     Nag = 3 // !!
	NagBlunder       Nag = 4 // ??
	NagInteresting   Nag = 5 // !?
	NagDubious       Nag = 6 // ?!
	NagForced        Nag = 7
	NagSingular      Nag = 8
	NagWorst         Nag = 9
	NagDrawish       Nag = 10
	NagEqual         Nag = 11
	NagUnclear       Nag = 13
	NagWhiteSlight   Nag = 14
	NagBlackSlight   Nag = 15
	NagWhiteModerate Nag = 16
	NagBlackModerate Nag = 17
	NagWhiteDecisive Nag = 18
	NagBlackDecisive Nag = 19
	NagZugzwang      Nag = 22
)

var nagSymbols = map[Nag]string{
	NagGood: "!", NagMistake: "?", NagBrilliant: "!!", NagBlunder: "??",
	NagInteresting: "!?", NagDubious: "?!",
}

// String renders the NAG in its bang/query shorthand when one exists, or
// its "$N" numeric form otherwise.
func (n Nag) String() string {
	if s, ok := nagSymbols[n]; ok {
		return s
	}
	return "$" + strconv.Itoa(int(n))
}
