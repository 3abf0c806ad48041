package types

import "github.com/frostwonder/ethabi/internal/charclass"

// scanner is a minimal forward-only cursor over a type descriptor
// string. It has no lookahead buffer; callers peek a byte and decide
// whether to consume it, which keeps the recursive-descent parser in
// parse.go a direct translation of the grammar in spec.md §4.1.
type scanner struct {
	src string
	pos int
}

func newScanner(src string) *scanner {
	return &scanner{src: src}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() (byte, bool) {
	if s.eof() {
		return 0, false
	}

	return s.src[s.pos], true
}

// consumeByte consumes b if it is next, reporting whether it matched.
func (s *scanner) consumeByte(b byte) bool {
	if next, ok := s.peek(); ok && next == b {
		s.pos++

		return true
	}

	return false
}

// scanIdent consumes a run of lowercase ASCII letters, the alphabet
// every primitive type name is drawn from.
func (s *scanner) scanIdent() string {
	start := s.pos
	for {
		b, ok := s.peek()
		if !ok || !charclass.IsLower(b) {
			break
		}
		s.pos++
	}

	return s.src[start:s.pos]
}

// scanDigits consumes a run of ASCII decimal digits, possibly empty.
func (s *scanner) scanDigits() string {
	start := s.pos
	for {
		b, ok := s.peek()
		if !ok || !charclass.IsDigit(b) {
			break
		}
		s.pos++
	}

	return s.src[start:s.pos]
}
