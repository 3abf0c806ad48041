package types

import (
	"fmt"

	"github.com/frostwonder/ethabi/errs"
)

// Parse parses a type descriptor string into a validated Node tree
// (spec.md §4.1). The returned Node is immutable and safe to reuse
// concurrently, including as a key into the codec factory's cache.
func Parse(s string) (*Node, error) {
	sc := newScanner(s)

	n, err := parseType(sc)
	if err != nil {
		return nil, err
	}

	if !sc.eof() {
		return nil, fmt.Errorf("%w: unexpected trailing input %q at position %d", errs.ErrParse, s[sc.pos:], sc.pos)
	}

	return n, nil
}

// parseType parses `atom arrayspec*` (spec.md §4.1's `type` production).
func parseType(sc *scanner) (*Node, error) {
	n, err := parseAtom(sc)
	if err != nil {
		return nil, err
	}

	for {
		b, ok := sc.peek()
		if !ok || b != '[' {
			break
		}

		length, err := parseArraySpec(sc)
		if err != nil {
			return nil, err
		}

		n = &Node{Kind: KindArray, Inner: n, ArrayLen: length}
	}

	return n, nil
}

// parseArraySpec parses `'[' digits? ']'`, returning DynArrayLen when
// the bracket pair is empty.
func parseArraySpec(sc *scanner) (int, error) {
	if !sc.consumeByte('[') {
		return 0, fmt.Errorf("%w: expected '[' at position %d", errs.ErrParse, sc.pos)
	}

	digits := sc.scanDigits()

	if !sc.consumeByte(']') {
		return 0, fmt.Errorf("%w: expected ']' at position %d", errs.ErrParse, sc.pos)
	}

	if digits == "" {
		return DynArrayLen, nil
	}

	n, err := parseNonNegativeInt(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid array length %q", errs.ErrParse, digits)
	}

	return n, nil
}

// parseAtom parses `tuple | primitive` (spec.md §4.1).
func parseAtom(sc *scanner) (*Node, error) {
	if b, ok := sc.peek(); ok && b == '(' {
		return parseTuple(sc)
	}

	return parsePrimitive(sc)
}

// parseTuple parses `'(' type (',' type)* ')' | '()'`.
func parseTuple(sc *scanner) (*Node, error) {
	if !sc.consumeByte('(') {
		return nil, fmt.Errorf("%w: expected '(' at position %d", errs.ErrParse, sc.pos)
	}

	if sc.consumeByte(')') {
		return &Node{Kind: KindTuple, Members: nil}, nil
	}

	var members []*Node
	for {
		m, err := parseType(sc)
		if err != nil {
			return nil, err
		}
		members = append(members, m)

		if sc.consumeByte(')') {
			break
		}
		if !sc.consumeByte(',') {
			return nil, fmt.Errorf("%w: expected ',' or ')' at position %d", errs.ErrParse, sc.pos)
		}
	}

	return &Node{Kind: KindTuple, Members: members}, nil
}

// parsePrimitive parses `identifier size?`, normalizes default widths
// and aliases, then validates and builds the leaf Node.
func parsePrimitive(sc *scanner) (*Node, error) {
	name := sc.scanIdent()
	if name == "" {
		return nil, fmt.Errorf("%w: expected type name at position %d", errs.ErrParse, sc.pos)
	}

	first := sc.scanDigits()
	size := first
	if first != "" && sc.consumeByte('x') {
		second := sc.scanDigits()
		size = first + "x" + second
	}

	name, size = normalize(name, size)

	return validatePrimitive(name, size)
}
