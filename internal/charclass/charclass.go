// Package charclass provides byte-classification lookup tables for the
// type-grammar tokenizer.
//
// Each table is a 256-bit membership set built once at package init
// time with github.com/bits-and-blooms/bitset, so classifying a byte
// during tokenizing is a single bit test instead of a chain of range
// comparisons repeated for every character of every type descriptor.
package charclass

import "github.com/bits-and-blooms/bitset"

var (
	lowerLetters = newSet(func(b byte) bool { return b >= 'a' && b <= 'z' })
	digits       = newSet(func(b byte) bool { return b >= '0' && b <= '9' })
)

func newSet(member func(b byte) bool) *bitset.BitSet {
	bs := bitset.New(256)
	for b := 0; b < 256; b++ {
		if member(byte(b)) {
			bs.Set(uint(b))
		}
	}

	return bs
}

// IsLower reports whether b is an ASCII lowercase letter.
func IsLower(b byte) bool { return lowerLetters.Test(uint(b)) }

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool { return digits.Test(uint(b)) }
