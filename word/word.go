// Package word implements the big-endian, 32-byte-word numeric
// primitives spec.md §4.1 and §4.3 build on: unbounded-integer <->
// fixed-width byte conversions, zero padding, and ceil32.
//
// The ABI wire format is always big-endian (spec.md §4.3), unlike
// mebo's endian package, which exists because mebo supports either
// byte order. There is no "engine" to select here, only a fixed set of
// functions.
package word

import "math/big"

// Size is the width in bytes of one ABI word.
const Size = 32

// Ceil32 rounds n up to the next multiple of 32 (spec.md §4.1).
func Ceil32(n int) int {
	return (n + Size - 1) / Size * Size
}

// PutUint encodes an unsigned value into a big-endian 32-byte word,
// left-padded with zeros. It panics if value is negative or does not
// fit in 32 bytes; callers validate range before calling PutUint.
func PutUint(value *big.Int) [Size]byte {
	if value.Sign() < 0 {
		panic("word: PutUint of negative value")
	}

	var out [Size]byte
	b := value.Bytes()
	copy(out[Size-len(b):], b)

	return out
}

// Uint decodes a big-endian 32-byte word into an unsigned value.
func Uint(word []byte) *big.Int {
	return new(big.Int).SetBytes(word)
}

// PutInt encodes a signed value into a big-endian 32-byte two's
// complement word, sign-extended on the high side.
func PutInt(value *big.Int, bits int) [Size]byte {
	var out [Size]byte

	if value.Sign() >= 0 {
		b := value.Bytes()
		copy(out[Size-len(b):], b)

		return out
	}

	// Two's complement of the given bit width: (1<<bits) + value, then
	// sign-extend into the full word with 0xFF on the high side.
	mod := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	twos := new(big.Int).Add(mod, value)
	b := twos.Bytes()

	for i := range out {
		out[i] = 0xFF
	}
	copy(out[Size-len(b):], b)

	return out
}

// IsNegativeWord reports whether a decoded word represents a negative
// two's-complement value of the given bit width, i.e. its sign bit (the
// MSB of the low bits/8 bytes) is set.
func IsNegativeWord(word []byte, bits int) bool {
	byteIdx := Size - bits/8
	if byteIdx >= Size {
		return false
	}

	return word[byteIdx]&0x80 != 0
}

// Int decodes a big-endian 32-byte two's complement word of the given
// bit width into a signed value.
func Int(word []byte, bits int) *big.Int {
	if !IsNegativeWord(word, bits) {
		return new(big.Int).SetBytes(word)
	}

	valueBytes := word[Size-bits/8:]
	twos := new(big.Int).SetBytes(valueBytes)
	mod := new(big.Int).Lsh(big.NewInt(1), uint(bits))

	return new(big.Int).Sub(twos, mod)
}

// ZeroPadding reports whether word[:n] is entirely zero.
func ZeroPadding(word []byte, n int) bool {
	for i := 0; i < n; i++ {
		if word[i] != 0 {
			return false
		}
	}

	return true
}

// FFPadding reports whether word[:n] is entirely 0xFF.
func FFPadding(word []byte, n int) bool {
	for i := 0; i < n; i++ {
		if word[i] != 0xFF {
			return false
		}
	}

	return true
}
