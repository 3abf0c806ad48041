// Package ethabi implements the Ethereum contract ABI encoding scheme:
// parsing a type descriptor string into a type tree, and encoding and
// decoding Go values against it using the head/tail offset protocol
// (spec.md §3, §4).
//
// # Basic usage
//
// Encoding a single value:
//
//	data, err := ethabi.Encode("uint256", big.NewInt(42))
//
// Decoding it back:
//
//	value, err := ethabi.Decode("uint256", data)
//	n := value.(*big.Int)
//
// Values are represented as: *big.Int
// for uintN/intN, bool, [20]byte for address, []byte for bytesN and
// bytes, string for string, and []any for array and tuple members,
// recursively.
//
// # Package Structure
//
// This package is a convenience wrapper over types (the type grammar)
// and codec (the Codec tree and its Factory). Callers building a
// service that repeatedly encodes or decodes the same set of types
// should hold onto a codec.Factory directly rather than calling Parse
// on every call.
package ethabi

import (
	"fmt"

	"github.com/frostwonder/ethabi/codec"
	"github.com/frostwonder/ethabi/internal/options"
	"github.com/frostwonder/ethabi/types"
)

var defaultFactory, _ = codec.NewFactory()

// Parse parses a type descriptor string into a *types.Node (spec.md
// §4.1). It is a thin re-export of types.Parse so straightforward
// callers don't need a separate import for the common case.
func Parse(typeString string) (*types.Node, error) {
	return types.Parse(typeString)
}

// MustParse is like Parse but panics on error. Intended for package
// initialization code where typeString is a compile-time constant
// known to be valid.
func MustParse(typeString string) *types.Node {
	n, err := types.Parse(typeString)
	if err != nil {
		panic(fmt.Sprintf("ethabi: MustParse(%q): %v", typeString, err))
	}

	return n
}

// Encode parses typeString and encodes value against it, returning the
// ABI wire bytes (spec.md §4). The Codec for typeString is cached
// across calls in a package-level factory.
func Encode(typeString string, value any) ([]byte, error) {
	n, err := types.Parse(typeString)
	if err != nil {
		return nil, err
	}

	c, err := defaultFactory.Get(n)
	if err != nil {
		return nil, err
	}

	return codec.Encode(c, value)
}

// decodeConfig holds the options a Decode call can be configured with.
type decodeConfig struct {
	strictOffsets bool
}

// DecodeOption configures a Decode call.
type DecodeOption = options.Option[*decodeConfig]

// WithStrictOffsets rejects head offset words that don't point exactly
// at the position the canonical encoder would have used (every dynamic
// value's tail region packed contiguously, in member order, with no
// gaps or overlaps). Without this option, Decode accepts any offset
// that resolves to a valid read within bounds, matching the tolerance
// most ABI decoders in the wild apply to calldata they didn't produce
// themselves.
func WithStrictOffsets() DecodeOption {
	return options.NoError(func(c *decodeConfig) {
		c.strictOffsets = true
	})
}

// Decode parses typeString and decodes data against it (spec.md §4).
// By default, offsets are interpreted leniently: WithStrictOffsets
// opts into rejecting non-canonical offsets instead.
func Decode(typeString string, data []byte, opts ...DecodeOption) (any, error) {
	cfg := &decodeConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	n, err := types.Parse(typeString)
	if err != nil {
		return nil, err
	}

	c, err := defaultFactory.Get(n)
	if err != nil {
		return nil, err
	}

	if cfg.strictOffsets {
		return codec.DecodeStrict(c, data)
	}

	return codec.Decode(c, data)
}
