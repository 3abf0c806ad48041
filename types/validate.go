package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/frostwonder/ethabi/errs"
)

// validatePrimitive applies the per-kind constraints of spec.md §4.1 to
// an already-normalized (name, size) pair and builds the leaf Node.
//
// Unrecognized names are a grammar-level ParseError (the string isn't a
// type at all); a recognized name with a malformed or out-of-range size
// is a ValidationError (the type exists but this instance of it
// doesn't).
func validatePrimitive(name, size string) (*Node, error) {
	switch name {
	case "uint", "int":
		return validateIntLike(name, size)
	case "bytes":
		return validateBytes(size)
	case "string":
		return validateString(size)
	case "address":
		return validateNoSize("address", KindAddress, size)
	case "bool":
		return validateNoSize("bool", KindBool, size)
	case "fixed", "ufixed":
		return validateFixedLike(name, size)
	default:
		return nil, fmt.Errorf("%w: unrecognized type name %q", errs.ErrParse, name)
	}
}

func validateNoSize(name string, kind Kind, size string) (*Node, error) {
	if size != "" {
		return nil, fmt.Errorf("%w: %s takes no size suffix, got %q", errs.ErrValidation, name, size)
	}

	return &Node{Kind: kind}, nil
}

func validateIntLike(name, size string) (*Node, error) {
	bits, err := parseNonNegativeInt(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %s requires a numeric size suffix, got %q", errs.ErrValidation, name, size)
	}

	if bits%8 != 0 || bits < 8 || bits > 256 {
		return nil, fmt.Errorf("%w: %s%s bit width must be a multiple of 8 in [8,256]", errs.ErrValidation, name, size)
	}

	kind := KindUInt
	if name == "int" {
		kind = KindInt
	}

	return &Node{Kind: kind, Bits: bits}, nil
}

func validateBytes(size string) (*Node, error) {
	if size == "" {
		return &Node{Kind: KindBytes}, nil
	}

	n, err := parseNonNegativeInt(size)
	if err != nil {
		return nil, fmt.Errorf("%w: bytes size suffix must be numeric, got %q", errs.ErrValidation, size)
	}

	if n < 1 || n > 32 {
		return nil, fmt.Errorf("%w: bytes%s size must be in [1,32]", errs.ErrValidation, size)
	}

	return &Node{Kind: KindFixedBytes, FixedBytesLen: n}, nil
}

func validateString(size string) (*Node, error) {
	if size != "" {
		return nil, fmt.Errorf("%w: string takes no size suffix, got %q", errs.ErrValidation, size)
	}

	return &Node{Kind: KindString}, nil
}

func validateFixedLike(name, size string) (*Node, error) {
	high, low, err := parseSizePair(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %s requires a <high>x<low> size suffix, got %q", errs.ErrValidation, name, size)
	}

	if high%8 != 0 || high < 8 || high > 256 {
		return nil, fmt.Errorf("%w: %s high component must be a multiple of 8 in [8,256], got %d", errs.ErrValidation, name, high)
	}

	if low < 1 || low > 80 {
		return nil, fmt.Errorf("%w: %s low component must be in [1,80], got %d", errs.ErrValidation, name, low)
	}

	kind := KindFixed
	if name == "ufixed" {
		kind = KindUFixed
	}

	return &Node{Kind: kind, Bits: high, FixedLow: low}, nil
}

// parseNonNegativeInt parses a run of decimal digits into a
// non-negative int, failing on empty input or a value too large for an
// int. Leading zeros are accepted ("08" parses as 8).
func parseNonNegativeInt(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty integer")
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid integer %q", s)
	}

	return n, nil
}

// parseSizePair splits a "<high>x<low>" size suffix.
func parseSizePair(s string) (high int, low int, err error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("missing 'x' separator in %q", s)
	}

	high, err = parseNonNegativeInt(parts[0])
	if err != nil {
		return 0, 0, err
	}

	low, err = parseNonNegativeInt(parts[1])
	if err != nil {
		return 0, 0, err
	}

	return high, low, nil
}
