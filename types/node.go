// Package types implements the ABI type grammar: a tokenizer and
// recursive-descent parser that turn a type descriptor string such as
// "uint256", "bytes", or "(address,uint256[])[3]" into a validated,
// immutable Node tree, plus the canonical serializer that re-emits a
// Node's normalized spelling.
package types

import (
	"strconv"
	"strings"
)

// Kind tags the variant a Node represents.
type Kind uint8

const (
	KindUInt Kind = iota
	KindInt
	KindBool
	KindAddress
	KindFixedBytes
	KindBytes
	KindString
	KindFixed
	KindUFixed
	KindArray
	KindTuple
)

func (k Kind) String() string {
	switch k {
	case KindUInt:
		return "uint"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindAddress:
		return "address"
	case KindFixedBytes:
		return "fixedbytes"
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindFixed:
		return "fixed"
	case KindUFixed:
		return "ufixed"
	case KindArray:
		return "array"
	case KindTuple:
		return "tuple"
	default:
		return "unknown"
	}
}

// DynArrayLen marks an Array Node as dynamically sized (spec.md §3's
// "len = dyn").
const DynArrayLen = -1

// Node is the ABI type tree's tagged-variant node. A Node is immutable
// after construction: every constructor returns a fully formed value,
// and there are no setters. Node values (and the trees they head) are
// safe to share and reuse concurrently, including as a Codec's input
// (spec.md §5).
type Node struct {
	Kind Kind

	// Bits is the bit width for UInt/Int, and the "high" component for
	// Fixed/UFixed.
	Bits int

	// FixedBytesLen is the byte length for FixedBytes (1..32).
	FixedBytesLen int

	// FixedLow is the "low" component (fractional digits) for
	// Fixed/UFixed.
	FixedLow int

	// Inner is the element type for Array.
	Inner *Node

	// ArrayLen is the array length for Array, or DynArrayLen.
	ArrayLen int

	// Members is the ordered member list for Tuple. Ordering is
	// significant and is never reordered.
	Members []*Node
}

// IsDynamic reports whether t's on-wire length depends on its value
// rather than only on its type (spec.md §3).
func (t *Node) IsDynamic() bool {
	switch t.Kind {
	case KindBytes, KindString:
		return true
	case KindArray:
		if t.ArrayLen == DynArrayLen {
			return true
		}

		return t.Inner.IsDynamic()
	case KindTuple:
		for _, m := range t.Members {
			if m.IsDynamic() {
				return true
			}
		}

		return false
	default:
		return false
	}
}

// String renders t's canonical type descriptor. Parsing the result of
// String always yields an equal Node (the idempotent-parse property of
// spec.md §8).
func (t *Node) String() string {
	var sb strings.Builder
	t.writeCanonical(&sb)

	return sb.String()
}

func (t *Node) writeCanonical(sb *strings.Builder) {
	switch t.Kind {
	case KindUInt:
		sb.WriteString("uint")
		sb.WriteString(strconv.Itoa(t.Bits))
	case KindInt:
		sb.WriteString("int")
		sb.WriteString(strconv.Itoa(t.Bits))
	case KindBool:
		sb.WriteString("bool")
	case KindAddress:
		sb.WriteString("address")
	case KindFixedBytes:
		sb.WriteString("bytes")
		sb.WriteString(strconv.Itoa(t.FixedBytesLen))
	case KindBytes:
		sb.WriteString("bytes")
	case KindString:
		sb.WriteString("string")
	case KindFixed:
		sb.WriteString("fixed")
		sb.WriteString(strconv.Itoa(t.Bits))
		sb.WriteByte('x')
		sb.WriteString(strconv.Itoa(t.FixedLow))
	case KindUFixed:
		sb.WriteString("ufixed")
		sb.WriteString(strconv.Itoa(t.Bits))
		sb.WriteByte('x')
		sb.WriteString(strconv.Itoa(t.FixedLow))
	case KindArray:
		t.Inner.writeCanonical(sb)
		sb.WriteByte('[')
		if t.ArrayLen != DynArrayLen {
			sb.WriteString(strconv.Itoa(t.ArrayLen))
		}
		sb.WriteByte(']')
	case KindTuple:
		sb.WriteByte('(')
		for i, m := range t.Members {
			if i > 0 {
				sb.WriteByte(',')
			}
			m.writeCanonical(sb)
		}
		sb.WriteByte(')')
	}
}

// Equal reports whether t and other describe the same type, structurally.
func (t *Node) Equal(other *Node) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.Kind != other.Kind {
		return false
	}

	switch t.Kind {
	case KindUInt, KindInt:
		return t.Bits == other.Bits
	case KindFixedBytes:
		return t.FixedBytesLen == other.FixedBytesLen
	case KindFixed, KindUFixed:
		return t.Bits == other.Bits && t.FixedLow == other.FixedLow
	case KindArray:
		return t.ArrayLen == other.ArrayLen && t.Inner.Equal(other.Inner)
	case KindTuple:
		if len(t.Members) != len(other.Members) {
			return false
		}
		for i := range t.Members {
			if !t.Members[i].Equal(other.Members[i]) {
				return false
			}
		}

		return true
	default:
		return true
	}
}
