package types

// The constructors below build Node values directly, bypassing the
// parser. They exist so callers and tests can describe a type
// programmatically without round-tripping through a descriptor string,
// and are used by the unit tests of the types and codec packages.

// NewUInt returns an unsigned integer Node of the given bit width.
// It does not validate bits; callers that need validation should go
// through Parse.
func NewUInt(bits int) *Node { return &Node{Kind: KindUInt, Bits: bits} }

// NewInt returns a signed integer Node of the given bit width.
func NewInt(bits int) *Node { return &Node{Kind: KindInt, Bits: bits} }

// NewBool returns the boolean Node.
func NewBool() *Node { return &Node{Kind: KindBool} }

// NewAddress returns the address Node.
func NewAddress() *Node { return &Node{Kind: KindAddress} }

// NewFixedBytes returns a fixed-size byte array Node of length n.
func NewFixedBytes(n int) *Node { return &Node{Kind: KindFixedBytes, FixedBytesLen: n} }

// NewBytes returns the dynamic bytes Node.
func NewBytes() *Node { return &Node{Kind: KindBytes} }

// NewString returns the dynamic string Node.
func NewString() *Node { return &Node{Kind: KindString} }

// NewFixedArray returns a fixed-size array Node of inner, with length k.
func NewFixedArray(inner *Node, k int) *Node {
	return &Node{Kind: KindArray, Inner: inner, ArrayLen: k}
}

// NewDynamicArray returns a dynamic-size array Node of inner.
func NewDynamicArray(inner *Node) *Node {
	return &Node{Kind: KindArray, Inner: inner, ArrayLen: DynArrayLen}
}

// NewTuple returns a tuple Node with the given ordered members.
func NewTuple(members ...*Node) *Node {
	return &Node{Kind: KindTuple, Members: members}
}
