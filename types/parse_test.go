package types

import (
	"errors"
	"testing"

	"github.com/frostwonder/ethabi/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Primitives(t *testing.T) {
	cases := []struct {
		in   string
		kind Kind
	}{
		{"uint256", KindUInt},
		{"int256", KindInt},
		{"bool", KindBool},
		{"address", KindAddress},
		{"bytes32", KindFixedBytes},
		{"bytes", KindBytes},
		{"string", KindString},
	}

	for _, c := range cases {
		n, err := Parse(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.kind, n.Kind, c.in)
	}
}

func TestParse_DefaultsWidths(t *testing.T) {
	n, err := Parse("uint")
	require.NoError(t, err)
	assert.Equal(t, 256, n.Bits)

	n, err = Parse("int")
	require.NoError(t, err)
	assert.Equal(t, 256, n.Bits)

	n, err = Parse("fixed")
	require.NoError(t, err)
	assert.Equal(t, 128, n.Bits)
	assert.Equal(t, 18, n.FixedLow)

	n, err = Parse("ufixed")
	require.NoError(t, err)
	assert.Equal(t, KindUFixed, n.Kind)
}

func TestParse_FunctionAliasesToBytes24(t *testing.T) {
	n, err := Parse("function")
	require.NoError(t, err)
	assert.Equal(t, KindFixedBytes, n.Kind)
	assert.Equal(t, 24, n.FixedBytesLen)
}

func TestParse_FixedSizeArray(t *testing.T) {
	n, err := Parse("uint256[3]")
	require.NoError(t, err)
	assert.Equal(t, KindArray, n.Kind)
	assert.Equal(t, 3, n.ArrayLen)
	assert.Equal(t, KindUInt, n.Inner.Kind)
}

func TestParse_DynamicArray(t *testing.T) {
	n, err := Parse("bool[]")
	require.NoError(t, err)
	assert.Equal(t, DynArrayLen, n.ArrayLen)
}

func TestParse_NestedArrays(t *testing.T) {
	n, err := Parse("uint8[2][]")
	require.NoError(t, err)
	assert.Equal(t, DynArrayLen, n.ArrayLen)
	assert.Equal(t, 2, n.Inner.ArrayLen)
	assert.Equal(t, KindUInt, n.Inner.Inner.Kind)
}

func TestParse_Tuple(t *testing.T) {
	n, err := Parse("(uint256,bool,string)")
	require.NoError(t, err)
	require.Len(t, n.Members, 3)
	assert.Equal(t, KindUInt, n.Members[0].Kind)
	assert.Equal(t, KindBool, n.Members[1].Kind)
	assert.Equal(t, KindString, n.Members[2].Kind)
}

func TestParse_EmptyTuple(t *testing.T) {
	n, err := Parse("()")
	require.NoError(t, err)
	assert.Equal(t, KindTuple, n.Kind)
	assert.Empty(t, n.Members)
}

func TestParse_NestedTuple(t *testing.T) {
	n, err := Parse("(uint256,(bool,address)[])")
	require.NoError(t, err)
	require.Len(t, n.Members, 2)
	inner := n.Members[1].Inner
	assert.Equal(t, KindTuple, inner.Kind)
	assert.Len(t, inner.Members, 2)
}

func TestParse_RejectsTrailingInput(t *testing.T) {
	_, err := Parse("uint256 garbage")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrParse))
}

func TestParse_RejectsUnknownName(t *testing.T) {
	_, err := Parse("notatype")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrParse))
}

func TestParse_RejectsBadIntWidth(t *testing.T) {
	_, err := Parse("uint7")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValidation))

	_, err = Parse("uint264")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValidation))
}

func TestParse_RejectsOversizedFixedBytes(t *testing.T) {
	_, err := Parse("bytes33")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValidation))
}

func TestParse_RejectsSizedBoolOrAddress(t *testing.T) {
	_, err := Parse("bool8")
	require.Error(t, err)

	_, err = Parse("address20")
	require.Error(t, err)
}

func TestParse_RejectsMalformedTuple(t *testing.T) {
	_, err := Parse("(uint256,")
	require.Error(t, err)

	_, err = Parse("(uint256 bool)")
	require.Error(t, err)
}

func TestNode_CanonicalStringRoundTrips(t *testing.T) {
	for _, in := range []string{
		"uint256", "int8", "bool", "address", "bytes32", "bytes", "string",
		"uint256[3]", "uint256[]", "(uint256,bool)", "(uint256,(bool,address)[2])[]",
	} {
		n, err := Parse(in)
		require.NoError(t, err, in)

		n2, err := Parse(n.String())
		require.NoError(t, err, in)
		assert.True(t, n.Equal(n2), "canonical form %q of %q should parse back equal", n.String(), in)
	}
}

func TestNode_DefaultsCanonicalizeExplicitly(t *testing.T) {
	n, err := Parse("uint")
	require.NoError(t, err)
	assert.Equal(t, "uint256", n.String())
}
