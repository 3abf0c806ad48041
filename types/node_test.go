package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDynamic(t *testing.T) {
	cases := []struct {
		in      string
		dynamic bool
	}{
		{"uint256", false},
		{"bool", false},
		{"address", false},
		{"bytes32", false},
		{"bytes", true},
		{"string", true},
		{"uint256[3]", false},
		{"uint256[]", true},
		{"bytes[3]", true},
		{"(uint256,bool)", false},
		{"(uint256,string)", true},
		{"(uint256,(bool,bytes))", true},
	}

	for _, c := range cases {
		n, err := Parse(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.dynamic, n.IsDynamic(), c.in)
	}
}

func TestNode_EqualDistinguishesStructure(t *testing.T) {
	a, _ := Parse("uint256[3]")
	b, _ := Parse("uint256[]")
	assert.False(t, a.Equal(b))

	c, _ := Parse("uint256[3]")
	assert.True(t, a.Equal(c))
}

func TestConstructors_MatchParsedEquivalents(t *testing.T) {
	parsed, err := Parse("uint256[3]")
	require.NoError(t, err)
	built := NewFixedArray(NewUInt(256), 3)
	assert.True(t, parsed.Equal(built))

	parsed, err = Parse("(address,bytes)")
	require.NoError(t, err)
	built = NewTuple(NewAddress(), NewBytes())
	assert.True(t, parsed.Equal(built))
}
