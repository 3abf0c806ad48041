package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShard_InRange(t *testing.T) {
	keys := []string{"uint256", "", "(address,uint256)", "bytes32[][3]", "string"}
	for _, k := range keys {
		s := Shard(k, 16)
		assert.GreaterOrEqual(t, s, 0)
		assert.Less(t, s, 16)
	}
}

func TestShard_Deterministic(t *testing.T) {
	a := Shard("uint256[]", 32)
	b := Shard("uint256[]", 32)
	assert.Equal(t, a, b)
}

func TestShard_SpreadsDifferentKeys(t *testing.T) {
	seen := make(map[int]struct{})
	for i := 0; i < 64; i++ {
		k := string(rune('a' + i%26))
		seen[Shard(k, 8)] = struct{}{}
	}
	// With 26 distinct keys over 8 shards we expect more than one
	// shard to be used; this is not a strict uniformity test, just a
	// smoke check that Shard isn't a constant function.
	assert.Greater(t, len(seen), 1)
}
