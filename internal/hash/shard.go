// Package hash provides the xxHash64-based shard selection used by the
// codec factory's concurrent cache (spec.md §4.5, §5).
package hash

import "github.com/cespare/xxhash/v2"

// Shard returns the shard index in [0, shardCount) for key, spreading
// canonical type strings evenly across the factory's cache shards so
// concurrent lookups for different types rarely contend on the same
// lock.
func Shard(key string, shardCount int) int {
	return int(xxhash.Sum64String(key) % uint64(shardCount))
}
