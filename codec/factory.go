package codec

import (
	"fmt"
	"sync"

	"github.com/frostwonder/ethabi/errs"
	"github.com/frostwonder/ethabi/internal/hash"
	"github.com/frostwonder/ethabi/internal/options"
	"github.com/frostwonder/ethabi/types"
)

// defaultShardCount is the number of independent cache shards a Factory
// maintains. Spreading lookups for different canonical type strings
// across several mutexes keeps concurrent Encode/Decode calls for
// unrelated types from contending on one lock (spec.md §5).
const defaultShardCount = 16

// Build compiles a *types.Node into a Codec tree, structurally
// recursing member by member. Build does not cache; callers that will
// reuse the same type repeatedly should go through a Factory instead.
func Build(n *types.Node) (Codec, error) {
	switch n.Kind {
	case types.KindUInt:
		return &uintCodec{bits: n.Bits}, nil
	case types.KindInt:
		return &intCodec{bits: n.Bits}, nil
	case types.KindBool:
		return &boolCodec{}, nil
	case types.KindAddress:
		return &addressCodec{}, nil
	case types.KindFixedBytes:
		return &fixedBytesCodec{n: n.FixedBytesLen}, nil
	case types.KindBytes:
		return &bytesCodec{}, nil
	case types.KindString:
		return &stringCodec{}, nil
	case types.KindFixed, types.KindUFixed:
		return nil, fmt.Errorf("%w: %s has no wire encoding", errs.ErrUnsupportedType, n.String())
	case types.KindArray:
		inner, err := Build(n.Inner)
		if err != nil {
			return nil, err
		}

		return &arrayCodec{inner: inner, length: n.ArrayLen}, nil
	case types.KindTuple:
		members := make([]Codec, len(n.Members))
		for i, m := range n.Members {
			mc, err := Build(m)
			if err != nil {
				return nil, err
			}
			members[i] = mc
		}

		return &tupleCodec{members: members}, nil
	default:
		return nil, fmt.Errorf("%w: unrecognized node kind %s", errs.ErrUnsupportedType, n.Kind)
	}
}

// shard is one lock-protected slice of a Factory's cache.
type shard struct {
	mu    sync.RWMutex
	codes map[string]Codec
}

// Factory builds and caches Codec trees keyed by a type's canonical
// descriptor string, so that repeated Encode/Decode calls against the
// same ABI type (the common case for a long-running service handling
// the same contract calls) skip rebuilding the Codec tree. A Factory
// is safe for concurrent use.
type Factory struct {
	shards []*shard
}

// FactoryOption configures a Factory at construction time.
type FactoryOption = options.Option[*factoryConfig]

type factoryConfig struct {
	shardCount int
}

// WithShardCount overrides the number of cache shards a Factory spreads
// its lookups across (spec.md §5). A higher count reduces lock
// contention between Get calls for unrelated types at the cost of a
// few more idle maps; the default of defaultShardCount suits most
// callers. shardCount must be at least 1.
func WithShardCount(shardCount int) FactoryOption {
	return options.New(func(cfg *factoryConfig) error {
		if shardCount < 1 {
			return fmt.Errorf("%w: shard count must be at least 1, got %d", errs.ErrValidation, shardCount)
		}
		cfg.shardCount = shardCount

		return nil
	})
}

// NewFactory creates a Factory ready for concurrent use.
func NewFactory(opts ...FactoryOption) (*Factory, error) {
	cfg := &factoryConfig{shardCount: defaultShardCount}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	f := &Factory{shards: make([]*shard, cfg.shardCount)}
	for i := range f.shards {
		f.shards[i] = &shard{codes: make(map[string]Codec)}
	}

	return f, nil
}

// Get returns the Codec for n, building and caching it on first use.
// The cache key is n's canonical string (spec.md §8's idempotent-parse
// property guarantees this is a stable, collision-free key across
// equivalent descriptor spellings).
func (f *Factory) Get(n *types.Node) (Codec, error) {
	key := n.String()
	sh := f.shards[hash.Shard(key, len(f.shards))]

	sh.mu.RLock()
	if c, ok := sh.codes[key]; ok {
		sh.mu.RUnlock()

		return c, nil
	}
	sh.mu.RUnlock()

	c, err := Build(n)
	if err != nil {
		return nil, err
	}

	sh.mu.Lock()
	sh.codes[key] = c
	sh.mu.Unlock()

	return c, nil
}
