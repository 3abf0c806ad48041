package codec

import (
	"bytes"
	crand "crypto/rand"
	"math/big"
	"math/rand"
	"reflect"
	"testing"

	"github.com/frostwonder/ethabi/word"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// typeGen pairs a Codec with a way to sample matching Go values for it,
// so composite generators (array, tuple) can draw several independent
// values of the same member type.
type typeGen struct {
	codec  Codec
	sample func(rng *rand.Rand) any
}

func genLeaf(rng *rand.Rand) typeGen {
	switch rng.Intn(7) {
	case 0:
		bits := []int{8, 32, 128, 256}[rng.Intn(4)]
		return typeGen{
			codec: &uintCodec{bits: bits},
			sample: func(rng *rand.Rand) any {
				return randBigUint(rng, bits)
			},
		}
	case 1:
		bits := []int{8, 32, 128, 256}[rng.Intn(4)]
		return typeGen{
			codec: &intCodec{bits: bits},
			sample: func(rng *rand.Rand) any {
				return randBigInt(rng, bits)
			},
		}
	case 2:
		return typeGen{
			codec:  &boolCodec{},
			sample: func(rng *rand.Rand) any { return rng.Intn(2) == 1 },
		}
	case 3:
		return typeGen{
			codec: &addressCodec{},
			sample: func(rng *rand.Rand) any {
				var a [20]byte
				rng.Read(a[:])
				return a
			},
		}
	case 4:
		n := 1 + rng.Intn(32)
		return typeGen{
			codec: &fixedBytesCodec{n: n},
			sample: func(rng *rand.Rand) any {
				b := make([]byte, n)
				rng.Read(b)
				return b
			},
		}
	case 5:
		return typeGen{
			codec: &bytesCodec{},
			sample: func(rng *rand.Rand) any {
				b := make([]byte, rng.Intn(40))
				rng.Read(b)
				return b
			},
		}
	default:
		return typeGen{
			codec: &stringCodec{},
			sample: func(rng *rand.Rand) any {
				n := rng.Intn(20)
				runes := make([]rune, n)
				for i := range runes {
					runes[i] = rune('a' + rng.Intn(26))
				}
				return string(runes)
			},
		}
	}
}

func randBigUint(rng *rand.Rand, bits int) *big.Int {
	max := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	n, _ := crand.Int(rng, max)

	return n
}

func randBigInt(rng *rand.Rand, bits int) *big.Int {
	half := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	n, _ := crand.Int(rng, new(big.Int).Lsh(big.NewInt(1), uint(bits)))

	return n.Sub(n, half)
}

func genType(rng *rand.Rand, depth int) typeGen {
	if depth >= 2 || rng.Intn(3) != 0 {
		return genLeaf(rng)
	}

	if rng.Intn(2) == 0 {
		elem := genType(rng, depth+1)
		length := rng.Intn(4)
		isDyn := rng.Intn(2) == 0
		arrLen := length
		if isDyn {
			arrLen = dynArrayLen
		}

		return typeGen{
			codec: &arrayCodec{inner: elem.codec, length: arrLen},
			sample: func(rng *rand.Rand) any {
				n := length
				if isDyn {
					n = rng.Intn(4)
				}
				out := make([]any, n)
				for i := range out {
					out[i] = elem.sample(rng)
				}

				return out
			},
		}
	}

	memberCount := 1 + rng.Intn(3)
	members := make([]typeGen, memberCount)
	for i := range members {
		members[i] = genType(rng, depth+1)
	}
	codecs := make([]Codec, memberCount)
	for i, m := range members {
		codecs[i] = m.codec
	}

	return typeGen{
		codec: &tupleCodec{members: codecs},
		sample: func(rng *rand.Rand) any {
			out := make([]any, memberCount)
			for i, m := range members {
				out[i] = m.sample(rng)
			}

			return out
		},
	}
}

func fixtureGen() gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		tg := genType(genParams.Rng, 0)
		value := tg.sample(genParams.Rng)

		return gopter.NewGenResult([2]any{tg.codec, value}, gopter.NoShrinker)
	}
}

// deepEqualValue compares two decoded/encoded values the way the test
// fixtures need: *big.Int by numeric value, everything else
// structurally.
func deepEqualValue(a, b any) bool {
	if ba, ok := a.(*big.Int); ok {
		bb, ok := b.(*big.Int)
		return ok && ba.Cmp(bb) == 0
	}

	return reflect.DeepEqual(a, b)
}

func TestProperty_RoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("encode then decode recovers the original value", prop.ForAll(
		func(pair [2]any) bool {
			c := pair[0].(Codec)
			value := pair[1]

			enc, err := Encode(c, value)
			if err != nil {
				return false
			}

			got, err := Decode(c, enc)
			if err != nil {
				return false
			}

			return valuesEqual(value, got)
		},
		fixtureGen(),
	))

	properties.TestingRun(t)
}

func TestProperty_TruncationIsSafe(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("decoding a truncated buffer errors, never panics", prop.ForAll(
		func(pair [2]any) bool {
			c := pair[0].(Codec)
			value := pair[1]

			enc, err := Encode(c, value)
			if err != nil || len(enc) == 0 {
				return true
			}

			ok := true
			func() {
				defer func() {
					if r := recover(); r != nil {
						ok = false
					}
				}()
				for cut := 0; cut < len(enc); cut += word.Size {
					if _, err := Decode(c, enc[:cut]); err == nil {
						ok = false
					}
				}
			}()

			return ok
		},
		fixtureGen(),
	))

	properties.TestingRun(t)
}

func TestProperty_PaddingIntegrity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("a nonzero byte injected into static padding is rejected", prop.ForAll(
		func(bits int, v int64) bool {
			c := &uintCodec{bits: bits}
			enc, err := Encode(c, big.NewInt(v))
			if err != nil {
				return true
			}

			padLen := word.Size - bits/8
			if padLen == 0 {
				return true
			}

			corrupted := bytes.Clone(enc)
			corrupted[0] ^= 0x01

			_, err = Decode(c, corrupted)

			return err != nil
		},
		gen.OneConstOf(8, 16, 32, 64, 128, 256),
		gen.Int64Range(0, 1000),
	))

	properties.TestingRun(t)
}

func valuesEqual(a, b any) bool {
	switch av := a.(type) {
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !valuesEqual(av[i], bv[i]) {
				return false
			}
		}

		return true
	default:
		return deepEqualValue(a, b)
	}
}
