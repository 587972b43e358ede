package hasher

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/f3rmion/burnoracle/field"
	"github.com/iden3/go-iden3-crypto/poseidon"
	"golang.org/x/crypto/sha3"
)

// Arity bounds accepted by the permutation hash.
const (
	MinArity = 2
	MaxArity = 4
)

// ErrArity is returned when a hash is called with an unsupported number of inputs.
var ErrArity = errors.New("hasher: unsupported arity")

// Hasher is a field-to-field permutation hash.
// Implementations must be deterministic.
type Hasher interface {
	// Hash absorbs the ordered inputs and returns one field element.
	Hash(inputs ...field.Element) (field.Element, error)
}

// Poseidon implements Hasher with circomlib-compatible Poseidon.
type Poseidon struct{}

// Hash implements Hasher.Hash.
func (Poseidon) Hash(inputs ...field.Element) (field.Element, error) {
	if len(inputs) < MinArity || len(inputs) > MaxArity {
		return field.Element{}, fmt.Errorf("%w: got %d inputs, want %d..%d",
			ErrArity, len(inputs), MinArity, MaxArity)
	}
	in := make([]*big.Int, len(inputs))
	for i, e := range inputs {
		in[i] = e.BigInt()
	}
	out, err := poseidon.Hash(in)
	if err != nil {
		return field.Element{}, fmt.Errorf("poseidon: %w", err)
	}
	return field.New(out)
}

// TaggedHasher prepends a domain tag to every call of the wrapped Hasher.
type TaggedHasher struct {
	Hasher Hasher
	Tag    field.Element
}

// Tagged returns h with tag prepended as first input.
func Tagged(h Hasher, tag field.Element) *TaggedHasher {
	return &TaggedHasher{Hasher: h, Tag: tag}
}

// Hash implements Hasher.Hash.
func (t *TaggedHasher) Hash(inputs ...field.Element) (field.Element, error) {
	all := make([]field.Element, 0, len(inputs)+1)
	all = append(all, t.Tag)
	all = append(all, inputs...)
	return t.Hasher.Hash(all...)
}

// Keccak256 returns the legacy Keccak-256 digest of the concatenated data.
func Keccak256(data ...[]byte) []byte {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}

// Nibbles splits data into 4-bit values, high nibble first, in the order
// the bytes appear in its hex encoding.
func Nibbles(data []byte) []uint8 {
	out := make([]uint8, 0, 2*len(data))
	for _, b := range data {
		out = append(out, b>>4, b&0x0f)
	}
	return out
}
