package burn

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/f3rmion/burnoracle/curve"
	"github.com/f3rmion/burnoracle/field"
)

// ErrKeystreamUsed is returned when a Keystream is applied a second time.
var ErrKeystreamUsed = errors.New("burn: keystream already used")

// Keystream is a one-time pad. It is not safe for concurrent use.
type Keystream struct {
	stream []byte
	used   bool
}

// NewKeystream wraps a copy of b.
func NewKeystream(b []byte) *Keystream {
	return &Keystream{stream: append([]byte(nil), b...)}
}

// Len returns the keystream length in bytes.
func (k *Keystream) Len() int {
	return len(k.stream)
}

// Bytes returns a copy of the keystream.
func (k *Keystream) Bytes() []byte {
	return append([]byte(nil), k.stream...)
}

// XOR consumes the keystream and returns data XOR keystream, truncated to
// the shorter of the two.
func (k *Keystream) XOR(data []byte) ([]byte, error) {
	if k.used {
		return nil, ErrKeystreamUsed
	}
	k.used = true
	return XOR(data, k.stream), nil
}

// XOR returns a[i] ^ b[i] for i below min(len(a), len(b)).
func XOR(a, b []byte) []byte {
	n := min(len(a), len(b))
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// KeystreamSource hands out a fresh keystream for a burn key.
type KeystreamSource interface {
	Keystream(burnKey field.Element) (*Keystream, error)
}

// ElementBytes fills n bytes from the end: the last byte is v mod 256, the
// one before it (v >> 8) mod 256, and so on. For n <= 32 this equals the
// last n bytes of the big-endian encoding of v.
func ElementBytes(v field.Element, n int) []byte {
	out := make([]byte, n)
	tmp := v.BigInt()
	b := new(big.Int)
	mask := big.NewInt(0xff)
	for i := n - 1; i >= 0; i-- {
		out[i] = byte(b.And(tmp, mask).Uint64())
		tmp.Rsh(tmp, 8)
	}
	return out
}

// DeriveScalar returns H(KeyDomain, burnKey) masked to ScalarBits bits.
func (p *Params) DeriveScalar(burnKey field.Element) (*big.Int, error) {
	h, err := p.Hasher.Hash(p.KeyDomain, burnKey)
	if err != nil {
		return nil, fmt.Errorf("keystream scalar: %w", err)
	}
	mask := new(big.Int).Lsh(big.NewInt(1), p.ScalarBits)
	mask.Sub(mask, big.NewInt(1))
	r := h.BigInt()
	return r.And(r, mask), nil
}

// PointKeystream derives KeystreamLength bytes from H(Sx, Sy).
func (p *Params) PointKeystream(s curve.Point) ([]byte, error) {
	h, err := p.Hasher.Hash(s.X, s.Y)
	if err != nil {
		return nil, fmt.Errorf("keystream from shared point: %w", err)
	}
	return ElementBytes(h, p.KeystreamLength), nil
}

// SharedPoint returns r*PublicKey for the scalar derived from burnKey.
func (p *Params) SharedPoint(burnKey field.Element) (curve.Point, error) {
	r, err := p.DeriveScalar(burnKey)
	if err != nil {
		return curve.Point{}, err
	}
	s, err := p.Curve.ScalarMul(p.PublicKey, r)
	if err != nil {
		return curve.Point{}, fmt.Errorf("shared point: %w", err)
	}
	return s, nil
}

// KeyAgreement derives the keystream per burn key against Params.PublicKey.
type KeyAgreement struct {
	Params *Params
}

// Keystream implements KeystreamSource.
func (a KeyAgreement) Keystream(burnKey field.Element) (*Keystream, error) {
	s, err := a.Params.SharedPoint(burnKey)
	if err != nil {
		return nil, err
	}
	b, err := a.Params.PointKeystream(s)
	if err != nil {
		return nil, err
	}
	return &Keystream{stream: b}, nil
}

// DefaultFixedScalar is the scalar the frozen test keystream is derived from.
const DefaultFixedScalar = 123456711

// Fixed replays a precomputed keystream for every burn key.
type Fixed struct {
	stream []byte
}

// NewFixed returns a source replaying a copy of b.
func NewFixed(b []byte) *Fixed {
	return &Fixed{stream: append([]byte(nil), b...)}
}

// DeriveFixed computes the frozen keystream for a fixed scalar r, that is
// the keystream of the shared point r*PublicKey.
func DeriveFixed(p *Params, r *big.Int) (*Fixed, error) {
	s, err := p.Curve.ScalarMul(p.PublicKey, r)
	if err != nil {
		return nil, fmt.Errorf("fixed keystream: %w", err)
	}
	b, err := p.PointKeystream(s)
	if err != nil {
		return nil, err
	}
	return &Fixed{stream: b}, nil
}

// Bytes returns a copy of the frozen keystream.
func (f *Fixed) Bytes() []byte {
	return append([]byte(nil), f.stream...)
}

// Keystream implements KeystreamSource. The burn key is ignored.
func (f *Fixed) Keystream(field.Element) (*Keystream, error) {
	return NewKeystream(f.stream), nil
}

// Ciphertext encrypts the burn address of the inputs with a keystream from src.
func (p *Params) Ciphertext(src KeystreamSource, burnKey, revealAmount, burnExtraCommitment field.Element) ([]byte, error) {
	addr, err := p.DeriveAddress(burnKey, revealAmount, burnExtraCommitment)
	if err != nil {
		return nil, err
	}
	ks, err := src.Keystream(burnKey)
	if err != nil {
		return nil, err
	}
	return ks.XOR(addr.Bytes())
}

// EphemeralKey returns R = r*Base, the point a sender publishes next to the
// ciphertext so the receiver can rebuild the shared point.
func (p *Params) EphemeralKey(r *big.Int) (curve.Point, error) {
	return p.Curve.ScalarMul(p.Curve.Base, r)
}

// Decrypt recovers the plaintext from the receiver side: S = sk*R.
func (p *Params) Decrypt(ciphertext []byte, sk *big.Int, ephemeral curve.Point) ([]byte, error) {
	s, err := p.Curve.ScalarMul(ephemeral, sk)
	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}
	b, err := p.PointKeystream(s)
	if err != nil {
		return nil, err
	}
	return NewKeystream(b).XOR(ciphertext)
}
