package field

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

var (
	// ErrInvalidFieldValue is returned for negative or non-integer input.
	ErrInvalidFieldValue = errors.New("field: invalid field value")
	// ErrZeroInverse is returned when inverting the zero element.
	ErrZeroInverse = errors.New("field: inverse of zero")
)

// modulus is the BN254 scalar field prime.
var modulus = fr.Modulus()

// inverseExp is P-2, the Fermat inversion exponent.
var inverseExp = new(big.Int).Sub(fr.Modulus(), big.NewInt(2))

// Modulus returns a copy of the field prime P.
func Modulus() *big.Int {
	return new(big.Int).Set(modulus)
}

// Element is an element of the BN254 scalar field.
// The zero value is the field element 0.
type Element struct {
	inner fr.Element
}

// New reduces x into [0, P). It rejects nil and negative input.
func New(x *big.Int) (Element, error) {
	if x == nil {
		return Element{}, fmt.Errorf("%w: nil integer", ErrInvalidFieldValue)
	}
	if x.Sign() < 0 {
		return Element{}, fmt.Errorf("%w: negative value %s", ErrInvalidFieldValue, x)
	}
	var e Element
	e.inner.SetBigInt(x)
	return e, nil
}

// FromUint64 returns v as a field element.
func FromUint64(v uint64) Element {
	var e Element
	e.inner.SetUint64(v)
	return e
}

// FromString parses a base-10 integer literal.
func FromString(s string) (Element, error) {
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Element{}, fmt.Errorf("%w: %q is not a decimal integer", ErrInvalidFieldValue, s)
	}
	return New(x)
}

// MustFromString is like FromString but panics on error.
// It is meant for package-level scheme constants.
func MustFromString(s string) Element {
	e, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return e
}

// Zero returns the additive identity.
func Zero() Element {
	return Element{}
}

// One returns the multiplicative identity.
func One() Element {
	var e Element
	e.inner.SetOne()
	return e
}

// Add returns a + b.
func (a Element) Add(b Element) Element {
	var r Element
	r.inner.Add(&a.inner, &b.inner)
	return r
}

// Sub returns a - b. The result wraps modulo P and is never negative.
func (a Element) Sub(b Element) Element {
	var r Element
	r.inner.Sub(&a.inner, &b.inner)
	return r
}

// Mul returns a * b.
func (a Element) Mul(b Element) Element {
	var r Element
	r.inner.Mul(&a.inner, &b.inner)
	return r
}

// Neg returns -a.
func (a Element) Neg() Element {
	var r Element
	r.inner.Neg(&a.inner)
	return r
}

// Square returns a * a.
func (a Element) Square() Element {
	var r Element
	r.inner.Square(&a.inner)
	return r
}

// Exp returns a^k. It rejects negative exponents.
func (a Element) Exp(k *big.Int) (Element, error) {
	if k == nil || k.Sign() < 0 {
		return Element{}, fmt.Errorf("%w: exponent must be non-negative", ErrInvalidFieldValue)
	}
	var r Element
	r.inner.Exp(a.inner, k)
	return r, nil
}

// Inverse returns a^(P-2), the multiplicative inverse of a.
func (a Element) Inverse() (Element, error) {
	if a.IsZero() {
		return Element{}, ErrZeroInverse
	}
	var r Element
	r.inner.Exp(a.inner, inverseExp)
	return r, nil
}

// IsZero reports whether a is 0.
func (a Element) IsZero() bool {
	return a.inner.IsZero()
}

// IsOne reports whether a is 1.
func (a Element) IsOne() bool {
	return a.inner.IsOne()
}

// Equal reports whether a and b are the same element.
func (a Element) Equal(b Element) bool {
	return a.inner.Equal(&b.inner)
}

// BigInt returns the canonical integer value of a in [0, P).
func (a Element) BigInt() *big.Int {
	return a.inner.BigInt(new(big.Int))
}

// Bytes returns the 32-byte big-endian encoding of a, zero-padded on the left.
func (a Element) Bytes() [32]byte {
	return a.inner.Bytes()
}

// String returns the decimal value of a.
func (a Element) String() string {
	return a.BigInt().String()
}
