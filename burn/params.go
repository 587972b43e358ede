package burn

import (
	"errors"
	"fmt"

	"github.com/f3rmion/burnoracle/curve"
	"github.com/f3rmion/burnoracle/field"
	"github.com/f3rmion/burnoracle/hasher"
)

// Scheme constants of the EIP-7503 circuits.
var (
	// DefaultAddressPrefix is the Poseidon domain prefix of burn address commitments.
	DefaultAddressPrefix = field.MustFromString(
		"5265656504298861414514317065875120428884240036965045859626930651245126909")

	// DefaultKeyDomain separates the keystream scalar derivation.
	DefaultKeyDomain = field.FromUint64(7503)

	// DefaultPublicKey is the receiver key hard-coded in the extension circuit,
	// 123456789*B8.
	DefaultPublicKey = curve.Point{
		X: field.MustFromString("15919299401931535325513703139194931338293993994510664661086800834970360591752"),
		Y: field.MustFromString("1645780246786685895560641778865228215443840970280597910012614014295481144366"),
	}
)

const (
	// DefaultScalarBits is the width of the keystream scalar mask.
	DefaultScalarBits = 253
	// AddressLength is the byte length of a burn address.
	AddressLength = 20
)

// Params bundles the constants and primitives of the burn scheme.
// Params must not be modified once in use; it is then safe for
// concurrent use.
type Params struct {
	AddressPrefix   field.Element
	KeyDomain       field.Element
	ScalarBits      uint
	KeystreamLength int
	PublicKey       curve.Point
	Curve           *curve.Params
	Hasher          hasher.Hasher
}

// DefaultParams returns the parameters the circuits are compiled with.
func DefaultParams() *Params {
	return &Params{
		AddressPrefix:   DefaultAddressPrefix,
		KeyDomain:       DefaultKeyDomain,
		ScalarBits:      DefaultScalarBits,
		KeystreamLength: AddressLength,
		PublicKey:       DefaultPublicKey,
		Curve:           curve.BabyJubJub(),
		Hasher:          hasher.Poseidon{},
	}
}

// Validate checks that p is usable.
func (p *Params) Validate() error {
	if p.Curve == nil {
		return errors.New("burn: curve parameters are required")
	}
	if p.Hasher == nil {
		return errors.New("burn: hasher is required")
	}
	if p.ScalarBits == 0 || p.ScalarBits > 256 {
		return fmt.Errorf("burn: scalar mask of %d bits out of range 1..256", p.ScalarBits)
	}
	if p.KeystreamLength <= 0 {
		return fmt.Errorf("burn: keystream length must be positive, got %d", p.KeystreamLength)
	}
	return nil
}
