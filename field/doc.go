// Package field implements arithmetic over the BN254 scalar field, the
// prime field every circom circuit in the burn scheme computes in.
//
// The modulus is
//
//	P = 21888242871839275222246405745257275088548364400416034343698204186575808495617
//
// [Element] is an immutable value type. Every operation returns a fresh
// element reduced into [0, P), so elements can be copied and shared freely
// between goroutines.
//
// # Construction
//
// Inputs arrive as arbitrary-precision integers (JSON numbers, decimal
// strings, hash outputs). [New] and [FromString] reduce values at or above P
// but reject negative or non-integer input with [ErrInvalidFieldValue]
// instead of wrapping them silently:
//
//	x, err := field.FromString("98765")
//	if err != nil {
//		return err
//	}
//	y := x.Mul(x).Add(field.One())
//
// # Inversion
//
// [Element.Inverse] computes x^(P-2) (Fermat's little theorem). Inverting
// zero has no meaning and returns [ErrZeroInverse].
//
// The underlying arithmetic is gnark-crypto's Montgomery-form fr.Element.
package field
