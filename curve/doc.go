// Package curve implements the Baby Jubjub twisted Edwards group in the
// form circomlib uses, on top of the [field] package.
//
// Baby Jubjub is defined over the BN254 scalar field by the equation:
//
//	a*x^2 + y^2 = 1 + d*x^2*y^2
//
// where a = 168700 and d = 168696. The identity element is (0, 1) and the
// prime-order subgroup has size:
//
//	2736030358979909402780800718157159386076813972158567259200215660948447373041
//
// # Arithmetic
//
// Points are immutable affine pairs. [Params.Add] applies the unified
// twisted Edwards addition law with one Fermat inversion per coordinate,
// exactly as the circuits do, and [Params.ScalarMul] walks the scalar from
// the least significant bit upwards with double-and-add:
//
//	c := curve.BabyJubJub()
//	s, err := c.ScalarMul(pk, r)
//	if err != nil {
//		return err
//	}
//
// A zero denominator in the addition law means the inputs were not valid
// curve points; it is reported as [ErrDegenerate] rather than coerced into
// some point.
//
// Note that gnark-crypto ships Baby Jubjub in the isomorphic a = -1 form,
// whose coordinates differ from circomlib's. Only the subgroup order is
// taken from it.
package curve
