package curve

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"
	"github.com/f3rmion/burnoracle/field"
	"github.com/iden3/go-iden3-crypto/babyjub"
)

var (
	// ErrDegenerate is returned when the addition law hits a zero denominator.
	ErrDegenerate = errors.New("curve: degenerate addition")
	// ErrNotOnCurve is returned for coordinates that do not satisfy the curve equation.
	ErrNotOnCurve = errors.New("curve: point not on curve")
	// ErrNegativeScalar is returned for negative or nil scalars.
	ErrNegativeScalar = errors.New("curve: negative scalar")
)

// subgroupOrder is the Baby Jubjub prime subgroup order.
// It is the same for the a = -1 form gnark-crypto uses.
var subgroupOrder *big.Int

func init() {
	c := twistededwards.GetEdwardsCurve()
	subgroupOrder = new(big.Int).Set(&c.Order)
}

// Point is an affine point (X, Y).
type Point struct {
	X, Y field.Element
}

// Identity returns the neutral element (0, 1).
func Identity() Point {
	return Point{X: field.Zero(), Y: field.One()}
}

// Equal reports whether p and q have the same coordinates.
func (p Point) Equal(q Point) bool {
	return p.X.Equal(q.X) && p.Y.Equal(q.Y)
}

// IsIdentity reports whether p is (0, 1).
func (p Point) IsIdentity() bool {
	return p.X.IsZero() && p.Y.IsOne()
}

// String formats p as (x, y) in decimal.
func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

// Params holds the constants of a twisted Edwards curve.
// Params is read-only after construction and safe for concurrent use.
type Params struct {
	A, D  field.Element
	Base  Point
	Order *big.Int
}

// BabyJubJub returns the circomlib Baby Jubjub parameters with base point B8.
func BabyJubJub() *Params {
	return &Params{
		A: field.FromUint64(168700),
		D: field.FromUint64(168696),
		Base: Point{
			X: mustElement(babyjub.B8.X),
			Y: mustElement(babyjub.B8.Y),
		},
		Order: new(big.Int).Set(subgroupOrder),
	}
}

func mustElement(x *big.Int) field.Element {
	e, err := field.New(x)
	if err != nil {
		panic(err)
	}
	return e
}

// NewPoint returns (x, y) if it lies on the curve.
func (c *Params) NewPoint(x, y field.Element) (Point, error) {
	p := Point{X: x, Y: y}
	if !c.IsOnCurve(p) {
		return Point{}, fmt.Errorf("%w: %s", ErrNotOnCurve, p)
	}
	return p, nil
}

// IsOnCurve reports whether a*x^2 + y^2 == 1 + d*x^2*y^2.
func (c *Params) IsOnCurve(p Point) bool {
	x2 := p.X.Square()
	y2 := p.Y.Square()
	lhs := c.A.Mul(x2).Add(y2)
	rhs := field.One().Add(c.D.Mul(x2).Mul(y2))
	return lhs.Equal(rhs)
}

// Add returns p + q:
//
//	x3 = (x1*y2 + y1*x2) / (1 + d*x1*x2*y1*y2)
//	y3 = (y1*y2 - a*x1*x2) / (1 - d*x1*x2*y1*y2)
func (c *Params) Add(p, q Point) (Point, error) {
	x1x2 := p.X.Mul(q.X)
	y1y2 := p.Y.Mul(q.Y)
	dxy := c.D.Mul(x1x2).Mul(y1y2)

	xNum := p.X.Mul(q.Y).Add(p.Y.Mul(q.X))
	xDen := field.One().Add(dxy)
	yNum := y1y2.Sub(c.A.Mul(x1x2))
	yDen := field.One().Sub(dxy)

	xInv, err := xDen.Inverse()
	if err != nil {
		return Point{}, fmt.Errorf("%w: x denominator is zero for %s + %s", ErrDegenerate, p, q)
	}
	yInv, err := yDen.Inverse()
	if err != nil {
		return Point{}, fmt.Errorf("%w: y denominator is zero for %s + %s", ErrDegenerate, p, q)
	}
	return Point{X: xNum.Mul(xInv), Y: yNum.Mul(yInv)}, nil
}

// Double returns p + p.
func (c *Params) Double(p Point) (Point, error) {
	return c.Add(p, p)
}

// Neg returns -p = (-x, y).
func (c *Params) Neg(p Point) Point {
	return Point{X: p.X.Neg(), Y: p.Y}
}

// ScalarMul returns k*p by double-and-add from the least significant bit.
// The scalar is used as is, without reduction modulo the subgroup order.
func (c *Params) ScalarMul(p Point, k *big.Int) (Point, error) {
	if k == nil || k.Sign() < 0 {
		return Point{}, ErrNegativeScalar
	}
	res := Identity()
	addend := p
	n := k.BitLen()
	for i := 0; i < n; i++ {
		var err error
		if k.Bit(i) == 1 {
			if res, err = c.Add(res, addend); err != nil {
				return Point{}, err
			}
		}
		if addend, err = c.Add(addend, addend); err != nil {
			return Point{}, err
		}
	}
	return res, nil
}

// InSubgroup reports whether p lies in the prime-order subgroup.
func (c *Params) InSubgroup(p Point) bool {
	q, err := c.ScalarMul(p, c.Order)
	if err != nil {
		return false
	}
	return q.IsIdentity()
}
