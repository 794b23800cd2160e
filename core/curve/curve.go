// Package curve implements affine short-Weierstrass elliptic curves
// y² = x³ + Ax + B over a prime field, with the chord-tangent group law and
// random curve/point generation.
package curve

import (
	"math/big"
)

var (
	three     = big.NewInt(3)
	four      = big.NewInt(4)
	twentySev = big.NewInt(27)
)

// Curve is the curve y² = x³ + Ax + B over the field of P elements.
// P must be an odd prime; generation enforces this, caller-supplied
// parameters are trusted the same way caller-supplied keys are.
type Curve struct {
	A, B, P *big.Int
}

// Discriminant returns -16(4A³ + 27B²) mod P.
func (c Curve) Discriminant() *big.Int {
	a3 := new(big.Int).Exp(c.A, three, c.P)
	a3.Mul(a3, four)

	b2 := new(big.Int).Mul(c.B, c.B)
	b2.Mul(b2, twentySev)

	d := new(big.Int).Add(a3, b2)
	d.Mul(d, big.NewInt(-16))
	return d.Mod(d, c.P)
}

// IsElliptic reports whether the curve is non-singular, i.e. whether its
// discriminant is nonzero mod P. Only non-singular curves carry a
// well-defined group law.
func (c Curve) IsElliptic() bool {
	return c.Discriminant().Sign() != 0
}

// Polynomial returns x³ + Ax + B mod P.
func (c Curve) Polynomial(x *big.Int) *big.Int {
	x3 := new(big.Int).Mul(x, x)
	x3.Add(x3, c.A) // x² + A
	x3.Mul(x3, x)   // x³ + Ax
	x3.Add(x3, c.B) // x³ + Ax + B
	return x3.Mod(x3, c.P)
}

// IsOnCurve reports whether p satisfies the curve equation. The identity is
// on every non-singular curve.
func (c Curve) IsOnCurve(p Point) bool {
	if p.IsIdentity() {
		return c.IsElliptic()
	}

	y2 := new(big.Int).Mul(p.y, p.y)
	y2.Mod(y2, c.P)
	return c.Polynomial(p.x).Cmp(y2) == 0
}

// Equal reports whether both curves have identical parameters.
func (c Curve) Equal(o Curve) bool {
	return c.A.Cmp(o.A) == 0 && c.B.Cmp(o.B) == 0 && c.P.Cmp(o.P) == 0
}
