package curve

import (
	"fmt"
	"math/big"
)

// Point is either the point at infinity (the group identity) or an affine
// point (x, y). The zero value is the identity.
type Point struct {
	x, y *big.Int
}

// Infinity returns the point at infinity.
func Infinity() Point {
	return Point{}
}

// NewPoint returns the affine point (x, y). Coordinates are copied.
func NewPoint(x, y *big.Int) Point {
	return Point{x: new(big.Int).Set(x), y: new(big.Int).Set(y)}
}

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool {
	return p.x == nil
}

// X returns the affine x coordinate. It must not be called on the identity.
func (p Point) X() *big.Int { return p.x }

// Y returns the affine y coordinate. It must not be called on the identity.
func (p Point) Y() *big.Int { return p.y }

// Equal reports whether both points are the same group element.
func (p Point) Equal(q Point) bool {
	if p.IsIdentity() || q.IsIdentity() {
		return p.IsIdentity() && q.IsIdentity()
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

func (p Point) String() string {
	if p.IsIdentity() {
		return "O"
	}
	return fmt.Sprintf("(%v, %v)", p.x, p.y)
}

// Neg returns -p on c, i.e. (x, -y mod P).
func (c Curve) Neg(p Point) Point {
	if p.IsIdentity() {
		return Infinity()
	}
	y := new(big.Int).Neg(p.y)
	return Point{x: new(big.Int).Set(p.x), y: y.Mod(y, c.P)}
}
