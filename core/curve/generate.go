package curve

import (
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/mr-shifu/pkc-lib/core/math/arith"
	"github.com/mr-shifu/pkc-lib/core/math/prime"
	"github.com/mr-shifu/pkc-lib/core/math/sample"
	"github.com/mr-shifu/pkc-lib/lib/params"
)

var (
	// ErrSearchExhausted is returned when random curve generation runs out
	// of candidate parameter triples.
	ErrSearchExhausted = errors.New("curve: search budget exhausted")

	// ErrNoPointFound is returned when the base-point search exhausts its
	// candidate budget without hitting a quadratic residue.
	ErrNoPointFound = errors.New("curve: no base point found")
)

// Generate returns a random non-singular curve over a fresh prime of the
// requested bit length, together with a base point of order greater than two.
// A random affine point (x0, y0) and coefficient A are drawn first and
// B = y0² - x0³ - A·x0 derived from them, so the point is on the curve by
// construction.
func Generate(rand io.Reader, bits int) (Curve, Point, error) {
	p, err := prime.Sample(rand, bits)
	if err != nil {
		return Curve{}, Point{}, errors.WithMessage(err, "curve: generating field prime")
	}

	one := big.NewInt(1)
	for i := 0; i < params.CurveSearchBudget; i++ {
		x0, err := sample.Interval(rand, new(big.Int), p)
		if err != nil {
			return Curve{}, Point{}, err
		}
		y0, err := sample.Interval(rand, one, p)
		if err != nil {
			return Curve{}, Point{}, err
		}
		a, err := sample.Interval(rand, one, p)
		if err != nil {
			return Curve{}, Point{}, err
		}

		// B = y0² - x0³ - A·x0 (mod p)
		b := new(big.Int).Mul(y0, y0)
		x3 := new(big.Int).Exp(x0, three, p)
		ax := new(big.Int).Mul(a, x0)
		b.Sub(b, x3)
		b.Sub(b, ax)
		b.Mod(b, p)

		c := Curve{A: a, B: b, P: p}
		if !c.IsElliptic() {
			continue
		}

		base := NewPoint(x0, y0)
		double, err := c.Double(base)
		if err != nil {
			return Curve{}, Point{}, err
		}
		if double.IsIdentity() {
			// Order-two base points cannot carry a key exchange.
			continue
		}
		return c, base, nil
	}
	return Curve{}, Point{}, ErrSearchExhausted
}

// FindBasePoint searches for an affine point on c by drawing candidate x
// coordinates and testing x³ + Ax + B for being a quadratic residue with
// Euler's criterion. The square root is extracted directly as
// rhs^((p+1)/4) when p ≡ 3 (mod 4) and with Tonelli-Shanks otherwise.
// Points with y = 0 are skipped, they generate a subgroup of order two.
func FindBasePoint(rand io.Reader, c Curve) (Point, error) {
	one := big.NewInt(1)
	pMinusOne := new(big.Int).Sub(c.P, one)
	eulerExp := new(big.Int).Rsh(pMinusOne, 1)

	for i := 0; i < params.PointSearchBudget; i++ {
		x, err := sample.Interval(rand, new(big.Int), c.P)
		if err != nil {
			return Point{}, err
		}
		rhs := c.Polynomial(x)
		if rhs.Sign() == 0 {
			continue
		}

		// Euler's criterion: rhs is a residue iff rhs^((p-1)/2) ≡ 1.
		legendre, err := arith.Exp(rhs, eulerExp, c.P)
		if err != nil {
			return Point{}, err
		}
		if legendre.Cmp(one) != 0 {
			continue
		}

		y, err := sqrtMod(rhs, c.P)
		if err != nil {
			return Point{}, err
		}
		return NewPoint(x, y), nil
	}
	return Point{}, ErrNoPointFound
}

// sqrtMod returns a square root of a known quadratic residue a mod the odd
// prime p.
func sqrtMod(a, p *big.Int) (*big.Int, error) {
	if p.Bit(0) == 1 && p.Bit(1) == 1 {
		// p ≡ 3 (mod 4): the root is a^((p+1)/4).
		e := new(big.Int).Add(p, big.NewInt(1))
		e.Rsh(e, 2)
		return arith.Exp(a, e, p)
	}
	y := new(big.Int).ModSqrt(a, p)
	if y == nil {
		return nil, errors.New("curve: expected quadratic residue")
	}
	return y, nil
}
