package arith

import (
	"errors"
	"math/big"
)

var (
	// ErrInvalidModulus is returned when a modular operation is requested
	// with a modulus that is not a positive integer.
	ErrInvalidModulus = errors.New("arith: modulus must be positive")

	// ErrNotCoprime is returned when a modular inverse is requested for
	// arguments whose gcd is not 1.
	ErrNotCoprime = errors.New("arith: arguments are not coprime")
)

// Exp returns baseᵉˣᵖ (mod modulus) by repeated squaring, using O(log exp)
// multiplications. The result is reduced to [0, modulus). A negative exponent
// is handled by inverting base first, so Exp can fail with ErrNotCoprime when
// base has no inverse.
func Exp(base, exp, modulus *big.Int) (*big.Int, error) {
	if modulus.Sign() <= 0 {
		return nil, ErrInvalidModulus
	}

	g := new(big.Int).Set(base)
	e := new(big.Int).Set(exp)
	if e.Sign() < 0 {
		inv, err := Inv(g, modulus)
		if err != nil {
			return nil, err
		}
		g = inv
		e.Neg(e)
	}

	a := g.Mod(g, modulus)
	b := big.NewInt(1)
	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			b.Mul(b, a)
			b.Mod(b, modulus)
		}
		a.Mul(a, a)
		a.Mod(a, modulus)
		e.Rsh(e, 1)
	}
	return b, nil
}

// ExtendedGCD returns (g, u, v) such that a·u + b·v = g = gcd(a, b).
// Arguments are expected to be non-negative.
func ExtendedGCD(a, b *big.Int) (g, u, v *big.Int) {
	if b.Sign() == 0 {
		return new(big.Int).Set(a), big.NewInt(1), big.NewInt(0)
	}

	u = big.NewInt(1)
	g = new(big.Int).Set(a)
	x := big.NewInt(0)
	y := new(big.Int).Set(b)

	q, t := new(big.Int), new(big.Int)
	for y.Sign() != 0 {
		q.QuoRem(g, y, t)
		s := new(big.Int).Mul(q, x)
		s.Sub(u, s)
		u, g = x, new(big.Int).Set(y)
		x, y = s, new(big.Int).Set(t)
	}

	// v = (g - a·u) / b
	v = new(big.Int).Mul(a, u)
	v.Sub(g, v)
	v.Quo(v, b)
	return g, u, v
}

// Inv returns x in [0, modulus) with a·x ≡ 1 (mod modulus), computed with the
// extended Euclidean algorithm. It fails with ErrNotCoprime when gcd(a,
// modulus) ≠ 1.
func Inv(a, modulus *big.Int) (*big.Int, error) {
	if modulus.Sign() <= 0 {
		return nil, ErrInvalidModulus
	}

	// Reducing first keeps the Euclidean loop on non-negative operands.
	red := new(big.Int).Mod(a, modulus)
	g, u, _ := ExtendedGCD(red, modulus)
	if g.Cmp(big.NewInt(1)) != 0 {
		return nil, ErrNotCoprime
	}
	return u.Mod(u, modulus), nil
}

// GCD returns gcd(a, b).
func GCD(a, b *big.Int) *big.Int {
	g, _, _ := ExtendedGCD(a, b)
	if g.Sign() < 0 {
		g.Neg(g)
	}
	return g
}

// LCM returns lcm(a, b).
func LCM(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return big.NewInt(0)
	}
	l := new(big.Int).Mul(a, b)
	l.Quo(l, GCD(a, b))
	if l.Sign() < 0 {
		l.Neg(l)
	}
	return l
}

// IsCoprime reports whether gcd(a, b) = 1.
func IsCoprime(a, b *big.Int) bool {
	return GCD(a, b).Cmp(big.NewInt(1)) == 0
}
