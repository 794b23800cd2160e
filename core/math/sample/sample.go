package sample

import (
	cryptorand "crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/mr-shifu/pkc-lib/core/math/arith"
	"github.com/mr-shifu/pkc-lib/lib/params"
)

// ErrExhausted is returned when a bounded rejection-sampling loop runs out of
// attempts without finding an acceptable value.
var ErrExhausted = errors.New("sample: search budget exhausted")

// Interval returns a uniform integer in [lo, hi).
func Interval(rand io.Reader, lo, hi *big.Int) (*big.Int, error) {
	if rand == nil {
		rand = cryptorand.Reader
	}
	if lo.Cmp(hi) >= 0 {
		return nil, errors.New("sample: empty interval")
	}

	width := new(big.Int).Sub(hi, lo)
	n, err := cryptorand.Int(rand, width)
	if err != nil {
		return nil, errors.WithMessage(err, "sample: failed to read randomness")
	}
	return n.Add(n, lo), nil
}

// Scalar returns a uniform integer in [1, p), suitable as a private or
// ephemeral scalar when the group order is approximated by the field size.
func Scalar(rand io.Reader, p *big.Int) (*big.Int, error) {
	return Interval(rand, big.NewInt(1), p)
}

// UnitModN returns a uniform integer in [2, n) that is coprime to n.
func UnitModN(rand io.Reader, n *big.Int) (*big.Int, error) {
	lo := big.NewInt(2)
	for i := 0; i < params.ScalarSearchBudget; i++ {
		u, err := Interval(rand, lo, n)
		if err != nil {
			return nil, err
		}
		if arith.IsCoprime(u, n) {
			return u, nil
		}
	}
	return nil, ErrExhausted
}
