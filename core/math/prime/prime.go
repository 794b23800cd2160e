// Package prime implements a probabilistic primality test and random prime
// generation on top of it.
package prime

import (
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/mr-shifu/pkc-lib/core/math/arith"
	"github.com/mr-shifu/pkc-lib/core/math/sample"
	"github.com/mr-shifu/pkc-lib/lib/params"
)

// ErrSearchExhausted is returned when no prime is found within the configured
// candidate budget.
var ErrSearchExhausted = errors.New("prime: search budget exhausted")

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// MillerRabinWitness reports whether a witnesses the compositeness of n.
// A false result means n remains possibly prime with respect to base a.
func MillerRabinWitness(a, n *big.Int) bool {
	// Write n-1 = 2ᵏ·q with q odd.
	k := 0
	q := new(big.Int).Sub(n, one)
	for q.Bit(0) == 0 {
		k++
		q.Rsh(q, 1)
	}

	x, err := arith.Exp(a, q, n)
	if err != nil {
		// n ≤ 0 never reaches here through IsPrime.
		return true
	}
	if x.Cmp(one) == 0 {
		return false
	}

	nMinusOne := new(big.Int).Sub(n, one)
	for i := 0; i < k; i++ {
		if x.Cmp(nMinusOne) == 0 {
			return false
		}
		x.Mul(x, x)
		x.Mod(x, n)
	}
	return true
}

// IsPrime runs the Miller-Rabin test with `rounds` random bases. A composite
// passes each round with probability at most 1/4, so a true result is wrong
// with probability at most 4⁻ʳᵒᵘⁿᵈˢ. rounds ≤ 0 selects
// params.MillerRabinRounds.
func IsPrime(rand io.Reader, n *big.Int, rounds int) bool {
	// 2 and 3 are prime; below that nothing is, and the witness sampling
	// interval [2, n-1) would be empty anyway.
	if n.Cmp(big.NewInt(4)) < 0 {
		return n.Cmp(two) >= 0
	}
	if n.Bit(0) == 0 {
		return false
	}
	if rounds <= 0 {
		rounds = params.MillerRabinRounds
	}

	nMinusOne := new(big.Int).Sub(n, one)
	for i := 0; i < rounds; i++ {
		a, err := sample.Interval(rand, two, nMinusOne)
		if err != nil {
			return false
		}
		if MillerRabinWitness(a, n) {
			return false
		}
	}
	return true
}

// Sample returns a probable prime with bit length in [bits, bits+1), i.e. a
// uniform prime in [2ᵇⁱᵗˢ, 2ᵇⁱᵗˢ⁺¹). Even candidates are rejected before
// testing. The search is bounded by params.PrimeSearchBudget candidates and
// fails with ErrSearchExhausted afterwards.
func Sample(rand io.Reader, bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, errors.New("prime: bit length must be at least 2")
	}

	lo := new(big.Int).Lsh(one, uint(bits))
	hi := new(big.Int).Lsh(one, uint(bits)+1)

	for i := 0; i < params.PrimeSearchBudget; i++ {
		candidate, err := sample.Interval(rand, lo, hi)
		if err != nil {
			return nil, err
		}
		if candidate.Bit(0) == 0 {
			continue
		}
		if IsPrime(rand, candidate, 0) {
			return candidate, nil
		}
	}
	return nil, ErrSearchExhausted
}
