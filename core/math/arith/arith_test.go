package arith

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExp(t *testing.T) {
	got, err := Exp(big.NewInt(3), big.NewInt(218), big.NewInt(1000))
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(489), got)

	got, err = Exp(big.NewInt(2), big.NewInt(10), big.NewInt(2048))
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1024), got)

	// 0^0 = 1 by convention
	got, err = Exp(big.NewInt(0), big.NewInt(0), big.NewInt(7))
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1), got)
}

func TestExp_NegativeExponent(t *testing.T) {
	// 3^-1 mod 7 = 5, so 3^-2 mod 7 = 25 mod 7 = 4
	got, err := Exp(big.NewInt(3), big.NewInt(-2), big.NewInt(7))
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(4), got)

	_, err = Exp(big.NewInt(2), big.NewInt(-1), big.NewInt(8))
	assert.ErrorIs(t, err, ErrNotCoprime)
}

func TestExp_InvalidModulus(t *testing.T) {
	_, err := Exp(big.NewInt(2), big.NewInt(3), big.NewInt(0))
	assert.ErrorIs(t, err, ErrInvalidModulus)

	_, err = Exp(big.NewInt(2), big.NewInt(3), big.NewInt(-5))
	assert.ErrorIs(t, err, ErrInvalidModulus)
}

func TestExtendedGCD(t *testing.T) {
	g, u, v := ExtendedGCD(big.NewInt(240), big.NewInt(46))
	assert.Equal(t, big.NewInt(2), g)

	// Bezout identity holds
	lhs := new(big.Int).Mul(big.NewInt(240), u)
	lhs.Add(lhs, new(big.Int).Mul(big.NewInt(46), v))
	assert.Equal(t, g, lhs)

	g, u, v = ExtendedGCD(big.NewInt(17), big.NewInt(0))
	assert.Equal(t, big.NewInt(17), g)
	assert.Equal(t, big.NewInt(1), u)
	assert.Equal(t, big.NewInt(0), v)
}

func TestExtendedGCD_Random(t *testing.T) {
	bound := new(big.Int).Lsh(big.NewInt(1), 128)
	for i := 0; i < 32; i++ {
		a, err := rand.Int(rand.Reader, bound)
		require.NoError(t, err)
		b, err := rand.Int(rand.Reader, bound)
		require.NoError(t, err)

		g, u, v := ExtendedGCD(a, b)
		assert.Equal(t, new(big.Int).GCD(nil, nil, a, b), g)

		lhs := new(big.Int).Mul(a, u)
		lhs.Add(lhs, new(big.Int).Mul(b, v))
		assert.Equal(t, g, lhs)
	}
}

func TestInv(t *testing.T) {
	inv, err := Inv(big.NewInt(3), big.NewInt(7))
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(5), inv)

	// a negative representative of the same residue class inverts the same
	inv, err = Inv(big.NewInt(-4), big.NewInt(7))
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(5), inv)

	_, err = Inv(big.NewInt(4), big.NewInt(8))
	assert.ErrorIs(t, err, ErrNotCoprime)

	_, err = Inv(big.NewInt(0), big.NewInt(7))
	assert.ErrorIs(t, err, ErrNotCoprime)
}

func TestInv_Random(t *testing.T) {
	p, err := rand.Prime(rand.Reader, 128)
	require.NoError(t, err)

	for i := 0; i < 32; i++ {
		a, err := rand.Int(rand.Reader, p)
		require.NoError(t, err)
		if a.Sign() == 0 {
			continue
		}

		inv, err := Inv(a, p)
		require.NoError(t, err)
		assert.True(t, inv.Sign() >= 0 && inv.Cmp(p) < 0)

		prod := new(big.Int).Mul(a, inv)
		prod.Mod(prod, p)
		assert.Equal(t, big.NewInt(1), prod)
	}
}

func TestGCDAndLCM(t *testing.T) {
	assert.Equal(t, big.NewInt(6), GCD(big.NewInt(12), big.NewInt(18)))
	assert.Equal(t, big.NewInt(36), LCM(big.NewInt(12), big.NewInt(18)))
	assert.Equal(t, big.NewInt(0), LCM(big.NewInt(0), big.NewInt(18)))

	assert.True(t, IsCoprime(big.NewInt(35), big.NewInt(18)))
	assert.False(t, IsCoprime(big.NewInt(35), big.NewInt(15)))
}
