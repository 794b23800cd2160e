package curve

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCurve is y² = x³ + 2x + 3 over F₉₇ with base point (3, 6).
func testCurve() (Curve, Point) {
	c := Curve{A: big.NewInt(2), B: big.NewInt(3), P: big.NewInt(97)}
	return c, NewPoint(big.NewInt(3), big.NewInt(6))
}

func TestIsElliptic(t *testing.T) {
	c, _ := testCurve()
	assert.True(t, c.IsElliptic())

	// y² = x³ has a cusp at the origin
	singular := Curve{A: new(big.Int), B: new(big.Int), P: big.NewInt(97)}
	assert.False(t, singular.IsElliptic())

	// y² = x³ - 3x + 2 has a node, the discriminant vanishes
	node := Curve{A: big.NewInt(-3), B: big.NewInt(2), P: big.NewInt(97)}
	assert.False(t, node.IsElliptic())
}

func TestIsOnCurve(t *testing.T) {
	c, base := testCurve()
	assert.True(t, c.IsOnCurve(base))
	assert.True(t, c.IsOnCurve(Infinity()))
	assert.False(t, c.IsOnCurve(NewPoint(big.NewInt(3), big.NewInt(7))))
}

func TestAdd_Fixed(t *testing.T) {
	c, base := testCurve()

	double, err := c.Double(base)
	require.NoError(t, err)
	assert.Equal(t, NewPoint(big.NewInt(80), big.NewInt(10)), double)
	assert.True(t, c.IsOnCurve(double))
}

func TestAdd_Identity(t *testing.T) {
	c, base := testCurve()

	got, err := c.Add(base, Infinity())
	require.NoError(t, err)
	assert.True(t, got.Equal(base))

	got, err = c.Add(Infinity(), base)
	require.NoError(t, err)
	assert.True(t, got.Equal(base))

	got, err = c.Add(Infinity(), Infinity())
	require.NoError(t, err)
	assert.True(t, got.IsIdentity())
}

func TestAdd_Inverse(t *testing.T) {
	c, base := testCurve()

	got, err := c.Add(base, c.Neg(base))
	require.NoError(t, err)
	assert.True(t, got.IsIdentity())
}

func TestAdd_Commutes(t *testing.T) {
	c, base := testCurve()
	double, err := c.Double(base)
	require.NoError(t, err)

	pq, err := c.Add(base, double)
	require.NoError(t, err)
	qp, err := c.Add(double, base)
	require.NoError(t, err)
	assert.True(t, pq.Equal(qp))
	assert.True(t, c.IsOnCurve(pq))
}

func TestScalarMult(t *testing.T) {
	c, base := testCurve()

	got, err := c.ScalarMult(new(big.Int), base)
	require.NoError(t, err)
	assert.True(t, got.IsIdentity())

	got, err = c.ScalarMult(big.NewInt(1), base)
	require.NoError(t, err)
	assert.True(t, got.Equal(base))

	// 3P by double-and-add matches 2P + P
	double, err := c.Double(base)
	require.NoError(t, err)
	triple, err := c.Add(double, base)
	require.NoError(t, err)
	got, err = c.ScalarMult(big.NewInt(3), base)
	require.NoError(t, err)
	assert.True(t, got.Equal(triple))

	// (-1)·P = -P
	got, err = c.ScalarMult(big.NewInt(-1), base)
	require.NoError(t, err)
	assert.True(t, got.Equal(c.Neg(base)))
}

func TestScalarMult_StaysOnCurve(t *testing.T) {
	c, base := testCurve()
	for k := int64(2); k < 40; k++ {
		got, err := c.ScalarMult(big.NewInt(k), base)
		require.NoError(t, err)
		assert.True(t, c.IsOnCurve(got), "k = %d", k)
	}
}

func TestPoint(t *testing.T) {
	var zero Point
	assert.True(t, zero.IsIdentity())
	assert.Equal(t, "O", zero.String())

	x, y := big.NewInt(3), big.NewInt(6)
	p := NewPoint(x, y)
	x.SetInt64(99)
	assert.Equal(t, big.NewInt(3), p.X(), "NewPoint should copy its arguments")

	assert.True(t, p.Equal(NewPoint(big.NewInt(3), big.NewInt(6))))
	assert.False(t, p.Equal(zero))
}

func TestGenerate(t *testing.T) {
	c, base, err := Generate(rand.Reader, 16)
	require.NoError(t, err)

	assert.True(t, c.IsElliptic())
	assert.True(t, c.IsOnCurve(base))
	assert.False(t, base.IsIdentity())

	double, err := c.Double(base)
	require.NoError(t, err)
	assert.False(t, double.IsIdentity(), "base point must have order > 2")
}

func TestFindBasePoint(t *testing.T) {
	// 97 ≡ 1 (mod 4) exercises Tonelli-Shanks, 103 ≡ 3 (mod 4) the direct root
	for _, p := range []int64{97, 103} {
		c := Curve{A: big.NewInt(2), B: big.NewInt(3), P: big.NewInt(p)}
		require.True(t, c.IsElliptic())

		base, err := FindBasePoint(rand.Reader, c)
		require.NoError(t, err)
		assert.True(t, c.IsOnCurve(base))
		assert.True(t, base.Y().Sign() != 0)
	}
}

func TestSecp256k1(t *testing.T) {
	c, g := Secp256k1()
	assert.True(t, c.IsElliptic())
	assert.True(t, c.IsOnCurve(g))

	double, err := c.Double(g)
	require.NoError(t, err)
	assert.True(t, c.IsOnCurve(double))
	assert.False(t, double.IsIdentity())
}
