// Package mvelgamal implements the Menezes-Vanstone variant of ElGamal
// encryption over an elliptic curve modulo a prime. A shared point S = k·Q
// is agreed per message and its coordinates mask the two halves of the
// encoded plaintext multiplicatively.
package mvelgamal

import (
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/mr-shifu/pkc-lib/core/curve"
	"github.com/mr-shifu/pkc-lib/core/math/arith"
	"github.com/mr-shifu/pkc-lib/core/math/sample"
	"github.com/mr-shifu/pkc-lib/lib/params"
)

var (
	// ErrInvalidParameters is returned for a singular curve or a base point
	// that is not a usable group generator.
	ErrInvalidParameters = errors.New("mvelgamal: invalid public parameters")

	// ErrInvalidPublicKey is returned when a supplied public key does not
	// lie on the curve.
	ErrInvalidPublicKey = errors.New("mvelgamal: public key not on curve")

	// ErrDegenerateMask is returned when the ephemeral scalar produced a
	// shared point with a zero coordinate (or the identity), leaving one of
	// the multiplicative masks non-invertible. The caller decides whether
	// to resample; see EncryptRetry.
	ErrDegenerateMask = errors.New("mvelgamal: degenerate mask, resample the ephemeral scalar")

	// ErrSearchExhausted is returned when key generation cannot find a
	// usable scalar within its budget.
	ErrSearchExhausted = errors.New("mvelgamal: search budget exhausted")
)

// Parameters are the public group parameters: the curve E over the prime
// field and the base point P on it.
type Parameters struct {
	Curve curve.Curve
	Base  curve.Point
}

// PublicKey is Q = n·P for a private scalar n.
type PublicKey struct {
	Parameters
	Q curve.Point
}

// SecretKey is the private scalar together with the public material derived
// from it.
type SecretKey struct {
	PublicKey
	N *big.Int
}

// Prime returns the order of the underlying field.
func (p Parameters) Prime() *big.Int {
	return p.Curve.P
}

// GenerateParameters creates a fresh random curve of the requested bit
// length with a base point of order greater than two. bits ≤ 0 selects
// params.MVDefaultBits.
func GenerateParameters(rand io.Reader, bits int) (Parameters, error) {
	if bits <= 0 {
		bits = params.MVDefaultBits
	}
	c, base, err := curve.Generate(rand, bits)
	if err != nil {
		return Parameters{}, err
	}
	return Parameters{Curve: c, Base: base}, nil
}

// NewParameters validates caller-supplied group parameters: the curve must
// be non-singular and the base point an on-curve point of order > 2.
func NewParameters(c curve.Curve, base curve.Point) (Parameters, error) {
	if !c.IsElliptic() || base.IsIdentity() || !c.IsOnCurve(base) {
		return Parameters{}, ErrInvalidParameters
	}
	double, err := c.Double(base)
	if err != nil {
		return Parameters{}, err
	}
	if double.IsIdentity() {
		return Parameters{}, ErrInvalidParameters
	}
	return Parameters{Curve: c, Base: base}, nil
}

// GenerateKey samples a private scalar n in [1, p) and derives Q = n·P,
// resampling while Q is the identity or has a zero y coordinate. The group
// order is not computed exactly; the field size bounds the scalar instead.
func GenerateKey(rand io.Reader, p Parameters) (*SecretKey, error) {
	for i := 0; i < params.ScalarSearchBudget; i++ {
		n, err := sample.Scalar(rand, p.Prime())
		if err != nil {
			return nil, err
		}
		q, err := p.Curve.ScalarMult(n, p.Base)
		if err != nil {
			return nil, err
		}
		if q.IsIdentity() || q.Y().Sign() == 0 {
			continue
		}
		return &SecretKey{PublicKey: PublicKey{Parameters: p, Q: q}, N: n}, nil
	}
	return nil, ErrSearchExhausted
}

// NewSecretKey builds a key from a caller-supplied private scalar, deriving
// the matching public point.
func NewSecretKey(p Parameters, n *big.Int) (*SecretKey, error) {
	q, err := p.Curve.ScalarMult(n, p.Base)
	if err != nil {
		return nil, err
	}
	if q.IsIdentity() {
		return nil, ErrInvalidParameters
	}
	return &SecretKey{
		PublicKey: PublicKey{Parameters: p, Q: q},
		N:         new(big.Int).Set(n),
	}, nil
}

// NewPublicKey validates that a supplied public point lies on the curve.
func NewPublicKey(p Parameters, q curve.Point) (*PublicKey, error) {
	if q.IsIdentity() || !p.Curve.IsOnCurve(q) {
		return nil, ErrInvalidPublicKey
	}
	return &PublicKey{Parameters: p, Q: q}, nil
}

// Public returns the public half of the key.
func (sk *SecretKey) Public() *PublicKey {
	return &PublicKey{Parameters: sk.Parameters, Q: sk.Q}
}

// Encrypt encrypts message under the recipient's public key with a fresh
// ephemeral scalar k: R = k·P, S = k·Q = (sx, sy), c1 = sx·m1, c2 = sy·m2
// (mod p). It fails with ErrDegenerateMask when R or S degenerates, since
// resampling the ephemeral key is a caller-level policy decision.
func Encrypt(rand io.Reader, message string, peer *PublicKey) (*Ciphertext, error) {
	p := peer.Prime()
	m1, m2, err := Encode(message, p)
	if err != nil {
		return nil, err
	}

	k, err := sample.Scalar(rand, p)
	if err != nil {
		return nil, err
	}
	r, err := peer.Curve.ScalarMult(k, peer.Base)
	if err != nil {
		return nil, err
	}
	s, err := peer.Curve.ScalarMult(k, peer.Q)
	if err != nil {
		return nil, err
	}
	if r.IsIdentity() || s.IsIdentity() || s.X().Sign() == 0 || s.Y().Sign() == 0 {
		return nil, ErrDegenerateMask
	}

	c1 := new(big.Int).Mul(s.X(), m1)
	c1.Mod(c1, p)
	c2 := new(big.Int).Mul(s.Y(), m2)
	c2.Mod(c2, p)

	return &Ciphertext{R: r, C1: c1, C2: c2}, nil
}

// EncryptRetry calls Encrypt, resampling the ephemeral scalar up to
// `attempts` times when the mask degenerates. attempts ≤ 0 selects
// params.ScalarSearchBudget.
func EncryptRetry(rand io.Reader, message string, peer *PublicKey, attempts int) (*Ciphertext, error) {
	if attempts <= 0 {
		attempts = params.ScalarSearchBudget
	}
	var err error
	for i := 0; i < attempts; i++ {
		var ct *Ciphertext
		if ct, err = Encrypt(rand, message, peer); !errors.Is(err, ErrDegenerateMask) {
			return ct, err
		}
	}
	return nil, err
}

// Decrypt recomputes the shared point T = n·R and inverts the coordinate
// masks: m1 = c1·tx⁻¹, m2 = c2·ty⁻¹ (mod p).
func (sk *SecretKey) Decrypt(ct *Ciphertext) (string, error) {
	if !ct.Valid() {
		return "", ErrInvalidCiphertext
	}
	p := sk.Prime()

	t, err := sk.Curve.ScalarMult(sk.N, ct.R)
	if err != nil {
		return "", err
	}
	if t.IsIdentity() {
		return "", ErrInvalidCiphertext
	}

	txInv, err := arith.Inv(t.X(), p)
	if err != nil {
		return "", err
	}
	tyInv, err := arith.Inv(t.Y(), p)
	if err != nil {
		return "", err
	}

	m1 := new(big.Int).Mul(ct.C1, txInv)
	m1.Mod(m1, p)
	m2 := new(big.Int).Mul(ct.C2, tyInv)
	m2.Mod(m2, p)

	return Decode(m1, m2)
}
