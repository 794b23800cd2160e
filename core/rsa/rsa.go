// Package rsa implements textbook RSA: key generation from two random
// primes, a base-256 text codec, and padding-free modular-exponentiation
// encryption. It is demonstration code, not a hardened implementation.
package rsa

import (
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/mr-shifu/pkc-lib/core/math/arith"
	"github.com/mr-shifu/pkc-lib/core/math/prime"
	"github.com/mr-shifu/pkc-lib/core/math/sample"
	"github.com/mr-shifu/pkc-lib/lib/params"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidKey is returned when caller-supplied key tuples do not have the
// [[N,e],[N,d]] shape.
var ErrInvalidKey = errors.New("rsa: invalid key tuples")

var one = big.NewInt(1)

// PublicKey is the encryption half of an RSA key pair: the modulus N = p·q
// and the encryption exponent e.
type PublicKey struct {
	N, E *big.Int
}

// SecretKey holds the full key pair. The prime factors are not stored
// directly; they survive only inside the CRT cache that accelerates
// decryption, and Discard drops even that.
//
// The decryption exponent satisfies e·d ≡ 1 (mod φ(N)) with Euler's totient
// φ(N) = (p-1)(q-1). The congruence then also holds modulo the Carmichael
// function λ(N), which divides φ(N).
type SecretKey struct {
	PublicKey
	D *big.Int

	crt *arith.Modulus
}

// GenerateKey creates a fresh key pair from two distinct random primes of
// the given bit length. bits ≤ 0 selects params.RSADefaultBits. The two
// prime searches run concurrently.
func GenerateKey(rand io.Reader, bits int) (*SecretKey, error) {
	if bits <= 0 {
		bits = params.RSADefaultBits
	}

	var p, q *big.Int
	var g errgroup.Group
	g.Go(func() error {
		var err error
		p, err = prime.Sample(rand, bits)
		return err
	})
	g.Go(func() error {
		var err error
		q, err = prime.Sample(rand, bits)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errors.WithMessage(err, "rsa: generating primes")
	}

	// A collision is astronomically unlikely for real bit sizes but cheap
	// to rule out, and tiny test keys do hit it.
	for q.Cmp(p) == 0 {
		var err error
		if q, err = prime.Sample(rand, bits); err != nil {
			return nil, errors.WithMessage(err, "rsa: generating primes")
		}
	}

	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Sub(p, one)
	phi.Mul(phi, new(big.Int).Sub(q, one))

	e := big.NewInt(params.RSAEncryptionExp)
	if !arith.IsCoprime(e, phi) {
		var err error
		if e, err = sample.UnitModN(rand, phi); err != nil {
			return nil, errors.WithMessage(err, "rsa: choosing encryption exponent")
		}
	}
	d, err := arith.Inv(e, phi)
	if err != nil {
		return nil, errors.WithMessage(err, "rsa: deriving decryption exponent")
	}

	return &SecretKey{
		PublicKey: PublicKey{N: n, E: e},
		D:         d,
		crt:       arith.ModulusFromBigFactors(p, q),
	}, nil
}

// NewKeyFromTuples builds a key from caller-supplied numeric tuples
// pub = [N, e] and priv = [N, d]. Only the shape is validated: the moduli
// must match and all components be positive. Primality of the factors behind
// N is the caller's responsibility, exactly as with any externally sourced
// key material. Decryption falls back to plain exponentiation since the
// factorization is unknown.
func NewKeyFromTuples(pub, priv [2]*big.Int) (*SecretKey, error) {
	n, e := pub[0], pub[1]
	n2, d := priv[0], priv[1]
	if n == nil || e == nil || n2 == nil || d == nil {
		return nil, ErrInvalidKey
	}
	if n.Sign() <= 0 || e.Sign() <= 0 || d.Sign() <= 0 || n.Cmp(n2) != 0 {
		return nil, ErrInvalidKey
	}

	return &SecretKey{
		PublicKey: PublicKey{N: new(big.Int).Set(n), E: new(big.Int).Set(e)},
		D:         new(big.Int).Set(d),
	}, nil
}

// Discard drops the cached prime factorization. Decryption keeps working,
// only slower.
func (sk *SecretKey) Discard() {
	sk.crt = nil
}

// Public returns the encryption half of the key.
func (sk *SecretKey) Public() *PublicKey {
	return &PublicKey{N: sk.N, E: sk.E}
}

// Encrypt encodes message and raises it to the recipient's encryption
// exponent: c = m^e (mod N). The recipient's public key is all it needs.
func Encrypt(message string, peer *PublicKey) (*big.Int, error) {
	m, err := Encode(message, peer.N)
	if err != nil {
		return nil, err
	}
	return arith.Exp(m, peer.E, peer.N)
}

// Decrypt recovers the message from c = m^e (mod N) as c^d (mod N), using
// the CRT fast path when the factorization is still cached.
func (sk *SecretKey) Decrypt(cipher *big.Int) (string, error) {
	if cipher.Sign() < 0 || cipher.Cmp(sk.N) >= 0 {
		return "", ErrInvalidEncoding
	}

	var m *big.Int
	if sk.crt != nil {
		m = sk.crt.ExpBig(cipher, sk.D)
	} else {
		var err error
		if m, err = arith.Exp(cipher, sk.D, sk.N); err != nil {
			return "", err
		}
	}
	return Decode(m)
}
