package mvelgamal

import (
	"errors"
	"math/big"

	"github.com/fxamacker/cbor/v2"

	"github.com/mr-shifu/pkc-lib/core/curve"
	core_mv "github.com/mr-shifu/pkc-lib/core/mvelgamal"
	cs_mv "github.com/mr-shifu/pkc-lib/pkg/common/cryptosuite/mvelgamal"
	"github.com/mr-shifu/pkc-lib/pkg/hash"
)

var (
	ErrInvalidKey = errors.New("mvelgamal: invalid key")
)

// MVElgamalKey wraps core MV ElGamal key material for storage. A public-only
// key has a nil secret half.
type MVElgamalKey struct {
	secretKey *core_mv.SecretKey
	publicKey *core_mv.PublicKey
}

// rawMVElgamalKey carries the curve, the base point, the public point and
// optionally the private scalar.
type rawMVElgamalKey struct {
	A  []byte
	B  []byte
	P  []byte
	BX []byte
	BY []byte
	QX []byte
	QY []byte
	N  []byte
}

func (key MVElgamalKey) Bytes() ([]byte, error) {
	if key.publicKey == nil {
		return nil, ErrInvalidKey
	}

	pk := key.publicKey
	raw := &rawMVElgamalKey{
		A:  pk.Curve.A.Bytes(),
		B:  pk.Curve.B.Bytes(),
		P:  pk.Curve.P.Bytes(),
		BX: pk.Base.X().Bytes(),
		BY: pk.Base.Y().Bytes(),
		QX: pk.Q.X().Bytes(),
		QY: pk.Q.Y().Bytes(),
	}
	if key.Private() {
		raw.N = key.secretKey.N.Bytes()
	}
	return cbor.Marshal(raw)
}

// SKI returns the Subject Key Identifier derived from the curve, the base
// point and the public point.
func (key MVElgamalKey) SKI() []byte {
	pk := key.publicKey
	h := hash.New()
	if err := h.WriteAny(
		pk.Curve.A, pk.Curve.B, pk.Curve.P,
		pk.Base.X(), pk.Base.Y(),
		pk.Q.X(), pk.Q.Y(),
	); err != nil {
		return nil
	}
	return h.Sum()
}

func (key MVElgamalKey) Private() bool {
	return key.secretKey != nil
}

func (key MVElgamalKey) PublicKey() cs_mv.MVElgamalKey {
	return MVElgamalKey{nil, key.publicKey}
}

func (key MVElgamalKey) PublicKeyRaw() *core_mv.PublicKey {
	return key.publicKey
}

func (key MVElgamalKey) Params() core_mv.Parameters {
	return key.publicKey.Parameters
}

func fromBytes(data []byte) (MVElgamalKey, error) {
	raw := &rawMVElgamalKey{}
	if err := cbor.Unmarshal(data, raw); err != nil {
		return MVElgamalKey{}, err
	}
	// BY is never empty for a valid key, the base point has y ≠ 0. BX may
	// legitimately encode zero.
	if len(raw.P) == 0 || len(raw.BY) == 0 {
		return MVElgamalKey{}, ErrInvalidKey
	}

	c := curve.Curve{
		A: new(big.Int).SetBytes(raw.A),
		B: new(big.Int).SetBytes(raw.B),
		P: new(big.Int).SetBytes(raw.P),
	}
	base := curve.NewPoint(
		new(big.Int).SetBytes(raw.BX),
		new(big.Int).SetBytes(raw.BY),
	)
	params, err := core_mv.NewParameters(c, base)
	if err != nil {
		return MVElgamalKey{}, err
	}

	if len(raw.N) != 0 {
		n := new(big.Int).SetBytes(raw.N)
		sk, err := core_mv.NewSecretKey(params, n)
		if err != nil {
			return MVElgamalKey{}, err
		}
		return MVElgamalKey{sk, sk.Public()}, nil
	}

	q := curve.NewPoint(
		new(big.Int).SetBytes(raw.QX),
		new(big.Int).SetBytes(raw.QY),
	)
	pub, err := core_mv.NewPublicKey(params, q)
	if err != nil {
		return MVElgamalKey{}, err
	}
	return MVElgamalKey{nil, pub}, nil
}
