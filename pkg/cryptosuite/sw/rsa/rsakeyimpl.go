package rsa

import (
	"errors"
	"math/big"

	"github.com/fxamacker/cbor/v2"

	core_rsa "github.com/mr-shifu/pkc-lib/core/rsa"
	cs_rsa "github.com/mr-shifu/pkc-lib/pkg/common/cryptosuite/rsa"
	"github.com/mr-shifu/pkc-lib/pkg/hash"
)

var (
	ErrInvalidKey = errors.New("rsa: invalid key")
)

// RSAKey wraps core RSA key material for storage. A public-only key has a
// nil secret half.
type RSAKey struct {
	secretKey *core_rsa.SecretKey
	publicKey *core_rsa.PublicKey
}

type rawRSAKey struct {
	N []byte
	E []byte
	D []byte
}

func (key RSAKey) Bytes() ([]byte, error) {
	if key.publicKey == nil {
		return nil, ErrInvalidKey
	}

	raw := &rawRSAKey{
		N: key.publicKey.N.Bytes(),
		E: key.publicKey.E.Bytes(),
	}
	if key.Private() {
		raw.D = key.secretKey.D.Bytes()
	}
	return cbor.Marshal(raw)
}

// SKI returns the Subject Key Identifier derived from the public modulus and
// encryption exponent.
func (key RSAKey) SKI() []byte {
	h := hash.New()
	if err := h.WriteAny(key.publicKey.N, key.publicKey.E); err != nil {
		return nil
	}
	return h.Sum()
}

func (key RSAKey) Private() bool {
	return key.secretKey != nil
}

func (key RSAKey) PublicKey() cs_rsa.RSAKey {
	return RSAKey{nil, key.publicKey}
}

func (key RSAKey) PublicKeyRaw() *core_rsa.PublicKey {
	return key.publicKey
}

func fromBytes(data []byte) (RSAKey, error) {
	raw := &rawRSAKey{}
	if err := cbor.Unmarshal(data, raw); err != nil {
		return RSAKey{}, err
	}
	if len(raw.N) == 0 || len(raw.E) == 0 {
		return RSAKey{}, ErrInvalidKey
	}

	n := new(big.Int).SetBytes(raw.N)
	e := new(big.Int).SetBytes(raw.E)
	pub := &core_rsa.PublicKey{N: n, E: e}

	if len(raw.D) == 0 {
		return RSAKey{nil, pub}, nil
	}

	d := new(big.Int).SetBytes(raw.D)
	sk, err := core_rsa.NewKeyFromTuples([2]*big.Int{n, e}, [2]*big.Int{n, d})
	if err != nil {
		return RSAKey{}, err
	}
	return RSAKey{sk, pub}, nil
}
