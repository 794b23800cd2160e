package mvelgamal

import (
	core_mv "github.com/mr-shifu/pkc-lib/core/mvelgamal"
	"github.com/mr-shifu/pkc-lib/pkg/common/keyopts"
)

// MVElgamalKey is stored MV ElGamal key material.
type MVElgamalKey interface {
	// Bytes returns the serialized form of the key.
	Bytes() ([]byte, error)

	// SKI returns the Subject Key Identifier derived from the public part.
	SKI() []byte

	// Private returns true if the key contains the private scalar.
	Private() bool

	// PublicKey returns the public part of the key.
	PublicKey() MVElgamalKey

	// PublicKeyRaw returns the public part as a core key.
	PublicKeyRaw() *core_mv.PublicKey

	// Params returns the public group parameters the key lives on.
	Params() core_mv.Parameters
}

// MVElgamalKeyManager generates, stores and uses MV ElGamal keys.
type MVElgamalKeyManager interface {
	GenerateKey(opts keyopts.Options) (MVElgamalKey, error)
	ImportKey(data []byte, opts keyopts.Options) (MVElgamalKey, error)
	GetKey(opts keyopts.Options) (MVElgamalKey, error)

	// Encrypt encrypts message under the public part of the stored key.
	Encrypt(message string, opts keyopts.Options) (*core_mv.Ciphertext, error)

	// Decrypt decrypts a ciphertext with the stored private scalar.
	Decrypt(ct *core_mv.Ciphertext, opts keyopts.Options) (string, error)
}
