package rsa

import (
	"math/big"

	core_rsa "github.com/mr-shifu/pkc-lib/core/rsa"
	"github.com/mr-shifu/pkc-lib/pkg/common/keyopts"
)

// RSAKey is stored RSA key material.
type RSAKey interface {
	// Bytes returns the serialized form of the key.
	Bytes() ([]byte, error)

	// SKI returns the Subject Key Identifier derived from the public part.
	SKI() []byte

	// Private returns true if the key contains the decryption exponent.
	Private() bool

	// PublicKey returns the public part of the key.
	PublicKey() RSAKey

	// PublicKeyRaw returns the public part as a core key.
	PublicKeyRaw() *core_rsa.PublicKey
}

// RSAKeyManager generates, stores and uses RSA keys.
type RSAKeyManager interface {
	GenerateKey(opts keyopts.Options) (RSAKey, error)
	ImportKey(data []byte, opts keyopts.Options) (RSAKey, error)
	GetKey(opts keyopts.Options) (RSAKey, error)

	// Encrypt encrypts message under the public part of the stored key.
	Encrypt(message string, opts keyopts.Options) (*big.Int, error)

	// Decrypt decrypts a ciphertext with the stored private key.
	Decrypt(cipher *big.Int, opts keyopts.Options) (string, error)
}
