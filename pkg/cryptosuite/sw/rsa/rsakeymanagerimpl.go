package rsa

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"math/big"

	"github.com/google/uuid"

	core_rsa "github.com/mr-shifu/pkc-lib/core/rsa"
	"github.com/mr-shifu/pkc-lib/lib/params"
	cs_rsa "github.com/mr-shifu/pkc-lib/pkg/common/cryptosuite/rsa"
	"github.com/mr-shifu/pkc-lib/pkg/common/keyopts"
	"github.com/mr-shifu/pkc-lib/pkg/common/keystore"
)

var (
	ErrNotPrivateKey = errors.New("rsa: key is not private")
)

type Config struct {
	// Bits is the bit length of each generated prime factor.
	Bits int
}

type RSAKeyManager struct {
	keystore keystore.Keystore
	cfg      *Config
}

func NewRSAKeyManager(store keystore.Keystore, cfg *Config) *RSAKeyManager {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.Bits == 0 {
		cfg.Bits = params.RSADefaultBits
	}
	return &RSAKeyManager{
		keystore: store,
		cfg:      cfg,
	}
}

// GenerateKey generates a new RSA keypair and stores it. If opts carries no
// "id" a fresh one is assigned.
func (mgr *RSAKeyManager) GenerateKey(opts keyopts.Options) (cs_rsa.RSAKey, error) {
	sk, err := core_rsa.GenerateKey(rand.Reader, mgr.cfg.Bits)
	if err != nil {
		return nil, err
	}
	key := RSAKey{sk, sk.Public()}

	if _, ok := opts.Get("id"); !ok {
		if err := opts.Set("id", uuid.NewString()); err != nil {
			return nil, err
		}
	}

	if err := mgr.store(key, opts); err != nil {
		return nil, err
	}
	return key, nil
}

// ImportKey decodes a serialized key and stores it under opts.
func (mgr *RSAKeyManager) ImportKey(data []byte, opts keyopts.Options) (cs_rsa.RSAKey, error) {
	key, err := fromBytes(data)
	if err != nil {
		return nil, err
	}

	if err := mgr.store(key, opts); err != nil {
		return nil, err
	}
	return key, nil
}

func (mgr *RSAKeyManager) GetKey(opts keyopts.Options) (cs_rsa.RSAKey, error) {
	data, err := mgr.keystore.Get(opts)
	if err != nil {
		return nil, err
	}
	return fromBytes(data)
}

func (mgr *RSAKeyManager) Encrypt(message string, opts keyopts.Options) (*big.Int, error) {
	key, err := mgr.GetKey(opts)
	if err != nil {
		return nil, err
	}
	return core_rsa.Encrypt(message, key.PublicKeyRaw())
}

func (mgr *RSAKeyManager) Decrypt(cipher *big.Int, opts keyopts.Options) (string, error) {
	k, err := mgr.GetKey(opts)
	if err != nil {
		return "", err
	}
	key, ok := k.(RSAKey)
	if !ok || !key.Private() {
		return "", ErrNotPrivateKey
	}
	return key.secretKey.Decrypt(cipher)
}

func (mgr *RSAKeyManager) store(key RSAKey, opts keyopts.Options) error {
	kb, err := key.Bytes()
	if err != nil {
		return err
	}
	ski := hex.EncodeToString(key.SKI())
	return mgr.keystore.Import(ski, kb, opts)
}
