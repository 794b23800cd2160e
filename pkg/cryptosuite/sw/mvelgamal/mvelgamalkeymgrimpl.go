package mvelgamal

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"

	"github.com/google/uuid"

	core_mv "github.com/mr-shifu/pkc-lib/core/mvelgamal"
	"github.com/mr-shifu/pkc-lib/lib/params"
	cs_mv "github.com/mr-shifu/pkc-lib/pkg/common/cryptosuite/mvelgamal"
	"github.com/mr-shifu/pkc-lib/pkg/common/keyopts"
	"github.com/mr-shifu/pkc-lib/pkg/common/keystore"
)

var (
	ErrNotPrivateKey = errors.New("mvelgamal: key is not private")
)

type Config struct {
	// Params fixes the group all managed keys live on. When empty, a fresh
	// group of Bits size is generated the first time a key is requested.
	Params core_mv.Parameters

	// Bits is the field size used when generating a group.
	Bits int
}

type MVElgamalKeyManager struct {
	keystore keystore.Keystore
	cfg      *Config

	// group is resolved once, so concurrent callers always land on the
	// same parameters.
	groupOnce sync.Once
	group     core_mv.Parameters
	groupErr  error
}

func NewMVElgamalKeyManager(store keystore.Keystore, cfg *Config) *MVElgamalKeyManager {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.Bits == 0 {
		cfg.Bits = params.MVDefaultBits
	}
	return &MVElgamalKeyManager{
		keystore: store,
		cfg:      cfg,
	}
}

// GenerateKey generates a new MV ElGamal keypair on the configured group and
// stores it. If opts carries no "id" a fresh one is assigned.
func (mgr *MVElgamalKeyManager) GenerateKey(opts keyopts.Options) (cs_mv.MVElgamalKey, error) {
	p, err := mgr.params()
	if err != nil {
		return nil, err
	}
	sk, err := core_mv.GenerateKey(rand.Reader, p)
	if err != nil {
		return nil, err
	}
	key := MVElgamalKey{sk, sk.Public()}

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
func (mgr *MVElgamalKeyManager) ImportKey(data []byte, opts keyopts.Options) (cs_mv.MVElgamalKey, error) {
	key, err := fromBytes(data)
	if err != nil {
		return nil, err
	}

	if err := mgr.store(key, opts); err != nil {
		return nil, err
	}
	return key, nil
}

func (mgr *MVElgamalKeyManager) GetKey(opts keyopts.Options) (cs_mv.MVElgamalKey, error) {
	data, err := mgr.keystore.Get(opts)
	if err != nil {
		return nil, err
	}
	return fromBytes(data)
}

func (mgr *MVElgamalKeyManager) Encrypt(message string, opts keyopts.Options) (*core_mv.Ciphertext, error) {
	key, err := mgr.GetKey(opts)
	if err != nil {
		return nil, err
	}
	return core_mv.EncryptRetry(rand.Reader, message, key.PublicKeyRaw(), 0)
}

func (mgr *MVElgamalKeyManager) Decrypt(ct *core_mv.Ciphertext, opts keyopts.Options) (string, error) {
	k, err := mgr.GetKey(opts)
	if err != nil {
		return "", err
	}
	key, ok := k.(MVElgamalKey)
	if !ok || !key.Private() {
		return "", ErrNotPrivateKey
	}
	return key.secretKey.Decrypt(ct)
}

func (mgr *MVElgamalKeyManager) params() (core_mv.Parameters, error) {
	mgr.groupOnce.Do(func() {
		if !mgr.cfg.Params.Base.IsIdentity() {
			mgr.group = mgr.cfg.Params
			return
		}
		mgr.group, mgr.groupErr = core_mv.GenerateParameters(rand.Reader, mgr.cfg.Bits)
	})
	return mgr.group, mgr.groupErr
}

func (mgr *MVElgamalKeyManager) store(key MVElgamalKey, opts keyopts.Options) error {
	kb, err := key.Bytes()
	if err != nil {
		return err
	}
	ski := hex.EncodeToString(key.SKI())
	return mgr.keystore.Import(ski, kb, opts)
}
