package keyopts

import (
	"errors"
	"sync"

	"github.com/mr-shifu/pkc-lib/pkg/common/keyopts"
)

var (
	ErrInvalidParamsOwner = errors.New("keyopts: invalid owner")
	ErrInvalidParamsKeyID = errors.New("keyopts: invalid keyID")
	ErrKeyNotFound        = errors.New("keyopts: key not found")
)

type Keys map[string]*keyopts.KeyData

type KeyOpts struct {
	lock sync.RWMutex

	// keys is a map of key ID to a map of owner to key metadata{SKI}.
	keys map[string]Keys
}

func NewInMemoryKeyOpts() *KeyOpts {
	return &KeyOpts{
		keys: make(map[string]Keys),
	}
}

// lookup extracts the ("id", "owner") address from opts.
func lookup(opts keyopts.Options) (kid, owner string, err error) {
	id, ok := opts.Get("id")
	if !ok {
		return "", "", ErrInvalidParamsKeyID
	}
	kid, ok = id.(string)
	if !ok {
		return "", "", ErrInvalidParamsKeyID
	}

	o, ok := opts.Get("owner")
	if !ok {
		return "", "", ErrInvalidParamsOwner
	}
	owner, ok = o.(string)
	if !ok {
		return "", "", ErrInvalidParamsOwner
	}
	return kid, owner, nil
}

func (kr *KeyOpts) Import(data interface{}, opts keyopts.Options) error {
	kr.lock.Lock()
	defer kr.lock.Unlock()

	kid, owner, err := lookup(opts)
	if err != nil {
		return err
	}

	ski, ok := data.(string)
	if !ok {
		return errors.New("keyopts: invalid data")
	}

	if _, ok := kr.keys[kid]; !ok {
		kr.keys[kid] = make(Keys)
	}
	kr.keys[kid][owner] = &keyopts.KeyData{
		SKI:   ski,
		Owner: owner,
	}

	return nil
}

func (kr *KeyOpts) Get(opts keyopts.Options) (*keyopts.KeyData, error) {
	kr.lock.RLock()
	defer kr.lock.RUnlock()

	kid, owner, err := lookup(opts)
	if err != nil {
		return nil, err
	}

	ks, ok := kr.keys[kid]
	if !ok {
		return nil, ErrKeyNotFound
	}
	k, ok := ks[owner]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return k, nil
}

func (kr *KeyOpts) GetAll(opts keyopts.Options) (map[string]*keyopts.KeyData, error) {
	kr.lock.RLock()
	defer kr.lock.RUnlock()

	id, ok := opts.Get("id")
	if !ok {
		return nil, ErrInvalidParamsKeyID
	}
	kid, ok := id.(string)
	if !ok {
		return nil, ErrInvalidParamsKeyID
	}

	ks, ok := kr.keys[kid]
	if !ok {
		return nil, ErrKeyNotFound
	}

	result := make(map[string]*keyopts.KeyData)
	for owner, key := range ks {
		result[owner] = key
	}
	return result, nil
}

func (kr *KeyOpts) Delete(opts keyopts.Options) error {
	kr.lock.Lock()
	defer kr.lock.Unlock()

	kid, owner, err := lookup(opts)
	if err != nil {
		return err
	}

	ks, ok := kr.keys[kid]
	if !ok {
		return ErrKeyNotFound
	}
	delete(ks, owner)
	return nil
}

func (kr *KeyOpts) DeleteAll(opts keyopts.Options) error {
	kr.lock.Lock()
	defer kr.lock.Unlock()

	id, ok := opts.Get("id")
	if !ok {
		return ErrInvalidParamsKeyID
	}
	kid, ok := id.(string)
	if !ok {
		return ErrInvalidParamsKeyID
	}

	delete(kr.keys, kid)
	return nil
}
