package keyopts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImportAndGet(t *testing.T) {
	kr := NewInMemoryKeyOpts()

	owners := []string{"alice", "bob"}
	for _, owner := range owners {
		opts := NewOptions()
		err := opts.Set("id", "key-1", "owner", owner)
		assert.NoError(t, err)
		err = kr.Import("ski-"+owner, opts)
		assert.NoError(t, err)
	}

	opts := NewOptions()
	assert.NoError(t, opts.Set("id", "key-1", "owner", "alice"))
	kd, err := kr.Get(opts)
	assert.NoError(t, err)
	assert.Equal(t, "ski-alice", kd.SKI)
	assert.Equal(t, "alice", kd.Owner)

	all, err := kr.GetAll(opts)
	assert.NoError(t, err)
	assert.Len(t, all, len(owners))
}

func TestGet_Missing(t *testing.T) {
	kr := NewInMemoryKeyOpts()

	opts := NewOptions()
	assert.NoError(t, opts.Set("id", "nope", "owner", "alice"))
	_, err := kr.Get(opts)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestOpts_Invalid(t *testing.T) {
	kr := NewInMemoryKeyOpts()

	opts := NewOptions()
	assert.NoError(t, opts.Set("owner", "alice"))
	_, err := kr.Get(opts)
	assert.ErrorIs(t, err, ErrInvalidParamsKeyID)

	opts = NewOptions()
	assert.NoError(t, opts.Set("id", "key-1"))
	_, err = kr.Get(opts)
	assert.ErrorIs(t, err, ErrInvalidParamsOwner)

	// odd kV count
	assert.Error(t, NewOptions().Set("id"))
	// non-string key
	assert.Error(t, NewOptions().Set(42, "x"))
}

func TestDelete(t *testing.T) {
	kr := NewInMemoryKeyOpts()

	opts := NewOptions()
	assert.NoError(t, opts.Set("id", "key-1", "owner", "alice"))
	assert.NoError(t, kr.Import("ski", opts))

	assert.NoError(t, kr.Delete(opts))
	_, err := kr.Get(opts)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestDeleteAll(t *testing.T) {
	kr := NewInMemoryKeyOpts()

	for _, owner := range []string{"alice", "bob"} {
		opts := NewOptions()
		assert.NoError(t, opts.Set("id", "key-1", "owner", owner))
		assert.NoError(t, kr.Import("ski-"+owner, opts))
	}

	opts := NewOptions()
	assert.NoError(t, opts.Set("id", "key-1"))
	assert.NoError(t, kr.DeleteAll(opts))
	_, err := kr.GetAll(opts)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}
