package mvelgamal

import (
	"crypto/rand"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	core_mv "github.com/mr-shifu/pkc-lib/core/mvelgamal"
	cs_mv "github.com/mr-shifu/pkc-lib/pkg/common/cryptosuite/mvelgamal"
	"github.com/mr-shifu/pkc-lib/pkg/keyopts"
	"github.com/mr-shifu/pkc-lib/pkg/keystore"
	"github.com/mr-shifu/pkc-lib/pkg/vault"
)

func newTestManager(t *testing.T) *MVElgamalKeyManager {
	params, err := core_mv.GenerateParameters(rand.Reader, 64)
	require.NoError(t, err)

	ks := keystore.NewInMemoryKeystore(vault.NewInMemoryVault(), keyopts.NewInMemoryKeyOpts())
	return NewMVElgamalKeyManager(ks, &Config{Params: params})
}

func testOpts(t *testing.T, id, owner string) keyopts.Options {
	opts := keyopts.NewOptions()
	require.NoError(t, opts.Set("id", id, "owner", owner))
	return opts
}

func TestGenerateKey(t *testing.T) {
	mgr := newTestManager(t)
	opts := testOpts(t, "key-1", "alice")

	key, err := mgr.GenerateKey(opts)
	require.NoError(t, err)
	assert.True(t, key.Private())
	assert.NotEmpty(t, key.SKI())

	params := key.Params()
	assert.True(t, params.Curve.IsOnCurve(key.PublicKeyRaw().Q))

	got, err := mgr.GetKey(opts)
	require.NoError(t, err)
	assert.Equal(t, key.SKI(), got.SKI())
	assert.True(t, got.Private())
}

func TestGenerateKey_FreshGroup(t *testing.T) {
	// a manager without fixed parameters generates a group on first use
	ks := keystore.NewInMemoryKeystore(vault.NewInMemoryVault(), keyopts.NewInMemoryKeyOpts())
	mgr := NewMVElgamalKeyManager(ks, &Config{Bits: 32})

	key, err := mgr.GenerateKey(testOpts(t, "key-1", "alice"))
	require.NoError(t, err)
	assert.True(t, key.Params().Curve.IsElliptic())

	// the second key lands on the same group
	key2, err := mgr.GenerateKey(testOpts(t, "key-2", "alice"))
	require.NoError(t, err)
	assert.True(t, key.Params().Curve.Equal(key2.Params().Curve))
}

func TestGenerateKey_ConcurrentSharedGroup(t *testing.T) {
	// concurrent generation on a lazily resolved group must agree on one set
	// of parameters
	ks := keystore.NewInMemoryKeystore(vault.NewInMemoryVault(), keyopts.NewInMemoryKeyOpts())
	mgr := NewMVElgamalKeyManager(ks, &Config{Bits: 32})

	const workers = 8
	keys := make([]cs_mv.MVElgamalKey, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			opts := keyopts.NewOptions()
			if errs[i] = opts.Set("id", fmt.Sprintf("key-%d", i), "owner", "alice"); errs[i] != nil {
				return
			}
			keys[i], errs[i] = mgr.GenerateKey(opts)
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	group := keys[0].Params()
	for i := 1; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.True(t, group.Curve.Equal(keys[i].Params().Curve))
		assert.True(t, group.Base.Equal(keys[i].Params().Base))
	}
}

func TestEncryptDecrypt(t *testing.T) {
	mgr := newTestManager(t)
	opts := testOpts(t, "key-1", "alice")

	_, err := mgr.GenerateKey(opts)
	require.NoError(t, err)

	message := "hello curve"
	ct, err := mgr.Encrypt(message, opts)
	require.NoError(t, err)
	require.True(t, ct.Valid())

	got, err := mgr.Decrypt(ct, opts)
	require.NoError(t, err)
	assert.Equal(t, message, got)
}

func TestImportKey(t *testing.T) {
	mgr := newTestManager(t)
	opts := testOpts(t, "key-1", "alice")

	key, err := mgr.GenerateKey(opts)
	require.NoError(t, err)

	kb, err := key.Bytes()
	require.NoError(t, err)

	other := newTestManager(t)
	imported, err := other.ImportKey(kb, testOpts(t, "key-1", "alice"))
	require.NoError(t, err)
	assert.Equal(t, key.SKI(), imported.SKI())
	assert.True(t, imported.Private())

	// the imported key carries its own group, not the manager's
	assert.True(t, imported.Params().Curve.Equal(key.Params().Curve))
}

func TestImportKey_PublicOnly(t *testing.T) {
	mgr := newTestManager(t)
	aliceOpts := testOpts(t, "key-1", "alice")

	key, err := mgr.GenerateKey(aliceOpts)
	require.NoError(t, err)

	pub, err := key.PublicKey().Bytes()
	require.NoError(t, err)

	bobOpts := testOpts(t, "key-1", "bob")
	imported, err := mgr.ImportKey(pub, bobOpts)
	require.NoError(t, err)
	assert.False(t, imported.Private())
	assert.Equal(t, key.SKI(), imported.SKI())

	message := "to alice"
	ct, err := mgr.Encrypt(message, bobOpts)
	require.NoError(t, err)

	_, err = mgr.Decrypt(ct, bobOpts)
	assert.ErrorIs(t, err, ErrNotPrivateKey)

	got, err := mgr.Decrypt(ct, aliceOpts)
	require.NoError(t, err)
	assert.Equal(t, message, got)
}

func TestGetKey_Missing(t *testing.T) {
	mgr := newTestManager(t)
	_, err := mgr.GetKey(testOpts(t, "missing", "alice"))
	assert.Error(t, err)
}
