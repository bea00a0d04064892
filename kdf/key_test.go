package kdf_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"keymill/kdf"
)

func TestGenerateKeyIsRandom(t *testing.T) {
	a := kdf.GenerateKey()
	b := kdf.GenerateKey()
	require.False(t, a.Equal(b), "two generated keys must differ")
	require.NotEqual(t, kdf.MasterKey{}, a)
}

func TestGenerateContextIsRandom(t *testing.T) {
	a := kdf.GenerateContext()
	b := kdf.GenerateContext()
	require.False(t, a.Equal(b), "two generated contexts must differ")
}

func TestMustMasterKeyLength(t *testing.T) {
	raw := bytes.Repeat([]byte{7}, kdf.MasterKeyBytes)
	k := kdf.MustMasterKey(raw)
	require.Equal(t, raw, k.Slice())

	require.Panics(t, func() { kdf.MustMasterKey(raw[:16]) })
	require.Panics(t, func() { kdf.MustContext([]byte("too long for a context")) })
}

func TestKeyCompareOrdering(t *testing.T) {
	lo := kdf.MustMasterKey(bytes.Repeat([]byte{1}, kdf.MasterKeyBytes))
	hi := kdf.MustMasterKey(bytes.Repeat([]byte{2}, kdf.MasterKeyBytes))

	require.Equal(t, -1, lo.Compare(hi))
	require.Equal(t, 1, hi.Compare(lo))
	require.Equal(t, 0, lo.Compare(lo))
	require.True(t, lo.Equal(lo))
	require.False(t, lo.Equal(hi))

	// Ordering is decided by the most significant differing byte.
	a := kdf.MustContext([]byte{0, 1, 0, 0, 0, 0, 0, 9})
	b := kdf.MustContext([]byte{0, 2, 0, 0, 0, 0, 0, 0})
	require.Equal(t, -1, a.Compare(b))
}

func TestMasterKeyWipe(t *testing.T) {
	k := kdf.GenerateKey()
	k.Wipe()
	require.Equal(t, kdf.MasterKey{}, k)
}

func TestFingerprintStable(t *testing.T) {
	k := kdf.GenerateKey()
	require.Equal(t, k.Fingerprint(), k.Fingerprint())
	require.NotEqual(t, k.Fingerprint(), kdf.GenerateKey().Fingerprint())
	require.Len(t, k.Fingerprint(), 64)
}
