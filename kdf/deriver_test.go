package kdf_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"keymill/kdf"
)

// derivers under test, by the names the CLI exposes.
var derivers = map[string]kdf.Deriver{
	"blake2b": kdf.Blake2bDeriver{},
	"hkdf":    kdf.HKDFDeriver{},
	"blake3":  kdf.Blake3Deriver{},
}

func TestDeriverDeterminism(t *testing.T) {
	key := kdf.MustMasterKey(bytes.Repeat([]byte{0x17}, kdf.MasterKeyBytes))
	ctx := kdf.MustContext([]byte("derive01"))

	for name, d := range derivers {
		t.Run(name, func(t *testing.T) {
			a := make([]byte, 32)
			b := make([]byte, 32)
			require.NoError(t, d.Derive(a, 5, ctx, key))
			require.NoError(t, d.Derive(b, 5, ctx, key))
			require.Equal(t, a, b, "same inputs must reproduce the same subkey")
		})
	}
}

func TestDeriverSeparation(t *testing.T) {
	key := kdf.GenerateKey()
	ctx := kdf.MustContext([]byte("derive01"))

	for name, d := range derivers {
		t.Run(name, func(t *testing.T) {
			base := make([]byte, 32)
			require.NoError(t, d.Derive(base, 5, ctx, key))

			// Distinct index.
			other := make([]byte, 32)
			require.NoError(t, d.Derive(other, 6, ctx, key))
			require.NotEqual(t, base, other)

			// Distinct context.
			require.NoError(t, d.Derive(other, 5, kdf.MustContext([]byte("derive02")), key))
			require.NotEqual(t, base, other)

			// Distinct key.
			require.NoError(t, d.Derive(other, 5, ctx, kdf.GenerateKey()))
			require.NotEqual(t, base, other)
		})
	}
}

func TestDeriverLengthsNotPrefixes(t *testing.T) {
	key := kdf.GenerateKey()
	ctx := kdf.MustContext([]byte("derive01"))

	for name, d := range derivers {
		t.Run(name, func(t *testing.T) {
			short := make([]byte, kdf.DerivedKeyBytesMin)
			long := make([]byte, kdf.DerivedKeyBytesMax)
			require.NoError(t, d.Derive(short, 5, ctx, key))
			require.NoError(t, d.Derive(long, 5, ctx, key))
			require.NotEqual(t, short, long[:len(short)],
				"a shorter subkey must not be a prefix of a longer one")
		})
	}
}

func TestDeriverFillsWholeBuffer(t *testing.T) {
	key := kdf.GenerateKey()
	ctx := kdf.MustContext([]byte("derive01"))

	for name, d := range derivers {
		t.Run(name, func(t *testing.T) {
			out := bytes.Repeat([]byte{0xAA}, 48)
			require.NoError(t, d.Derive(out, 0, ctx, key))
			require.NotEqual(t, byte(0xAA), out[len(out)-1],
				"last byte left untouched; a stuck sentinel here is vanishingly unlikely")
		})
	}
}

func TestDeriversDisagree(t *testing.T) {
	// Sanity check that the primitives are actually different constructions.
	key := kdf.GenerateKey()
	ctx := kdf.MustContext([]byte("derive01"))

	outs := make(map[string][]byte)
	for name, d := range derivers {
		out := make([]byte, 32)
		require.NoError(t, d.Derive(out, 0, ctx, key))
		outs[name] = out
	}
	require.NotEqual(t, outs["blake2b"], outs["hkdf"])
	require.NotEqual(t, outs["blake2b"], outs["blake3"])
	require.NotEqual(t, outs["hkdf"], outs["blake3"])
}
