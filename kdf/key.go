package kdf

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"keymill/internal/util/memzero"
)

const (
	// MasterKeyBytes is the exact length of a MasterKey.
	MasterKeyBytes = 32

	// ContextBytes is the exact length of a Context.
	ContextBytes = 8

	// DerivedKeyBytesMin and DerivedKeyBytesMax bound the length of a
	// derived subkey, inclusive. GenerateNextKey rejects buffers outside
	// this range before touching the derivation primitive.
	DerivedKeyBytesMin = 16
	DerivedKeyBytesMax = 64
)

// MasterKey is the fixed-size secret a Session derives subkeys from.
type MasterKey [MasterKeyBytes]byte

// Context is a fixed-size derivation label. It does not have to be secret
// and may be low entropy, e.g. an application name.
type Context [ContextBytes]byte

func (k MasterKey) Slice() []byte { return k[:] }
func (c Context) Slice() []byte   { return c[:] }

// GenerateKey returns a fresh random MasterKey.
func GenerateKey() MasterKey {
	var k MasterKey
	// crypto/rand.Read is documented never to fail as of Go 1.24.
	if _, err := rand.Read(k[:]); err != nil {
		panic(err)
	}
	return k
}

// GenerateContext returns a fresh random Context.
func GenerateContext() Context {
	var c Context
	if _, err := rand.Read(c[:]); err != nil {
		panic(err)
	}
	return c
}

// MustMasterKey copies b into a MasterKey and panics on a length mismatch.
func MustMasterKey(b []byte) MasterKey {
	if len(b) != MasterKeyBytes {
		panic(fmt.Errorf("master key: want %d bytes, got %d", MasterKeyBytes, len(b)))
	}
	var out MasterKey
	copy(out[:], b)
	return out
}

// MustContext copies b into a Context and panics on a length mismatch.
func MustContext(b []byte) Context {
	if len(b) != ContextBytes {
		panic(fmt.Errorf("context: want %d bytes, got %d", ContextBytes, len(b)))
	}
	var out Context
	copy(out[:], b)
	return out
}

// Equal reports whether two master keys match, in constant time.
func (k MasterKey) Equal(other MasterKey) bool {
	return constantTimeCompare(k[:], other[:]) == 0
}

// Equal reports whether two contexts match, in constant time.
func (c Context) Equal(other Context) bool {
	return constantTimeCompare(c[:], other[:]) == 0
}

// Compare orders two master keys lexicographically without data-dependent
// early exit. It returns -1, 0 or 1.
func (k MasterKey) Compare(other MasterKey) int {
	return constantTimeCompare(k[:], other[:])
}

// Compare orders two contexts lexicographically without data-dependent
// early exit. It returns -1, 0 or 1.
func (c Context) Compare(other Context) int {
	return constantTimeCompare(c[:], other[:])
}

// Wipe overwrites the key with zeros.
func (k *MasterKey) Wipe() { memzero.Zero(k[:]) }

// Fingerprint returns a hex digest of the key suitable for display and
// logging. It reveals nothing about the key bytes themselves.
func (k MasterKey) Fingerprint() string {
	sum := sha256.Sum256(k[:])
	return hex.EncodeToString(sum[:])
}

// MarshalJSON encodes the key as a base64 string.
func (k MasterKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(base64.StdEncoding.EncodeToString(k[:]))
}

// UnmarshalJSON decodes a base64 string, rejecting any length other than
// MasterKeyBytes.
func (k *MasterKey) UnmarshalJSON(data []byte) error {
	b, err := unmarshalFixedBase64(data, MasterKeyBytes, "master key")
	if err != nil {
		return err
	}
	copy(k[:], b)
	memzero.Zero(b)
	return nil
}

// MarshalJSON encodes the context as a base64 string.
func (c Context) MarshalJSON() ([]byte, error) {
	return json.Marshal(base64.StdEncoding.EncodeToString(c[:]))
}

// UnmarshalJSON decodes a base64 string, rejecting any length other than
// ContextBytes.
func (c *Context) UnmarshalJSON(data []byte) error {
	b, err := unmarshalFixedBase64(data, ContextBytes, "context")
	if err != nil {
		return err
	}
	copy(c[:], b)
	return nil
}

func unmarshalFixedBase64(data []byte, want int, what string) ([]byte, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}
	if len(b) != want {
		return nil, fmt.Errorf("%s: want %d bytes, got %d", what, want, len(b))
	}
	return b, nil
}

// constantTimeCompare orders a and b lexicographically while always touching
// every byte. a and b must be the same length.
func constantTimeCompare(a, b []byte) int {
	var result int32
	for i := range a {
		diff := int32(a[i]) - int32(b[i])
		decided := (result | -result) >> 31 // all ones once result is set
		result += diff &^ decided
	}
	switch {
	case result < 0:
		return -1
	case result > 0:
		return 1
	}
	return 0
}
