package kdf

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDerivedKeyLength is returned when the output buffer passed to
	// GenerateNextKey is outside [DerivedKeyBytesMin, DerivedKeyBytesMax].
	ErrDerivedKeyLength = fmt.Errorf(
		"derived key length must be between %d and %d bytes",
		DerivedKeyBytesMin, DerivedKeyBytesMax,
	)

	// ErrIndexExhausted is returned once the session index reaches the
	// maximum uint64 value. The counter saturates rather than wrapping, so
	// the final representable index is never issued.
	ErrIndexExhausted = errors.New("session index exhausted")
)

// Session derives an ordered sequence of subkeys from one master key and one
// context. Only the index mutates, and only by exactly one per successful
// derivation. Sessions are not safe for concurrent use.
type Session struct {
	index   uint64
	context Context
	key     MasterKey
	deriver Deriver
}

// GenerateNextKey fills buffer with the subkey for the session's current
// index and returns the index that was used. The index advances if and only
// if derivation succeeded; on any error the session is unchanged and the
// buffer contents must not be used as key material.
func (s *Session) GenerateNextKey(buffer []byte) (uint64, error) {
	if len(buffer) < DerivedKeyBytesMin || len(buffer) > DerivedKeyBytesMax {
		return 0, ErrDerivedKeyLength
	}
	if s.index == math.MaxUint64 {
		return 0, ErrIndexExhausted
	}

	d := s.deriver
	if d == nil {
		d = defaultDeriver
	}
	if err := d.Derive(buffer, s.index, s.context, s.key); err != nil {
		return 0, fmt.Errorf("derivation backend: %w", err)
	}

	used := s.index
	s.index++
	return used, nil
}

// Index returns the index the next GenerateNextKey call will use.
func (s *Session) Index() uint64 { return s.index }

// Context returns the session's derivation context.
func (s *Session) Context() Context { return s.context }

// Fingerprint returns a display-safe digest of the session's master key.
func (s *Session) Fingerprint() string { return s.key.Fingerprint() }

// Equal reports whether two sessions hold the same index, context and key.
// The secret comparison is constant time.
func (s *Session) Equal(other *Session) bool {
	ctxEq := s.context.Equal(other.context)
	keyEq := s.key.Equal(other.key)
	return s.index == other.index && ctxEq && keyEq
}

// Compare orders sessions by index, then context, then key, without
// data-dependent early exit on the secret bytes.
func (s *Session) Compare(other *Session) int {
	if s.index != other.index {
		if s.index < other.index {
			return -1
		}
		return 1
	}
	ctxCmp := s.context.Compare(other.context)
	keyCmp := s.key.Compare(other.key)
	if ctxCmp != 0 {
		return ctxCmp
	}
	return keyCmp
}

// UseDeriver swaps the derivation primitive the session invokes. Swapping
// primitives mid-sequence changes the subkey stream, so callers should pick
// one per session and stick to it.
func (s *Session) UseDeriver(d Deriver) { s.deriver = d }

// Wipe overwrites the session's master key with zeros. The session must not
// be used afterwards.
func (s *Session) Wipe() { s.key.Wipe() }
