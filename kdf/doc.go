// Package kdf implements deterministic subkey-derivation sessions.
//
// A Session owns one master key and one derivation context and hands out an
// ordered sequence of fixed-size subkeys, one per 64-bit index. The same
// (key, context, index, length) always reproduces the same subkey, and
// distinct indices yield independent-looking subkeys, so a session can be
// persisted, moved, and resumed without ever repeating key material.
//
// Contents
//
//   - Fixed-size secret containers (MasterKey, Context) with constant-time
//     comparison and best-effort wiping
//   - Session and GenerateNextKey, which fills a caller-supplied buffer and
//     advances the index by exactly one on success
//   - SessionBuilder with a lenient finalizer (Build) and a strict one
//     (BuildFull) used by deserialization
//   - A hand-written strict JSON codec that never substitutes defaults for
//     missing wire fields
//   - Pluggable Deriver implementations: keyed BLAKE2b XOF (default),
//     HKDF-SHA256 and keyed BLAKE3
//
// # Notes
//
// Sessions and builders are single-goroutine by contract; callers sharing a
// Session must serialize access so each index is consumed at most once.
// Callers should treat MasterKey values as sensitive and rely on Wipe when
// practical to reduce their lifetime in memory.
package kdf
