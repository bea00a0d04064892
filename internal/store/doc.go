// Package store provides file-based persistence for keymill sessions.
//
// Sessions are kept in a single JSON file under the user's configured home
// directory, one entry per name. Each entry records the derivation primitive
// the session was created with and the session record itself, serialised with
// the strict codec and sealed with a passphrase-derived key (scrypt +
// ChaCha20-Poly1305). Loading always goes back through the strict decode
// path, so missing or unknown wire fields fail instead of being defaulted.
//
// All methods are concurrency-safe via internal locking, and writes replace
// the file atomically.
package store
