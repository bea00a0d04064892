package store

import (
	"encoding/json"
	"path/filepath"
	"sort"
	"sync"

	"keymill/internal/util/memzero"
	"keymill/kdf"
)

const sessionsFilename = "sessions.json"

// entry is the on-disk shape of one named session: which primitive it was
// created with, plus the strict session record sealed under the passphrase.
type entry struct {
	KDF    string `json:"kdf"`
	Sealed []byte `json:"sealed"`
}

// SessionFileStore persists derivation sessions to disk, each encrypted
// individually so unrelated sessions never share plaintext exposure.
type SessionFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewSessionFileStore returns a SessionFileStore rooted at dir.
func NewSessionFileStore(dir string) *SessionFileStore {
	return &SessionFileStore{dir: dir}
}

// Save writes the session record for name, replacing any previous one. The
// record is serialized with the strict codec and sealed under passphrase.
func (s *SessionFileStore) Save(name, passphrase, kdfName string, sess *kdf.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	N, r, p := scryptParamsDefault()
	sealed, err := seal(passphrase, raw, N, r, p)
	memzero.Zero(raw)
	if err != nil {
		return err
	}

	path := filepath.Join(s.dir, sessionsFilename)
	entries := map[string]entry{}
	_ = readJSON(path, &entries)
	entries[name] = entry{KDF: kdfName, Sealed: sealed}
	return writeJSON(path, entries, 0o600)
}

// Load retrieves and unseals the session stored under name. The decode goes
// through the strict deserialization path, so a tampered or truncated record
// is rejected rather than patched with defaults. The second return value is
// the KDF name the session was created with.
func (s *SessionFileStore) Load(name, passphrase string) (*kdf.Session, string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, sessionsFilename)
	entries := map[string]entry{}
	if err := readJSON(path, &entries); err != nil {
		return nil, "", false, err
	}
	e, ok := entries[name]
	if !ok {
		return nil, "", false, nil
	}

	raw, err := open(passphrase, e.Sealed)
	if err != nil {
		return nil, "", false, err
	}
	var sess kdf.Session
	err = json.Unmarshal(raw, &sess)
	memzero.Zero(raw)
	if err != nil {
		return nil, "", false, err
	}
	return &sess, e.KDF, true, nil
}

// List returns the stored session names in sorted order.
func (s *SessionFileStore) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := map[string]entry{}
	if err := readJSON(filepath.Join(s.dir, sessionsFilename), &entries); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes the session stored under name. Deleting a name that does
// not exist is not an error.
func (s *SessionFileStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, sessionsFilename)
	entries := map[string]entry{}
	if err := readJSON(path, &entries); err != nil {
		return err
	}
	if _, ok := entries[name]; !ok {
		return nil
	}
	delete(entries, name)
	return writeJSON(path, entries, 0o600)
}
