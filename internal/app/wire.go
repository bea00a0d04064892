package app

import (
	"fmt"
	"sort"
	"strings"

	"keymill/internal/store"
	"keymill/kdf"
)

// DefaultKDF is the primitive sessions are created with unless told otherwise.
const DefaultKDF = "blake2b"

// derivers maps user-facing names to derivation primitives.
var derivers = map[string]kdf.Deriver{
	"blake2b": kdf.Blake2bDeriver{},
	"hkdf":    kdf.HKDFDeriver{},
	"blake3":  kdf.Blake3Deriver{},
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*App, error) {
	return New(store.NewSessionFileStore(cfg.Home)), nil
}

// DeriverByName resolves a primitive name from the CLI or a stored session
// entry. Unknown names report the supported set.
func DeriverByName(name string) (kdf.Deriver, error) {
	d, ok := derivers[name]
	if !ok {
		return nil, fmt.Errorf("unknown kdf %q (supported: %s)", name, supportedKDFs())
	}
	return d, nil
}

func supportedKDFs() string {
	names := make([]string, 0, len(derivers))
	for name := range derivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
