package kdf

// Deriver is the one-shot derivation primitive a Session invokes. Derive
// fills out with the subkey for (key, context, index). Implementations must
// be deterministic for identical inputs, honor len(out) exactly, and produce
// independent-looking outputs for distinct indices under a fixed key and
// context. len(out) is always within [DerivedKeyBytesMin, DerivedKeyBytesMax]
// by the time a Session calls Derive.
type Deriver interface {
	Derive(out []byte, index uint64, context Context, key MasterKey) error
}

// defaultDeriver backs sessions that did not pick a primitive explicitly.
var defaultDeriver Deriver = Blake2bDeriver{}
