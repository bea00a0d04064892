package kdf

import (
	"errors"
	"strings"
)

// ErrNoKey is returned by Build when no master key was configured. There is
// no safe default for a secret, so the lenient path still refuses to invent
// one.
var ErrNoKey = errors.New("no master key configured")

// MissingFieldsError reports which builder fields were absent at BuildFull,
// one flag per field in the order index, context, key. true means missing.
type MissingFieldsError struct {
	Index   bool
	Context bool
	Key     bool
}

func (e *MissingFieldsError) Error() string {
	var missing []string
	if e.Index {
		missing = append(missing, sessionFieldIndex)
	}
	if e.Context {
		missing = append(missing, sessionFieldContext)
	}
	if e.Key {
		missing = append(missing, sessionFieldKey)
	}
	return "session builder missing: " + strings.Join(missing, ", ")
}

// Flags returns the report as a 3-element array in field order
// (index, context, key).
func (e *MissingFieldsError) Flags() [3]bool {
	return [3]bool{e.Index, e.Context, e.Key}
}

// First returns the name of the first missing field in the fixed priority
// order index > context > key, or "" if nothing is missing.
func (e *MissingFieldsError) First() string {
	switch {
	case e.Index:
		return sessionFieldIndex
	case e.Context:
		return sessionFieldContext
	case e.Key:
		return sessionFieldKey
	}
	return ""
}

// SessionBuilder accumulates optional session fields. Each setter overrides
// any earlier value for that field; validation happens only at Build or
// BuildFull. Builders are not safe for concurrent use.
type SessionBuilder struct {
	index   *uint64
	context *Context
	key     *MasterKey
	deriver Deriver
}

// NewSessionBuilder returns an empty builder.
func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{}
}

// Index sets the starting index, overriding one if it was already set.
func (b *SessionBuilder) Index(i uint64) *SessionBuilder {
	b.index = &i
	return b
}

// Context sets the context, overriding one if it was already set.
func (b *SessionBuilder) Context(c Context) *SessionBuilder {
	b.context = &c
	return b
}

// Key sets the master key, overriding one if it was already set.
func (b *SessionBuilder) Key(k MasterKey) *SessionBuilder {
	b.key = &k
	return b
}

// RandomContext sets the context to a fresh random value.
func (b *SessionBuilder) RandomContext() *SessionBuilder {
	return b.Context(GenerateContext())
}

// RandomKey sets the master key to a fresh random value.
func (b *SessionBuilder) RandomKey() *SessionBuilder {
	return b.Key(GenerateKey())
}

// Deriver sets the derivation primitive. Sessions built without one use the
// keyed BLAKE2b XOF.
func (b *SessionBuilder) Deriver(d Deriver) *SessionBuilder {
	b.deriver = d
	return b
}

// Build finalizes leniently: a missing index defaults to 0 and a missing
// context to the all-zero value. A missing key is an error; the builder
// never substitutes a zero key.
func (b *SessionBuilder) Build() (*Session, error) {
	if b.key == nil {
		return nil, ErrNoKey
	}
	var index uint64
	if b.index != nil {
		index = *b.index
	}
	var context Context
	if b.context != nil {
		context = *b.context
	}
	d := b.deriver
	if d == nil {
		d = defaultDeriver
	}
	return &Session{
		index:   index,
		context: context,
		key:     *b.key,
		deriver: d,
	}, nil
}

// BuildFull finalizes strictly: index, context and key must all have been
// set explicitly. Otherwise it returns a *MissingFieldsError identifying
// exactly which fields were absent. Deserialization uses this path so wire
// records can never be silently patched with defaults.
func (b *SessionBuilder) BuildFull() (*Session, error) {
	if b.index == nil || b.context == nil || b.key == nil {
		return nil, &MissingFieldsError{
			Index:   b.index == nil,
			Context: b.context == nil,
			Key:     b.key == nil,
		}
	}
	return b.Build()
}
