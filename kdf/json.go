package kdf

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Canonical field names of a serialized session record.
const (
	sessionFieldIndex   = "index"
	sessionFieldContext = "context"
	sessionFieldKey     = "key"
)

// sessionFieldCount is the exact number of fields a record must carry.
const sessionFieldCount = 3

// MarshalJSON encodes the session as an object with exactly the fields
// index, context and key, in that canonical order. Written by hand because
// the record is secret-bearing and order-sensitive; see UnmarshalJSON for
// the matching strict decode.
func (s Session) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Index   uint64    `json:"index"`
		Context Context   `json:"context"`
		Key     MasterKey `json:"key"`
	}{
		Index:   s.index,
		Context: s.context,
		Key:     s.key,
	})
}

// UnmarshalJSON decodes a session record strictly. Fields may arrive in any
// order, but anything outside the canonical set is rejected, duplicates are
// rejected, and a record with fewer than three fields fails naming the first
// absent field rather than defaulting it. Decoding routes through
// BuildFull, so a missing key or context can never be zero-filled.
func (s *Session) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("session record must be a JSON object")
	}

	b := NewSessionBuilder()
	seen := make(map[string]bool, sessionFieldCount)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("session record: unexpected token %v", tok)
		}
		if seen[name] {
			return fmt.Errorf("duplicate field %q in session record", name)
		}
		seen[name] = true

		switch name {
		case sessionFieldIndex:
			var index uint64
			if err := dec.Decode(&index); err != nil {
				return fmt.Errorf("field %q: %w", name, err)
			}
			b.Index(index)
		case sessionFieldContext:
			var context Context
			if err := dec.Decode(&context); err != nil {
				return fmt.Errorf("field %q: %w", name, err)
			}
			b.Context(context)
		case sessionFieldKey:
			var key MasterKey
			if err := dec.Decode(&key); err != nil {
				return fmt.Errorf("field %q: %w", name, err)
			}
			b.Key(key)
		default:
			return fmt.Errorf("unknown field %q in session record, want %q, %q and %q",
				name, sessionFieldIndex, sessionFieldContext, sessionFieldKey)
		}
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return err
	}

	built, err := b.BuildFull()
	if err != nil {
		var mf *MissingFieldsError
		if errors.As(err, &mf) {
			return fmt.Errorf("session record has %d fields, want %d: missing field %q",
				len(seen), sessionFieldCount, mf.First())
		}
		return err
	}
	*s = *built
	return nil
}
