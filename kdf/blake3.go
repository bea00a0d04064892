package kdf

import (
	"encoding/binary"

	"lukechampine.com/blake3"
)

// Blake3Deriver derives subkeys with keyed BLAKE3. BLAKE3 outputs of
// different lengths are prefixes of the same stream, so the requested length
// is mixed into the message to keep subkeys of different sizes unrelated.
type Blake3Deriver struct{}

// Derive fills out with the subkey for (key, context, index).
func (Blake3Deriver) Derive(out []byte, index uint64, context Context, key MasterKey) error {
	h := blake3.New(len(out), key.Slice())

	var idx [8]byte
	binary.LittleEndian.PutUint64(idx[:], index)
	if _, err := h.Write(context.Slice()); err != nil {
		return err
	}
	if _, err := h.Write(idx[:]); err != nil {
		return err
	}
	if _, err := h.Write([]byte{byte(len(out))}); err != nil {
		return err
	}
	copy(out, h.Sum(nil))
	return nil
}
