package kdf

import (
	"encoding/binary"
	"io"

	"golang.org/x/crypto/blake2b"
)

// Blake2bDeriver derives subkeys with a BLAKE2b XOF keyed by the master key.
// The requested output length is part of the XOF parameter block, so subkeys
// of different lengths are unrelated, not prefixes of one another. This is
// the default primitive and the one the package constants are sized for.
type Blake2bDeriver struct{}

// Derive fills out with the subkey for (key, context, index).
func (Blake2bDeriver) Derive(out []byte, index uint64, context Context, key MasterKey) error {
	xof, err := blake2b.NewXOF(uint32(len(out)), key.Slice())
	if err != nil {
		return err
	}
	var idx [8]byte
	binary.LittleEndian.PutUint64(idx[:], index)
	if _, err := xof.Write(context.Slice()); err != nil {
		return err
	}
	if _, err := xof.Write(idx[:]); err != nil {
		return err
	}
	_, err = io.ReadFull(xof, out)
	return err
}
