package kdf

import (
	"crypto/sha256"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/hkdf"
)

// hkdfLabel domain-separates this package's HKDF use from any other
// HKDF-SHA256 consumer sharing a master key.
const hkdfLabel = "keymill.subkey.v1"

// HKDFDeriver derives subkeys with HKDF-SHA256. The context, index and
// requested length are all bound into the info parameter, so no two distinct
// derivations share output.
type HKDFDeriver struct{}

// Derive fills out with the subkey for (key, context, index).
func (HKDFDeriver) Derive(out []byte, index uint64, context Context, key MasterKey) error {
	info := make([]byte, 0, len(hkdfLabel)+ContextBytes+9)
	info = append(info, hkdfLabel...)
	info = append(info, context.Slice()...)
	info = binary.LittleEndian.AppendUint64(info, index)
	info = append(info, byte(len(out)))

	r := hkdf.New(sha256.New, key.Slice(), nil, info)
	_, err := io.ReadFull(r, out)
	return err
}
