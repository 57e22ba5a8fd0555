package enumtype

import (
	"crypto/sha256"
	"encoding/binary"
)

// Domain prefix for enum value hashing. The version suffix enables
// future algorithm migration without silently changing hash outputs.
const hashDomain = "enumeral/value/v1"

// HashValue computes a pure hash of (type identity, raw). Two values
// that are equal under the equality rule hash identically regardless of
// which key or casing produced them; values of distinct types hash to
// unrelated outputs thanks to the type name in the preimage.
//
// Format: SHA-256(domain 0x00 foldedTypeName 0x00 kind 0x00 scalar),
// truncated to the first 8 bytes. The null separators prevent boundary
// ambiguity between the preimage fields.
func HashValue(v Value) uint64 {
	h := sha256.New()
	h.Write([]byte(hashDomain))
	h.Write([]byte{0x00})
	h.Write([]byte(foldName(v.def.Name())))
	h.Write([]byte{0x00})
	h.Write([]byte{byte(v.raw.Kind())})
	h.Write([]byte{0x00})
	switch v.raw.Kind() {
	case KindIntegral:
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], uint64(v.raw.Int64()))
		h.Write(buf[:])
	case KindTextual:
		h.Write([]byte(v.raw.Text()))
	}
	sum := h.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8])
}
