package types

import (
	"fmt"

	"github.com/liteseed/weave-index/crypto"
)

// IndepHash identifies a block.
type IndepHash [IndepHashLength]byte

// TxRoot is the Merkle root over a block's transactions.
type TxRoot [TxRootLength]byte

// ChunkRoot is the Merkle root over a transaction's chunks, or an
// interior node's id, within a Merkle proof walk.
type ChunkRoot [ChunkRootLength]byte

// Note is a 32-byte big-endian split point embedded in a Merkle proof.
// Only the low 16 bytes are numerically significant; see NoteValue.
type Note [NoteLength]byte

// Path is the flat byte encoding of a Merkle inclusion proof.
type Path []byte

// NoteValue decodes the numeric half of a Note: the low 16 bytes,
// interpreted as a signed 128-bit big-endian integer. The high 16 bytes
// take part in hashing only and are never decoded; this mirrors a known
// compromise in the upstream protocol pending wider numeric capacity.
func (n Note) NoteValue() (WeaveOffset, error) {
	return FromSignedBigEndian128(n[16:])
}

// DecodeIndepHash decodes a base64url (no padding) string into an
// IndepHash, failing on any length or alphabet mismatch.
func DecodeIndepHash(s string) (IndepHash, error) {
	var h IndepHash
	b, err := crypto.Base64URLDecode(s)
	if err != nil {
		return h, err
	}
	if len(b) != IndepHashLength {
		return h, fmt.Errorf("indep_hash decodes to %d bytes, want %d", len(b), IndepHashLength)
	}
	copy(h[:], b)
	return h, nil
}

// DecodeTxRoot decodes a base64url (no padding) string into a TxRoot.
func DecodeTxRoot(s string) (TxRoot, error) {
	var r TxRoot
	b, err := crypto.Base64URLDecode(s)
	if err != nil {
		return r, err
	}
	if len(b) != TxRootLength {
		return r, fmt.Errorf("tx_root decodes to %d bytes, want %d", len(b), TxRootLength)
	}
	copy(r[:], b)
	return r, nil
}

// DecodeChunkRoot decodes a base64url (no padding) string into a
// ChunkRoot.
func DecodeChunkRoot(s string) (ChunkRoot, error) {
	var r ChunkRoot
	b, err := crypto.Base64URLDecode(s)
	if err != nil {
		return r, err
	}
	if len(b) != ChunkRootLength {
		return r, fmt.Errorf("chunk root decodes to %d bytes, want %d", len(b), ChunkRootLength)
	}
	copy(r[:], b)
	return r, nil
}
