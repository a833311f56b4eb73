// Package chunkproof implements the two-stage Merkle proof verifier
// that decides whether a retrieved chunk legitimately belongs at a
// claimed byte offset in the weave: a tx_path rooted at a block's
// tx_root, then a data_path rooted at the owning transaction's
// data_root.
package chunkproof

import (
	"github.com/liteseed/weave-index/crypto"
	"github.com/liteseed/weave-index/types"
)

// ChunkOffsetLookup is the only capability the validator needs from a
// block index. Depending on this narrow interface rather than a
// concrete *blockindex.Index keeps the validator a pure function over
// synthetic fixtures in tests.
type ChunkOffsetLookup interface {
	GetByChunkOffsetFull(offset types.WeaveOffset) (types.BlockEntry, bool)
}

// ChunkJSON is the wire form of a retrieved chunk (§6.4): three
// base64url byte strings plus a packing tag.
type ChunkJSON struct {
	TxPath   string `json:"tx_path"`
	DataPath string `json:"data_path"`
	Chunk    string `json:"chunk"`
	Packing  string `json:"packing"`
}

// ChunkProof is the decoded form of a ChunkJSON.
type ChunkProof struct {
	TxPath   types.Path
	DataPath types.Path
	Chunk    []byte
	Packing  types.Packing
}

// Decode parses a ChunkJSON's base64url fields and packing tag. Unknown
// packing values fail decoding (§6.4).
func Decode(c ChunkJSON) (ChunkProof, error) {
	chunk, err := crypto.Base64URLDecode(c.Chunk)
	if err != nil {
		return ChunkProof{}, err
	}
	txPath, err := crypto.Base64URLDecode(c.TxPath)
	if err != nil {
		return ChunkProof{}, err
	}
	dataPath, err := crypto.Base64URLDecode(c.DataPath)
	if err != nil {
		return ChunkProof{}, err
	}
	packing, err := types.ParsePacking(c.Packing)
	if err != nil {
		return ChunkProof{}, err
	}
	return ChunkProof{
		TxPath:   txPath,
		DataPath: dataPath,
		Chunk:    chunk,
		Packing:  packing,
	}, nil
}
