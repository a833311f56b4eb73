package chunkproof

import (
	"bytes"
	"testing"

	"github.com/liteseed/weave-index/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIndex struct {
	entry types.BlockEntry
	ok    bool
}

func (f fakeIndex) GetByChunkOffsetFull(types.WeaveOffset) (types.BlockEntry, bool) {
	return f.entry, f.ok
}

func txRootForSingleLeafBlock(data []byte, blockSize int64) types.TxRoot {
	note := noteBytes(blockSize)
	var r types.TxRoot
	copy(r[:], hashLeaf(data, note))
	return r
}

func TestValidateTxPathSingleLeafBlock(t *testing.T) {
	dataRoot := bytes.Repeat([]byte{0x55}, types.ChunkRootLength)
	blockSize := int64(1000)
	txRoot := txRootForSingleLeafBlock(dataRoot, blockSize)

	block := types.BlockEntry{
		WeaveSize: types.NewWeaveInt(1000),
		BlockSize: types.NewWeaveInt(blockSize),
		TxRoot:    &txRoot,
	}
	index := fakeIndex{entry: block, ok: true}

	txPath := types.Path(append(append([]byte{}, dataRoot...), noteBytes(blockSize)...))

	// strictThreshold far above the query so no alignment snapping
	// applies; recall_bucket_offset lands negative (the query sits
	// inside the block, short of its upper weave_size boundary) and
	// ValidatePath clamps it to 0, per the upstream algorithm's own
	// recall_bucket_offset = chunk_offset - block.weave_size formula.
	result, ok := ValidateTxPath(txPath, types.NewWeaveInt(500), index, types.NewWeaveInt(10_000_000))
	require.True(t, ok)
	assert.Equal(t, "-500", result.RecallBucketOffset.String())
	assert.Equal(t, "0", result.TxStart.String())
	assert.Equal(t, "1000", result.TxEnd.String())
	assert.Equal(t, dataRoot, result.DataRoot[:])
}

func TestValidateTxPathAppliesStrictAlignment(t *testing.T) {
	dataRoot := bytes.Repeat([]byte{0x66}, types.ChunkRootLength)
	blockSize := int64(1_000_000)
	txRoot := txRootForSingleLeafBlock(dataRoot, blockSize)

	block := types.BlockEntry{
		WeaveSize: types.NewWeaveInt(0),
		BlockSize: types.NewWeaveInt(blockSize),
		TxRoot:    &txRoot,
	}
	index := fakeIndex{entry: block, ok: true}

	txPath := types.Path(append(append([]byte{}, dataRoot...), noteBytes(blockSize)...))

	// chunkOffset = 301000, strictThreshold = 1000: diff = 300000,
	// which snaps down to one full DataChunkSize (262144) past the
	// threshold, giving an aligned chunkOffset of 263144.
	result, ok := ValidateTxPath(txPath, types.NewWeaveInt(301000), index, types.NewWeaveInt(1000))
	require.True(t, ok)
	assert.Equal(t, "263144", result.RecallBucketOffset.String())
}

func TestValidateTxPathFailsWhenOffsetUnowned(t *testing.T) {
	index := fakeIndex{ok: false}
	_, ok := ValidateTxPath(types.Path{}, types.NewWeaveInt(1), index, types.NewWeaveInt(1000))
	assert.False(t, ok)
}

func TestValidateTxPathFailsOnEmptyBlockTxRoot(t *testing.T) {
	block := types.BlockEntry{WeaveSize: types.NewWeaveInt(100), BlockSize: types.NewWeaveInt(100)}
	index := fakeIndex{entry: block, ok: true}
	_, ok := ValidateTxPath(types.Path{}, types.NewWeaveInt(1), index, types.NewWeaveInt(1000))
	assert.False(t, ok)
}
