package chunkproof

import "github.com/liteseed/weave-index/types"

// TxPathResult is the outcome of validating a tx_path: the owning
// transaction's data_root plus its [tx_start, tx_end) window within the
// block, and the recall bucket offset that located it.
type TxPathResult struct {
	DataRoot           types.ChunkRoot
	TxStart            types.WeaveOffset
	TxEnd              types.WeaveOffset
	RecallBucketOffset types.WeaveOffset
}

// ValidateTxPath resolves chunkOffset to its owning block via index,
// applies strict data split alignment once chunkOffset crosses
// strictThreshold, and Merkle-verifies txPath against that block's
// tx_root.
func ValidateTxPath(txPath types.Path, chunkOffset types.WeaveOffset, index ChunkOffsetLookup, strictThreshold types.WeaveOffset) (TxPathResult, bool) {
	block, ok := index.GetByChunkOffsetFull(chunkOffset)
	if !ok {
		return TxPathResult{}, false
	}

	if chunkOffset.GreaterOrEqual(strictThreshold) {
		diff := chunkOffset.Sub(strictThreshold)
		aligned := diff.QuoTrunc(types.NewWeaveInt(types.DataChunkSize)).Mul(types.NewWeaveInt(types.DataChunkSize))
		chunkOffset = strictThreshold.Add(aligned)
	}

	recallBucketOffset := chunkOffset.Sub(block.WeaveSize)

	if block.TxRoot == nil {
		return TxPathResult{}, false
	}
	result, ok := ValidatePath(types.ChunkRoot(*block.TxRoot), recallBucketOffset, block.BlockSize, txPath)
	if !ok {
		return TxPathResult{}, false
	}

	validateTxPathTotal.Inc()
	return TxPathResult{
		DataRoot:           result.Root,
		TxStart:            result.Start,
		TxEnd:              result.End,
		RecallBucketOffset: recallBucketOffset,
	}, true
}
