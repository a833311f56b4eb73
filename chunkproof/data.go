package chunkproof

import "github.com/liteseed/weave-index/types"

// DataPathResult is the outcome of validating a data_path: the size of
// the located chunk and how far its resolved start sits from the
// requested recall chunk offset.
type DataPathResult struct {
	ChunkSize  types.WeaveOffset
	OffsetDiff types.WeaveOffset
}

// ValidateDataPath Merkle-verifies dataPath against the data_root
// located by a prior ValidateTxPath call.
func ValidateDataPath(dataPath types.Path, tx TxPathResult) (DataPathResult, bool) {
	txSize := tx.TxEnd.Sub(tx.TxStart)
	recallChunkOffset := tx.RecallBucketOffset.Sub(tx.TxStart)

	result, ok := ValidatePath(tx.DataRoot, recallChunkOffset, txSize, dataPath)
	if !ok {
		return DataPathResult{}, false
	}

	validateDataPathTotal.Inc()
	return DataPathResult{
		ChunkSize:  result.End.Sub(result.Start),
		OffsetDiff: result.Start.Sub(recallChunkOffset),
	}, true
}
