package blockindex

import (
	"github.com/liteseed/weave-index/types"
)

// blockIdxByChunkOffset is the binary search described by the block
// index's offset-indexing algorithm: find the owning block for a byte
// offset in a descending-weave_size, ascending-index array, then sweep
// forward to the greatest index of any zero-size-block tie run.
func (idx *Index) blockIdxByChunkOffset(offset types.WeaveOffset) (int, bool) {
	if offset.LessThan(idx.chunkOffsetA) || offset.GreaterThan(idx.chunkOffsetB) {
		return 0, false
	}

	lastIdx := len(idx.entries) - 1
	idxA := lastIdx
	idxB := 0
	idxC := (idxA + idxB) / 2
	coC := weaveSizeOf(idx.entries[idxC])

	var retBlockIdx int
	for {
		if coC.Cmp(offset) == 0 {
			retBlockIdx = idxC - 1
			break
		}
		if idxC == idxB {
			retBlockIdx = idxB
			break
		}
		if coC.GreaterThan(offset) {
			idxB = idxC
		} else {
			idxA = idxC
		}
		idxC = (idxA + idxB) / 2
		coC = weaveSizeOf(idx.entries[idxC])
	}

	// idx_c - 1 underflows to -1 only at the degenerate boundary where
	// offset equals the tip's own weave_size (chunk_offset_b) and the
	// search converges on index 0 via the equality branch rather than
	// the idx_c == idx_b branch; the owning block in that case is the
	// tip itself.
	if retBlockIdx < 0 {
		retBlockIdx = 0
	}

	ret := idx.entries[retBlockIdx]
	for retBlockIdx < lastIdx {
		probe := idx.entries[retBlockIdx+1]
		if ret.WeaveSize != probe.WeaveSize {
			break
		}
		retBlockIdx++
		ret = probe
	}
	return retBlockIdx, true
}

// GetByChunkOffsetFull resolves offset to its owning block and returns
// the fully decoded entry. Unlike GetByHeightFull, an empty tx_root
// collapses the whole lookup to absent (§9): valid chunk offsets never
// fall inside an empty, zero-width block.
func (idx *Index) GetByChunkOffsetFull(offset types.WeaveOffset) (types.BlockEntry, bool) {
	i, ok := idx.blockIdxByChunkOffset(offset)
	if !ok {
		lookupMissesTotal.Inc()
		return types.BlockEntry{}, false
	}
	if idx.entries[i].TxRoot == "" {
		idx.countLookup(false)
		return types.BlockEntry{}, false
	}

	be, ok := idx.decodeAt(i)
	idx.countLookup(ok)
	return be, ok
}

// GetByChunkOffsetIndepHash returns the decoded independent hash of the
// block owning offset.
func (idx *Index) GetByChunkOffsetIndepHash(offset types.WeaveOffset) (types.IndepHash, bool) {
	i, ok := idx.blockIdxByChunkOffset(offset)
	if !ok {
		lookupMissesTotal.Inc()
		return types.IndepHash{}, false
	}
	v, err := types.DecodeIndepHash(idx.entries[i].Hash)
	idx.countLookup(err == nil)
	if err != nil {
		return types.IndepHash{}, false
	}
	return v, true
}

// GetByChunkOffsetWeaveSize returns the decoded weave size of the block
// owning offset.
func (idx *Index) GetByChunkOffsetWeaveSize(offset types.WeaveOffset) (types.WeaveSize, bool) {
	i, ok := idx.blockIdxByChunkOffset(offset)
	if !ok {
		lookupMissesTotal.Inc()
		return types.WeaveSize{}, false
	}
	v, err := types.ParseWeaveSize(idx.entries[i].WeaveSize)
	idx.countLookup(err == nil)
	if err != nil {
		return types.WeaveSize{}, false
	}
	return v, true
}

// GetByChunkOffsetTxRoot returns the decoded tx_root of the block owning
// offset.
func (idx *Index) GetByChunkOffsetTxRoot(offset types.WeaveOffset) (types.TxRoot, bool) {
	i, ok := idx.blockIdxByChunkOffset(offset)
	if !ok {
		lookupMissesTotal.Inc()
		return types.TxRoot{}, false
	}
	v, err := types.DecodeTxRoot(idx.entries[i].TxRoot)
	idx.countLookup(err == nil)
	if err != nil {
		return types.TxRoot{}, false
	}
	return v, true
}

// GetByChunkOffsetIndepHashOrig returns the untouched source hash
// string of the block owning offset.
func (idx *Index) GetByChunkOffsetIndepHashOrig(offset types.WeaveOffset) (string, bool) {
	i, ok := idx.blockIdxByChunkOffset(offset)
	idx.countLookup(ok)
	if !ok {
		return "", false
	}
	return idx.entries[i].Hash, true
}

// GetByChunkOffsetWeaveSizeOrig returns the untouched source weave_size
// string of the block owning offset.
func (idx *Index) GetByChunkOffsetWeaveSizeOrig(offset types.WeaveOffset) (string, bool) {
	i, ok := idx.blockIdxByChunkOffset(offset)
	idx.countLookup(ok)
	if !ok {
		return "", false
	}
	return idx.entries[i].WeaveSize, true
}

// GetByChunkOffsetTxRootOrig returns the untouched source tx_root string
// (possibly empty) of the block owning offset.
func (idx *Index) GetByChunkOffsetTxRootOrig(offset types.WeaveOffset) (string, bool) {
	i, ok := idx.blockIdxByChunkOffset(offset)
	idx.countLookup(ok)
	if !ok {
		return "", false
	}
	return idx.entries[i].TxRoot, true
}
