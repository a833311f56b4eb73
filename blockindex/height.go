package blockindex

import (
	"github.com/liteseed/weave-index/types"
)

// Height is a block height; 0 is genesis.
type Height = uint64

func (idx *Index) heightToListIndex(h Height) (int, bool) {
	n := uint64(len(idx.entries))
	if h >= n {
		return 0, false
	}
	return int(n - 1 - h), true
}

// GetByHeightFull returns the fully decoded entry at height h.
func (idx *Index) GetByHeightFull(h Height) (types.BlockEntry, bool) {
	i, ok := idx.heightToListIndex(h)
	if !ok {
		lookupMissesTotal.Inc()
		return types.BlockEntry{}, false
	}
	be, ok := idx.decodeAt(i)
	idx.countLookup(ok)
	return be, ok
}

// GetByHeightIndepHash returns the decoded independent hash at height h.
func (idx *Index) GetByHeightIndepHash(h Height) (types.IndepHash, bool) {
	i, ok := idx.heightToListIndex(h)
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

// GetByHeightWeaveSize returns the decoded weave size at height h.
func (idx *Index) GetByHeightWeaveSize(h Height) (types.WeaveSize, bool) {
	i, ok := idx.heightToListIndex(h)
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

// GetByHeightTxRoot returns the decoded tx_root at height h, or false if
// absent (empty block) or the height is out of range.
func (idx *Index) GetByHeightTxRoot(h Height) (types.TxRoot, bool) {
	i, ok := idx.heightToListIndex(h)
	if !ok {
		lookupMissesTotal.Inc()
		return types.TxRoot{}, false
	}
	if idx.entries[i].TxRoot == "" {
		idx.countLookup(false)
		return types.TxRoot{}, false
	}
	v, err := types.DecodeTxRoot(idx.entries[i].TxRoot)
	idx.countLookup(err == nil)
	if err != nil {
		return types.TxRoot{}, false
	}
	return v, true
}

// GetByHeightIndepHashOrig returns the untouched source string.
func (idx *Index) GetByHeightIndepHashOrig(h Height) (string, bool) {
	i, ok := idx.heightToListIndex(h)
	idx.countLookup(ok)
	if !ok {
		return "", false
	}
	return idx.entries[i].Hash, true
}

// GetByHeightWeaveSizeOrig returns the untouched source string.
func (idx *Index) GetByHeightWeaveSizeOrig(h Height) (string, bool) {
	i, ok := idx.heightToListIndex(h)
	idx.countLookup(ok)
	if !ok {
		return "", false
	}
	return idx.entries[i].WeaveSize, true
}

// GetByHeightTxRootOrig returns the untouched source string (possibly
// empty, for an empty block).
func (idx *Index) GetByHeightTxRootOrig(h Height) (string, bool) {
	i, ok := idx.heightToListIndex(h)
	idx.countLookup(ok)
	if !ok {
		return "", false
	}
	return idx.entries[i].TxRoot, true
}

// decodeAt fully decodes the entry at list index i, computing block_size
// as weave_size[i] - weave_size[i+1], with weave_size[i+1] taken as 0
// for the genesis-most entry.
func (idx *Index) decodeAt(i int) (types.BlockEntry, bool) {
	weaveSize, err := types.ParseWeaveSize(idx.entries[i].WeaveSize)
	if err != nil {
		return types.BlockEntry{}, false
	}
	indepHash, err := types.DecodeIndepHash(idx.entries[i].Hash)
	if err != nil {
		return types.BlockEntry{}, false
	}

	var txRoot *types.TxRoot
	if idx.entries[i].TxRoot != "" {
		r, err := types.DecodeTxRoot(idx.entries[i].TxRoot)
		if err != nil {
			return types.BlockEntry{}, false
		}
		txRoot = &r
	}

	prevWeaveSize := types.NewWeaveInt(0)
	if i+1 < len(idx.entries) {
		prevWeaveSize, err = types.ParseWeaveSize(idx.entries[i+1].WeaveSize)
		if err != nil {
			return types.BlockEntry{}, false
		}
	}

	return types.BlockEntry{
		IndepHash: indepHash,
		WeaveSize: weaveSize,
		TxRoot:    txRoot,
		BlockSize: weaveSize.Sub(prevWeaveSize),
	}, true
}
