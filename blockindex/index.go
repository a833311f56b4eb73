// Package blockindex implements the immutable, height- and offset-
// indexed summary of every block described by the snapshot JSON format:
// independent hash, cumulative weave size, and transaction-tree root.
// Once loaded it is read-only and safe to share across goroutines.
package blockindex

import (
	"encoding/json"
	"fmt"

	"github.com/liteseed/weave-index/types"
)

// Index is a loaded, validated block index. Index 0 is the chain tip;
// index Len()-1 is genesis. It must be constructed via Load or Download,
// never via a zero Index{}, since chunk_offset_a/b are only populated
// on success.
type Index struct {
	entries      []entry
	chunkOffsetA types.WeaveOffset // weave_size of the last (genesis-most) entry
	chunkOffsetB types.WeaveOffset // weave_size of the first (tip) entry
}

// Len returns the number of blocks held by the index.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Load parses and validates a snapshot (§6.1 wire format), returning a
// populated Index. On any invariant violation the returned error
// identifies the offending index or field and no partial state escapes
// — the caller's existing index, if any, is left untouched because Load
// returns a new value rather than mutating in place.
func Load(snapshotBytes []byte) (*Index, error) {
	var raw []entry
	if err := json.Unmarshal(snapshotBytes, &raw); err != nil {
		return nil, fmt.Errorf("block index: parse snapshot: %w", err)
	}
	idx, err := newFromRaw(raw)
	if err != nil {
		return nil, err
	}
	loadsTotal.Inc()
	return idx, nil
}

func newFromRaw(raw []entry) (*Index, error) {
	if len(raw) == 0 {
		return nil, ErrEmptySnapshot
	}
	if err := validateEntries(raw); err != nil {
		return nil, err
	}

	chunkOffsetA, err := types.ParseWeaveSize(raw[len(raw)-1].WeaveSize)
	if err != nil {
		return nil, fmt.Errorf("block index: weave_size at index %d: %w", len(raw)-1, err)
	}
	chunkOffsetB, err := types.ParseWeaveSize(raw[0].WeaveSize)
	if err != nil {
		return nil, fmt.Errorf("block index: weave_size at index 0: %w", err)
	}

	return &Index{
		entries:      raw,
		chunkOffsetA: chunkOffsetA,
		chunkOffsetB: chunkOffsetB,
	}, nil
}

func validateEntries(raw []entry) error {
	for i, e := range raw {
		if e.TxRoot != "" && !txRootRegexp.MatchString(e.TxRoot) {
			return fmt.Errorf("block index: entry %d: tx_root is not 43-char base64url", i)
		}
		if !weaveSizeRegexp.MatchString(e.WeaveSize) {
			return fmt.Errorf("block index: entry %d: weave_size is not decimal", i)
		}
		if !hashRegexp.MatchString(e.Hash) {
			return fmt.Errorf("block index: entry %d: hash is not 64-char base64url", i)
		}
	}

	prev, err := types.ParseWeaveSize(raw[len(raw)-1].WeaveSize)
	if err != nil {
		return fmt.Errorf("block index: entry %d: %w", len(raw)-1, err)
	}
	for i := len(raw) - 2; i >= 0; i-- {
		cur, err := types.ParseWeaveSize(raw[i].WeaveSize)
		if err != nil {
			return fmt.Errorf("block index: entry %d: %w", i, err)
		}
		if prev.GreaterThan(cur) {
			return fmt.Errorf("block index: entry %d: weave_size %s > entry %d weave_size %s", i+1, prev, i, cur)
		}
		prev = cur
	}
	return nil
}

// Save re-serializes the index to its canonical snapshot form: compact
// JSON with each entry's fields in tx_root, weave_size, hash order.
// Because entry keeps the original strings exactly, and entries are
// never reordered or re-decoded, Save(Load(s)) is byte-identical to s
// whenever s is itself in that canonical form.
func (idx *Index) Save() ([]byte, error) {
	b, err := json.Marshal(idx.entries)
	if err != nil {
		return nil, fmt.Errorf("block index: marshal snapshot: %w", err)
	}
	return b, nil
}

func weaveSizeOf(e entry) types.WeaveSize {
	// entries are only ever constructed through validateEntries, which
	// has already proven every weave_size parses.
	w, _ := types.ParseWeaveSize(e.WeaveSize)
	return w
}
