package blockindex

import "regexp"

// entry is the snapshot (wire) form of one block index record: three
// plain strings, decoded lazily by the Get* accessors so that callers
// who only need one field never pay for decoding the rest.
type entry struct {
	TxRoot    string `json:"tx_root"`
	WeaveSize string `json:"weave_size"`
	Hash      string `json:"hash"`
}

var (
	txRootRegexp    = regexp.MustCompile(`(?i)^[-_A-Za-z0-9]{43}$`)
	weaveSizeRegexp = regexp.MustCompile(`^[0-9]+$`)
	hashRegexp      = regexp.MustCompile(`(?i)^[-_A-Za-z0-9]{64}$`)
)
