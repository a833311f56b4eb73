package blockindex

import (
	"strconv"

	"github.com/tidwall/gjson"
)

// PeekLen reports how many entries a raw snapshot body contains without
// unmarshalling it, by counting the top-level JSON array elements.
func PeekLen(snapshotBytes []byte) (int, bool) {
	result := gjson.ParseBytes(snapshotBytes)
	if !result.IsArray() {
		return 0, false
	}
	return len(result.Array()), true
}

// PeekField reads a single field ("tx_root", "weave_size" or "hash") of
// a single entry from a raw snapshot body, without decoding the whole
// array into []entry first. Intended for large snapshots where a caller
// only needs one value and would otherwise pay to unmarshal everything
// just to throw the rest away.
//
// The returned string is still the raw, undecoded wire value — callers
// wanting a validated/decoded field should Load the snapshot and use the
// Get* accessors instead; PeekField trades that validation for speed.
func PeekField(snapshotBytes []byte, index int, field string) (string, bool) {
	switch field {
	case "tx_root", "weave_size", "hash":
	default:
		return "", false
	}
	path := fieldPath(index, field)
	result := gjson.GetBytes(snapshotBytes, path)
	if !result.Exists() {
		return "", false
	}
	return result.String(), true
}

func fieldPath(index int, field string) string {
	return strconv.Itoa(index) + "." + field
}
