package blockindex

import "errors"

var (
	// ErrEmptySnapshot is returned by Load when given a zero-length
	// array. An index with no entries has no last element to anchor
	// chunk_offset_a/chunk_offset_b on, so it is rejected outright
	// rather than silently treating every query as absent.
	ErrEmptySnapshot = errors.New("block index: empty snapshot")

	// ErrNoValidPeer is returned by Download when peerURLs is empty.
	ErrNoValidPeer = errors.New("block index: no peer URL supplied")
)
