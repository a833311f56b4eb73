package blockindex

import (
	"errors"
	"log"

	"github.com/liteseed/weave-index/peer"
)

// Download tries each peer URL strictly in order, populating the index
// from the first one that returns a body which both parses and
// validates as a snapshot. Earlier failures — transport or validation —
// are swallowed; only the last one is surfaced if every peer fails.
func Download(peerURLs []string) (*Index, error) {
	if len(peerURLs) == 0 {
		return nil, ErrNoValidPeer
	}

	var lastErr error = ErrNoValidPeer
	for _, url := range peerURLs {
		log.Printf("blockindex: fetching snapshot from %s", url)
		body, err := peer.New(url).FetchBlockIndex()
		if err != nil {
			log.Printf("blockindex: peer %s failed: %v", url, err)
			lastErr = err
			continue
		}
		idx, err := Load(body)
		if err != nil {
			log.Printf("blockindex: peer %s returned invalid snapshot: %v", url, err)
			lastErr = err
			continue
		}
		return idx, nil
	}
	return nil, errors.New("blockindex: all peers failed: " + lastErr.Error())
}
