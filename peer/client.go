// Package peer provides the minimal HTTP transport the block index needs
// to download a snapshot from an Arweave node. It speaks exactly one
// endpoint; anything wider (transaction retrieval, wallet queries, chunk
// upload) belongs to a transaction-construction client, not here.
package peer

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"
)

// Client fetches a block index snapshot from a single Arweave node.
type Client struct {
	HTTP    *http.Client
	Gateway string
}

// New returns a Client bound to gateway with the 60-second per-request
// timeout the block index's download contract requires.
func New(gateway string) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: 60 * time.Second},
		Gateway: gateway,
	}
}

// FetchBlockIndex performs GET <gateway>/block_index and returns the raw
// response body. A status >= 400 is surfaced as ErrBadGateway wrapping
// the status and body.
func (c *Client) FetchBlockIndex() ([]byte, error) {
	return c.get("block_index")
}

func (c *Client) get(_path string) ([]byte, error) {
	u, err := url.Parse(c.Gateway)
	if err != nil {
		return nil, err
	}
	u.Path = path.Join(u.Path, _path)

	resp, err := c.HTTP.Get(u.String())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: %d: %s", ErrBadGateway, resp.StatusCode, string(body))
	}
	return body, nil
}
