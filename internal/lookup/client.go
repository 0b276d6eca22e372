// Package lookup resolves postal codes to street addresses through a
// OneMap-compatible search API. Lookups are best effort: every failure is
// reported as NotFound and never as an error.
package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"github.com/mesh-intelligence/addressbook/pkg/types"
)

// NotFound is returned by Lookup when no address could be retrieved.
const NotFound = "Address not found."

const (
	DefaultBaseURL = "https://developers.onemap.sg"
	DefaultTimeout = 5 * time.Second

	searchPath      = "/commonapi/search"
	maxResponseSize = 1 << 20
)

var errNoMatch = errors.New("no matching address")

// responseSchemaJSON describes the subset of the search response we read.
const responseSchemaJSON = `{
  "type": "object",
  "required": ["found", "results"],
  "properties": {
    "found": {"type": "integer", "minimum": 0},
    "results": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["ADDRESS"],
        "properties": {
          "ADDRESS": {"type": "string"},
          "POSTAL": {"type": "string"}
        }
      }
    }
  }
}`

var responseSchema = mustSchema(responseSchemaJSON)

func mustSchema(s string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic(fmt.Sprintf("lookup: invalid response schema: %v", err))
	}
	return schema
}

type searchResponse struct {
	Found   int `json:"found"`
	Results []struct {
		Address string `json:"ADDRESS"`
		Postal  string `json:"POSTAL"`
	} `json:"results"`
}

// Client queries the search API. The zero value is not usable; call New.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *Cache
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithCache stores successful lookups in cache and consults it first.
func WithCache(cache *Cache) Option {
	return func(c *Client) { c.cache = cache }
}

// WithLogger sets the logger. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New returns a Client with the given options applied.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: DefaultTimeout},
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup returns the address registered for code, or NotFound. The code's
// visibility flag has no effect.
func (c *Client) Lookup(ctx context.Context, code types.PostalCode) string {
	key := code.String()
	if c.cache != nil {
		addr, ok, err := c.cache.Get(ctx, key)
		switch {
		case err != nil:
			c.logger.Warn("address cache read failed", "postal_code", key, "error", err)
		case ok:
			c.logger.Debug("address cache hit", "postal_code", key)
			return addr
		}
	}

	addr, err := c.fetch(ctx, key)
	if err != nil {
		c.logger.Debug("address lookup failed", "postal_code", key, "error", err)
		return NotFound
	}

	if c.cache != nil {
		if err := c.cache.Put(ctx, key, addr); err != nil {
			c.logger.Warn("address cache write failed", "postal_code", key, "error", err)
		}
	}
	return addr
}

func (c *Client) fetch(ctx context.Context, code string) (string, error) {
	q := url.Values{}
	q.Set("searchVal", code)
	q.Set("returnGeom", "N")
	q.Set("getAddrDetails", "Y")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+searchPath+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	result, err := responseSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return "", fmt.Errorf("validating response: %w", err)
	}
	if !result.Valid() {
		return "", fmt.Errorf("response does not match schema: %v", result.Errors())
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	return pickAddress(sr, code)
}

// pickAddress prefers the first result whose postal code matches exactly and
// falls back to the first result.
func pickAddress(sr searchResponse, code string) (string, error) {
	if sr.Found == 0 || len(sr.Results) == 0 {
		return "", errNoMatch
	}
	addr := sr.Results[0].Address
	for _, r := range sr.Results {
		if r.Postal == code {
			addr = r.Address
			break
		}
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return "", errNoMatch
	}
	return addr, nil
}
