package tinkoff

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/opsheet/date"
	"github.com/rs/zerolog"
)

// diskCache implements a simple disk cache for instrument search responses.
// Other requests go straight to the base transport: operations and prices must be fresh.
type diskCache struct {
	base   http.RoundTripper
	dir    string
	logger *zerolog.Logger
}

// cacheable reports whether the response to req can be served from disk.
func cacheable(req *http.Request) bool {
	return req.Method == http.MethodGet && strings.Contains(req.URL.Path, "/market/search/")
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	if !cacheable(req) {
		return c.base.RoundTrip(req)
	}
	// the key contains the day, so the cache expires every day.
	key := fmt.Sprintf("%s %s %s", date.Today(), req.Method, req.URL.String())
	key = fmt.Sprintf("opsheet-%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		c.logger.Debug().Str("path", req.URL.Path).Msg("disk cache hit")
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		c.logger.Warn().Err(err).Msg("cache write err (ignored)")
	}
	return resp, nil
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	content, err := os.ReadFile(filepath.Join(c.dir, key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	// DumpResponse reads the body and replaces it with an in-memory copy.
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.dir, key), content, 0o644)
}
