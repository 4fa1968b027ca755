// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package common

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"regexp"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
)

type RoundTripMiddleware = func(req *http.Request, next http.RoundTripper) (*http.Response, error)

// WrapHTTPClient installs the middleware in front of the current transport of the client.
func WrapHTTPClient(client *http.Client, wrap RoundTripMiddleware) {
	if client == nil {
		return
	}
	base := client.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	client.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return wrap(req, base)
	})
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

var numericPathSegment = regexp.MustCompile(`/\d+`)

// ExtractPath strips numeric ids from the url path to keep the metric cardinality low.
func ExtractPath(req *http.Request) string {
	return numericPathSegment.ReplaceAllString(req.URL.Path, "/:id")
}

// Instrument records the duration of every request in the histogram.
// The histogram is expected to have the labels "path", "method" and "status".
func Instrument(hist *prometheus.HistogramVec, name string) RoundTripMiddleware {
	return func(req *http.Request, next http.RoundTripper) (*http.Response, error) {
		start := time.Now()
		resp, err := next.RoundTrip(req)

		status := "error"
		if resp != nil {
			status = strconv.Itoa(resp.StatusCode)
		}
		if err != nil || resp == nil || resp.StatusCode < 200 || resp.StatusCode >= 400 {
			slog.Warn("request failed", "client", name, "method", req.Method, "url", req.URL.String(), "status", status, "err", err)
		}

		hist.WithLabelValues(ExtractPath(req), req.Method, status).Observe(time.Since(start).Seconds())
		return resp, err
	}
}

// CacheTransport caches successful GET responses for a short amount of time.
type CacheTransport struct {
	cache *expirable.LRU[string, []byte]
}

func NewCacheTransport(cacheSize int, expiration time.Duration) *CacheTransport {
	return &CacheTransport{
		cache: expirable.NewLRU[string, []byte](cacheSize, nil, expiration),
	}
}

func (c *CacheTransport) Handler() RoundTripMiddleware {
	return func(req *http.Request, next http.RoundTripper) (*http.Response, error) {
		if req.Method != http.MethodGet {
			return next.RoundTrip(req)
		}

		key := cacheKey(req)
		if val, ok := c.cache.Get(key); ok {
			slog.Debug("cache hit", "url", req.URL.String())
			return responseFromBytes(val, req)
		}

		resp, err := next.RoundTrip(req)
		if err != nil {
			return resp, err
		}

		// only cache successful responses. A 404 must always reach the caller fresh.
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return resp, nil
		}

		v, err := httputil.DumpResponse(resp, true)
		if err != nil {
			slog.Error("could not dump response", "err", err)
			return resp, nil
		}

		c.cache.Add(key, v)
		return responseFromBytes(v, req)
	}
}

func responseFromBytes(v []byte, req *http.Request) (*http.Response, error) {
	resp, err := http.ReadResponse(bufio.NewReader(bytes.NewReader(v)), req)
	if err != nil {
		return nil, fmt.Errorf("could not read cached response: %w", err)
	}
	return resp, nil
}

func cacheKey(req *http.Request) string {
	h := sha256.New()
	h.Write([]byte(req.URL.String()))
	h.Write([]byte(req.Header.Get("Authorization")))
	return fmt.Sprintf("%x", h.Sum(nil))
}
