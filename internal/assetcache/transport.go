package assetcache

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httputil"
)

// Verify Cache implements http.RoundTripper at compile time.
var _ http.RoundTripper = (*Cache)(nil)

// RoundTrip answers a request.
//
// Requests to another origin and non-GET requests go straight to the
// network. Manifest assets are served cache-first, with a network fetch
// written back on a miss. Other same-origin GETs are network-first with
// write-back, falling back to the cache when the network fails.
func (c *Cache) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet || !c.sameOrigin(req.URL) {
		return c.base.RoundTrip(req)
	}

	key := req.URL.RequestURI()
	if isManifest(key) {
		return c.cacheFirst(req, key)
	}
	return c.networkFirst(req, key)
}

func (c *Cache) cacheFirst(req *http.Request, key string) (*http.Response, error) {
	e, err := c.Lookup(req.Context(), key)
	if err != nil {
		c.log().WithError(err).WithField("url", key).Warn("cache lookup failed")
	}
	if e != nil {
		c.log().WithField("url", key).Debug("cache hit")
		return e.response(req), nil
	}
	return c.fetchAndStore(req, key)
}

func (c *Cache) networkFirst(req *http.Request, key string) (*http.Response, error) {
	resp, netErr := c.fetchAndStore(req, key)
	if netErr == nil {
		return resp, nil
	}

	e, err := c.Lookup(req.Context(), key)
	if err != nil || e == nil {
		return nil, netErr
	}
	c.log().WithField("url", key).WithError(netErr).Debug("network failed, serving cached copy")
	return e.response(req), nil
}

// fetchAndStore forwards req and stores a 200 response under key. The
// returned response carries a rewound body.
func (c *Cache) fetchAndStore(req *http.Request, key string) (*http.Response, error) {
	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))
	resp.ContentLength = int64(len(body))

	e := &Entry{
		URL:      key,
		Status:   resp.StatusCode,
		Header:   resp.Header.Clone(),
		Body:     body,
		StoredAt: c.now(),
	}
	if err := c.Put(req.Context(), e); err != nil {
		c.log().WithError(err).WithField("url", key).Warn("cache write-back failed")
	}
	return resp, nil
}

// Handler returns a reverse proxy to the origin that uses the cache as its
// transport.
func (c *Cache) Handler() http.Handler {
	origin := c.Origin()
	return &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(origin)
			r.Out.Host = origin.Host
		},
		Transport: c,
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			c.log().WithError(err).WithField("url", r.URL.RequestURI()).Warn("asset unavailable")
			http.Error(w, "asset unavailable offline", http.StatusBadGateway)
		},
	}
}
