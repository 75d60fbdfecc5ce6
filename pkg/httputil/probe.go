package httputil

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/matzehuels/wingetreport/pkg/errors"
	"github.com/matzehuels/wingetreport/pkg/observability"
)

// DefaultProbeTimeout bounds a single probe.
const DefaultProbeTimeout = 5 * time.Second

// Prober checks whether remote resources exist.
type Prober interface {
	Probe(ctx context.Context, url string) bool
}

// HeadProber probes with HEAD requests bounded by a per-attempt timeout.
// It is safe for concurrent use.
type HeadProber struct {
	http    *http.Client
	timeout time.Duration
}

// NewProber creates a HeadProber. A non-positive timeout selects DefaultProbeTimeout.
func NewProber(timeout time.Duration) *HeadProber {
	return NewProberWithClient(NewHTTPClient(), timeout)
}

// NewProberWithClient creates a HeadProber that sends requests through c.
func NewProberWithClient(c *http.Client, timeout time.Duration) *HeadProber {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	return &HeadProber{http: c, timeout: timeout}
}

// Timeout returns the per-probe timeout.
func (p *HeadProber) Timeout() time.Duration { return p.timeout }

// Probe reports whether rawURL answered a HEAD request with a 2xx status
// within the timeout. Redirects are followed. Transport failures reach the
// HTTP hooks as PROBE_FAILED errors; a non-2xx answer is only a miss.
func (p *HeadProber) Probe(ctx context.Context, rawURL string) bool {
	host, path := splitURL(rawURL)
	hooks := observability.HTTP()

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		hooks.OnError(ctx, http.MethodHead, host, path, probeError(err, rawURL))
		return false
	}
	req.Header.Set("User-Agent", UserAgent)

	hooks.OnRequest(ctx, http.MethodHead, host, path)
	start := time.Now()
	resp, err := p.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, http.MethodHead, host, path, probeError(err, rawURL))
		return false
	}
	resp.Body.Close()
	hooks.OnResponse(ctx, http.MethodHead, host, path, resp.StatusCode, time.Since(start))

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func probeError(err error, rawURL string) error {
	return errors.Wrap(errors.ErrCodeProbeFailed, err, "HEAD %s", rawURL)
}

func splitURL(raw string) (host, path string) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", raw
	}
	return u.Host, u.Path
}

// Ensure HeadProber implements Prober.
var _ Prober = (*HeadProber)(nil)
