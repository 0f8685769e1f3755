package scrape

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// hostLimiter spaces out requests per hostname so polling several portals on
// the same host stays polite.
type hostLimiter struct {
	mu    sync.Mutex
	hosts map[string]*rate.Limiter
	r     rate.Limit
	burst int
}

func newHostLimiter(reqPerSec float64, burst int) *hostLimiter {
	return &hostLimiter{
		hosts: make(map[string]*rate.Limiter),
		r:     rate.Limit(reqPerSec),
		burst: burst,
	}
}

func (hl *hostLimiter) waitURL(ctx context.Context, raw string) error {
	host := "_"
	if u, err := url.Parse(raw); err == nil && u.Host != "" {
		host = u.Host
	}

	hl.mu.Lock()
	lim, ok := hl.hosts[host]
	if !ok {
		lim = rate.NewLimiter(hl.r, hl.burst)
		hl.hosts[host] = lim
	}
	hl.mu.Unlock()

	return lim.Wait(ctx)
}
