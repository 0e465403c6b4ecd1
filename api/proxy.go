package api

import (
	"context"
	"sync"
)

// ProxySource supplies one proxy URL per outgoing request. Implementations
// may rotate addresses; the client treats the source as an opaque capability.
type ProxySource interface {
	URL(ctx context.Context) (string, error)
}

// RoundRobinProxies cycles through a fixed list of proxy URLs.
type RoundRobinProxies struct {
	mu   sync.Mutex
	urls []string
	next int
}

// NewRoundRobinProxies creates a round-robin source over urls.
// Returns nil when urls is empty, which disables proxying.
func NewRoundRobinProxies(urls []string) *RoundRobinProxies {
	if len(urls) == 0 {
		return nil
	}
	return &RoundRobinProxies{urls: urls}
}

func (r *RoundRobinProxies) URL(_ context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := r.urls[r.next]
	r.next = (r.next + 1) % len(r.urls)
	return u, nil
}
