package crawl

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultInterval is the pause between two requests to the same host.
const DefaultInterval = 2 * time.Second

// Limiter paces requests per host.
type Limiter interface {
	// Wait blocks until a request to the host is allowed.
	Wait(ctx context.Context, host string) error
}

var _ Limiter = (*HostLimiter)(nil)

// HostLimiter spaces requests to each host at least Interval apart. Hosts
// are paced independently. A non-positive interval disables pacing.
type HostLimiter struct {
	interval time.Duration

	mu    sync.Mutex
	hosts map[string]*rate.Limiter
}

// NewHostLimiter returns a HostLimiter with the given interval.
func NewHostLimiter(interval time.Duration) *HostLimiter {
	return &HostLimiter{
		interval: interval,
		hosts:    make(map[string]*rate.Limiter),
	}
}

// Interval returns the configured spacing between requests.
func (l *HostLimiter) Interval() time.Duration {
	return l.interval
}

// Wait blocks until the host's interval has passed since its previous
// request. The first request to a host does not wait.
func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	if l.interval <= 0 {
		return ctx.Err()
	}
	return l.bucket(host).Wait(ctx)
}

func (l *HostLimiter) bucket(host string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.hosts[host]
	if !ok {
		b = rate.NewLimiter(rate.Every(l.interval), 1)
		l.hosts[host] = b
	}
	return b
}
