package http

import (
	"context"
	"strings"
	"sync"

	atbs "github.com/Fawaz-I/automate-the-boring-stuff"
	"golang.org/x/time/rate"
)

var _ atbs.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out requests to each mirrored host. Hosts are
// matched case-insensitively and each gets its own token bucket of size
// one, so a slow host never delays requests to another.
type DomainLimiter struct {
	every rate.Limit

	mu    sync.Mutex
	hosts map[string]*rate.Limiter
}

// NewDomainLimiter returns a DomainLimiter admitting rps requests per
// second per host.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		every: rate.Limit(rps),
		hosts: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until host may be contacted again or ctx ends.
func (d *DomainLimiter) Wait(ctx context.Context, host string) error {
	return d.bucket(strings.ToLower(host)).Wait(ctx)
}

func (d *DomainLimiter) bucket(host string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	l, ok := d.hosts[host]
	if !ok {
		l = rate.NewLimiter(d.every, 1)
		d.hosts[host] = l
	}
	return l
}
