package mock

import (
	"context"

	atbs "github.com/Fawaz-I/automate-the-boring-stuff"
)

var _ atbs.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of atbs.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
