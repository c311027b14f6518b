package hal

import (
	"context"
	"time"
)

type hostTime struct{}

func (hostTime) Now() time.Time { return time.Now() }

func (hostTime) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
