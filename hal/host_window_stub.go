//go:build !cgo

package hal

import (
	"context"
	"fmt"
)

func RunWindow(_ context.Context, _ WindowConfig, _ func(h HAL) func() error) error {
	return fmt.Errorf("window mode requires cgo (build with CGO_ENABLED=1): %w", ErrNotImplemented)
}
