package doctor

import (
	"context"
	"errors"
)

// ErrNotAvailable covers both a missing doctor identifier and a doctor whose
// availability flag is cleared; callers cannot tell the two apart.
var ErrNotAvailable = errors.New("doctor not found or not available")

type Repository interface {
	// GetAvailable returns the doctor only when it exists and is currently
	// available.
	GetAvailable(ctx context.Context, doctorID string) (*Doctor, error)
	ListAvailable(ctx context.Context) ([]*Doctor, error)
}
