package patient

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no patient carries the requested identifier.
var ErrNotFound = errors.New("patient not found")

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByPatientID(ctx context.Context, patientID string) (*Patient, error)
	List(ctx context.Context) ([]*Patient, error)
	MaxRowID(ctx context.Context) (int64, error)
}
