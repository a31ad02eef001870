package appointment

import "context"

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	ListByDate(ctx context.Context, date string) ([]*DayEntry, error)
	MaxRowID(ctx context.Context) (int64, error)
}
