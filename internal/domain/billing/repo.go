package billing

import "context"

type Repository interface {
	Create(ctx context.Context, b *Bill) error
	MaxRowID(ctx context.Context) (int64, error)
}
