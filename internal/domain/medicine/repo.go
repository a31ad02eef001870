package medicine

import "context"

type Repository interface {
	Create(ctx context.Context, m *Medicine) error
	List(ctx context.Context) ([]*Medicine, error)
}
