package medicine

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add persists a new stock row unconditionally; an existing row with the
// same name is never merged.
func (s *Service) Add(ctx context.Context, m *Medicine) error {
	return s.repo.Create(ctx, m)
}

// List returns all stock rows ordered by medicine name.
func (s *Service) List(ctx context.Context) ([]*Medicine, error) {
	return s.repo.List(ctx)
}
