package doctor

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListAvailable returns every doctor whose availability flag is set, in
// storage order.
func (s *Service) ListAvailable(ctx context.Context) ([]*Doctor, error) {
	return s.repo.ListAvailable(ctx)
}

// GetAvailable looks a doctor up by business identifier, treating a cleared
// availability flag the same as a missing row.
func (s *Service) GetAvailable(ctx context.Context, doctorID string) (*Doctor, error) {
	return s.repo.GetAvailable(ctx, doctorID)
}
