package patient

import (
	"context"
	"strings"

	"github.com/clinicdesk/clinicdesk/internal/platform/db"
	"github.com/clinicdesk/clinicdesk/internal/platform/ident"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register persists a new patient. The gender code is normalized to upper
// case, the registration date defaults to today, and the patient identifier
// is generated from the current maximum internal row id. On success the
// generated fields are set on p.
func (s *Service) Register(ctx context.Context, p *Patient) error {
	p.Gender = strings.ToUpper(p.Gender)
	if p.RegDate == "" {
		p.RegDate = db.Today()
	}

	max, err := s.repo.MaxRowID(ctx)
	if err != nil {
		return err
	}
	p.PatientID = ident.Format(ident.PatientPrefix, max+1)

	return s.repo.Create(ctx, p)
}

// Get looks a patient up by business identifier.
func (s *Service) Get(ctx context.Context, patientID string) (*Patient, error) {
	return s.repo.GetByPatientID(ctx, patientID)
}

// List returns all patients, most recent registrations first.
func (s *Service) List(ctx context.Context) ([]*Patient, error) {
	return s.repo.List(ctx)
}
