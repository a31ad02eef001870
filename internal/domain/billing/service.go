package billing

import (
	"context"

	"github.com/clinicdesk/clinicdesk/internal/domain/patient"
	"github.com/clinicdesk/clinicdesk/internal/platform/ident"
)

type Service struct {
	repo     Repository
	patients patient.Repository
}

func NewService(repo Repository, patients patient.Repository) *Service {
	return &Service{repo: repo, patients: patients}
}

// Generate issues a bill for an existing patient. The status is derived from
// the amounts once, at creation. Returns the persisted bill together with
// the patient's name for the receipt output.
func (s *Service) Generate(ctx context.Context, patientID string, amount, paid float64) (*Bill, string, error) {
	p, err := s.patients.GetByPatientID(ctx, patientID)
	if err != nil {
		return nil, "", err
	}

	max, err := s.repo.MaxRowID(ctx)
	if err != nil {
		return nil, "", err
	}

	b := &Bill{
		BillNo:    ident.Format(ident.BillPrefix, max+1),
		PatientID: patientID,
		Amount:    amount,
		Paid:      paid,
		Status:    DeriveStatus(amount, paid),
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, "", err
	}
	return b, p.Name, nil
}
