package appointment

import (
	"context"

	"github.com/clinicdesk/clinicdesk/internal/domain/doctor"
	"github.com/clinicdesk/clinicdesk/internal/domain/patient"
	"github.com/clinicdesk/clinicdesk/internal/platform/db"
	"github.com/clinicdesk/clinicdesk/internal/platform/ident"
)

type Service struct {
	repo     Repository
	patients patient.Repository
	doctors  doctor.Repository
}

func NewService(repo Repository, patients patient.Repository, doctors doctor.Repository) *Service {
	return &Service{repo: repo, patients: patients, doctors: doctors}
}

// Book creates an appointment after confirming, in order, that the patient
// exists and that the doctor exists and is currently available. The patient
// check runs first: a missing patient fails the booking before the doctor is
// ever looked at. Date and time are stored as entered; nothing prevents two
// appointments sharing a doctor and a slot. Returns the created appointment
// and the doctor's name for confirmation output.
func (s *Service) Book(ctx context.Context, patientID, doctorID, date, timeOfDay string) (*Appointment, string, error) {
	if _, err := s.patients.GetByPatientID(ctx, patientID); err != nil {
		return nil, "", err
	}

	doc, err := s.doctors.GetAvailable(ctx, doctorID)
	if err != nil {
		return nil, "", err
	}

	max, err := s.repo.MaxRowID(ctx)
	if err != nil {
		return nil, "", err
	}

	a := &Appointment{
		AppointmentID: ident.Format(ident.AppointmentPrefix, max+1),
		PatientID:     patientID,
		DoctorID:      doctorID,
		Date:          date,
		Time:          timeOfDay,
		Status:        StatusScheduled,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, "", err
	}
	return a, doc.Name, nil
}

// Today lists today's appointments with patient and doctor names, ordered by
// time.
func (s *Service) Today(ctx context.Context) ([]*DayEntry, error) {
	return s.repo.ListByDate(ctx, db.Today())
}
