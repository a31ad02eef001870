package reporting

import (
	"context"

	"github.com/clinicdesk/clinicdesk/internal/platform/db"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Statistics computes the system-overview counters, each read fresh from the
// store.
func (s *Service) Statistics(ctx context.Context) (*Statistics, error) {
	var (
		stats Statistics
		err   error
	)
	today := db.Today()

	if stats.TotalPatients, err = s.repo.CountPatients(ctx); err != nil {
		return nil, err
	}
	if stats.AvailableDoctors, err = s.repo.CountAvailableDoctors(ctx); err != nil {
		return nil, err
	}
	if stats.TodayAppointments, err = s.repo.CountAppointmentsOn(ctx, today); err != nil {
		return nil, err
	}
	if stats.MedicineUnits, err = s.repo.SumMedicineQuantities(ctx); err != nil {
		return nil, err
	}
	if stats.PendingBills, err = s.repo.CountUnpaidBills(ctx); err != nil {
		return nil, err
	}
	return &stats, nil
}

// DailyReport computes today's registrations and appointments plus the
// all-time financial totals.
func (s *Service) DailyReport(ctx context.Context) (*DailyReport, error) {
	var (
		report DailyReport
		err    error
	)
	report.Date = db.Today()

	if report.NewPatients, err = s.repo.CountPatientsRegisteredOn(ctx, report.Date); err != nil {
		return nil, err
	}
	if report.TodayAppointments, err = s.repo.CountAppointmentsOn(ctx, report.Date); err != nil {
		return nil, err
	}
	report.BillCount, report.BilledTotal, report.CollectedTotal, err = s.repo.BillTotals(ctx)
	if err != nil {
		return nil, err
	}
	return &report, nil
}
