package reporting

import (
	"context"

	"github.com/clinicdesk/clinicdesk/internal/platform/db"
)

type sqliteRepo struct {
	q db.Querier
}

func NewSQLiteRepo(q db.Querier) Repository { return &sqliteRepo{q: q} }

func (r *sqliteRepo) count(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var n int64
	err := r.q.QueryRowContext(ctx, query, args...).Scan(&n)
	return n, err
}

func (r *sqliteRepo) CountPatients(ctx context.Context) (int64, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM patients")
}

func (r *sqliteRepo) CountPatientsRegisteredOn(ctx context.Context, date string) (int64, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM patients WHERE reg_date = ?", date)
}

func (r *sqliteRepo) CountAvailableDoctors(ctx context.Context) (int64, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM doctors WHERE available = 1")
}

func (r *sqliteRepo) CountAppointmentsOn(ctx context.Context, date string) (int64, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM appointments WHERE date = ?", date)
}

func (r *sqliteRepo) SumMedicineQuantities(ctx context.Context) (int64, error) {
	return r.count(ctx, "SELECT COALESCE(SUM(quantity), 0) FROM medicines")
}

func (r *sqliteRepo) CountUnpaidBills(ctx context.Context) (int64, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM bills WHERE status != 'Paid'")
}

func (r *sqliteRepo) BillTotals(ctx context.Context) (int64, float64, float64, error) {
	var count int64
	var amount, paid float64
	err := r.q.QueryRowContext(ctx,
		"SELECT COUNT(*), COALESCE(SUM(amount), 0), COALESCE(SUM(paid), 0) FROM bills").
		Scan(&count, &amount, &paid)
	return count, amount, paid, err
}
