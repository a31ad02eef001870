package billing

import (
	"context"

	"github.com/clinicdesk/clinicdesk/internal/platform/db"
)

type sqliteRepo struct {
	q db.Querier
}

func NewSQLiteRepo(q db.Querier) Repository { return &sqliteRepo{q: q} }

func (r *sqliteRepo) Create(ctx context.Context, b *Bill) error {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO bills (bill_no, patient_id, amount, paid, status)
		VALUES (?, ?, ?, ?, ?)`,
		b.BillNo, b.PatientID, b.Amount, b.Paid, b.Status)
	if err != nil {
		return err
	}
	b.ID, err = res.LastInsertId()
	return err
}

func (r *sqliteRepo) MaxRowID(ctx context.Context) (int64, error) {
	return db.MaxRowID(ctx, r.q, "bills")
}
