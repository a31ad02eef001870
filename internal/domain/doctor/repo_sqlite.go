package doctor

import (
	"context"
	"database/sql"
	"errors"

	"github.com/clinicdesk/clinicdesk/internal/platform/db"
)

type sqliteRepo struct {
	q db.Querier
}

func NewSQLiteRepo(q db.Querier) Repository { return &sqliteRepo{q: q} }

const doctorCols = `id, doctor_id, name, specialization, fee, phone, available`

func (r *sqliteRepo) GetAvailable(ctx context.Context, doctorID string) (*Doctor, error) {
	var d Doctor
	err := r.q.QueryRowContext(ctx,
		`SELECT `+doctorCols+` FROM doctors WHERE doctor_id = ? AND available = 1`, doctorID).
		Scan(&d.ID, &d.DoctorID, &d.Name, &d.Specialization, &d.Fee, &d.Phone, &d.Available)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotAvailable
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *sqliteRepo) ListAvailable(ctx context.Context) ([]*Doctor, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+doctorCols+` FROM doctors WHERE available = 1`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var doctors []*Doctor
	for rows.Next() {
		var d Doctor
		if err := rows.Scan(&d.ID, &d.DoctorID, &d.Name, &d.Specialization, &d.Fee, &d.Phone, &d.Available); err != nil {
			return nil, err
		}
		doctors = append(doctors, &d)
	}
	return doctors, rows.Err()
}
