package appointment

import (
	"context"

	"github.com/clinicdesk/clinicdesk/internal/platform/db"
)

type sqliteRepo struct {
	q db.Querier
}

func NewSQLiteRepo(q db.Querier) Repository { return &sqliteRepo{q: q} }

func (r *sqliteRepo) Create(ctx context.Context, a *Appointment) error {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO appointments (appointment_id, patient_id, doctor_id, date, time, status)
		VALUES (?, ?, ?, ?, ?, ?)`,
		a.AppointmentID, a.PatientID, a.DoctorID, a.Date, a.Time, a.Status)
	if err != nil {
		return err
	}
	a.ID, err = res.LastInsertId()
	return err
}

func (r *sqliteRepo) ListByDate(ctx context.Context, date string) ([]*DayEntry, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT a.id, a.appointment_id, a.patient_id, a.doctor_id, a.date, a.time, a.status,
		       p.name, d.name
		FROM appointments a
		JOIN patients p ON a.patient_id = p.patient_id
		JOIN doctors d ON a.doctor_id = d.doctor_id
		WHERE a.date = ?
		ORDER BY a.time`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*DayEntry
	for rows.Next() {
		var e DayEntry
		err := rows.Scan(&e.ID, &e.AppointmentID, &e.PatientID, &e.DoctorID,
			&e.Date, &e.Time, &e.Status, &e.PatientName, &e.DoctorName)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

func (r *sqliteRepo) MaxRowID(ctx context.Context) (int64, error) {
	return db.MaxRowID(ctx, r.q, "appointments")
}
