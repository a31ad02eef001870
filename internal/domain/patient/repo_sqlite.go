package patient

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

const patientCols = `id, patient_id, name, age, gender, phone, address, reg_date`

func scanPatient(row *sql.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.PatientID, &p.Name, &p.Age, &p.Gender, &p.Phone, &p.Address, &p.RegDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *sqliteRepo) Create(ctx context.Context, p *Patient) error {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO patients (patient_id, name, age, gender, phone, address, reg_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.PatientID, p.Name, p.Age, p.Gender, p.Phone, p.Address, p.RegDate)
	if err != nil {
		return err
	}
	p.ID, err = res.LastInsertId()
	return err
}

func (r *sqliteRepo) GetByPatientID(ctx context.Context, patientID string) (*Patient, error) {
	return scanPatient(r.q.QueryRowContext(ctx,
		`SELECT `+patientCols+` FROM patients WHERE patient_id = ?`, patientID))
}

func (r *sqliteRepo) List(ctx context.Context) ([]*Patient, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+patientCols+` FROM patients ORDER BY reg_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var patients []*Patient
	for rows.Next() {
		var p Patient
		if err := rows.Scan(&p.ID, &p.PatientID, &p.Name, &p.Age, &p.Gender, &p.Phone, &p.Address, &p.RegDate); err != nil {
			return nil, err
		}
		patients = append(patients, &p)
	}
	return patients, rows.Err()
}

func (r *sqliteRepo) MaxRowID(ctx context.Context) (int64, error) {
	return db.MaxRowID(ctx, r.q, "patients")
}
