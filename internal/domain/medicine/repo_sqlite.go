package medicine

import (
	"context"

	"github.com/clinicdesk/clinicdesk/internal/platform/db"
)

type sqliteRepo struct {
	q db.Querier
}

func NewSQLiteRepo(q db.Querier) Repository { return &sqliteRepo{q: q} }

func (r *sqliteRepo) Create(ctx context.Context, m *Medicine) error {
	res, err := r.q.ExecContext(ctx,
		"INSERT INTO medicines (name, quantity, price, expiry) VALUES (?, ?, ?, ?)",
		m.Name, m.Quantity, m.Price, m.Expiry)
	if err != nil {
		return err
	}
	m.ID, err = res.LastInsertId()
	return err
}

func (r *sqliteRepo) List(ctx context.Context) ([]*Medicine, error) {
	rows, err := r.q.QueryContext(ctx,
		"SELECT id, name, quantity, price, expiry FROM medicines ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var medicines []*Medicine
	for rows.Next() {
		var m Medicine
		if err := rows.Scan(&m.ID, &m.Name, &m.Quantity, &m.Price, &m.Expiry); err != nil {
			return nil, err
		}
		medicines = append(medicines, &m)
	}
	return medicines, rows.Err()
}
