package db

import (
	"context"
	"fmt"
)

// SeedResult summarizes the rows inserted by a seed pass.
type SeedResult struct {
	Doctors   int
	Medicines int
}

type seedDoctor struct {
	doctorID       string
	name           string
	specialization string
	fee            float64
	phone          string
}

type seedMedicine struct {
	name     string
	quantity int
	price    float64
	expiry   string
}

var defaultDoctors = []seedDoctor{
	{"DOC001", "Dr. Rajesh Kumar", "Cardiology", 800, "9876543210"},
	{"DOC002", "Dr. Priya Sharma", "Pediatrics", 600, "9876543211"},
	{"DOC003", "Dr. Anil Verma", "Orthopedics", 700, "9876543212"},
}

var defaultMedicines = []seedMedicine{
	{"Paracetamol", 100, 5.0, "2025-12-31"},
	{"Amoxicillin", 50, 15.0, "2024-08-30"},
	{"Insulin", 30, 200.0, "2024-10-31"},
}

// SeedDefaults inserts the default doctor and medicine rows, each set only
// when its table is still empty. Re-running against an already seeded store
// inserts nothing.
func SeedDefaults(ctx context.Context, q Querier) (SeedResult, error) {
	var res SeedResult

	var doctorCount int
	if err := q.QueryRowContext(ctx, "SELECT COUNT(*) FROM doctors").Scan(&doctorCount); err != nil {
		return res, fmt.Errorf("count doctors: %w", err)
	}
	if doctorCount == 0 {
		for _, d := range defaultDoctors {
			_, err := q.ExecContext(ctx,
				"INSERT INTO doctors (doctor_id, name, specialization, fee, phone) VALUES (?, ?, ?, ?, ?)",
				d.doctorID, d.name, d.specialization, d.fee, d.phone)
			if err != nil {
				return res, fmt.Errorf("seed doctor %s: %w", d.doctorID, err)
			}
			res.Doctors++
		}
	}

	var medicineCount int
	if err := q.QueryRowContext(ctx, "SELECT COUNT(*) FROM medicines").Scan(&medicineCount); err != nil {
		return res, fmt.Errorf("count medicines: %w", err)
	}
	if medicineCount == 0 {
		for _, m := range defaultMedicines {
			_, err := q.ExecContext(ctx,
				"INSERT INTO medicines (name, quantity, price, expiry) VALUES (?, ?, ?, ?)",
				m.name, m.quantity, m.price, m.expiry)
			if err != nil {
				return res, fmt.Errorf("seed medicine %s: %w", m.name, err)
			}
			res.Medicines++
		}
	}

	return res, nil
}
