package doctor

// Doctor maps to the doctors table.
type Doctor struct {
	ID             int64   `db:"id"`
	DoctorID       string  `db:"doctor_id"`
	Name           string  `db:"name"`
	Specialization string  `db:"specialization"`
	Fee            float64 `db:"fee"`
	Phone          string  `db:"phone"`
	Available      bool    `db:"available"`
}
