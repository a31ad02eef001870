package patient

// Patient maps to the patients table.
type Patient struct {
	ID        int64  `db:"id"`
	PatientID string `db:"patient_id"`
	Name      string `db:"name"`
	Age       int    `db:"age"`
	Gender    string `db:"gender"`
	Phone     string `db:"phone"`
	Address   string `db:"address"`
	RegDate   string `db:"reg_date"`
}
