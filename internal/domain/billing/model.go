package billing

// Bill statuses. A bill's status is fixed at creation; no later payment can
// change it.
const (
	StatusPaid    = "Paid"
	StatusPartial = "Partial"
	StatusPending = "Pending"
)

// Bill maps to the bills table.
type Bill struct {
	ID        int64   `db:"id"`
	BillNo    string  `db:"bill_no"`
	PatientID string  `db:"patient_id"`
	Amount    float64 `db:"amount"`
	Paid      float64 `db:"paid"`
	Status    string  `db:"status"`
}

// Due is the outstanding balance. Overpaid bills yield a negative value.
func (b *Bill) Due() float64 {
	return b.Amount - b.Paid
}

// DeriveStatus computes a bill's status from its amounts: Paid when the
// payment covers the total, Partial when something but not everything was
// paid, Pending otherwise.
func DeriveStatus(amount, paid float64) string {
	switch {
	case paid >= amount:
		return StatusPaid
	case paid > 0:
		return StatusPartial
	default:
		return StatusPending
	}
}
