package reporting

// Statistics is the system-overview snapshot, computed fresh on every call.
type Statistics struct {
	TotalPatients     int64
	AvailableDoctors  int64
	TodayAppointments int64
	MedicineUnits     int64
	PendingBills      int64
}

// DailyReport covers today's registrations and appointments. The financial
// summary aggregates every bill ever created, not just today's; the original
// system behaves this way and the behavior is preserved.
type DailyReport struct {
	Date              string
	NewPatients       int64
	TodayAppointments int64
	BillCount         int64
	BilledTotal       float64
	CollectedTotal    float64
}

// Outstanding is the gap between what was billed and what was collected.
func (r *DailyReport) Outstanding() float64 {
	return r.BilledTotal - r.CollectedTotal
}
