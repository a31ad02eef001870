package appointment

// StatusScheduled is the only status this system ever assigns; appointments
// never transition afterwards.
const StatusScheduled = "Scheduled"

// Appointment maps to the appointments table. Date and time are free-form
// strings, stored as entered.
type Appointment struct {
	ID            int64  `db:"id"`
	AppointmentID string `db:"appointment_id"`
	PatientID     string `db:"patient_id"`
	DoctorID      string `db:"doctor_id"`
	Date          string `db:"date"`
	Time          string `db:"time"`
	Status        string `db:"status"`
}

// DayEntry is an appointment joined with the referenced patient and doctor
// names, as shown in the today's-appointments listing.
type DayEntry struct {
	Appointment
	PatientName string
	DoctorName  string
}
