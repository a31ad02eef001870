// Package ident formats the human-readable business identifiers used to
// reference records externally (P001, DOC001, APT001, BILL001). The numeric
// part is derived from the storage engine's internal row id, never from a
// per-prefix counter, so seeded rows and business rows share one sequence.
package ident

import "fmt"

// Prefixes for each record type.
const (
	PatientPrefix     = "P"
	DoctorPrefix      = "DOC"
	AppointmentPrefix = "APT"
	BillPrefix        = "BILL"
)

// Format builds a business identifier from a prefix and a sequence number.
// The number is zero-padded to at least three digits; larger numbers keep
// all their digits.
func Format(prefix string, n int64) string {
	return fmt.Sprintf("%s%03d", prefix, n)
}
