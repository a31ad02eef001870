package console

import (
	"bytes"
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/clinicdesk/clinicdesk/internal/domain/appointment"
	"github.com/clinicdesk/clinicdesk/internal/domain/billing"
	"github.com/clinicdesk/clinicdesk/internal/domain/doctor"
	"github.com/clinicdesk/clinicdesk/internal/domain/medicine"
	"github.com/clinicdesk/clinicdesk/internal/domain/patient"
	"github.com/clinicdesk/clinicdesk/internal/domain/reporting"
	"github.com/clinicdesk/clinicdesk/internal/platform/db"
)

// newTestConsole wires a console against a fresh seeded in-memory store and
// feeds it the given input script.
func newTestConsole(t *testing.T, script string) (*Console, *bytes.Buffer, *sql.DB) {
	t.Helper()
	ctx := context.Background()

	conn, err := db.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	if err := db.EnsureSchema(ctx, conn); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	if _, err := db.SeedDefaults(ctx, conn); err != nil {
		t.Fatalf("seed defaults: %v", err)
	}

	patientRepo := patient.NewSQLiteRepo(conn)
	doctorRepo := doctor.NewSQLiteRepo(conn)
	svc := Services{
		Patients:     patient.NewService(patientRepo),
		Doctors:      doctor.NewService(doctorRepo),
		Appointments: appointment.NewService(appointment.NewSQLiteRepo(conn), patientRepo, doctorRepo),
		Medicines:    medicine.NewService(medicine.NewSQLiteRepo(conn)),
		Bills:        billing.NewService(billing.NewSQLiteRepo(conn), patientRepo),
		Reports:      reporting.NewService(reporting.NewSQLiteRepo(conn)),
	}

	var out bytes.Buffer
	c := New(strings.NewReader(script), &out, zerolog.Nop(), svc)
	return c, &out, conn
}

func TestRun_Exit(t *testing.T) {
	c, out, _ := newTestConsole(t, "7\n")
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "Goodbye!") {
		t.Error("exit message missing from output")
	}
}

func TestRun_EndOfInputShutsDownCleanly(t *testing.T) {
	// The script ends inside a sub-menu; the loop must wind down without an
	// error instead of spinning on a closed input.
	c, _, _ := newTestConsole(t, "1\n")
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run after EOF: %v", err)
	}
}

func TestRun_RegisterPatient(t *testing.T) {
	script := strings.Join([]string{
		"1",            // main: patient management
		"1",            // add new patient
		"Asha Rao",     // name
		"34",           // age
		"f",            // gender, stored upper-cased
		"9812345670",   // phone
		"14 Lake Road", // address
		"",             // press enter
		"3",            // back
		"7",            // exit
	}, "\n") + "\n"

	c, out, conn := newTestConsole(t, script)
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !strings.Contains(out.String(), "Patient ID: P001") {
		t.Errorf("output missing generated identifier:\n%s", out.String())
	}

	var gender string
	if err := conn.QueryRowContext(context.Background(),
		"SELECT gender FROM patients WHERE patient_id = 'P001'").Scan(&gender); err != nil {
		t.Fatalf("read stored patient: %v", err)
	}
	if gender != "F" {
		t.Errorf("stored gender = %q, want F", gender)
	}
}

func TestRun_BookingUnknownPatient(t *testing.T) {
	script := strings.Join([]string{
		"3",    // main: appointment management
		"1",    // book appointment
		"P404", // nonexistent patient
		"",     // press enter
		"3",    // back
		"7",    // exit
	}, "\n") + "\n"

	c, out, conn := newTestConsole(t, script)
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !strings.Contains(out.String(), "Patient not found!") {
		t.Errorf("output missing not-found message:\n%s", out.String())
	}

	var count int
	if err := conn.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM appointments").Scan(&count); err != nil {
		t.Fatalf("count appointments: %v", err)
	}
	if count != 0 {
		t.Errorf("appointment rows = %d, want 0 after failed booking", count)
	}
}

func TestRun_BadNumericInputAbortsOperation(t *testing.T) {
	script := strings.Join([]string{
		"1",    // main: patient management
		"1",    // add new patient
		"Asha", // name
		"abc",  // non-numeric age aborts the operation
		"",     // press enter
		"3",    // back
		"7",    // exit
	}, "\n") + "\n"

	c, out, conn := newTestConsole(t, script)
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !strings.Contains(out.String(), "Error:") {
		t.Errorf("output missing coercion error:\n%s", out.String())
	}

	var count int
	if err := conn.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM patients").Scan(&count); err != nil {
		t.Fatalf("count patients: %v", err)
	}
	if count != 0 {
		t.Errorf("patient rows = %d, want 0 after aborted registration", count)
	}
}

func TestRun_Statistics(t *testing.T) {
	script := strings.Join([]string{
		"6", // main: reports
		"1", // system statistics
		"",  // press enter
		"3", // back
		"7", // exit
	}, "\n") + "\n"

	c, out, _ := newTestConsole(t, script)
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, want := range []string{
		"Available Doctors: 3",
		"Total Medicines in Stock: 180",
		"Pending Bills: 0",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("statistics output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRun_GenerateBillForSeededPatient(t *testing.T) {
	script := strings.Join([]string{
		"1", "1", "Meera Joshi", "29", "F", "98000", "Pune", "", "3", // register P001
		"5",    // main: billing
		"1",    // generate bill
		"P001", // patient
		"1000", // amount
		"400",  // paid
		"",     // press enter
		"2",    // back
		"7",    // exit
	}, "\n") + "\n"

	c, out, _ := newTestConsole(t, script)
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, want := range []string{
		"Bill No: BILL001",
		"Due: 600.00",
		"Status: Partial",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("bill output missing %q:\n%s", want, out.String())
		}
	}
}
