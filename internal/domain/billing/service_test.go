package billing

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/clinicdesk/clinicdesk/internal/domain/patient"
	"github.com/clinicdesk/clinicdesk/internal/platform/db"
)

func newTestService(t *testing.T) (*Service, *sql.DB) {
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
	return NewService(NewSQLiteRepo(conn), patient.NewSQLiteRepo(conn)), conn
}

func registerPatient(t *testing.T, conn *sql.DB, name string) string {
	t.Helper()
	svc := patient.NewService(patient.NewSQLiteRepo(conn))
	p := &patient.Patient{Name: name, Age: 29, Gender: "F"}
	if err := svc.Register(context.Background(), p); err != nil {
		t.Fatalf("register patient: %v", err)
	}
	return p.PatientID
}

func TestGenerate_Scenarios(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()
	pid := registerPatient(t, conn, "Meera Joshi")

	cases := []struct {
		amount, paid float64
		wantStatus   string
		wantDue      float64
		wantBillNo   string
	}{
		{1000.0, 1000.0, StatusPaid, 0.00, "BILL001"},
		{1000.0, 400.0, StatusPartial, 600.00, "BILL002"},
		{500.0, 0.0, StatusPending, 500.00, "BILL003"},
	}
	for _, c := range cases {
		b, name, err := svc.Generate(ctx, pid, c.amount, c.paid)
		if err != nil {
			t.Fatalf("Generate(%.2f, %.2f): %v", c.amount, c.paid, err)
		}
		if b.Status != c.wantStatus {
			t.Errorf("status = %q, want %q", b.Status, c.wantStatus)
		}
		if b.Due() != c.wantDue {
			t.Errorf("due = %.2f, want %.2f", b.Due(), c.wantDue)
		}
		if b.BillNo != c.wantBillNo {
			t.Errorf("bill no = %q, want %q", b.BillNo, c.wantBillNo)
		}
		if name != "Meera Joshi" {
			t.Errorf("patient name = %q, want Meera Joshi", name)
		}
	}
}

func TestGenerate_UnknownPatient(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Generate(ctx, "P404", 100, 0)
	if !errors.Is(err, patient.ErrNotFound) {
		t.Errorf("Generate error = %v, want patient.ErrNotFound", err)
	}

	var count int
	if err := conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM bills").Scan(&count); err != nil {
		t.Fatalf("count bills: %v", err)
	}
	if count != 0 {
		t.Errorf("bill rows after failed generate = %d, want 0", count)
	}
}

func TestGenerate_PersistsDerivedStatus(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()
	pid := registerPatient(t, conn, "Meera Joshi")

	if _, _, err := svc.Generate(ctx, pid, 750, 200); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var status string
	if err := conn.QueryRowContext(ctx, "SELECT status FROM bills WHERE bill_no = 'BILL001'").Scan(&status); err != nil {
		t.Fatalf("read bill status: %v", err)
	}
	if status != StatusPartial {
		t.Errorf("stored status = %q, want %q", status, StatusPartial)
	}
}
