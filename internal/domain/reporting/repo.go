package reporting

import "context"

type Repository interface {
	CountPatients(ctx context.Context) (int64, error)
	CountPatientsRegisteredOn(ctx context.Context, date string) (int64, error)
	CountAvailableDoctors(ctx context.Context) (int64, error)
	CountAppointmentsOn(ctx context.Context, date string) (int64, error)
	SumMedicineQuantities(ctx context.Context) (int64, error)
	CountUnpaidBills(ctx context.Context) (int64, error)
	BillTotals(ctx context.Context) (count int64, amount, paid float64, err error)
}
