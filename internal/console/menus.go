package console

import (
	"context"
	"errors"

	"github.com/clinicdesk/clinicdesk/internal/domain/doctor"
	"github.com/clinicdesk/clinicdesk/internal/domain/medicine"
	"github.com/clinicdesk/clinicdesk/internal/domain/patient"
)

// ---------- Patient menu ----------

func (c *Console) patientMenu(ctx context.Context) error {
	for {
		c.header("PATIENT MANAGEMENT")
		c.printf("1. Add New Patient\n2. View All Patients\n3. Back to Main Menu\n")

		choice, err := c.readLine("\nEnter choice (1-3): ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = c.runOp("add patient", func() error { return c.addPatient(ctx) })
		case "2":
			err = c.runOp("view patients", func() error { return c.viewPatients(ctx) })
		case "3":
			return nil
		default:
			c.printf("Invalid choice!\n")
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) addPatient(ctx context.Context) error {
	c.header("ADD NEW PATIENT")

	name, err := c.readLine("Patient Name: ")
	if err != nil {
		return err
	}
	age, err := c.readInt("Age: ")
	if err != nil {
		return err
	}
	gender, err := c.readLine("Gender (M/F): ")
	if err != nil {
		return err
	}
	phone, err := c.readLine("Phone: ")
	if err != nil {
		return err
	}
	address, err := c.readLine("Address: ")
	if err != nil {
		return err
	}

	p := &patient.Patient{Name: name, Age: age, Gender: gender, Phone: phone, Address: address}
	if err := c.svc.Patients.Register(ctx, p); err != nil {
		return err
	}

	c.log.Info().Str("patient_id", p.PatientID).Msg("patient registered")
	c.printf("\nPatient registered successfully!\n")
	c.printf("Patient ID: %s\n", p.PatientID)
	return nil
}

func (c *Console) viewPatients(ctx context.Context) error {
	c.header("PATIENT LIST")

	patients, err := c.svc.Patients.List(ctx)
	if err != nil {
		return err
	}
	if len(patients) == 0 {
		c.printf("\nNo patients found.\n")
		return nil
	}

	c.printf("\nTotal Patients: %d\n", len(patients))
	for _, p := range patients {
		c.printf("ID: %-6s | Name: %-20s | Age: %-3d | Phone: %-12s\n",
			p.PatientID, p.Name, p.Age, p.Phone)
	}
	return nil
}

// ---------- Doctor menu ----------

func (c *Console) doctorMenu(ctx context.Context) error {
	for {
		c.header("DOCTOR MANAGEMENT")
		c.printf("1. View Available Doctors\n2. Back to Main Menu\n")

		choice, err := c.readLine("\nEnter choice (1-2): ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = c.runOp("view doctors", func() error {
				_, err := c.viewDoctors(ctx)
				return err
			})
		case "2":
			return nil
		default:
			c.printf("Invalid choice!\n")
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) viewDoctors(ctx context.Context) ([]*doctor.Doctor, error) {
	c.header("DOCTOR LIST")

	doctors, err := c.svc.Doctors.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	if len(doctors) == 0 {
		c.printf("\nNo doctors available.\n")
		return nil, nil
	}

	c.printf("\nAvailable Doctors: %d\n", len(doctors))
	for _, d := range doctors {
		c.printf("ID: %-6s | %-20s | Specialization: %-15s | Fee: %.2f\n",
			d.DoctorID, d.Name, d.Specialization, d.Fee)
	}
	return doctors, nil
}

// ---------- Appointment menu ----------

func (c *Console) appointmentMenu(ctx context.Context) error {
	for {
		c.header("APPOINTMENT MANAGEMENT")
		c.printf("1. Book Appointment\n2. View Today's Appointments\n3. Back to Main Menu\n")

		choice, err := c.readLine("\nEnter choice (1-3): ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = c.runOp("book appointment", func() error { return c.bookAppointment(ctx) })
		case "2":
			err = c.runOp("view today's appointments", func() error { return c.viewTodayAppointments(ctx) })
		case "3":
			return nil
		default:
			c.printf("Invalid choice!\n")
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) bookAppointment(ctx context.Context) error {
	c.header("BOOK APPOINTMENT")

	if err := c.viewPatients(ctx); err != nil {
		return err
	}
	patientID, err := c.readLine("\nEnter Patient ID: ")
	if err != nil {
		return err
	}
	if _, err := c.svc.Patients.Get(ctx, patientID); err != nil {
		if errors.Is(err, patient.ErrNotFound) {
			c.printf("\nPatient not found!\n")
			return nil
		}
		return err
	}

	doctors, err := c.viewDoctors(ctx)
	if err != nil {
		return err
	}
	if len(doctors) == 0 {
		return nil
	}

	doctorID, err := c.readLine("\nEnter Doctor ID: ")
	if err != nil {
		return err
	}
	if _, err := c.svc.Doctors.GetAvailable(ctx, doctorID); err != nil {
		if errors.Is(err, doctor.ErrNotAvailable) {
			c.printf("\nDoctor not found or not available!\n")
			return nil
		}
		return err
	}

	date, err := c.readLine("Date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	timeOfDay, err := c.readLine("Time (HH:MM): ")
	if err != nil {
		return err
	}

	a, doctorName, err := c.svc.Appointments.Book(ctx, patientID, doctorID, date, timeOfDay)
	if err != nil {
		return err
	}

	c.log.Info().Str("appointment_id", a.AppointmentID).Str("patient_id", patientID).
		Str("doctor_id", doctorID).Msg("appointment booked")
	c.printf("\nAppointment booked successfully!\n")
	c.printf("Appointment ID: %s\n", a.AppointmentID)
	c.printf("Doctor: %s\n", doctorName)
	return nil
}

func (c *Console) viewTodayAppointments(ctx context.Context) error {
	c.header("TODAY'S APPOINTMENTS")

	entries, err := c.svc.Appointments.Today(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		c.printf("\nNo appointments for today.\n")
		return nil
	}

	c.printf("\nToday's Appointments: %d\n", len(entries))
	for _, e := range entries {
		c.printf("ID: %-8s | Patient: %-20s | Doctor: %-20s\n", e.AppointmentID, e.PatientName, e.DoctorName)
		c.printf("    Time: %s | Status: %s\n", e.Time, e.Status)
	}
	return nil
}

// ---------- Medicine menu ----------

func (c *Console) medicineMenu(ctx context.Context) error {
	for {
		c.header("MEDICINE MANAGEMENT")
		c.printf("1. View Medicine Stock\n2. Add New Medicine\n3. Back to Main Menu\n")

		choice, err := c.readLine("\nEnter choice (1-3): ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = c.runOp("view medicines", func() error { return c.viewMedicines(ctx) })
		case "2":
			err = c.runOp("add medicine", func() error { return c.addMedicine(ctx) })
		case "3":
			return nil
		default:
			c.printf("Invalid choice!\n")
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) viewMedicines(ctx context.Context) error {
	c.header("MEDICINE STOCK")

	medicines, err := c.svc.Medicines.List(ctx)
	if err != nil {
		return err
	}
	if len(medicines) == 0 {
		c.printf("\nNo medicines in stock.\n")
		return nil
	}

	c.printf("\nMedicine Stock: %d items\n", len(medicines))
	for _, m := range medicines {
		c.printf("%-20s | Qty: %-4d | Price: %8.2f | Expiry: %s\n",
			m.Name, m.Quantity, m.Price, m.Expiry)
	}
	return nil
}

func (c *Console) addMedicine(ctx context.Context) error {
	c.header("ADD MEDICINE")

	name, err := c.readLine("Medicine Name: ")
	if err != nil {
		return err
	}
	quantity, err := c.readInt("Quantity: ")
	if err != nil {
		return err
	}
	price, err := c.readFloat("Price: ")
	if err != nil {
		return err
	}
	expiry, err := c.readLine("Expiry Date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}

	m := &medicine.Medicine{Name: name, Quantity: quantity, Price: price, Expiry: expiry}
	if err := c.svc.Medicines.Add(ctx, m); err != nil {
		return err
	}

	c.printf("\nMedicine added successfully!\n")
	return nil
}

// ---------- Billing menu ----------

func (c *Console) billingMenu(ctx context.Context) error {
	for {
		c.header("BILLING SYSTEM")
		c.printf("1. Generate Bill\n2. Back to Main Menu\n")

		choice, err := c.readLine("\nEnter choice (1-2): ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = c.runOp("generate bill", func() error { return c.generateBill(ctx) })
		case "2":
			return nil
		default:
			c.printf("Invalid choice!\n")
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) generateBill(ctx context.Context) error {
	c.header("GENERATE BILL")

	if err := c.viewPatients(ctx); err != nil {
		return err
	}
	patientID, err := c.readLine("\nEnter Patient ID: ")
	if err != nil {
		return err
	}
	if _, err := c.svc.Patients.Get(ctx, patientID); err != nil {
		if errors.Is(err, patient.ErrNotFound) {
			c.printf("\nPatient not found!\n")
			return nil
		}
		return err
	}

	amount, err := c.readFloat("Total Amount: ")
	if err != nil {
		return err
	}
	paid, err := c.readFloat("Amount Paid: ")
	if err != nil {
		return err
	}

	b, patientName, err := c.svc.Bills.Generate(ctx, patientID, amount, paid)
	if err != nil {
		return err
	}

	c.log.Info().Str("bill_no", b.BillNo).Str("patient_id", patientID).
		Str("status", b.Status).Msg("bill generated")
	c.printf("\nBill generated successfully!\n")
	c.printf("Bill No: %s\n", b.BillNo)
	c.printf("Patient: %s\n", patientName)
	c.printf("Total: %.2f\n", b.Amount)
	c.printf("Paid: %.2f\n", b.Paid)
	c.printf("Due: %.2f\n", b.Due())
	c.printf("Status: %s\n", b.Status)
	return nil
}

// ---------- Reports menu ----------

func (c *Console) reportsMenu(ctx context.Context) error {
	for {
		c.header("REPORTS & STATISTICS")
		c.printf("1. System Statistics\n2. Daily Report\n3. Back to Main Menu\n")

		choice, err := c.readLine("\nEnter choice (1-3): ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = c.runOp("view statistics", func() error { return c.viewStatistics(ctx) })
		case "2":
			err = c.runOp("daily report", func() error { return c.dailyReport(ctx) })
		case "3":
			return nil
		default:
			c.printf("Invalid choice!\n")
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) viewStatistics(ctx context.Context) error {
	c.header("SYSTEM STATISTICS")

	stats, err := c.svc.Reports.Statistics(ctx)
	if err != nil {
		return err
	}

	c.printf("\nSYSTEM OVERVIEW\n")
	c.printf("Total Patients: %d\n", stats.TotalPatients)
	c.printf("Available Doctors: %d\n", stats.AvailableDoctors)
	c.printf("Today's Appointments: %d\n", stats.TodayAppointments)
	c.printf("Total Medicines in Stock: %d\n", stats.MedicineUnits)
	c.printf("Pending Bills: %d\n", stats.PendingBills)
	return nil
}

func (c *Console) dailyReport(ctx context.Context) error {
	c.header("DAILY REPORT")

	report, err := c.svc.Reports.DailyReport(ctx)
	if err != nil {
		return err
	}

	c.printf("\nREPORT FOR %s\n", report.Date)
	c.printf("New Patients: %d\n", report.NewPatients)
	c.printf("Total Appointments: %d\n", report.TodayAppointments)
	c.printf("\nFinancial Summary:\n")
	c.printf("  Total Bills: %d\n", report.BillCount)
	c.printf("  Total Amount: %.2f\n", report.BilledTotal)
	c.printf("  Total Collected: %.2f\n", report.CollectedTotal)
	c.printf("  Pending: %.2f\n", report.Outstanding())
	return nil
}
