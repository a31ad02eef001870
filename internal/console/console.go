// Package console implements the interactive text-menu front end. It owns
// all prompting, formatting, and menu navigation; every menu option maps to
// exactly one service call.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/clinicdesk/clinicdesk/internal/domain/appointment"
	"github.com/clinicdesk/clinicdesk/internal/domain/billing"
	"github.com/clinicdesk/clinicdesk/internal/domain/doctor"
	"github.com/clinicdesk/clinicdesk/internal/domain/medicine"
	"github.com/clinicdesk/clinicdesk/internal/domain/patient"
	"github.com/clinicdesk/clinicdesk/internal/domain/reporting"
)

// Services bundles the record-store operations the console drives.
type Services struct {
	Patients     *patient.Service
	Doctors      *doctor.Service
	Appointments *appointment.Service
	Medicines    *medicine.Service
	Bills        *billing.Service
	Reports      *reporting.Service
}

// Console reads line-based choices from in and writes formatted output to
// out. It holds no store state of its own.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
	log zerolog.Logger
	svc Services
}

func New(in io.Reader, out io.Writer, logger zerolog.Logger, svc Services) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
		log: logger,
		svc: svc,
	}
}

// Run drives the main menu until the operator chooses Exit or the input
// stream ends.
func (c *Console) Run(ctx context.Context) error {
	c.printf("\n%s\n", divider(60))
	c.printf("CLINIC RECORD SYSTEM\n")
	c.printf("%s\n", divider(60))

	for {
		c.mainMenu()
		choice, err := c.readLine("\nEnter your choice (1-7): ")
		if err != nil {
			return ignoreEOF(err)
		}

		var menuErr error
		switch choice {
		case "1":
			menuErr = c.patientMenu(ctx)
		case "2":
			menuErr = c.doctorMenu(ctx)
		case "3":
			menuErr = c.appointmentMenu(ctx)
		case "4":
			menuErr = c.medicineMenu(ctx)
		case "5":
			menuErr = c.billingMenu(ctx)
		case "6":
			menuErr = c.reportsMenu(ctx)
		case "7":
			c.printf("\nThank you for using the clinic record system. Goodbye!\n")
			return nil
		default:
			c.printf("\nInvalid choice! Please enter 1-7.\n")
			menuErr = c.pause()
		}
		if menuErr != nil {
			return ignoreEOF(menuErr)
		}
	}
}

func (c *Console) mainMenu() {
	c.printf("\n%s\n", divider(60))
	c.printf("MAIN MENU\n")
	c.printf("%s\n", divider(60))
	c.printf("1. Patient Management\n")
	c.printf("2. Doctor Management\n")
	c.printf("3. Appointment Management\n")
	c.printf("4. Medicine Management\n")
	c.printf("5. Billing System\n")
	c.printf("6. Reports & Statistics\n")
	c.printf("7. Exit\n")
}

// runOp executes one operation, reports its failure to the operator, and
// pauses before returning to the menu. Input-stream errors propagate.
func (c *Console) runOp(name string, op func() error) error {
	if err := op(); err != nil {
		if errors.Is(err, io.EOF) {
			return err
		}
		c.printf("\nError: %v\n", err)
		c.log.Error().Err(err).Str("operation", name).Msg("operation failed")
	}
	return c.pause()
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) header(title string) {
	c.printf("\n%s\n%s\n%s\n", divider(50), title, divider(50))
}

func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// readInt prompts for an integer; a blank line coerces to 0.
func (c *Console) readInt(prompt string) (int, error) {
	s, err := c.readLine(prompt)
	if err != nil {
		return 0, err
	}
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return n, nil
}

// readFloat prompts for a numeric amount; a blank line coerces to 0.
func (c *Console) readFloat(prompt string) (float64, error) {
	s, err := c.readLine(prompt)
	if err != nil {
		return 0, err
	}
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return f, nil
}

func (c *Console) pause() error {
	_, err := c.readLine("\nPress Enter to continue...")
	return err
}

func divider(n int) string {
	return strings.Repeat("=", n)
}

// ignoreEOF maps end-of-input to a clean shutdown.
func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
