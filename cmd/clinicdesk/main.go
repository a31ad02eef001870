package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/clinicdesk/clinicdesk/internal/config"
	"github.com/clinicdesk/clinicdesk/internal/console"
	"github.com/clinicdesk/clinicdesk/internal/domain/appointment"
	"github.com/clinicdesk/clinicdesk/internal/domain/billing"
	"github.com/clinicdesk/clinicdesk/internal/domain/doctor"
	"github.com/clinicdesk/clinicdesk/internal/domain/medicine"
	"github.com/clinicdesk/clinicdesk/internal/domain/patient"
	"github.com/clinicdesk/clinicdesk/internal/domain/reporting"
	"github.com/clinicdesk/clinicdesk/internal/platform/db"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinicdesk",
		Short: "Single-operator clinic record keeping",
	}

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(statsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the record store and start the interactive menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole()
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the system statistics once and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printStats()
		},
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	// Operational logs go to stderr so they never interleave with the menus
	// on stdout.
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(lvl)
	}
	return logger
}

// openStore opens the database file, applies the schema, and seeds the
// default rows. Any failure here is fatal to the process.
func openStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*sql.DB, error) {
	conn, err := db.Open(ctx, cfg.DataFile)
	if err != nil {
		return nil, err
	}
	if err := db.EnsureSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, err
	}
	if cfg.SeedDefaults {
		res, err := db.SeedDefaults(ctx, conn)
		if err != nil {
			conn.Close()
			return nil, err
		}
		if res.Doctors > 0 || res.Medicines > 0 {
			logger.Info().Int("doctors", res.Doctors).Int("medicines", res.Medicines).
				Msg("seeded default rows")
		}
	}
	logger.Info().Str("file", cfg.DataFile).Msg("record store opened")
	return conn, nil
}

func newServices(conn *sql.DB) console.Services {
	patientRepo := patient.NewSQLiteRepo(conn)
	doctorRepo := doctor.NewSQLiteRepo(conn)
	return console.Services{
		Patients:     patient.NewService(patientRepo),
		Doctors:      doctor.NewService(doctorRepo),
		Appointments: appointment.NewService(appointment.NewSQLiteRepo(conn), patientRepo, doctorRepo),
		Medicines:    medicine.NewService(medicine.NewSQLiteRepo(conn)),
		Bills:        billing.NewService(billing.NewSQLiteRepo(conn), patientRepo),
		Reports:      reporting.NewService(reporting.NewSQLiteRepo(conn)),
	}
}

func runConsole() error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return err
	}
	logger := newLogger(cfg)

	ctx := context.Background()
	conn, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize record store")
	}
	defer conn.Close()

	ui := console.New(os.Stdin, os.Stdout, logger, newServices(conn))
	if err := ui.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("console loop failed")
		return err
	}
	logger.Info().Msg("record store closed")
	return nil
}

func printStats() error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return err
	}
	logger := newLogger(cfg)

	ctx := context.Background()
	conn, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize record store")
	}
	defer conn.Close()

	stats, err := reporting.NewService(reporting.NewSQLiteRepo(conn)).Statistics(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Total Patients: %d\n", stats.TotalPatients)
	fmt.Printf("Available Doctors: %d\n", stats.AvailableDoctors)
	fmt.Printf("Today's Appointments: %d\n", stats.TodayAppointments)
	fmt.Printf("Total Medicines in Stock: %d\n", stats.MedicineUnits)
	fmt.Printf("Pending Bills: %d\n", stats.PendingBills)
	return nil
}
