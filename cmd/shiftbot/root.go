package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"shiftbot/internal/config"
	"shiftbot/internal/handler"
	"shiftbot/internal/locale"
	"shiftbot/internal/registry"
	"shiftbot/internal/service"
	"shiftbot/internal/storage"
	"shiftbot/internal/timeutil"
)

var (
	flagData    string
	flagImport  string
	flagReport  string
	flagRefDate string
	flagLocale  string
)

var rootCmd = &cobra.Command{
	Use:   "shiftbot",
	Short: "ShiftBot – employee weekly schedules and shift logs",
	Long: `shiftbot tracks employee weekly schedules and daily shift logs in a
flat pipe-delimited data file, derives today's shifts from the recurring
schedule with conflict detection, and reports hours over the trailing
7-day window.`,
	Args: cobra.NoArgs,
	RunE: runShell, // a bare "shiftbot" starts the interactive shell
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagData, "data", "", "data file (default $SHIFTBOT_DATA_FILE or shiftbot_data.txt)")
	rootCmd.PersistentFlags().StringVar(&flagImport, "import-file", "", "batch import feed (default $SHIFTBOT_IMPORT_FILE or employees.txt)")
	rootCmd.PersistentFlags().StringVar(&flagReport, "report-file", "", "report output file (default $SHIFTBOT_REPORT_FILE or report.txt)")
	rootCmd.PersistentFlags().StringVar(&flagRefDate, "reference-date", "", "treat this DD-MM-YYYY date as today (default: current date)")
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", "", "presentation language: en or pt (default $SHIFTBOT_LOCALE or en)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(reportCmd)
}

// app is the wired application for one invocation.
type app struct {
	cfg      *config.Config
	loc      *locale.Locale
	ref      time.Time
	reg      *registry.Registry
	store    *storage.Store
	importer *storage.Importer
	reports  *service.ReportService
	shell    *handler.Shell
}

// setup resolves config and flags, then wires the components the way the
// commands need them: registry, store, importer, services, shell.
func setup() (*app, error) {
	cfg := config.Get()
	if flagData != "" {
		cfg.DataFile = flagData
	}
	if flagImport != "" {
		cfg.ImportFile = flagImport
	}
	if flagReport != "" {
		cfg.ReportFile = flagReport
	}
	if flagRefDate != "" {
		cfg.ReferenceDate = flagRefDate
	}
	if flagLocale != "" {
		cfg.Locale = flagLocale
	}

	loc, err := locale.Get(cfg.Locale)
	if err != nil {
		return nil, err
	}

	ref := timeutil.DateOnly(time.Now())
	if cfg.ReferenceDate != "" {
		if ref, err = timeutil.ParseDate(cfg.ReferenceDate); err != nil {
			return nil, fmt.Errorf("reference date: %w", err)
		}
	}

	reg := registry.New()
	store := storage.NewStore(cfg.DataFile)
	importer := storage.NewImporter(cfg.ImportFile)
	shifts := service.NewShiftService(reg)
	autolog := service.NewAutoLogService(reg)
	reports := service.NewReportService(reg)
	shell := handler.New(reg, store, importer, shifts, autolog, reports, loc, cfg, os.Stdin, os.Stdout)

	return &app{
		cfg:      cfg,
		loc:      loc,
		ref:      ref,
		reg:      reg,
		store:    store,
		importer: importer,
		reports:  reports,
		shell:    shell,
	}, nil
}
