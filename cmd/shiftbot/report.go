package main

import (
	"os"

	"github.com/spf13/cobra"

	"shiftbot/internal/handler"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the weekly report for the reference date",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}

	if err := a.store.Load(a.reg); err != nil {
		return err
	}
	handler.RenderReport(os.Stdout, a.loc, a.reports.Weekly(a.ref))

	return nil
}
