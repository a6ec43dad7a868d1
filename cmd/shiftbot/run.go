package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"shiftbot/internal/timeutil"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive shell",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

func runShell(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"locale":         a.loc.Name,
		"reference_date": timeutil.FormatDate(a.ref),
		"data_file":      a.cfg.DataFile,
	}).Info("Starting ShiftBot")

	return a.shell.Run(a.ref)
}
