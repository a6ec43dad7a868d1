package main

import (
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Apply the batch import feed to the data file and exit",
	Args:  cobra.NoArgs,
	RunE:  runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}

	if err := a.store.Load(a.reg); err != nil {
		return err
	}
	results, err := a.importer.Run(a.reg, a.loc.ParseWeekday)
	if err != nil {
		return err
	}
	a.shell.PrintImport(results)

	return a.store.Save(a.reg)
}
