package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newExportCmd())
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <hive> <out-hive>",
		Short: "Decode a hive and re-serialize it to a new file",
		Long: `The export command loads the BCD store embedded in a hive file and
writes it back out to a new hive file. This round-trips every object and
element through the in-memory model, which doubles as a validator: a
malformed source hive that bcdtool can't load will fail here rather than
silently propagating.

Example:
  bcdtool export bcd.hive bcd.hive.out`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args)
		},
	}
	return cmd
}

func runExport(args []string) error {
	hivePath := args[0]
	outPath := args[1]

	printVerbose("Opening hive: %s\n", hivePath)

	store, err := loadStore("export", hivePath)
	if err != nil {
		return err
	}

	if err := saveStore("export", outPath, store); err != nil {
		return err
	}

	printInfo("exported %d object(s) to %s\n", store.ObjectCount(), outPath)
	return nil
}
