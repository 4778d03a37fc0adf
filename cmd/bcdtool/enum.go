package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/bcdkit/pkg/bcd"
)

func init() {
	rootCmd.AddCommand(newEnumCmd())
}

func newEnumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enum <hive>",
		Short: "List the objects in a BCD store",
		Long: `The enum command lists every object in the BCD store embedded in a
registry hive file, along with its object type and element count.

Example:
  bcdtool enum bcd.hive
  bcdtool enum bcd.hive --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnum(args)
		},
	}
	return cmd
}

func runEnum(args []string) error {
	hivePath := args[0]

	printVerbose("Opening hive: %s\n", hivePath)

	store, err := loadStore("enum", hivePath)
	if err != nil {
		return err
	}

	if jsonOut {
		type objectSummary struct {
			ID           string `json:"id"`
			ObjectType   string `json:"object_type"`
			ElementCount int    `json:"element_count"`
		}

		summaries := make([]objectSummary, 0, store.ObjectCount())
		for _, obj := range store.Objects() {
			summaries = append(summaries, objectSummary{
				ID:           obj.ID.String(),
				ObjectType:   formatObjectType(obj.ObjectType),
				ElementCount: obj.ElementCount(),
			})
		}
		return printJSON(summaries)
	}

	for _, obj := range store.Objects() {
		printInfo("%s  type=%s  elements=%d\n", obj.ID.String(), formatObjectType(obj.ObjectType), obj.ElementCount())
	}
	return nil
}

func formatObjectType(t uint32) string {
	switch t {
	case bcd.ObjectTypeBootMgr:
		return "bootmgr"
	case bcd.ObjectTypeOSLoader:
		return "osloader"
	case bcd.ObjectTypeResume:
		return "resume"
	case bcd.ObjectTypeInheritance:
		return "inheritance"
	default:
		return "unknown"
	}
}
