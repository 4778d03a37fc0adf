package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bcdkit/pkg/bcd"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <hive> <object-id>",
		Short: "Print the elements of a BCD object",
		Long: `The get command prints every element attached to an object, identified
by its GUID, in the BCD store embedded in a registry hive file.

Example:
  bcdtool get bcd.hive {9dea862c-5cdd-4e70-acc1-f32b344d4795}`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	hivePath := args[0]
	objectID := args[1]

	printVerbose("Opening hive: %s\n", hivePath)

	store, err := loadStore("get", hivePath)
	if err != nil {
		return err
	}

	obj, err := findObject(store, objectID)
	if err != nil {
		return err
	}

	if jsonOut {
		type elementView struct {
			Name  string      `json:"name"`
			Type  string      `json:"type"`
			Value interface{} `json:"value"`
		}

		views := make([]elementView, 0, obj.ElementCount())
		for _, el := range obj.Elements() {
			views = append(views, elementView{
				Name:  elementDisplayName(el.Type),
				Type:  el.Kind.String(),
				Value: elementDisplayValue(el),
			})
		}
		return printJSON(views)
	}

	for _, el := range obj.Elements() {
		printInfo("%-22s %-10s %v\n", elementDisplayName(el.Type), el.Kind.String(), elementDisplayValue(el))
	}
	return nil
}

func elementDisplayName(elementType uint32) string {
	if name, _, ok := bcd.LookupElementByID(elementType); ok {
		return name
	}
	return fmt.Sprintf("0x%08x", elementType)
}

func elementDisplayValue(el bcd.Element) interface{} {
	switch el.Kind {
	case bcd.KindInteger:
		return el.Integer
	case bcd.KindString:
		return el.String
	case bcd.KindBoolean:
		return el.Boolean
	case bcd.KindBinary:
		return hex.EncodeToString(el.Binary)
	default:
		return nil
	}
}
