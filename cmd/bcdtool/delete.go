package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bcdkit/pkg/bcd"
)

func init() {
	rootCmd.AddCommand(newDeleteCmd())
}

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <hive> <object-id> [element-name-or-hex]",
		Short: "Delete an object, or a single element from an object",
		Long: `The delete command removes an entire object from the BCD store when
given just an object id, or a single element from that object when an
element name or hex type is also given.

Example:
  bcdtool delete bcd.hive {...}
  bcdtool delete bcd.hive {...} timeout`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(args)
		},
	}
	return cmd
}

func runDelete(args []string) error {
	hivePath := args[0]
	objectID := args[1]

	printVerbose("Opening hive: %s\n", hivePath)

	store, err := loadStore("delete", hivePath)
	if err != nil {
		return err
	}

	id, err := bcd.ParseGuid(objectID)
	if err != nil {
		return fmt.Errorf("invalid object id %q: %w", objectID, err)
	}

	if len(args) == 2 {
		if err := store.DeleteObject(id); err != nil {
			return fmt.Errorf("failed to delete object: %w", err)
		}
		if err := saveStore("delete", hivePath, store); err != nil {
			return err
		}
		printInfo("deleted %s\n", id.String())
		return nil
	}

	obj, ok := store.FindObjectByID(id)
	if !ok {
		return fmt.Errorf("object %s not found", id.String())
	}

	elementType, err := resolveElementType(args[2])
	if err != nil {
		return err
	}
	if err := obj.RemoveElement(elementType); err != nil {
		return fmt.Errorf("failed to remove element: %w", err)
	}

	if err := saveStore("delete", hivePath, store); err != nil {
		return err
	}
	printInfo("removed %s from %s\n", elementDisplayName(elementType), id.String())
	return nil
}
