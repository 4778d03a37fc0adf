package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bcdkit/pkg/bcd"
)

func init() {
	rootCmd.AddCommand(newCreateCmd())
}

func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <hive> <object-type>",
		Short: "Create a new BCD object with a generated id",
		Long: `The create command adds a new object to the BCD store, assigning it a
freshly generated GUID. object-type is either a known name (bootmgr,
osloader, resume, inheritance) or a raw 0x-prefixed hex value.

Example:
  bcdtool create bcd.hive osloader`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(args)
		},
	}
	return cmd
}

func runCreate(args []string) error {
	hivePath := args[0]
	objectType, err := parseObjectType(args[1])
	if err != nil {
		return err
	}

	printVerbose("Opening hive: %s\n", hivePath)

	store, err := loadStore("create", hivePath)
	if err != nil {
		return err
	}

	id := bcd.GenerateGuid()
	obj := bcd.NewObject(id, objectType, store.Limits())
	if err := store.AddObject(obj); err != nil {
		return fmt.Errorf("failed to add object: %w", err)
	}

	if err := saveStore("create", hivePath, store); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]string{"id": id.String()})
	}
	printInfo("%s\n", id.String())
	return nil
}

func parseObjectType(text string) (uint32, error) {
	switch strings.ToLower(text) {
	case "bootmgr":
		return bcd.ObjectTypeBootMgr, nil
	case "osloader":
		return bcd.ObjectTypeOSLoader, nil
	case "resume":
		return bcd.ObjectTypeResume, nil
	case "inheritance":
		return bcd.ObjectTypeInheritance, nil
	}

	v, err := strconv.ParseUint(strings.TrimPrefix(text, "0x"), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid object type %q: not a known name or hex value", text)
	}
	return uint32(v), nil
}
