package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tinylobby/sv"
	"github.com/tinylobby/sv/wire"
)

func newSchemaCmd() *cobra.Command {
	var class string
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of a class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cls, err := lookupClass(class)
			if err != nil {
				return err
			}
			s, err := sv.JSONSchema(cls)
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(s, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
	cmd.Flags().StringVarP(&class, "class", "c", "", "class to export")
	return cmd
}

func newClassesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "List the known classes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, n := range wire.Classes.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
		},
	}
}
