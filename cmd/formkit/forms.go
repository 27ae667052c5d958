package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newFormsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "forms",
		Short: "List the declared forms and their fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.cfg.LoadRegistry()
			if err != nil {
				return err
			}
			for _, name := range reg.Names() {
				schema, err := reg.Get(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, strings.Join(schema.Fields(), ", "))
			}
			return nil
		},
	}
}
