package main

import (
	"fmt"

	"github.com/billerone/billerone-web/pkg/cedula"
	"github.com/spf13/cobra"
)

func newCedulaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cedula <id> [id...]",
		Short: "Check national identifiers",
		Long:  "Validate the length and check digit of one or more national identifiers. Dashes and spaces are ignored.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invalid := 0
			for _, id := range args {
				if err := cedula.Validate(id); err != nil {
					invalid++
					fmt.Fprintf(cmd.OutOrStdout(), "%s\tinvalid: %v\n", id, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tvalid\n", cedula.Normalize(id))
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d identifiers are invalid", invalid, len(args))
			}
			return nil
		},
	}
}
