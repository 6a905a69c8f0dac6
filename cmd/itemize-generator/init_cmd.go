package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"itemize-generator/internal/ir"
	"itemize-generator/internal/schema"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init <file>",
		Short: "Write a starter declaration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			if err := schema.WriteFile(starterFile(), path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

// starterFile declares one target accepting every shape.
func starterFile() *schema.File {
	return &schema.File{
		Version: schema.CurrentVersion,
		Crate:   ir.DefaultCratePath,
		Declarations: []schema.Declaration{{
			Target: "Wrapped",
			ItemsFrom: &schema.ItemsFrom{
				Types:       schema.StringOrArray{"String", "char"},
				Tuples:      &schema.TupleArity{Range: ir.UpTo(2)},
				Collections: schema.StringOrArray{"vec", "slice", "array"},
			},
		}},
	}
}
