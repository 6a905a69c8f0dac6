package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(opts *options) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a declaration file without writing output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := opts.logger(cmd)
			if err != nil {
				return err
			}

			out, err := generateFile(cmd.Context(), configPath, opts.engine(), opts.jobs, log)
			if err != nil {
				return err
			}

			printDiagnostics(cmd.ErrOrStderr(), &out.Diagnostics, useColor(cmd.ErrOrStderr(), opts.noColor))

			if err := rejectedError(out); err != nil {
				return err
			}

			impls := 0
			for _, set := range out.Sets {
				impls += set.Len()
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d declarations, %d impls\n", configPath, len(out.Sets), impls)

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "declaration file")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
