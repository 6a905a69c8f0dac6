package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"itemize-generator/internal/emit"
	"itemize-generator/internal/ir"
)

func newDescribeCmd(opts *options) *cobra.Command {
	var (
		configPath string
		target     string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the generated impls to stdout",
		Long: `Print what gen would produce, without writing files.

Formats:
  text  the rendered impls
  yaml  the manifest, with bodies
  dump  a structural dump of the descriptors`,
		Args: cobra.NoArgs,
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

			sets := out.Sets
			if target != "" {
				sets = filterTarget(sets, target)
				if len(sets) == 0 {
					return fmt.Errorf("no generated declaration for target %q", target)
				}
			}

			if err := describe(cmd.OutOrStdout(), sets, format); err != nil {
				return err
			}

			return rejectedError(out)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "declaration file")
	cmd.Flags().StringVarP(&target, "target", "t", "", "only describe this target")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, yaml or dump")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func filterTarget(sets []*ir.DescriptorSet, target string) []*ir.DescriptorSet {
	for _, s := range sets {
		if s.Target == target {
			return []*ir.DescriptorSet{s}
		}
	}

	return nil
}

func describe(w io.Writer, sets []*ir.DescriptorSet, format string) error {
	r := emit.NewRenderer(emit.DefaultConfig())

	switch format {
	case "text":
		for _, set := range sets {
			f, err := r.Render(set)
			if err != nil {
				return err
			}

			if _, err := w.Write(f.Content); err != nil {
				return err
			}
		}
	case "yaml":
		data, err := r.NewManifest(sets, true).Marshal()
		if err != nil {
			return err
		}

		if _, err := w.Write(data); err != nil {
			return err
		}
	case "dump":
		for _, set := range sets {
			if _, err := io.WriteString(w, emit.Dump(set)); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unknown format %q (want text, yaml or dump)", format)
	}

	return nil
}
