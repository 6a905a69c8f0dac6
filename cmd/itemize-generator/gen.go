package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"itemize-generator/internal/emit"
)

func newGenCmd(opts *options) *cobra.Command {
	var (
		configPath string
		outputDir  string
		noComments bool
		noManifest bool
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate impls for every declaration",
		Long: `Compile the declaration file, generate every declaration and write one
source file per target into the output directory, plus a manifest listing
what was generated.

Declarations with errors are reported and skipped; the command then exits
non-zero after writing the others.`,
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

			cfg := emit.DefaultConfig()
			cfg.OutputDir = outputDir
			cfg.GenerateComments = !noComments

			if noManifest {
				cfg.ManifestName = ""
			}

			r := emit.NewRenderer(cfg)

			files, err := r.RenderAll(out.Sets)
			if err != nil {
				return err
			}

			if err := emit.WriteFiles(files, outputDir); err != nil {
				return err
			}

			manifest := r.NewManifest(out.Sets, false)

			// A rejected declaration is missing from the manifest but its
			// previous output is still the best available, so only prune on a
			// clean run.
			if out.Rejected() == 0 {
				removed, err := r.PruneStale(manifest, outputDir)
				if err != nil {
					return err
				}

				for _, name := range removed {
					log.InfoContext(cmd.Context(), "removed stale output", "file", name)
				}
			}

			if err := r.WriteManifest(manifest, outputDir); err != nil {
				return fmt.Errorf("writing manifest: %w", err)
			}

			log.LogRun(cmd.Context(), out.Declarations, out.Rejected(), len(files))

			return rejectedError(out)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "declaration file")
	cmd.Flags().StringVarP(&outputDir, "output", "o", emit.DefaultConfig().OutputDir, "output directory")
	cmd.Flags().BoolVar(&noComments, "no-comments", false, "omit the comment above each impl")
	cmd.Flags().BoolVar(&noManifest, "no-manifest", false, "do not write the manifest")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
