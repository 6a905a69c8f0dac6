package main

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"itemize-generator/internal/diagnostic"
	"itemize-generator/internal/engine"
	"itemize-generator/internal/ir"
	"itemize-generator/internal/logging"
	"itemize-generator/internal/schema"
)

// outcome is the result of compiling and generating one declaration file.
type outcome struct {
	// Sets holds one descriptor set per generated declaration, in file order.
	Sets        []*ir.DescriptorSet
	Diagnostics diagnostic.Diagnostics
	// Declarations counts the declarations in the file.
	Declarations int
}

// Rejected returns the number of declarations that produced no descriptors.
func (o *outcome) Rejected() int {
	return o.Declarations - len(o.Sets)
}

// generateFile compiles the file at path and generates every declaration
// that compiled. Declarations run concurrently on up to jobs goroutines;
// results are stored by index so the output order never depends on scheduling.
func generateFile(ctx context.Context, path string, eng *engine.Engine, jobs int, log *logging.Logger) (*outcome, error) {
	f, err := schema.LoadFile(path)
	if err != nil {
		return nil, err
	}

	res := schema.Compile(f)
	out := &outcome{Diagnostics: res.Diagnostics, Declarations: len(f.Declarations)}

	var (
		specs = res.Specifications
		sets  = make([]*ir.DescriptorSet, len(specs))
		errs  = make([]error, len(specs))
	)

	g, gctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}

	for i, spec := range specs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			set, err := eng.Generate(spec)

			impls := 0
			if set != nil {
				impls = set.Len()
			}

			log.WithTarget(spec.Target).LogGenerate(gctx, impls, time.Since(start), err)

			sets[i], errs[i] = set, err

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("generating %s: %w", path, err)
	}

	for i, set := range sets {
		if errs[i] != nil {
			out.Diagnostics.AddError(diagnostic.CodeGenerationFailed, errs[i].Error(), specs[i].Target, "")
			continue
		}

		out.Sets = append(out.Sets, set)
	}

	return out, nil
}
