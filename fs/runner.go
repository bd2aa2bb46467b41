package fs

import (
	"context"
	"fmt"
	"os"

	"github.com/fwojciec/distcheck"
	"golang.org/x/sync/errgroup"
)

// Ensure Runner implements distcheck.Runner at compile time.
var _ distcheck.Runner = (*Runner)(nil)

// Runner walks a build directory and applies a page check to every HTML file
// whose route is not excluded.
type Runner struct {
	// Exclude lists route prefixes to skip. Nil means distcheck.DefaultExcludes.
	Exclude []string

	// Concurrency is the number of pages checked at once. Values below 2
	// check pages one after another.
	Concurrency int
}

// NewRunner creates a Runner with the given route exclusions.
func NewRunner(exclude []string) *Runner {
	return &Runner{Exclude: exclude}
}

// pageResult holds the warnings of one page at its traversal position.
type pageResult struct {
	warnings []distcheck.Warning
	err      error
}

// Run checks every page under dir. Warnings are returned in traversal order,
// then in check order within a page, regardless of Concurrency.
func (r *Runner) Run(ctx context.Context, dir string, fn distcheck.PageFunc) (*distcheck.Result, error) {
	if err := EnsureDir(dir); err != nil {
		return nil, err
	}

	files, err := Walk(dir)
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}

	results := make([]pageResult, len(files))
	if r.Concurrency > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(r.Concurrency)
		for i, file := range files {
			g.Go(func() error {
				results[i] = r.checkFile(gctx, dir, file, fn)
				return results[i].err
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, file := range files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = r.checkFile(ctx, dir, file, fn)
			if results[i].err != nil {
				return nil, results[i].err
			}
		}
	}

	result := &distcheck.Result{CheckedPages: len(files)}
	for _, pr := range results {
		result.Warnings = append(result.Warnings, pr.warnings...)
	}
	return result, nil
}

func (r *Runner) checkFile(ctx context.Context, dir, file string, fn distcheck.PageFunc) pageResult {
	route, err := Route(dir, file)
	if err != nil {
		return pageResult{err: err}
	}

	exclude := r.Exclude
	if exclude == nil {
		exclude = distcheck.DefaultExcludes
	}
	if distcheck.Excluded(route, exclude) {
		return pageResult{}
	}

	content, err := os.ReadFile(file)
	if err != nil {
		return pageResult{err: fmt.Errorf("read %s: %w", file, err)}
	}

	messages, err := fn(ctx, &distcheck.Page{Path: file, Route: route, HTML: string(content)})
	if err != nil {
		return pageResult{err: fmt.Errorf("check %s: %w", route, err)}
	}

	warnings := make([]distcheck.Warning, 0, len(messages))
	for _, msg := range messages {
		warnings = append(warnings, distcheck.Warning{Route: route, Message: msg})
	}
	return pageResult{warnings: warnings}
}
