package mock

import (
	"context"

	"github.com/fwojciec/distcheck"
)

var _ distcheck.Validator = (*Validator)(nil)

// Validator is a mock implementation of distcheck.Validator.
type Validator struct {
	NameFn     func() string
	LabelFn    func() string
	ValidateFn func(ctx context.Context, dir string) (*distcheck.Report, error)
}

func (v *Validator) Name() string {
	return v.NameFn()
}

func (v *Validator) Label() string {
	return v.LabelFn()
}

func (v *Validator) Validate(ctx context.Context, dir string) (*distcheck.Report, error) {
	return v.ValidateFn(ctx, dir)
}

var _ distcheck.Runner = (*Runner)(nil)

// Runner is a mock implementation of distcheck.Runner.
type Runner struct {
	RunFn func(ctx context.Context, dir string, fn distcheck.PageFunc) (*distcheck.Result, error)
}

func (r *Runner) Run(ctx context.Context, dir string, fn distcheck.PageFunc) (*distcheck.Result, error) {
	return r.RunFn(ctx, dir, fn)
}
