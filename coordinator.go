package distcheck

import (
	"context"
	"io"
)

// Coordinator selects validators by name and runs them one after another
// against the same build directory.
type Coordinator struct {
	// Dir is the build directory passed to every validator.
	Dir string

	// Out receives a summary per report. Nil disables summaries.
	Out io.Writer

	validators []Validator
	byName     map[string]Validator
}

// NewCoordinator creates a Coordinator. The order of validators defines the
// order used for the "all" selector. A later validator with a duplicate
// name replaces the earlier one.
func NewCoordinator(dir string, validators ...Validator) *Coordinator {
	c := &Coordinator{
		Dir:    dir,
		byName: make(map[string]Validator, len(validators)),
	}
	index := make(map[string]int, len(validators))
	for _, v := range validators {
		if i, ok := index[v.Name()]; ok {
			c.validators[i] = v
		} else {
			index[v.Name()] = len(c.validators)
			c.validators = append(c.validators, v)
		}
		c.byName[v.Name()] = v
	}
	return c
}

// Names returns the registered validator names in "all" order.
func (c *Coordinator) Names() []string {
	names := make([]string, 0, len(c.validators))
	for _, v := range c.validators {
		names = append(names, v.Name())
	}
	return names
}

// Run resolves selector and runs the selected validators sequentially in
// the resolved order. Selection errors are returned before any validator
// touches the file system. A validator error aborts the run and no further
// reports are produced.
func (c *Coordinator) Run(ctx context.Context, selector string) ([]*Report, error) {
	names, err := ParseSelector(selector, c.Names())
	if err != nil {
		return nil, err
	}

	reports := make([]*Report, 0, len(names))
	for _, name := range names {
		report, err := c.RunValidator(ctx, name)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// RunValidator runs one validator by name.
// Returns EINVALID if no validator is registered under name.
func (c *Coordinator) RunValidator(ctx context.Context, name string) (*Report, error) {
	v, ok := c.byName[name]
	if !ok {
		return nil, Errorf(EINVALID, "Unknown validator: %s", name)
	}

	report, err := v.Validate(ctx, c.Dir)
	if err != nil {
		return nil, err
	}
	if c.Out != nil {
		FormatReport(c.Out, report)
	}
	return report, nil
}
