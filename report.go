package distcheck

import "context"

// Warning is a non-fatal finding attributed to a route.
type Warning struct {
	Route   string `json:"route"`
	Message string `json:"message"`
}

// String renders the warning as "[WARN] <route> -> <message>".
func (w Warning) String() string {
	return "[WARN] " + w.Route + " -> " + w.Message
}

// Report is the outcome of one validator run.
type Report struct {
	Name         string   `json:"name"`
	Label        string   `json:"label"`
	CheckedPages int      `json:"checkedPages"`
	Warnings     []string `json:"warnings"`
}

// NewReport builds a Report from a runner Result.
func NewReport(name, label string, result *Result) *Report {
	r := &Report{
		Name:     name,
		Label:    label,
		Warnings: []string{},
	}
	if result == nil {
		return r
	}
	r.CheckedPages = result.CheckedPages
	for _, w := range result.Warnings {
		r.Warnings = append(r.Warnings, w.String())
	}
	return r
}

// Validator checks one concern across every page of a build directory.
type Validator interface {
	// Name returns the identifier used in selectors (e.g., "jsonld").
	Name() string

	// Label returns the human-readable name used in summaries.
	Label() string

	// Validate checks all pages under dir.
	// Returns ENOTFOUND if dir cannot be accessed.
	Validate(ctx context.Context, dir string) (*Report, error)
}
