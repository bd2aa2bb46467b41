package distcheck

import (
	"fmt"
	"io"
)

// FormatReport writes a human-readable summary of a report: a header with
// the label, the number of checked pages, and either a success line or
// every warning on its own line.
func FormatReport(w io.Writer, r *Report) {
	fmt.Fprintf(w, "\n=== %s ===\n", r.Label)
	fmt.Fprintf(w, "Checked %d HTML pages.\n", r.CheckedPages)

	if len(r.Warnings) == 0 {
		fmt.Fprintln(w, "✅ No warnings.")
		return
	}

	fmt.Fprintf(w, "⚠️  Warnings found: %d\n", len(r.Warnings))
	for _, warning := range r.Warnings {
		fmt.Fprintln(w, warning)
	}
}
