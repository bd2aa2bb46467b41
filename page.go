package distcheck

import (
	"context"
	"path"
	"strings"
)

// DefaultExcludes lists the route prefixes skipped by default. The CMS admin
// bundle is generated alongside the site but is not part of it.
var DefaultExcludes = []string{"/decapcms"}

// Page represents one generated HTML file in the build directory.
type Page struct {
	Path  string // absolute file path
	Route string // root-relative URL, always starts with "/"
	HTML  string
}

// RouteFor converts a slash-separated path relative to the build directory
// into a route: "index.html" → "/", "a/index.html" → "/a", "a/b.html" → "/a/b".
func RouteFor(rel string) string {
	rel = strings.TrimPrefix(path.Clean("/"+rel), "/")
	if rel == "index.html" {
		return "/"
	}
	if strings.HasSuffix(rel, "/index.html") {
		return "/" + strings.TrimSuffix(rel, "/index.html")
	}
	return "/" + strings.TrimSuffix(rel, ".html")
}

// Excluded reports whether route starts with any of the given prefixes.
func Excluded(route string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(route, p) {
			return true
		}
	}
	return false
}

// PageFunc checks a single page and returns its warning messages.
// Implementations must not mutate the page or the build directory.
type PageFunc func(ctx context.Context, page *Page) ([]string, error)

// Result holds the outcome of running a PageFunc over a build directory.
type Result struct {
	// CheckedPages counts every HTML file found, including excluded ones.
	CheckedPages int
	Warnings     []Warning
}

// Runner enumerates the pages of a build directory and applies a PageFunc
// to each one that is not excluded.
type Runner interface {
	// Run returns ENOTFOUND if dir cannot be accessed. No page is checked
	// in that case.
	Run(ctx context.Context, dir string, fn PageFunc) (*Result, error)
}
