// Package links reports root-relative links whose targets do not exist in
// the build directory.
package links

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fwojciec/distcheck"
)

// Validator identity.
const (
	Name  = "links"
	Label = "Internal links"
)

var urlAttrRe = regexp.MustCompile(`(?i)(?:href|src)=(?:"([^"]*)"|'([^']*)')`)

// skippedPrefixes mark absolute, fragment-only and non-navigational URLs.
var skippedPrefixes = []string{
	"http://",
	"https://",
	"//",
	"#",
	"mailto:",
	"tel:",
	"javascript:",
	"data:",
}

// Ensure Validator implements distcheck.Validator at compile time.
var _ distcheck.Validator = (*Validator)(nil)

// Validator resolves every root-relative href/src of every page against the
// build directory.
type Validator struct {
	Runner distcheck.Runner
	Paths  distcheck.PathChecker
}

// NewValidator creates a new Validator.
func NewValidator(runner distcheck.Runner, paths distcheck.PathChecker) *Validator {
	return &Validator{Runner: runner, Paths: paths}
}

func (v *Validator) Name() string  { return Name }
func (v *Validator) Label() string { return Label }

// Validate checks every page under dir.
func (v *Validator) Validate(ctx context.Context, dir string) (*distcheck.Report, error) {
	result, err := v.Runner.Run(ctx, dir, func(ctx context.Context, page *distcheck.Page) ([]string, error) {
		return v.CheckPage(ctx, dir, page)
	})
	if err != nil {
		return nil, err
	}
	return distcheck.NewReport(Name, Label, result), nil
}

// CheckPage returns one warning per internal URL of page that does not
// resolve under dir.
func (v *Validator) CheckPage(_ context.Context, dir string, page *distcheck.Page) ([]string, error) {
	var warnings []string
	for _, u := range ExtractInternalURLs(page.HTML) {
		if !v.exists(dir, u) {
			warnings = append(warnings, "Internal link not found: "+u)
		}
	}
	return warnings, nil
}

func (v *Validator) exists(dir, urlPath string) bool {
	for _, candidate := range Candidates(dir, urlPath) {
		if v.Paths.Exists(candidate) {
			return true
		}
	}
	return false
}

// ExtractInternalURLs returns the unique root-relative URLs referenced by
// href or src attributes, without fragment or query, in first-seen order.
func ExtractInternalURLs(html string) []string {
	var urls []string
	seen := make(map[string]bool)

	for _, m := range urlAttrRe.FindAllStringSubmatch(html, -1) {
		raw := strings.TrimSpace(m[1] + m[2])
		if raw == "" || isSkipped(raw) || !strings.HasPrefix(raw, "/") {
			continue
		}

		clean := raw
		if i := strings.IndexByte(clean, '#'); i >= 0 {
			clean = clean[:i]
		}
		if i := strings.IndexByte(clean, '?'); i >= 0 {
			clean = clean[:i]
		}
		if clean == "" || seen[clean] {
			continue
		}
		seen[clean] = true
		urls = append(urls, clean)
	}
	return urls
}

func isSkipped(raw string) bool {
	for _, prefix := range skippedPrefixes {
		if strings.HasPrefix(raw, prefix) {
			return true
		}
	}
	return false
}

// Candidates returns the file system paths that satisfy urlPath, in the
// order they are tried: "/" maps to the root index.html; any other URL maps
// to the path itself, then to its index.html, then to the path plus ".html".
// Percent-escapes are not decoded.
func Candidates(dir, urlPath string) []string {
	if urlPath == "/" {
		return []string{filepath.Join(dir, "index.html")}
	}

	rel := filepath.FromSlash(strings.TrimPrefix(urlPath, "/"))
	return []string{
		filepath.Join(dir, rel),
		filepath.Join(dir, rel, "index.html"),
		filepath.Join(dir, rel+".html"),
	}
}
