// Package meta validates required SEO metadata and recommended content
// lengths for the title and description.
package meta

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/fwojciec/distcheck"
)

// Validator identity.
const (
	Name  = "meta"
	Label = "SEO metadata"
)

// Check is one required-tag rule.
type Check struct {
	Label   string
	Present func(html string) bool
}

// RequiredChecks are the tags expected on every page, in reporting order.
var RequiredChecks = []Check{
	{Label: "meta title", Present: func(html string) bool { return distcheck.TitleText(html) != "" }},
	{Label: "meta description", Present: func(html string) bool { return HasMeta(html, "description", false) }},
	{Label: "canonical", Present: HasCanonical},
	{Label: "meta robots", Present: func(html string) bool { return HasMeta(html, "robots", false) }},
	{Label: "og:title", Present: func(html string) bool { return HasMeta(html, "og:title", true) }},
	{Label: "og:description", Present: func(html string) bool { return HasMeta(html, "og:description", true) }},
	{Label: "og:url", Present: func(html string) bool { return HasMeta(html, "og:url", true) }},
	{Label: "og:type", Present: func(html string) bool { return HasMeta(html, "og:type", true) }},
}

// Ensure Validator implements distcheck.Validator at compile time.
var _ distcheck.Validator = (*Validator)(nil)

// Validator checks required meta/OpenGraph tags and, when configured,
// recommended title and description lengths.
type Validator struct {
	Config distcheck.MetaConfig
	Runner distcheck.Runner
}

// NewValidator creates a new Validator.
func NewValidator(cfg distcheck.MetaConfig, runner distcheck.Runner) *Validator {
	return &Validator{Config: cfg, Runner: runner}
}

func (v *Validator) Name() string  { return Name }
func (v *Validator) Label() string { return Label }

// Validate checks every page under dir.
func (v *Validator) Validate(ctx context.Context, dir string) (*distcheck.Report, error) {
	result, err := v.Runner.Run(ctx, dir, v.CheckPage)
	if err != nil {
		return nil, err
	}
	return distcheck.NewReport(Name, Label, result), nil
}

// CheckPage runs every required-tag rule, then the length rules.
func (v *Validator) CheckPage(_ context.Context, page *distcheck.Page) ([]string, error) {
	return v.Check(page.HTML), nil
}

// Check returns the metadata warnings for one HTML document.
func (v *Validator) Check(html string) []string {
	var warnings []string
	for _, c := range RequiredChecks {
		if !c.Present(html) {
			warnings = append(warnings, "Missing "+c.Label+".")
		}
	}

	if msg, ok := LengthWarning("meta title", distcheck.TitleText(html), v.Config.TitleMinLength, v.Config.TitleMaxLength); ok {
		warnings = append(warnings, msg)
	}
	if msg, ok := LengthWarning("meta description", MetaContent(html, "description", false), v.Config.DescriptionMinLength, v.Config.DescriptionMaxLength); ok {
		warnings = append(warnings, msg)
	}
	return warnings
}

// LengthWarning reports a non-empty value whose length falls outside
// [min, max]. A nil min means 1 and a nil max means unbounded. Length is
// counted in UTF-16 code units, the unit browsers and search engines use
// for string length.
func LengthWarning(field, value string, min, max *int) (string, bool) {
	if value == "" {
		return "", false
	}

	lo, hi := 1, -1
	if min != nil {
		lo = *min
	}
	if max != nil {
		hi = *max
	}

	n := len(utf16.Encode([]rune(value)))
	if n >= lo && (hi < 0 || n <= hi) {
		return "", false
	}

	upper := "Infinity"
	if hi >= 0 {
		upper = strconv.Itoa(hi)
	}
	return fmt.Sprintf("Recommended %s length is %d-%s. Current: %d.", field, lo, upper, n), true
}

// HasMeta reports whether a meta tag keyed by name (or by property when
// isProperty is set) exists with non-empty content.
func HasMeta(html, name string, isProperty bool) bool {
	return MetaContent(html, name, isProperty) != ""
}

// MetaContent returns the first non-empty content of a meta tag keyed by
// name (or by property when isProperty is set). Keys match exactly.
func MetaContent(html, name string, isProperty bool) string {
	keyAttr := "name"
	if isProperty {
		keyAttr = "property"
	}

	for _, tag := range distcheck.Tags(html, "meta") {
		key, ok := distcheck.Attr(tag, keyAttr)
		if !ok || key != name {
			continue
		}
		if content, ok := distcheck.Attr(tag, "content"); ok {
			return content
		}
	}
	return ""
}

// HasCanonical reports whether a <link rel="canonical"> with a non-empty
// href exists.
func HasCanonical(html string) bool {
	for _, tag := range distcheck.Tags(html, "link") {
		rel, ok := distcheck.Attr(tag, "rel")
		if !ok || strings.ToLower(rel) != "canonical" {
			continue
		}
		if _, ok := distcheck.Attr(tag, "href"); ok {
			return true
		}
	}
	return false
}
