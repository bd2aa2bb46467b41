// Package jsonld validates embedded JSON-LD structured data and its
// language consistency with the page.
package jsonld

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/fwojciec/distcheck"
)

// Validator identity.
const (
	Name  = "jsonld"
	Label = "JSON-LD"
)

// Page-level warning messages.
const (
	MsgNoBlock         = "No JSON-LD block was found."
	MsgInvalidJSON     = "At least one JSON-LD block has invalid JSON."
	MsgNoNodes         = "JSON-LD exists but has no nodes in @graph."
	MsgMissingHTMLLang = `Missing <html lang="..."> value to validate JSON-LD language consistency.`
	MsgMissingLanguage = "No inLanguage property was found in JSON-LD."
	MsgEmptyInLanguage = "Found empty or null inLanguage value(s) in JSON-LD."

	msgLangMismatch = `No JSON-LD inLanguage matches <html lang="%s">.`
)

// Ensure Validator implements distcheck.Validator at compile time.
var _ distcheck.Validator = (*Validator)(nil)

// Validator checks that every page carries parseable JSON-LD and, depending
// on Config, that its inLanguage values agree with <html lang>.
type Validator struct {
	Config  distcheck.JSONLDConfig
	Runner  distcheck.Runner
	Scripts distcheck.ScriptExtractor
}

// NewValidator creates a new Validator.
func NewValidator(cfg distcheck.JSONLDConfig, runner distcheck.Runner, scripts distcheck.ScriptExtractor) *Validator {
	return &Validator{Config: cfg, Runner: runner, Scripts: scripts}
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

// CheckPage validates the JSON-LD of one page. Structural problems (no
// block, invalid JSON, no nodes) yield exactly one warning and skip the
// language rules.
func (v *Validator) CheckPage(_ context.Context, page *distcheck.Page) ([]string, error) {
	raw, err := v.Scripts.ExtractScripts(page.HTML, distcheck.JSONLDMediaType)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []string{MsgNoBlock}, nil
	}

	blocks, ok := ParseBlocks(raw)
	if !ok {
		return []string{MsgInvalidJSON}, nil
	}

	nodes := Nodes(blocks)
	if len(nodes) == 0 {
		return []string{MsgNoNodes}, nil
	}

	return v.checkLanguage(page.HTML, nodes), nil
}

func (v *Validator) checkLanguage(html string, nodes []any) []string {
	htmlLang := HTMLLang(html)
	values := CollectInLanguage(nodes)

	if v.Config.RequireHTMLLang && htmlLang == "" {
		return []string{MsgMissingHTMLLang}
	}
	if v.Config.RequireInLanguage && len(values) == 0 {
		return []string{MsgMissingLanguage}
	}

	var warnings []string
	if v.Config.DisallowEmptyInLanguage && HasEmptyInLanguage(values) {
		warnings = append(warnings, MsgEmptyInLanguage)
	}
	if v.Config.RequireLangMatch && htmlLang != "" && !MatchesLang(values, htmlLang) {
		warnings = append(warnings, fmt.Sprintf(msgLangMismatch, htmlLang))
	}
	return warnings
}

// ParseBlocks decodes each raw JSON-LD block. ok is false if any block is
// not valid JSON.
func ParseBlocks(raw []string) (blocks []any, ok bool) {
	blocks = make([]any, 0, len(raw))
	for _, body := range raw {
		var block any
		if err := json.Unmarshal([]byte(body), &block); err != nil {
			return nil, false
		}
		blocks = append(blocks, block)
	}
	return blocks, true
}

// Nodes flattens parsed blocks into one node list. A block with a top-level
// "@graph" array contributes its elements; any other block is one node.
func Nodes(blocks []any) []any {
	var nodes []any
	for _, block := range blocks {
		if obj, ok := block.(map[string]any); ok {
			if graph, ok := obj["@graph"].([]any); ok {
				nodes = append(nodes, graph...)
				continue
			}
		}
		nodes = append(nodes, block)
	}
	return nodes
}

// CollectInLanguage returns every value stored under an "inLanguage" key at
// any depth of the tree.
func CollectInLanguage(tree any) []any {
	var out []any
	collectInLanguage(tree, &out)
	return out
}

func collectInLanguage(node any, out *[]any) {
	switch n := node.(type) {
	case []any:
		for _, item := range n {
			collectInLanguage(item, out)
		}
	case map[string]any:
		if value, ok := n["inLanguage"]; ok {
			*out = append(*out, value)
		}
		for _, value := range n {
			collectInLanguage(value, out)
		}
	}
}

// HasEmptyInLanguage reports whether any value is null, a blank string, or
// an array holding null or a blank string.
func HasEmptyInLanguage(values []any) bool {
	for _, value := range values {
		switch v := value.(type) {
		case nil:
			return true
		case string:
			if strings.TrimSpace(v) == "" {
				return true
			}
		case []any:
			for _, item := range v {
				if item == nil {
					return true
				}
				if s, ok := item.(string); ok && strings.TrimSpace(s) == "" {
					return true
				}
			}
		}
	}
	return false
}

// MatchesLang reports whether any string value, directly or inside an
// array, equals htmlLang after trimming, ignoring case.
func MatchesLang(values []any, htmlLang string) bool {
	want := strings.TrimSpace(htmlLang)
	for _, value := range values {
		switch v := value.(type) {
		case string:
			if strings.EqualFold(strings.TrimSpace(v), want) {
				return true
			}
		case []any:
			for _, item := range v {
				if s, ok := item.(string); ok && strings.EqualFold(strings.TrimSpace(s), want) {
					return true
				}
			}
		}
	}
	return false
}

var htmlLangRe = regexp.MustCompile(`(?i)<html[^>]*\blang=(?:"([^"]*)"|'([^']*)')`)

// HTMLLang returns the trimmed lang attribute of the root <html> element,
// or an empty string when it is absent.
func HTMLLang(html string) string {
	m := htmlLangRe.FindStringSubmatch(html)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1] + m[2])
}
