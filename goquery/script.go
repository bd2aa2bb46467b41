// Package goquery extracts content from HTML documents using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/distcheck"
	"golang.org/x/net/html"
)

// Ensure ScriptExtractor implements distcheck.ScriptExtractor at compile time.
var _ distcheck.ScriptExtractor = (*ScriptExtractor)(nil)

// ScriptExtractor returns the bodies of inline <script> elements of a given
// media type.
type ScriptExtractor struct{}

// NewScriptExtractor creates a new ScriptExtractor.
func NewScriptExtractor() *ScriptExtractor {
	return &ScriptExtractor{}
}

// ExtractScripts parses HTML and returns the trimmed, non-empty bodies of
// every <script> whose type attribute equals mediaType case-insensitively.
// Script bodies are raw text, so JSON is returned exactly as written.
func (e *ScriptExtractor) ExtractScripts(rawHTML string, mediaType string) ([]string, error) {
	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, distcheck.Errorf(distcheck.EINVALID, "failed to parse HTML: %v", err)
	}
	doc := goquery.NewDocumentFromNode(root)

	var bodies []string
	doc.Find("script[type]").Each(func(_ int, sel *goquery.Selection) {
		typ, _ := sel.Attr("type")
		if !strings.EqualFold(strings.TrimSpace(typ), mediaType) {
			return
		}
		body := strings.TrimSpace(scriptText(sel.Get(0)))
		if body == "" {
			return
		}
		bodies = append(bodies, body)
	})
	return bodies, nil
}

// scriptText concatenates the raw text children of a script node.
func scriptText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}
