package mock

import "github.com/fwojciec/distcheck"

// Compile-time interface verification.
var (
	_ distcheck.ScriptExtractor = (*ScriptExtractor)(nil)
	_ distcheck.PathChecker     = (*PathChecker)(nil)
)

// ScriptExtractor is a mock implementation of distcheck.ScriptExtractor.
type ScriptExtractor struct {
	ExtractScriptsFn func(html string, mediaType string) ([]string, error)
}

func (e *ScriptExtractor) ExtractScripts(html string, mediaType string) ([]string, error) {
	return e.ExtractScriptsFn(html, mediaType)
}

// PathChecker is a mock implementation of distcheck.PathChecker.
type PathChecker struct {
	ExistsFn func(path string) bool
}

func (c *PathChecker) Exists(path string) bool {
	return c.ExistsFn(path)
}
