package fs

import (
	"os"
	"sync"

	"github.com/fwojciec/distcheck"
)

// Ensure PathChecker implements distcheck.PathChecker at compile time.
var _ distcheck.PathChecker = (*PathChecker)(nil)

// PathChecker probes the file system and remembers every answer, so links
// repeated across pages are probed once. It is safe for concurrent use.
type PathChecker struct {
	mu    sync.Mutex
	cache map[string]bool
}

// NewPathChecker creates a new PathChecker with an empty cache.
func NewPathChecker() *PathChecker {
	return &PathChecker{cache: make(map[string]bool)}
}

// Exists reports whether a file or directory exists at path.
func (c *PathChecker) Exists(path string) bool {
	c.mu.Lock()
	exists, ok := c.cache[path]
	c.mu.Unlock()
	if ok {
		return exists
	}

	_, err := os.Stat(path)
	exists = err == nil

	c.mu.Lock()
	c.cache[path] = exists
	c.mu.Unlock()
	return exists
}
