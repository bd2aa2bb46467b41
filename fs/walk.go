// Package fs implements page enumeration and the shared validation
// pipeline over a build directory on the local file system.
package fs

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/distcheck"
)

// EnsureDir returns ENOTFOUND if dir cannot be accessed and EINVALID if it
// is not a directory.
func EnsureDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return distcheck.Errorf(distcheck.ENOTFOUND, "Directory does not exist: %s", dir)
	}
	if !info.IsDir() {
		return distcheck.Errorf(distcheck.EINVALID, "Not a directory: %s", dir)
	}
	return nil
}

// Walk returns the paths of all regular files with an .html extension
// under root, found by recursive descent in lexical order.
func Walk(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && strings.HasSuffix(d.Name(), ".html") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// Route derives the route of file relative to root.
func Route(root, file string) (string, error) {
	rel, err := filepath.Rel(root, file)
	if err != nil {
		return "", err
	}
	return distcheck.RouteFor(filepath.ToSlash(rel)), nil
}
