package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/distcheck"
	main "github.com/fwojciec/distcheck/cmd/distcheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodPage = `<!DOCTYPE html>
<html lang="en">
<head>
<title>Home</title>
<meta name="description" content="Welcome home.">
<link rel="canonical" href="https://example.com/">
<meta name="robots" content="index, follow">
<meta property="og:title" content="Home">
<meta property="og:description" content="Welcome home.">
<meta property="og:url" content="https://example.com/">
<meta property="og:type" content="website">
<script type="application/ld+json">{"@graph":[{"@type":"WebPage","inLanguage":"en"}]}</script>
</head>
<body><a href="/about">About</a></body>
</html>`

// newSite creates a build directory from slash-separated relative paths.
func newSite(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

// newMain returns a Main that ignores any config file in the working directory.
func newMain() *main.Main {
	m := main.NewMain()
	m.DefaultConfigPath = ""
	return m
}

// Story: CLI Help and Discovery

func TestCLI_ShowsHelpWhenAsked(t *testing.T) {
	t.Parallel()

	for _, flag := range []string{"--help", "-h"} {
		// Given: a CLI instance
		m := newMain()
		var stdout, stderr bytes.Buffer

		// When: running with a help flag
		err := m.Run(context.Background(), []string{flag}, &stdout, &stderr)

		// Then: help is displayed without running validators
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "distcheck")
		assert.Contains(t, stdout.String(), "--dir")
		assert.Contains(t, stdout.String(), "--quiet")
		assert.NotContains(t, stdout.String(), "validation started")
	}
}

func TestCLI_RejectsUnknownFlags(t *testing.T) {
	t.Parallel()

	m := newMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--bogus"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--bogus")
	assert.NotContains(t, stdout.String(), "validation started")
}

// Story: Running Validators
//
// With no arguments every validator runs against ./dist. Warnings are
// reported but never fail the run.

func TestCLI_RunsAllValidators(t *testing.T) {
	t.Parallel()

	// Given: a site with one clean page and one broken page
	dir := newSite(t, map[string]string{
		"index.html": goodPage,
		"about.html": `<html><body><a href="/missing">x</a></body></html>`,
	})
	m := newMain()
	var stdout, stderr bytes.Buffer

	// When: running all validators
	err := m.Run(context.Background(), []string{"--dir", dir}, &stdout, &stderr)

	// Then: warnings are printed but the run succeeds
	require.NoError(t, err)
	require.Len(t, m.Reports, 3)
	assert.Equal(t, "jsonld", m.Reports[0].Name)
	assert.Equal(t, "links", m.Reports[1].Name)
	assert.Equal(t, "meta", m.Reports[2].Name)

	out := stdout.String()
	assert.Contains(t, out, "=== Dist validation started ===")
	assert.Contains(t, out, "=== JSON-LD ===")
	assert.Contains(t, out, "Checked 2 HTML pages.")
	assert.Contains(t, out, "[WARN] /about -> No JSON-LD block was found.")
	assert.Contains(t, out, "[WARN] /about -> Internal link not found: /missing")
	assert.Contains(t, out, "[WARN] /about -> Missing canonical.")
	assert.Contains(t, out, "=== Dist validation completed ===")
	assert.NotContains(t, out, "[WARN] / ->")
}

func TestCLI_RunsSelectedValidators(t *testing.T) {
	t.Parallel()

	dir := newSite(t, map[string]string{"index.html": goodPage, "about.html": ""})
	m := newMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"JSONLD, meta", "--dir", dir}, &stdout, &stderr)

	require.NoError(t, err)
	require.Len(t, m.Reports, 2)
	assert.Equal(t, "jsonld", m.Reports[0].Name)
	assert.Equal(t, "meta", m.Reports[1].Name)
	assert.NotContains(t, stdout.String(), "=== Internal links ===")
}

func TestCLI_QuietSuppressesSummaries(t *testing.T) {
	t.Parallel()

	dir := newSite(t, map[string]string{"index.html": ""})
	m := newMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"meta", "--dir", dir, "--quiet"}, &stdout, &stderr)

	require.NoError(t, err)
	require.Len(t, m.Reports, 1)
	assert.Len(t, m.Reports[0].Warnings, 8)
	assert.NotContains(t, stdout.String(), "=== SEO metadata ===")
	assert.NotContains(t, stdout.String(), "[WARN]")
}

// Story: Fatal Errors

func TestCLI_FailsOnUnknownSelector(t *testing.T) {
	t.Parallel()

	m := newMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"bogus", "--dir", filepath.Join(t.TempDir(), "nope")}, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, distcheck.EINVALID, distcheck.ErrorCode(err))
	assert.Contains(t, distcheck.ErrorMessage(err), "bogus")
	assert.Nil(t, m.Reports)
}

func TestCLI_FailsOnMissingDirectory(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "dist")
	m := newMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--dir", missing}, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, distcheck.ENOTFOUND, distcheck.ErrorCode(err))
	assert.Equal(t, "Directory does not exist: "+missing, distcheck.ErrorMessage(err))
}

// Story: Configuration

func TestCLI_AppliesConfigFile(t *testing.T) {
	t.Parallel()

	// Given: a config enabling language matching and a title length range
	dir := newSite(t, map[string]string{
		"index.html":      `<html lang="fr"><title>Hi</title><script type="application/ld+json">{"inLanguage":"en"}</script></html>`,
		"drafts/wip.html": "",
		"decapcms/a.html": "",
	})
	config := filepath.Join(t.TempDir(), "distcheck.yaml")
	require.NoError(t, os.WriteFile(config, []byte(`
exclude: ["/drafts"]
jsonld:
  requireLangMatch: true
meta:
  metaTitleMinLength: 10
`), 0644))
	m := newMain()
	var stdout, stderr bytes.Buffer

	// When: running with the config
	err := m.Run(context.Background(), []string{"jsonld,meta", "--dir", dir, "--config", config}, &stdout, &stderr)

	// Then: configured rules apply and the configured subtree is skipped
	require.NoError(t, err)
	out := stdout.String()
	assert.Contains(t, out, `[WARN] / -> No JSON-LD inLanguage matches <html lang="fr">.`)
	assert.Contains(t, out, "[WARN] / -> Recommended meta title length is 10-Infinity. Current: 2.")
	assert.NotContains(t, out, "/drafts")
	assert.Contains(t, out, "[WARN] /decapcms/a -> No JSON-LD block was found.")
	assert.Equal(t, 3, m.Reports[0].CheckedPages)
}

func TestCLI_FailsOnMissingConfigFile(t *testing.T) {
	t.Parallel()

	dir := newSite(t, map[string]string{"index.html": ""})
	m := newMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--dir", dir, "--config", filepath.Join(dir, "nope.yaml")}, &stdout, &stderr)

	assert.Equal(t, distcheck.ENOTFOUND, distcheck.ErrorCode(err))
}

func TestCLI_VerboseLogsToStderr(t *testing.T) {
	t.Parallel()

	dir := newSite(t, map[string]string{"index.html": goodPage, "about.html": ""})
	m := newMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"links", "--dir", dir, "--verbose", "--concurrency", "2"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "msg=validation")
	assert.Contains(t, stderr.String(), "name=links")
	assert.Contains(t, stderr.String(), "run=")
	assert.Contains(t, stderr.String(), `msg="path probe"`)
}
