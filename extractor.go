package distcheck

// JSONLDMediaType is the script type carrying JSON-LD structured data.
const JSONLDMediaType = "application/ld+json"

// ScriptExtractor pulls inline script bodies out of HTML.
type ScriptExtractor interface {
	// ExtractScripts returns the trimmed, non-empty bodies of every
	// <script> element whose type matches mediaType case-insensitively,
	// in document order.
	ExtractScripts(html string, mediaType string) ([]string, error)
}

// PathChecker probes the file system for link targets.
type PathChecker interface {
	// Exists reports whether a file or directory exists at path.
	Exists(path string) bool
}
