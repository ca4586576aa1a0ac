package portico

import (
	"path"
	"strings"
	"unicode/utf8"
)

// NormalizeAssetPath converts a URL path into a relative file path suitable
// for lookup under a static root. It reports ok=false for paths that must
// never be resolved against the filesystem:
//   - traversal attempts (any ".." segment)
//   - backslashes and the characters ? # ~
//   - null bytes, control characters, DEL
//   - invalid UTF-8
//
// The empty path and "/" normalize to "" with ok=true; callers map that to
// the entry document. Rejected paths are indistinguishable from misses to
// the client, so traversal probes learn nothing about the filesystem.
func NormalizeAssetPath(p string) (string, bool) {
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return "", true
	}

	if !utf8.ValidString(p) {
		return "", false
	}

	if strings.Contains(p, "..") {
		return "", false
	}

	if strings.ContainsAny(p, "\\?#~") {
		return "", false
	}

	for _, r := range p {
		if r < 0x20 || r == 0x7f {
			return "", false
		}
	}

	// Collapse duplicate slashes and "." segments.
	cleaned := path.Clean("/" + p)
	if cleaned == "/" {
		return "", true
	}

	return strings.TrimPrefix(cleaned, "/"), true
}
