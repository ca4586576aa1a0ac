// Package assets resolves URL paths to static files under a sandboxed root
// directory, with single-page-application fallback to a configured entry
// document. Resolution uses os.Root so no lookup can escape the root, and
// content types are derived from file extensions.
package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/porticoapp/portico"
)

// Resolver maps URL paths to files under a static root. The root and entry
// document are fixed at construction; a Resolver is immutable afterwards and
// safe for concurrent use.
type Resolver struct {
	root  *os.Root
	entry string
}

// NewResolver creates a Resolver over the given root. entry names the
// document served for the root path and for any path that resolves to no
// real file; empty means "index.html".
func NewResolver(root *os.Root, entry string) (*Resolver, error) {
	if root == nil {
		return nil, fmt.Errorf("new resolver: %w: root cannot be nil", portico.ErrInvalidInput)
	}
	if entry == "" {
		entry = "index.html"
	}
	if _, ok := portico.NormalizeAssetPath(entry); !ok {
		return nil, fmt.Errorf("new resolver: %w: invalid entry document %q", portico.ErrInvalidInput, entry)
	}
	return &Resolver{root: root, entry: entry}, nil
}

// Resolve maps a URL path to file content.
//
// The root path and paths with no backing file both produce the entry
// document, which is what keeps client-side routed paths working. Traversal
// attempts are rejected during normalization and answered exactly like
// misses. Only GET and HEAD are accepted; HEAD responses carry the real
// Content-Length with an empty body.
//
// Resolve fails with portico.ErrEntryMissing only when the entry document
// itself cannot be read; that is a deployment defect, not a runtime miss.
func (r *Resolver) Resolve(ctx context.Context, method, urlPath string) (portico.Response, error) {
	if err := ctx.Err(); err != nil {
		return portico.Response{}, fmt.Errorf("resolve %s: %w", urlPath, err)
	}

	method = strings.ToUpper(method)
	if method != http.MethodGet && method != http.MethodHead {
		return portico.Response{}, fmt.Errorf("resolve %s %s: %w", method, urlPath, portico.ErrMethodNotAllowed)
	}

	rel, ok := portico.NormalizeAssetPath(urlPath)
	if ok && rel != "" {
		if body, found, err := r.read(rel); err != nil {
			return portico.Response{}, fmt.Errorf("resolve %s: %w", urlPath, err)
		} else if found {
			return r.respond(method, rel, body), nil
		}
	}

	// Fall back to the entry document: the client application owns
	// everything that is not a real file.
	body, found, err := r.read(r.entry)
	if err != nil {
		return portico.Response{}, fmt.Errorf("resolve %s: %w", urlPath, err)
	}
	if !found {
		return portico.Response{}, fmt.Errorf("resolve %s: %w: %s", urlPath, portico.ErrEntryMissing, r.entry)
	}

	return r.respond(method, r.entry, body), nil
}

// read returns the file's bytes, reporting found=false for anything that is
// not a readable regular file.
func (r *Resolver) read(rel string) ([]byte, bool, error) {
	info, err := r.root.Stat(rel)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrInvalid) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("stat %s: %w", rel, err)
	}
	if !info.Mode().IsRegular() {
		return nil, false, nil
	}

	f, err := r.root.Open(rel)
	if err != nil {
		return nil, false, fmt.Errorf("open %s: %w", rel, err)
	}
	defer func() { _ = f.Close() }()

	body, err := io.ReadAll(f)
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", rel, err)
	}

	return body, true, nil
}

func (r *Resolver) respond(method, rel string, body []byte) portico.Response {
	resp := portico.Response{
		StatusCode:  http.StatusOK,
		Body:        body,
		ContentType: ContentType(rel),
	}

	if method == http.MethodHead {
		resp.Headers = map[string]string{
			"Content-Length": strconv.Itoa(len(body)),
		}
		resp.Body = nil
	}

	return resp
}

// ContentType derives a MIME type from the file extension, defaulting to
// application/octet-stream for unknown extensions.
func ContentType(path string) string {
	ext := filepath.Ext(path)
	contentType := mime.TypeByExtension(ext)

	if contentType == "" {
		return "application/octet-stream"
	}

	return contentType
}
