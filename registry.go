package portico

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Matcher describes how a registered route matches request paths: either an
// exact path or a path prefix.
type Matcher struct {
	pattern  string
	isPrefix bool
}

// Exact matches only the given path.
func Exact(pattern string) Matcher {
	return Matcher{pattern: pattern}
}

// Prefix matches the given path and everything below it.
func Prefix(pattern string) Matcher {
	return Matcher{pattern: pattern, isPrefix: true}
}

func (m Matcher) String() string {
	if m.isPrefix {
		return m.pattern + "*"
	}
	return m.pattern
}

type route struct {
	matcher Matcher
	handler Handler
	methods map[string]struct{}
}

func (r route) allows(method string) bool {
	if len(r.methods) == 0 {
		return true
	}
	_, ok := r.methods[strings.ToUpper(method)]
	return ok
}

// Registry is the route table mapping API path matchers to handlers.
//
// Matching is deterministic: an exact match always beats a prefix match, and
// when several prefixes match the longest one wins. Ambiguous registrations
// (two entries that would claim the same path with different handlers) are
// rejected up front, at registration time.
//
// A Registry is populated once during initialization and is immutable
// afterwards, which is what lets both invocation adapters share it without
// locking.
type Registry struct {
	exact    map[string]route
	prefixes []route
}

// NewRegistry creates an empty route table.
func NewRegistry() *Registry {
	return &Registry{exact: make(map[string]route)}
}

// Register binds a handler to a matcher. When methods are given, only those
// HTTP methods are accepted on the route; other methods produce a 405 at the
// Router boundary. No methods means the handler accepts every method.
//
// Registration fails for empty or non-rooted patterns, nil handlers, and
// matchers that duplicate an existing entry.
func (g *Registry) Register(m Matcher, h Handler, methods ...string) error {
	if m.pattern == "" || !strings.HasPrefix(m.pattern, "/") {
		return fmt.Errorf("register %q: %w: pattern must start with /", m, ErrInvalidInput)
	}

	if h == nil {
		return fmt.Errorf("register %q: %w: handler cannot be nil", m, ErrInvalidInput)
	}

	var methodSet map[string]struct{}
	if len(methods) > 0 {
		methodSet = make(map[string]struct{}, len(methods))
		for _, method := range methods {
			methodSet[strings.ToUpper(method)] = struct{}{}
		}
	}

	entry := route{matcher: m, handler: h, methods: methodSet}

	if !m.isPrefix {
		if _, exists := g.exact[m.pattern]; exists {
			return fmt.Errorf("register %q: %w: duplicate exact route", m, ErrInvalidInput)
		}
		g.exact[m.pattern] = entry
		return nil
	}

	for _, p := range g.prefixes {
		if p.matcher.pattern == m.pattern {
			return fmt.Errorf("register %q: %w: duplicate prefix route", m, ErrInvalidInput)
		}
	}

	g.prefixes = append(g.prefixes, entry)
	// Longest prefix first keeps lookup a simple linear scan.
	sort.SliceStable(g.prefixes, func(i, j int) bool {
		return len(g.prefixes[i].matcher.pattern) > len(g.prefixes[j].matcher.pattern)
	})

	return nil
}

// Dispatch routes the request to the matching handler, if any. The returned
// bool reports whether a route matched at all; handler errors (and
// ErrMethodNotAllowed for method mismatches on a matched route) pass through
// untouched, because failure conversion is the Router's single concern.
func (g *Registry) Dispatch(ctx context.Context, req Request) (Response, bool, error) {
	entry, ok := g.lookup(req.Path)
	if !ok {
		return Response{}, false, nil
	}

	if !entry.allows(req.Method) {
		return Response{}, true, fmt.Errorf("dispatch %s %s: %w", req.Method, req.Path, ErrMethodNotAllowed)
	}

	resp, err := entry.handler(ctx, req)
	if err != nil {
		return Response{}, true, fmt.Errorf("dispatch %s %s: %w", req.Method, req.Path, err)
	}

	return resp, true, nil
}

func (g *Registry) lookup(path string) (route, bool) {
	if entry, ok := g.exact[path]; ok {
		return entry, true
	}

	for _, entry := range g.prefixes {
		if strings.HasPrefix(path, entry.matcher.pattern) {
			return entry, true
		}
	}

	return route{}, false
}
