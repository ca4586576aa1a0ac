package portico

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// AssetResolver resolves a static asset request into a Response. It is
// consulted for every request that matches no API route.
//
// Implementations signal misses with ErrNotFound, unsupported methods with
// ErrMethodNotAllowed, and a missing entry document with ErrEntryMissing.
type AssetResolver interface {
	Resolve(ctx context.Context, method, path string) (Response, error)
}

// Router is the core dispatcher shared by both invocation adapters. It is a
// pure function of its immutable route table, its asset resolver, and the
// incoming request; the Router itself performs no I/O.
type Router struct {
	registry *Registry
	assets   AssetResolver
}

// NewRouter creates a Router over a populated route table and an asset
// resolver. The resolver may be nil, in which case unmatched requests are
// answered 404 (API-only deployments).
func NewRouter(registry *Registry, assets AssetResolver) (*Router, error) {
	if registry == nil {
		return nil, fmt.Errorf("new router: %w: registry cannot be nil", ErrInvalidInput)
	}
	return &Router{registry: registry, assets: assets}, nil
}

// Route dispatches a request: API routes first, static assets otherwise.
//
// Route never fails past its own boundary. Handler errors and panics are
// converted to generic 500 responses here, in one place, so both adapters
// can rely on always receiving a well-formed Response. Internal error detail
// is logged, never put in the response body.
func (r *Router) Route(ctx context.Context, req Request) (resp Response) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("handler panic", "method", req.Method, "path", req.Path, "panic", rec)
			resp = internalError()
		}
	}()

	apiResp, matched, err := r.registry.Dispatch(ctx, req)
	if matched {
		if err != nil {
			return convertError(req, err)
		}
		return apiResp
	}

	if r.assets == nil {
		return notFound()
	}

	assetResp, err := r.assets.Resolve(ctx, req.Method, req.Path)
	if err != nil {
		return convertError(req, err)
	}

	return assetResp
}

// convertError is the single failure-conversion point. Nothing here leaks
// internal error text to the client.
func convertError(req Request, err error) Response {
	switch {
	case errors.Is(err, ErrNotFound):
		return notFound()
	case errors.Is(err, ErrMethodNotAllowed):
		return Text(http.StatusMethodNotAllowed, "Method Not Allowed")
	default:
		slog.Error("request failed", "method", req.Method, "path", req.Path, "err", err)
		return internalError()
	}
}

func notFound() Response {
	return Text(http.StatusNotFound, "Not Found")
}

func internalError() Response {
	return Text(http.StatusInternalServerError, "Internal Server Error")
}
