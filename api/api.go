// Package api provides the backend API handlers and mounts them on a route
// table. Handlers are plain portico.Handler functions; they never see
// net/http or Lambda types, so the same logic runs in both hosting modes.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/porticoapp/portico"
)

// RegisterRoutes binds every API handler on the registry. All routes are
// GET-only; other methods on these paths produce a 405.
func RegisterRoutes(registry *portico.Registry) error {
	routes := []struct {
		path    string
		handler portico.Handler
	}{
		{"/api/date", DateHandler},
		{"/api/error", ErrorHandler},
		{"/api/not-auth", NotAuthHandler},
	}

	for _, r := range routes {
		if err := registry.Register(portico.Exact(r.path), r.handler, http.MethodGet); err != nil {
			return fmt.Errorf("register routes: %w", err)
		}
	}

	return nil
}

// DateHandler returns the current server time as an RFC 3339 timestamp.
func DateHandler(ctx context.Context, req portico.Request) (portico.Response, error) {
	payload := struct {
		Date string `json:"date"`
	}{
		Date: time.Now().Format(time.RFC3339Nano),
	}

	return portico.JSON(http.StatusOK, payload)
}

// ErrorHandler always fails. It exists to exercise the Router's failure
// conversion end to end: clients must see a generic 500 with none of this
// error's text.
func ErrorHandler(ctx context.Context, req portico.Request) (portico.Response, error) {
	return portico.Response{}, errors.New("this is an example error")
}

// NotAuthHandler always answers 401.
func NotAuthHandler(ctx context.Context, req portico.Request) (portico.Response, error) {
	return portico.JSONError(http.StatusUnauthorized, "not_authorized", "Not Authorized"), nil
}
