package portico_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/porticoapp/portico"
)

// stubResolver is a canned AssetResolver for router tests.
type stubResolver struct {
	resp portico.Response
	err  error
}

func (s stubResolver) Resolve(ctx context.Context, method, path string) (portico.Response, error) {
	return s.resp, s.err
}

func TestRouter_DispatchesToRegisteredHandler(t *testing.T) {
	registry := portico.NewRegistry()
	require.NoError(t, registry.Register(portico.Exact("/api/date"), constHandler(200, "api"), http.MethodGet))

	router, err := portico.NewRouter(registry, stubResolver{resp: portico.Text(200, "asset")})
	require.NoError(t, err)

	resp := router.Route(context.Background(), portico.Request{Method: "GET", Path: "/api/date"})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "api", string(resp.Body))
}

func TestRouter_FallsBackToAssets(t *testing.T) {
	registry := portico.NewRegistry()
	require.NoError(t, registry.Register(portico.Exact("/api/date"), constHandler(200, "api")))

	router, err := portico.NewRouter(registry, stubResolver{resp: portico.Text(200, "asset")})
	require.NoError(t, err)

	resp := router.Route(context.Background(), portico.Request{Method: "GET", Path: "/some/client/route"})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "asset", string(resp.Body))
}

func TestRouter_NilResolverAnswers404(t *testing.T) {
	router, err := portico.NewRouter(portico.NewRegistry(), nil)
	require.NoError(t, err)

	resp := router.Route(context.Background(), portico.Request{Method: "GET", Path: "/missing"})

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_HandlerErrorBecomesGeneric500(t *testing.T) {
	registry := portico.NewRegistry()
	require.NoError(t, registry.Register(portico.Exact("/api/error"), func(ctx context.Context, req portico.Request) (portico.Response, error) {
		return portico.Response{}, errors.New("secret database password leaked")
	}))

	router, err := portico.NewRouter(registry, nil)
	require.NoError(t, err)

	resp := router.Route(context.Background(), portico.Request{Method: "GET", Path: "/api/error"})

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.NotContains(t, string(resp.Body), "secret")
	assert.Equal(t, "Internal Server Error", string(resp.Body))
}

func TestRouter_HandlerPanicBecomesGeneric500(t *testing.T) {
	registry := portico.NewRegistry()
	require.NoError(t, registry.Register(portico.Exact("/api/panic"), func(ctx context.Context, req portico.Request) (portico.Response, error) {
		panic("boom with internal detail")
	}))

	router, err := portico.NewRouter(registry, nil)
	require.NoError(t, err)

	resp := router.Route(context.Background(), portico.Request{Method: "GET", Path: "/api/panic"})

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.NotContains(t, string(resp.Body), "boom")
}

func TestRouter_MethodNotAllowedBecomes405(t *testing.T) {
	registry := portico.NewRegistry()
	require.NoError(t, registry.Register(portico.Exact("/api/date"), constHandler(200, "date"), http.MethodGet))

	router, err := portico.NewRouter(registry, nil)
	require.NoError(t, err)

	resp := router.Route(context.Background(), portico.Request{Method: "POST", Path: "/api/date"})

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestRouter_ResolverErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", portico.ErrNotFound, http.StatusNotFound},
		{"method not allowed", portico.ErrMethodNotAllowed, http.StatusMethodNotAllowed},
		{"entry missing is a deployment defect", portico.ErrEntryMissing, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, err := portico.NewRouter(portico.NewRegistry(), stubResolver{err: tt.err})
			require.NoError(t, err)

			resp := router.Route(context.Background(), portico.Request{Method: "GET", Path: "/x"})

			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestRouter_RequiresRegistry(t *testing.T) {
	_, err := portico.NewRouter(nil, nil)
	assert.ErrorIs(t, err, portico.ErrInvalidInput)
}
