// Package portico provides a dual-mode request router for single page
// applications with a small backend API.
//
// Portico serves one set of routes from one code path in two hosting modes:
// a long-running local HTTP server and a single-invocation AWS Lambda
// function behind an API Gateway HTTP API. Both modes share the same pure
// Router, so a request produces the same response regardless of how the
// process was invoked.
//
// # Key Components
//
//   - Router: pure dispatcher mapping a generic Request to a Response
//   - Registry: ordered route table for API handlers (exact and prefix matchers)
//   - assets.Resolver: sandboxed static file resolution with SPA fallback
//   - server: net/http adapter for local/persistent operation
//   - awslambda: API Gateway v2 event adapter for deployed operation
//
// # Dispatch
//
// The Router consults the Registry first; requests that match no API route
// are treated as static asset requests and fall back to the configured entry
// document, which keeps client-side routed paths (for example /settings)
// working without real files behind them. Handler failures never escape the
// Router: they are converted to generic 500 responses at its boundary.
//
// # Example Usage
//
//	registry := portico.NewRegistry()
//	_ = registry.Register(portico.Exact("/api/date"), api.DateHandler, http.MethodGet)
//
//	root, _ := os.OpenRoot("app/build")
//	resolver, _ := assets.NewResolver(root, "index.html")
//
//	router, _ := portico.NewRouter(registry, resolver)
//	resp := router.Route(ctx, req)
//
// See the server package for the persistent HTTP adapter and the awslambda
// package for the serverless adapter.
package portico
