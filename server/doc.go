// Package server is the persistent invocation adapter: it binds the core
// portico.Router to a net/http listener for local development and any other
// long-running deployment.
//
// The adapter owns nothing but translation. Each accepted connection's
// request is decoded into a generic portico.Request, routed, and the generic
// portico.Response is serialized back onto the connection. Routing decisions,
// SPA fallback, and failure conversion all live in the Router so the
// serverless adapter behaves identically.
//
// # Usage
//
//	handler := server.NewHandler(&server.HandlerConfig{}, router)
//	srv := &http.Server{Addr: ":8000", Handler: handler.Mux()}
//	_ = srv.ListenAndServe()
//
// The Mux applies a request-logging middleware (with per-request IDs) and,
// when enabled, CORS.
package server
