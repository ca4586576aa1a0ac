package server

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/porticoapp/portico"
)

// CORSConfig controls the optional CORS middleware on the local server.
type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// HandlerConfig holds configuration for the HTTP handler.
type HandlerConfig struct {
	CORS CORSConfig
}

// Handler binds the core Router to net/http for local/persistent operation.
type Handler struct {
	config HandlerConfig
	router *portico.Router
}

// NewHandler creates a new Handler over the given Router.
func NewHandler(config *HandlerConfig, router *portico.Router) *Handler {
	return &Handler{
		config: *config,
		router: router,
	}
}

// Mux returns the http.Handler serving every path and method through the
// core Router. Concurrency is net/http's one-goroutine-per-connection model;
// the Router and everything behind it are immutable, so no locking is
// involved.
func (h *Handler) Mux() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestLogger)

	if h.config.CORS.Enabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.config.CORS.AllowedOrigins,
			AllowedMethods:   h.config.CORS.AllowedMethods,
			AllowedHeaders:   h.config.CORS.AllowedHeaders,
			ExposedHeaders:   h.config.CORS.ExposedHeaders,
			AllowCredentials: h.config.CORS.AllowCredentials,
			MaxAge:           h.config.CORS.MaxAge,
		}))
	}

	r.HandleFunc("/*", h.serve)

	return r
}

// serve translates the wire-level request into a generic Request, routes it,
// and serializes the generic Response back onto the connection.
func (h *Handler) serve(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(r)
	if err != nil {
		// Translation failures never reach the Router; answer at this
		// boundary with a well-formed response.
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeResponse(w, h.router.Route(r.Context(), req))
}

// decodeRequest builds a generic Request from an *http.Request. Multi-value
// headers are comma-joined, matching the API Gateway v2 convention, so both
// adapters hand handlers the same shape.
func decodeRequest(r *http.Request) (portico.Request, error) {
	var body []byte
	if r.Body != nil {
		b, err := io.ReadAll(r.Body)
		if err != nil {
			return portico.Request{}, fmt.Errorf("decode request: read body: %w", err)
		}
		body = b
	}

	headers := make(map[string]string, len(r.Header)+1)
	for name, values := range r.Header {
		headers[name] = strings.Join(values, ",")
	}
	// Go stores Host separately from Header.
	headers["Host"] = r.Host

	return portico.Request{
		Method:  r.Method,
		Path:    r.URL.Path,
		Headers: headers,
		Query:   r.URL.Query(),
		Body:    body,
	}, nil
}

func writeResponse(w http.ResponseWriter, resp portico.Response) {
	for name, value := range resp.Headers {
		w.Header().Set(name, value)
	}
	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}

	w.WriteHeader(resp.StatusCode)

	if len(resp.Body) > 0 {
		_, _ = w.Write(resp.Body)
	}
}
