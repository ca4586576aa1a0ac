package portico

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/textproto"
	"net/url"
)

// Request is an invocation-mode-independent representation of an inbound
// HTTP request. Adapters construct one Request per inbound call; it is not
// mutated afterwards and nothing request-scoped outlives the response.
type Request struct {
	Method  string
	Path    string
	Headers map[string]string
	Query   url.Values
	Body    []byte
}

// Header returns the value of the named header using canonical MIME header
// casing, so lookups work regardless of how the adapter spelled the key.
func (r Request) Header(name string) string {
	if v, ok := r.Headers[name]; ok {
		return v
	}
	return r.Headers[textproto.CanonicalMIMEHeaderKey(name)]
}

// Response is an invocation-mode-independent representation of an HTTP
// response. Exactly one delegate (an API handler or the asset resolver)
// constructs the Response for a given request.
type Response struct {
	StatusCode  int
	Headers     map[string]string
	Body        []byte
	ContentType string
}

// Handler is a registered API handler. Handlers are free to inspect the
// request however they like; errors they return are converted to generic
// 500 responses at the Router boundary, never propagated past it.
type Handler func(ctx context.Context, req Request) (Response, error)

// Text builds a plain text response.
func Text(status int, body string) Response {
	return Response{
		StatusCode:  status,
		Body:        []byte(body),
		ContentType: "text/plain; charset=utf-8",
	}
}

// JSON builds an application/json response by marshalling v.
func JSON(status int, v any) (Response, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return Response{}, fmt.Errorf("encode json response: %w", err)
	}
	return Response{
		StatusCode:  status,
		Body:        b,
		ContentType: "application/json",
	}, nil
}

// ErrorBody is the JSON shape used for error responses that carry detail
// safe to show a client.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// JSONError builds an application/json error response.
func JSONError(status int, code, message string) Response {
	resp, err := JSON(status, ErrorBody{Error: code, Message: message})
	if err != nil {
		// ErrorBody cannot fail to marshal; keep the contract total anyway.
		return Text(http.StatusInternalServerError, "Internal Server Error")
	}
	return resp
}
