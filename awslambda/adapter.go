// Package awslambda is the serverless invocation adapter: it translates one
// API Gateway HTTP API (payload version 2.0) event into one call on the core
// portico.Router and translates the result back into the platform's response
// envelope.
//
// The adapter is stateless per invocation. No failure escapes Handle: a
// malformed event or an internal error produces a well-formed 500 envelope
// rather than a platform-level error that would lose diagnostic information.
package awslambda

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/porticoapp/portico"
)

// payloadVersion is the only API Gateway event format the adapter accepts.
const payloadVersion = "2.0"

// Handler adapts the Router to the Lambda calling convention. Pass
// Handler.Handle to lambda.Start.
type Handler struct {
	router *portico.Router
}

// New creates a Handler over the given Router.
func New(router *portico.Router) (*Handler, error) {
	if router == nil {
		return nil, fmt.Errorf("new lambda handler: %w: router cannot be nil", portico.ErrInvalidInput)
	}
	return &Handler{router: router}, nil
}

// Handle processes a single API Gateway invocation. It always returns a
// syntactically valid response envelope and a nil error; translation
// failures are logged and answered with a generic 500 envelope.
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	req, err := decodeEvent(event)
	if err != nil {
		slog.Error("event translation failed", "err", err)
		return errorEnvelope(), nil
	}

	return encodeResponse(h.router.Route(ctx, req)), nil
}

// decodeEvent translates the platform event schema into a generic Request.
func decodeEvent(event events.APIGatewayV2HTTPRequest) (portico.Request, error) {
	if event.Version != payloadVersion {
		return portico.Request{}, fmt.Errorf("decode event: %w: unsupported payload version %q", portico.ErrInvalidInput, event.Version)
	}

	method := event.RequestContext.HTTP.Method
	path := event.RequestContext.HTTP.Path
	if method == "" || path == "" {
		return portico.Request{}, fmt.Errorf("decode event: %w: missing method or path", portico.ErrInvalidInput)
	}

	query, err := url.ParseQuery(event.RawQueryString)
	if err != nil {
		return portico.Request{}, fmt.Errorf("decode event: parse query %q: %w", event.RawQueryString, err)
	}

	headers := make(map[string]string, len(event.Headers)+1)
	for name, value := range event.Headers {
		headers[http.CanonicalHeaderKey(name)] = value
	}
	// API Gateway strips cookies out of the headers; fold them back in.
	if len(event.Cookies) > 0 {
		headers["Cookie"] = strings.Join(event.Cookies, "; ")
	}

	var body []byte
	if event.Body != "" {
		if event.IsBase64Encoded {
			body, err = base64.StdEncoding.DecodeString(event.Body)
			if err != nil {
				return portico.Request{}, fmt.Errorf("decode event: decode body: %w", err)
			}
		} else {
			body = []byte(event.Body)
		}
	}

	return portico.Request{
		Method:  method,
		Path:    path,
		Headers: headers,
		Query:   query,
		Body:    body,
	}, nil
}

// encodeResponse translates a generic Response into the platform envelope.
// Binary bodies are base64-encoded and flagged, which API Gateway requires
// for non-text static assets.
func encodeResponse(resp portico.Response) events.APIGatewayV2HTTPResponse {
	headers := make(map[string]string, len(resp.Headers)+1)
	var cookies []string
	for name, value := range resp.Headers {
		// Set-Cookie travels in the envelope's cookies field, not headers.
		if strings.EqualFold(name, "Set-Cookie") {
			cookies = append(cookies, value)
			continue
		}
		headers[name] = value
	}
	if resp.ContentType != "" {
		headers["Content-Type"] = resp.ContentType
	}

	out := events.APIGatewayV2HTTPResponse{
		StatusCode: resp.StatusCode,
		Headers:    headers,
		Cookies:    cookies,
	}

	if isBinaryContent(resp.ContentType, resp.Headers) {
		out.Body = base64.StdEncoding.EncodeToString(resp.Body)
		out.IsBase64Encoded = true
	} else {
		out.Body = string(resp.Body)
	}

	return out
}

func errorEnvelope() events.APIGatewayV2HTTPResponse {
	return events.APIGatewayV2HTTPResponse{
		StatusCode: http.StatusInternalServerError,
		Headers:    map[string]string{"Content-Type": "text/plain; charset=utf-8"},
		Body:       "Internal Server Error",
	}
}

// isBinaryContent reports whether the body must be base64-encoded for the
// envelope. Content-encoded bodies are always binary; otherwise only a small
// set of text content types travel as plain strings.
func isBinaryContent(contentType string, headers map[string]string) bool {
	encoding := "identity"
	for name, value := range headers {
		if strings.EqualFold(name, "Content-Encoding") {
			encoding = value
		}
	}
	if encoding != "identity" && encoding != "" {
		return true
	}

	return !isTextContentType(contentType)
}

func isTextContentType(contentType string) bool {
	switch {
	case strings.HasPrefix(contentType, "text/"):
		return true
	case strings.HasPrefix(contentType, "application/json"):
		return true
	case strings.HasPrefix(contentType, "application/javascript"):
		return true
	case strings.HasPrefix(contentType, "image/svg+xml"):
		return true
	}
	return false
}
