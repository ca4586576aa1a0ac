package portico_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/porticoapp/portico"
)

func TestRequest_Header(t *testing.T) {
	req := portico.Request{Headers: map[string]string{"Content-Type": "application/json"}}

	assert.Equal(t, "application/json", req.Header("Content-Type"))
	assert.Equal(t, "application/json", req.Header("content-type"))
	assert.Equal(t, "", req.Header("X-Missing"))
}

func TestText(t *testing.T) {
	resp := portico.Text(http.StatusNotFound, "Not Found")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Not Found", string(resp.Body))
	assert.Equal(t, "text/plain; charset=utf-8", resp.ContentType)
}

func TestJSON(t *testing.T) {
	resp, err := portico.JSON(http.StatusOK, map[string]string{"date": "2024-01-01T00:00:00Z"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.ContentType)
	assert.JSONEq(t, `{"date":"2024-01-01T00:00:00Z"}`, string(resp.Body))
}

func TestJSON_MarshalFailure(t *testing.T) {
	_, err := portico.JSON(http.StatusOK, func() {})
	assert.Error(t, err)
}

func TestJSONError(t *testing.T) {
	resp := portico.JSONError(http.StatusUnauthorized, "not_authorized", "Not Authorized")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"error":"not_authorized","message":"Not Authorized"}`, string(resp.Body))
}
