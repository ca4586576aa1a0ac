package portico_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/porticoapp/portico"
)

func TestNormalizeAssetPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"root", "/", "", true},
		{"empty", "", "", true},
		{"simple file", "/index.html", "index.html", true},
		{"nested file", "/static/js/app.js", "static/js/app.js", true},
		{"no leading slash", "logo.png", "logo.png", true},
		{"double slashes collapse", "/static//app.js", "static/app.js", true},
		{"dot segments collapse", "/static/./app.js", "static/app.js", true},
		{"traversal", "/../../etc/passwd", "", false},
		{"embedded traversal", "/static/../../etc/passwd", "", false},
		{"bare dotdot", "..", "", false},
		{"backslash", `/static\app.js`, "", false},
		{"query-ish characters", "/app.js?v=1", "", false},
		{"fragment character", "/app.js#main", "", false},
		{"null byte", "/app\x00.js", "", false},
		{"control character", "/app\x01.js", "", false},
		{"invalid utf8", "/app\xff.js", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := portico.NormalizeAssetPath(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
