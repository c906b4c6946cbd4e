package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{name: "missing", query: "", expected: 1},
		{name: "valid", query: "page=3", expected: 3},
		{name: "first page", query: "page=1", expected: 1},
		{name: "zero falls back", query: "page=0", expected: 1},
		{name: "negative falls back", query: "page=-2", expected: 1},
		{name: "non numeric falls back", query: "page=abc", expected: 1},
		{name: "float falls back", query: "page=1.5", expected: 1},
		{name: "large page passes through", query: "page=9999", expected: 9999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/employees/?"+tt.query, nil)

			assert.Equal(t, tt.expected, ParsePage(c))
		})
	}
}
