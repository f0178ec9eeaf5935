package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/judoclub/clubsite/internal/handler/http/middleware"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	tests := []struct {
		name   string
		header string
		echoed bool
	}{
		{name: "client id kept", header: "abc-123-DEF", echoed: true},
		{name: "max length kept", header: strings.Repeat("a", 64), echoed: true},
		{name: "missing id generated"},
		{name: "overlong id replaced", header: strings.Repeat("a", 65)},
		{name: "bad characters replaced", header: "abc\r\nSet-Cookie: x=1"},
		{name: "spaces replaced", header: "abc 123"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tc.header != "" {
				req.Header["X-Request-Id"] = []string{tc.header}
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get("X-Request-ID")
			if tc.echoed {
				assert.Equal(t, tc.header, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err, got)
		})
	}
}
