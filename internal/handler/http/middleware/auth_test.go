package middleware_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/judoclub/clubsite/internal/domain/entity"
	"github.com/judoclub/clubsite/internal/handler/http/middleware"
	"github.com/judoclub/clubsite/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
)

type stubAuthenticator struct {
	caller entity.Caller
	err    error
}

func (s stubAuthenticator) Authenticate(ctx context.Context, accessToken string) (entity.Caller, error) {
	return s.caller, s.err
}

func authRouter(auth middleware.Authenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.AuthMiddleWare(auth, logger.NewSlogLoggerTo(io.Discard, "error")))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": middleware.CallerFrom(c).UserID})
	})
	return r
}

func getWithToken(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleWare(t *testing.T) {
	member := entity.NewCaller(2, []entity.UserRole{entity.UserRoleUser})

	tests := []struct {
		name     string
		auth     stubAuthenticator
		header   string
		wantCode int
		wantBody string
	}{
		{"no header is anonymous", stubAuthenticator{}, "", http.StatusOK, `{"userId":0}`},
		{"valid token", stubAuthenticator{caller: member}, "Bearer abc", http.StatusOK, `{"userId":2}`},
		{"malformed header", stubAuthenticator{caller: member}, "Token abc", http.StatusUnauthorized, `{"message":"Invalid authorization header"}`},
		{"refused token", stubAuthenticator{err: fmt.Errorf("%w: expired", entity.ErrUnauthenticated)}, "Bearer abc", http.StatusUnauthorized, `{"message":"Invalid or expired token"}`},
		{"storage failure", stubAuthenticator{err: errors.New("mongo: server selection timeout")}, "Bearer abc", http.StatusInternalServerError, `{"message":"Internal server error"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := getWithToken(authRouter(tt.auth), tt.header)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
