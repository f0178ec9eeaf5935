package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/judoclub/clubsite/internal/domain/entity"
	usecasecontract "github.com/judoclub/clubsite/internal/usecase/contract"
)

const callerKey = "caller"

// Authenticator resolves a bearer token into the caller it was issued to.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (entity.Caller, error)
}

// AuthMiddleWare attaches the caller to the request. A request without a token
// continues as anonymous and a token the authenticator refuses gets a 401.
// Any other lookup failure is a 500.
func AuthMiddleWare(auth Authenticator, logger usecasecontract.IAppLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Set(callerKey, entity.Anonymous())
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid authorization header"})
			return
		}

		caller, err := auth.Authenticate(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			if errors.Is(err, entity.ErrUnauthenticated) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
				return
			}
			if logger != nil {
				logger.Errorf("failed to authenticate request on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		c.Set(callerKey, caller)
		c.Next()
	}
}

// CallerFrom returns the caller set by AuthMiddleWare, anonymous if none.
func CallerFrom(c *gin.Context) entity.Caller {
	if v, ok := c.Get(callerKey); ok {
		if caller, ok := v.(entity.Caller); ok {
			return caller
		}
	}
	return entity.Anonymous()
}
