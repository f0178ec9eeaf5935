package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/judoclub/clubsite/internal/domain/entity"
	"github.com/judoclub/clubsite/internal/handler/http/dto"
	"github.com/judoclub/clubsite/internal/handler/http/middleware"
	usecasecontract "github.com/judoclub/clubsite/internal/usecase/contract"
)

const invalidJSONMessage = "Invalid JSON body"

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// ErrorHandler maps a use case error onto its HTTP outcome.
func ErrorHandler(c *gin.Context, logger usecasecontract.IAppLogger, err error) {
	var verr *entity.ValidationError
	var nf *entity.NotFoundError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.ErrorsResponse{Errors: verr.Violations})
	case errors.As(err, &nf):
		MessageHandler(c, http.StatusNotFound, nf.Error())
	case errors.Is(err, entity.ErrNotFound):
		MessageHandler(c, http.StatusNotFound, "Resource not found")
	case errors.Is(err, entity.ErrUnauthenticated):
		MessageHandler(c, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, entity.ErrInvalidCredentials):
		MessageHandler(c, http.StatusUnauthorized, "Invalid credentials.")
	case errors.Is(err, entity.ErrForbidden):
		MessageHandler(c, http.StatusForbidden, "Access denied")
	default:
		if logger != nil {
			logger.Errorf("unhandled error on %s %s: %v", c.Request.Method, c.FullPath(), err)
		}
		MessageHandler(c, http.StatusInternalServerError, "Internal server error")
	}
}

// BindJSON decodes the request body. An empty body counts as an empty object.
func BindJSON(c *gin.Context, req interface{}) bool {
	if c.Request.Body == nil {
		return true
	}
	if err := json.NewDecoder(c.Request.Body).Decode(req); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		c.JSON(http.StatusBadRequest, dto.ErrorsResponse{Errors: []string{invalidJSONMessage}})
		return false
	}
	return true
}

// PathID parses the :id parameter. Anything that is not a positive integer
// cannot name a stored entity and is answered with a 404.
func PathID(c *gin.Context, kind string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		MessageHandler(c, http.StatusNotFound, kind+" not found")
		return 0, false
	}
	return id, true
}

func queryString(c *gin.Context, key string) *string {
	v, ok := c.GetQuery(key)
	if !ok || v == "" {
		return nil
	}
	return &v
}

func queryBool(c *gin.Context, key string) bool {
	switch strings.ToLower(c.Query(key)) {
	case "1", "true", "on", "yes":
		return true
	default:
		return false
	}
}

func caller(c *gin.Context) entity.Caller {
	return middleware.CallerFrom(c)
}
