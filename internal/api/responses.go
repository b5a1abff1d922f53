package api

import (
	"strconv"

	"gymcore/internal/apperr"
	"gymcore/internal/logger"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
	Code  string `json:"code,omitempty" example:"not_found"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database,omitempty" example:"ok"`
}

// RespondError writes err as an ErrorResponse using its apperr status.
func RespondError(c *gin.Context, err error) {
	status := apperr.Status(err)
	if status >= 500 {
		logger.WithError(err).Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
		)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: apperr.Message(err),
		Code:  apperr.Code(err),
	})
}

func BadRequest(c *gin.Context, message string) {
	RespondError(c, apperr.WithMessage(apperr.ErrValidation, message))
}

// ParamID parses a positive integer path parameter.
func ParamID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}

// QueryInt reads an integer query parameter clamped to [min, max].
func QueryInt(c *gin.Context, name string, def, min, max int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	if n < min {
		return min
	}
	if max > 0 && n > max {
		return max
	}
	return n
}
