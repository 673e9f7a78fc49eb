package utils

import (
	"net/http"

	"indodjija/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request. Notice is what the page
// shows as a toast; Fields names the offending inputs of a validation error.
type ErrorResponse struct {
	Code   string        `json:"code"`
	Notice models.Notice `json:"notice"`
	Fields []string      `json:"fields,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err), zap.String("path", c.Request.URL.Path))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Code:   "internal",
					Notice: models.ErrorNotice("An unexpected error occurred. Please try again later."),
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, code, message string, fields []string) {
	GetLogger().Warn(message, zap.String("code", code), zap.Int("status", status), zap.Strings("fields", fields))
	c.JSON(status, ErrorResponse{Code: code, Notice: models.ErrorNotice(message), Fields: fields})
}
