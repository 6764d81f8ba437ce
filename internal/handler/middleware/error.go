package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"canteen-coupon/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the JSON envelope for requests that ended with a
// recorded error but no body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		last := c.Errors.Last()
		if resp, ok := last.Meta.(httperr.Response); ok && last.IsType(gin.ErrorTypePublic) {
			c.JSON(resp.Status, resp)
			return
		}

		status := httperr.StatusOf(last.Err)
		msg := "Internal server error"
		if status < http.StatusInternalServerError {
			msg = last.Err.Error()
		}
		c.JSON(status, errorBody(status, msg))
	}
}

// NoRoute answers unknown paths with the same envelope as handler errors.
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusNotFound, errorBody(http.StatusNotFound, "Route not found"))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.ErrorContext(c.Request.Context(), "recovered from panic",
					"error", rec,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
					"stack", string(debug.Stack()))

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					errorBody(http.StatusInternalServerError, "Internal server error"))
			}
		}()
		c.Next()
	}
}

func errorBody(status int, msg string) httperr.Response {
	resp := httperr.Response{Status: status}
	resp.Error.Message = msg
	return resp
}
