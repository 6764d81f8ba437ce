package httperr

import (
	"log/slog"
	"net/http"

	"canteen-coupon/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

const maxStackLines = 12

// StatusOf maps an error category mark to an HTTP status.
func StatusOf(err error) int {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errs.IsAny(err, errs.ErrNotBookable, errs.ErrConfiguration):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// FromError aborts with the status of err's category. Client errors echo the
// error message; server errors answer with fallback.
func FromError(c *gin.Context, err error, fallback string) {
	status := StatusOf(err)
	msg := fallback
	if status < http.StatusInternalServerError {
		msg = err.Error()
	}
	switch {
	case errs.Is(err, errs.ErrConfiguration):
		slog.ErrorContext(c.Request.Context(), "canteen configuration error",
			"path", c.FullPath(), "error", err.Error())
	case status >= http.StatusInternalServerError:
		slog.ErrorContext(c.Request.Context(), "request failed",
			"path", c.FullPath(),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, maxStackLines))
	}
	AbortWithError(c, status, err, msg, nil)
}
