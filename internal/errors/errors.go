// Package errors defines the uniform response envelope and the central
// HTTP error handler. Every response the API emits, success or failure,
// parses as JSON with a success field.
package errors

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Envelope is the uniform JSON body shared by every API response. Success
// payloads extend it with additional top-level fields.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Fail builds a failure envelope with a user-facing message.
func Fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}

func isAPIPath(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}

// HTTPErrorHandler renders every error that escapes a handler as a failure
// envelope: echo's own 404/405 for unmatched routes, binder failures, the
// jwt middleware's rejections, and anything unexpected. Internal errors are
// logged server-side and reported with a generic message.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	var httpErr *echo.HTTPError
	if stderrors.As(err, &httpErr) {
		code = httpErr.Code
		switch m := httpErr.Message.(type) {
		case string:
			message = m
		case error:
			message = m.Error()
		}
	}

	switch code {
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		// Only exact (method, path) pairs in the route table exist under
		// /api; a method mismatch on a known path is as unmatched as an
		// unknown path. Misses outside /api belong to the static layer
		// and keep echo's default rendering.
		if !isAPIPath(c.Request().URL.Path) {
			c.Echo().DefaultHTTPErrorHandler(err, c)
			return
		}
		code = http.StatusNotFound
		message = "not found"
	case http.StatusInternalServerError:
		c.Logger().Error(err)
		message = "internal server error"
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, Fail(message))
}
