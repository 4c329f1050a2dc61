package middleware

import (
	"log/slog"
	"net/http"

	"travel-checkout/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "Internal server error"

// ErrorHandler writes the last public error recorded by httperr when the
// handler left the response unwritten.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if resp, ok := lastPublicResponse(c); ok {
			c.JSON(resp.Status, resp)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, internalError())
	}
}

func lastPublicResponse(c *gin.Context) (httperr.Response, bool) {
	for i := len(c.Errors) - 1; i >= 0; i-- {
		ginErr := c.Errors[i]
		if !ginErr.IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := ginErr.Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

// CustomRecovery turns a panic into a 500. A checkout that panics after its
// guard was acquired is logged with the session so it can be traced.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				slog.Error("recovered from panic",
					"error", recovered,
					"request_id", GetRequestID(c),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"checkout_session", c.GetHeader(CheckoutSessionHeader))

				c.AbortWithStatusJSON(http.StatusInternalServerError, internalError())
			}
		}()
		c.Next()
	}
}

func internalError() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = internalErrorMessage
	return resp
}
