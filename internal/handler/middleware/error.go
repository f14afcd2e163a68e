package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"lunchly/internal/handler/httperr"
	"lunchly/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const panicStackLines = 16

// ErrorHandler writes a body for requests that ended without one.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if resp, ok := lastPublicResponse(c.Errors); ok {
			c.JSON(resp.Status, resp)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		resp := httperr.InternalServerError()
		c.JSON(resp.Status, resp)
	}
}

// latest public error wins
func lastPublicResponse(errors []*gin.Error) (httperr.Response, bool) {
	for i := len(errors) - 1; i >= 0; i-- {
		if !errors[i].IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := errors[i].Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}
			err := errs.New(fmt.Sprint(recovered))
			slog.Error("Recovered from panic",
				"error", err.Error(),
				"request_id", GetRequestID(c),
				"path", c.Request.URL.Path,
				"stack", errs.ExtractStackLines(err, panicStackLines),
			)

			resp := httperr.InternalServerError()
			c.AbortWithStatusJSON(resp.Status, resp)
		}()
		c.Next()
	}
}
