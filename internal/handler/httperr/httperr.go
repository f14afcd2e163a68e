package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the body of every error reply: {"error":{"message":…},"detail":…}.
type Response struct {
	Status int     `json:"-"`
	Error  Message `json:"error"`
	Detail any     `json:"detail,omitempty"`
}

type Message struct {
	Message string `json:"message"`
}

func New(status int, msg string, detail any) Response {
	return Response{Status: status, Error: Message{Message: msg}, Detail: detail}
}

func InternalServerError() Response {
	return New(http.StatusInternalServerError, "Internal server error", nil)
}

// AbortWithError replies with msg and keeps err on the context for the request log.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr.AbortWithError: nil error")
	}

	resp := New(status, msg, detail)
	_ = c.Error(err).SetType(gin.ErrorTypePublic).SetMeta(resp)
	c.AbortWithStatusJSON(status, resp)
}
