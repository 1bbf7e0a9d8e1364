package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
	StatusError   = "error"
)

// Envelope is the uniform wire shape for every endpoint outcome.
// Message and Data appear only when the caller supplied them.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func Success(message string, data any) Envelope {
	return build(StatusSuccess, message, data)
}

// Failure reports an expected business rejection (e.g. duplicate email at
// registration). It travels with HTTP 200, distinct from error.
func Failure(message string, data any) Envelope {
	return build(StatusFailure, message, data)
}

func Error(message string, data any) Envelope {
	return build(StatusError, message, data)
}

func build(status, message string, data any) Envelope {
	return Envelope{Status: status, Message: message, Data: data}
}

// OK writes the envelope with HTTP 200.
func OK(c *gin.Context, env Envelope) {
	c.JSON(http.StatusOK, env)
}

// JSON writes the envelope with an explicit HTTP status code.
func JSON(c *gin.Context, code int, env Envelope) {
	c.JSON(code, env)
}
