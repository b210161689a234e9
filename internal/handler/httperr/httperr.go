// Package httperr defines the error envelope every payment endpoint
// returns. Detail carries machine-readable context for precondition and
// gateway failures (offending party ids, the rejected gateway
// operation) so booking-side callers can react without parsing the
// message.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the wire shape of an API error. Status travels on the
// HTTP response line, not in the body.
type Response struct {
	Status int       `json:"-"`
	Error  ErrorBody `json:"error"`
	Detail any       `json:"detail,omitempty"`
}

type ErrorBody struct {
	Message string `json:"message"`
}

// AbortWithError writes the envelope and records the original error on
// the gin context so the error middleware can log it with the request.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{
		Status: status,
		Error:  ErrorBody{Message: msg},
		Detail: detail,
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
