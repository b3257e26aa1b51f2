package httperr

import (
	"github.com/gin-gonic/gin"
)

type errorBody struct {
	Message string `json:"message"`
}

// Response is the JSON envelope every handler error is rendered as.
type Response struct {
	Status int       `json:"-"`
	Error  errorBody `json:"error"`
	Detail any       `json:"detail,omitempty"`
}

// AbortWithError stops the handler chain and renders the error envelope.
// The underlying err stays attached to the gin context so the logging
// middleware can record the cause without exposing it to the client.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{
		Status: status,
		Error:  errorBody{Message: msg},
		Detail: detail,
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
