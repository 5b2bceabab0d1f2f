package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/cppla/miniblog/views"
)

// JSONResponse defines the uniform structure for machine-facing responses.
type JSONResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Respond writes a JSON response with the given status code.
func Respond(ctx *gin.Context, status int, code int, message string, data interface{}) {
	ctx.JSON(status, JSONResponse{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// Success returns a standard JSON success response.
func Success(ctx *gin.Context, data interface{}) {
	Respond(ctx, 200, 0, "success", data)
}

// Error renders the HTML error page and stops the handler chain.
func Error(ctx *gin.Context, status int, message string) {
	ctx.Render(status, views.HTML{Page: views.ErrorPage{Status: status, Message: message}})
	ctx.Abort()
}
