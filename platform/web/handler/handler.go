package handler

import (
	"github.com/gin-gonic/gin"
)

// Result is what every api handler returns, the Wrapper writes it as json
type Result struct {
	Status int
	Body   any
}

// Error is the body of any non 2xx response
type Error struct {
	Message string `json:"message" example:"Note not found"`
	Detail  string `json:"error,omitempty"`
}

// Wrapper adapts a handler returning a Result into a gin.HandlerFunc
func Wrapper(h func(ctx *gin.Context) Result) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := h(ctx)
		if r.Body == nil {
			ctx.Status(r.Status)
			return
		}
		ctx.JSON(r.Status, r.Body)
	}
}
