package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-app/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/note-app/app/api/handlers/v1/notes"
	"github.com/ribgsilva/note-app/platform/web/handler"
	"github.com/ribgsilva/note-app/platform/web/mid"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/health", handler.Wrapper(healthcheck.Get))
}

func MapApi(r *gin.Engine) {
	api := r.Group("/api/notes", mid.Authenticate())
	api.GET("", handler.Wrapper(notes.List))
	api.POST("", handler.Wrapper(notes.Create))
	api.GET("/:id", handler.Wrapper(notes.Get))
	api.PUT("/:id", handler.Wrapper(notes.Update))
	api.DELETE("/:id", handler.Wrapper(notes.Delete))
}
