package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-app/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/note-app/app/web/handlers/v1/pages"
	"github.com/ribgsilva/note-app/app/web/templates"
	"github.com/ribgsilva/note-app/platform/web/handler"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/health", handler.Wrapper(healthcheck.Get))
}

func MapPages(r *gin.Engine) error {
	tmpl, err := templates.Parse()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)

	r.GET("/", pages.Home)
	r.GET("/login", pages.Login)
	r.POST("/logout", pages.Logout)

	n := r.Group("/notes", pages.RequireSession())
	n.POST("", pages.AddNote)
	n.POST("/:id/delete", pages.DeleteNote)
	n.POST("/:id/toggle", pages.ToggleNote)
	return nil
}
