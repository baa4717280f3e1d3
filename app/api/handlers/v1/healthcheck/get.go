package healthcheck

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-app/platform/web/handler"
	"net/http"
)

type Status struct {
	Status string `json:"status" example:"healthy"`
}

// Get godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} healthcheck.Status
// @Router /health [get]
func Get(_ *gin.Context) handler.Result {
	return handler.Result{
		Status: http.StatusOK,
		Body:   Status{Status: "healthy"},
	}
}
