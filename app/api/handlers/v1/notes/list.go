package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-app/business/v1/note"
	"github.com/ribgsilva/note-app/platform/web/handler"
	"github.com/ribgsilva/note-app/platform/web/mid"
	"net/http"
)

// List godoc
// @Summary List notes
// @Description List every note of the caller
// @Tags Note
// @Produce json
// @Security Bearer
// @Success 200 {array} note.Note
// @Failure 401 {object} handler.Error
// @Router /api/notes [get]
func List(ctx *gin.Context) handler.Result {
	list, err := note.List(ctx, mid.Claims(ctx).Subject)
	if err != nil {
		return failure(ctx, err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   list,
	}
}
