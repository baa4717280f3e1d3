package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-app/business/v1/note"
	"github.com/ribgsilva/note-app/platform/web/handler"
	"net/http"
)

type Deleted struct {
	Message string `json:"message" example:"Note deleted"`
}

// Delete godoc
// @Summary Delete a note
// @Tags Note
// @Produce json
// @Security Bearer
// @Param id path string true "Note id"
// @Success 200 {object} notes.Deleted
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /api/notes/{id} [delete]
func Delete(ctx *gin.Context) handler.Result {
	r, ok := ref(ctx)
	if !ok {
		return invalidId
	}

	if err := note.Delete(ctx, r); err != nil {
		return failure(ctx, err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   Deleted{Message: "Note deleted"},
	}
}
