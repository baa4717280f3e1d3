package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-app/business/v1/note"
	"github.com/ribgsilva/note-app/platform/web/handler"
	"net/http"
)

// Get godoc
// @Summary Find a note
// @Description Find a note of the caller using its id
// @Tags Note
// @Produce json
// @Security Bearer
// @Param id path string true "Note id"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /api/notes/{id} [get]
func Get(ctx *gin.Context) handler.Result {
	r, ok := ref(ctx)
	if !ok {
		return invalidId
	}

	get, err := note.Find(ctx, r)
	if err != nil {
		return failure(ctx, err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   get,
	}
}
