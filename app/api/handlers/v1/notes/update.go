package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-app/business/v1/note"
	"github.com/ribgsilva/note-app/platform/web/handler"
	"net/http"
)

// Update godoc
// @Summary Update a note
// @Description Change the title, content or completion of a note of the caller
// @Tags Note
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Note id"
// @Param note body note.UpdateNote true "Fields to change"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /api/notes/{id} [put]
func Update(ctx *gin.Context) handler.Result {
	r, ok := ref(ctx)
	if !ok {
		return invalidId
	}

	var upd note.UpdateNote
	if err := ctx.ShouldBindJSON(&upd); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid body", Detail: err.Error()},
		}
	}

	updated, err := note.Update(ctx, r, upd)
	if err != nil {
		return failure(ctx, err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   updated,
	}
}
