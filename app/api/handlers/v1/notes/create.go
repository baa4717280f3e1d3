package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-app/business/v1/note"
	"github.com/ribgsilva/note-app/platform/web/handler"
	"github.com/ribgsilva/note-app/platform/web/mid"
	"net/http"
)

// Create godoc
// @Summary Create a note
// @Description Create a note owned by the caller
// @Tags Note
// @Accept json
// @Produce json
// @Security Bearer
// @Param note body note.NewNote true "Note to create"
// @Success 201 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Router /api/notes [post]
func Create(ctx *gin.Context) handler.Result {
	var newN note.NewNote
	if err := ctx.ShouldBindJSON(&newN); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "Title and content are required", Detail: err.Error()},
		}
	}
	newN.UserId = mid.Claims(ctx).Subject

	created, err := note.Create(ctx, newN)
	if err != nil {
		return failure(ctx, err)
	}

	return handler.Result{
		Status: http.StatusCreated,
		Body:   created,
	}
}
