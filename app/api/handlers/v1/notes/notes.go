package notes

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-app/business/v1/note"
	"github.com/ribgsilva/note-app/platform/web/handler"
	"github.com/ribgsilva/note-app/platform/web/mid"
	"github.com/ribgsilva/note-app/sys"
	"net/http"
	"strconv"
)

var invalidId = handler.Result{
	Status: http.StatusBadRequest,
	Body:   handler.Error{Message: "invalid id"},
}

// ref builds the note reference from the path id and the caller's token
func ref(ctx *gin.Context) (note.Ref, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return note.Ref{}, false
	}
	return note.Ref{Id: id, UserId: mid.Claims(ctx).Subject}, true
}

func failure(ctx *gin.Context, err error) handler.Result {
	switch {
	case errors.Is(err, note.ErrNotFound):
		return handler.Result{
			Status: http.StatusNotFound,
			Body:   handler.Error{Message: "Note not found"},
		}
	case errors.Is(err, note.ErrInvalid):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "Title and content are required"},
		}
	default:
		sys.R.Log.Errorw("notes", "path", ctx.FullPath(), "ERROR", err)
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	}
}
