package pages

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-app/business/v1/auth"
	"github.com/ribgsilva/note-app/business/v1/notebook"
	"github.com/ribgsilva/note-app/sys"
	"net/http"
	"strconv"
)

// AddNote creates a note from the form and flashes a message when it could not
func AddNote(ctx *gin.Context) {
	log := sys.R.Log
	rc := requestContext(ctx)
	id, s := current(ctx)

	var msg string
	err := notebook.Add(rc, s.Token, ctx.PostForm("title"), ctx.PostForm("content"))
	switch {
	case errors.Is(err, notebook.ErrMissingFields):
		msg = notebook.MsgMissingFields
	case err != nil:
		log.Errorw("notes", "action", "add", "ERROR", err)
		msg = notebook.MsgAddFailed
	}

	if msg != "" {
		if err := auth.SetFlash(rc, id, s, msg); err != nil {
			log.Errorw("notes", "action", "flash", "ERROR", err)
		}
	}
	ctx.Redirect(http.StatusSeeOther, "/")
}

// DeleteNote deletes the note in the path, failures are only logged
func DeleteNote(ctx *gin.Context) {
	_, s := current(ctx)
	if noteId, ok := pathId(ctx); ok {
		if err := notebook.Remove(requestContext(ctx), s.Token, noteId); err != nil {
			sys.R.Log.Errorw("notes", "action", "delete", "ERROR", err)
		}
	}
	ctx.Redirect(http.StatusSeeOther, "/")
}

// ToggleNote sets the completion of the note in the path to the submitted value, failures are only logged
func ToggleNote(ctx *gin.Context) {
	_, s := current(ctx)
	noteId, ok := pathId(ctx)
	completed, err := strconv.ParseBool(ctx.PostForm("completed"))
	if ok && err == nil {
		if err := notebook.Toggle(requestContext(ctx), s.Token, noteId, completed); err != nil {
			sys.R.Log.Errorw("notes", "action", "toggle", "ERROR", err)
		}
	}
	ctx.Redirect(http.StatusSeeOther, "/")
}

func pathId(ctx *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		sys.R.Log.Warnw("notes", "id", ctx.Param("id"), "ERROR", err)
		return 0, false
	}
	return id, true
}
