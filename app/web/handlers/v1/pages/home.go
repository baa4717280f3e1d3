package pages

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-app/business/v1/auth"
	"github.com/ribgsilva/note-app/business/v1/notebook"
	"github.com/ribgsilva/note-app/sys"
	"net/http"
)

const loginFailed = "Login failed, please try again."

type page struct {
	LoggedIn bool
	Username string
	Notes    []notebook.Note
	Flash    string
	Error    string
}

// Home shows the notes of a logged in user, or the login screen otherwise.
// It is also the oauth redirect target, finishing the login when a code comes back.
func Home(ctx *gin.Context) {
	log := sys.R.Log
	rc := requestContext(ctx)
	id := sessionId(ctx)

	s, ok, err := auth.Current(rc, id)
	if err != nil {
		log.Errorw("home", "action", "session", "ERROR", err)
	}

	if !ok {
		if id != "" && err == nil {
			clearCookie(ctx)
		}

		if e := ctx.Query("error"); e != "" {
			msg := ctx.Query("error_description")
			if msg == "" {
				msg = e
			}
			log.Warnw("home", "action", "authorize", "error", e, "description", msg)
			ctx.HTML(http.StatusOK, "index.html", page{Error: msg})
			return
		}

		if code := ctx.Query("code"); code != "" {
			newId, _, err := auth.Complete(rc, ctx.Query("state"), code)
			if err != nil {
				log.Errorw("home", "action", "exchange", "ERROR", err)
				ctx.HTML(http.StatusOK, "index.html", page{Error: loginFailed})
				return
			}
			setCookie(ctx, newId)
			ctx.Redirect(http.StatusFound, "/")
			return
		}

		ctx.HTML(http.StatusOK, "index.html", page{})
		return
	}

	flash, err := auth.PopFlash(rc, id, s)
	if err != nil {
		log.Errorw("home", "action", "flash", "ERROR", err)
	}

	ctx.HTML(http.StatusOK, "index.html", page{
		LoggedIn: true,
		Username: s.Username,
		Notes:    notebook.Load(rc, s.Token),
		Flash:    flash,
	})
}
