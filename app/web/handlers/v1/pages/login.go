package pages

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-app/business/v1/auth"
	"github.com/ribgsilva/note-app/sys"
	"net/http"
)

// Login sends the browser to the identity provider
func Login(ctx *gin.Context) {
	url, err := auth.LoginURL(requestContext(ctx))
	if err != nil {
		sys.R.Log.Errorw("login", "ERROR", err)
		ctx.HTML(http.StatusOK, "index.html", page{Error: loginFailed})
		return
	}
	ctx.Redirect(http.StatusFound, url)
}

// Logout forgets the session
func Logout(ctx *gin.Context) {
	if id := sessionId(ctx); id != "" {
		if err := auth.Logout(requestContext(ctx), id); err != nil {
			sys.R.Log.Errorw("logout", "ERROR", err)
		}
	}
	clearCookie(ctx)
	ctx.Redirect(http.StatusSeeOther, "/")
}
