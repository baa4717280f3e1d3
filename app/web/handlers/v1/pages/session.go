package pages

import (
	"context"
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/ribgsilva/note-app/business/v1/auth"
	"github.com/ribgsilva/note-app/sys"
	"net/http"
)

const (
	sessionKey   = "web.session"
	sessionIdKey = "web.session.id"
)

// requestContext carries the request deadline and the new relic transaction to downstream calls
func requestContext(ctx *gin.Context) context.Context {
	return newrelic.NewContext(ctx.Request.Context(), nrgin.Transaction(ctx))
}

func sessionId(ctx *gin.Context) string {
	id, err := ctx.Cookie(sys.Configs.Session.CookieName)
	if err != nil {
		return ""
	}
	return id
}

func setCookie(ctx *gin.Context, id string) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(sys.Configs.Session.CookieName, id, int(sys.Configs.Session.TTL.Seconds()), "/", "", sys.Configs.Session.Secure, true)
}

func clearCookie(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(sys.Configs.Session.CookieName, "", -1, "/", "", sys.Configs.Session.Secure, true)
}

// RequireSession sends browsers without a live session back to the home page
func RequireSession() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := sessionId(ctx)
		s, ok, err := auth.Current(requestContext(ctx), id)
		if err != nil {
			sys.R.Log.Errorw("session", "ERROR", err)
		}
		if !ok {
			// a cache failure is not a logout
			if id != "" && err == nil {
				clearCookie(ctx)
			}
			ctx.Redirect(http.StatusSeeOther, "/")
			ctx.Abort()
			return
		}

		ctx.Set(sessionIdKey, id)
		ctx.Set(sessionKey, s)
		ctx.Next()
	}
}

func current(ctx *gin.Context) (string, auth.Session) {
	return ctx.GetString(sessionIdKey), ctx.MustGet(sessionKey).(auth.Session)
}
