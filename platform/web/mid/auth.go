package mid

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-app/platform/token"
	"github.com/ribgsilva/note-app/platform/web/handler"
	"net/http"
)

const claimsKey = "notes.claims"

// Authenticate rejects requests without a decodable bearer token and stores its claims in the context
func Authenticate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		raw := ctx.GetHeader("Authorization")
		if raw == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, handler.Error{Message: "Token is missing"})
			return
		}

		claims, err := token.Decode(raw)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, handler.Error{Message: "Token is invalid", Detail: err.Error()})
			return
		}

		ctx.Set(claimsKey, claims)
		ctx.Next()
	}
}

// Claims returns the claims stored by Authenticate
func Claims(ctx *gin.Context) token.Claims {
	v, _ := ctx.Get(claimsKey)
	c, _ := v.(token.Claims)
	return c
}
