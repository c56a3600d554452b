package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobcast/usecase"
)

// Session validates the bearer session token and stores its claims on the
// request context for downstream handlers.
func Session(authUsecase usecase.IAuthUsecase) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if authUsecase == nil {
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Sessions are not configured"})
			return
		}

		authorization := ctx.Request.Header.Get("Authorization")
		if authorization == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing authorization header"})
			return
		}
		parts := strings.SplitN(authorization, "Bearer ", 2)
		if len(parts) != 2 || parts[1] == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header"})
			return
		}

		claims, err := authUsecase.ParseToken(parts[1])
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session token"})
			return
		}

		ctx.Set("fid", claims.Fid)
		ctx.Set("signer_uuid", claims.SignerUUID)
		ctx.Set("username", claims.Username)
		ctx.Next()
	}
}
