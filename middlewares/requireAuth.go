package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/XidanAbds29/huehouse-api/utils"
)

func bearerToken(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// RequireAuth validates the bearer token and stores its claims on the
// context for downstream handlers.
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := bearerToken(ctx)
		if tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization token required"})
			return
		}

		claims, err := utils.ParseJWT(tokenString)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		ctx.Set("user", claims)
		ctx.Next()
	}
}

// OptionalAuth attaches claims when a valid token is present but never
// rejects the request. Checkout works for guests and account holders alike.
func OptionalAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if tokenString := bearerToken(ctx); tokenString != "" {
			if claims, err := utils.ParseJWT(tokenString); err == nil {
				ctx.Set("user", claims)
			}
		}
		ctx.Next()
	}
}

// CurrentUserID returns the authenticated user's id, if any.
func CurrentUserID(ctx *gin.Context) (uint, bool) {
	userClaims, exists := ctx.Get("user")
	if !exists {
		return 0, false
	}
	claims, ok := userClaims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	return utils.UserIDFromClaims(claims)
}
