package middlewares

import (
	"net/http"

	"github.com/burkibooks/burki-api/utils"
	"github.com/gin-gonic/gin"
)

// AdminClaimsKey is where RequireAdmin stores the verified session claims.
const AdminClaimsKey = "admin"

// RequireAdmin gates a route group behind a valid admin session cookie.
// Handlers mounted behind it never perform their own auth checks, so a new
// endpoint cannot forget one.
func RequireAdmin(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, err := ctx.Cookie(utils.AdminCookieName)
		if err != nil || tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		claims, err := utils.VerifyAdminToken(tokenString, secret)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != "admin" {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}

		ctx.Set(AdminClaimsKey, claims)
		ctx.Next()
	}
}
