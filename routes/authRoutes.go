package routes

import (
	"github.com/burkibooks/burki-api/controllers"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(server *gin.Engine, auth *controllers.AuthController, migrate *controllers.MigrateController, seed *controllers.SeedController, requireAdmin gin.HandlerFunc) {
	admin := server.Group("/admin")
	{
		admin.POST("/login", auth.Login)
		admin.POST("/logout", auth.Logout)
		admin.GET("/me", requireAdmin, auth.Me)
		admin.POST("/migrate-images", requireAdmin, migrate.MigrateImages)
		admin.POST("/seed", requireAdmin, seed.Seed)
	}
}
