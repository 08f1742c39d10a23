package routes

import (
	"github.com/burkibooks/burki-api/controllers"
	"github.com/gin-gonic/gin"
)

func SettingsRoutes(server *gin.Engine, settings *controllers.SettingsController, requireAdmin gin.HandlerFunc) {
	server.GET("/settings", settings.GetSettings)
	server.PUT("/settings", requireAdmin, settings.UpdateSettings)
}
