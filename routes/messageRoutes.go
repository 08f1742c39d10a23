package routes

import (
	"github.com/burkibooks/burki-api/controllers"
	"github.com/gin-gonic/gin"
)

func MessageRoutes(server *gin.Engine, messages *controllers.MessageController, requireAdmin gin.HandlerFunc) {
	server.POST("/messages", messages.CreateMessage)

	admin := server.Group("/messages", requireAdmin)
	{
		admin.GET("", messages.GetMessages)
		admin.GET("/:id", messages.GetMessage)
		admin.PATCH("/:id", messages.UpdateMessageStatus)
		admin.DELETE("/:id", messages.DeleteMessage)
	}
}
