package routes

import (
	"github.com/burkibooks/burki-api/controllers"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine, orders *controllers.OrderController, requireAdmin gin.HandlerFunc) {
	server.POST("/orders", orders.CreateOrder)

	admin := server.Group("/orders", requireAdmin)
	{
		admin.GET("", orders.GetOrders)
		admin.GET("/:id", orders.GetOrder)
		admin.PATCH("/:id", orders.UpdateOrderStatus)
		admin.DELETE("/:id", orders.DeleteOrder)
	}
}
