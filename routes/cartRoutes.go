package routes

import (
	"github.com/burkibooks/burki-api/controllers"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine, cart *controllers.CartController) {
	server.GET("/cart", cart.GetCart)
	server.POST("/cart/items", cart.AddItem)
	server.PATCH("/cart/items/:id", cart.UpdateItemQuantity)
	server.DELETE("/cart/items/:id", cart.RemoveItem)
	server.DELETE("/cart", cart.ClearCart)
}
