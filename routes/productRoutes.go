package routes

import (
	"github.com/burkibooks/burki-api/controllers"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(server *gin.Engine, products *controllers.ProductController, requireAdmin gin.HandlerFunc) {
	server.GET("/products", products.GetProducts)
	server.GET("/products/:id", products.GetProduct)
	server.GET("/products/slug/:slug", products.GetProductBySlug)

	admin := server.Group("/products", requireAdmin)
	{
		admin.POST("", products.CreateProduct)
		admin.PUT("/:id", products.UpdateProduct)
		admin.DELETE("/:id", products.DeleteProduct)
	}
}
