package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Burki Books API.

The following are the endpoints for this API:

CATALOG
- GET "/products?{featured,bestSeller,category,q}" - Filtered catalog listing
- GET "/products/{id}" - Get product by ID
- GET "/products/slug/{slug}" - Get product by slug
- POST "/products" - Create product (admin)
- PUT "/products/{id}" - Update product (admin)
- DELETE "/products/{id}" - Delete product (admin)

CART
- GET "/cart" - Current session cart
- POST "/cart/items" - Add a book to the cart
- PATCH "/cart/items/{id}" - Change a line's quantity
- DELETE "/cart/items/{id}" - Remove a line
- DELETE "/cart" - Clear the cart

ORDERS
- POST "/orders" - Place an order
- GET "/orders" - List orders (admin)
- GET "/orders/{id}" - Get order (admin)
- PATCH "/orders/{id}" - Update order status (admin)
- DELETE "/orders/{id}" - Delete order (admin)

MESSAGES
- POST "/messages" - Submit a contact message
- GET "/messages" - List messages (admin)
- GET "/messages/{id}" - Get message (admin)
- PATCH "/messages/{id}" - Mark read/unread (admin)
- DELETE "/messages/{id}" - Delete message (admin)

SETTINGS
- GET "/settings" - Site-wide quote settings
- PUT "/settings" - Update settings (admin)

UPLOADS
- POST "/upload?type={product,receipt}" - Image upload (admin for product)

ADMIN
- POST "/admin/login" - Start an admin session
- POST "/admin/logout" - End the session
- GET "/admin/me" - Session introspection
- POST "/admin/migrate-images" - Re-host legacy product images`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
