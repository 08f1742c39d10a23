package controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/burkibooks/burki-api/models"
	"github.com/burkibooks/burki-api/stores"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartCookieName identifies a shopper's cart session.
const CartCookieName = "cart-id"

// Cart cookies live long enough to survive reloads and return visits.
const cartCookieMaxAge = 60 * 60 * 24 * 365

type CartController struct {
	Store stores.CartStore
}

func NewCartController(store stores.CartStore) *CartController {
	return &CartController{Store: store}
}

// cartID returns the session's cart id, minting one (and setting the
// cookie) when the shopper arrives without one.
func (c *CartController) cartID(ctx *gin.Context) string {
	id, err := ctx.Cookie(CartCookieName)
	if err == nil && id != "" {
		return id
	}
	id = uuid.NewString()
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(CartCookieName, id, cartCookieMaxAge, "/", "", false, true)
	return id
}

func cartView(cart models.Cart) gin.H {
	items := cart.Items
	if items == nil {
		items = []models.CartItem{}
	}
	return gin.H{
		"items":      items,
		"totalItems": cart.TotalItems(),
		"subtotal":   cart.Subtotal(),
	}
}

func (c *CartController) loadCart(ctx *gin.Context) (string, models.Cart, bool) {
	id := c.cartID(ctx)
	cart, err := c.Store.LoadCart(id)
	if err != nil {
		log.Println("Cart load error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to load cart")
		return id, cart, false
	}
	return id, cart, true
}

func (c *CartController) saveCart(ctx *gin.Context, id string, cart models.Cart) bool {
	if err := c.Store.SaveCart(id, cart); err != nil {
		log.Println("Cart save error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save cart")
		return false
	}
	return true
}

func (c *CartController) GetCart(ctx *gin.Context) {
	_, cart, ok := c.loadCart(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, cartView(cart))
}

// AddItem puts a book in the cart, bumping the quantity when it is already
// there. The message in the response is the toast the storefront shows.
func (c *CartController) AddItem(ctx *gin.Context) {
	var input struct {
		ProductID string `json:"productId" binding:"required"`
		Title     string `json:"title" binding:"required"`
		Author    string `json:"author"`
		Price     int    `json:"price"`
		OldPrice  *int   `json:"oldPrice"`
		Image     string `json:"image"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	id, cart, ok := c.loadCart(ctx)
	if !ok {
		return
	}

	cart.Add(models.CartItem{
		ProductID: input.ProductID,
		Title:     input.Title,
		Author:    input.Author,
		Price:     input.Price,
		OldPrice:  input.OldPrice,
		Image:     input.Image,
	})
	if !c.saveCart(ctx, id, cart) {
		return
	}

	response := cartView(cart)
	response["message"] = fmt.Sprintf("%q added to cart!", input.Title)
	ctx.JSON(http.StatusCreated, response)
}

// UpdateItemQuantity replaces a line's quantity. Quantities below 1 are
// rejected outright; removal is its own endpoint.
func (c *CartController) UpdateItemQuantity(ctx *gin.Context) {
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if input.Quantity < 1 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Quantity must be at least 1")
		return
	}

	id, cart, ok := c.loadCart(ctx)
	if !ok {
		return
	}

	if !cart.SetQuantity(ctx.Param("id"), input.Quantity) {
		sendErrorResponse(ctx, http.StatusNotFound, "Item not in cart")
		return
	}
	if !c.saveCart(ctx, id, cart) {
		return
	}
	ctx.JSON(http.StatusOK, cartView(cart))
}

func (c *CartController) RemoveItem(ctx *gin.Context) {
	id, cart, ok := c.loadCart(ctx)
	if !ok {
		return
	}

	cart.Remove(ctx.Param("id"))
	if !c.saveCart(ctx, id, cart) {
		return
	}
	ctx.JSON(http.StatusOK, cartView(cart))
}

// ClearCart empties the cart, e.g. after a successful checkout.
func (c *CartController) ClearCart(ctx *gin.Context) {
	id, cart, ok := c.loadCart(ctx)
	if !ok {
		return
	}

	cart.Clear()
	if err := c.Store.DeleteCart(id); err != nil {
		log.Println("Cart delete error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to clear cart")
		return
	}
	ctx.JSON(http.StatusOK, cartView(cart))
}
