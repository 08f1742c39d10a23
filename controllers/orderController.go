package controllers

import (
	"errors"
	"log"
	"net/http"
	"sort"

	"github.com/burkibooks/burki-api/models"
	"github.com/burkibooks/burki-api/stores"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Store stores.OrderStore
}

func NewOrderController(store stores.OrderStore) *OrderController {
	return &OrderController{Store: store}
}

// CreateOrder records a public checkout submission. Fulfillment is a human
// process; nothing is dispatched and no inventory moves here.
func (c *OrderController) CreateOrder(ctx *gin.Context) {
	var input models.OrderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		log.Printf("JSON binding error: %v", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !models.IsValidPaymentMethod(input.PaymentMethod) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown payment method")
		return
	}

	order := input.ToOrder()
	if err := c.Store.CreateOrder(&order); err != nil {
		log.Println("Order creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create order")
		return
	}

	ctx.JSON(http.StatusCreated, order)
}

func (c *OrderController) GetOrders(ctx *gin.Context) {
	orders, err := c.Store.ListOrders()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", err)
		return
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	ctx.JSON(http.StatusOK, orders)
}

func (c *OrderController) GetOrder(ctx *gin.Context) {
	order, err := c.Store.GetOrder(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve order", err)
		}
		return
	}
	ctx.JSON(http.StatusOK, order)
}

func (c *OrderController) UpdateOrderStatus(ctx *gin.Context) {
	var statusData struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&statusData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	if !models.IsValidOrderStatus(statusData.Status) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown order status")
		return
	}

	order, err := c.Store.UpdateOrderStatus(ctx.Param("id"), statusData.Status)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to update order status", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, order)
}

func (c *OrderController) DeleteOrder(ctx *gin.Context) {
	if err := c.Store.DeleteOrder(ctx.Param("id")); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to delete order", err)
		}
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order deleted successfully."})
}
