package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order statuses. The transition graph is deliberately unguarded: an admin
// may move an order from any status to any other.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Payment methods accepted at checkout.
const (
	PaymentCashOnDelivery = "cod"
	PaymentJazzCash       = "jazzcash"
	PaymentEasypaisa      = "easypaisa"
	PaymentBankTransfer   = "bank"
)

func IsValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

func IsValidPaymentMethod(method string) bool {
	switch method {
	case PaymentCashOnDelivery, PaymentJazzCash, PaymentEasypaisa, PaymentBankTransfer:
		return true
	}
	return false
}

type Order struct {
	ID             string      `json:"id" gorm:"primaryKey;size:36"`
	CustomerName   string      `json:"customerName"`
	Phone          string      `json:"phone"`
	Email          string      `json:"email"`
	Address        string      `json:"address"`
	City           string      `json:"city"`
	Items          []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	PaymentMethod  string      `json:"paymentMethod"`
	TransactionID  string      `json:"transactionId,omitempty"`
	ReceiptImage   string      `json:"receiptImage,omitempty"`
	Subtotal       int         `json:"subtotal"`
	DeliveryCharge int         `json:"deliveryCharge"`
	Total          int         `json:"total"`
	Status         string      `json:"status"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderItem is a denormalized snapshot of the product at time of purchase,
// so later catalog edits never rewrite order history.
type OrderItem struct {
	ID        uint   `json:"-" gorm:"primaryKey"`
	OrderID   string `json:"-" gorm:"size:36;index"`
	ProductID string `json:"productId" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Author    string `json:"author"`
	Image     string `json:"image"`
	Price     int    `json:"price"`
	OldPrice  *int   `json:"oldPrice,omitempty"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// OrderInput is the public checkout submission body.
type OrderInput struct {
	CustomerName   string      `json:"customerName" binding:"required"`
	Phone          string      `json:"phone" binding:"required"`
	Email          string      `json:"email"`
	Address        string      `json:"address" binding:"required"`
	City           string      `json:"city" binding:"required"`
	Items          []OrderItem `json:"items" binding:"required,min=1,dive"`
	PaymentMethod  string      `json:"paymentMethod" binding:"required"`
	TransactionID  string      `json:"transactionId"`
	ReceiptImage   string      `json:"receiptImage"`
	Subtotal       int         `json:"subtotal" binding:"required"`
	DeliveryCharge int         `json:"deliveryCharge"`
}

// ToOrder builds the stored order. Status always starts at pending and the
// grand total is computed server-side.
func (in OrderInput) ToOrder() Order {
	return Order{
		CustomerName:   in.CustomerName,
		Phone:          in.Phone,
		Email:          in.Email,
		Address:        in.Address,
		City:           in.City,
		Items:          in.Items,
		PaymentMethod:  in.PaymentMethod,
		TransactionID:  in.TransactionID,
		ReceiptImage:   in.ReceiptImage,
		Subtotal:       in.Subtotal,
		DeliveryCharge: in.DeliveryCharge,
		Total:          in.Subtotal + in.DeliveryCharge,
		Status:         OrderStatusPending,
	}
}
