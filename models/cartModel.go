package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// CartItem is one line in a shopper's cart. Quantity is always >= 1;
// dropping below 1 removes the line instead.
type CartItem struct {
	ProductID string `json:"productId"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Price     int    `json:"price"`
	OldPrice  *int   `json:"oldPrice,omitempty"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
}

// Cart holds a shopper's session cart. Mutations are synchronous; the cart
// is only ever driven by one request at a time for a given session.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Add appends the book with quantity 1, or bumps the quantity by 1 when the
// same product is already in the cart.
func (c *Cart) Add(item CartItem) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity++
			return
		}
	}
	item.Quantity = 1
	c.Items = append(c.Items, item)
}

// Remove drops the line for the given product. Removing an absent product
// is a no-op.
func (c *Cart) Remove(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces the quantity for a line. Quantities below 1 are
// rejected without mutating the cart; callers wanting to drop a line must
// use Remove. Returns false when the call was rejected or the product is
// not in the cart.
func (c *Cart) SetQuantity(productID string, quantity int) bool {
	if quantity < 1 {
		return false
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return true
		}
	}
	return false
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// TotalItems is the sum of quantities across all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Subtotal is the sum of price x quantity across all lines.
func (c *Cart) Subtotal() int {
	total := 0
	for _, item := range c.Items {
		total += item.Price * item.Quantity
	}
	return total
}

// DecodeCartItems restores a stored cart blob. Corrupt data is discarded
// silently: the shopper gets an empty cart back, never an error.
func DecodeCartItems(blob []byte) []CartItem {
	if len(blob) == 0 {
		return nil
	}
	var items []CartItem
	if err := json.Unmarshal(blob, &items); err != nil {
		return nil
	}
	return items
}

// CartRecord is the durable row backing a session cart: the item list is
// stored as one JSON blob under the cart's id.
type CartRecord struct {
	ID        string         `gorm:"primaryKey;size:36"`
	Items     datatypes.JSON `gorm:"type:json"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
