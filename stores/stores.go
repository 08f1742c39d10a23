package stores

import (
	"errors"

	"github.com/burkibooks/burki-api/models"
)

// ErrNotFound is returned by every store when a record id misses.
var ErrNotFound = errors.New("record not found")

// ErrSlugTaken is returned when a product write would duplicate a slug.
var ErrSlugTaken = errors.New("slug already in use")

type ProductStore interface {
	ListProducts() ([]models.Product, error)
	GetProduct(id string) (*models.Product, error)
	GetProductBySlug(slug string) (*models.Product, error)
	CreateProduct(product *models.Product) error
	UpdateProduct(id string, update models.ProductUpdate) (*models.Product, error)
	DeleteProduct(id string) error
}

type OrderStore interface {
	CreateOrder(order *models.Order) error
	ListOrders() ([]models.Order, error)
	GetOrder(id string) (*models.Order, error)
	UpdateOrderStatus(id, status string) (*models.Order, error)
	DeleteOrder(id string) error
}

type MessageStore interface {
	CreateMessage(message *models.Message) error
	ListMessages() ([]models.Message, error)
	GetMessage(id string) (*models.Message, error)
	UpdateMessageStatus(id, status string) (*models.Message, error)
	DeleteMessage(id string) error
}

type SettingsStore interface {
	GetSettings() (models.SiteSettings, error)
	UpdateSettings(update models.SettingsUpdate) (models.SiteSettings, error)
}

type CartStore interface {
	LoadCart(id string) (models.Cart, error)
	SaveCart(id string, cart models.Cart) error
	DeleteCart(id string) error
}
