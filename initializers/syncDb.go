package initializers

import (
	"log"

	"github.com/burkibooks/burki-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderItem{}, &models.Message{}, &models.SiteSettings{}, &models.CartRecord{})
	log.Println("Database synced successfully.")
}
