package stores

import (
	"encoding/json"
	"errors"

	"github.com/burkibooks/burki-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormCartStore struct {
	DB *gorm.DB
}

func NewGormCartStore(db *gorm.DB) *GormCartStore {
	return &GormCartStore{DB: db}
}

// LoadCart restores a session cart from its stored JSON blob. A missing row
// or a blob that no longer parses both come back as an empty cart; stale
// garbage is never an error the shopper sees.
func (s *GormCartStore) LoadCart(id string) (models.Cart, error) {
	var record models.CartRecord
	result := s.DB.Where("id = ?", id).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return models.Cart{}, nil
		}
		return models.Cart{}, result.Error
	}

	return models.Cart{Items: models.DecodeCartItems(record.Items)}, nil
}

func (s *GormCartStore) SaveCart(id string, cart models.Cart) error {
	blob, err := json.Marshal(cart.Items)
	if err != nil {
		return err
	}
	record := models.CartRecord{ID: id, Items: blob}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"items", "updated_at"}),
	}).Create(&record).Error
}

func (s *GormCartStore) DeleteCart(id string) error {
	return s.DB.Where("id = ?", id).Delete(&models.CartRecord{}).Error
}
