package stores

import (
	"errors"

	"github.com/burkibooks/burki-api/models"
	"gorm.io/gorm"
)

type GormOrderStore struct {
	DB *gorm.DB
}

func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{DB: db}
}

func (s *GormOrderStore) CreateOrder(order *models.Order) error {
	tx := s.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(order).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func (s *GormOrderStore) ListOrders() ([]models.Order, error) {
	var orders []models.Order
	if result := s.DB.Preload("Items").Find(&orders); result.Error != nil {
		return nil, result.Error
	}
	return orders, nil
}

func (s *GormOrderStore) GetOrder(id string) (*models.Order, error) {
	var order models.Order
	result := s.DB.Preload("Items").Where("id = ?", id).First(&order)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &order, nil
}

func (s *GormOrderStore) UpdateOrderStatus(id, status string) (*models.Order, error) {
	order, err := s.GetOrder(id)
	if err != nil {
		return nil, err
	}
	// Any status may replace any other; the transition graph is unguarded.
	result := s.DB.Model(order).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	order.Status = status
	return order, nil
}

func (s *GormOrderStore) DeleteOrder(id string) error {
	result := s.DB.Where("id = ?", id).Delete(&models.Order{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
