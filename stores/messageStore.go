package stores

import (
	"errors"

	"github.com/burkibooks/burki-api/models"
	"gorm.io/gorm"
)

type GormMessageStore struct {
	DB *gorm.DB
}

func NewGormMessageStore(db *gorm.DB) *GormMessageStore {
	return &GormMessageStore{DB: db}
}

func (s *GormMessageStore) CreateMessage(message *models.Message) error {
	return s.DB.Create(message).Error
}

func (s *GormMessageStore) ListMessages() ([]models.Message, error) {
	var messages []models.Message
	if result := s.DB.Find(&messages); result.Error != nil {
		return nil, result.Error
	}
	return messages, nil
}

func (s *GormMessageStore) GetMessage(id string) (*models.Message, error) {
	var message models.Message
	result := s.DB.Where("id = ?", id).First(&message)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &message, nil
}

func (s *GormMessageStore) UpdateMessageStatus(id, status string) (*models.Message, error) {
	message, err := s.GetMessage(id)
	if err != nil {
		return nil, err
	}
	message.Status = status
	if result := s.DB.Save(message); result.Error != nil {
		return nil, result.Error
	}
	return message, nil
}

func (s *GormMessageStore) DeleteMessage(id string) error {
	result := s.DB.Where("id = ?", id).Delete(&models.Message{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
