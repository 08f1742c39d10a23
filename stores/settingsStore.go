package stores

import (
	"errors"

	"github.com/burkibooks/burki-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormSettingsStore struct {
	DB *gorm.DB
}

func NewGormSettingsStore(db *gorm.DB) *GormSettingsStore {
	return &GormSettingsStore{DB: db}
}

// GetSettings returns the defaults overlaid with whatever has been stored.
func (s *GormSettingsStore) GetSettings() (models.SiteSettings, error) {
	settings := models.DefaultSiteSettings()

	var stored models.SiteSettings
	result := s.DB.Where("id = ?", models.SiteSettingsID).First(&stored)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return settings, nil
		}
		return settings, result.Error
	}

	if stored.QuoteText != "" {
		settings.QuoteText = stored.QuoteText
	}
	if stored.QuoteAuthor != "" {
		settings.QuoteAuthor = stored.QuoteAuthor
	}
	return settings, nil
}

// UpdateSettings merges the non-nil fields into the singleton row,
// creating it on first write.
func (s *GormSettingsStore) UpdateSettings(update models.SettingsUpdate) (models.SiteSettings, error) {
	current, err := s.GetSettings()
	if err != nil {
		return current, err
	}
	if update.QuoteText != nil {
		current.QuoteText = *update.QuoteText
	}
	if update.QuoteAuthor != nil {
		current.QuoteAuthor = *update.QuoteAuthor
	}
	current.ID = models.SiteSettingsID

	result := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quote_text", "quote_author"}),
	}).Create(&current)
	if result.Error != nil {
		return current, result.Error
	}
	return current, nil
}
