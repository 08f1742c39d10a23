package stores

import (
	"errors"

	"github.com/burkibooks/burki-api/models"
	"gorm.io/gorm"
)

type GormProductStore struct {
	DB *gorm.DB
}

func NewGormProductStore(db *gorm.DB) *GormProductStore {
	return &GormProductStore{DB: db}
}

func (s *GormProductStore) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if result := s.DB.Find(&products); result.Error != nil {
		return nil, result.Error
	}
	return products, nil
}

func (s *GormProductStore) GetProduct(id string) (*models.Product, error) {
	var product models.Product
	result := s.DB.Where("id = ?", id).First(&product)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &product, nil
}

// GetProductBySlug scans the loaded collection rather than querying on the
// slug column, matching the catalog's load-all policy. Fine at this scale.
func (s *GormProductStore) GetProductBySlug(slug string) (*models.Product, error) {
	products, err := s.ListProducts()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].Slug == slug {
			return &products[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *GormProductStore) CreateProduct(product *models.Product) error {
	taken, err := s.slugTaken(product.Slug, "")
	if err != nil {
		return err
	}
	if taken {
		return ErrSlugTaken
	}
	return s.DB.Create(product).Error
}

func (s *GormProductStore) UpdateProduct(id string, update models.ProductUpdate) (*models.Product, error) {
	product, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}
	if update.Slug != nil && *update.Slug != product.Slug {
		taken, err := s.slugTaken(*update.Slug, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSlugTaken
		}
	}
	update.ApplyTo(product)
	if result := s.DB.Save(product); result.Error != nil {
		return nil, result.Error
	}
	return product, nil
}

func (s *GormProductStore) DeleteProduct(id string) error {
	result := s.DB.Where("id = ?", id).Delete(&models.Product{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormProductStore) slugTaken(slug, excludeID string) (bool, error) {
	var count int64
	query := s.DB.Model(&models.Product{}).Where("slug = ?", slug)
	if excludeID != "" {
		query = query.Where("id != ?", excludeID)
	}
	if result := query.Count(&count); result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
