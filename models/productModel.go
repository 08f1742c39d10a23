package models

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AllGenreSentinel matches every category when passed as a category filter.
const AllGenreSentinel = "All Genre"

type Product struct {
	ID            string                      `json:"id" gorm:"primaryKey;size:36"`
	Slug          string                      `json:"slug" gorm:"index"`
	Title         string                      `json:"title"`
	Author        string                      `json:"author"`
	Price         int                         `json:"price"`
	OldPrice      *int                        `json:"oldPrice,omitempty"`
	Image         string                      `json:"image"`
	Description   string                      `json:"description"`
	Highlights    datatypes.JSONSlice[string] `json:"highlights"`
	Pages         int                         `json:"pages"`
	Language      string                      `json:"language"`
	Publisher     string                      `json:"publisher"`
	InStock       bool                        `json:"inStock"`
	Categories    datatypes.JSONSlice[string] `json:"categories"`
	Subcategories datatypes.JSONSlice[string] `json:"subcategories"`
	IsFeatured    bool                        `json:"isFeatured"`
	IsBestSeller  bool                        `json:"isBestSeller"`
	CreatedAt     time.Time                   `json:"createdAt"`
	UpdatedAt     time.Time                   `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// ProductInput is the body accepted on product creation.
type ProductInput struct {
	Slug          string   `json:"slug" binding:"required"`
	Title         string   `json:"title" binding:"required"`
	Author        string   `json:"author" binding:"required"`
	Price         int      `json:"price" binding:"required"`
	OldPrice      *int     `json:"oldPrice"`
	Image         string   `json:"image" binding:"required"`
	Description   string   `json:"description" binding:"required"`
	Highlights    []string `json:"highlights"`
	Pages         int      `json:"pages"`
	Language      string   `json:"language"`
	Publisher     string   `json:"publisher"`
	InStock       *bool    `json:"inStock"`
	Categories    []string `json:"categories"`
	Subcategories []string `json:"subcategories"`
	IsFeatured    bool     `json:"isFeatured"`
	IsBestSeller  bool     `json:"isBestSeller"`
}

// ToProduct applies creation defaults and returns a fresh record.
func (in ProductInput) ToProduct() Product {
	product := Product{
		Slug:          in.Slug,
		Title:         in.Title,
		Author:        in.Author,
		Price:         in.Price,
		OldPrice:      in.OldPrice,
		Image:         in.Image,
		Description:   in.Description,
		Highlights:    in.Highlights,
		Pages:         in.Pages,
		Language:      in.Language,
		Publisher:     in.Publisher,
		InStock:       true,
		Categories:    in.Categories,
		Subcategories: in.Subcategories,
		IsFeatured:    in.IsFeatured,
		IsBestSeller:  in.IsBestSeller,
	}
	if in.InStock != nil {
		product.InStock = *in.InStock
	}
	if product.Language == "" {
		product.Language = "English"
	}
	if product.Highlights == nil {
		product.Highlights = datatypes.JSONSlice[string]{}
	}
	if product.Categories == nil {
		product.Categories = datatypes.JSONSlice[string]{}
	}
	if product.Subcategories == nil {
		product.Subcategories = datatypes.JSONSlice[string]{}
	}
	return product
}

// ProductUpdate carries a partial update; nil fields are left untouched.
type ProductUpdate struct {
	Slug          *string   `json:"slug"`
	Title         *string   `json:"title"`
	Author        *string   `json:"author"`
	Price         *int      `json:"price"`
	OldPrice      *int      `json:"oldPrice"`
	Image         *string   `json:"image"`
	Description   *string   `json:"description"`
	Highlights    *[]string `json:"highlights"`
	Pages         *int      `json:"pages"`
	Language      *string   `json:"language"`
	Publisher     *string   `json:"publisher"`
	InStock       *bool     `json:"inStock"`
	Categories    *[]string `json:"categories"`
	Subcategories *[]string `json:"subcategories"`
	IsFeatured    *bool     `json:"isFeatured"`
	IsBestSeller  *bool     `json:"isBestSeller"`
}

// ApplyTo merges the non-nil fields onto an existing product.
func (u ProductUpdate) ApplyTo(p *Product) {
	if u.Slug != nil {
		p.Slug = *u.Slug
	}
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Author != nil {
		p.Author = *u.Author
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.OldPrice != nil {
		p.OldPrice = u.OldPrice
	}
	if u.Image != nil {
		p.Image = *u.Image
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Highlights != nil {
		p.Highlights = *u.Highlights
	}
	if u.Pages != nil {
		p.Pages = *u.Pages
	}
	if u.Language != nil {
		p.Language = *u.Language
	}
	if u.Publisher != nil {
		p.Publisher = *u.Publisher
	}
	if u.InStock != nil {
		p.InStock = *u.InStock
	}
	if u.Categories != nil {
		p.Categories = *u.Categories
	}
	if u.Subcategories != nil {
		p.Subcategories = *u.Subcategories
	}
	if u.IsFeatured != nil {
		p.IsFeatured = *u.IsFeatured
	}
	if u.IsBestSeller != nil {
		p.IsBestSeller = *u.IsBestSeller
	}
}

// ProductFilter holds the independent, conjunctive listing filters.
type ProductFilter struct {
	Featured   bool
	BestSeller bool
	Category   string
	Search     string
}

// FilterProducts applies the filters to a fully loaded collection. The
// whole catalog is small, so filtering stays in memory rather than in SQL.
func FilterProducts(products []Product, filter ProductFilter) []Product {
	filtered := make([]Product, 0, len(products))
	search := strings.ToLower(filter.Search)
	for _, p := range products {
		if filter.Featured && !p.IsFeatured {
			continue
		}
		if filter.BestSeller && !p.IsBestSeller {
			continue
		}
		if filter.Category != "" && filter.Category != AllGenreSentinel && !containsLabel(p.Categories, filter.Category) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Author), search) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func containsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}

// SortProductsByNewest orders a listing newest first.
func SortProductsByNewest(products []Product) {
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
}
