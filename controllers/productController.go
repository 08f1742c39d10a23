package controllers

import (
	"errors"
	"net/http"

	"github.com/burkibooks/burki-api/models"
	"github.com/burkibooks/burki-api/stores"
	"github.com/gin-gonic/gin"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

type ProductController struct {
	Store stores.ProductStore
}

func NewProductController(store stores.ProductStore) *ProductController {
	return &ProductController{Store: store}
}

// GetProducts serves the filtered catalog listing. The collection is read
// whole and filtered in memory; sorting newest-first happens last.
func (c *ProductController) GetProducts(ctx *gin.Context) {
	filter := models.ProductFilter{
		Featured:   ctx.Query("featured") == "true",
		BestSeller: ctx.Query("bestSeller") == "true",
		Category:   ctx.Query("category"),
		Search:     ctx.Query("q"),
	}

	products, err := c.Store.ListProducts()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", err)
		return
	}

	filtered := models.FilterProducts(products, filter)
	models.SortProductsByNewest(filtered)
	ctx.JSON(http.StatusOK, filtered)
}

func (c *ProductController) GetProduct(ctx *gin.Context) {
	product, err := c.Store.GetProduct(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", err)
		}
		return
	}
	ctx.JSON(http.StatusOK, product)
}

func (c *ProductController) GetProductBySlug(ctx *gin.Context) {
	product, err := c.Store.GetProductBySlug(ctx.Param("slug"))
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", err)
		}
		return
	}
	ctx.JSON(http.StatusOK, product)
}

func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var input models.ProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	product := input.ToProduct()
	if err := c.Store.CreateProduct(&product); err != nil {
		if errors.Is(err, stores.ErrSlugTaken) {
			respondWithError(ctx, http.StatusConflict, "A product with this slug already exists", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to create product", err)
		}
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	var update models.ProductUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	product, err := c.Store.UpdateProduct(ctx.Param("id"), update)
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrNotFound):
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		case errors.Is(err, stores.ErrSlugTaken):
			respondWithError(ctx, http.StatusConflict, "A product with this slug already exists", nil)
		default:
			respondWithError(ctx, http.StatusInternalServerError, "Failed to update product", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, product)
}

func (c *ProductController) DeleteProduct(ctx *gin.Context) {
	if err := c.Store.DeleteProduct(ctx.Param("id")); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to delete product", err)
		}
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
