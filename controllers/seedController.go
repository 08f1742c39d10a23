package controllers

import (
	"errors"
	"net/http"

	"github.com/burkibooks/burki-api/models"
	"github.com/burkibooks/burki-api/stores"
	"github.com/gin-gonic/gin"
)

// SeedController loads the starter catalog on a fresh deployment.
type SeedController struct {
	Products stores.ProductStore
}

func NewSeedController(products stores.ProductStore) *SeedController {
	return &SeedController{Products: products}
}

// Seed creates every fixture product whose slug is not already taken, so
// re-running the endpoint never duplicates the catalog.
func (c *SeedController) Seed(ctx *gin.Context) {
	created := 0
	skipped := 0
	for _, input := range models.SeedCatalog() {
		product := input.ToProduct()
		if err := c.Products.CreateProduct(&product); err != nil {
			if errors.Is(err, stores.ErrSlugTaken) {
				skipped++
				continue
			}
			respondWithError(ctx, http.StatusInternalServerError, "Unable to seed products", err)
			return
		}
		created++
	}
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"created": created,
		"skipped": skipped,
	})
}
