package controllers

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/burkibooks/burki-api/models"
	"github.com/burkibooks/burki-api/stores"
	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
)

// MigrateController re-hosts legacy product images: anything whose URL is
// not already on the image host gets fetched and uploaded, and the product
// record is pointed at the new URL.
type MigrateController struct {
	Products stores.ProductStore
	Uploader ImageUploader
	Client   *resty.Client

	// HostMarker identifies already-migrated URLs, e.g. the bucket domain.
	HostMarker string
}

func NewMigrateController(products stores.ProductStore, uploader ImageUploader, hostMarker string) *MigrateController {
	return &MigrateController{
		Products:   products,
		Uploader:   uploader,
		Client:     resty.New().SetTimeout(30 * time.Second),
		HostMarker: hostMarker,
	}
}

func (c *MigrateController) MigrateImages(ctx *gin.Context) {
	products, err := c.Products.ListProducts()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", err)
		return
	}

	var migrated []string
	var failed []string
	skipped := 0

	for _, product := range products {
		if product.Image == "" || (c.HostMarker != "" && strings.Contains(product.Image, c.HostMarker)) {
			skipped++
			continue
		}

		resp, err := c.Client.R().Get(product.Image)
		if err != nil {
			log.Printf("Error fetching image for product %s: %v", product.ID, err)
			failed = append(failed, product.ID)
			continue
		}
		if !resp.IsSuccess() {
			log.Printf("Error fetching image for product %s: status %d", product.ID, resp.StatusCode())
			failed = append(failed, product.ID)
			continue
		}

		key := path.Join("products", fmt.Sprintf("%s-%s", time.Now().Format("20060102150405"), path.Base(product.Image)))
		url, err := c.Uploader.Upload(ctx.Request.Context(), key, resp.Header().Get("Content-Type"), bytes.NewReader(resp.Body()))
		if err != nil {
			log.Printf("Error uploading image for product %s: %v", product.ID, err)
			failed = append(failed, product.ID)
			continue
		}

		if _, err := c.Products.UpdateProduct(product.ID, models.ProductUpdate{Image: &url}); err != nil {
			log.Printf("Error saving migrated image for product %s: %v", product.ID, err)
			failed = append(failed, product.ID)
			continue
		}
		migrated = append(migrated, product.ID)
	}

	response := gin.H{
		"migrated": migrated,
		"skipped":  skipped,
	}
	if len(failed) > 0 {
		response["failed"] = failed
	}
	ctx.JSON(http.StatusOK, response)
}
