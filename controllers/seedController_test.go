package controllers_test

import (
	"net/http"
	"testing"

	"github.com/burkibooks/burki-api/controllers"
	"github.com/burkibooks/burki-api/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeedRouter(store *stubProductStore) *gin.Engine {
	router := gin.New()
	router.POST("/admin/seed", controllers.NewSeedController(store).Seed)
	return router
}

type seedSummary struct {
	Success bool `json:"success"`
	Created int  `json:"created"`
	Skipped int  `json:"skipped"`
}

func TestSeed_PopulatesEmptyCatalog(t *testing.T) {
	store := &stubProductStore{}
	router := newSeedRouter(store)

	w := performRequest(router, http.MethodPost, "/admin/seed", nil)
	require.Equal(t, http.StatusOK, w.Code)

	summary := decodeBody[seedSummary](t, w)
	assert.True(t, summary.Success)
	assert.Equal(t, len(models.SeedCatalog()), summary.Created)
	assert.Equal(t, 0, summary.Skipped)
	assert.Len(t, store.products, summary.Created)

	bestSeller, err := store.GetProductBySlug("birds-gonna-be-happy")
	require.NoError(t, err)
	assert.True(t, bestSeller.IsBestSeller)
	assert.True(t, bestSeller.IsFeatured)
	assert.True(t, bestSeller.InStock)
	assert.Equal(t, "English", bestSeller.Language)
	assert.Contains(t, []string(bestSeller.Categories), models.AllGenreSentinel)
}

func TestSeed_SkipsExistingSlugs(t *testing.T) {
	store := &stubProductStore{}
	router := newSeedRouter(store)

	w := performRequest(router, http.MethodPost, "/admin/seed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	first := decodeBody[seedSummary](t, w)

	// A second run leaves the catalog untouched.
	w = performRequest(router, http.MethodPost, "/admin/seed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	second := decodeBody[seedSummary](t, w)

	assert.Equal(t, 0, second.Created)
	assert.Equal(t, first.Created, second.Skipped)
	assert.Len(t, store.products, first.Created)
}

func TestSeed_LeavesEditedProductsAlone(t *testing.T) {
	store := &stubProductStore{products: []models.Product{
		{ID: "existing", Slug: "once-upon-a-time", Title: "Once Upon a Time (2nd ed.)", Price: 999},
	}}
	router := newSeedRouter(store)

	w := performRequest(router, http.MethodPost, "/admin/seed", nil)
	require.Equal(t, http.StatusOK, w.Code)

	summary := decodeBody[seedSummary](t, w)
	assert.Equal(t, len(models.SeedCatalog())-1, summary.Created)
	assert.Equal(t, 1, summary.Skipped)

	kept, err := store.GetProductBySlug("once-upon-a-time")
	require.NoError(t, err)
	assert.Equal(t, "existing", kept.ID)
	assert.Equal(t, "Once Upon a Time (2nd ed.)", kept.Title)
	assert.Equal(t, 999, kept.Price)
}
