package controllers_test

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/burkibooks/burki-api/controllers"
	"github.com/burkibooks/burki-api/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateImages(t *testing.T) {
	legacyHost := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "missing.jpg") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte("jpeg-bytes"))
	}))
	defer legacyHost.Close()

	base := time.Now()
	store := &stubProductStore{products: []models.Product{
		{ID: "legacy", Slug: "a", Title: "A", Image: legacyHost.URL + "/covers/a.jpg", CreatedAt: base},
		{ID: "hosted", Slug: "b", Title: "B", Image: "https://bucket.s3.amazonaws.com/products/b.jpg", CreatedAt: base},
		{ID: "broken", Slug: "c", Title: "C", Image: legacyHost.URL + "/covers/missing.jpg", CreatedAt: base},
		{ID: "blank", Slug: "d", Title: "D", Image: "", CreatedAt: base},
	}}
	uploader := &stubUploader{}

	migrate := controllers.NewMigrateController(store, uploader, "bucket.s3.amazonaws.com")
	router := gin.New()
	router.POST("/admin/migrate-images", migrate.MigrateImages)

	w := performRequest(router, http.MethodPost, "/admin/migrate-images", nil)
	require.Equal(t, http.StatusOK, w.Code)

	summary := decodeBody[struct {
		Migrated []string `json:"migrated"`
		Skipped  int      `json:"skipped"`
		Failed   []string `json:"failed"`
	}](t, w)

	assert.Equal(t, []string{"legacy"}, summary.Migrated)
	assert.Equal(t, 2, summary.Skipped)
	assert.Equal(t, []string{"broken"}, summary.Failed)

	// The migrated product now points at the new host.
	updated, err := store.GetProduct("legacy")
	require.NoError(t, err)
	assert.Contains(t, updated.Image, "bucket.s3.amazonaws.com")

	// The already-hosted product was left alone.
	hosted, err := store.GetProduct("hosted")
	require.NoError(t, err)
	assert.Equal(t, "https://bucket.s3.amazonaws.com/products/b.jpg", hosted.Image)
}

func TestMigrateImages_LogsFetchStatus(t *testing.T) {
	legacyHost := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer legacyHost.Close()

	store := &stubProductStore{products: []models.Product{
		{ID: "gone", Slug: "a", Title: "A", Image: legacyHost.URL + "/covers/a.jpg", CreatedAt: time.Now()},
	}}

	var logged bytes.Buffer
	log.SetOutput(&logged)
	defer log.SetOutput(os.Stderr)

	migrate := controllers.NewMigrateController(store, &stubUploader{}, "bucket.s3.amazonaws.com")
	router := gin.New()
	router.POST("/admin/migrate-images", migrate.MigrateImages)

	w := performRequest(router, http.MethodPost, "/admin/migrate-images", nil)
	require.Equal(t, http.StatusOK, w.Code)

	summary := decodeBody[struct {
		Failed []string `json:"failed"`
	}](t, w)
	assert.Equal(t, []string{"gone"}, summary.Failed)

	// The log names the product and the response status.
	assert.Contains(t, logged.String(), "gone")
	assert.Contains(t, logged.String(), "status 410")
}
