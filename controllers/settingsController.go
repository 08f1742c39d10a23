package controllers

import (
	"log"
	"net/http"

	"github.com/burkibooks/burki-api/models"
	"github.com/burkibooks/burki-api/stores"
	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	Store stores.SettingsStore
}

func NewSettingsController(store stores.SettingsStore) *SettingsController {
	return &SettingsController{Store: store}
}

// GetSettings is public and never fails: a broken settings read degrades
// to the built-in defaults.
func (c *SettingsController) GetSettings(ctx *gin.Context) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		log.Println("Settings read error:", err)
		settings = models.DefaultSiteSettings()
	}
	ctx.JSON(http.StatusOK, settings)
}

// UpdateSettings partially updates the singleton settings record.
func (c *SettingsController) UpdateSettings(ctx *gin.Context) {
	var update models.SettingsUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	settings, err := c.Store.UpdateSettings(update)
	if err != nil {
		log.Println("Settings update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":     true,
		"quoteText":   settings.QuoteText,
		"quoteAuthor": settings.QuoteAuthor,
	})
}
