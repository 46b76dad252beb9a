package handler

import (
	"errors"
	"net/http"

	"sensory-map-api/internal/privacy"

	"github.com/gin-gonic/gin"
)

// SettingsHandler exposes the privacy settings surface
type SettingsHandler struct {
	settings PrivacySettings
}

// PrivacySettings interface for dependency injection
type PrivacySettings interface {
	Snapshot() privacy.Config
	Update(privacy.Config) (privacy.Config, error)
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settings PrivacySettings) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// Get handles GET /settings/privacy requests
//
//	@Summary	Current privacy thresholds
//	@Produce	json
//	@Success	200	{object}	privacy.Config
//	@Router		/settings/privacy [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.settings.Snapshot())
}

// Update handles PUT /settings/privacy requests
//
//	@Summary	Replace privacy thresholds
//	@Accept		json
//	@Produce	json
//	@Param		config	body		privacy.Config	true	"new thresholds"
//	@Success	200		{object}	privacy.Config
//	@Failure	422		{object}	map[string]string
//	@Router		/settings/privacy [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var cfg privacy.Config
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	applied, err := h.settings.Update(cfg)
	if err != nil {
		if errors.Is(err, privacy.ErrInconsistentConfig) || errors.Is(err, privacy.ErrInvalidThreshold) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, applied)
}
