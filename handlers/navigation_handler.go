package handlers

import (
	"errors"
	"net/http"

	"myblog-api/models"
	"myblog-api/services"

	"github.com/gin-gonic/gin"
)

// defaultMenu is served when no navigation entries are configured. An
// empty collection is a valid state meaning "use the default", not an
// error.
var defaultMenu = []models.NavigationEntry{
	{Title: "Home", Path: "/", Type: models.NavigationInternal, Order: 0, Enabled: true},
	{Title: "Categories", Path: "/categories", Type: models.NavigationInternal, Order: 1, Enabled: true},
}

type NavigationHandler struct {
	navigationService services.NavigationService
}

func NewNavigationHandler(navigationService services.NavigationService) *NavigationHandler {
	return &NavigationHandler{navigationService: navigationService}
}

// GetPublicNavigation returns the enabled menu entries, falling back to
// the default menu when none are configured.
func (h *NavigationHandler) GetPublicNavigation(c *gin.Context) {
	entries, err := h.navigationService.ResolveMenu()
	if err != nil {
		c.JSON(HTTPHelper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	if len(entries) == 0 {
		c.JSON(http.StatusOK, gin.H{"navigation": defaultMenu, "default": true})
		return
	}

	enabled := make([]models.NavigationEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Enabled {
			enabled = append(enabled, entry)
		}
	}

	c.JSON(http.StatusOK, gin.H{"navigation": enabled, "default": false})
}

// GetNavigation is the admin listing: every entry, disabled ones
// included, for preview.
func (h *NavigationHandler) GetNavigation(c *gin.Context) {
	entries, err := h.navigationService.ResolveMenu()
	if err != nil {
		c.JSON(HTTPHelper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"navigation": entries})
}

func (h *NavigationHandler) CreateEntry(c *gin.Context) {
	var input models.NavigationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.navigationService.CreateEntry(input)
	if err != nil {
		h.sendNavigationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *NavigationHandler) UpdateEntry(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid navigation ID"})
		return
	}

	var input models.NavigationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.navigationService.UpdateEntry(id, input)
	if err != nil {
		h.sendNavigationError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *NavigationHandler) DeleteEntry(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid navigation ID"})
		return
	}

	if err := h.navigationService.DeleteEntry(id); err != nil {
		h.sendNavigationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Navigation entry deleted successfully"})
}

func (h *NavigationHandler) sendNavigationError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Reason, "field": validationErr.Field})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Navigation entry not found"})
	default:
		c.JSON(HTTPHelper.GetStatusCode(err), gin.H{"error": err.Error()})
	}
}
