package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	taxonomyRepoPkg "slotify/database/repository/taxonomy"
	"slotify/middleware"
	"slotify/models"
	"slotify/services/permission"
	"slotify/utils"
)

// TaxonomyHandler serves the read-only lookup collections backing the
// booking form.
type TaxonomyHandler struct {
	Repo taxonomyRepoPkg.TaxonomyRepository
}

// ListRegionsHandler handles GET /api/regions.
func (h *TaxonomyHandler) ListRegionsHandler(c *gin.Context) {
	regions, err := h.Repo.ListRegions(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list regions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list regions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"regions": regions})
}

// ListPlatformsHandler handles GET /api/platforms.
func (h *TaxonomyHandler) ListPlatformsHandler(c *gin.Context) {
	platforms, err := h.Repo.ListPlatforms(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list platforms", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list platforms"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"platforms": platforms})
}

// ListBrandsHandler handles GET /api/brands. Brands carry their own access
// level; entries above the caller's role are omitted.
func (h *TaxonomyHandler) ListBrandsHandler(c *gin.Context) {
	role := middleware.GetRole(c)

	brands, err := h.Repo.ListBrands(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list brands", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list brands"})
		return
	}

	visible := make([]models.Brand, 0, len(brands))
	for _, brand := range brands {
		if permission.CanRead(role, brand.Access) {
			visible = append(visible, brand)
		}
	}
	c.JSON(http.StatusOK, gin.H{"brands": visible})
}
