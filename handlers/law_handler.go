package handlers

import (
	"net/http"

	"lawmitra-backend/catalog"
	"lawmitra-backend/models"

	"github.com/gin-gonic/gin"
)

// LawHandler handles HTTP requests for the law catalog
type LawHandler struct {
	catalog *catalog.Catalog
}

// NewLawHandler creates a new law handler
func NewLawHandler(c *catalog.Catalog) *LawHandler {
	return &LawHandler{catalog: c}
}

// ListLaws handles GET /api/laws with optional category and q filters
func (h *LawHandler) ListLaws(c *gin.Context) {
	laws := h.catalog.All()

	if category := c.Query("category"); category != "" {
		laws = h.catalog.ByCategory(category)
	}
	if q := c.Query("q"); q != "" {
		filtered := make([]models.Law, 0)
		matches := make(map[string]struct{})
		for _, law := range h.catalog.Search(q) {
			matches[law.ID] = struct{}{}
		}
		for _, law := range laws {
			if _, ok := matches[law.ID]; ok {
				filtered = append(filtered, law)
			}
		}
		laws = filtered
	}
	if laws == nil {
		laws = []models.Law{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    laws,
	})
}

// GetLaw handles GET /api/laws/:id
func (h *LawHandler) GetLaw(c *gin.Context) {
	law, ok := h.catalog.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "LAW_NOT_FOUND",
				"message": "No law with that id",
			},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    law,
	})
}

// ListCategories handles GET /api/categories
func (h *LawHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    h.catalog.Categories(),
	})
}
