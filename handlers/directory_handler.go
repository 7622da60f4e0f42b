package handlers

import (
	"net/http"

	"lawmitra-backend/directory"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler handles HTTP requests for the ministers and state
// constitution directory
type DirectoryHandler struct {
	directory *directory.Service
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(d *directory.Service) *DirectoryHandler {
	return &DirectoryHandler{directory: d}
}

// GetCentralMinisters handles GET /api/ministers/central
func (h *DirectoryHandler) GetCentralMinisters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    h.directory.CentralMinisters(),
	})
}

// GetStateMinisters handles GET /api/ministers/states/:code.
// Unknown codes return an empty set rather than 404.
func (h *DirectoryHandler) GetStateMinisters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    h.directory.StateMinisters(c.Param("code")),
	})
}

// GetStateConstitution handles GET /api/states/:code
func (h *DirectoryHandler) GetStateConstitution(c *gin.Context) {
	sc, ok := h.directory.StateConstitution(c.Param("code"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STATE_NOT_FOUND",
				"message": "No constitutional record for that state code",
			},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sc,
	})
}
