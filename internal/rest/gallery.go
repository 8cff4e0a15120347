package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrozco/galleria/api"
	"github.com/mrozco/galleria/gallery/application"
)

// GetGallery derives the display list and hero for the current collection.
// Query parameters: q (free-text search), columns (grid density, clamped).
func (h *Handler) GetGallery(c *gin.Context) {
	cfg := application.DisplayConfig{Query: c.Query("q")}

	if cols := c.Query("columns"); cols != "" {
		n, err := strconv.Atoi(cols)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "columns must be an integer"})
			return
		}
		cfg.Columns = n
	}

	projection := application.Project(h.store.Snapshot(), cfg)

	c.JSON(http.StatusOK, api.GalleryResponse{
		Images:  projection.DisplayList,
		Hero:    projection.Hero,
		Columns: projection.Columns,
	})
}
