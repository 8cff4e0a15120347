package rest

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrozco/galleria/api"
	"github.com/mrozco/galleria/gallery/application"
	"github.com/mrozco/galleria/gallery/domain"
)

// GetCollection returns the raw collection in collection order for the
// administration table, together with the view total when one is known.
func (h *Handler) GetCollection(c *gin.Context) {
	resp := api.AdminCollectionResponse{Images: h.store.Snapshot()}
	if total, ok := h.views.Total(); ok {
		resp.Views = &total
	}
	c.JSON(http.StatusOK, resp)
}

// IngestImages accepts one batch of raw inputs, either multipart form files
// from the picker or a drop, or a JSON body of base64 items from a paste,
// and merges the decodable images into the collection. Items that fail
// decoding are dropped individually; the response reports both counts.
func (h *Handler) IngestImages(c *gin.Context) {
	var closers []io.Closer
	defer func() {
		for _, cl := range closers {
			cl.Close()
		}
	}()

	var inputs []application.RawInput
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		for _, fh := range form.File["images"] {
			f, err := fh.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("failed to open %q: %v", fh.Filename, err)})
				return
			}
			closers = append(closers, f)
			inputs = append(inputs, application.RawInput{
				Name:        fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Content:     f,
			})
		}
	} else {
		req := &api.PasteRequest{}
		if err := c.ShouldBindJSON(req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		for i, item := range req.Items {
			raw, err := base64.StdEncoding.DecodeString(item.Data)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("item %d is not valid base64", i)})
				return
			}
			inputs = append(inputs, application.RawInput{
				Name:        item.Name,
				ContentType: item.ContentType,
				Content:     bytes.NewReader(raw),
			})
		}
	}

	records := h.pipeline.Assemble(inputs)

	resp := api.IngestResponse{
		Added:   len(records),
		Dropped: len(inputs) - len(records),
	}
	if err := h.store.IngestBatch(c.Request.Context(), records); err != nil {
		resp.Warning = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateImage merges a partial patch of the mutable fields into one record.
func (h *Handler) UpdateImage(c *gin.Context) {
	req := &api.UpdateImageRequest{}
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := domain.FieldPatch{
		DisplayName: req.DisplayName,
		Caption:     req.Caption,
		Featured:    req.Featured,
	}
	if err := h.store.UpdateField(c.Request.Context(), c.Param("imageId"), patch); err != nil {
		c.JSON(http.StatusOK, gin.H{"warning": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// MoveImage swaps a record with its neighbor toward the start or end of the
// collection. Boundary moves are no-ops.
func (h *Handler) MoveImage(c *gin.Context) {
	req := &api.MoveRequest{}
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dir := domain.Direction(req.Direction)
	if dir != domain.MoveUp && dir != domain.MoveDown {
		c.JSON(http.StatusBadRequest, gin.H{"error": "direction must be \"up\" or \"down\""})
		return
	}

	if err := h.store.Reorder(c.Request.Context(), c.Param("imageId"), dir); err != nil {
		c.JSON(http.StatusOK, gin.H{"warning": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) RemoveImage(c *gin.Context) {
	if err := h.store.Remove(c.Request.Context(), c.Param("imageId")); err != nil {
		c.JSON(http.StatusOK, gin.H{"warning": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearImages empties the collection and removes the persisted snapshot.
func (h *Handler) ClearImages(c *gin.Context) {
	if err := h.store.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusOK, gin.H{"warning": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
