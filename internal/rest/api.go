package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/mrozco/galleria/gallery/application"
	"github.com/mrozco/galleria/internal/middleware"
	"github.com/mrozco/galleria/shared/views"
)

// Handler exposes the gallery core to the presentation layer: derived views
// and the raw collection going out, raw input batches and display
// configuration coming in.
type Handler struct {
	store    *application.GalleryStore
	pipeline *application.Pipeline
	gate     *application.SessionGate
	views    *views.Tracker
}

func NewApi(router *gin.Engine, store *application.GalleryStore, pipeline *application.Pipeline, gate *application.SessionGate, tracker *views.Tracker) {
	h := &Handler{
		store:    store,
		pipeline: pipeline,
		gate:     gate,
		views:    tracker,
	}

	galleryV1 := router.Group("gallery/v1")
	{
		galleryV1.GET("/images", h.GetGallery)
	}

	sessionV1 := router.Group("session/v1")
	{
		sessionV1.GET("", h.GetSession)
		sessionV1.POST("/login", h.Login)
		sessionV1.POST("/logout", h.Logout)
	}

	// The session gate fronts every mutating operation and the whole
	// administration surface.
	adminV1 := router.Group("admin/v1", middleware.RequireSession(gate))
	{
		adminV1.GET("/images", h.GetCollection)
		adminV1.POST("/images", h.IngestImages)
		adminV1.PATCH("/images/:imageId", h.UpdateImage)
		adminV1.POST("/images/:imageId/move", h.MoveImage)
		adminV1.DELETE("/images/:imageId", h.RemoveImage)
		adminV1.DELETE("/images", h.ClearImages)
	}
}
