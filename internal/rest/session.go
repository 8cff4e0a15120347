package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrozco/galleria/api"
	"github.com/mrozco/galleria/gallery/domain"
)

func (h *Handler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, api.SessionResponse{Authorized: h.gate.Authorized()})
}

func (h *Handler) Login(c *gin.Context) {
	req := &api.LoginRequest{}
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.gate.Login(c.Request.Context(), req.Password); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid password"})
			return
		}
		// The session is authorized in memory; only the flag write failed.
		c.JSON(http.StatusOK, api.SessionResponse{Authorized: true, Warning: err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.SessionResponse{Authorized: true})
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.gate.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusOK, api.SessionResponse{Authorized: false, Warning: err.Error()})
		return
	}
	c.JSON(http.StatusOK, api.SessionResponse{Authorized: false})
}
