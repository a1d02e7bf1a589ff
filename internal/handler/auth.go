package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"weekly-check/internal/logger"
	"weekly-check/internal/middleware"
	"weekly-check/internal/model"
	"weekly-check/internal/service"
)

type AuthHandler struct{ directory *service.DirectoryService }

func NewAuthHandler(directory *service.DirectoryService) *AuthHandler {
	return &AuthHandler{directory: directory}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	u, err := h.directory.Authenticate(c.Request.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, model.ErrUnknownUser):
		logger.Warn("login.unknown_user", "username", req.Username)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	case errors.Is(err, model.ErrWrongPassword):
		logger.Warn("login.wrong_password", "username", req.Username)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	case err != nil:
		logger.Error("login.directory_unavailable", "err", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "member directory unavailable"})
		return
	}

	token, err := middleware.NewToken(u.Username, u.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token signing failed"})
		return
	}

	logger.Info("login.ok", "username", u.Username, "name", u.Name)
	c.JSON(http.StatusOK, model.LoginResponse{Token: token, User: u})
}
