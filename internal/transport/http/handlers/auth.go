package handlers

import (
	"net/http"

	"shop-service/internal/service"
	"shop-service/internal/transport/http/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	auth service.AuthService
	log  *zap.Logger
}

func NewAuthHandler(auth service.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

// Register godoc
// @Summary Регистрация покупателя
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("invalid request body"))
		return
	}

	u, err := h.auth.Register(c.Request.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	h.log.Info("user registered", zap.String("email", u.Email))
	c.JSON(http.StatusCreated, dto.ToUserResponse(u))
}

// Login godoc
// @Summary Вход, выдаёт access-токен
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("invalid request body"))
		return
	}

	res, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		AccessToken: res.AccessToken,
		ExpiresAt:   res.ExpiresAt,
		User:        dto.ToUserResponse(res.User),
	})
}
