package handlers

import (
	"net/http"

	"shop-service/internal/service"
	"shop-service/internal/transport/http/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminUserHandler struct {
	auth service.AuthService
	log  *zap.Logger
}

func NewAdminUserHandler(auth service.AuthService, log *zap.Logger) *AdminUserHandler {
	return &AdminUserHandler{auth: auth, log: log}
}

func (h *AdminUserHandler) List(c *gin.Context) {
	users, total, err := h.auth.AdminListUsers(c.Request.Context(), adminListFilter(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	resp := dto.UserListResponse{Users: make([]dto.UserResponse, 0, len(users)), Total: total}
	for i := range users {
		resp.Users = append(resp.Users, dto.ToUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminUserHandler) Get(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	u, err := h.auth.AdminGetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(u))
}

func (h *AdminUserHandler) Update(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("invalid request body"))
		return
	}

	u, err := h.auth.UpdateUser(c.Request.Context(), id, service.UpdateUserInput{
		Name:    req.Name,
		Email:   req.Email,
		IsAdmin: req.IsAdmin,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(u))
}

func (h *AdminUserHandler) Delete(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	if err := h.auth.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminUserHandler) BulkDelete(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("invalid request body"))
		return
	}

	deleted, err := h.auth.BulkDeleteUsers(c.Request.Context(), req.IDs)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.BulkDeleteResponse{Deleted: deleted})
}
