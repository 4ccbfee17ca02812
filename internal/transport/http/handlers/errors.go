package handlers

import (
	"errors"
	"net/http"

	"shop-service/internal/service"
	"shop-service/internal/transport/http/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func statusFromError(err error) int {
	switch {
	case errors.Is(err, service.ErrUnauthorized),
		errors.Is(err, service.ErrInvalidCreds):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrNotAdmin):
		return http.StatusForbidden
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrBrandNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrOrderItemNotFound),
		errors.Is(err, service.ErrCartItemNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrSlugTaken),
		errors.Is(err, service.ErrDuplicateProduct):
		return http.StatusConflict
	case errors.Is(err, service.ErrQuantityInvalid),
		errors.Is(err, service.ErrInvalidPrice),
		errors.Is(err, service.ErrEmptyItems),
		errors.Is(err, service.ErrCartEmpty),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidPaymentStatus),
		errors.Is(err, service.ErrInvalidPaymentMethod):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, log *zap.Logger, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(status, dto.NewError("internal error"))
		return
	}
	c.JSON(status, dto.NewError(err.Error()))
}
