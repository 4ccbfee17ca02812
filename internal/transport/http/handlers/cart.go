package handlers

import (
	"net/http"

	"shop-service/internal/service"
	"shop-service/internal/transport/http/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	cartCookieName   = "cart_id"
	cartCookieMaxAge = 30 * 24 * 60 * 60
)

type CartHandler struct {
	cart service.CartService
	log  *zap.Logger
}

func NewCartHandler(cart service.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{cart: cart, log: log}
}

// cartID: авторизованный пользователь — корзина по user id,
// гость — по cookie (как cookie-корзина исходной витрины).
func (h *CartHandler) cartID(c *gin.Context) string {
	if uid, ok := service.UserIDFromContext(c.Request.Context()); ok {
		adoptGuestCart(c, h.cart, uid, h.log)
		return uid.String()
	}

	if id, err := c.Cookie(cartCookieName); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	c.SetCookie(cartCookieName, id, cartCookieMaxAge, "/", "", false, true)
	return id
}

// adoptGuestCart подхватывает cookie-корзину после входа: всё, что гость
// набрал до авторизации, сливается в корзину пользователя, cookie гасится.
func adoptGuestCart(c *gin.Context, cart service.CartService, uid uuid.UUID, log *zap.Logger) {
	guestID, err := c.Cookie(cartCookieName)
	if err != nil || guestID == "" || guestID == uid.String() {
		return
	}
	if _, err := cart.Merge(c.Request.Context(), guestID, uid.String()); err != nil {
		log.Warn("failed to merge guest cart", zap.String("cart_id", guestID), zap.Error(err))
		return
	}
	c.SetCookie(cartCookieName, "", -1, "/", "", false, true)
}

func (h *CartHandler) productID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("invalid product id"))
		return uuid.Nil, false
	}
	return id, true
}

func (h *CartHandler) respond(c *gin.Context, cart *service.Cart, err error) {
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCartResponse(cart))
}

func (h *CartHandler) Get(c *gin.Context) {
	cart, err := h.cart.Get(c.Request.Context(), h.cartID(c))
	h.respond(c, cart, err)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("invalid request body"))
		return
	}

	cart, err := h.cart.AddItem(c.Request.Context(), h.cartID(c), req.ProductID)
	h.respond(c, cart, err)
}

func (h *CartHandler) IncrementItem(c *gin.Context) {
	pid, ok := h.productID(c)
	if !ok {
		return
	}
	cart, err := h.cart.IncrementItem(c.Request.Context(), h.cartID(c), pid)
	h.respond(c, cart, err)
}

func (h *CartHandler) DecrementItem(c *gin.Context) {
	pid, ok := h.productID(c)
	if !ok {
		return
	}
	cart, err := h.cart.DecrementItem(c.Request.Context(), h.cartID(c), pid)
	h.respond(c, cart, err)
}

func (h *CartHandler) SetQuantity(c *gin.Context) {
	pid, ok := h.productID(c)
	if !ok {
		return
	}

	var req dto.SetCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("invalid request body"))
		return
	}

	cart, err := h.cart.SetItemQuantity(c.Request.Context(), h.cartID(c), pid, req.Quantity)
	h.respond(c, cart, err)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	pid, ok := h.productID(c)
	if !ok {
		return
	}
	cart, err := h.cart.RemoveItem(c.Request.Context(), h.cartID(c), pid)
	h.respond(c, cart, err)
}

func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.cart.Clear(c.Request.Context(), h.cartID(c)); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
