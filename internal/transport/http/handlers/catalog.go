package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"shop-service/internal/repository"
	"shop-service/internal/service"
	"shop-service/internal/transport/http/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const storefrontPageSize = 9

type CatalogHandler struct {
	catalog service.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(catalog service.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, log: log}
}

func parseUUIDList(raw string) []uuid.UUID {
	if raw == "" {
		return nil
	}
	var ids []uuid.UUID
	for _, part := range strings.Split(raw, ",") {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func pagination(c *gin.Context, defaultLimit int) (limit, offset int) {
	limit, _ = strconv.Atoi(c.Query("limit"))
	if limit <= 0 {
		limit = defaultLimit
	}
	page, _ := strconv.Atoi(c.Query("page"))
	if page < 1 {
		page = 1
	}
	return limit, (page - 1) * limit
}

// ListProducts godoc
// @Summary Товары витрины с фильтрами (категории, бренды, featured, on_sale, цена)
// @Router /api/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	limit, offset := pagination(c, storefrontPageSize)

	f := service.StorefrontFilter{
		CategoryIDs: parseUUIDList(c.Query("categories")),
		BrandIDs:    parseUUIDList(c.Query("brands")),
		Featured:    c.Query("featured") == "true",
		OnSale:      c.Query("on_sale") == "true",
		Sort:        repository.ProductSort(c.DefaultQuery("sort", "latest")),
		Limit:       limit,
		Offset:      offset,
	}
	if raw := c.Query("max_price_cents"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			f.MaxPriceCents = &v
		}
	}

	products, total, err := h.catalog.ListProducts(c.Request.Context(), f)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	resp := dto.ProductListResponse{Products: make([]dto.ProductResponse, 0, len(products)), Total: total}
	for i := range products {
		resp.Products = append(resp.Products, dto.ToProductResponse(&products[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// GetProduct godoc
// @Summary Карточка товара по slug (только активные)
// @Router /api/products/{slug} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	p, err := h.catalog.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// ListCategories godoc
// @Summary Активные категории
// @Router /api/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	list, err := h.catalog.ListActiveCategories(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	resp := dto.CategoryListResponse{Categories: make([]dto.CategoryResponse, 0, len(list)), Total: int64(len(list))}
	for i := range list {
		resp.Categories = append(resp.Categories, dto.ToCategoryResponse(&list[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// GetCategory godoc
// @Summary Категория по ID (только активные)
// @Router /api/categories/{id} [get]
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("invalid id"))
		return
	}

	cat, err := h.catalog.GetActiveCategory(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(cat))
}

// ListBrands godoc
// @Summary Активные бренды
// @Router /api/brands [get]
func (h *CatalogHandler) ListBrands(c *gin.Context) {
	list, err := h.catalog.ListActiveBrands(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	resp := dto.BrandListResponse{Brands: make([]dto.BrandResponse, 0, len(list)), Total: int64(len(list))}
	for i := range list {
		resp.Brands = append(resp.Brands, dto.ToBrandResponse(&list[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// GetBrand godoc
// @Summary Бренд по ID (только активные)
// @Router /api/brands/{id} [get]
func (h *CatalogHandler) GetBrand(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("invalid id"))
		return
	}

	b, err := h.catalog.GetActiveBrand(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBrandResponse(b))
}
