package handlers

import (
	"net/http"

	"shop-service/internal/service"
	"shop-service/internal/transport/http/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminCatalogHandler struct {
	catalog service.CatalogService
	log     *zap.Logger
}

func NewAdminCatalogHandler(catalog service.CatalogService, log *zap.Logger) *AdminCatalogHandler {
	return &AdminCatalogHandler{catalog: catalog, log: log}
}

func adminListFilter(c *gin.Context) service.AdminListFilter {
	limit, offset := pagination(c, 20)
	f := service.AdminListFilter{
		Query:  c.Query("q"),
		Limit:  limit,
		Offset: offset,
	}
	if raw := c.Query("active"); raw != "" {
		v := raw == "true"
		f.OnlyActive = &v
	}
	return f
}

func entityID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("invalid id"))
		return uuid.Nil, false
	}
	return id, true
}

// --- Товары ---

func (h *AdminCatalogHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("invalid request body"))
		return
	}

	p, err := h.catalog.CreateProduct(c.Request.Context(), service.CreateProductInput{
		CategoryID:  req.CategoryID,
		BrandID:     req.BrandID,
		Name:        req.Name,
		Slug:        req.Slug,
		Images:      req.Images,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		IsActive:    req.IsActive,
		IsFeatured:  req.IsFeatured,
		OnSale:      req.OnSale,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	h.log.Info("product created", zap.String("product_id", p.ID.String()), zap.String("slug", p.Slug))
	c.JSON(http.StatusCreated, dto.ToProductResponse(p))
}

func (h *AdminCatalogHandler) UpdateProduct(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("invalid request body"))
		return
	}

	p, err := h.catalog.UpdateProduct(c.Request.Context(), id, service.UpdateProductInput{
		CategoryID:  req.CategoryID,
		BrandID:     req.BrandID,
		Name:        req.Name,
		Slug:        req.Slug,
		Images:      req.Images,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		IsActive:    req.IsActive,
		IsFeatured:  req.IsFeatured,
		OnSale:      req.OnSale,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(p))
}

func (h *AdminCatalogHandler) GetProduct(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	p, err := h.catalog.AdminGetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(p))
}

func (h *AdminCatalogHandler) ListProducts(c *gin.Context) {
	products, total, err := h.catalog.AdminListProducts(c.Request.Context(), adminListFilter(c))
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

func (h *AdminCatalogHandler) DeleteProduct(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	if err := h.catalog.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminCatalogHandler) BulkDeleteProducts(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("invalid request body"))
		return
	}

	deleted, err := h.catalog.BulkDeleteProducts(c.Request.Context(), req.IDs)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.BulkDeleteResponse{Deleted: deleted})
}

// --- Категории ---

func (h *AdminCatalogHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("invalid request body"))
		return
	}

	cat, err := h.catalog.CreateCategory(c.Request.Context(), service.CreateCategoryInput{
		Name:     req.Name,
		Slug:     req.Slug,
		Image:    req.Image,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(cat))
}

func (h *AdminCatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("invalid request body"))
		return
	}

	cat, err := h.catalog.UpdateCategory(c.Request.Context(), id, service.UpdateCategoryInput{
		Name:     req.Name,
		Slug:     req.Slug,
		Image:    req.Image,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(cat))
}

func (h *AdminCatalogHandler) GetCategory(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	cat, err := h.catalog.AdminGetCategory(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(cat))
}

func (h *AdminCatalogHandler) ListCategories(c *gin.Context) {
	list, total, err := h.catalog.AdminListCategories(c.Request.Context(), adminListFilter(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	resp := dto.CategoryListResponse{Categories: make([]dto.CategoryResponse, 0, len(list)), Total: total}
	for i := range list {
		resp.Categories = append(resp.Categories, dto.ToCategoryResponse(&list[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminCatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	if err := h.catalog.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminCatalogHandler) BulkDeleteCategories(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("invalid request body"))
		return
	}

	deleted, err := h.catalog.BulkDeleteCategories(c.Request.Context(), req.IDs)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.BulkDeleteResponse{Deleted: deleted})
}

// --- Бренды ---

func (h *AdminCatalogHandler) CreateBrand(c *gin.Context) {
	var req dto.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("invalid request body"))
		return
	}

	b, err := h.catalog.CreateBrand(c.Request.Context(), service.CreateBrandInput{
		Name:     req.Name,
		Slug:     req.Slug,
		Image:    req.Image,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToBrandResponse(b))
}

func (h *AdminCatalogHandler) UpdateBrand(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}

	var req dto.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("invalid request body"))
		return
	}

	b, err := h.catalog.UpdateBrand(c.Request.Context(), id, service.UpdateBrandInput{
		Name:     req.Name,
		Slug:     req.Slug,
		Image:    req.Image,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBrandResponse(b))
}

func (h *AdminCatalogHandler) GetBrand(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	b, err := h.catalog.AdminGetBrand(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBrandResponse(b))
}

func (h *AdminCatalogHandler) ListBrands(c *gin.Context) {
	list, total, err := h.catalog.AdminListBrands(c.Request.Context(), adminListFilter(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	resp := dto.BrandListResponse{Brands: make([]dto.BrandResponse, 0, len(list)), Total: total}
	for i := range list {
		resp.Brands = append(resp.Brands, dto.ToBrandResponse(&list[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminCatalogHandler) DeleteBrand(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	if err := h.catalog.DeleteBrand(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminCatalogHandler) BulkDeleteBrands(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("invalid request body"))
		return
	}

	deleted, err := h.catalog.BulkDeleteBrands(c.Request.Context(), req.IDs)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.BulkDeleteResponse{Deleted: deleted})
}
