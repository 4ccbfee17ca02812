package service

import (
	"context"

	"shop-service/internal/models"
	"shop-service/internal/repository"

	"github.com/google/uuid"
)

type catalogService struct {
	repo *repository.Repository
}

func NewCatalogService(repo *repository.Repository) CatalogService {
	return &catalogService{repo: repo}
}

func onlyActive() *bool {
	v := true
	return &v
}

// --- Витрина ---

func (s *catalogService) ListProducts(ctx context.Context, f StorefrontFilter) ([]models.Product, int64, error) {
	return s.repo.Products.List(ctx, repository.ProductListFilter{
		CategoryIDs:   f.CategoryIDs,
		BrandIDs:      f.BrandIDs,
		Featured:      f.Featured,
		OnSale:        f.OnSale,
		MaxPriceCents: f.MaxPriceCents,
		OnlyActive:    onlyActive(),
		Sort:          f.Sort,
		Limit:         f.Limit,
		Offset:        f.Offset,
	})
}

func (s *catalogService) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	p, err := s.repo.Products.GetBySlug(ctx, slug, true)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *catalogService) ListActiveCategories(ctx context.Context) ([]models.Category, error) {
	list, _, err := s.repo.Categories.List(ctx, repository.CategoryListFilter{
		OnlyActive: onlyActive(),
		Limit:      500,
	})
	return list, err
}

func (s *catalogService) GetActiveCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	c, err := s.repo.Categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil || !c.IsActive {
		return nil, ErrCategoryNotFound
	}
	return c, nil
}

func (s *catalogService) ListActiveBrands(ctx context.Context) ([]models.Brand, error) {
	list, _, err := s.repo.Brands.List(ctx, repository.BrandListFilter{
		OnlyActive: onlyActive(),
		Limit:      500,
	})
	return list, err
}

func (s *catalogService) GetActiveBrand(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	b, err := s.repo.Brands.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil || !b.IsActive {
		return nil, ErrBrandNotFound
	}
	return b, nil
}

// --- Админка: товары ---

func (s *catalogService) CreateProduct(ctx context.Context, in CreateProductInput) (*models.Product, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if in.PriceCents < 0 {
		return nil, ErrInvalidPrice
	}

	slug := in.Slug
	if slug == "" {
		slug = slugify(in.Name)
	}
	existing, err := s.repo.Products.GetBySlug(ctx, slug, false)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlugTaken
	}

	p := &models.Product{
		CategoryID:  in.CategoryID,
		BrandID:     in.BrandID,
		Name:        in.Name,
		Slug:        slug,
		Images:      in.Images,
		Description: in.Description,
		PriceCents:  in.PriceCents,
		IsActive:    in.IsActive,
		IsFeatured:  in.IsFeatured,
		OnSale:      in.OnSale,
	}
	if err := s.repo.Products.Create(ctx, p); err != nil {
		return nil, err
	}
	return s.repo.Products.GetByID(ctx, p.ID)
}

func (s *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, in UpdateProductInput) (*models.Product, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	p, err := s.repo.Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	fields := map[string]any{}
	if in.CategoryID != nil {
		fields["category_id"] = *in.CategoryID
	}
	if in.BrandID != nil {
		fields["brand_id"] = *in.BrandID
	}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Slug != nil && *in.Slug != p.Slug {
		existing, err := s.repo.Products.GetBySlug(ctx, *in.Slug, false)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrSlugTaken
		}
		fields["slug"] = *in.Slug
	}
	if in.Images != nil {
		fields["images"] = *in.Images
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.PriceCents != nil {
		if *in.PriceCents < 0 {
			return nil, ErrInvalidPrice
		}
		fields["price_cents"] = *in.PriceCents
	}
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
	}
	if in.IsFeatured != nil {
		fields["is_featured"] = *in.IsFeatured
	}
	if in.OnSale != nil {
		fields["on_sale"] = *in.OnSale
	}

	if err := s.repo.Products.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.Products.GetByID(ctx, id)
}

func (s *catalogService) AdminGetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	p, err := s.repo.Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *catalogService) AdminListProducts(ctx context.Context, f AdminListFilter) ([]models.Product, int64, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, 0, err
	}
	return s.repo.Products.List(ctx, repository.ProductListFilter{
		Query:      f.Query,
		OnlyActive: f.OnlyActive,
		Limit:      f.Limit,
		Offset:     f.Offset,
	})
}

func (s *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}
	ok, err := s.repo.Products.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProductNotFound
	}
	return nil
}

func (s *catalogService) BulkDeleteProducts(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return 0, err
	}
	return s.repo.Products.BulkDelete(ctx, ids)
}

// --- Админка: категории ---

func (s *catalogService) CreateCategory(ctx context.Context, in CreateCategoryInput) (*models.Category, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	slug := in.Slug
	if slug == "" {
		slug = slugify(in.Name)
	}
	existing, err := s.repo.Categories.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlugTaken
	}

	c := &models.Category{Name: in.Name, Slug: slug, Image: in.Image, IsActive: in.IsActive}
	if err := s.repo.Categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, id uuid.UUID, in UpdateCategoryInput) (*models.Category, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	c, err := s.repo.Categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCategoryNotFound
	}

	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Slug != nil && *in.Slug != c.Slug {
		existing, err := s.repo.Categories.GetBySlug(ctx, *in.Slug)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrSlugTaken
		}
		fields["slug"] = *in.Slug
	}
	if in.Image != nil {
		fields["image"] = *in.Image
	}
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
	}

	if err := s.repo.Categories.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.Categories.GetByID(ctx, id)
}

func (s *catalogService) AdminGetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	c, err := s.repo.Categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCategoryNotFound
	}
	return c, nil
}

func (s *catalogService) AdminListCategories(ctx context.Context, f AdminListFilter) ([]models.Category, int64, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, 0, err
	}
	return s.repo.Categories.List(ctx, repository.CategoryListFilter{
		Query:      f.Query,
		OnlyActive: f.OnlyActive,
		Limit:      f.Limit,
		Offset:     f.Offset,
	})
}

func (s *catalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}
	ok, err := s.repo.Categories.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *catalogService) BulkDeleteCategories(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return 0, err
	}
	return s.repo.Categories.BulkDelete(ctx, ids)
}

// --- Админка: бренды ---

func (s *catalogService) CreateBrand(ctx context.Context, in CreateBrandInput) (*models.Brand, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	slug := in.Slug
	if slug == "" {
		slug = slugify(in.Name)
	}
	existing, err := s.repo.Brands.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlugTaken
	}

	b := &models.Brand{Name: in.Name, Slug: slug, Image: in.Image, IsActive: in.IsActive}
	if err := s.repo.Brands.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *catalogService) UpdateBrand(ctx context.Context, id uuid.UUID, in UpdateBrandInput) (*models.Brand, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	b, err := s.repo.Brands.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBrandNotFound
	}

	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Slug != nil && *in.Slug != b.Slug {
		existing, err := s.repo.Brands.GetBySlug(ctx, *in.Slug)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrSlugTaken
		}
		fields["slug"] = *in.Slug
	}
	if in.Image != nil {
		fields["image"] = *in.Image
	}
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
	}

	if err := s.repo.Brands.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.Brands.GetByID(ctx, id)
}

func (s *catalogService) AdminGetBrand(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	b, err := s.repo.Brands.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBrandNotFound
	}
	return b, nil
}

func (s *catalogService) AdminListBrands(ctx context.Context, f AdminListFilter) ([]models.Brand, int64, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, 0, err
	}
	return s.repo.Brands.List(ctx, repository.BrandListFilter{
		Query:      f.Query,
		OnlyActive: f.OnlyActive,
		Limit:      f.Limit,
		Offset:     f.Offset,
	})
}

func (s *catalogService) DeleteBrand(ctx context.Context, id uuid.UUID) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}
	ok, err := s.repo.Brands.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrBrandNotFound
	}
	return nil
}

func (s *catalogService) BulkDeleteBrands(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return 0, err
	}
	return s.repo.Brands.BulkDelete(ctx, ids)
}
