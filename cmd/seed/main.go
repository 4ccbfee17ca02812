package main

import (
	"context"
	"fmt"
	"os"

	"shop-service/config"
	"shop-service/internal/database"
	"shop-service/internal/hashing"
	"shop-service/internal/logger"
	"shop-service/internal/models"
	"shop-service/internal/repository"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Наполняет пустую базу тестовыми данными: админ, категории, бренды, товары.
func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)
	db := database.ConnectDB(&cfg.DB.Config, log)
	defer database.CloseDB(db, log)

	repos := repository.New(db)
	ctx := context.Background()

	if err := seed(ctx, repos); err != nil {
		log.Fatal("Ошибка при заполнении базы", zap.Error(err))
	}
	log.Info("База заполнена тестовыми данными")
}

func seed(ctx context.Context, repos *repository.Repository) error {
	adminEmail := os.Getenv("SEED_ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@example.com"
	}
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin12345"
	}

	exists, err := repos.Users.ExistsByEmail(ctx, adminEmail)
	if err != nil {
		return err
	}
	if !exists {
		hash, err := hashing.NewBcrypt(0).Hash(adminPassword)
		if err != nil {
			return err
		}
		admin := &models.User{
			Name:         "Admin",
			Email:        adminEmail,
			PasswordHash: hash,
			IsAdmin:      true,
		}
		if err := repos.Users.Create(ctx, admin); err != nil {
			return err
		}
	}

	categories := []models.Category{
		{Name: "Skincare", Slug: "skincare", IsActive: true},
		{Name: "Makeup", Slug: "makeup", IsActive: true},
		{Name: "Fragrance", Slug: "fragrance", IsActive: true},
	}
	for i := range categories {
		existing, err := repos.Categories.GetBySlug(ctx, categories[i].Slug)
		if err != nil {
			return err
		}
		if existing != nil {
			categories[i] = *existing
			continue
		}
		if err := repos.Categories.Create(ctx, &categories[i]); err != nil {
			return err
		}
	}

	brands := []models.Brand{
		{Name: "Glow Lab", Slug: "glow-lab", IsActive: true},
		{Name: "Lumi", Slug: "lumi", IsActive: true},
	}
	for i := range brands {
		existing, err := repos.Brands.GetBySlug(ctx, brands[i].Slug)
		if err != nil {
			return err
		}
		if existing != nil {
			brands[i] = *existing
			continue
		}
		if err := repos.Brands.Create(ctx, &brands[i]); err != nil {
			return err
		}
	}

	products := []models.Product{
		{CategoryID: categories[0].ID, BrandID: brands[0].ID, Name: "Hydrating Serum", Slug: "hydrating-serum", PriceCents: 349900, IsActive: true, IsFeatured: true},
		{CategoryID: categories[0].ID, BrandID: brands[1].ID, Name: "Night Cream", Slug: "night-cream", PriceCents: 289900, IsActive: true, OnSale: true},
		{CategoryID: categories[1].ID, BrandID: brands[0].ID, Name: "Matte Lipstick", Slug: "matte-lipstick", PriceCents: 119900, IsActive: true},
		{CategoryID: categories[1].ID, BrandID: brands[1].ID, Name: "Velvet Foundation", Slug: "velvet-foundation", PriceCents: 199900, IsActive: true, IsFeatured: true},
		{CategoryID: categories[2].ID, BrandID: brands[1].ID, Name: "Citrus Eau de Parfum", Slug: "citrus-eau-de-parfum", PriceCents: 599900, IsActive: true},
	}
	for i := range products {
		existing, err := repos.Products.GetBySlug(ctx, products[i].Slug, false)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		products[i].Description = fmt.Sprintf("%s by seed data", products[i].Name)
		if err := repos.Products.Create(ctx, &products[i]); err != nil {
			return err
		}
	}

	return nil
}
