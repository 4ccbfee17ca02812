package service

import (
	"context"
	"fmt"

	"shop-service/internal/repository"

	"github.com/google/uuid"
)

// Price — снапшот каталога на момент выбора товара.
type Price struct {
	UnitAmountCents int64
	Name            string
	Image           string
}

type PricingProvider interface {
	GetPrice(ctx context.Context, productID uuid.UUID) (Price, error)
	GetPrices(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]Price, error)
}

// CatalogPricing resolves prices from the product catalog. Inactive and
// missing products both surface as ErrProductNotFound.
type CatalogPricing struct {
	products repository.ProductRepo
}

func NewCatalogPricing(products repository.ProductRepo) PricingProvider {
	return &CatalogPricing{products: products}
}

func (p *CatalogPricing) GetPrice(ctx context.Context, productID uuid.UUID) (Price, error) {
	prod, err := p.products.GetByID(ctx, productID)
	if err != nil {
		return Price{}, fmt.Errorf("failed to get product from catalog: %w", err)
	}
	if prod == nil || !prod.IsActive {
		return Price{}, ErrProductNotFound
	}

	return Price{
		UnitAmountCents: prod.PriceCents,
		Name:            prod.Name,
		Image:           firstImage(prod.Images),
	}, nil
}

func (p *CatalogPricing) GetPrices(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]Price, error) {
	if len(productIDs) == 0 {
		return map[uuid.UUID]Price{}, nil
	}

	list, err := p.products.BatchGetByIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to batch get products from catalog: %w", err)
	}

	prices := make(map[uuid.UUID]Price, len(list))
	for _, prod := range list {
		if !prod.IsActive {
			continue // неактивные товары пропускаем
		}
		prices[prod.ID] = Price{
			UnitAmountCents: prod.PriceCents,
			Name:            prod.Name,
			Image:           firstImage(prod.Images),
		}
	}
	return prices, nil
}

func firstImage(images []string) string {
	if len(images) == 0 {
		return ""
	}
	return images[0]
}
