package service

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/printshop-order-service/internal/entities"
)

type CatalogRepo interface {
	GetProductByID(ctx context.Context, id int64) (entities.Product, error)
	GetProductBySKU(ctx context.Context, sku string) (entities.Product, error)
	ListProducts(ctx context.Context, page entities.Page) ([]entities.Product, error)
}

type catalogService struct {
	repo CatalogRepo
}

func NewCatalogService(repo CatalogRepo) *catalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) GetProduct(ctx context.Context, id int64) (entities.Product, error) {
	return s.repo.GetProductByID(ctx, id)
}

func (s *catalogService) GetProductBySKU(ctx context.Context, sku string) (entities.Product, error) {
	return s.repo.GetProductBySKU(ctx, sku)
}

func (s *catalogService) ListProducts(ctx context.Context, page entities.Page) ([]entities.Product, error) {
	products, err := s.repo.ListProducts(ctx, page.Normalize(defaultListLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		products = []entities.Product{}
	}
	return products, nil
}

func (s *catalogService) CheckStock(ctx context.Context, productID int64, qty int) (entities.StockCheck, error) {
	if qty <= 0 {
		return entities.StockCheck{}, entities.NewValidationError("quantity", "must be greater than 0")
	}

	product, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		return entities.StockCheck{}, err
	}

	return entities.StockCheck{
		ProductID:          product.ID,
		RequestedQuantity:  qty,
		AvailableStock:     product.Stock,
		HasSufficientStock: product.Stock >= qty,
	}, nil
}
