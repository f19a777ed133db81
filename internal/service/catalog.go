package service

import (
	"context"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/acarder/cardshop/internal/events"
	"github.com/acarder/cardshop/internal/filestore"
	"github.com/acarder/cardshop/internal/logging"
	"github.com/acarder/cardshop/internal/models"
	"github.com/acarder/cardshop/internal/repo"
	"github.com/acarder/cardshop/internal/search"
	"github.com/acarder/cardshop/internal/transport"
)

type CatalogService struct {
	Store    repo.Store
	Files    filestore.FileStore
	ES       *elasticsearch.Client
	Producer events.Producer
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.Store.GetProduct(ctx, id)
}

func (s *CatalogService) GetProducts(ctx context.Context) ([]models.Product, error) {
	return s.Store.GetProducts(ctx)
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	if req.Category != models.CategoryGiftCard && req.Category != models.CategoryPrepaidCard {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, req.Category)
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		PDFURL:      req.PDFURL,
		Stock:       req.Stock,
	}
	if err := s.Store.SaveProduct(ctx, product); err != nil {
		return nil, err
	}

	s.indexProduct(ctx, product)
	s.publish(ctx, product.ID, map[string]any{
		"type":       "product_created",
		"product_id": product.ID,
		"name":       product.Name,
	})
	return product, nil
}

func (s *CatalogService) PatchProduct(ctx context.Context, id string, req transport.PatchProductRequest) (*models.Product, error) {
	product, err := s.Store.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
		}
		product.Price = *req.Price
	}
	if req.Category != nil {
		if *req.Category != models.CategoryGiftCard && *req.Category != models.CategoryPrepaidCard {
			return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, *req.Category)
		}
		product.Category = *req.Category
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.PDFURL != nil {
		product.PDFURL = *req.PDFURL
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if err := s.Store.SaveProduct(ctx, product); err != nil {
		return nil, err
	}

	s.indexProduct(ctx, product)
	return product, nil
}

// AttachImage uploads a product image and points the product at the stored
// URL. Uploads go through the configured FileStore; there is no local copy.
func (s *CatalogService) AttachImage(ctx context.Context, id, filename string, data []byte) (*models.Product, error) {
	if s.Files == nil {
		return nil, fmt.Errorf("%w: file storage not configured", ErrNotFound)
	}
	if filename == "" || len(data) == 0 {
		return nil, fmt.Errorf("%w: file required", ErrValidation)
	}

	product, err := s.Store.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := s.Files.Save(ctx, filename, data)
	if err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}
	product.ImageURL = url

	if err := s.Store.SaveProduct(ctx, product); err != nil {
		return nil, err
	}
	s.indexProduct(ctx, product)
	return product, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.Store.DeleteProduct(ctx, id); err != nil {
		return err
	}

	if s.ES != nil {
		if err := search.DeleteProduct(ctx, s.ES, search.ProductIndex, id); err != nil {
			logging.FromContext(ctx).Warn("search_deindex_failed", "product_id", id, "error", err)
		}
	}
	s.publish(ctx, id, map[string]any{
		"type":       "product_deleted",
		"product_id": id,
	})
	return nil
}

func (s *CatalogService) SearchProducts(ctx context.Context, query string, from, size int) (int64, []models.Product, error) {
	if s.ES == nil {
		return 0, nil, fmt.Errorf("%w: search backend not configured", ErrNotFound)
	}
	return search.Search(ctx, s.ES, search.ProductIndex, query, from, size)
}

func (s *CatalogService) indexProduct(ctx context.Context, product *models.Product) {
	if s.ES == nil {
		return
	}
	if err := search.IndexProduct(ctx, s.ES, search.ProductIndex, product); err != nil {
		logging.FromContext(ctx).Warn("search_index_failed", "product_id", product.ID, "error", err)
	}
}

func (s *CatalogService) publish(ctx context.Context, key string, event map[string]any) {
	if s.Producer == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, events.TopicProductEvents, key, event); err != nil {
		logging.FromContext(ctx).Warn("event_publish_failed", "topic", events.TopicProductEvents, "error", err)
	}
}
