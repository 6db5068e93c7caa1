// Package catalog is the admin-facing product CRUD. Every mutation is
// followed by a full re-list into a local snapshot; nothing is patched
// incrementally, so the snapshot cannot drift from the store.
package catalog

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/modasmart/storefront/internal/apperr"
	"github.com/modasmart/storefront/internal/models"
)

type ProductStore interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	InsertProduct(ctx context.Context, p models.Product) (string, error)
	UpdateProduct(ctx context.Context, id string, p models.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

// ProductInput carries the raw form fields. Price stays a string until
// validation because that is how it arrives from the screen.
type ProductInput struct {
	Name  string `validate:"required"`
	Price string `validate:"required"`
}

type Service struct {
	Store ProductStore

	validate *validator.Validate

	mu       sync.Mutex
	snapshot []models.Product
}

func NewService(store ProductStore) *Service {
	return &Service{
		Store:    store,
		validate: validator.New(),
	}
}

func (s *Service) parseInput(in ProductInput) (models.Product, error) {
	if err := s.validate.Struct(in); err != nil {
		return models.Product{}, fmt.Errorf("all fields are required: %w", apperr.ErrValidation)
	}
	price, err := strconv.ParseFloat(in.Price, 64)
	if err != nil {
		return models.Product{}, fmt.Errorf("price %q is not a number: %w", in.Price, apperr.ErrValidation)
	}
	if price < 0 {
		return models.Product{}, fmt.Errorf("price cannot be negative: %w", apperr.ErrValidation)
	}
	return models.Product{Name: in.Name, Price: price}, nil
}

// Products returns the current snapshot. Call Refresh first on a fresh
// service.
func (s *Service) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.snapshot))
	copy(out, s.snapshot)
	return out
}

// Refresh re-lists the whole collection. It is the only way the snapshot
// changes.
func (s *Service) Refresh(ctx context.Context) error {
	products, err := s.Store.ListProducts(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.snapshot = products
	s.mu.Unlock()
	return nil
}

func (s *Service) Create(ctx context.Context, in ProductInput) (string, error) {
	p, err := s.parseInput(in)
	if err != nil {
		return "", err
	}
	id, err := s.Store.InsertProduct(ctx, p)
	if err != nil {
		return "", err
	}
	return id, s.Refresh(ctx)
}

func (s *Service) Update(ctx context.Context, id string, in ProductInput) error {
	p, err := s.parseInput(in)
	if err != nil {
		return err
	}
	if err := s.Store.UpdateProduct(ctx, id, p); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// Delete removes a product without checking it exists first, so deleting
// the same id twice succeeds both times.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.Store.DeleteProduct(ctx, id); err != nil {
		return err
	}
	return s.Refresh(ctx)
}
