package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/sweetshop/internal/api"
	"github.com/dmitrijs2005/sweetshop/internal/common"
	"github.com/dmitrijs2005/sweetshop/internal/logging"
	"github.com/dmitrijs2005/sweetshop/internal/models"
	"github.com/dmitrijs2005/sweetshop/internal/notify"
)

// Service applies the mutation strategies around the API client.
//
// Purchase patches the cached quantity down by one, but only after the
// request has succeeded, so no rollback path exists. The admin mutations
// (create, update, delete, restock) re-fetch the full list instead: they
// are lower-frequency and higher-stakes, so consistency with the server
// wins over perceived latency there.
type Service struct {
	client   api.Client
	cache    *Cache
	notifier *notify.Notifier
	validate *validator.Validate
	log      logging.Logger
}

func NewService(client api.Client, cache *Cache, notifier *notify.Notifier, log logging.Logger) *Service {
	return &Service{
		client:   client,
		cache:    cache,
		notifier: notifier,
		validate: validator.New(),
		log:      log,
	}
}

// Items exposes the cached list for rendering.
func (s *Service) Items() []models.Sweet {
	return s.cache.Items()
}

// Item returns one cached item by id.
func (s *Service) Item(id int64) (models.Sweet, bool) {
	return s.cache.Get(id)
}

// Load fetches the (optionally filtered) listing and replaces the cache.
func (s *Service) Load(ctx context.Context, filter *api.Filter) error {
	items, err := s.client.List(ctx, filter)
	if err != nil {
		s.notifier.Error(failureMessage(err, "Failed to load sweets"))
		return err
	}
	s.cache.Replace(items)
	return nil
}

// Purchase buys one unit of the given item. The local decrement is applied
// only once the backend confirmed the purchase; on failure the cache is
// left exactly as it was.
func (s *Service) Purchase(ctx context.Context, id int64) error {
	if err := s.client.Purchase(ctx, id); err != nil {
		s.log.Warn(ctx, "purchase failed", "id", id, "error", err)
		s.notifier.Error(failureMessage(err, "Purchase failed"))
		return err
	}

	s.cache.DecrementQuantity(id)
	s.notifier.Success("Purchase successful! Enjoy your treat.")
	return nil
}

// Create adds a new item to the catalog. The payload is checked client-side
// before any request goes out.
func (s *Service) Create(ctx context.Context, item models.NewSweet) error {
	if err := s.validate.Struct(item); err != nil {
		s.notifier.Error("Name, category, and non-negative price and quantity are required")
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	if _, err := s.client.Create(ctx, item); err != nil {
		s.log.Warn(ctx, "create failed", "name", item.Name, "error", err)
		s.notifier.Error(failureMessage(err, "Failed to create sweet"))
		return err
	}

	s.refresh(ctx)
	s.notifier.Success(fmt.Sprintf("Added %s to the catalog!", item.Name))
	return nil
}

// Update changes the provided fields of an existing item.
func (s *Service) Update(ctx context.Context, id int64, patch models.SweetPatch) error {
	if err := s.validate.Struct(patch); err != nil {
		s.notifier.Error("Price and quantity must be non-negative")
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	if _, err := s.client.Update(ctx, id, patch); err != nil {
		s.log.Warn(ctx, "update failed", "id", id, "error", err)
		s.notifier.Error(failureMessage(err, "Failed to update sweet"))
		return err
	}

	s.refresh(ctx)
	s.notifier.Success("Sweet updated!")
	return nil
}

// Delete removes an item from the catalog.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.client.Delete(ctx, id); err != nil {
		s.log.Warn(ctx, "delete failed", "id", id, "error", err)
		s.notifier.Error(failureMessage(err, "Failed to delete sweet"))
		return err
	}

	s.refresh(ctx)
	s.notifier.Success("Sweet deleted!")
	return nil
}

// Restock adds stock to an item. The amount is validated client-side: a
// non-positive amount is rejected before any request is sent.
func (s *Service) Restock(ctx context.Context, id int64, amount int) error {
	if err := s.validate.Struct(models.RestockRequest{Amount: amount}); err != nil {
		s.notifier.Error("Restock amount must be a positive integer")
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	if _, err := s.client.Restock(ctx, id, amount); err != nil {
		s.log.Warn(ctx, "restock failed", "id", id, "error", err)
		s.notifier.Error(failureMessage(err, "Failed to restock sweet"))
		return err
	}

	s.refresh(ctx)
	s.notifier.Success(fmt.Sprintf("Successfully restocked %d units!", amount))
	return nil
}

// refresh re-fetches the full, unfiltered list after a successful admin
// mutation. The mutation itself already succeeded, so a failed refresh only
// leaves the table stale until the next load.
func (s *Service) refresh(ctx context.Context) {
	items, err := s.client.List(ctx, nil)
	if err != nil {
		s.log.Warn(ctx, "list refresh failed", "error", err)
		return
	}
	s.cache.Replace(items)
}

// failureMessage prefers the backend-provided detail text and falls back to
// the per-action generic message.
func failureMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
