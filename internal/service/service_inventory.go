package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/warehouse-keeper/internal/cache"
	"github.com/MKhiriev/warehouse-keeper/internal/logger"
	"github.com/MKhiriev/warehouse-keeper/internal/store"
	"github.com/MKhiriev/warehouse-keeper/models"
)

// inventoryService keeps the cache in step with the store. Mutations hit
// the store first; the cache is only touched after the store succeeded.
//
// mu is held from the store call through the matching cache update, so the
// cache applies mutations in the order the store committed them and a
// reload never overwrites a newer mutation with an older snapshot.
type inventoryService struct {
	mu sync.Mutex

	repository store.InventoryRepository
	cache      *cache.InventoryCache
	dispatcher AlertDispatcher

	logger *logger.Logger
}

// NewInventoryService constructs an InventoryService over repository,
// mirroring into itemCache and notifying dispatcher after each upsert.
func NewInventoryService(repository store.InventoryRepository, itemCache *cache.InventoryCache, dispatcher AlertDispatcher, logger *logger.Logger) InventoryService {
	return &inventoryService{
		repository: repository,
		cache:      itemCache,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// UpsertItem stores req as a full replacement of the item with the same
// SKU, mirrors it into the cache and hands the new quantity to the
// dispatcher. A delivery problem never fails the upsert.
func (s *inventoryService) UpsertItem(ctx context.Context, req models.UpsertItemRequest) error {
	log := logger.FromContext(ctx)
	item := req.Item()

	s.mu.Lock()
	if err := s.repository.UpsertItem(ctx, item); err != nil {
		s.mu.Unlock()
		log.Err(err).Str("func", "*inventoryService.UpsertItem").Str("sku", item.SKU).Msg("item upsert failed")
		return fmt.Errorf("item upsert failed: %w", err)
	}
	s.cache.ApplyUpsert(item)
	s.mu.Unlock()

	s.dispatcher.OnQuantityChanged(ctx, item.SKU, item.Description, item.Quantity)

	log.Debug().Str("func", "*inventoryService.UpsertItem").Str("sku", item.SKU).Int("quantity", item.Quantity).Msg("item upserted")
	return nil
}

// DeleteItem removes the item and reports whether the store had it.
func (s *inventoryService) DeleteItem(ctx context.Context, req models.DeleteItemRequest) (bool, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	deleted, err := s.repository.DeleteItem(ctx, req.SKU)
	if err != nil {
		log.Err(err).Str("func", "*inventoryService.DeleteItem").Str("sku", req.SKU).Msg("item delete failed")
		return false, fmt.Errorf("item delete failed: %w", err)
	}

	// the row is gone either way; drop a stale cache entry too
	s.cache.ApplyDelete(req.SKU)

	return deleted, nil
}

// ListItems returns the cached items in storage order.
func (s *inventoryService) ListItems(_ context.Context) []models.InventoryItem {
	return s.cache.Items()
}

// FilterItems returns the cached items whose SKU or description contains
// query, ignoring case.
func (s *inventoryService) FilterItems(_ context.Context, query string) []models.InventoryItem {
	return s.cache.Filter(query)
}

// Load implements InventoryService.
func (s *inventoryService) Load(ctx context.Context) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.repository.ListAllItems(ctx)
	if err != nil {
		log.Err(err).Str("func", "*inventoryService.Load").Msg("loading items failed")
		return fmt.Errorf("loading items failed: %w", err)
	}

	s.cache.Load(items)
	log.Debug().Str("func", "*inventoryService.Load").Int("count", len(items)).Msg("cache loaded")
	return nil
}

// Refresh implements InventoryService.
func (s *inventoryService) Refresh(ctx context.Context) error {
	return s.Load(ctx)
}
