package services

import (
	"context"
	"errors"
	"time"

	"github.com/alzcare/screening-service/internal/cache"
	"github.com/alzcare/screening-service/internal/catalog"
	"github.com/alzcare/screening-service/internal/models"
	"github.com/alzcare/screening-service/internal/repositories"
	"github.com/alzcare/screening-service/internal/utils"
)

const customItemsTTL = 5 * time.Minute

// cachedCustomItems fronts the custom item store with a short-TTL cache so
// back-to-back session starts for the same subject do not re-hit the
// document store. Caregiver edits show up after the TTL lapses.
type cachedCustomItems struct {
	repo   repositories.CustomItemRepository
	cache  cache.CacheService
	logger utils.Logger
}

func NewCachedCustomItemStore(repo repositories.CustomItemRepository, cacheSvc cache.CacheService, logger utils.Logger) catalog.CustomItemStore {
	return &cachedCustomItems{
		repo:   repo,
		cache:  cacheSvc,
		logger: logger,
	}
}

func (c *cachedCustomItems) FindBySubject(ctx context.Context, subjectID string) ([]models.ItemDefinition, error) {
	key := "custom_items:" + subjectID

	var cached []models.ItemDefinition
	err := c.cache.Get(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		c.logger.Warn("custom item cache read failed", "subject_id", subjectID, "error", err)
	}

	defs, err := c.repo.FindBySubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, key, defs, customItemsTTL); err != nil {
		c.logger.Warn("custom item cache write failed", "subject_id", subjectID, "error", err)
	}
	return defs, nil
}
