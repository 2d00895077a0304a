package commentinfo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/consensuslabs/pavilion-network/commentinfo/internal/cache"
)

const likesKeyPrefix = "commentinfo:likes:"

// cachedRepository serves like counts from the cache and keeps them current on writes
type cachedRepository struct {
	Repository
	cache  cache.Service
	ttl    time.Duration
	logger Logger
}

// NewCachedRepository wraps repo with a read-through like count cache
func NewCachedRepository(repo Repository, c cache.Service, ttl time.Duration, logger Logger) Repository {
	return &cachedRepository{
		Repository: repo,
		cache:      c,
		ttl:        ttl,
		logger:     logger,
	}
}

func likesKey(id uuid.UUID) string {
	return likesKeyPrefix + id.String()
}

// CountLikes tries the cache first and fills it on a miss
func (r *cachedRepository) CountLikes(ctx context.Context, id uuid.UUID) (int, error) {
	key := likesKey(id)

	val, err := r.cache.Get(ctx, key)
	switch {
	case err == nil:
		if likes, convErr := strconv.Atoi(val); convErr == nil {
			return likes, nil
		}
		r.logger.LogWarn("Discarding malformed cached like count", map[string]interface{}{
			"key":   key,
			"value": val,
		})
	case !errors.Is(err, cache.ErrCacheMiss):
		r.logger.LogWarn("Like count cache read failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}

	likes, err := r.Repository.CountLikes(ctx, id)
	if err != nil {
		return 0, err
	}
	r.store(ctx, id, likes)
	return likes, nil
}

// IncrementLikes drops the cached count. Concurrent increments may return
// out of order, so the next read refills it from storage.
func (r *cachedRepository) IncrementLikes(ctx context.Context, id uuid.UUID) (int, error) {
	likes, err := r.Repository.IncrementLikes(ctx, id)
	if err != nil {
		return 0, err
	}
	r.evict(ctx, id)
	return likes, nil
}

// Update drops the cached count since the likes may have been overwritten
func (r *cachedRepository) Update(ctx context.Context, info *CommentInfo) error {
	if err := r.Repository.Update(ctx, info); err != nil {
		return err
	}
	r.evict(ctx, info.ID)
	return nil
}

// Delete drops the cached count of the removed comment
func (r *cachedRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := r.Repository.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	r.evict(ctx, id)
	return deleted, nil
}

func (r *cachedRepository) store(ctx context.Context, id uuid.UUID, likes int) {
	if err := r.cache.Set(ctx, likesKey(id), strconv.Itoa(likes), r.ttl); err != nil {
		r.logger.LogWarn("Like count cache write failed", map[string]interface{}{
			"commentID": id.String(),
			"error":     err.Error(),
		})
	}
}

func (r *cachedRepository) evict(ctx context.Context, id uuid.UUID) {
	if err := r.cache.Delete(ctx, likesKey(id)); err != nil {
		r.logger.LogError(fmt.Errorf("evict %s: %w", likesKey(id), err), "Like count cache eviction failed")
	}
}
