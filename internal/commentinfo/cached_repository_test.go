package commentinfo

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/consensuslabs/pavilion-network/commentinfo/internal/cache"
	"github.com/consensuslabs/pavilion-network/commentinfo/testhelper"
)

// fakeCache is an in-memory cache.Service
type fakeCache struct {
	mu     sync.Mutex
	values map[string]string
	ttls   map[string]time.Duration
	getErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value.(string)
	c.ttls[key] = ttl
	return nil
}

func (c *fakeCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return "", c.getErr
	}
	v, ok := c.values[key]
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return v, nil
}

func (c *fakeCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.values, k)
	}
	return nil
}

func (c *fakeCache) Ping(ctx context.Context) error { return nil }

func (c *fakeCache) Close() error { return nil }

func TestCachedRepository_CountLikes(t *testing.T) {
	id := uuid.New()
	key := "commentinfo:likes:" + id.String()

	t.Run("miss fills the cache", func(t *testing.T) {
		inner := &MockRepository{}
		inner.On("CountLikes", mock.Anything, id).Return(5, nil).Once()
		c := newFakeCache()
		repo := NewCachedRepository(inner, c, time.Minute, testhelper.NewTestLogger(false))

		likes, err := repo.CountLikes(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, 5, likes)
		assert.Equal(t, "5", c.values[key])
		assert.Equal(t, time.Minute, c.ttls[key])

		// second read is served from the cache
		likes, err = repo.CountLikes(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, 5, likes)
		inner.AssertNumberOfCalls(t, "CountLikes", 1)
	})

	t.Run("cache failure falls back to storage", func(t *testing.T) {
		inner := &MockRepository{}
		inner.On("CountLikes", mock.Anything, id).Return(2, nil).Once()
		c := newFakeCache()
		c.getErr = errors.New("redis down")
		log := testhelper.NewTestLogger(false)
		repo := NewCachedRepository(inner, c, time.Minute, log)

		likes, err := repo.CountLikes(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, 2, likes)
		assert.True(t, log.HasWarn("Like count cache read failed"))
	})

	t.Run("malformed value is ignored", func(t *testing.T) {
		inner := &MockRepository{}
		inner.On("CountLikes", mock.Anything, id).Return(3, nil).Once()
		c := newFakeCache()
		c.values[key] = "three"
		repo := NewCachedRepository(inner, c, time.Minute, testhelper.NewTestLogger(false))

		likes, err := repo.CountLikes(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, 3, likes)
		assert.Equal(t, "3", c.values[key])
	})

	t.Run("storage error is returned and not cached", func(t *testing.T) {
		inner := &MockRepository{}
		inner.On("CountLikes", mock.Anything, id).Return(0, ErrCommentInfoNotFound).Once()
		c := newFakeCache()
		repo := NewCachedRepository(inner, c, time.Minute, testhelper.NewTestLogger(false))

		_, err := repo.CountLikes(context.Background(), id)
		assert.ErrorIs(t, err, ErrCommentInfoNotFound)
		assert.NotContains(t, c.values, key)
	})
}

func TestCachedRepository_Writes(t *testing.T) {
	id := uuid.New()
	key := "commentinfo:likes:" + id.String()

	t.Run("increment evicts", func(t *testing.T) {
		inner := &MockRepository{}
		inner.On("IncrementLikes", mock.Anything, id).Return(8, nil).Once()
		c := newFakeCache()
		c.values[key] = "7"
		repo := NewCachedRepository(inner, c, time.Minute, testhelper.NewTestLogger(false))

		likes, err := repo.IncrementLikes(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, 8, likes)
		assert.NotContains(t, c.values, key)
	})

	t.Run("concurrent increments never leave a lower count cached", func(t *testing.T) {
		inner := &MockRepository{}
		inner.On("IncrementLikes", mock.Anything, id).Return(5, nil).Once()
		inner.On("IncrementLikes", mock.Anything, id).Return(6, nil).Once()
		inner.On("CountLikes", mock.Anything, id).Return(6, nil).Once()
		c := newFakeCache()
		c.values[key] = "4"
		repo := NewCachedRepository(inner, c, time.Minute, testhelper.NewTestLogger(false))

		var wg sync.WaitGroup
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.IncrementLikes(context.Background(), id)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		assert.NotContains(t, c.values, key)
		likes, err := repo.CountLikes(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, 6, likes)
		inner.AssertExpectations(t)
	})

	t.Run("update evicts", func(t *testing.T) {
		info := &CommentInfo{ID: id, Likes: 1}
		inner := &MockRepository{}
		inner.On("Update", mock.Anything, info).Return(nil).Once()
		c := newFakeCache()
		c.values[key] = "7"
		repo := NewCachedRepository(inner, c, time.Minute, testhelper.NewTestLogger(false))

		require.NoError(t, repo.Update(context.Background(), info))
		assert.NotContains(t, c.values, key)
	})

	t.Run("delete evicts", func(t *testing.T) {
		inner := &MockRepository{}
		inner.On("Delete", mock.Anything, id).Return(true, nil).Once()
		c := newFakeCache()
		c.values[key] = "7"
		repo := NewCachedRepository(inner, c, time.Minute, testhelper.NewTestLogger(false))

		deleted, err := repo.Delete(context.Background(), id)
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.NotContains(t, c.values, key)
	})

	t.Run("other calls pass through", func(t *testing.T) {
		inner := &MockRepository{}
		userID := uuid.New()
		inner.On("AddUserActivity", mock.Anything, ActivityReport, userID, id).Return(true, nil).Once()
		inner.On("IncrementReports", mock.Anything, id).Return(1, nil).Once()
		c := newFakeCache()
		repo := NewCachedRepository(inner, c, time.Minute, testhelper.NewTestLogger(false))

		ok, err := repo.AddUserActivity(context.Background(), ActivityReport, userID, id)
		require.NoError(t, err)
		assert.True(t, ok)
		reports, err := repo.IncrementReports(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, 1, reports)
		assert.Empty(t, c.values)
		inner.AssertExpectations(t)
	})
}
