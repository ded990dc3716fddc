package repository

import (
	"context"
	"testing"
	"time"

	"food-ordering/mocks"
	"food-ordering/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setupCache(t *testing.T) (*CachedRestaurantRepository, *mocks.RestaurantRepository, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	inner := mocks.NewRestaurantRepository(t)
	return NewCachedRestaurantRepository(inner, client, time.Minute), inner, mr
}

func TestCachedRestaurantRepository_FindByID(t *testing.T) {
	cache, inner, mr := setupCache(t)
	ctx := context.Background()

	id := primitive.NewObjectID()
	stored := &models.Restaurant{ID: id, Name: "Pizza Palace", Cuisine: "Italian", Rating: models.Float(4.5)}
	inner.On("FindByID", ctx, id).Return(stored, nil).Once()

	first, err := cache.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Pizza Palace", first.Name)
	assert.True(t, mr.Exists(cache.RestaurantKey(id)))
	assert.Equal(t, time.Minute, mr.TTL(cache.RestaurantKey(id)))

	second, err := cache.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, second.ID)
	assert.Equal(t, 4.5, *second.Rating)
}

func TestCachedRestaurantRepository_NotFoundIsNotCached(t *testing.T) {
	cache, inner, mr := setupCache(t)
	ctx := context.Background()

	id := primitive.NewObjectID()
	inner.On("FindByID", ctx, id).Return(nil, ErrNotFound).Twice()

	_, err := cache.FindByID(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = cache.FindByID(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, mr.Exists(cache.RestaurantKey(id)))
}

func TestCachedRestaurantRepository_ReplaceAllInvalidates(t *testing.T) {
	cache, inner, mr := setupCache(t)
	ctx := context.Background()

	id := primitive.NewObjectID()
	require.NoError(t, mr.Set(cache.RestaurantKey(id), `{"name":"stale"}`))
	require.NoError(t, mr.Set("unrelated", "1"))

	inner.On("ReplaceAll", ctx, []models.Restaurant(nil)).Return(nil).Once()
	require.NoError(t, cache.ReplaceAll(ctx, nil))

	assert.False(t, mr.Exists(cache.RestaurantKey(id)))
	assert.True(t, mr.Exists("unrelated"))
}
