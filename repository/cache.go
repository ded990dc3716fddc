package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"food-ordering/models"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const restaurantKeyPrefix = "restaurant:"

// CachedRestaurantRepository keeps single restaurant documents in Redis.
// Listings always go to the store; only FindByID is cached.
type CachedRestaurantRepository struct {
	RestaurantRepository
	Client *redis.Client
	TTL    time.Duration
}

// NewCachedRestaurantRepository wraps next with a Redis read-through cache
func NewCachedRestaurantRepository(next RestaurantRepository, client *redis.Client, ttl time.Duration) *CachedRestaurantRepository {
	return &CachedRestaurantRepository{RestaurantRepository: next, Client: client, TTL: ttl}
}

// RestaurantKey is the cache key of one restaurant
func (c *CachedRestaurantRepository) RestaurantKey(id primitive.ObjectID) string {
	return restaurantKeyPrefix + id.Hex()
}

// FindByID serves from Redis when possible. Cache failures fall through to the store.
func (c *CachedRestaurantRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Restaurant, error) {
	key := c.RestaurantKey(id)

	payload, err := c.Client.Get(ctx, key).Bytes()
	if err == nil {
		var restaurant models.Restaurant
		if err := json.Unmarshal(payload, &restaurant); err == nil {
			return &restaurant, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("restaurant cache get %s: %v", key, err)
	}

	restaurant, err := c.RestaurantRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(restaurant); err == nil {
		if err := c.Client.Set(ctx, key, payload, c.TTL).Err(); err != nil {
			log.Printf("restaurant cache set %s: %v", key, err)
		}
	}
	return restaurant, nil
}

// Find is never cached
func (c *CachedRestaurantRepository) Find(ctx context.Context, filter bson.M) ([]models.Restaurant, error) {
	return c.RestaurantRepository.Find(ctx, filter)
}

// ReplaceAll replaces the catalog and drops every cached restaurant
func (c *CachedRestaurantRepository) ReplaceAll(ctx context.Context, restaurants []models.Restaurant) error {
	if err := c.RestaurantRepository.ReplaceAll(ctx, restaurants); err != nil {
		return err
	}
	return c.Invalidate(ctx)
}

// DeleteAll empties the catalog and the cache
func (c *CachedRestaurantRepository) DeleteAll(ctx context.Context) error {
	if err := c.RestaurantRepository.DeleteAll(ctx); err != nil {
		return err
	}
	return c.Invalidate(ctx)
}

// Invalidate removes every cached restaurant
func (c *CachedRestaurantRepository) Invalidate(ctx context.Context) error {
	iter := c.Client.Scan(ctx, 0, restaurantKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.Client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
