package repository

import (
	"context"
	"fmt"
	"time"

	"food-ordering/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRestaurantRepository reads the restaurants collection
type MongoRestaurantRepository struct {
	Collection *mongo.Collection
}

// NewRestaurantRepository creates a new MongoRestaurantRepository
func NewRestaurantRepository(db *mongo.Database) *MongoRestaurantRepository {
	return &MongoRestaurantRepository{
		Collection: db.Collection(RestaurantsCollection),
	}
}

// Find returns the restaurants matching filter in natural order
func (r *MongoRestaurantRepository) Find(ctx context.Context, filter bson.M) ([]models.Restaurant, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find restaurants: %w", err)
	}
	defer cursor.Close(ctx)

	restaurants := []models.Restaurant{}
	if err := cursor.All(ctx, &restaurants); err != nil {
		return nil, fmt.Errorf("decode restaurants: %w", err)
	}
	return restaurants, nil
}

// FindByID fetches one full restaurant document
func (r *MongoRestaurantRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&restaurant)
	if err != nil {
		return nil, notFound(err)
	}
	return &restaurant, nil
}

// ReplaceAll drops every restaurant and inserts the given ones, assigning ids
// to restaurants and menu items that have none.
func (r *MongoRestaurantRepository) ReplaceAll(ctx context.Context, restaurants []models.Restaurant) error {
	if err := r.DeleteAll(ctx); err != nil {
		return err
	}
	if len(restaurants) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(restaurants))
	for i := range restaurants {
		rest := &restaurants[i]
		if rest.ID.IsZero() {
			rest.ID = primitive.NewObjectID()
		}
		for j := range rest.Menu {
			if rest.Menu[j].ID.IsZero() {
				rest.Menu[j].ID = primitive.NewObjectID()
			}
		}
		rest.CreatedAt = now
		rest.UpdatedAt = now
		docs = append(docs, rest)
	}

	if _, err := r.Collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert restaurants: %w", err)
	}
	return nil
}

// DeleteAll removes every restaurant
func (r *MongoRestaurantRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.Collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("delete restaurants: %w", err)
	}
	return nil
}
