// Package repository provides the MongoDB-backed stores for restaurants, users and orders.
package repository

import (
	"context"
	"errors"

	"food-ordering/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names
const (
	RestaurantsCollection = "restaurants"
	UsersCollection       = "users"
	OrdersCollection      = "orders"
)

var (
	ErrNotFound       = errors.New("document not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// RestaurantRepository is the catalog store
type RestaurantRepository interface {
	Find(ctx context.Context, filter bson.M) ([]models.Restaurant, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Restaurant, error)
	ReplaceAll(ctx context.Context, restaurants []models.Restaurant) error
	DeleteAll(ctx context.Context) error
}

// UserRepository stores users with their embedded addresses and payment methods
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.User, error)
	AddAddress(ctx context.Context, userID primitive.ObjectID, addr models.Address) (*models.User, error)
	UpdateAddress(ctx context.Context, userID, addrID primitive.ObjectID, fields bson.M, makeDefault bool) (*models.User, error)
	DeleteAddress(ctx context.Context, userID, addrID primitive.ObjectID) (*models.User, error)
	AddPaymentMethod(ctx context.Context, userID primitive.ObjectID, method models.PaymentMethod) (*models.User, error)
	UpdatePaymentMethod(ctx context.Context, userID, methodID primitive.ObjectID, fields bson.M, makeDefault bool) (*models.User, error)
	DeletePaymentMethod(ctx context.Context, userID, methodID primitive.ObjectID) (*models.User, error)
	DeleteAll(ctx context.Context) error
}

// OrderRepository stores placed orders
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
}

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
