package mocks

import (
	"context"

	"food-ordering/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RestaurantRepository is a mock type for the RestaurantRepository type
type RestaurantRepository struct {
	mock.Mock
}

func (_m *RestaurantRepository) Find(ctx context.Context, filter bson.M) ([]models.Restaurant, error) {
	ret := _m.Called(ctx, filter)
	var r0 []models.Restaurant
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *RestaurantRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Restaurant, error) {
	ret := _m.Called(ctx, id)
	var r0 *models.Restaurant
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *RestaurantRepository) ReplaceAll(ctx context.Context, restaurants []models.Restaurant) error {
	ret := _m.Called(ctx, restaurants)
	return ret.Error(0)
}

func (_m *RestaurantRepository) DeleteAll(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

// NewRestaurantRepository creates a new instance of RestaurantRepository and
// registers cleanup to assert the mocks expectations.
func NewRestaurantRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *RestaurantRepository {
	m := &RestaurantRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
