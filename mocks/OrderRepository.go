package mocks

import (
	"context"

	"food-ordering/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderRepository is a mock type for the OrderRepository type
type OrderRepository struct {
	mock.Mock
}

func (_m *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	ret := _m.Called(ctx, order)
	return ret.Error(0)
}

func (_m *OrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	ret := _m.Called(ctx, id)
	var r0 *models.Order
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	ret := _m.Called(ctx, userID)
	var r0 []models.Order
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.Order)
	}
	return r0, ret.Error(1)
}

// NewOrderRepository creates a new instance of OrderRepository and
// registers cleanup to assert the mocks expectations.
func NewOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
