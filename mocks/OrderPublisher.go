package mocks

import (
	"context"

	"food-ordering/models"

	"github.com/stretchr/testify/mock"
)

// OrderPublisher is a mock type for the OrderPublisher type
type OrderPublisher struct {
	mock.Mock
}

func (_m *OrderPublisher) PublishOrderPlaced(ctx context.Context, event models.OrderPlacedEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

// NewOrderPublisher creates a new instance of OrderPublisher and registers
// cleanup to assert the mocks expectations.
func NewOrderPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderPublisher {
	m := &OrderPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
