package mocks

import (
	"context"

	"food-ordering/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository is a mock type for the UserRepository type
type UserRepository struct {
	mock.Mock
}

func (_m *UserRepository) user(ret mock.Arguments) (*models.User, error) {
	var r0 *models.User
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.User)
	}
	return r0, ret.Error(1)
}

func (_m *UserRepository) Create(ctx context.Context, user *models.User) error {
	ret := _m.Called(ctx, user)
	return ret.Error(0)
}

func (_m *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return _m.user(_m.Called(ctx, email))
}

func (_m *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return _m.user(_m.Called(ctx, id))
}

func (_m *UserRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.User, error) {
	return _m.user(_m.Called(ctx, id, fields))
}

func (_m *UserRepository) AddAddress(ctx context.Context, userID primitive.ObjectID, addr models.Address) (*models.User, error) {
	return _m.user(_m.Called(ctx, userID, addr))
}

func (_m *UserRepository) UpdateAddress(ctx context.Context, userID, addrID primitive.ObjectID, fields bson.M, makeDefault bool) (*models.User, error) {
	return _m.user(_m.Called(ctx, userID, addrID, fields, makeDefault))
}

func (_m *UserRepository) DeleteAddress(ctx context.Context, userID, addrID primitive.ObjectID) (*models.User, error) {
	return _m.user(_m.Called(ctx, userID, addrID))
}

func (_m *UserRepository) AddPaymentMethod(ctx context.Context, userID primitive.ObjectID, method models.PaymentMethod) (*models.User, error) {
	return _m.user(_m.Called(ctx, userID, method))
}

func (_m *UserRepository) UpdatePaymentMethod(ctx context.Context, userID, methodID primitive.ObjectID, fields bson.M, makeDefault bool) (*models.User, error) {
	return _m.user(_m.Called(ctx, userID, methodID, fields, makeDefault))
}

func (_m *UserRepository) DeletePaymentMethod(ctx context.Context, userID, methodID primitive.ObjectID) (*models.User, error) {
	return _m.user(_m.Called(ctx, userID, methodID))
}

func (_m *UserRepository) DeleteAll(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

// NewUserRepository creates a new instance of UserRepository and
// registers cleanup to assert the mocks expectations.
func NewUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserRepository {
	m := &UserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
