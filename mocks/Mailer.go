package mocks

import (
	"food-ordering/models"

	"github.com/stretchr/testify/mock"
)

// Mailer is a mock type for the Mailer type
type Mailer struct {
	mock.Mock
}

func (_m *Mailer) SendOrderConfirmationEmail(user models.User, order models.Order) error {
	ret := _m.Called(user, order)
	return ret.Error(0)
}

// NewMailer creates a new instance of Mailer and registers cleanup to
// assert the mocks expectations.
func NewMailer(t interface {
	mock.TestingT
	Cleanup(func())
}) *Mailer {
	m := &Mailer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
