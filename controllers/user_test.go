package controllers_test

import (
	"net/http"
	"testing"

	"food-ordering/controllers"
	"food-ordering/models"
	"food-ordering/repository"
	"food-ordering/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	valid := map[string]string{
		"name": "Jane", "email": "jane@example.com", "password": "secret",
		"address": "12 Baker St", "city": "London",
	}

	tests := []struct {
		name            string
		body            interface{}
		setupMock       func(*fixture)
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "created",
			body: valid,
			setupMock: func(f *fixture) {
				f.users.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, repository.ErrNotFound).Once()
				f.users.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
					if len(u.Addresses) != 1 {
						return false
					}
					a := u.Addresses[0]
					return a.Type == models.AddressHome && a.IsDefault && a.State == "N/A" && a.ZipCode == "000000" &&
						bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret")) == nil
				})).Run(func(args mock.Arguments) {
					args.Get(1).(*models.User).ID = primitive.NewObjectID()
				}).Return(nil).Once()
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:            "missing city",
			body:            map[string]string{"name": "Jane", "email": "jane@example.com", "password": "secret", "address": "12 Baker St"},
			setupMock:       func(f *fixture) {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Please enter all fields",
		},
		{
			name: "existing email",
			body: valid,
			setupMock: func(f *fixture) {
				f.users.On("FindByEmail", mock.Anything, "jane@example.com").Return(&models.User{Email: "jane@example.com"}, nil).Once()
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "User already exists",
		},
		{
			name: "duplicate on insert",
			body: valid,
			setupMock: func(f *fixture) {
				f.users.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, repository.ErrNotFound).Once()
				f.users.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicateEmail).Once()
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "User already exists",
		},
		{
			name:            "invalid JSON",
			body:            `{invalid}`,
			setupMock:       func(f *fixture) {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid input",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			tc.setupMock(f)

			w := f.do(t, http.MethodPost, "/api/users/register", tc.body, primitive.NilObjectID)

			assert.Equal(t, tc.expectedCode, w.Code)
			if tc.expectedMessage != "" {
				assert.Equal(t, tc.expectedMessage, message(t, w))
				return
			}
			var got controllers.AuthResponse
			decode(t, w, &got)
			assert.Equal(t, "12 Baker St", got.Address)
			assert.Equal(t, "London", got.City)
			claims, err := utils.ParseJWT(got.Token)
			require.NoError(t, err)
			assert.Equal(t, got.ID.Hex(), claims.ID)
		})
	}
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{ID: primitive.NewObjectID(), Name: "Jane", Email: "jane@example.com", Password: string(hash)}

	tests := []struct {
		name         string
		password     string
		found        bool
		expectedCode int
	}{
		{"ok", "secret", true, http.StatusOK},
		{"wrong password", "nope", true, http.StatusBadRequest},
		{"unknown email", "secret", false, http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			if tc.found {
				f.users.On("FindByEmail", mock.Anything, user.Email).Return(user, nil).Once()
			} else {
				f.users.On("FindByEmail", mock.Anything, user.Email).Return(nil, repository.ErrNotFound).Once()
			}

			w := f.do(t, http.MethodPost, "/api/users/login",
				map[string]string{"email": user.Email, "password": tc.password}, primitive.NilObjectID)

			assert.Equal(t, tc.expectedCode, w.Code)
			if tc.expectedCode != http.StatusOK {
				assert.Equal(t, "Invalid credentials", message(t, w))
				return
			}
			var got controllers.AuthResponse
			decode(t, w, &got)
			assert.Equal(t, user.ID, got.ID)
			assert.NotEmpty(t, got.Token)
			assert.NotContains(t, w.Body.String(), "password")
		})
	}
}

func TestGetProfile(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("requires token", func(t *testing.T) {
		f := newFixture(t)

		w := f.do(t, http.MethodGet, "/api/users/profile", nil, primitive.NilObjectID)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Not authorized, no token", message(t, w))
	})

	t.Run("omits password", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("FindByID", mock.Anything, userID).
			Return(&models.User{ID: userID, Name: "Jane", Password: "hash"}, nil).Once()

		w := f.do(t, http.MethodGet, "/api/users/profile", nil, userID)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "hash")
	})

	t.Run("user gone", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("FindByID", mock.Anything, userID).Return(nil, repository.ErrNotFound).Once()

		w := f.do(t, http.MethodGet, "/api/users/profile", nil, userID)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "User not found", message(t, w))
	})
}

func TestUpdateProfile(t *testing.T) {
	userID := primitive.NewObjectID()
	f := newFixture(t)
	f.users.On("UpdateProfile", mock.Anything, userID, mock.MatchedBy(func(fields bson.M) bool {
		_, hasEmail := fields["email"]
		hash, _ := fields["password"].(string)
		return fields["name"] == "Janet" && !hasEmail &&
			bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpass")) == nil
	})).Return(&models.User{ID: userID, Name: "Janet", Email: "jane@example.com"}, nil).Once()

	w := f.do(t, http.MethodPut, "/api/users/profile", map[string]string{"name": "Janet", "password": "newpass"}, userID)

	require.Equal(t, http.StatusOK, w.Code)
	var got controllers.ProfileResponse
	decode(t, w, &got)
	assert.Equal(t, "Janet", got.Name)
	assert.NotNil(t, got.Addresses)
	assert.NotNil(t, got.PaymentMethods)
	assert.NotEmpty(t, got.Token)
}

func TestAddresses(t *testing.T) {
	userID := primitive.NewObjectID()
	addrID := primitive.NewObjectID()
	list := []models.Address{{ID: addrID, Type: models.AddressWork, Street: "1 Office Rd", City: "Pune", IsDefault: true}}

	tests := []struct {
		name            string
		method          string
		target          string
		body            interface{}
		setupMock       func(*fixture)
		expectedCode    int
		expectedMessage string
	}{
		{
			name:   "add default",
			method: http.MethodPost,
			target: "/api/users/addresses",
			body:   map[string]interface{}{"type": "work", "street": "1 Office Rd", "city": "Pune", "isDefault": true},
			setupMock: func(f *fixture) {
				f.users.On("AddAddress", mock.Anything, userID, mock.MatchedBy(func(a models.Address) bool {
					return a.Type == models.AddressWork && a.IsDefault && !a.ID.IsZero()
				})).Return(&models.User{ID: userID, Addresses: list}, nil).Once()
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:            "add bad type",
			method:          http.MethodPost,
			target:          "/api/users/addresses",
			body:            map[string]string{"type": "castle"},
			setupMock:       func(f *fixture) {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid address type",
		},
		{
			name:   "update makes default",
			method: http.MethodPut,
			target: "/api/users/addresses/" + addrID.Hex(),
			body:   map[string]interface{}{"city": "Mumbai", "isDefault": true},
			setupMock: func(f *fixture) {
				f.users.On("UpdateAddress", mock.Anything, userID, addrID,
					bson.M{"city": "Mumbai", "isDefault": true}, true).
					Return(&models.User{ID: userID, Addresses: list}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "update with empty type keeps stored type",
			method: http.MethodPut,
			target: "/api/users/addresses/" + addrID.Hex(),
			body:   map[string]string{"type": "", "street": "2 New Rd"},
			setupMock: func(f *fixture) {
				f.users.On("UpdateAddress", mock.Anything, userID, addrID, bson.M{"street": "2 New Rd"}, false).
					Return(&models.User{ID: userID, Addresses: list}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "update unknown",
			method: http.MethodPut,
			target: "/api/users/addresses/" + addrID.Hex(),
			body:   map[string]string{"city": "Mumbai"},
			setupMock: func(f *fixture) {
				f.users.On("UpdateAddress", mock.Anything, userID, addrID, bson.M{"city": "Mumbai"}, false).
					Return(nil, repository.ErrNotFound).Once()
			},
			expectedCode:    http.StatusNotFound,
			expectedMessage: "Address not found",
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/api/users/addresses/" + addrID.Hex(),
			setupMock: func(f *fixture) {
				f.users.On("DeleteAddress", mock.Anything, userID, addrID).
					Return(&models.User{ID: userID}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:            "delete malformed id",
			method:          http.MethodDelete,
			target:          "/api/users/addresses/xyz",
			setupMock:       func(f *fixture) {},
			expectedCode:    http.StatusNotFound,
			expectedMessage: "Address not found",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			tc.setupMock(f)

			w := f.do(t, tc.method, tc.target, tc.body, userID)

			assert.Equal(t, tc.expectedCode, w.Code)
			if tc.expectedMessage != "" {
				assert.Equal(t, tc.expectedMessage, message(t, w))
				return
			}
			var got []models.Address
			decode(t, w, &got)
			assert.NotNil(t, got)
		})
	}
}

func TestPaymentMethods(t *testing.T) {
	userID := primitive.NewObjectID()
	methodID := primitive.NewObjectID()
	list := []models.PaymentMethod{{ID: methodID, Type: models.PaymentUPI, UpiID: "jane@upi", IsDefault: true}}

	tests := []struct {
		name            string
		method          string
		target          string
		body            interface{}
		setupMock       func(*fixture)
		expectedCode    int
		expectedMessage string
	}{
		{
			name:   "add",
			method: http.MethodPost,
			target: "/api/users/payment-methods",
			body:   map[string]interface{}{"type": "upi", "upiId": "jane@upi", "isDefault": true},
			setupMock: func(f *fixture) {
				f.users.On("AddPaymentMethod", mock.Anything, userID, mock.MatchedBy(func(m models.PaymentMethod) bool {
					return m.Type == models.PaymentUPI && m.UpiID == "jane@upi" && m.IsDefault
				})).Return(&models.User{ID: userID, PaymentMethods: list}, nil).Once()
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:            "add without type",
			method:          http.MethodPost,
			target:          "/api/users/payment-methods",
			body:            map[string]string{"upiId": "jane@upi"},
			setupMock:       func(f *fixture) {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid payment method type",
		},
		{
			name:   "update unknown",
			method: http.MethodPut,
			target: "/api/users/payment-methods/" + methodID.Hex(),
			body:   map[string]bool{"isDefault": true},
			setupMock: func(f *fixture) {
				f.users.On("UpdatePaymentMethod", mock.Anything, userID, methodID, bson.M{"isDefault": true}, true).
					Return(nil, repository.ErrNotFound).Once()
			},
			expectedCode:    http.StatusNotFound,
			expectedMessage: "Payment method not found",
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/api/users/payment-methods/" + methodID.Hex(),
			setupMock: func(f *fixture) {
				f.users.On("DeletePaymentMethod", mock.Anything, userID, methodID).
					Return(&models.User{ID: userID}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			tc.setupMock(f)

			w := f.do(t, tc.method, tc.target, tc.body, userID)

			assert.Equal(t, tc.expectedCode, w.Code)
			if tc.expectedMessage != "" {
				assert.Equal(t, tc.expectedMessage, message(t, w))
				return
			}
			var got []models.PaymentMethod
			decode(t, w, &got)
			assert.NotNil(t, got)
		})
	}
}
