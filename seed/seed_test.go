package seed

import (
	"context"
	"errors"
	"testing"

	"food-ordering/catalog"
	"food-ordering/mocks"
	"food-ordering/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRestaurants_AllItemsAreProducts(t *testing.T) {
	restaurants := Restaurants()
	require.Len(t, restaurants, 3)

	products := catalog.Flatten(restaurants)
	assert.Len(t, products, 9)
	for _, p := range products {
		assert.Equal(t, models.DefaultMenuItemRating, p.Rating)
		assert.NotEmpty(t, p.Image)
	}
}

func TestUsers_PasswordsHashed(t *testing.T) {
	users, err := Users()
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.True(t, users[0].IsAdmin)
	for _, u := range users {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(SamplePassword)))
	}
}

func TestImport(t *testing.T) {
	tests := []struct {
		name      string
		withUsers bool
		setupMock func(*mocks.RestaurantRepository, *mocks.UserRepository)
		wantErr   bool
	}{
		{
			name: "catalog only",
			setupMock: func(r *mocks.RestaurantRepository, u *mocks.UserRepository) {
				r.On("ReplaceAll", mock.Anything, mock.AnythingOfType("[]models.Restaurant")).Return(nil).Once()
			},
		},
		{
			name:      "with users",
			withUsers: true,
			setupMock: func(r *mocks.RestaurantRepository, u *mocks.UserRepository) {
				r.On("ReplaceAll", mock.Anything, mock.Anything).Return(nil).Once()
				u.On("DeleteAll", mock.Anything).Return(nil).Once()
				u.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil).Times(3)
			},
		},
		{
			name: "store error",
			setupMock: func(r *mocks.RestaurantRepository, u *mocks.UserRepository) {
				r.On("ReplaceAll", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			restaurants := mocks.NewRestaurantRepository(t)
			users := mocks.NewUserRepository(t)
			tc.setupMock(restaurants, users)

			err := (&Seeder{Restaurants: restaurants, Users: users}).Import(context.Background(), tc.withUsers)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDestroy(t *testing.T) {
	restaurants := mocks.NewRestaurantRepository(t)
	users := mocks.NewUserRepository(t)
	restaurants.On("DeleteAll", mock.Anything).Return(nil).Once()
	users.On("DeleteAll", mock.Anything).Return(nil).Once()

	require.NoError(t, (&Seeder{Restaurants: restaurants, Users: users}).Destroy(context.Background(), true))
}
