package controllers_test

import (
	"errors"
	"net/http"
	"testing"

	"food-ordering/models"
	"food-ordering/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func hasKey(key string) interface{} {
	return mock.MatchedBy(func(filter bson.M) bool {
		_, ok := filter[key]
		return ok
	})
}

func TestGetRestaurants(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		setupMock    func(*fixture)
		expectedCode int
		expectedLen  int
	}{
		{
			name:   "all",
			target: "/api/restaurants",
			setupMock: func(f *fixture) {
				f.restaurants.On("Find", mock.Anything, bson.M{}).
					Return([]models.Restaurant{restaurant("A", "Italian", 4), restaurant("B", "Mexican", 3)}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:   "cuisine filter",
			target: "/api/restaurants?cuisine=Italian",
			setupMock: func(f *fixture) {
				f.restaurants.On("Find", mock.Anything, hasKey("cuisine")).
					Return([]models.Restaurant{restaurant("A", "Italian", 4)}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:   "all sentinel ignored",
			target: "/api/restaurants?cuisine=All",
			setupMock: func(f *fixture) {
				f.restaurants.On("Find", mock.Anything, bson.M{}).Return(nil, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			tc.setupMock(f)

			w := f.do(t, http.MethodGet, tc.target, nil, primitive.NilObjectID)

			assert.Equal(t, tc.expectedCode, w.Code)
			var got []models.Restaurant
			decode(t, w, &got)
			assert.NotNil(t, got)
			assert.Len(t, got, tc.expectedLen)
		})
	}
}

func TestGetRestaurants_StoreError(t *testing.T) {
	f := newFixture(t)
	f.restaurants.On("Find", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

	w := f.do(t, http.MethodGet, "/api/restaurants", nil, primitive.NilObjectID)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Server Error", message(t, w))
}

func TestSearchRestaurants(t *testing.T) {
	t.Run("missing query", func(t *testing.T) {
		f := newFixture(t)

		w := f.do(t, http.MethodGet, "/api/restaurants/search", nil, primitive.NilObjectID)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Search query is required", message(t, w))
	})

	t.Run("matches", func(t *testing.T) {
		f := newFixture(t)
		f.restaurants.On("Find", mock.Anything, hasKey("$or")).
			Return([]models.Restaurant{restaurant("Pizza Palace", "Italian", 4.5)}, nil).Once()

		w := f.do(t, http.MethodGet, "/api/restaurants/search?q=pizza", nil, primitive.NilObjectID)

		require.Equal(t, http.StatusOK, w.Code)
		var got []models.Restaurant
		decode(t, w, &got)
		require.Len(t, got, 1)
		assert.Equal(t, "Pizza Palace", got[0].Name)
	})
}

func TestGetProducts(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		expectedPrices []float64
	}{
		{"store order", "/api/restaurants/products", []float64{12, 8, 10}},
		{"price asc", "/api/restaurants/products?sortBy=price&order=asc", []float64{8, 10, 12}},
		{"price desc ignores limit", "/api/restaurants/products?sortBy=price&order=desc&limit=2", []float64{12, 10, 8}},
		{"unknown key keeps order", "/api/restaurants/products?sortBy=calories", []float64{12, 8, 10}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.restaurants.On("Find", mock.Anything, hasKey("menu.0")).
				Return([]models.Restaurant{restaurant("A", "Italian", 4, 12, 8), restaurant("B", "Thai", 3, 10)}, nil).Once()

			w := f.do(t, http.MethodGet, tc.target, nil, primitive.NilObjectID)

			require.Equal(t, http.StatusOK, w.Code)
			var got []models.Product
			decode(t, w, &got)
			prices := make([]float64, 0, len(got))
			for _, p := range got {
				prices = append(prices, p.Price)
			}
			assert.Equal(t, tc.expectedPrices, prices)
		})
	}
}

func TestGetProducts_InvalidLimit(t *testing.T) {
	for _, limit := range []string{"abc", "-1", "2.5"} {
		t.Run(limit, func(t *testing.T) {
			f := newFixture(t)

			w := f.do(t, http.MethodGet, "/api/restaurants/products?limit="+limit, nil, primitive.NilObjectID)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Invalid limit", message(t, w))
		})
	}
}

func TestGetSortedMenuItems(t *testing.T) {
	f := newFixture(t)
	a := restaurant("A", "Italian", 4, 12, 8)
	a.Menu[0].Rating = models.Float(4.9)
	a.Menu[1].Rating = models.Float(3.1)
	b := restaurant("B", "Thai", 3, 10)
	f.restaurants.On("Find", mock.Anything, mock.Anything).Return([]models.Restaurant{a, b}, nil).Once()

	w := f.do(t, http.MethodGet, "/api/restaurants/menu-items/sorted?limit=2", nil, primitive.NilObjectID)

	require.Equal(t, http.StatusOK, w.Code)
	var got models.SortedMenuItems
	decode(t, w, &got)
	assert.Equal(t, 3, got.Total)
	assert.Equal(t, "rating", got.SortBy)
	assert.Equal(t, "desc", got.Order)
	require.Len(t, got.Items, 2)
	assert.Equal(t, 4.9, got.Items[0].Rating)
	assert.Equal(t, 4.0, got.Items[1].Rating)
	assert.Equal(t, "A", got.Items[0].RestaurantName)
	assert.Equal(t, a.ID, got.Items[0].RestaurantID)
}

func TestGetRestaurantByID(t *testing.T) {
	found := restaurant("A", "Italian", 4, 10)

	tests := []struct {
		name            string
		id              string
		setupMock       func(*fixture)
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "found",
			id:   found.ID.Hex(),
			setupMock: func(f *fixture) {
				f.restaurants.On("FindByID", mock.Anything, found.ID).Return(&found, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:            "malformed id",
			id:              "not-an-id",
			setupMock:       func(f *fixture) {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid restaurant ID",
		},
		{
			name: "not found",
			id:   found.ID.Hex(),
			setupMock: func(f *fixture) {
				f.restaurants.On("FindByID", mock.Anything, found.ID).Return(nil, repository.ErrNotFound).Once()
			},
			expectedCode:    http.StatusNotFound,
			expectedMessage: "Restaurant not found",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			tc.setupMock(f)

			w := f.do(t, http.MethodGet, "/api/restaurants/"+tc.id, nil, primitive.NilObjectID)

			assert.Equal(t, tc.expectedCode, w.Code)
			if tc.expectedMessage != "" {
				assert.Equal(t, tc.expectedMessage, message(t, w))
			}
		})
	}
}
