package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"food-ordering/controllers"
	"food-ordering/mocks"
	"food-ordering/models"
	"food-ordering/routes"
	"food-ordering/utils"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fixture struct {
	restaurants *mocks.RestaurantRepository
	users       *mocks.UserRepository
	orders      *mocks.OrderRepository
	mailer      *mocks.Mailer
	publisher   *mocks.OrderPublisher
	router      *mux.Router
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	utils.JwtKey = []byte("test-secret")

	f := &fixture{
		restaurants: mocks.NewRestaurantRepository(t),
		users:       mocks.NewUserRepository(t),
		orders:      mocks.NewOrderRepository(t),
		mailer:      mocks.NewMailer(t),
		publisher:   mocks.NewOrderPublisher(t),
		router:      mux.NewRouter(),
	}
	routes.RegisterRoutes(f.router,
		controllers.NewRestaurantController(f.restaurants),
		controllers.NewUserController(f.users),
		controllers.NewOrderController(f.orders, f.users, f.mailer, f.publisher, "http://localhost:5173"),
	)
	return f
}

// do sends the request through the router. A non-zero userID authenticates it.
func (f *fixture) do(t *testing.T, method, target string, body interface{}, userID primitive.ObjectID) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if !userID.IsZero() {
		token, err := utils.GenerateJWT(userID.Hex())
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	decode(t, w, &body)
	return body.Message
}

func restaurant(name, cuisine string, rating float64, prices ...float64) models.Restaurant {
	r := models.Restaurant{
		ID:      primitive.NewObjectID(),
		Name:    name,
		Cuisine: cuisine,
		Address: "1 Main St",
		Rating:  models.Float(rating),
	}
	for i, p := range prices {
		r.Menu = append(r.Menu, models.MenuItem{
			ID:          primitive.NewObjectID(),
			Name:        name + " dish " + string(rune('A'+i)),
			Price:       models.Float(p),
			Description: "tasty",
			Image:       "/images/dish.jpg",
		})
	}
	return r
}
