package routes

import (
	"net/http"

	"food-ordering/controllers"
	"food-ordering/middleware"
	"food-ordering/utils"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application. Literal paths
// are registered before the {id} routes that would otherwise shadow them.
func RegisterRoutes(router *mux.Router, restaurantController *controllers.RestaurantController, userController *controllers.UserController, orderController *controllers.OrderController) {
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "API is running..."})
	}).Methods("GET")

	// Restaurant routes
	restaurants := router.PathPrefix("/api/restaurants").Subrouter()
	restaurants.HandleFunc("", restaurantController.GetRestaurants).Methods("GET")
	restaurants.HandleFunc("/search", restaurantController.SearchRestaurants).Methods("GET")
	restaurants.HandleFunc("/products", restaurantController.GetProducts).Methods("GET")
	restaurants.HandleFunc("/menu-items/sorted", restaurantController.GetSortedMenuItems).Methods("GET")
	restaurants.HandleFunc("/{id}", restaurantController.GetRestaurantByID).Methods("GET")

	// User routes
	users := router.PathPrefix("/api/users").Subrouter()
	users.HandleFunc("/register", userController.Register).Methods("POST")
	users.HandleFunc("/login", userController.Login).Methods("POST")
	users.Handle("/profile", protect(userController.GetProfile)).Methods("GET")
	users.Handle("/profile", protect(userController.UpdateProfile)).Methods("PUT")
	users.Handle("/addresses", protect(userController.AddAddress)).Methods("POST")
	users.Handle("/addresses/{id}", protect(userController.UpdateAddress)).Methods("PUT")
	users.Handle("/addresses/{id}", protect(userController.DeleteAddress)).Methods("DELETE")
	users.Handle("/payment-methods", protect(userController.AddPaymentMethod)).Methods("POST")
	users.Handle("/payment-methods/{id}", protect(userController.UpdatePaymentMethod)).Methods("PUT")
	users.Handle("/payment-methods/{id}", protect(userController.DeletePaymentMethod)).Methods("DELETE")

	// Order routes, all protected
	orders := router.PathPrefix("/api/orders").Subrouter()
	orders.Use(middleware.AuthMiddleware)
	orders.HandleFunc("", orderController.AddOrderItems).Methods("POST")
	orders.HandleFunc("/myorders", orderController.GetMyOrders).Methods("GET")
	orders.HandleFunc("/{id}/qrcode", orderController.GetOrderQRCode).Methods("GET")
	orders.HandleFunc("/{id}", orderController.GetOrderByID).Methods("GET")
}

func protect(h http.HandlerFunc) http.Handler {
	return middleware.AuthMiddleware(h)
}
