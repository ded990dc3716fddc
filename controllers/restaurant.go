package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"food-ordering/catalog"
	"food-ordering/repository"
	"food-ordering/utils"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RestaurantController handles catalog requests
type RestaurantController struct {
	Repo repository.RestaurantRepository
}

// NewRestaurantController creates a new RestaurantController
func NewRestaurantController(repo repository.RestaurantRepository) *RestaurantController {
	return &RestaurantController{Repo: repo}
}

// GetRestaurants lists restaurants, optionally narrowed by cuisine and name
func (rc *RestaurantController) GetRestaurants(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := catalog.RestaurantFilter(query.Get("cuisine"), query.Get("name"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	restaurants, err := rc.Repo.Find(ctx, filter)
	if err != nil {
		utils.WriteServerError(w, "list restaurants", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, catalog.Restaurants(restaurants))
}

// SearchRestaurants matches q against restaurant and menu fields
func (rc *RestaurantController) SearchRestaurants(w http.ResponseWriter, r *http.Request) {
	filter, err := catalog.SearchFilter(r.URL.Query().Get("q"))
	if errors.Is(err, catalog.ErrSearchRequired) {
		utils.WriteError(w, http.StatusBadRequest, "Search query is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	restaurants, err := rc.Repo.Find(ctx, filter)
	if err != nil {
		utils.WriteServerError(w, "search restaurants", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, catalog.Restaurants(restaurants))
}

// GetProducts lists every menu item with its restaurant context
func (rc *RestaurantController) GetProducts(w http.ResponseWriter, r *http.Request) {
	q, err := catalog.ParseQuery(r.URL.Query())
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid limit")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	restaurants, err := rc.Repo.Find(ctx, catalog.ProductFilter(q))
	if err != nil {
		utils.WriteServerError(w, "fetch products", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, catalog.Products(restaurants, q))
}

// GetSortedMenuItems returns sorted menu items in a {total, sortBy, order, items} envelope
func (rc *RestaurantController) GetSortedMenuItems(w http.ResponseWriter, r *http.Request) {
	q, err := catalog.ParseQuery(r.URL.Query())
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid limit")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	restaurants, err := rc.Repo.Find(ctx, catalog.ProductFilter(q))
	if err != nil {
		utils.WriteServerError(w, "fetch sorted menu items", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, catalog.SortedMenuItems(restaurants, q))
}

// GetRestaurantByID retrieves a single restaurant by ID
func (rc *RestaurantController) GetRestaurantByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid restaurant ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	restaurant, err := rc.Repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		utils.WriteError(w, http.StatusNotFound, "Restaurant not found")
		return
	}
	if err != nil {
		utils.WriteServerError(w, "fetch restaurant", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, restaurant)
}
