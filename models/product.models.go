package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RestaurantSnapshot is the copy of parent restaurant identity carried by a Product.
// It is frozen at read time and never re-joined against the live catalog.
type RestaurantSnapshot struct {
	ID       primitive.ObjectID `json:"_id"`
	Name     string             `json:"name"`
	Cuisine  string             `json:"cuisine"`
	Rating   float64            `json:"rating"`
	Address  string             `json:"address"`
	ImageURL string             `json:"imageUrl"`
}

// Product is a menu item flattened out of its restaurant. It is never persisted.
type Product struct {
	ID          primitive.ObjectID `json:"_id"`
	Name        string             `json:"name"`
	Price       float64            `json:"price"`
	Description string             `json:"description"`
	Image       string             `json:"image"`
	Rating      float64            `json:"rating"`
	Restaurant  RestaurantSnapshot `json:"restaurant"`
}

// SortedMenuItem is the shape of a Product on the sorted menu items endpoint
type SortedMenuItem struct {
	ID                primitive.ObjectID `json:"_id"`
	Name              string             `json:"name"`
	Price             float64            `json:"price"`
	Description       string             `json:"description"`
	Image             string             `json:"image"`
	Rating            float64            `json:"rating"`
	RestaurantName    string             `json:"restaurantName"`
	RestaurantCuisine string             `json:"restaurantCuisine"`
	RestaurantID      primitive.ObjectID `json:"restaurantId"`
}

// SortedMenuItems is the envelope returned by the sorted menu items endpoint.
// Total counts the items before the limit was applied.
type SortedMenuItems struct {
	Total  int              `json:"total"`
	SortBy string           `json:"sortBy"`
	Order  string           `json:"order"`
	Items  []SortedMenuItem `json:"items"`
}
