package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultMenuItemRating is used when a menu item carries no rating.
const DefaultMenuItemRating = 4.0

// MenuItem is embedded in a Restaurant. Its id is only unique within the parent.
// Price and Rating are pointers so that an absent value can be told apart from zero.
type MenuItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Price       *float64           `bson:"price,omitempty" json:"price,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Image       string             `bson:"image" json:"image"`
	Rating      *float64           `bson:"rating,omitempty" json:"rating,omitempty"`
}

// Restaurant represents a catalog entry with its embedded menu
type Restaurant struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Cuisine     string             `bson:"cuisine" json:"cuisine"`
	Address     string             `bson:"address" json:"address"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL    string             `bson:"imageUrl" json:"imageUrl"`
	Rating      *float64           `bson:"rating,omitempty" json:"rating,omitempty"`
	Menu        []MenuItem         `bson:"menu" json:"menu"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// AveragePrice is the mean of the menu prices that are set, or 0 for an empty menu.
func (r Restaurant) AveragePrice() float64 {
	var sum float64
	var n int
	for _, item := range r.Menu {
		if item.Price == nil {
			continue
		}
		sum += *item.Price
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// RatingValue returns the restaurant rating, 0 when unset.
func (r Restaurant) RatingValue() float64 {
	if r.Rating == nil {
		return 0
	}
	return *r.Rating
}

// Float is a helper for building optional numeric fields.
func Float(v float64) *float64 {
	return &v
}
