package catalog

import (
	"food-ordering/models"
)

func restaurantComplete(r models.Restaurant) bool {
	return !r.ID.IsZero() && r.Name != "" && r.Cuisine != "" && r.Rating != nil
}

func menuItemComplete(item models.MenuItem) bool {
	return !item.ID.IsZero() &&
		item.Name != "" &&
		item.Price != nil &&
		item.Description != "" &&
		item.Image != ""
}

// Flatten emits one Product per complete menu item of every complete restaurant,
// in restaurant order and then menu order. An incomplete restaurant is skipped
// whole; an incomplete item is skipped on its own.
func Flatten(restaurants []models.Restaurant) []models.Product {
	products := []models.Product{}
	for _, r := range restaurants {
		if !restaurantComplete(r) {
			continue
		}
		snapshot := models.RestaurantSnapshot{
			ID:       r.ID,
			Name:     r.Name,
			Cuisine:  r.Cuisine,
			Rating:   *r.Rating,
			Address:  r.Address,
			ImageURL: r.ImageURL,
		}
		for _, item := range r.Menu {
			if !menuItemComplete(item) {
				continue
			}
			rating := models.DefaultMenuItemRating
			if item.Rating != nil && *item.Rating != 0 {
				rating = *item.Rating
			}
			products = append(products, models.Product{
				ID:          item.ID,
				Name:        item.Name,
				Price:       *item.Price,
				Description: item.Description,
				Image:       item.Image,
				Rating:      rating,
				Restaurant:  snapshot,
			})
		}
	}
	return products
}
