package catalog

import (
	"food-ordering/models"
)

// Defaults of the sorted menu items endpoint
const (
	DefaultSortBy = SortByRating
	DefaultOrder  = OrderDesc
)

// Products flattens restaurants and sorts the result when a sort key is given.
// No limit is applied.
func Products(restaurants []models.Restaurant, q Query) []models.Product {
	products := Flatten(restaurants)
	if q.SortBy != "" {
		SortProducts(products, q.SortBy, q.Order)
	}
	return products
}

// SortedMenuItems flattens, sorts and truncates, reporting the count from before truncation
func SortedMenuItems(restaurants []models.Restaurant, q Query) models.SortedMenuItems {
	if q.SortBy == "" {
		q.SortBy = DefaultSortBy
	}
	if q.Order == "" {
		q.Order = DefaultOrder
	}

	products := Flatten(restaurants)
	SortProducts(products, q.SortBy, q.Order)

	total := len(products)
	if q.HasLimit && q.Limit < total {
		products = products[:q.Limit]
	}

	items := make([]models.SortedMenuItem, 0, len(products))
	for _, p := range products {
		items = append(items, models.SortedMenuItem{
			ID:                p.ID,
			Name:              p.Name,
			Price:             p.Price,
			Description:       p.Description,
			Image:             p.Image,
			Rating:            p.Rating,
			RestaurantName:    p.Restaurant.Name,
			RestaurantCuisine: p.Restaurant.Cuisine,
			RestaurantID:      p.Restaurant.ID,
		})
	}

	return models.SortedMenuItems{
		Total:  total,
		SortBy: q.SortBy,
		Order:  q.Order,
		Items:  items,
	}
}

// Restaurants never returns nil so an empty result encodes as []
func Restaurants(restaurants []models.Restaurant) []models.Restaurant {
	if restaurants == nil {
		return []models.Restaurant{}
	}
	return restaurants
}
