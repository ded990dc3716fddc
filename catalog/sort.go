package catalog

import (
	"sort"

	"food-ordering/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort keys
const (
	SortByRating     = "rating"
	SortByPrice      = "price"
	SortByName       = "name"
	SortByRestaurant = "restaurant"
)

// Sort directions. Anything but OrderDesc sorts ascending.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

func direction(order string) int {
	if order == OrderDesc {
		return -1
	}
	return 1
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// newNameCollator returns a fresh collator; collators must not be shared
// between goroutines.
func newNameCollator() *collate.Collator {
	return collate.New(language.English)
}

func productComparator(sortBy string) func(a, b models.Product) int {
	switch sortBy {
	case SortByRating:
		return func(a, b models.Product) int { return compareFloat(a.Rating, b.Rating) }
	case SortByPrice:
		return func(a, b models.Product) int { return compareFloat(a.Price, b.Price) }
	case SortByName:
		c := newNameCollator()
		return func(a, b models.Product) int { return c.CompareString(a.Name, b.Name) }
	case SortByRestaurant:
		c := newNameCollator()
		return func(a, b models.Product) int { return c.CompareString(a.Restaurant.Name, b.Restaurant.Name) }
	}
	return nil
}

func restaurantComparator(sortBy string) func(a, b models.Restaurant) int {
	switch sortBy {
	case SortByRating:
		return func(a, b models.Restaurant) int { return compareFloat(a.RatingValue(), b.RatingValue()) }
	case SortByPrice:
		return func(a, b models.Restaurant) int { return compareFloat(a.AveragePrice(), b.AveragePrice()) }
	case SortByName, SortByRestaurant:
		c := newNameCollator()
		return func(a, b models.Restaurant) int { return c.CompareString(a.Name, b.Name) }
	}
	return nil
}

// SortProducts orders products in place by sortBy and order. Equal keys keep
// their relative order. An unknown key leaves the slice untouched.
func SortProducts(products []models.Product, sortBy, order string) {
	cmp := productComparator(sortBy)
	if cmp == nil {
		return
	}
	dir := direction(order)
	sort.SliceStable(products, func(i, j int) bool {
		return cmp(products[i], products[j])*dir < 0
	})
}

// SortRestaurants orders restaurants in place. Price compares the mean menu price.
func SortRestaurants(restaurants []models.Restaurant, sortBy, order string) {
	cmp := restaurantComparator(sortBy)
	if cmp == nil {
		return
	}
	dir := direction(order)
	sort.SliceStable(restaurants, func(i, j int) bool {
		return cmp(restaurants[i], restaurants[j])*dir < 0
	})
}

// KnownSortKey reports whether sortBy selects a comparator
func KnownSortKey(sortBy string) bool {
	switch sortBy {
	case SortByRating, SortByPrice, SortByName, SortByRestaurant:
		return true
	}
	return false
}
