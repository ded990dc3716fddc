package client

import (
	"context"
	"errors"
	"sync"

	"food-ordering/catalog"
	"food-ordering/models"
)

// Sort options offered by listing views
const (
	SortDefault    = "default"
	SortRatingHigh = "rating-high"
	SortRatingLow  = "rating-low"
	SortPriceHigh  = "price-high"
	SortPriceLow   = "price-low"
	SortNameAsc    = "name-asc"
	SortNameDesc   = "name-desc"
)

// FilterCuisine is the only filter type the server understands
const FilterCuisine = "cuisine"

var (
	ErrUnknownSort   = errors.New("unknown sort option")
	ErrUnknownFilter = errors.New("unknown filter type")
)

var sortOptions = map[string][2]string{
	SortRatingHigh: {catalog.SortByRating, catalog.OrderDesc},
	SortRatingLow:  {catalog.SortByRating, catalog.OrderAsc},
	SortPriceHigh:  {catalog.SortByPrice, catalog.OrderDesc},
	SortPriceLow:   {catalog.SortByPrice, catalog.OrderAsc},
	SortNameAsc:    {catalog.SortByName, catalog.OrderAsc},
	SortNameDesc:   {catalog.SortByName, catalog.OrderDesc},
}

// SortParams maps a sort option to the sortBy and order parameters
func SortParams(option string) (sortBy, order string, ok bool) {
	p, ok := sortOptions[option]
	return p[0], p[1], ok
}

// CatalogSource is the part of the API the browser reads from
type CatalogSource interface {
	Restaurants(ctx context.Context, cuisine, name string) ([]models.Restaurant, error)
	Search(ctx context.Context, q string) ([]models.Restaurant, error)
	Products(ctx context.Context, q ProductQuery) ([]models.Product, error)
	SortedMenuItems(ctx context.Context, q ProductQuery) (*models.SortedMenuItems, error)
}

// Filter is the active filter
type Filter struct {
	Value string
	Type  string
}

// View is a snapshot of the browser state
type View struct {
	Search       string
	Filter       Filter
	ShowProducts bool
	Sort         string

	Restaurants []models.Restaurant
	Items       []models.SortedMenuItem
	Total       int
	Error       string
}

// Browser holds the search, filter and sort state of a listing view and
// fetches what that state needs. Responses are applied as they arrive and
// superseded requests are not cancelled, so a slow earlier response can
// replace the result of a faster later one.
type Browser struct {
	source CatalogSource

	mu   sync.Mutex
	view View
	base []models.Restaurant // restaurant list in server order
}

// NewBrowser creates a browser in the initial state
func NewBrowser(source CatalogSource) *Browser {
	return &Browser{source: source, view: initialView()}
}

func initialView() View {
	return View{
		Filter: Filter{Value: catalog.AllCuisines, Type: FilterCuisine},
		Sort:   SortDefault,
	}
}

// View returns a copy of the current state
func (b *Browser) View() View {
	b.mu.Lock()
	defer b.mu.Unlock()

	v := b.view
	v.Restaurants = append([]models.Restaurant(nil), b.view.Restaurants...)
	v.Items = append([]models.SortedMenuItem(nil), b.view.Items...)
	return v
}

// Load fetches the unfiltered restaurant list
func (b *Browser) Load(ctx context.Context) error {
	return b.fetchRestaurants(ctx, "")
}

// ApplySearch searches restaurants. The filter goes back to "All" and the
// view back to restaurants.
func (b *Browser) ApplySearch(ctx context.Context, term string) error {
	b.mu.Lock()
	b.view.Search = term
	b.view.Filter = Filter{Value: catalog.AllCuisines, Type: FilterCuisine}
	b.view.ShowProducts = false
	b.mu.Unlock()

	return b.fetchRestaurants(ctx, term)
}

// ApplyFilter sets the active filter. Any value other than "All" switches to
// the product view.
func (b *Browser) ApplyFilter(ctx context.Context, value, filterType string) error {
	if filterType != FilterCuisine {
		return ErrUnknownFilter
	}

	b.mu.Lock()
	b.view.Filter = Filter{Value: value, Type: filterType}
	b.view.ShowProducts = value != catalog.AllCuisines
	products := b.view.ShowProducts
	search := b.view.Search
	b.mu.Unlock()

	if !products {
		return b.fetchRestaurants(ctx, search)
	}
	return b.fetchProducts(ctx)
}

// ApplySort sets the sort option. The product view asks the server for a
// sorted list. The restaurant view is sorted in place without a request.
func (b *Browser) ApplySort(ctx context.Context, option string) error {
	if _, _, ok := SortParams(option); !ok && option != SortDefault {
		return ErrUnknownSort
	}

	b.mu.Lock()
	b.view.Sort = option
	products := b.view.ShowProducts
	if !products {
		b.view.Restaurants = sortedRestaurants(b.base, option)
	}
	b.mu.Unlock()

	if products {
		return b.fetchProducts(ctx)
	}
	return nil
}

// ClearSearch resets every setting and fetches the unfiltered restaurant list
func (b *Browser) ClearSearch(ctx context.Context) error {
	b.mu.Lock()
	b.view = initialView()
	b.mu.Unlock()

	return b.fetchRestaurants(ctx, "")
}

func (b *Browser) fetchRestaurants(ctx context.Context, term string) error {
	var (
		restaurants []models.Restaurant
		err         error
	)
	if term != "" {
		restaurants, err = b.source.Search(ctx, term)
	} else {
		restaurants, err = b.source.Restaurants(ctx, "", "")
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.view.Error = errorMessage(err)
		return err
	}
	b.view.Error = ""
	b.base = restaurants
	b.view.Restaurants = sortedRestaurants(restaurants, b.view.Sort)
	b.view.Items = nil
	b.view.Total = 0
	return nil
}

// fetchProducts uses the sorted endpoint when a sort is chosen and the
// plain product listing otherwise, both narrowed by the current filter and search.
func (b *Browser) fetchProducts(ctx context.Context) error {
	b.mu.Lock()
	q := ProductQuery{Cuisine: b.view.Filter.Value, Search: b.view.Search}
	sortBy, order, sorted := SortParams(b.view.Sort)
	b.mu.Unlock()

	var (
		items []models.SortedMenuItem
		total int
		err   error
	)
	if sorted {
		q.SortBy, q.Order = sortBy, order
		var res *models.SortedMenuItems
		res, err = b.source.SortedMenuItems(ctx, q)
		if err == nil {
			items, total = res.Items, res.Total
		}
	} else {
		var products []models.Product
		products, err = b.source.Products(ctx, q)
		items = menuItems(products)
		total = len(items)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.view.Error = errorMessage(err)
		return err
	}
	b.view.Error = ""
	b.view.Items = items
	b.view.Total = total
	return nil
}

func sortedRestaurants(restaurants []models.Restaurant, option string) []models.Restaurant {
	out := append([]models.Restaurant(nil), restaurants...)
	if sortBy, order, ok := SortParams(option); ok {
		catalog.SortRestaurants(out, sortBy, order)
	}
	return out
}

func menuItems(products []models.Product) []models.SortedMenuItem {
	items := make([]models.SortedMenuItem, 0, len(products))
	for _, p := range products {
		items = append(items, models.SortedMenuItem{
			ID:                p.ID,
			Name:              p.Name,
			Price:             p.Price,
			Description:       p.Description,
			Image:             p.Image,
			Rating:            p.Rating,
			RestaurantID:      p.Restaurant.ID,
			RestaurantName:    p.Restaurant.Name,
			RestaurantCuisine: p.Restaurant.Cuisine,
		})
	}
	return items
}

func errorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return GenericErrorMessage
}
