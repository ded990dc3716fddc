// Package catalog turns catalog requests into store filters and shapes
// restaurant documents into product listings.
package catalog

import (
	"errors"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AllCuisines is the filter value meaning "no cuisine constraint"
const AllCuisines = "All"

var (
	ErrSearchRequired = errors.New("search query is required")
	ErrInvalidLimit   = errors.New("invalid limit")
)

// searchFields are matched by free-text search, any one of them is enough
var searchFields = []string{
	"name",
	"cuisine",
	"address",
	"description",
	"menu.name",
	"menu.description",
}

// Query holds the parameters shared by the product listing endpoints
type Query struct {
	Cuisine string
	Search  string
	SortBy  string
	Order   string
	// Limit is only applied when HasLimit is set
	Limit    int
	HasLimit bool
}

// ParseQuery reads cuisine, search, sortBy, order and limit from the request query
func ParseQuery(values url.Values) (Query, error) {
	q := Query{
		Cuisine: strings.TrimSpace(values.Get("cuisine")),
		Search:  strings.TrimSpace(values.Get("search")),
		SortBy:  values.Get("sortBy"),
		Order:   values.Get("order"),
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return Query{}, ErrInvalidLimit
		}
		q.Limit = limit
		q.HasLimit = true
	}
	return q, nil
}

// contains matches values holding text anywhere, ignoring case.
// The text is escaped so it is never interpreted as a pattern.
func contains(text string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(text), Options: "i"}
}

func anyFieldContains(text string) bson.A {
	pattern := contains(text)
	clauses := make(bson.A, 0, len(searchFields))
	for _, field := range searchFields {
		clauses = append(clauses, bson.M{field: pattern})
	}
	return clauses
}

// RestaurantFilter builds the filter for the plain restaurant listing.
// Empty values and the "All" sentinel add no constraint.
func RestaurantFilter(cuisine, name string) bson.M {
	filter := bson.M{}
	if cuisine != "" && cuisine != AllCuisines {
		filter["cuisine"] = contains(cuisine)
	}
	if name != "" && name != AllCuisines {
		filter["name"] = contains(name)
	}
	return filter
}

// SearchFilter matches restaurants where any searchable field contains text.
// Cuisine is ignored here.
func SearchFilter(text string) (bson.M, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrSearchRequired
	}
	return bson.M{"$or": anyFieldContains(text)}, nil
}

// ProductFilter builds the filter for the product endpoints. Cuisine and
// search compose with AND, and restaurants without a menu are excluded.
func ProductFilter(q Query) bson.M {
	filter := bson.M{
		"menu.0": bson.M{"$exists": true},
	}
	if q.Cuisine != "" && q.Cuisine != AllCuisines {
		filter["cuisine"] = contains(q.Cuisine)
	}
	if q.Search != "" {
		filter["$or"] = anyFieldContains(q.Search)
	}
	return filter
}
