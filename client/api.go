// Package client is a Go client for the food ordering API: a thin HTTP
// wrapper, the browse state machine used by listing views and the
// persisted session holding the signed-in user and the cart.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"food-ordering/models"
)

// GenericErrorMessage is shown when the server gave no message
const GenericErrorMessage = "Something went wrong. Please try again."

// APIError carries the server message verbatim
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Account is the signed-in user as returned by register and login
type Account struct {
	ID        string           `json:"_id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Addresses []models.Address `json:"addresses"`
	Address   string           `json:"address"`
	City      string           `json:"city"`
	Token     string           `json:"token"`
}

// Registration is the register request body
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state,omitempty"`
	ZipCode  string `json:"zipCode,omitempty"`
}

// ProductQuery holds the parameters of the product endpoints. A zero Limit sends none.
type ProductQuery struct {
	Cuisine string
	Search  string
	SortBy  string
	Order   string
	Limit   int
}

func (q ProductQuery) values() url.Values {
	v := url.Values{}
	if q.Cuisine != "" {
		v.Set("cuisine", q.Cuisine)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.SortBy != "" {
		v.Set("sortBy", q.SortBy)
	}
	if q.Order != "" {
		v.Set("order", q.Order)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}

// API talks to the server under BaseURL, e.g. http://localhost:5000/api
type API struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewAPI creates an API. A nil httpClient gets a client with a 15 second timeout.
func NewAPI(baseURL string, httpClient *http.Client) *API {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &API{BaseURL: strings.TrimRight(baseURL, "/"), HTTPClient: httpClient}
}

// Restaurants lists restaurants. Empty or "All" arguments do not filter.
func (a *API) Restaurants(ctx context.Context, cuisine, name string) ([]models.Restaurant, error) {
	v := url.Values{}
	if cuisine != "" {
		v.Set("cuisine", cuisine)
	}
	if name != "" {
		v.Set("name", name)
	}
	var out []models.Restaurant
	err := a.do(ctx, http.MethodGet, "/restaurants", v, "", nil, &out)
	return out, err
}

// Search returns the restaurants matching q in any field
func (a *API) Search(ctx context.Context, q string) ([]models.Restaurant, error) {
	var out []models.Restaurant
	err := a.do(ctx, http.MethodGet, "/restaurants/search", url.Values{"q": {q}}, "", nil, &out)
	return out, err
}

// Products lists menu items with their restaurant context
func (a *API) Products(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	var out []models.Product
	err := a.do(ctx, http.MethodGet, "/restaurants/products", q.values(), "", nil, &out)
	return out, err
}

// SortedMenuItems fetches the sorted menu items envelope
func (a *API) SortedMenuItems(ctx context.Context, q ProductQuery) (*models.SortedMenuItems, error) {
	var out models.SortedMenuItems
	if err := a.do(ctx, http.MethodGet, "/restaurants/menu-items/sorted", q.values(), "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Restaurant fetches one restaurant with its menu
func (a *API) Restaurant(ctx context.Context, id string) (*models.Restaurant, error) {
	var out models.Restaurant
	if err := a.do(ctx, http.MethodGet, "/restaurants/"+url.PathEscape(id), nil, "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and signs it in
func (a *API) Register(ctx context.Context, reg Registration) (*Account, error) {
	var out Account
	if err := a.do(ctx, http.MethodPost, "/users/register", nil, "", reg, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login signs in with email and password
func (a *API) Login(ctx context.Context, email, password string) (*Account, error) {
	var out Account
	body := map[string]string{"email": email, "password": password}
	if err := a.do(ctx, http.MethodPost, "/users/login", nil, "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Profile fetches the user behind token
func (a *API) Profile(ctx context.Context, token string) (*models.User, error) {
	var out models.User
	if err := a.do(ctx, http.MethodGet, "/users/profile", nil, token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PlaceOrder submits an order
func (a *API) PlaceOrder(ctx context.Context, token string, req models.OrderRequest) (*models.Order, error) {
	var out models.Order
	if err := a.do(ctx, http.MethodPost, "/orders", nil, token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyOrders lists the orders of the user behind token
func (a *API) MyOrders(ctx context.Context, token string) ([]models.Order, error) {
	var out []models.Order
	err := a.do(ctx, http.MethodGet, "/orders/myorders", nil, token, nil, &out)
	return out, err
}

// Order fetches one order of the user behind token
func (a *API) Order(ctx context.Context, token, id string) (*models.Order, error) {
	var out models.Order
	if err := a.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), nil, token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) do(ctx context.Context, method, path string, query url.Values, token string, body, out interface{}) error {
	target := a.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Message == "" {
			payload.Message = GenericErrorMessage
		}
		return &APIError{StatusCode: resp.StatusCode, Message: payload.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
