package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"food-ordering/models"
)

// CartItem is one product in the cart
type CartItem struct {
	ID             string  `json:"_id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Image          string  `json:"image"`
	Description    string  `json:"description"`
	RestaurantID   string  `json:"restaurantId"`
	RestaurantName string  `json:"restaurantName"`
	Qty            int     `json:"qty"`
}

// CartItemFromProduct snapshots a product for the cart
func CartItemFromProduct(p models.Product) CartItem {
	return CartItem{
		ID:             p.ID.Hex(),
		Name:           p.Name,
		Price:          p.Price,
		Image:          p.Image,
		Description:    p.Description,
		RestaurantID:   p.Restaurant.ID.Hex(),
		RestaurantName: p.Restaurant.Name,
	}
}

// CartItemFromMenuItem snapshots a menu item of restaurant for the cart.
// An item without a price is added at 0.
func CartItemFromMenuItem(restaurant models.Restaurant, item models.MenuItem) CartItem {
	var price float64
	if item.Price != nil {
		price = *item.Price
	}
	return CartItem{
		ID:             item.ID.Hex(),
		Name:           item.Name,
		Price:          price,
		Image:          item.Image,
		Description:    item.Description,
		RestaurantID:   restaurant.ID.Hex(),
		RestaurantName: restaurant.Name,
	}
}

type sessionState struct {
	Account *Account   `json:"user,omitempty"`
	Cart    []CartItem `json:"cart"`
}

// Session is the signed-in user and the cart. It is only written to disk by
// Persist and only read by LoadSession.
type Session struct {
	mu    sync.Mutex
	path  string
	state sessionState
}

// NewSession creates an empty session stored at path
func NewSession(path string) *Session {
	return &Session{path: path, state: sessionState{Cart: []CartItem{}}}
}

// LoadSession reads the session stored at path. A missing file gives an empty session.
func LoadSession(path string) (*Session, error) {
	s := NewSession(path)
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if err := json.Unmarshal(raw, &s.state); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if s.state.Cart == nil {
		s.state.Cart = []CartItem{}
	}
	return s, nil
}

// Persist writes the session to its path
func (s *Session) Persist() error {
	s.mu.Lock()
	raw, err := json.MarshalIndent(s.state, "", "  ")
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace session: %w", err)
	}
	return nil
}

// Login stores the signed-in account
func (s *Session) Login(account *Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Account = account
}

// Logout forgets the account. The cart is kept.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Account = nil
}

// Account returns the signed-in account, or nil
func (s *Session) Account() *Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Account
}

// Token returns the bearer token of the signed-in account
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Account == nil {
		return ""
	}
	return s.state.Account.Token
}

// AddToCart adds one of item, or one more if it is already in the cart
func (s *Session) AddToCart(item CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Cart {
		if s.state.Cart[i].ID == item.ID {
			s.state.Cart[i].Qty++
			return
		}
	}
	item.Qty = 1
	s.state.Cart = append(s.state.Cart, item)
}

// RemoveFromCart drops the item with id
func (s *Session) RemoveFromCart(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Cart[:0]
	for _, item := range s.state.Cart {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.state.Cart = kept
}

// AdjustQuantity adds amount to the quantity of id. Items reaching zero are removed.
func (s *Session) AdjustQuantity(id string, amount int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Cart[:0]
	for _, item := range s.state.Cart {
		if item.ID == id {
			item.Qty += amount
		}
		if item.Qty > 0 {
			kept = append(kept, item)
		}
	}
	s.state.Cart = kept
}

// ClearCart empties the cart
func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Cart = []CartItem{}
}

// Cart returns a copy of the cart
func (s *Session) Cart() []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]CartItem{}, s.state.Cart...)
}

// ItemCount is the total quantity in the cart
func (s *Session) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, item := range s.state.Cart {
		n += item.Qty
	}
	return n
}
