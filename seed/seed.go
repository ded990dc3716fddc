// Package seed holds the sample catalog and users loaded by cmd/seeder.
package seed

import (
	"context"
	"fmt"
	"log"

	"food-ordering/models"
	"food-ordering/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// SamplePassword is the password of every sample user
const SamplePassword = "password123"

type sampleItem struct {
	name        string
	price       float64
	description string
}

type sampleRestaurant struct {
	name     string
	cuisine  string
	address  string
	imageURL string
	rating   float64
	menu     []sampleItem
}

var sampleRestaurants = []sampleRestaurant{
	{
		name:     "Pizza Palace",
		cuisine:  "Italian",
		address:  "123 Pizza St, Mumbai",
		imageURL: "https://images.unsplash.com/photo-1513104890138-7c749659a591?w=400",
		rating:   4.5,
		menu: []sampleItem{
			{"Margherita Pizza", 250, "Classic cheese and tomato"},
			{"Pepperoni Pizza", 300, "Spicy pepperoni and cheese"},
			{"Garlic Bread", 150, "Toasted with garlic butter"},
		},
	},
	{
		name:     "Curry Kingdom",
		cuisine:  "Indian",
		address:  "456 Spice Ave, Mumbai",
		imageURL: "https://images.unsplash.com/photo-1589302168068-964664d93dc0?w=400",
		rating:   4.8,
		menu: []sampleItem{
			{"Butter Chicken", 350, "Creamy and rich chicken curry"},
			{"Palak Paneer", 300, "Spinach and cottage cheese"},
			{"Naan Bread", 50, "Soft leavened bread"},
		},
	},
	{
		name:     "Taco Town",
		cuisine:  "Mexican",
		address:  "789 Fiesta Blvd, Mumbai",
		imageURL: "https://images.unsplash.com/photo-1552332386-f8dd00dc2f85?w=400",
		rating:   4.3,
		menu: []sampleItem{
			{"Chicken Tacos", 200, "Three soft tacos with chicken"},
			{"Beef Burrito", 280, "Large burrito with beef and beans"},
			{"Nachos", 180, "Loaded with cheese and salsa"},
		},
	},
}

// Restaurants builds the sample catalog. Every menu item gets its own id,
// the restaurant image and the default rating so it is listed as a product.
func Restaurants() []models.Restaurant {
	restaurants := make([]models.Restaurant, 0, len(sampleRestaurants))
	for _, s := range sampleRestaurants {
		r := models.Restaurant{
			ID:       primitive.NewObjectID(),
			Name:     s.name,
			Cuisine:  s.cuisine,
			Address:  s.address,
			ImageURL: s.imageURL,
			Rating:   models.Float(s.rating),
			Menu:     make([]models.MenuItem, 0, len(s.menu)),
		}
		for _, item := range s.menu {
			r.Menu = append(r.Menu, models.MenuItem{
				ID:          primitive.NewObjectID(),
				Name:        item.name,
				Price:       models.Float(item.price),
				Description: item.description,
				Image:       s.imageURL,
				Rating:      models.Float(models.DefaultMenuItemRating),
			})
		}
		restaurants = append(restaurants, r)
	}
	return restaurants
}

// Users builds the sample users with hashed passwords
func Users() ([]models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(SamplePassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash sample password: %w", err)
	}

	users := []models.User{
		{Name: "Admin User", Email: "admin@example.com", IsAdmin: true},
		{Name: "Jane Doe", Email: "jane@example.com"},
		{Name: "John Smith", Email: "john@example.com"},
	}
	for i := range users {
		users[i].Password = string(hash)
	}
	return users, nil
}

// Seeder loads and clears sample data
type Seeder struct {
	Restaurants repository.RestaurantRepository
	Users       repository.UserRepository
}

// Import replaces the catalog with the sample restaurants. With withUsers the
// user collection is replaced by the sample users as well.
func (s *Seeder) Import(ctx context.Context, withUsers bool) error {
	restaurants := Restaurants()
	if err := s.Restaurants.ReplaceAll(ctx, restaurants); err != nil {
		return fmt.Errorf("import restaurants: %w", err)
	}
	log.Printf("Imported %d restaurants", len(restaurants))

	if !withUsers {
		return nil
	}

	users, err := Users()
	if err != nil {
		return err
	}
	if err := s.Users.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear users: %w", err)
	}
	for i := range users {
		if err := s.Users.Create(ctx, &users[i]); err != nil {
			return fmt.Errorf("import user %s: %w", users[i].Email, err)
		}
	}
	log.Printf("Imported %d users", len(users))
	return nil
}

// Destroy removes the catalog and, with withUsers, every user
func (s *Seeder) Destroy(ctx context.Context, withUsers bool) error {
	if err := s.Restaurants.DeleteAll(ctx); err != nil {
		return fmt.Errorf("destroy restaurants: %w", err)
	}
	if withUsers {
		if err := s.Users.DeleteAll(ctx); err != nil {
			return fmt.Errorf("destroy users: %w", err)
		}
	}
	return nil
}
