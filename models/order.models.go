package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultPaymentMethod is recorded when an order does not name one
const DefaultPaymentMethod = "Card Payment"

// OrderItem is a snapshot of a purchased line, independent of the live catalog
type OrderItem struct {
	Name         string  `bson:"name" json:"name"`
	Qty          int     `bson:"qty" json:"qty"`
	Price        float64 `bson:"price" json:"price"`
	Image        string  `bson:"image,omitempty" json:"image,omitempty"`
	Description  string  `bson:"description,omitempty" json:"description,omitempty"`
	RestaurantID string  `bson:"restaurantId,omitempty" json:"restaurantId,omitempty"`
}

// ShippingAddress is the delivery address captured when the order is placed
type ShippingAddress struct {
	Address    string `bson:"address" json:"address"`
	City       string `bson:"city" json:"city"`
	State      string `bson:"state,omitempty" json:"state,omitempty"`
	ZipCode    string `bson:"zipCode,omitempty" json:"zipCode,omitempty"`
	PostalCode string `bson:"postalCode,omitempty" json:"postalCode,omitempty"`
}

// Order represents a placed order
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	OrderItems      []OrderItem        `bson:"orderItems" json:"orderItems"`
	User            primitive.ObjectID `bson:"user" json:"user"`
	ShippingAddress ShippingAddress    `bson:"shippingAddress" json:"shippingAddress"`
	ItemsPrice      float64            `bson:"itemsPrice" json:"itemsPrice"`
	TaxPrice        float64            `bson:"taxPrice" json:"taxPrice"`
	ShippingPrice   float64            `bson:"shippingPrice" json:"shippingPrice"`
	TotalPrice      float64            `bson:"totalPrice" json:"totalPrice"`
	PaymentMethod   string             `bson:"paymentMethod" json:"paymentMethod"`
	IsPaid          bool               `bson:"isPaid" json:"isPaid"`
	PaidAt          time.Time          `bson:"paidAt" json:"paidAt"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// OrderRequest is the body accepted when placing an order
type OrderRequest struct {
	OrderItems      []OrderItem     `json:"orderItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	ItemsPrice      float64         `json:"itemsPrice"`
	TaxPrice        float64         `json:"taxPrice"`
	ShippingPrice   float64         `json:"shippingPrice"`
	TotalPrice      float64         `json:"totalPrice"`
	PaymentMethod   string          `json:"paymentMethod"`
}

// OrderPlacedEvent is published after an order has been stored
type OrderPlacedEvent struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"orderId"`
	UserID     string    `json:"userId"`
	Items      int       `json:"items"`
	TotalPrice float64   `json:"totalPrice"`
	Timestamp  time.Time `json:"timestamp"`
}
