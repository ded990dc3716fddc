package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"food-ordering/middleware"
	"food-ordering/models"
	"food-ordering/repository"
	"food-ordering/utils"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderController handles order-related requests
type OrderController struct {
	Orders      repository.OrderRepository
	Users       repository.UserRepository
	Mailer      utils.Mailer
	Publisher   utils.OrderPublisher
	FrontendURL string
}

// NewOrderController creates a new OrderController. publisher may be nil.
func NewOrderController(orders repository.OrderRepository, users repository.UserRepository, mailer utils.Mailer, publisher utils.OrderPublisher, frontendURL string) *OrderController {
	return &OrderController{
		Orders:      orders,
		Users:       users,
		Mailer:      mailer,
		Publisher:   publisher,
		FrontendURL: frontendURL,
	}
}

// AddOrderItems places an order. The confirmation email and the order
// event are best effort and never fail the request.
func (oc *OrderController) AddOrderItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if len(req.OrderItems) == 0 {
		utils.WriteError(w, http.StatusBadRequest, "No order items")
		return
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.DefaultPaymentMethod
	}

	lines := make([]models.OrderItem, 0, len(req.OrderItems))
	for _, item := range req.OrderItems {
		lines = append(lines, models.OrderItem{
			Name:         item.Name,
			Qty:          item.Qty,
			Price:        item.Price,
			Image:        item.Image,
			Description:  item.Description,
			RestaurantID: item.RestaurantID,
		})
	}

	order := models.Order{
		OrderItems:      lines,
		User:            userID,
		ShippingAddress: req.ShippingAddress,
		ItemsPrice:      req.ItemsPrice,
		TaxPrice:        req.TaxPrice,
		ShippingPrice:   req.ShippingPrice,
		TotalPrice:      req.TotalPrice,
		PaymentMethod:   paymentMethod,
		// no payment gateway, orders are paid on creation
		IsPaid: true,
		PaidAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := oc.Orders.Create(ctx, &order); err != nil {
		log.Printf("Error saving order: %v", err)
		utils.WriteError(w, http.StatusBadRequest, "Error creating order")
		return
	}
	log.Printf("Order %s created for user %s", order.ID.Hex(), userID.Hex())

	oc.sendConfirmation(ctx, order)
	oc.publish(ctx, order)

	utils.WriteJSON(w, http.StatusCreated, order)
}

func (oc *OrderController) sendConfirmation(ctx context.Context, order models.Order) {
	if oc.Mailer == nil {
		return
	}
	user, err := oc.Users.FindByID(ctx, order.User)
	if err != nil {
		log.Printf("Failed to load user for order %s confirmation: %v", order.ID.Hex(), err)
		return
	}
	if err := oc.Mailer.SendOrderConfirmationEmail(*user, order); err != nil {
		log.Printf("Failed to send order confirmation email to %s: %v", user.Email, err)
		return
	}
	log.Printf("Order confirmation email sent to %s", user.Email)
}

func (oc *OrderController) publish(ctx context.Context, order models.Order) {
	if oc.Publisher == nil {
		return
	}
	if err := oc.Publisher.PublishOrderPlaced(ctx, utils.NewOrderPlacedEvent(order)); err != nil {
		log.Printf("Failed to publish order %s: %v", order.ID.Hex(), err)
	}
}

// GetMyOrders lists the orders of the authenticated user
func (oc *OrderController) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orders, err := oc.Orders.FindByUser(ctx, userID)
	if err != nil {
		utils.WriteServerError(w, "list orders", err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	utils.WriteJSON(w, http.StatusOK, orders)
}

// GetOrderByID returns one order, only to its owner
func (oc *OrderController) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	order, ok := oc.ownedOrder(w, r)
	if !ok {
		return
	}
	utils.WriteJSON(w, http.StatusOK, order)
}

// GetOrderQRCode returns a PNG QR code linking to the order confirmation page
func (oc *OrderController) GetOrderQRCode(w http.ResponseWriter, r *http.Request) {
	order, ok := oc.ownedOrder(w, r)
	if !ok {
		return
	}

	code, err := utils.GenerateOrderQRCode(oc.FrontendURL, order.ID.Hex())
	if err != nil {
		utils.WriteServerError(w, "generate QR code", err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(code)
}

func (oc *OrderController) ownedOrder(w http.ResponseWriter, r *http.Request) (*models.Order, bool) {
	userID, ok := requireUser(w, r)
	if !ok {
		return nil, false
	}

	orderID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid order ID")
		return nil, false
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, err := oc.Orders.FindByID(ctx, orderID)
	if errors.Is(err, repository.ErrNotFound) {
		utils.WriteError(w, http.StatusNotFound, "Order not found")
		return nil, false
	}
	if err != nil {
		utils.WriteServerError(w, "fetch order", err)
		return nil, false
	}

	if order.User != userID {
		utils.WriteError(w, http.StatusUnauthorized, "Not authorized to view this order")
		return nil, false
	}
	return order, true
}

// requireUser reads the authenticated user id, answering 401 when there is none
func requireUser(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	userID, ok := middleware.UserID(r)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Not authorized")
		return primitive.NilObjectID, false
	}
	return userID, true
}
