package client

import (
	"context"
	"errors"

	"food-ordering/models"

	"github.com/shopspring/decimal"
)

// TaxRate applied to the items total
var TaxRate = decimal.RequireFromString("0.15")

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrNotSignedIn       = errors.New("not signed in")
	ErrNoShippingAddress = errors.New("shipping address is required")
)

// PriceBreakdown is the price summary of a cart. Shipping is free.
type PriceBreakdown struct {
	Items    decimal.Decimal
	Tax      decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

// Price computes the breakdown of items, each amount rounded to 2 places
func Price(items []CartItem) PriceBreakdown {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Qty))))
	}
	itemsPrice := sum.Round(2)
	tax := itemsPrice.Mul(TaxRate).Round(2)
	shipping := decimal.Zero
	return PriceBreakdown{
		Items:    itemsPrice,
		Tax:      tax,
		Shipping: shipping,
		Total:    itemsPrice.Add(tax).Add(shipping),
	}
}

// OrderRequest builds the order body for items shipped to address
func OrderRequest(items []CartItem, address models.ShippingAddress, paymentMethod string) models.OrderRequest {
	price := Price(items)
	lines := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		lines = append(lines, models.OrderItem{
			Name:         item.Name,
			Qty:          item.Qty,
			Price:        item.Price,
			Image:        item.Image,
			Description:  item.Description,
			RestaurantID: item.RestaurantID,
		})
	}
	return models.OrderRequest{
		OrderItems:      lines,
		ShippingAddress: address,
		ItemsPrice:      price.Items.InexactFloat64(),
		TaxPrice:        price.Tax.InexactFloat64(),
		ShippingPrice:   price.Shipping.InexactFloat64(),
		TotalPrice:      price.Total.InexactFloat64(),
		PaymentMethod:   paymentMethod,
	}
}

// ShippingAddressFrom converts a saved address
func ShippingAddressFrom(a models.Address) models.ShippingAddress {
	return models.ShippingAddress{
		Address: a.Street,
		City:    a.City,
		State:   a.State,
		ZipCode: a.ZipCode,
	}
}

// PlaceOrder submits the cart of session and empties it once the order is stored
func PlaceOrder(ctx context.Context, api *API, session *Session, address models.ShippingAddress, paymentMethod string) (*models.Order, error) {
	token := session.Token()
	if token == "" {
		return nil, ErrNotSignedIn
	}
	items := session.Cart()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if address.Address == "" || address.City == "" {
		return nil, ErrNoShippingAddress
	}

	order, err := api.PlaceOrder(ctx, token, OrderRequest(items, address, paymentMethod))
	if err != nil {
		return nil, err
	}
	session.ClearCart()
	return order, nil
}
