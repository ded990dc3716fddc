package utils

import (
	"bytes"
	"errors"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"food-ordering/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type recordingSender struct {
	to, subject, html, text string
	err                     error
}

func (s *recordingSender) Send(to, subject, htmlBody, textBody string) error {
	s.to, s.subject, s.html, s.text = to, subject, htmlBody, textBody
	return s.err
}

func TestJWT_RoundTrip(t *testing.T) {
	JwtKey = []byte("test-secret")

	token, err := GenerateJWT("64b000000000000000000001")
	require.NoError(t, err)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "64b000000000000000000001", claims.ID)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), time.Unix(claims.ExpiresAt, 0), time.Minute)
}

func TestParseJWT_Rejects(t *testing.T) {
	JwtKey = []byte("test-secret")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		ID:             "someone",
		StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(-time.Hour).Unix()},
	})
	expiredToken, err := expired.SignedString(JwtKey)
	require.NoError(t, err)

	otherKey := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{ID: "someone"})
	otherKeyToken, err := otherKey.SignedString([]byte("other-secret"))
	require.NoError(t, err)

	noID := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{})
	noIDToken, err := noID.SignedString(JwtKey)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":   "not-a-token",
		"expired":   expiredToken,
		"other_key": otherKeyToken,
		"no_id":     noIDToken,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseJWT(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestWriteError(t *testing.T) {
	recorder := httptest.NewRecorder()
	WriteError(recorder, http.StatusBadRequest, "No order items")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"No order items"}`, recorder.Body.String())
}

func TestSendOrderConfirmationEmail(t *testing.T) {
	sender := &recordingSender{}
	service := NewEmailServiceWithSender(sender)

	order := models.Order{
		ID: primitive.NewObjectID(),
		OrderItems: []models.OrderItem{
			{Name: "Butter Chicken", Qty: 2, Price: 350},
			{Name: "<script>", Qty: 1, Price: 50},
		},
		ShippingAddress: models.ShippingAddress{Address: "456 Spice Ave", City: "Mumbai"},
		ItemsPrice:      750,
		TaxPrice:        112.5,
		TotalPrice:      862.5,
		PaymentMethod:   models.DefaultPaymentMethod,
		CreatedAt:       time.Date(2025, 3, 1, 19, 30, 0, 0, time.UTC),
	}
	user := models.User{Name: "Jane Doe", Email: "jane@example.com"}

	require.NoError(t, service.SendOrderConfirmationEmail(user, order))

	assert.Equal(t, "jane@example.com", sender.to)
	assert.Equal(t, "Order Confirmation - "+order.ID.Hex(), sender.subject)
	assert.Contains(t, sender.html, "Hi Jane Doe!")
	assert.Contains(t, sender.html, "₹700.00")
	assert.Contains(t, sender.html, "₹862.50")
	assert.Contains(t, sender.html, "&lt;script&gt;")
	assert.NotContains(t, sender.html, "<script>")
	assert.Contains(t, sender.text, "Total Amount: ₹862.50")
	assert.Contains(t, sender.text, "456 Spice Ave\nMumbai")
}

func TestSendEmail_WrapsSenderError(t *testing.T) {
	boom := errors.New("smtp down")
	service := NewEmailServiceWithSender(&recordingSender{err: boom})

	err := service.SendOrderConfirmationEmail(models.User{Email: "a@b.c"}, models.Order{})
	assert.ErrorIs(t, err, boom)
}

func TestNewEmailService_FallsBackToLog(t *testing.T) {
	service := NewEmailService(ProviderPostmark, "", "", "orders@example.com")
	assert.IsType(t, LogSender{}, service.sender)

	service = NewEmailService(ProviderSendGrid, "", "key", "orders@example.com")
	assert.IsType(t, &SendGridSender{}, service.sender)

	service = NewEmailService(ProviderNone, "token", "key", "orders@example.com")
	assert.IsType(t, LogSender{}, service.sender)
}

func TestGenerateOrderQRCode(t *testing.T) {
	assert.Equal(t, "http://localhost:5173/order/abc", OrderURL("http://localhost:5173", "abc"))

	code, err := GenerateOrderQRCode("http://localhost:5173", "abc")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(code))
	require.NoError(t, err)
	assert.Equal(t, QRCodeSize, img.Bounds().Dx())
}

func TestNewOrderPlacedEvent(t *testing.T) {
	order := models.Order{
		ID:         primitive.NewObjectID(),
		User:       primitive.NewObjectID(),
		OrderItems: []models.OrderItem{{Qty: 2}, {Qty: 3}},
		TotalPrice: 99.5,
	}
	event := NewOrderPlacedEvent(order)
	assert.Equal(t, OrderEventType, event.Type)
	assert.Equal(t, order.ID.Hex(), event.OrderID)
	assert.Equal(t, order.User.Hex(), event.UserID)
	assert.Equal(t, 5, event.Items)
	assert.Equal(t, 99.5, event.TotalPrice)
}
