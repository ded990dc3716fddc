package utils

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRCodeSize is the edge length in pixels of generated order codes
const QRCodeSize = 256

// OrderURL is the confirmation page of an order on the frontend
func OrderURL(frontendURL, orderID string) string {
	return fmt.Sprintf("%s/order/%s", frontendURL, orderID)
}

// GenerateOrderQRCode encodes the order confirmation link as a PNG
func GenerateOrderQRCode(frontendURL, orderID string) ([]byte, error) {
	return qrcode.Encode(OrderURL(frontendURL, orderID), qrcode.Medium, QRCodeSize)
}
