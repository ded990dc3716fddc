package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"strings"
	"time"

	"food-ordering/models"

	"github.com/keighl/postmark"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Email providers selectable through EMAIL_PROVIDER
const (
	ProviderPostmark = "postmark"
	ProviderSendGrid = "sendgrid"
	ProviderNone     = "none"
)

const senderName = "Food Ordering App"

// Sender delivers one message
type Sender interface {
	Send(to, subject, htmlBody, textBody string) error
}

// Mailer sends the transactional emails of the app
type Mailer interface {
	SendOrderConfirmationEmail(user models.User, order models.Order) error
}

// PostmarkSender sends through Postmark
type PostmarkSender struct {
	client *postmark.Client
	from   string
}

// NewPostmarkSender creates a Postmark backed sender
func NewPostmarkSender(apiToken, from string) *PostmarkSender {
	return &PostmarkSender{client: postmark.NewClient(apiToken, ""), from: from}
}

func (s *PostmarkSender) Send(to, subject, htmlBody, textBody string) error {
	_, err := s.client.SendEmail(postmark.Email{
		From:     fmt.Sprintf("%s <%s>", senderName, s.from),
		To:       to,
		Subject:  subject,
		HtmlBody: htmlBody,
		TextBody: textBody,
	})
	if err != nil {
		return fmt.Errorf("postmark: %w", err)
	}
	return nil
}

// SendGridSender sends through SendGrid
type SendGridSender struct {
	client *sendgrid.Client
	from   *mail.Email
}

// NewSendGridSender creates a SendGrid backed sender
func NewSendGridSender(apiKey, from string) *SendGridSender {
	return &SendGridSender{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail(senderName, from),
	}
}

func (s *SendGridSender) Send(to, subject, htmlBody, textBody string) error {
	message := mail.NewSingleEmail(s.from, subject, mail.NewEmail("", to), textBody, htmlBody)
	resp, err := s.client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// LogSender only logs, used when no provider is configured
type LogSender struct{}

func (LogSender) Send(to, subject, _, _ string) error {
	log.Printf("email delivery disabled, dropping %q to %s", subject, to)
	return nil
}

// EmailService handles sending emails
type EmailService struct {
	sender Sender
}

// NewEmailService picks the sender for provider
func NewEmailService(provider, postmarkToken, sendGridKey, from string) *EmailService {
	switch provider {
	case ProviderPostmark:
		if postmarkToken != "" {
			return &EmailService{sender: NewPostmarkSender(postmarkToken, from)}
		}
		log.Println("POSTMARK_API_TOKEN is not set, emails will only be logged")
	case ProviderSendGrid:
		if sendGridKey != "" {
			return &EmailService{sender: NewSendGridSender(sendGridKey, from)}
		}
		log.Println("SENDGRID_API_KEY is not set, emails will only be logged")
	}
	return &EmailService{sender: LogSender{}}
}

// NewEmailServiceWithSender wraps an existing sender
func NewEmailServiceWithSender(sender Sender) *EmailService {
	return &EmailService{sender: sender}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent, textContent string) error {
	if err := es.sender.Send(toEmail, subject, htmlContent, textContent); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendOrderConfirmationEmail sends an order confirmation email to the user
func (es *EmailService) SendOrderConfirmationEmail(user models.User, order models.Order) error {
	data := newConfirmationData(user, order)

	var html bytes.Buffer
	if err := confirmationHTML.Execute(&html, data); err != nil {
		return fmt.Errorf("render confirmation: %w", err)
	}
	subject := fmt.Sprintf("Order Confirmation - %s", order.ID.Hex())
	return es.SendEmail(user.Email, subject, html.String(), confirmationText(data))
}

type confirmationLine struct {
	Name  string
	Image string
	Qty   int
	Price string
	Total string
}

type confirmationData struct {
	CustomerName  string
	OrderID       string
	OrderDate     string
	PaymentMethod string
	Address       string
	City          string
	PostalCode    string
	Lines         []confirmationLine
	ItemsPrice    string
	TaxPrice      string
	ShippingPrice string
	TotalPrice    string
}

func rupees(v float64) string {
	return fmt.Sprintf("₹%.2f", v)
}

func newConfirmationData(user models.User, order models.Order) confirmationData {
	placed := order.CreatedAt
	if placed.IsZero() {
		placed = order.PaidAt
	}
	if placed.IsZero() {
		placed = time.Now()
	}

	data := confirmationData{
		CustomerName:  user.Name,
		OrderID:       order.ID.Hex(),
		OrderDate:     placed.Format("Monday, 2 January 2006 15:04"),
		PaymentMethod: order.PaymentMethod,
		Address:       order.ShippingAddress.Address,
		City:          order.ShippingAddress.City,
		PostalCode:    order.ShippingAddress.PostalCode,
		ItemsPrice:    rupees(order.ItemsPrice),
		TaxPrice:      rupees(order.TaxPrice),
		ShippingPrice: rupees(order.ShippingPrice),
		TotalPrice:    rupees(order.TotalPrice),
	}
	if data.CustomerName == "" {
		data.CustomerName = "Valued Customer"
	}
	if data.PaymentMethod == "" {
		data.PaymentMethod = models.DefaultPaymentMethod
	}
	if data.Address == "" {
		data.Address = "Address not provided"
	}
	if data.PostalCode == "" {
		data.PostalCode = order.ShippingAddress.ZipCode
	}

	for _, item := range order.OrderItems {
		qty := item.Qty
		if qty == 0 {
			qty = 1
		}
		line := confirmationLine{
			Name:  item.Name,
			Image: item.Image,
			Qty:   qty,
			Price: rupees(item.Price),
			Total: rupees(float64(qty) * item.Price),
		}
		if line.Name == "" {
			line.Name = "Unknown Item"
		}
		if line.Image == "" {
			line.Image = "/images/placeholder.png"
		}
		data.Lines = append(data.Lines, line)
	}
	return data
}

func confirmationText(data confirmationData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order Confirmation\n\nHi %s,\n\nYour order has been confirmed!\n\n", data.CustomerName)
	fmt.Fprintf(&b, "Order ID: %s\nTotal Amount: %s\n\n", data.OrderID, data.TotalPrice)
	fmt.Fprintf(&b, "Delivery Address:\n%s\n%s", data.Address, data.City)
	if data.PostalCode != "" {
		fmt.Fprintf(&b, ", %s", data.PostalCode)
	}
	b.WriteString("\n\nEstimated delivery time: 30-45 minutes\n\nThank you for your order!\n")
	return b.String()
}

var confirmationHTML = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Order Confirmation</title></head>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: #ff6b6b; padding: 30px; text-align: center;">
    <h1 style="color: white; margin: 0;">Order Confirmed!</h1>
    <p style="color: white;">Thank you for your order</p>
  </div>
  <h2>Hi {{.CustomerName}}!</h2>
  <p>Your order has been confirmed and is being prepared. Here are the details:</p>
  <p><strong>Order ID:</strong> {{.OrderID}}</p>
  <p><strong>Order Date:</strong> {{.OrderDate}}</p>
  <p><strong>Payment Method:</strong> {{.PaymentMethod}}</p>
  <h3>Delivery Address</h3>
  <p>{{.Address}}<br>{{.City}}</p>
  <h3>Order Items</h3>
  <table style="width: 100%; border-collapse: collapse;">
    <tr><th></th><th style="text-align: left;">Name</th><th>Qty</th><th style="text-align: right;">Price</th><th style="text-align: right;">Total</th></tr>
    {{range .Lines}}<tr>
      <td><img src="{{.Image}}" alt="{{.Name}}" width="50" height="50"></td>
      <td>{{.Name}}</td>
      <td style="text-align: center;">{{.Qty}}</td>
      <td style="text-align: right;">{{.Price}}</td>
      <td style="text-align: right;">{{.Total}}</td>
    </tr>{{end}}
  </table>
  <p>Items Total: {{.ItemsPrice}}<br>Tax: {{.TaxPrice}}<br>Shipping: {{.ShippingPrice}}</p>
  <p style="font-size: 18px;"><strong>Total Amount: {{.TotalPrice}}</strong></p>
  <p>Estimated delivery time: 30-45 minutes</p>
</body>
</html>
`))
