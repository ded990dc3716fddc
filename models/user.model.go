package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address types accepted for a saved address
const (
	AddressHome  = "home"
	AddressWork  = "work"
	AddressOther = "other"
)

// Payment method types
const (
	PaymentCreditCard = "credit_card"
	PaymentDebitCard  = "debit_card"
	PaymentUPI        = "upi"
	PaymentNetBanking = "net_banking"
)

// ValidAddressType reports whether t is a known address type
func ValidAddressType(t string) bool {
	switch t {
	case AddressHome, AddressWork, AddressOther:
		return true
	}
	return false
}

// ValidPaymentMethodType reports whether t is a known payment method type
func ValidPaymentMethodType(t string) bool {
	switch t {
	case PaymentCreditCard, PaymentDebitCard, PaymentUPI, PaymentNetBanking:
		return true
	}
	return false
}

// Address represents one of a user's saved delivery addresses
type Address struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Type      string             `bson:"type" json:"type"`
	Street    string             `bson:"street" json:"street"`
	City      string             `bson:"city" json:"city"`
	State     string             `bson:"state" json:"state"`
	ZipCode   string             `bson:"zipCode" json:"zipCode"`
	IsDefault bool               `bson:"isDefault" json:"isDefault"`
}

// PaymentMethod is a saved payment method. Which fields are set depends on Type.
type PaymentMethod struct {
	ID             primitive.ObjectID `bson:"_id" json:"_id"`
	Type           string             `bson:"type" json:"type"`
	CardNumber     string             `bson:"cardNumber,omitempty" json:"cardNumber,omitempty"`
	CardHolderName string             `bson:"cardHolderName,omitempty" json:"cardHolderName,omitempty"`
	ExpiryDate     string             `bson:"expiryDate,omitempty" json:"expiryDate,omitempty"`
	UpiID          string             `bson:"upiId,omitempty" json:"upiId,omitempty"`
	BankName       string             `bson:"bankName,omitempty" json:"bankName,omitempty"`
	AccountNumber  string             `bson:"accountNumber,omitempty" json:"accountNumber,omitempty"`
	IsDefault      bool               `bson:"isDefault" json:"isDefault"`
}

// User represents a user in the system
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	Password       string             `bson:"password" json:"-"`
	IsAdmin        bool               `bson:"isAdmin" json:"isAdmin"`
	Phone          string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Addresses      []Address          `bson:"addresses" json:"addresses"`
	PaymentMethods []PaymentMethod    `bson:"paymentMethods" json:"paymentMethods"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DefaultAddress returns the address flagged as default, falling back to the first one.
func (u User) DefaultAddress() (Address, bool) {
	for _, a := range u.Addresses {
		if a.IsDefault {
			return a, true
		}
	}
	if len(u.Addresses) > 0 {
		return u.Addresses[0], true
	}
	return Address{}, false
}

// AddressInput carries the fields of an address request. Nil fields are left untouched on update.
type AddressInput struct {
	Type      *string `json:"type"`
	Street    *string `json:"street"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	ZipCode   *string `json:"zipCode"`
	IsDefault *bool   `json:"isDefault"`
}

// Default reports whether the request marks the address as default
func (in AddressInput) Default() bool {
	return in.IsDefault != nil && *in.IsDefault
}

// Fields returns the provided fields keyed by their document names. An empty
// type keeps the stored one.
func (in AddressInput) Fields() bson.M {
	fields := bson.M{}
	if in.Type != nil && *in.Type != "" {
		fields["type"] = *in.Type
	}
	setString(fields, "street", in.Street)
	setString(fields, "city", in.City)
	setString(fields, "state", in.State)
	setString(fields, "zipCode", in.ZipCode)
	if in.IsDefault != nil {
		fields["isDefault"] = *in.IsDefault
	}
	return fields
}

// Address builds a new address from the request
func (in AddressInput) Address() Address {
	addr := Address{
		ID:        primitive.NewObjectID(),
		Type:      AddressHome,
		IsDefault: in.Default(),
	}
	if in.Type != nil && *in.Type != "" {
		addr.Type = *in.Type
	}
	addr.Street = deref(in.Street)
	addr.City = deref(in.City)
	addr.State = deref(in.State)
	addr.ZipCode = deref(in.ZipCode)
	return addr
}

// PaymentMethodInput carries the fields of a payment method request
type PaymentMethodInput struct {
	Type           *string `json:"type"`
	CardNumber     *string `json:"cardNumber"`
	CardHolderName *string `json:"cardHolderName"`
	ExpiryDate     *string `json:"expiryDate"`
	UpiID          *string `json:"upiId"`
	BankName       *string `json:"bankName"`
	AccountNumber  *string `json:"accountNumber"`
	IsDefault      *bool   `json:"isDefault"`
}

// Default reports whether the request marks the method as default
func (in PaymentMethodInput) Default() bool {
	return in.IsDefault != nil && *in.IsDefault
}

// Fields returns the provided fields keyed by their document names
func (in PaymentMethodInput) Fields() bson.M {
	fields := bson.M{}
	setString(fields, "type", in.Type)
	setString(fields, "cardNumber", in.CardNumber)
	setString(fields, "cardHolderName", in.CardHolderName)
	setString(fields, "expiryDate", in.ExpiryDate)
	setString(fields, "upiId", in.UpiID)
	setString(fields, "bankName", in.BankName)
	setString(fields, "accountNumber", in.AccountNumber)
	if in.IsDefault != nil {
		fields["isDefault"] = *in.IsDefault
	}
	return fields
}

// PaymentMethod builds a new payment method from the request
func (in PaymentMethodInput) PaymentMethod() PaymentMethod {
	return PaymentMethod{
		ID:             primitive.NewObjectID(),
		Type:           deref(in.Type),
		CardNumber:     deref(in.CardNumber),
		CardHolderName: deref(in.CardHolderName),
		ExpiryDate:     deref(in.ExpiryDate),
		UpiID:          deref(in.UpiID),
		BankName:       deref(in.BankName),
		AccountNumber:  deref(in.AccountNumber),
		IsDefault:      in.Default(),
	}
}

func setString(fields bson.M, key string, v *string) {
	if v != nil {
		fields[key] = *v
	}
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
