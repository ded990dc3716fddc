package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"food-ordering/models"
	"food-ordering/repository"
	"food-ordering/utils"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// Placeholders for the initial address when registration omits them
const (
	defaultState   = "N/A"
	defaultZipCode = "000000"
)

// UserController handles user-related requests
type UserController struct {
	Repo repository.UserRepository
}

// NewUserController creates a new UserController
func NewUserController(repo repository.UserRepository) *UserController {
	return &UserController{Repo: repo}
}

// RegisterRequest is the registration body. Address and City become the
// initial home address.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
}

// LoginRequest is the login body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileRequest is the profile update body. Empty fields are left unchanged.
type ProfileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	ID        primitive.ObjectID `json:"_id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Addresses []models.Address   `json:"addresses"`
	Address   string             `json:"address"`
	City      string             `json:"city"`
	Token     string             `json:"token"`
}

// ProfileResponse is returned by a profile update
type ProfileResponse struct {
	ID             primitive.ObjectID     `json:"_id"`
	Name           string                 `json:"name"`
	Email          string                 `json:"email"`
	Phone          string                 `json:"phone,omitempty"`
	Addresses      []models.Address       `json:"addresses"`
	PaymentMethods []models.PaymentMethod `json:"paymentMethods"`
	Token          string                 `json:"token"`
}

// Register handles user registration
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" || req.Address == "" || req.City == "" {
		utils.WriteError(w, http.StatusBadRequest, "Please enter all fields")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	_, err := uc.Repo.FindByEmail(ctx, req.Email)
	if err == nil {
		utils.WriteError(w, http.StatusBadRequest, "User already exists")
		return
	}
	if !errors.Is(err, repository.ErrNotFound) {
		utils.WriteServerError(w, "register lookup", err)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.WriteServerError(w, "hash password", err)
		return
	}

	state := req.State
	if state == "" {
		state = defaultState
	}
	zipCode := req.ZipCode
	if zipCode == "" {
		zipCode = defaultZipCode
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Addresses: []models.Address{{
			ID:        primitive.NewObjectID(),
			Type:      models.AddressHome,
			Street:    req.Address,
			City:      req.City,
			State:     state,
			ZipCode:   zipCode,
			IsDefault: true,
		}},
		PaymentMethods: []models.PaymentMethod{},
	}

	if err := uc.Repo.Create(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			utils.WriteError(w, http.StatusBadRequest, "User already exists")
			return
		}
		utils.WriteServerError(w, "create user", err)
		return
	}
	log.Printf("User registered: %s", user.Email)

	uc.writeAuth(w, http.StatusCreated, &user)
}

// Login handles user login
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := uc.Repo.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if errors.Is(err, repository.ErrNotFound) {
		utils.WriteError(w, http.StatusBadRequest, "Invalid credentials")
		return
	}
	if err != nil {
		utils.WriteServerError(w, "login lookup", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	uc.writeAuth(w, http.StatusOK, user)
}

func (uc *UserController) writeAuth(w http.ResponseWriter, status int, user *models.User) {
	token, err := utils.GenerateJWT(user.ID.Hex())
	if err != nil {
		utils.WriteServerError(w, "generate token", err)
		return
	}

	resp := AuthResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Addresses: user.Addresses,
		Token:     token,
	}
	if resp.Addresses == nil {
		resp.Addresses = []models.Address{}
	}
	if len(user.Addresses) > 0 {
		resp.Address = user.Addresses[0].Street
		resp.City = user.Addresses[0].City
	}
	utils.WriteJSON(w, status, resp)
}

// GetProfile returns the authenticated user without the password hash
func (uc *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := uc.Repo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		utils.WriteError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		utils.WriteServerError(w, "fetch profile", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, user)
}

// UpdateProfile updates name, email, phone and password and issues a fresh token
func (uc *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	fields := bson.M{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		fields["email"] = email
	}
	if req.Phone != "" {
		fields["phone"] = req.Phone
	}
	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.WriteServerError(w, "hash password", err)
			return
		}
		fields["password"] = string(hashedPassword)
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := uc.Repo.UpdateProfile(ctx, userID, fields)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		utils.WriteError(w, http.StatusNotFound, "User not found")
		return
	case errors.Is(err, repository.ErrDuplicateEmail):
		utils.WriteError(w, http.StatusBadRequest, "User already exists")
		return
	case err != nil:
		utils.WriteServerError(w, "update profile", err)
		return
	}

	token, err := utils.GenerateJWT(user.ID.Hex())
	if err != nil {
		utils.WriteServerError(w, "generate token", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, ProfileResponse{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Phone:          user.Phone,
		Addresses:      nonNilAddresses(user.Addresses),
		PaymentMethods: nonNilPaymentMethods(user.PaymentMethods),
		Token:          token,
	})
}

// AddAddress saves a new address and returns the address list
func (uc *UserController) AddAddress(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var in models.AddressInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if !validAddressType(in.Type) {
		utils.WriteError(w, http.StatusBadRequest, "Invalid address type")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := uc.Repo.AddAddress(ctx, userID, in.Address())
	if errors.Is(err, repository.ErrNotFound) {
		utils.WriteError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		utils.WriteServerError(w, "add address", err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, nonNilAddresses(user.Addresses))
}

// UpdateAddress changes the given fields of one address
func (uc *UserController) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	addrID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, http.StatusNotFound, "Address not found")
		return
	}

	var in models.AddressInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if !validAddressType(in.Type) {
		utils.WriteError(w, http.StatusBadRequest, "Invalid address type")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := uc.Repo.UpdateAddress(ctx, userID, addrID, in.Fields(), in.Default())
	if errors.Is(err, repository.ErrNotFound) {
		utils.WriteError(w, http.StatusNotFound, "Address not found")
		return
	}
	if err != nil {
		utils.WriteServerError(w, "update address", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, nonNilAddresses(user.Addresses))
}

// DeleteAddress removes one address
func (uc *UserController) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	addrID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, http.StatusNotFound, "Address not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := uc.Repo.DeleteAddress(ctx, userID, addrID)
	if errors.Is(err, repository.ErrNotFound) {
		utils.WriteError(w, http.StatusNotFound, "Address not found")
		return
	}
	if err != nil {
		utils.WriteServerError(w, "delete address", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, nonNilAddresses(user.Addresses))
}

// AddPaymentMethod saves a new payment method and returns the list
func (uc *UserController) AddPaymentMethod(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var in models.PaymentMethodInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if in.Type == nil || !models.ValidPaymentMethodType(*in.Type) {
		utils.WriteError(w, http.StatusBadRequest, "Invalid payment method type")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := uc.Repo.AddPaymentMethod(ctx, userID, in.PaymentMethod())
	if errors.Is(err, repository.ErrNotFound) {
		utils.WriteError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		utils.WriteServerError(w, "add payment method", err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, nonNilPaymentMethods(user.PaymentMethods))
}

// UpdatePaymentMethod changes the given fields of one payment method
func (uc *UserController) UpdatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	methodID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, http.StatusNotFound, "Payment method not found")
		return
	}

	var in models.PaymentMethodInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if in.Type != nil && !models.ValidPaymentMethodType(*in.Type) {
		utils.WriteError(w, http.StatusBadRequest, "Invalid payment method type")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := uc.Repo.UpdatePaymentMethod(ctx, userID, methodID, in.Fields(), in.Default())
	if errors.Is(err, repository.ErrNotFound) {
		utils.WriteError(w, http.StatusNotFound, "Payment method not found")
		return
	}
	if err != nil {
		utils.WriteServerError(w, "update payment method", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, nonNilPaymentMethods(user.PaymentMethods))
}

// DeletePaymentMethod removes one payment method
func (uc *UserController) DeletePaymentMethod(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	methodID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, http.StatusNotFound, "Payment method not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := uc.Repo.DeletePaymentMethod(ctx, userID, methodID)
	if errors.Is(err, repository.ErrNotFound) {
		utils.WriteError(w, http.StatusNotFound, "Payment method not found")
		return
	}
	if err != nil {
		utils.WriteServerError(w, "delete payment method", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, nonNilPaymentMethods(user.PaymentMethods))
}

// validAddressType accepts an absent or empty type, which defaults to home
func validAddressType(t *string) bool {
	return t == nil || *t == "" || models.ValidAddressType(*t)
}

func nonNilAddresses(list []models.Address) []models.Address {
	if list == nil {
		return []models.Address{}
	}
	return list
}

func nonNilPaymentMethods(list []models.PaymentMethod) []models.PaymentMethod {
	if list == nil {
		return []models.PaymentMethod{}
	}
	return list
}
