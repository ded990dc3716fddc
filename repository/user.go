package repository

import (
	"context"
	"fmt"
	"time"

	"food-ordering/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	addressesField      = "addresses"
	paymentMethodsField = "paymentMethods"
)

// MongoUserRepository stores users. Embedded list changes are single
// document updates, so clearing the previous default and setting a new one
// cannot interleave with another request for the same user.
type MongoUserRepository struct {
	Collection *mongo.Collection
}

// NewUserRepository creates a new MongoUserRepository
func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{
		Collection: db.Collection(UsersCollection),
	}
}

// EnsureIndexes creates the unique email index
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

// Create inserts a new user
func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	now := time.Now()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.Addresses == nil {
		user.Addresses = []models.Address{}
	}
	if user.PaymentMethods == nil {
		user.PaymentMethods = []models.PaymentMethod{}
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.Collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByEmail looks a user up by email
func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// FindByID looks a user up by id
func (r *MongoUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	if err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// UpdateProfile sets top level fields and returns the updated user
func (r *MongoUserRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.User, error) {
	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		set[k] = v
	}
	user, err := r.findOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicateEmail
	}
	return user, err
}

// AddAddress appends addr, clearing the other defaults when addr is the default
func (r *MongoUserRepository) AddAddress(ctx context.Context, userID primitive.ObjectID, addr models.Address) (*models.User, error) {
	return r.pushEmbedded(ctx, userID, addressesField, addr, addr.IsDefault)
}

// UpdateAddress merges fields into the address addrID
func (r *MongoUserRepository) UpdateAddress(ctx context.Context, userID, addrID primitive.ObjectID, fields bson.M, makeDefault bool) (*models.User, error) {
	return r.mergeEmbedded(ctx, userID, addressesField, addrID, fields, makeDefault)
}

// DeleteAddress removes the address addrID
func (r *MongoUserRepository) DeleteAddress(ctx context.Context, userID, addrID primitive.ObjectID) (*models.User, error) {
	return r.pullEmbedded(ctx, userID, addressesField, addrID)
}

// AddPaymentMethod appends method, clearing the other defaults when method is the default
func (r *MongoUserRepository) AddPaymentMethod(ctx context.Context, userID primitive.ObjectID, method models.PaymentMethod) (*models.User, error) {
	return r.pushEmbedded(ctx, userID, paymentMethodsField, method, method.IsDefault)
}

// UpdatePaymentMethod merges fields into the payment method methodID
func (r *MongoUserRepository) UpdatePaymentMethod(ctx context.Context, userID, methodID primitive.ObjectID, fields bson.M, makeDefault bool) (*models.User, error) {
	return r.mergeEmbedded(ctx, userID, paymentMethodsField, methodID, fields, makeDefault)
}

// DeletePaymentMethod removes the payment method methodID
func (r *MongoUserRepository) DeletePaymentMethod(ctx context.Context, userID, methodID primitive.ObjectID) (*models.User, error) {
	return r.pullEmbedded(ctx, userID, paymentMethodsField, methodID)
}

// DeleteAll removes every user
func (r *MongoUserRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.Collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("delete users: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) findOneAndUpdate(ctx context.Context, filter bson.M, update interface{}) (*models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	if err := r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&user); err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// withoutDefault rewrites every entry of the list expression with isDefault false
func withoutDefault(list interface{}) bson.M {
	return bson.M{"$map": bson.M{
		"input": list,
		"as":    "entry",
		"in":    bson.M{"$mergeObjects": bson.A{"$$entry", bson.M{"isDefault": false}}},
	}}
}

func (r *MongoUserRepository) pushEmbedded(ctx context.Context, userID primitive.ObjectID, field string, doc interface{}, makeDefault bool) (*models.User, error) {
	var existing interface{} = bson.M{"$ifNull": bson.A{"$" + field, bson.A{}}}
	if makeDefault {
		existing = withoutDefault(existing)
	}
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			field:       bson.M{"$concatArrays": bson.A{existing, bson.A{bson.M{"$literal": doc}}}},
			"updatedAt": time.Now(),
		}}},
	}
	return r.findOneAndUpdate(ctx, bson.M{"_id": userID}, update)
}

func (r *MongoUserRepository) mergeEmbedded(ctx context.Context, userID primitive.ObjectID, field string, id primitive.ObjectID, fields bson.M, makeDefault bool) (*models.User, error) {
	var others interface{} = "$$entry"
	if makeDefault {
		others = bson.M{"$mergeObjects": bson.A{"$$entry", bson.M{"isDefault": false}}}
	}
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			field: bson.M{"$map": bson.M{
				"input": "$" + field,
				"as":    "entry",
				"in": bson.M{"$cond": bson.M{
					"if":   bson.M{"$eq": bson.A{"$$entry._id", id}},
					"then": bson.M{"$mergeObjects": bson.A{"$$entry", bson.M{"$literal": fields}}},
					"else": others,
				}},
			}},
			"updatedAt": time.Now(),
		}}},
	}
	return r.findOneAndUpdate(ctx, bson.M{"_id": userID, field + "._id": id}, update)
}

func (r *MongoUserRepository) pullEmbedded(ctx context.Context, userID primitive.ObjectID, field string, id primitive.ObjectID) (*models.User, error) {
	update := bson.M{
		"$pull": bson.M{field: bson.M{"_id": id}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	return r.findOneAndUpdate(ctx, bson.M{"_id": userID, field + "._id": id}, update)
}
