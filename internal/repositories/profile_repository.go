package repositories

import (
	"context"

	"github.com/instashare/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProfileRepository defines the interface for profile data operations
type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile *models.Profile) error
	GetProfileByID(ctx context.Context, id primitive.ObjectID) (*models.Profile, error)
	LinkUser(ctx context.Context, profileID, userID primitive.ObjectID) error
	UpdateDetails(ctx context.Context, id primitive.ObjectID, details *models.EditProfileRequest) error
}

// MongoProfileRepository implements ProfileRepository for MongoDB
type MongoProfileRepository struct {
	collection *mongo.Collection
}

// NewMongoProfileRepository creates a new MongoProfileRepository
func NewMongoProfileRepository(db *mongo.Database) *MongoProfileRepository {
	return &MongoProfileRepository{collection: db.Collection("profiles")}
}

// CreateProfile inserts a new profile document
func (r *MongoProfileRepository) CreateProfile(ctx context.Context, profile *models.Profile) error {
	if profile.ID.IsZero() {
		profile.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, profile)
	return err
}

// GetProfileByID retrieves a profile by id
func (r *MongoProfileRepository) GetProfileByID(ctx context.Context, id primitive.ObjectID) (*models.Profile, error) {
	var profile models.Profile
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// LinkUser sets the back-reference from a profile to its owning user
func (r *MongoProfileRepository) LinkUser(ctx context.Context, profileID, userID primitive.ObjectID) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": profileID}, bson.M{"$set": bson.M{"user": userID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateDetails updates the editable profile fields
func (r *MongoProfileRepository) UpdateDetails(ctx context.Context, id primitive.ObjectID, details *models.EditProfileRequest) error {
	update := bson.M{
		"$set": bson.M{
			"gender":       details.Gender,
			"dateOfBirth":  details.DateOfBirth,
			"about":        details.About,
			"mobileNumber": details.MobileNumber,
		},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
