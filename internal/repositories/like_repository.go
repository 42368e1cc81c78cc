package repositories

import (
	"context"
	"time"

	"github.com/instashare/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// LikeRepository defines the interface for like join-record operations
type LikeRepository interface {
	CreateLike(ctx context.Context, like *models.Like) error
	GetLike(ctx context.Context, postID, userID primitive.ObjectID) (*models.Like, error)
	DeleteLike(ctx context.Context, postID, userID primitive.ObjectID) error
}

// MongoLikeRepository implements LikeRepository for MongoDB
type MongoLikeRepository struct {
	collection *mongo.Collection
}

// NewMongoLikeRepository creates a new MongoLikeRepository
func NewMongoLikeRepository(db *mongo.Database) *MongoLikeRepository {
	return &MongoLikeRepository{collection: db.Collection("likes")}
}

// CreateLike inserts a new like join record
func (r *MongoLikeRepository) CreateLike(ctx context.Context, like *models.Like) error {
	if like.ID.IsZero() {
		like.ID = primitive.NewObjectID()
	}
	like.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, like)
	return err
}

// GetLike retrieves the join record for a (post, user) pair
func (r *MongoLikeRepository) GetLike(ctx context.Context, postID, userID primitive.ObjectID) (*models.Like, error) {
	var like models.Like
	err := r.collection.FindOne(ctx, bson.M{"post": postID, "user": userID}).Decode(&like)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &like, nil
}

// DeleteLike removes the join record for a (post, user) pair
func (r *MongoLikeRepository) DeleteLike(ctx context.Context, postID, userID primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"post": postID, "user": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
