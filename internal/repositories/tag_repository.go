package repositories

import (
	"context"
	"time"

	"github.com/instashare/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// TagRepository defines the interface for tag data operations
type TagRepository interface {
	CreateTag(ctx context.Context, tag *models.Tag) error
}

// MongoTagRepository implements TagRepository for MongoDB
type MongoTagRepository struct {
	collection *mongo.Collection
}

// NewMongoTagRepository creates a new MongoTagRepository
func NewMongoTagRepository(db *mongo.Database) *MongoTagRepository {
	return &MongoTagRepository{collection: db.Collection("tags")}
}

// CreateTag inserts a new tag document
func (r *MongoTagRepository) CreateTag(ctx context.Context, tag *models.Tag) error {
	if tag.ID.IsZero() {
		tag.ID = primitive.NewObjectID()
	}
	tag.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, tag)
	return err
}
