package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tag represents a tag document referenced from a post's tags set
type Tag struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// CreateTagRequest defines the request body for creating a tag on a post
type CreateTagRequest struct {
	TagName string `json:"tagName" validate:"required,min=1,max=40"`
	PostID  string `json:"postId" validate:"required"`
}
