package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Like is the join record for a (post, user) like pair. It is the source of
// truth for like uniqueness; the post's likes array mirrors it.
type Like struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Post      primitive.ObjectID `json:"post" bson:"post"`
	User      primitive.ObjectID `json:"user" bson:"user"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// LikeRequest defines the request body for liking or unliking a post
type LikeRequest struct {
	PostID string `json:"postId" validate:"required"`
}
