package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents a post document. The likes/comments/tags id sets are
// denormalized back-references owned by relations.Maintainer.
type Post struct {
	ID        primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Title     string               `json:"title" bson:"title"`
	Body      string               `json:"body" bson:"body"`
	CreatedBy primitive.ObjectID   `json:"createdBy" bson:"createdBy"`
	PostImage string               `json:"postImage" bson:"postImage"`
	Likes     []primitive.ObjectID `json:"likes" bson:"likes"`
	Comments  []primitive.ObjectID `json:"comments" bson:"comments"`
	Tags      []primitive.ObjectID `json:"tags" bson:"tags"`
	CreatedAt time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time            `json:"updated_at" bson:"updated_at"`
}

// EditPostRequest defines the request body for updating an existing post.
// All three fields must be present; partial edits are rejected.
type EditPostRequest struct {
	Title  string `json:"title" validate:"required,min=1,max=120"`
	Body   string `json:"body" validate:"required,min=1,max=2000"`
	PostID string `json:"postId" validate:"required"`
}

// DeletePostRequest defines the request body for deleting a post
type DeletePostRequest struct {
	PostID string `json:"postId" validate:"required"`
}

// PostFeedItem pairs a post with its resolved author for listing responses
type PostFeedItem struct {
	Post   Post  `json:"post"`
	Author *User `json:"author,omitempty"`
}
