package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment represents a comment on a post
type Comment struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Comment   string             `json:"comment" bson:"comment"`
	User      primitive.ObjectID `json:"user" bson:"user"`
	Post      primitive.ObjectID `json:"post" bson:"post"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Comment string `json:"comment" validate:"required,min=1,max=500"`
	PostID  string `json:"postId" validate:"required"`
}

// DeleteCommentRequest defines the request body for deleting a comment
type DeleteCommentRequest struct {
	PostID    string `json:"postId" validate:"required"`
	CommentID string `json:"commentId" validate:"required"`
}

// EditCommentRequest defines the request body for editing a comment
type EditCommentRequest struct {
	Comment   string `json:"comment" validate:"required,min=1,max=500"`
	PostID    string `json:"postId" validate:"required"`
	CommentID string `json:"commentId" validate:"required"`
}

// ViewCommentsRequest defines the request body for listing a post's comments
type ViewCommentsRequest struct {
	PostID string `json:"postId" validate:"required"`
}

// CommentWithAuthor pairs a comment with its resolved author
type CommentWithAuthor struct {
	Comment Comment `json:"comment"`
	Author  *User   `json:"author,omitempty"`
}
