package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account document. The password hash is never serialized
// to JSON. The posts/savedPosts/followers/following id sets are denormalized
// back-references mutated only through relations.Maintainer.
type User struct {
	ID         primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	UserName   string               `json:"userName" bson:"userName"`
	FullName   string               `json:"fullName" bson:"fullName"`
	Email      string               `json:"email" bson:"email"`
	Password   string               `json:"-" bson:"password"`
	Profile    primitive.ObjectID   `json:"profile,omitempty" bson:"profile,omitempty"`
	Image      string               `json:"image" bson:"image"`
	Posts      []primitive.ObjectID `json:"posts" bson:"posts"`
	SavedPosts []primitive.ObjectID `json:"savedPosts" bson:"savedPosts"`
	Followers  []primitive.ObjectID `json:"followers" bson:"followers"`
	Following  []primitive.ObjectID `json:"following" bson:"following"`
	CreatedAt  time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at" bson:"updated_at"`
}

// SignupRequest defines the request body for registering a new user
type SignupRequest struct {
	UserName string `json:"userName" validate:"required,min=3,max=30"`
	FullName string `json:"fullName" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest defines the request body for authenticating a user
type LoginRequest struct {
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// FollowRequest defines the request body for the follow/unfollow toggle
type FollowRequest struct {
	HeroID string `json:"heroId" validate:"required"`
}

// SavePostRequest defines the request body for bookmarking a post
type SavePostRequest struct {
	PostID string `json:"postId" validate:"required"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	Username string `json:"username"`
	UserID   string `json:"id"`
	Profile  string `json:"profile"`
	jwt.RegisteredClaims
}
