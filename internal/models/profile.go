package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Profile holds the additional account details. A profile is created blank
// at signup and stays 1:1 with its owning user.
type Profile struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Gender       string             `json:"gender" bson:"gender"`
	DateOfBirth  string             `json:"dateOfBirth" bson:"dateOfBirth"`
	About        string             `json:"about" bson:"about"`
	MobileNumber string             `json:"mobileNumber" bson:"mobileNumber"`
	User         primitive.ObjectID `json:"user,omitempty" bson:"user,omitempty"`
}

// EditProfileRequest defines the request body for updating profile details
type EditProfileRequest struct {
	Gender       string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	DateOfBirth  string `json:"dateOfBirth,omitempty"`
	About        string `json:"about,omitempty" validate:"omitempty,max=300"`
	MobileNumber string `json:"mobileNumber,omitempty" validate:"omitempty,min=7,max=15"`
}
