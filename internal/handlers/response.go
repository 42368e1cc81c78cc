package handlers

import (
	"github.com/instashare/backend/internal/middleware"
	"github.com/instashare/backend/internal/models"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Response is the uniform envelope returned by every endpoint.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func ok(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, Response{Success: true, Message: message, Data: data})
}

func fail(c echo.Context, status int, message string, err error) error {
	resp := Response{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	return c.JSON(status, resp)
}

// callerID extracts the authenticated user's id from the claims the auth
// middleware stored on the context.
func callerID(c echo.Context) (primitive.ObjectID, bool) {
	claims, okClaims := c.Get(middleware.ContextUserKey).(*models.JwtCustomClaims)
	if !okClaims {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

func currentClaims(c echo.Context) *models.JwtCustomClaims {
	claims, _ := c.Get(middleware.ContextUserKey).(*models.JwtCustomClaims)
	return claims
}
