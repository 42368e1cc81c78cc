package handlers

import (
	"net/http"

	"github.com/instashare/backend/internal/models"
	"github.com/instashare/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserHandler handles current-user, profile and user-listing requests
type UserHandler struct {
	userRepository    repositories.UserRepository
	profileRepository repositories.ProfileRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, profileRepo repositories.ProfileRepository) *UserHandler {
	return &UserHandler{
		userRepository:    userRepo,
		profileRepository: profileRepo,
	}
}

// RegisterUserRoutes registers user-related routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.POST("/findCurrentUser", h.FindCurrentUser)
	g.POST("/editProfile", h.EditProfile)
	g.POST("/allUsers", h.AllUsers)
	g.POST("/userNotFollowed", h.UsersNotFollowed)
}

// FindCurrentUser returns the authenticated user with its profile resolved
func (h *UserHandler) FindCurrentUser(c echo.Context) error {
	uid, okID := callerID(c)
	if !okID {
		return fail(c, http.StatusUnauthorized, "Please login first", nil)
	}

	ctx := c.Request().Context()
	user, err := h.userRepository.GetUserByID(ctx, uid)
	if err != nil {
		if err == repositories.ErrNotFound {
			return fail(c, http.StatusNotFound, "User not found", nil)
		}
		return fail(c, http.StatusInternalServerError, "Error fetching user", err)
	}

	profile, err := h.profileRepository.GetProfileByID(ctx, user.Profile)
	if err != nil && err != repositories.ErrNotFound {
		return fail(c, http.StatusInternalServerError, "Error fetching user", err)
	}

	return ok(c, http.StatusOK, "User fetched successfully", echo.Map{
		"user":    user,
		"profile": profile,
	})
}

// EditProfile updates the additional details on the caller's profile
func (h *UserHandler) EditProfile(c echo.Context) error {
	claims := currentClaims(c)
	if claims == nil {
		return fail(c, http.StatusUnauthorized, "Please login first", nil)
	}
	profileID, err := primitive.ObjectIDFromHex(claims.Profile)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "Please login first", nil)
	}

	var req models.EditProfileRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request payload", err)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request payload", err)
	}

	ctx := c.Request().Context()
	if err := h.profileRepository.UpdateDetails(ctx, profileID, &req); err != nil {
		if err == repositories.ErrNotFound {
			return fail(c, http.StatusNotFound, "Profile not found", nil)
		}
		return fail(c, http.StatusInternalServerError, "Error updating profile", err)
	}

	profile, err := h.profileRepository.GetProfileByID(ctx, profileID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Error updating profile", err)
	}
	return ok(c, http.StatusOK, "Profile updated successfully", profile)
}

// AllUsers returns every registered user
func (h *UserHandler) AllUsers(c echo.Context) error {
	users, err := h.userRepository.GetUsers(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Internal server error", err)
	}
	return ok(c, http.StatusOK, "Users fetched successfully", users)
}

// UsersNotFollowed returns users the caller does not follow yet, excluding
// the caller itself
func (h *UserHandler) UsersNotFollowed(c echo.Context) error {
	uid, okID := callerID(c)
	if !okID {
		return fail(c, http.StatusUnauthorized, "Please login first", nil)
	}

	ctx := c.Request().Context()
	user, err := h.userRepository.GetUserByID(ctx, uid)
	if err != nil {
		if err == repositories.ErrNotFound {
			return fail(c, http.StatusNotFound, "User not found", nil)
		}
		return fail(c, http.StatusInternalServerError, "Internal server error", err)
	}

	excluded := append([]primitive.ObjectID{user.ID}, user.Following...)
	users, err := h.userRepository.GetUsersExcluding(ctx, excluded)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Internal server error", err)
	}
	return ok(c, http.StatusOK, "Users not followed", users)
}
