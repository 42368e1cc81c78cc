package handlers

import (
	"net/http"

	"github.com/instashare/backend/internal/models"
	"github.com/instashare/backend/internal/relations"
	"github.com/instashare/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FollowHandler handles the follow/unfollow toggle
type FollowHandler struct {
	maintainer *relations.Maintainer
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(maintainer *relations.Maintainer) *FollowHandler {
	return &FollowHandler{maintainer: maintainer}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/follow", h.Follow)
}

// Follow toggles the follow edge between the caller and the target user
func (h *FollowHandler) Follow(c echo.Context) error {
	uid, okID := callerID(c)
	if !okID {
		return fail(c, http.StatusUnauthorized, "Please login first", nil)
	}

	var req models.FollowRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Please provide heroId", err)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Please provide heroId", err)
	}
	heroID, err := primitive.ObjectIDFromHex(req.HeroID)
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid heroId", err)
	}

	target, following, err := h.maintainer.ToggleFollow(c.Request().Context(), uid, heroID)
	if err != nil {
		if err == repositories.ErrNotFound {
			return fail(c, http.StatusNotFound, "User not found", nil)
		}
		return fail(c, http.StatusInternalServerError, "Internal server error", err)
	}

	message := "Unfollowed"
	if following {
		message = "Followed"
	}
	return ok(c, http.StatusOK, message, target)
}
