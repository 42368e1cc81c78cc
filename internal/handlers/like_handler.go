package handlers

import (
	"errors"
	"net/http"

	"github.com/instashare/backend/internal/models"
	"github.com/instashare/backend/internal/relations"
	"github.com/instashare/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LikeHandler handles like and dislike requests
type LikeHandler struct {
	maintainer *relations.Maintainer
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(maintainer *relations.Maintainer) *LikeHandler {
	return &LikeHandler{maintainer: maintainer}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/like", h.Like)
	g.POST("/dislike", h.Dislike)
}

// Like records a like for the caller on a post. Liking twice is a conflict.
func (h *LikeHandler) Like(c echo.Context) error {
	uid, okID := callerID(c)
	if !okID {
		return fail(c, http.StatusUnauthorized, "Unauthorized", nil)
	}

	var req models.LikeRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Post ID is required", err)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Post ID is required", err)
	}
	postID, err := primitive.ObjectIDFromHex(req.PostID)
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid post ID", err)
	}

	post, err := h.maintainer.Like(c.Request().Context(), uid, postID)
	if err != nil {
		switch {
		case err == repositories.ErrNotFound:
			return fail(c, http.StatusNotFound, "Post not found", nil)
		case errors.Is(err, relations.ErrConflict):
			return fail(c, http.StatusConflict, "Already liked this post", nil)
		}
		return fail(c, http.StatusInternalServerError, "Internal server error", err)
	}
	return ok(c, http.StatusOK, "Post liked", post)
}

// Dislike removes the caller's like from a post. Unliking a never-liked
// post is an error, not a no-op.
func (h *LikeHandler) Dislike(c echo.Context) error {
	uid, okID := callerID(c)
	if !okID {
		return fail(c, http.StatusUnauthorized, "Unauthorized", nil)
	}

	var req models.LikeRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Post ID is required", err)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Post ID is required", err)
	}
	postID, err := primitive.ObjectIDFromHex(req.PostID)
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid post ID", err)
	}

	if err := h.maintainer.Unlike(c.Request().Context(), uid, postID); err != nil {
		switch {
		case err == repositories.ErrNotFound:
			return fail(c, http.StatusNotFound, "Post not found", nil)
		case errors.Is(err, relations.ErrForbidden):
			return fail(c, http.StatusForbidden, "You haven't liked this post", nil)
		}
		return fail(c, http.StatusInternalServerError, "Internal server error", err)
	}
	return ok(c, http.StatusOK, "Post disliked", nil)
}
