package handlers

import (
	"net/http"

	"github.com/instashare/backend/internal/models"
	"github.com/instashare/backend/internal/relations"
	"github.com/instashare/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TagHandler handles tag creation
type TagHandler struct {
	maintainer *relations.Maintainer
}

// NewTagHandler creates a new TagHandler
func NewTagHandler(maintainer *relations.Maintainer) *TagHandler {
	return &TagHandler{maintainer: maintainer}
}

// RegisterTagRoutes registers tag-related routes
func (h *TagHandler) RegisterTagRoutes(g *echo.Group) {
	g.POST("/createTag", h.CreateTag)
}

// CreateTag creates a tag and attaches it to a post's tags set
func (h *TagHandler) CreateTag(c echo.Context) error {
	if _, okID := callerID(c); !okID {
		return fail(c, http.StatusUnauthorized, "Please login first", nil)
	}

	var req models.CreateTagRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Please provide both tagName and postId", err)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Please provide both tagName and postId", err)
	}
	postID, err := primitive.ObjectIDFromHex(req.PostID)
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid post ID", err)
	}

	tag := &models.Tag{Name: req.TagName}
	if err := h.maintainer.AttachTag(c.Request().Context(), tag, postID); err != nil {
		if err == repositories.ErrNotFound {
			return fail(c, http.StatusNotFound, "Post not found", nil)
		}
		return fail(c, http.StatusInternalServerError, "Error creating tag", err)
	}
	return ok(c, http.StatusCreated, "Tag created successfully", tag)
}
