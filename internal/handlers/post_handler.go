package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/instashare/backend/internal/models"
	"github.com/instashare/backend/internal/relations"
	"github.com/instashare/backend/internal/repositories"
	"github.com/instashare/backend/internal/storage"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var supportedImageTypes = []string{"jpeg", "jpg", "png"}

// PostHandler handles post lifecycle requests
type PostHandler struct {
	maintainer     *relations.Maintainer
	postRepository repositories.PostRepository
	userRepository repositories.UserRepository
	uploader       storage.Uploader
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(maintainer *relations.Maintainer, postRepo repositories.PostRepository, userRepo repositories.UserRepository, uploader storage.Uploader) *PostHandler {
	return &PostHandler{
		maintainer:     maintainer,
		postRepository: postRepo,
		userRepository: userRepo,
		uploader:       uploader,
	}
}

// RegisterPostRoutes registers the protected post routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/createPost", h.CreatePost)
	g.POST("/editPost", h.EditPost)
	g.POST("/deletePost", h.DeletePost)
	g.POST("/savePost", h.SavePost)
}

// RegisterPublicPostRoutes registers the post routes that need no credential
func (h *PostHandler) RegisterPublicPostRoutes(e *echo.Echo) {
	e.GET("/getAllPost", h.GetAllPost)
}

// CreatePost uploads the post image, persists the post, then appends it to
// the author's posts set. The three steps run in that order with no
// compensation if a later one fails.
func (h *PostHandler) CreatePost(c echo.Context) error {
	uid, okID := callerID(c)
	if !okID {
		return fail(c, http.StatusUnauthorized, "Please login first", nil)
	}

	title := c.FormValue("title")
	file, err := c.FormFile("image")
	if title == "" || err != nil {
		return fail(c, http.StatusBadRequest, "Title and image are required", nil)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
	if !isSupportedImageType(ext) {
		return fail(c, http.StatusBadRequest, "Unsupported file type", nil)
	}

	src, err := file.Open()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Error creating post", err)
	}
	defer src.Close()

	ctx := c.Request().Context()
	publicID := uid.Hex() + "_" + time.Now().Format("20060102150405")
	imageURL, err := h.uploader.UploadImage(ctx, src, publicID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Error creating post", err)
	}

	post := &models.Post{
		Title:     title,
		Body:      c.FormValue("body"),
		CreatedBy: uid,
		PostImage: imageURL,
	}
	if err := h.maintainer.PublishPost(ctx, post); err != nil {
		return fail(c, http.StatusInternalServerError, "Error creating post", err)
	}

	return ok(c, http.StatusOK, "Post created successfully", post)
}

// EditPost replaces the title and body of a post the caller owns. Partial
// edits are rejected: title, body and postId must all be present.
func (h *PostHandler) EditPost(c echo.Context) error {
	uid, okID := callerID(c)
	if !okID {
		return fail(c, http.StatusUnauthorized, "Please login first", nil)
	}

	var req models.EditPostRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "All fields are required", err)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "All fields are required", err)
	}
	postID, err := primitive.ObjectIDFromHex(req.PostID)
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid post ID", err)
	}

	ctx := c.Request().Context()
	post, err := h.postRepository.GetPostByID(ctx, postID)
	if err != nil {
		if err == repositories.ErrNotFound {
			return fail(c, http.StatusNotFound, "Post not found", nil)
		}
		return fail(c, http.StatusInternalServerError, "Error updating post", err)
	}
	if post.CreatedBy != uid {
		return fail(c, http.StatusForbidden, "Unauthorized", nil)
	}

	if err := h.postRepository.UpdatePost(ctx, postID, req.Title, req.Body); err != nil {
		return fail(c, http.StatusInternalServerError, "Error updating post", err)
	}
	post, err = h.postRepository.GetPostByID(ctx, postID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Error updating post", err)
	}
	return ok(c, http.StatusOK, "Post updated successfully", post)
}

// DeletePost removes a post the caller owns and pulls it from the caller's
// posts set. Comments under the post stay behind.
func (h *PostHandler) DeletePost(c echo.Context) error {
	uid, okID := callerID(c)
	if !okID {
		return fail(c, http.StatusUnauthorized, "Please login first", nil)
	}

	var req models.DeletePostRequest
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

	user, err := h.maintainer.RemovePost(c.Request().Context(), uid, postID)
	if err != nil {
		switch {
		case err == repositories.ErrNotFound:
			return fail(c, http.StatusNotFound, "Post not found", nil)
		case errors.Is(err, relations.ErrForbidden):
			return fail(c, http.StatusForbidden, "Unauthorized", nil)
		}
		return fail(c, http.StatusInternalServerError, "Error deleting post", err)
	}
	return ok(c, http.StatusOK, "Post deleted successfully", user)
}

// GetAllPost returns every post with its author resolved; 204 when empty
func (h *PostHandler) GetAllPost(c echo.Context) error {
	ctx := c.Request().Context()
	posts, err := h.postRepository.GetAllPosts(ctx)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Error fetching posts", err)
	}
	if len(posts) == 0 {
		return c.NoContent(http.StatusNoContent)
	}

	authors := map[primitive.ObjectID]*models.User{}
	feed := make([]models.PostFeedItem, 0, len(posts))
	for _, post := range posts {
		author, cached := authors[post.CreatedBy]
		if !cached {
			author, err = h.userRepository.GetUserByID(ctx, post.CreatedBy)
			if err != nil && err != repositories.ErrNotFound {
				return fail(c, http.StatusInternalServerError, "Error fetching posts", err)
			}
			authors[post.CreatedBy] = author
		}
		feed = append(feed, models.PostFeedItem{Post: post, Author: author})
	}
	return ok(c, http.StatusOK, "Posts fetched successfully", feed)
}

// SavePost bookmarks a post into the caller's savedPosts set
func (h *PostHandler) SavePost(c echo.Context) error {
	uid, okID := callerID(c)
	if !okID {
		return fail(c, http.StatusUnauthorized, "Please login first", nil)
	}

	var req models.SavePostRequest
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

	user, err := h.maintainer.SavePost(c.Request().Context(), uid, postID)
	if err != nil {
		switch {
		case err == repositories.ErrNotFound:
			return fail(c, http.StatusNotFound, "Post not found", nil)
		case errors.Is(err, relations.ErrConflict):
			return fail(c, http.StatusConflict, "Post already saved", nil)
		}
		return fail(c, http.StatusInternalServerError, "Error saving post", err)
	}
	return ok(c, http.StatusOK, "Post saved successfully", user)
}

func isSupportedImageType(ext string) bool {
	for _, t := range supportedImageTypes {
		if ext == t {
			return true
		}
	}
	return false
}
