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

// CommentHandler handles the comment lifecycle
type CommentHandler struct {
	maintainer        *relations.Maintainer
	commentRepository repositories.CommentRepository
	userRepository    repositories.UserRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(maintainer *relations.Maintainer, commentRepo repositories.CommentRepository, userRepo repositories.UserRepository) *CommentHandler {
	return &CommentHandler{
		maintainer:        maintainer,
		commentRepository: commentRepo,
		userRepository:    userRepo,
	}
}

// RegisterCommentRoutes registers the protected comment routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/createComment", h.CreateComment)
	g.POST("/deleteComment", h.DeleteComment)
	g.POST("/editComment", h.EditComment)
}

// RegisterPublicCommentRoutes registers the comment routes that need no credential
func (h *CommentHandler) RegisterPublicCommentRoutes(e *echo.Echo) {
	e.POST("/viewComments", h.ViewComments)
}

// CreateComment attaches a new comment to a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	uid, okID := callerID(c)
	if !okID {
		return fail(c, http.StatusUnauthorized, "Invalid token", nil)
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Please provide both comment and postId", err)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Please provide both comment and postId", err)
	}
	postID, err := primitive.ObjectIDFromHex(req.PostID)
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid post ID", err)
	}

	comment := &models.Comment{
		Comment: req.Comment,
		User:    uid,
		Post:    postID,
	}
	if err := h.maintainer.AttachComment(c.Request().Context(), comment); err != nil {
		if err == repositories.ErrNotFound {
			return fail(c, http.StatusNotFound, "Post not found", nil)
		}
		return fail(c, http.StatusInternalServerError, "Error occurred while creating the comment", err)
	}
	return ok(c, http.StatusCreated, "Comment created successfully", comment)
}

// DeleteComment removes a comment the caller owns from its post
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	uid, okID := callerID(c)
	if !okID {
		return fail(c, http.StatusUnauthorized, "Invalid token", nil)
	}

	var req models.DeleteCommentRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Please provide both postId and commentId", err)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Please provide both postId and commentId", err)
	}
	postID, err := primitive.ObjectIDFromHex(req.PostID)
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid post ID", err)
	}
	commentID, err := primitive.ObjectIDFromHex(req.CommentID)
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid comment ID", err)
	}

	comment, err := h.maintainer.DetachComment(c.Request().Context(), uid, postID, commentID)
	if err != nil {
		switch {
		case err == repositories.ErrNotFound:
			return fail(c, http.StatusNotFound, "Comment not found", nil)
		case errors.Is(err, relations.ErrForbidden):
			return fail(c, http.StatusForbidden, "You cannot delete someone else's comment", nil)
		}
		return fail(c, http.StatusInternalServerError, "Error occurred while deleting the comment", err)
	}
	return ok(c, http.StatusOK, "Comment deleted successfully", comment)
}

// EditComment replaces the text of a comment the caller owns
func (h *CommentHandler) EditComment(c echo.Context) error {
	uid, okID := callerID(c)
	if !okID {
		return fail(c, http.StatusUnauthorized, "Invalid token", nil)
	}

	var req models.EditCommentRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Please provide comment, postId and commentId", err)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Please provide comment, postId and commentId", err)
	}
	postID, err := primitive.ObjectIDFromHex(req.PostID)
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid post ID", err)
	}
	commentID, err := primitive.ObjectIDFromHex(req.CommentID)
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid comment ID", err)
	}

	ctx := c.Request().Context()
	comment, err := h.commentRepository.GetCommentForPost(ctx, commentID, postID)
	if err != nil {
		if err == repositories.ErrNotFound {
			return fail(c, http.StatusNotFound, "Comment not found for this post", nil)
		}
		return fail(c, http.StatusInternalServerError, "Error occurred while editing the comment", err)
	}
	if comment.User != uid {
		return fail(c, http.StatusForbidden, "You cannot edit someone else's comment", nil)
	}

	if err := h.commentRepository.UpdateComment(ctx, commentID, req.Comment); err != nil {
		return fail(c, http.StatusInternalServerError, "Error occurred while editing the comment", err)
	}
	comment, err = h.commentRepository.GetCommentByID(ctx, commentID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Error occurred while editing the comment", err)
	}
	return ok(c, http.StatusOK, "Comment updated successfully", comment)
}

// ViewComments lists all comments on a post, each with its author resolved
func (h *CommentHandler) ViewComments(c echo.Context) error {
	var req models.ViewCommentsRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Please provide postId", err)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Please provide postId", err)
	}
	postID, err := primitive.ObjectIDFromHex(req.PostID)
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid post ID", err)
	}

	ctx := c.Request().Context()
	comments, err := h.commentRepository.GetCommentsByPostID(ctx, postID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Error occurred while fetching comments", err)
	}

	authors := map[primitive.ObjectID]*models.User{}
	resolved := make([]models.CommentWithAuthor, 0, len(comments))
	for _, comment := range comments {
		author, cached := authors[comment.User]
		if !cached {
			author, err = h.userRepository.GetUserByID(ctx, comment.User)
			if err != nil && err != repositories.ErrNotFound {
				return fail(c, http.StatusInternalServerError, "Error occurred while fetching comments", err)
			}
			authors[comment.User] = author
		}
		resolved = append(resolved, models.CommentWithAuthor{Comment: comment, Author: author})
	}
	return ok(c, http.StatusOK, "Comments fetched successfully", resolved)
}
