// Package relations maintains the denormalized relationship edges between
// documents: follower/following mirrors, the like join record plus the
// post's likes set, and the comment/post and post/author back-references.
//
// Every edge spans two documents and is applied as two (or more) sequential
// writes with no transaction and no rollback: a failure after the first
// write surfaces the error and leaves the model partially updated. All array
// writes go through $addToSet/$pull-style repository operations, so a
// replayed step never produces duplicates.
package relations

import (
	"context"

	"github.com/instashare/backend/internal/models"
	"github.com/instashare/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Maintainer applies relationship edge updates across documents.
type Maintainer struct {
	users    repositories.UserRepository
	posts    repositories.PostRepository
	comments repositories.CommentRepository
	likes    repositories.LikeRepository
	tags     repositories.TagRepository
}

// NewMaintainer creates a Maintainer over the given repositories.
func NewMaintainer(
	users repositories.UserRepository,
	posts repositories.PostRepository,
	comments repositories.CommentRepository,
	likes repositories.LikeRepository,
	tags repositories.TagRepository,
) *Maintainer {
	return &Maintainer{
		users:    users,
		posts:    posts,
		comments: comments,
		likes:    likes,
		tags:     tags,
	}
}

// ToggleFollow flips the follow edge between follower and target. If the
// follower is already in the target's followers set it is removed from both
// sides, otherwise added to both sides. Returns the target's post-update
// state and whether the follower now follows the target.
//
// Self-follow is not rejected; the toggle handles it like any other edge.
func (m *Maintainer) ToggleFollow(ctx context.Context, followerID, targetID primitive.ObjectID) (*models.User, bool, error) {
	target, err := m.users.GetUserByID(ctx, targetID)
	if err != nil {
		return nil, false, err
	}

	if containsID(target.Followers, followerID) {
		if err := m.users.RemoveFollower(ctx, targetID, followerID); err != nil {
			return nil, false, err
		}
		if err := m.users.RemoveFollowing(ctx, followerID, targetID); err != nil {
			return nil, false, err
		}
		target, err = m.users.GetUserByID(ctx, targetID)
		return target, false, err
	}

	if err := m.users.AddFollower(ctx, targetID, followerID); err != nil {
		return nil, false, err
	}
	if err := m.users.AddFollowing(ctx, followerID, targetID); err != nil {
		return nil, false, err
	}
	target, err = m.users.GetUserByID(ctx, targetID)
	return target, true, err
}

// Like creates the like join record for (post, user) and mirrors the user
// into the post's likes set. A pair that already has a join record is
// rejected with ErrConflict, never toggled. Returns the post-update post.
func (m *Maintainer) Like(ctx context.Context, userID, postID primitive.ObjectID) (*models.Post, error) {
	if _, err := m.posts.GetPostByID(ctx, postID); err != nil {
		return nil, err
	}

	if _, err := m.likes.GetLike(ctx, postID, userID); err == nil {
		return nil, ErrConflict
	} else if err != repositories.ErrNotFound {
		return nil, err
	}

	like := &models.Like{Post: postID, User: userID}
	if err := m.likes.CreateLike(ctx, like); err != nil {
		return nil, err
	}
	if err := m.posts.AddLike(ctx, postID, userID); err != nil {
		return nil, err
	}
	return m.posts.GetPostByID(ctx, postID)
}

// Unlike removes the like join record for (post, user) and pulls the user
// from the post's likes set. A missing join record is an error, not a no-op:
// it returns ErrForbidden.
func (m *Maintainer) Unlike(ctx context.Context, userID, postID primitive.ObjectID) error {
	if _, err := m.posts.GetPostByID(ctx, postID); err != nil {
		return err
	}

	if _, err := m.likes.GetLike(ctx, postID, userID); err != nil {
		if err == repositories.ErrNotFound {
			return ErrForbidden
		}
		return err
	}

	if err := m.likes.DeleteLike(ctx, postID, userID); err != nil {
		return err
	}
	return m.posts.RemoveLike(ctx, postID, userID)
}

// AttachComment inserts the comment and appends its id to the post's
// comments set. The post must exist.
func (m *Maintainer) AttachComment(ctx context.Context, comment *models.Comment) error {
	if _, err := m.posts.GetPostByID(ctx, comment.Post); err != nil {
		return err
	}
	if err := m.comments.CreateComment(ctx, comment); err != nil {
		return err
	}
	return m.posts.AddComment(ctx, comment.Post, comment.ID)
}

// DetachComment deletes the comment and pulls its id from the post's
// comments set. Only the comment's author may detach it.
func (m *Maintainer) DetachComment(ctx context.Context, callerID, postID, commentID primitive.ObjectID) (*models.Comment, error) {
	if _, err := m.posts.GetPostByID(ctx, postID); err != nil {
		return nil, err
	}
	comment, err := m.comments.GetCommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.User != callerID {
		return nil, ErrForbidden
	}

	if err := m.comments.DeleteComment(ctx, commentID); err != nil {
		return nil, err
	}
	if err := m.posts.RemoveComment(ctx, postID, commentID); err != nil {
		return nil, err
	}
	return comment, nil
}

// PublishPost inserts the post and appends its id to the author's posts set.
func (m *Maintainer) PublishPost(ctx context.Context, post *models.Post) error {
	if err := m.posts.CreatePost(ctx, post); err != nil {
		return err
	}
	return m.users.AddPostRef(ctx, post.CreatedBy, post.ID)
}

// RemovePost deletes the post and pulls its id from the author's posts set.
// Only the author may remove it. Comments under the post are left orphaned.
// Returns the author's post-update state.
func (m *Maintainer) RemovePost(ctx context.Context, callerID, postID primitive.ObjectID) (*models.User, error) {
	post, err := m.posts.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.CreatedBy != callerID {
		return nil, ErrForbidden
	}

	if err := m.posts.DeletePost(ctx, postID); err != nil {
		return nil, err
	}
	if err := m.users.RemovePostRef(ctx, callerID, postID); err != nil {
		return nil, err
	}
	return m.users.GetUserByID(ctx, callerID)
}

// SavePost appends the post id to the user's savedPosts set. Saving an
// already-saved post is rejected with ErrConflict. Returns the user's
// post-update state.
func (m *Maintainer) SavePost(ctx context.Context, userID, postID primitive.ObjectID) (*models.User, error) {
	if _, err := m.posts.GetPostByID(ctx, postID); err != nil {
		return nil, err
	}
	user, err := m.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if containsID(user.SavedPosts, postID) {
		return nil, ErrConflict
	}

	if err := m.users.AddSavedPost(ctx, userID, postID); err != nil {
		return nil, err
	}
	return m.users.GetUserByID(ctx, userID)
}

// AttachTag inserts the tag and appends its id to the post's tags set.
func (m *Maintainer) AttachTag(ctx context.Context, tag *models.Tag, postID primitive.ObjectID) error {
	if _, err := m.posts.GetPostByID(ctx, postID); err != nil {
		return err
	}
	if err := m.tags.CreateTag(ctx, tag); err != nil {
		return err
	}
	return m.posts.AddTag(ctx, postID, tag.ID)
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
