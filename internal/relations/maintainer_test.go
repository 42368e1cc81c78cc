package relations_test

import (
	"context"
	"testing"

	"github.com/instashare/backend/internal/models"
	"github.com/instashare/backend/internal/relations"
	"github.com/instashare/backend/internal/repositories"
	"github.com/instashare/backend/internal/repositories/memory"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fixture struct {
	users    *memory.UserRepo
	posts    *memory.PostRepo
	comments *memory.CommentRepo
	likes    *memory.LikeRepo
	tags     *memory.TagRepo
	m        *relations.Maintainer
}

func newFixture() *fixture {
	f := &fixture{
		users:    memory.NewUserRepo(),
		posts:    memory.NewPostRepo(),
		comments: memory.NewCommentRepo(),
		likes:    memory.NewLikeRepo(),
		tags:     memory.NewTagRepo(),
	}
	f.m = relations.NewMaintainer(f.users, f.posts, f.comments, f.likes, f.tags)
	return f
}

func (f *fixture) addUser(t *testing.T, userName string) *models.User {
	t.Helper()
	user := &models.User{UserName: userName}
	if err := f.users.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser(%q): %v", userName, err)
	}
	return user
}

func (f *fixture) addPost(t *testing.T, author primitive.ObjectID, title string) *models.Post {
	t.Helper()
	post := &models.Post{Title: title, CreatedBy: author}
	if err := f.m.PublishPost(context.Background(), post); err != nil {
		t.Fatalf("PublishPost(%q): %v", title, err)
	}
	return post
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func TestToggleFollowAddsBothSides(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")

	target, following, err := f.m.ToggleFollow(ctx, alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("ToggleFollow: %v", err)
	}
	if !following {
		t.Fatal("expected edge to be added on first toggle")
	}
	if !containsID(target.Followers, alice.ID) {
		t.Error("target followers missing follower id")
	}

	follower, err := f.users.GetUserByID(ctx, alice.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if !containsID(follower.Following, bob.ID) {
		t.Error("follower following missing target id")
	}
}

func TestToggleFollowTwiceRestoresOriginalState(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")

	if _, _, err := f.m.ToggleFollow(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	target, following, err := f.m.ToggleFollow(ctx, alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if following {
		t.Fatal("expected edge to be removed on second toggle")
	}
	if len(target.Followers) != 0 {
		t.Errorf("target followers = %v, want empty", target.Followers)
	}

	follower, err := f.users.GetUserByID(ctx, alice.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if len(follower.Following) != 0 {
		t.Errorf("follower following = %v, want empty", follower.Following)
	}
}

// Self-follow is accepted: the toggle treats it like any other edge.
func TestToggleFollowSelf(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.addUser(t, "alice")

	target, following, err := f.m.ToggleFollow(ctx, alice.ID, alice.ID)
	if err != nil {
		t.Fatalf("ToggleFollow: %v", err)
	}
	if !following {
		t.Fatal("expected self-follow to be added")
	}
	if !containsID(target.Followers, alice.ID) || !containsID(target.Following, alice.ID) {
		t.Error("self-follow should appear in both followers and following")
	}
}

func TestToggleFollowMissingTarget(t *testing.T) {
	f := newFixture()
	alice := f.addUser(t, "alice")

	_, _, err := f.m.ToggleFollow(context.Background(), alice.ID, primitive.NewObjectID())
	if err != repositories.ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLikeAddsRecordAndMembership(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")
	post := f.addPost(t, alice.ID, "first")

	updated, err := f.m.Like(ctx, bob.ID, post.ID)
	if err != nil {
		t.Fatalf("Like: %v", err)
	}
	if !containsID(updated.Likes, bob.ID) {
		t.Error("post likes missing user id")
	}
	if _, err := f.likes.GetLike(ctx, post.ID, bob.ID); err != nil {
		t.Errorf("join record missing: %v", err)
	}
}

func TestLikeDuplicateIsConflict(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")
	post := f.addPost(t, alice.ID, "first")

	if _, err := f.m.Like(ctx, bob.ID, post.ID); err != nil {
		t.Fatalf("first like: %v", err)
	}
	if _, err := f.m.Like(ctx, bob.ID, post.ID); err != relations.ErrConflict {
		t.Fatalf("second like err = %v, want ErrConflict", err)
	}
	if got := f.likes.Len(); got != 1 {
		t.Errorf("join records = %d, want 1", got)
	}
	updated, _ := f.posts.GetPostByID(ctx, post.ID)
	if got := len(updated.Likes); got != 1 {
		t.Errorf("post likes = %d, want 1", got)
	}
}

func TestUnlikeWithoutLikeIsForbidden(t *testing.T) {
	f := newFixture()
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")
	post := f.addPost(t, alice.ID, "first")

	if err := f.m.Unlike(context.Background(), bob.ID, post.ID); err != relations.ErrForbidden {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestUnlikeRemovesRecordAndMembership(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")
	post := f.addPost(t, alice.ID, "first")

	if _, err := f.m.Like(ctx, bob.ID, post.ID); err != nil {
		t.Fatalf("Like: %v", err)
	}
	if err := f.m.Unlike(ctx, bob.ID, post.ID); err != nil {
		t.Fatalf("Unlike: %v", err)
	}

	if _, err := f.likes.GetLike(ctx, post.ID, bob.ID); err != repositories.ErrNotFound {
		t.Errorf("join record still present, err = %v", err)
	}
	updated, _ := f.posts.GetPostByID(ctx, post.ID)
	if len(updated.Likes) != 0 {
		t.Errorf("post likes = %v, want empty", updated.Likes)
	}
}

func TestAttachCommentAppendsToPost(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.addUser(t, "alice")
	post := f.addPost(t, alice.ID, "first")

	comment := &models.Comment{Comment: "nice", User: alice.ID, Post: post.ID}
	if err := f.m.AttachComment(ctx, comment); err != nil {
		t.Fatalf("AttachComment: %v", err)
	}
	updated, _ := f.posts.GetPostByID(ctx, post.ID)
	if !containsID(updated.Comments, comment.ID) {
		t.Error("post comments missing comment id")
	}
}

func TestAttachCommentMissingPost(t *testing.T) {
	f := newFixture()
	alice := f.addUser(t, "alice")

	comment := &models.Comment{Comment: "nice", User: alice.ID, Post: primitive.NewObjectID()}
	if err := f.m.AttachComment(context.Background(), comment); err != repositories.ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDetachCommentByNonOwnerIsForbidden(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")
	post := f.addPost(t, alice.ID, "first")

	comment := &models.Comment{Comment: "nice", User: alice.ID, Post: post.ID}
	if err := f.m.AttachComment(ctx, comment); err != nil {
		t.Fatalf("AttachComment: %v", err)
	}

	if _, err := f.m.DetachComment(ctx, bob.ID, post.ID, comment.ID); err != relations.ErrForbidden {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}

	// Neither the comment nor the post's set may change on a rejected detach.
	if _, err := f.comments.GetCommentByID(ctx, comment.ID); err != nil {
		t.Errorf("comment removed after forbidden detach: %v", err)
	}
	updated, _ := f.posts.GetPostByID(ctx, post.ID)
	if !containsID(updated.Comments, comment.ID) {
		t.Error("post comments changed after forbidden detach")
	}
}

func TestDetachCommentByOwner(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.addUser(t, "alice")
	post := f.addPost(t, alice.ID, "first")

	comment := &models.Comment{Comment: "nice", User: alice.ID, Post: post.ID}
	if err := f.m.AttachComment(ctx, comment); err != nil {
		t.Fatalf("AttachComment: %v", err)
	}
	if _, err := f.m.DetachComment(ctx, alice.ID, post.ID, comment.ID); err != nil {
		t.Fatalf("DetachComment: %v", err)
	}

	if _, err := f.comments.GetCommentByID(ctx, comment.ID); err != repositories.ErrNotFound {
		t.Errorf("comment still present, err = %v", err)
	}
	updated, _ := f.posts.GetPostByID(ctx, post.ID)
	if len(updated.Comments) != 0 {
		t.Errorf("post comments = %v, want empty", updated.Comments)
	}
}

func TestPublishPostAppendsToAuthor(t *testing.T) {
	f := newFixture()
	alice := f.addUser(t, "alice")
	post := f.addPost(t, alice.ID, "first")

	author, err := f.users.GetUserByID(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if !containsID(author.Posts, post.ID) {
		t.Error("author posts missing post id")
	}
}

func TestRemovePostByNonOwnerIsForbidden(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")
	post := f.addPost(t, alice.ID, "first")

	if _, err := f.m.RemovePost(ctx, bob.ID, post.ID); err != relations.ErrForbidden {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
	if _, err := f.posts.GetPostByID(ctx, post.ID); err != nil {
		t.Errorf("post removed after forbidden delete: %v", err)
	}
}

func TestRemovePostByOwner(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.addUser(t, "alice")
	post := f.addPost(t, alice.ID, "first")

	author, err := f.m.RemovePost(ctx, alice.ID, post.ID)
	if err != nil {
		t.Fatalf("RemovePost: %v", err)
	}
	if containsID(author.Posts, post.ID) {
		t.Error("author posts still contains deleted post id")
	}
	if _, err := f.posts.GetPostByID(ctx, post.ID); err != repositories.ErrNotFound {
		t.Errorf("post still present, err = %v", err)
	}
}

func TestSavePostDuplicateIsConflict(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")
	post := f.addPost(t, alice.ID, "first")

	saved, err := f.m.SavePost(ctx, bob.ID, post.ID)
	if err != nil {
		t.Fatalf("SavePost: %v", err)
	}
	if !containsID(saved.SavedPosts, post.ID) {
		t.Error("savedPosts missing post id")
	}
	if _, err := f.m.SavePost(ctx, bob.ID, post.ID); err != relations.ErrConflict {
		t.Fatalf("second save err = %v, want ErrConflict", err)
	}
}

func TestAttachTag(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.addUser(t, "alice")
	post := f.addPost(t, alice.ID, "first")

	tag := &models.Tag{Name: "travel"}
	if err := f.m.AttachTag(ctx, tag, post.ID); err != nil {
		t.Fatalf("AttachTag: %v", err)
	}
	updated, _ := f.posts.GetPostByID(ctx, post.ID)
	if !containsID(updated.Tags, tag.ID) {
		t.Error("post tags missing tag id")
	}
}
