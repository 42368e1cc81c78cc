// Package memory provides in-memory repository implementations used by
// tests. Reads return copies so that held snapshots do not alias later
// writes, matching how fresh database reads behave.
package memory

import (
	"context"

	"github.com/instashare/backend/internal/models"
	"github.com/instashare/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func copyIDs(ids []primitive.ObjectID) []primitive.ObjectID {
	return append([]primitive.ObjectID{}, ids...)
}

func addToSet(set []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	for _, v := range set {
		if v == id {
			return set
		}
	}
	return append(set, id)
}

func pull(set []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	out := set[:0]
	for _, v := range set {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// UserRepo is an in-memory repositories.UserRepository.
type UserRepo struct {
	users map[primitive.ObjectID]*models.User
}

// NewUserRepo creates an empty UserRepo.
func NewUserRepo() *UserRepo {
	return &UserRepo{users: map[primitive.ObjectID]*models.User{}}
}

func (r *UserRepo) CreateUser(_ context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.Posts == nil {
		user.Posts = []primitive.ObjectID{}
	}
	if user.SavedPosts == nil {
		user.SavedPosts = []primitive.ObjectID{}
	}
	if user.Followers == nil {
		user.Followers = []primitive.ObjectID{}
	}
	if user.Following == nil {
		user.Following = []primitive.ObjectID{}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *UserRepo) get(id primitive.ObjectID) (*models.User, error) {
	user, found := r.users[id]
	if !found {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (r *UserRepo) GetUserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := r.get(id)
	if err != nil {
		return nil, err
	}
	cp := *user
	cp.Posts = copyIDs(user.Posts)
	cp.SavedPosts = copyIDs(user.SavedPosts)
	cp.Followers = copyIDs(user.Followers)
	cp.Following = copyIDs(user.Following)
	return &cp, nil
}

func (r *UserRepo) GetUserByUserName(ctx context.Context, userName string) (*models.User, error) {
	for id, user := range r.users {
		if user.UserName == userName {
			return r.GetUserByID(ctx, id)
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *UserRepo) GetUsers(ctx context.Context) ([]models.User, error) {
	var out []models.User
	for id := range r.users {
		user, _ := r.GetUserByID(ctx, id)
		out = append(out, *user)
	}
	return out, nil
}

func (r *UserRepo) GetUsersExcluding(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	excluded := map[primitive.ObjectID]bool{}
	for _, id := range ids {
		excluded[id] = true
	}
	var out []models.User
	for id := range r.users {
		if excluded[id] {
			continue
		}
		user, _ := r.GetUserByID(ctx, id)
		out = append(out, *user)
	}
	return out, nil
}

func (r *UserRepo) AddFollower(_ context.Context, userID, followerID primitive.ObjectID) error {
	user, err := r.get(userID)
	if err != nil {
		return err
	}
	user.Followers = addToSet(user.Followers, followerID)
	return nil
}

func (r *UserRepo) RemoveFollower(_ context.Context, userID, followerID primitive.ObjectID) error {
	user, err := r.get(userID)
	if err != nil {
		return err
	}
	user.Followers = pull(user.Followers, followerID)
	return nil
}

func (r *UserRepo) AddFollowing(_ context.Context, userID, followeeID primitive.ObjectID) error {
	user, err := r.get(userID)
	if err != nil {
		return err
	}
	user.Following = addToSet(user.Following, followeeID)
	return nil
}

func (r *UserRepo) RemoveFollowing(_ context.Context, userID, followeeID primitive.ObjectID) error {
	user, err := r.get(userID)
	if err != nil {
		return err
	}
	user.Following = pull(user.Following, followeeID)
	return nil
}

func (r *UserRepo) AddPostRef(_ context.Context, userID, postID primitive.ObjectID) error {
	user, err := r.get(userID)
	if err != nil {
		return err
	}
	user.Posts = addToSet(user.Posts, postID)
	return nil
}

func (r *UserRepo) RemovePostRef(_ context.Context, userID, postID primitive.ObjectID) error {
	user, err := r.get(userID)
	if err != nil {
		return err
	}
	user.Posts = pull(user.Posts, postID)
	return nil
}

func (r *UserRepo) AddSavedPost(_ context.Context, userID, postID primitive.ObjectID) error {
	user, err := r.get(userID)
	if err != nil {
		return err
	}
	user.SavedPosts = addToSet(user.SavedPosts, postID)
	return nil
}

// PostRepo is an in-memory repositories.PostRepository.
type PostRepo struct {
	posts map[primitive.ObjectID]*models.Post
}

// NewPostRepo creates an empty PostRepo.
func NewPostRepo() *PostRepo {
	return &PostRepo{posts: map[primitive.ObjectID]*models.Post{}}
}

func (r *PostRepo) CreatePost(_ context.Context, post *models.Post) error {
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	if post.Likes == nil {
		post.Likes = []primitive.ObjectID{}
	}
	if post.Comments == nil {
		post.Comments = []primitive.ObjectID{}
	}
	if post.Tags == nil {
		post.Tags = []primitive.ObjectID{}
	}
	cp := *post
	r.posts[post.ID] = &cp
	return nil
}

func (r *PostRepo) get(id primitive.ObjectID) (*models.Post, error) {
	post, found := r.posts[id]
	if !found {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

func (r *PostRepo) GetPostByID(_ context.Context, id primitive.ObjectID) (*models.Post, error) {
	post, err := r.get(id)
	if err != nil {
		return nil, err
	}
	cp := *post
	cp.Likes = copyIDs(post.Likes)
	cp.Comments = copyIDs(post.Comments)
	cp.Tags = copyIDs(post.Tags)
	return &cp, nil
}

func (r *PostRepo) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	var out []models.Post
	for id := range r.posts {
		post, _ := r.GetPostByID(ctx, id)
		out = append(out, *post)
	}
	return out, nil
}

func (r *PostRepo) UpdatePost(_ context.Context, id primitive.ObjectID, title, body string) error {
	post, err := r.get(id)
	if err != nil {
		return err
	}
	post.Title = title
	post.Body = body
	return nil
}

func (r *PostRepo) DeletePost(_ context.Context, id primitive.ObjectID) error {
	if _, found := r.posts[id]; !found {
		return repositories.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *PostRepo) AddLike(_ context.Context, postID, userID primitive.ObjectID) error {
	post, err := r.get(postID)
	if err != nil {
		return err
	}
	post.Likes = addToSet(post.Likes, userID)
	return nil
}

func (r *PostRepo) RemoveLike(_ context.Context, postID, userID primitive.ObjectID) error {
	post, err := r.get(postID)
	if err != nil {
		return err
	}
	post.Likes = pull(post.Likes, userID)
	return nil
}

func (r *PostRepo) AddComment(_ context.Context, postID, commentID primitive.ObjectID) error {
	post, err := r.get(postID)
	if err != nil {
		return err
	}
	post.Comments = addToSet(post.Comments, commentID)
	return nil
}

func (r *PostRepo) RemoveComment(_ context.Context, postID, commentID primitive.ObjectID) error {
	post, err := r.get(postID)
	if err != nil {
		return err
	}
	post.Comments = pull(post.Comments, commentID)
	return nil
}

func (r *PostRepo) AddTag(_ context.Context, postID, tagID primitive.ObjectID) error {
	post, err := r.get(postID)
	if err != nil {
		return err
	}
	post.Tags = addToSet(post.Tags, tagID)
	return nil
}

// CommentRepo is an in-memory repositories.CommentRepository.
type CommentRepo struct {
	comments map[primitive.ObjectID]*models.Comment
}

// NewCommentRepo creates an empty CommentRepo.
func NewCommentRepo() *CommentRepo {
	return &CommentRepo{comments: map[primitive.ObjectID]*models.Comment{}}
}

func (r *CommentRepo) CreateComment(_ context.Context, comment *models.Comment) error {
	if comment.ID.IsZero() {
		comment.ID = primitive.NewObjectID()
	}
	cp := *comment
	r.comments[comment.ID] = &cp
	return nil
}

func (r *CommentRepo) GetCommentByID(_ context.Context, id primitive.ObjectID) (*models.Comment, error) {
	comment, found := r.comments[id]
	if !found {
		return nil, repositories.ErrNotFound
	}
	cp := *comment
	return &cp, nil
}

func (r *CommentRepo) GetCommentForPost(ctx context.Context, id, postID primitive.ObjectID) (*models.Comment, error) {
	comment, err := r.GetCommentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.Post != postID {
		return nil, repositories.ErrNotFound
	}
	return comment, nil
}

func (r *CommentRepo) GetCommentsByPostID(_ context.Context, postID primitive.ObjectID) ([]models.Comment, error) {
	var out []models.Comment
	for _, comment := range r.comments {
		if comment.Post == postID {
			out = append(out, *comment)
		}
	}
	return out, nil
}

func (r *CommentRepo) UpdateComment(_ context.Context, id primitive.ObjectID, text string) error {
	comment, found := r.comments[id]
	if !found {
		return repositories.ErrNotFound
	}
	comment.Comment = text
	return nil
}

func (r *CommentRepo) DeleteComment(_ context.Context, id primitive.ObjectID) error {
	if _, found := r.comments[id]; !found {
		return repositories.ErrNotFound
	}
	delete(r.comments, id)
	return nil
}

type likeKey struct {
	post primitive.ObjectID
	user primitive.ObjectID
}

// LikeRepo is an in-memory repositories.LikeRepository.
type LikeRepo struct {
	likes map[likeKey]*models.Like
}

// NewLikeRepo creates an empty LikeRepo.
func NewLikeRepo() *LikeRepo {
	return &LikeRepo{likes: map[likeKey]*models.Like{}}
}

func (r *LikeRepo) CreateLike(_ context.Context, like *models.Like) error {
	if like.ID.IsZero() {
		like.ID = primitive.NewObjectID()
	}
	cp := *like
	r.likes[likeKey{post: like.Post, user: like.User}] = &cp
	return nil
}

func (r *LikeRepo) GetLike(_ context.Context, postID, userID primitive.ObjectID) (*models.Like, error) {
	like, found := r.likes[likeKey{post: postID, user: userID}]
	if !found {
		return nil, repositories.ErrNotFound
	}
	cp := *like
	return &cp, nil
}

func (r *LikeRepo) DeleteLike(_ context.Context, postID, userID primitive.ObjectID) error {
	key := likeKey{post: postID, user: userID}
	if _, found := r.likes[key]; !found {
		return repositories.ErrNotFound
	}
	delete(r.likes, key)
	return nil
}

// Len reports the number of stored join records.
func (r *LikeRepo) Len() int {
	return len(r.likes)
}

// TagRepo is an in-memory repositories.TagRepository.
type TagRepo struct {
	tags map[primitive.ObjectID]*models.Tag
}

// NewTagRepo creates an empty TagRepo.
func NewTagRepo() *TagRepo {
	return &TagRepo{tags: map[primitive.ObjectID]*models.Tag{}}
}

func (r *TagRepo) CreateTag(_ context.Context, tag *models.Tag) error {
	if tag.ID.IsZero() {
		tag.ID = primitive.NewObjectID()
	}
	cp := *tag
	r.tags[tag.ID] = &cp
	return nil
}

// ProfileRepo is an in-memory repositories.ProfileRepository.
type ProfileRepo struct {
	profiles map[primitive.ObjectID]*models.Profile
}

// NewProfileRepo creates an empty ProfileRepo.
func NewProfileRepo() *ProfileRepo {
	return &ProfileRepo{profiles: map[primitive.ObjectID]*models.Profile{}}
}

func (r *ProfileRepo) CreateProfile(_ context.Context, profile *models.Profile) error {
	if profile.ID.IsZero() {
		profile.ID = primitive.NewObjectID()
	}
	cp := *profile
	r.profiles[profile.ID] = &cp
	return nil
}

func (r *ProfileRepo) GetProfileByID(_ context.Context, id primitive.ObjectID) (*models.Profile, error) {
	profile, found := r.profiles[id]
	if !found {
		return nil, repositories.ErrNotFound
	}
	cp := *profile
	return &cp, nil
}

func (r *ProfileRepo) LinkUser(_ context.Context, profileID, userID primitive.ObjectID) error {
	profile, found := r.profiles[profileID]
	if !found {
		return repositories.ErrNotFound
	}
	profile.User = userID
	return nil
}

func (r *ProfileRepo) UpdateDetails(_ context.Context, id primitive.ObjectID, details *models.EditProfileRequest) error {
	profile, found := r.profiles[id]
	if !found {
		return repositories.ErrNotFound
	}
	profile.Gender = details.Gender
	profile.DateOfBirth = details.DateOfBirth
	profile.About = details.About
	profile.MobileNumber = details.MobileNumber
	return nil
}
