package repositories

import (
	"context"
	"time"

	"github.com/instashare/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetUserByUserName(ctx context.Context, userName string) (*models.User, error)
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUsersExcluding(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	AddFollower(ctx context.Context, userID, followerID primitive.ObjectID) error
	RemoveFollower(ctx context.Context, userID, followerID primitive.ObjectID) error
	AddFollowing(ctx context.Context, userID, followeeID primitive.ObjectID) error
	RemoveFollowing(ctx context.Context, userID, followeeID primitive.ObjectID) error
	AddPostRef(ctx context.Context, userID, postID primitive.ObjectID) error
	RemovePostRef(ctx context.Context, userID, postID primitive.ObjectID) error
	AddSavedPost(ctx context.Context, userID, postID primitive.ObjectID) error
}

// MongoUserRepository implements UserRepository for MongoDB
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new MongoUserRepository
func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{collection: db.Collection("users")}
}

// CreateUser inserts a new user document
func (r *MongoUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
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
	_, err := r.collection.InsertOne(ctx, user)
	return err
}

// GetUserByID retrieves a user by id
func (r *MongoUserRepository) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByUserName retrieves a user by its unique username
func (r *MongoUserRepository) GetUserByUserName(ctx context.Context, userName string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"userName": userName}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUsers retrieves all users
func (r *MongoUserRepository) GetUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUsersExcluding retrieves all users whose ids are not in the given set
func (r *MongoUserRepository) GetUsersExcluding(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$nin": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *MongoUserRepository) updateSet(ctx context.Context, userID primitive.ObjectID, op string, field string, value primitive.ObjectID) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		op:     bson.M{field: value},
		"$set": bson.M{"updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddFollower adds a follower id to the user's followers set
func (r *MongoUserRepository) AddFollower(ctx context.Context, userID, followerID primitive.ObjectID) error {
	return r.updateSet(ctx, userID, "$addToSet", "followers", followerID)
}

// RemoveFollower removes a follower id from the user's followers set
func (r *MongoUserRepository) RemoveFollower(ctx context.Context, userID, followerID primitive.ObjectID) error {
	return r.updateSet(ctx, userID, "$pull", "followers", followerID)
}

// AddFollowing adds a followee id to the user's following set
func (r *MongoUserRepository) AddFollowing(ctx context.Context, userID, followeeID primitive.ObjectID) error {
	return r.updateSet(ctx, userID, "$addToSet", "following", followeeID)
}

// RemoveFollowing removes a followee id from the user's following set
func (r *MongoUserRepository) RemoveFollowing(ctx context.Context, userID, followeeID primitive.ObjectID) error {
	return r.updateSet(ctx, userID, "$pull", "following", followeeID)
}

// AddPostRef adds a post id to the user's posts set
func (r *MongoUserRepository) AddPostRef(ctx context.Context, userID, postID primitive.ObjectID) error {
	return r.updateSet(ctx, userID, "$addToSet", "posts", postID)
}

// RemovePostRef removes a post id from the user's posts set
func (r *MongoUserRepository) RemovePostRef(ctx context.Context, userID, postID primitive.ObjectID) error {
	return r.updateSet(ctx, userID, "$pull", "posts", postID)
}

// AddSavedPost adds a post id to the user's savedPosts set
func (r *MongoUserRepository) AddSavedPost(ctx context.Context, userID, postID primitive.ObjectID) error {
	return r.updateSet(ctx, userID, "$addToSet", "savedPosts", postID)
}
