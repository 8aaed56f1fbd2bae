package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/deepmindconcepts/coaching-platform/internal/core/domain"
)

const usersCollection = "users"

// UserDirectory is the Mongo-backed account directory. The unique index on
// email makes Insert atomic with respect to the duplicate check: a losing
// concurrent insert surfaces as a duplicate-key error.
type UserDirectory struct {
	coll *mongo.Collection
}

func NewUserDirectory(db *mongo.Database) *UserDirectory {
	return &UserDirectory{coll: db.Collection(usersCollection)}
}

// EnsureIndexes creates the unique email index. Call once at startup.
func (d *UserDirectory) EnsureIndexes(ctx context.Context) error {
	_, err := d.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure user indexes: %w", err)
	}
	return nil
}

type mongoUser struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Email      string             `bson:"email"`
	SecretHash string             `bson:"secret_hash"`
	Role       string             `bson:"role"`
	Name       string             `bson:"name"`
	Avatar     string             `bson:"avatar,omitempty"`
}

func (d *UserDirectory) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := mongoUser{
		Email:      user.Email,
		SecretHash: user.SecretHash,
		Role:       user.Role,
		Name:       user.Name,
		Avatar:     user.Avatar,
	}

	res, err := d.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (d *UserDirectory) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var mu mongoUser
	if err := d.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &domain.User{
		ID:         mu.ID.Hex(),
		Email:      mu.Email,
		SecretHash: mu.SecretHash,
		Role:       mu.Role,
		Name:       mu.Name,
		Avatar:     mu.Avatar,
	}, nil
}

func (d *UserDirectory) List(ctx context.Context) ([]domain.User, error) {
	cur, err := d.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.User
	for cur.Next(ctx) {
		var mu mongoUser
		if err := cur.Decode(&mu); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		out = append(out, domain.User{
			ID:         mu.ID.Hex(),
			Email:      mu.Email,
			SecretHash: mu.SecretHash,
			Role:       mu.Role,
			Name:       mu.Name,
			Avatar:     mu.Avatar,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return out, nil
}

func (d *UserDirectory) Count(ctx context.Context) (int64, error) {
	n, err := d.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
