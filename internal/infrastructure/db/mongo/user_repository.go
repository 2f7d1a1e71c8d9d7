package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/handypro/connect-api/internal/core/domain"
	"github.com/handypro/connect-api/internal/core/ports"
)

const collectionUsers = "users"

// UserRepository persists users in MongoDB. Integer ids come from the
// injected Sequence; the unique index on email rejects duplicate
// registrations under concurrent writers.
type UserRepository struct {
	col *mongo.Collection
	seq ports.Sequence
}

func NewUserRepository(db *mongo.Database, seq ports.Sequence) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers), seq: seq}
}

type mongoUser struct {
	ID             int64   `bson:"_id"`
	Email          string  `bson:"email"`
	FullName       string  `bson:"full_name"`
	HashedPassword string  `bson:"hashed_password"`
	Phone          string  `bson:"phone,omitempty"`
	Role           string  `bson:"role"`
	Rating         float64 `bson:"rating"`
	IsActive       bool    `bson:"is_active"`
	CreatedAt      int64   `bson:"created_at"`
	UpdatedAt      int64   `bson:"updated_at"`
}

func toMongoUser(u *domain.User) mongoUser {
	return mongoUser{
		ID:             u.ID,
		Email:          u.Email,
		FullName:       u.FullName,
		HashedPassword: u.HashedPassword,
		Phone:          u.Phone,
		Role:           u.Role,
		Rating:         u.Rating,
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt.Unix(),
		UpdatedAt:      u.UpdatedAt.Unix(),
	}
}

func (mu mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:             mu.ID,
		Email:          mu.Email,
		FullName:       mu.FullName,
		HashedPassword: mu.HashedPassword,
		Phone:          mu.Phone,
		Role:           mu.Role,
		Rating:         mu.Rating,
		IsActive:       mu.IsActive,
		CreatedAt:      unixToTime(mu.CreatedAt),
		UpdatedAt:      unixToTime(mu.UpdatedAt),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.Next(ctx, ports.SeqUsers)
	if err != nil {
		return nil, fmt.Errorf("allocate user id: %w", err)
	}

	created := *user
	created.ID = id

	if _, err := r.col.InsertOne(ctx, toMongoUser(&created)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": user.ID}, toMongoUser(user))
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

// EnsureIndexes creates the unique email index.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
