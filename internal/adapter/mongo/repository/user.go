package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	mongoadapter "github.com/sm8ta/registration_microservice/internal/adapter/mongo"
	"github.com/sm8ta/registration_microservice/internal/core/domain"
	"github.com/sm8ta/registration_microservice/internal/core/ports"
)

type MongoUserRepository struct {
	conn *mongoadapter.Connection
}

func NewUserRepository(conn *mongoadapter.Connection) *MongoUserRepository {
	return &MongoUserRepository{
		conn: conn,
	}
}

func (r *MongoUserRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.conn.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(mongoadapter.UsersCollection), nil
}

func (r *MongoUserRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	_, err = coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: %w: %v", domain.ErrStoreRejected, domain.ErrDuplicateKey, err)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreRejected, err)
	}
	return user, nil
}

func (r *MongoUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) GetUserBySecretKey(ctx context.Context, secretKey string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"secretKey": secretKey})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	user := &domain.User{}
	err = coll.FindOne(ctx, filter).Decode(user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

var _ ports.UserRepository = (*MongoUserRepository)(nil)
