package memory

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sm8ta/registration_microservice/internal/core/domain"
	"github.com/sm8ta/registration_microservice/internal/core/ports"
)

// UserRepository keeps records in process memory with the same unique
// constraints as the document store. Used for local runs and tests.
type UserRepository struct {
	mu          sync.RWMutex
	byID        map[primitive.ObjectID]domain.User
	byEmail     map[string]primitive.ObjectID
	bySecretKey map[string]primitive.ObjectID
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:        make(map[primitive.ObjectID]domain.User),
		byEmail:     make(map[string]primitive.ObjectID),
		bySecretKey: make(map[string]primitive.ObjectID),
	}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if _, ok := r.byID[user.ID]; ok {
		return nil, duplicate("_id")
	}
	// Sparse: records without an email never conflict.
	if user.Email != "" {
		if _, ok := r.byEmail[user.Email]; ok {
			return nil, duplicate("email")
		}
	}
	if _, ok := r.bySecretKey[user.SecretKey]; ok {
		return nil, duplicate("secretKey")
	}

	r.byID[user.ID] = clone(*user)
	if user.Email != "" {
		r.byEmail[user.Email] = user.ID
	}
	r.bySecretKey[user.SecretKey] = user.ID

	return user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.find(ctx, r.byEmail, email)
}

func (r *UserRepository) GetUserBySecretKey(ctx context.Context, secretKey string) (*domain.User, error) {
	return r.find(ctx, r.bySecretKey, secretKey)
}

// Count reports the number of stored records.
func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

func (r *UserRepository) find(ctx context.Context, index map[string]primitive.ObjectID, key string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := index[key]
	if !ok {
		return nil, nil
	}
	user := clone(r.byID[id])
	return &user, nil
}

func duplicate(field string) error {
	return fmt.Errorf("%w: %w: %s", domain.ErrStoreRejected, domain.ErrDuplicateKey, field)
}

func clone(u domain.User) domain.User {
	u.PhoneNumbers = append([]string(nil), u.PhoneNumbers...)
	u.Roles = append([]string(nil), u.Roles...)
	return u
}

var _ ports.UserRepository = (*UserRepository)(nil)
