package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sm8ta/registration_microservice/internal/adapter/postgres"
	"github.com/sm8ta/registration_microservice/internal/core/domain"
	"github.com/sm8ta/registration_microservice/internal/core/ports"
)

const userColumns = `id, first_name, last_name, email, password, date_of_birth, gender,
    phone_numbers, secret_key, roles, verified, is_approved, profile, created_at, updated_at`

type PostgresUserRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) *PostgresUserRepository {
	return &PostgresUserRepository{
		conn,
	}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return nil, err
	}

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	profile, err := json.Marshal(user.Profile)
	if err != nil {
		return nil, fmt.Errorf("marshal profile: %w", err)
	}

	query := `INSERT INTO users (` + userColumns + `)
    VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err = db.ExecContext(ctx, query,
		user.ID.Hex(),
		user.FirstName,
		user.LastName,
		user.Email,
		user.Password,
		user.DateOfBirth,
		string(user.Gender),
		pq.Array(user.PhoneNumbers),
		user.SecretKey,
		pq.Array(user.Roles),
		user.Verified,
		user.IsApproved,
		profile,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case "23505":
				return nil, fmt.Errorf("%w: %w: %s", domain.ErrStoreRejected, domain.ErrDuplicateKey, pqErr.Constraint)
			case "23502", "23514":
				return nil, fmt.Errorf("%w: %s", domain.ErrStoreRejected, pqErr.Message)
			}
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreRejected, err)
	}
	return user, nil
}

func (r *PostgresUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *PostgresUserRepository) GetUserBySecretKey(ctx context.Context, secretKey string) (*domain.User, error) {
	return r.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE secret_key = $1`, secretKey)
}

func (r *PostgresUserRepository) getUser(ctx context.Context, query string, arg string) (*domain.User, error) {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return nil, err
	}

	var (
		user    domain.User
		id      string
		email   sql.NullString
		gender  string
		profile []byte
	)
	err = db.QueryRowContext(ctx, query, arg).Scan(
		&id,
		&user.FirstName,
		&user.LastName,
		&email,
		&user.Password,
		&user.DateOfBirth,
		&gender,
		pq.Array(&user.PhoneNumbers),
		&user.SecretKey,
		pq.Array(&user.Roles),
		&user.Verified,
		&user.IsApproved,
		&profile,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	user.ID, err = primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", id, err)
	}
	user.Email = email.String
	user.Gender = domain.Gender(gender)
	if err := json.Unmarshal(profile, &user.Profile); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}

	return &user, nil
}

var _ ports.UserRepository = (*PostgresUserRepository)(nil)
