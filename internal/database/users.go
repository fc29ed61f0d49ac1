package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/caffeinetrackr/caffeinetrackr/internal/auth"
)

// uniqueViolation is the PostgreSQL error code for unique_violation.
const uniqueViolation = "23505"

// Users is an auth.UserStore backed by the users table.
type Users struct {
	db *DB
}

var _ auth.UserStore = (*Users)(nil)

// NewUsers creates a user store over db.
func NewUsers(db *DB) *Users {
	return &Users{db: db}
}

// CreateUser inserts a user. A duplicate email returns auth.ErrEmailTaken.
func (u *Users) CreateUser(ctx context.Context, email, passwordHash string) (*auth.User, error) {
	user := auth.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
	}

	err := u.db.Pool.QueryRow(ctx,
		`INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3) RETURNING created_at`,
		user.ID, user.Email, user.PasswordHash,
	).Scan(&user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, auth.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return &user, nil
}

// GetUserByEmail loads a user. A missing row returns auth.ErrUserNotFound.
func (u *Users) GetUserByEmail(ctx context.Context, email string) (*auth.User, error) {
	var user auth.User

	err := u.db.Pool.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at FROM users WHERE email = $1`,
		email,
	).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, auth.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}

	return &user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
