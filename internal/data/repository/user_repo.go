package repository

import (
	"context"
	"errors"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var userColumns = []string{"id", "email", "password"}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash); err != nil {
		return nil, err
	}
	return &u, nil
}

func userInsertArgs(u *entity.User) []any {
	return []any{u.Email, u.PasswordHash}
}

func userPublic(u *entity.User) *entity.UserPublic {
	return &entity.UserPublic{ID: u.ID, Email: u.Email}
}

// UserRepository stores users with the password hash hidden behind the
// public shape. Only FindByEmail exposes the hash, for login checks.
type UserRepository struct {
	*Store[entity.User, entity.UserPublic]
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) *UserRepository {
	log = log.With(zap.String("repository", "user"))
	return &UserRepository{
		Store: NewStore(db, log, "users", userColumns, scanUser, userInsertArgs, userPublic),
		db:    db,
		log:   log,
	}
}

// FindByEmail returns the full user record including the password hash
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT id, email, password FROM users WHERE email = $1`

	u, err := scanUser(r.db.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return u, nil
}
