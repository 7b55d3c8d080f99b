package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (phone_number, password_hash, name, registered_on)
	          VALUES ($1, $2, $3, $4) RETURNING user_id`
	u.RegisteredOn = time.Now()
	return r.db.QueryRowContext(ctx, query, u.PhoneNumber, u.PasswordHash, u.Name, u.RegisteredOn).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT user_id, phone_number, password_hash, name, registered_on, last_login_on FROM users WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.PhoneNumber, &u.PasswordHash, &u.Name, &u.RegisteredOn, &u.LastLoginOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT user_id, phone_number, password_hash, name, registered_on, last_login_on FROM users WHERE phone_number = $1`
	err := r.db.QueryRowContext(ctx, query, phone).Scan(&u.ID, &u.PhoneNumber, &u.PasswordHash, &u.Name, &u.RegisteredOn, &u.LastLoginOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE phone_number = $1)`
	err := r.db.QueryRowContext(ctx, query, phone).Scan(&exists)
	return exists, err
}

func (r *userRepository) TouchLastLogin(ctx context.Context, id int32) error {
	query := `UPDATE users SET last_login_on = $1 WHERE user_id = $2`
	_, err := r.db.ExecContext(ctx, query, time.Now(), id)
	return err
}
