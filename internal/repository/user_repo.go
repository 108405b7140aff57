package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"newsboard/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL = `INSERT INTO users (name, email, about, password_hash, created_date) VALUES (?, ?, ?, ?, ?)`
	selectUserSQL = `SELECT id, name, email, about, password_hash, created_date FROM users`

	selectUserByEmailSQL = selectUserSQL + ` WHERE email = ?`
	selectUserByIDSQL    = selectUserSQL + ` WHERE id = ?`
)

// Create inserts a new user and returns its ID.
func (r *UserRepository) Create(ctx context.Context, u models.User) (int, error) {
	created := u.CreatedDate
	if created.IsZero() {
		created = time.Now().UTC()
	} else {
		created = created.UTC()
	}

	res, err := r.db.ExecContext(ctx, insertUserSQL,
		u.Name, u.Email, u.About, u.PasswordHash, created)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", u.Email, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", u.Email, err)
	}
	return int(lastID), nil
}

// GetByEmail fetches a user by email. Returns (nil, nil) if not found.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, selectUserByEmailSQL, email), email)
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, selectUserByIDSQL, id), fmt.Sprintf("id=%d", id))
}

func (r *UserRepository) scanOne(row *sql.Row, key any) (*models.User, error) {
	var u models.User
	var about sql.NullString
	err := row.Scan(&u.ID, &u.Name, &u.Email, &about, &u.PasswordHash, &u.CreatedDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %v: %w", key, err)
	}
	u.About = about.String
	u.CreatedDate = u.CreatedDate.UTC()
	return &u, nil
}
