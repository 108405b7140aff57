package repository

import (
	"context"
	"database/sql"

	"newsboard/internal/models"
	"newsboard/internal/repository/db"
)

type Users interface {
	Create(ctx context.Context, u models.User) (int, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
}

type News interface {
	Create(ctx context.Context, n models.News) (int, error)
	// ListVisible returns public news plus everything owned by viewerID.
	// viewerID 0 (anonymous) matches no owner.
	ListVisible(ctx context.Context, viewerID int) ([]models.News, error)
	// GetOwned returns (nil, nil) unless the row exists and belongs to ownerID.
	GetOwned(ctx context.Context, id, ownerID int) (*models.News, error)
	Update(ctx context.Context, n models.News) (bool, error)
	Delete(ctx context.Context, id, ownerID int) (bool, error)
}

type Repository struct {
	Users Users
	News  News
}

func NewRepository(sqlDB *sql.DB) *Repository {
	return &Repository{
		Users: NewUserRepository(sqlDB),
		News:  NewNewsRepository(sqlDB),
	}
}

// InitDB opens the SQLite file and applies the schema.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
