package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"newsboard/internal/models"
)

type NewsRepository struct {
	db *sql.DB
}

func NewNewsRepository(db *sql.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

var _ News = (*NewsRepository)(nil)

const (
	insertNewsSQL = `INSERT INTO news (title, content, is_private, created_date, user_id) VALUES (?, ?, ?, ?, ?)`

	// Public posts for everyone, private ones for their owner only.
	// Newest first; id breaks ties between same-second inserts.
	selectVisibleNewsSQL = `
		SELECT id, title, content, is_private, created_date, user_id
		FROM news
		WHERE is_private = 0 OR user_id = ?
		ORDER BY created_date DESC, id DESC
	`

	// Owner is part of the lookup so "not mine" and "doesn't exist" are
	// indistinguishable to the caller.
	selectOwnedNewsSQL = `
		SELECT id, title, content, is_private, created_date, user_id
		FROM news
		WHERE id = ? AND user_id = ?
	`

	updateOwnedNewsSQL = `UPDATE news SET title = ?, content = ?, is_private = ? WHERE id = ? AND user_id = ?`
	deleteOwnedNewsSQL = `DELETE FROM news WHERE id = ? AND user_id = ?`
)

// Create inserts a new post and returns its ID. CreatedDate is set if zero.
func (r *NewsRepository) Create(ctx context.Context, n models.News) (int, error) {
	created := n.CreatedDate
	if created.IsZero() {
		created = time.Now().UTC()
	} else {
		created = created.UTC()
	}

	res, err := r.db.ExecContext(ctx, insertNewsSQL,
		n.Title, n.Content, n.IsPrivate, created, n.UserID)
	if err != nil {
		return 0, fmt.Errorf("insert news for user %d: %w", n.UserID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for news: %w", err)
	}
	return int(lastID), nil
}

// ListVisible returns public posts plus viewerID's own, newest first.
func (r *NewsRepository) ListVisible(ctx context.Context, viewerID int) ([]models.News, error) {
	rows, err := r.db.QueryContext(ctx, selectVisibleNewsSQL, viewerID)
	if err != nil {
		return nil, fmt.Errorf("select visible news: %w", err)
	}
	defer rows.Close()

	out := make([]models.News, 0, 16)
	for rows.Next() {
		var n models.News
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.IsPrivate, &n.CreatedDate, &n.UserID); err != nil {
			return nil, fmt.Errorf("scan news row: %w", err)
		}
		n.CreatedDate = n.CreatedDate.UTC()
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetOwned fetches a post by id and owner. Returns (nil, nil) if no such
// owned row exists.
func (r *NewsRepository) GetOwned(ctx context.Context, id, ownerID int) (*models.News, error) {
	var n models.News
	err := r.db.QueryRowContext(ctx, selectOwnedNewsSQL, id, ownerID).
		Scan(&n.ID, &n.Title, &n.Content, &n.IsPrivate, &n.CreatedDate, &n.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select news %d: %w", id, err)
	}
	n.CreatedDate = n.CreatedDate.UTC()
	return &n, nil
}

// Update overwrites the mutable fields of an owned post. Returns false if
// no owned row matched.
func (r *NewsRepository) Update(ctx context.Context, n models.News) (bool, error) {
	res, err := r.db.ExecContext(ctx, updateOwnedNewsSQL,
		n.Title, n.Content, n.IsPrivate, n.ID, n.UserID)
	if err != nil {
		return false, fmt.Errorf("update news %d: %w", n.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for news %d: %w", n.ID, err)
	}
	return affected > 0, nil
}

// Delete removes an owned post. Returns false if no owned row matched.
func (r *NewsRepository) Delete(ctx context.Context, id, ownerID int) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteOwnedNewsSQL, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("delete news %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for news %d: %w", id, err)
	}
	return affected > 0, nil
}
