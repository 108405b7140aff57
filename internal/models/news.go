package models

import "time"

// News is a single post. Private posts are visible to their owner only.
type News struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	IsPrivate   bool      `json:"is_private"`
	CreatedDate time.Time `json:"created_date"`
	UserID      int       `json:"user_id"`
}
