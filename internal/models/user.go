package models

import "time"

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	About        string    `json:"about,omitempty"`
	PasswordHash string    `json:"-"` // never serialized
	CreatedDate  time.Time `json:"created_date"`
}
