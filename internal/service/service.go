package service

import (
	"context"
	"time"

	"newsboard/internal/models"
	"newsboard/internal/repository"
)

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Name            string
	Email           string
	About           string
	Password        string
	PasswordConfirm string
}

// NewsInput carries the mutable fields of a post.
type NewsInput struct {
	Title     string
	Content   string
	IsPrivate bool
}

type Authorization interface {
	Register(ctx context.Context, in RegisterInput) (int, error)
	// Login validates credentials and returns a signed session token.
	Login(ctx context.Context, email, password string) (string, error)
	ParseToken(accessToken string) (int, error)
	// UserByID resolves a session's user id; (nil, nil) when the row is gone.
	UserByID(ctx context.Context, id int) (*models.User, error)
	// Visit-counter tokens back the signed-cookie demo endpoint.
	IssueVisitCount(count int) (string, error)
	ParseVisitCount(token string) (int, error)
}

// News exposes the post CRUD with visibility and ownership rules applied.
type News interface {
	List(ctx context.Context, viewerID int) ([]models.News, error)
	Get(ctx context.Context, id, ownerID int) (*models.News, error)
	Create(ctx context.Context, ownerID int, in NewsInput) (int, error)
	Update(ctx context.Context, id, ownerID int, in NewsInput) error
	Delete(ctx context.Context, id, ownerID int) error
}

// Weather calls the external weather API. Thin glue, no retries.
type Weather interface {
	Current(ctx context.Context, city string) (WeatherReport, error)
}

// AuthConfig carries the session signing parameters (externalized; the
// original hard-coded them).
type AuthConfig struct {
	SigningKey string
	SessionTTL time.Duration
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	News
	Weather
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, authCfg AuthConfig, weatherCfg WeatherConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, authCfg),
		News:          NewNewsService(repos.News),
		Weather:       NewWeatherService(weatherCfg),
	}
}
