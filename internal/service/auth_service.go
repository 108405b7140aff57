package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"newsboard/internal/apperror"
	"newsboard/internal/models"
	"newsboard/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// visitTokenTTL bounds the signed visit-counter cookie, matching the
// original's 31-day session lifetime for that demo.
const visitTokenTTL = 31 * 24 * time.Hour

// AuthService handles registration, login, and session token logic.
type AuthService struct {
	users repository.Users
	cfg   AuthConfig
}

func NewAuthService(users repository.Users, cfg AuthConfig) *AuthService {
	return &AuthService{users: users, cfg: cfg}
}

var _ Authorization = (*AuthService)(nil)

// Register validates the form, hashes the password, and creates the user.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (int, error) {
	if strings.TrimSpace(in.Password) == "" {
		return 0, apperror.New(apperror.Validation, "password is empty")
	}
	if in.Password != in.PasswordConfirm {
		return 0, apperror.New(apperror.Validation, "passwords do not match")
	}

	existing, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, apperror.New(apperror.Conflict, "user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	return s.users.Create(ctx, models.User{
		Name:         in.Name,
		Email:        in.Email,
		About:        in.About,
		PasswordHash: string(hash),
	})
}

// Login checks credentials and returns a signed session token. Unknown
// email and wrong password produce the same error so callers cannot
// enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", apperror.New(apperror.Auth, "invalid login or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", apperror.New(apperror.Auth, "invalid login or password")
	}
	return s.issueToken(u.ID)
}

// sessionClaims identifies the logged-in user.
type sessionClaims struct {
	jwt.RegisteredClaims
	UserID int `json:"user_id"`
}

// visitClaims back the signed visit-counter cookie.
type visitClaims struct {
	jwt.RegisteredClaims
	VisitCount int `json:"visit_count"`
}

// ParseToken validates a session token and returns the user id.
func (s *AuthService) ParseToken(accessToken string) (int, error) {
	var claims sessionClaims
	if err := s.parse(accessToken, &claims); err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

// UserByID loads the user a session points at. A stale id resolves to
// (nil, nil) so the caller falls back to anonymous.
func (s *AuthService) UserByID(ctx context.Context, id int) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// IssueVisitCount signs a visit-counter token for the session demo.
func (s *AuthService) IssueVisitCount(count int) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &visitClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(visitTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		VisitCount: count,
	})
	return token.SignedString([]byte(s.cfg.SigningKey))
}

// ParseVisitCount reads the count back out of a visit-counter token.
func (s *AuthService) ParseVisitCount(tokenStr string) (int, error) {
	var claims visitClaims
	if err := s.parse(tokenStr, &claims); err != nil {
		return 0, err
	}
	return claims.VisitCount, nil
}

func (s *AuthService) issueToken(userID int) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	return token.SignedString([]byte(s.cfg.SigningKey))
}

func (s *AuthService) parse(tokenStr string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SigningKey), nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return apperror.New(apperror.Auth, "invalid token")
	}
	return nil
}
