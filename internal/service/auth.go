package service

import (
	"context"
	"time"

	"shop-service/internal/models"

	"github.com/google/uuid"
)

type Claims struct {
	UserID uuid.UUID
	Role   Role
	Exp    time.Time
}

type TokenProvider interface {
	SignAccess(ctx context.Context, sub uuid.UUID, role string, ttl time.Duration) (string, time.Time, error)
	ParseAndValidateAccess(ctx context.Context, token string) (*Claims, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginResult struct {
	User        *models.User
	AccessToken string
	ExpiresAt   time.Time
}

type UpdateUserInput struct {
	Name    *string
	Email   *string
	IsAdmin *bool
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Authenticate(ctx context.Context, accessToken string) (*Claims, error)

	// Админка: пользователи
	AdminGetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	AdminListUsers(ctx context.Context, f AdminListFilter) ([]models.User, int64, error)
	UpdateUser(ctx context.Context, id uuid.UUID, in UpdateUserInput) (*models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	BulkDeleteUsers(ctx context.Context, ids []uuid.UUID) (int64, error)
}
