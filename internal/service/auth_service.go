package service

import (
	"context"
	"strings"
	"time"

	"shop-service/internal/models"
	"shop-service/internal/repository"

	"github.com/google/uuid"
)

const accessTokenTTL = 24 * time.Hour

type authService struct {
	repo   *repository.Repository
	hasher PasswordHasher
	tokens TokenProvider
}

func NewAuthService(repo *repository.Repository, hasher PasswordHasher, tokens TokenProvider) AuthService {
	return &authService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
	}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))

	exists, err := s.repo.Users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.repo.Users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.repo.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCreds
	}
	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCreds
	}

	role := RoleCustomer
	if u.IsAdmin {
		role = RoleAdmin
	}

	access, exp, err := s.tokens.SignAccess(ctx, u.ID, string(role), accessTokenTTL)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: u, AccessToken: access, ExpiresAt: exp}, nil
}

func (s *authService) Authenticate(ctx context.Context, accessToken string) (*Claims, error) {
	claims, err := s.tokens.ParseAndValidateAccess(ctx, accessToken)
	if err != nil {
		return nil, ErrUnauthorized
	}
	return claims, nil
}

func (s *authService) AdminGetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	u, err := s.repo.Users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *authService) AdminListUsers(ctx context.Context, f AdminListFilter) ([]models.User, int64, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, 0, err
	}
	return s.repo.Users.List(ctx, repository.UserListFilter{
		Query:  f.Query,
		Limit:  f.Limit,
		Offset: f.Offset,
	})
}

func (s *authService) UpdateUser(ctx context.Context, id uuid.UUID, in UpdateUserInput) (*models.User, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	u, err := s.repo.Users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*in.Email))
		if !strings.EqualFold(email, u.Email) {
			exists, err := s.repo.Users.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, ErrEmailTaken
			}
		}
		fields["email"] = email
	}
	if in.IsAdmin != nil {
		fields["is_admin"] = *in.IsAdmin
	}

	if err := s.repo.Users.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.Users.GetByID(ctx, id)
}

func (s *authService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}
	ok, err := s.repo.Users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUserNotFound
	}
	return nil
}

func (s *authService) BulkDeleteUsers(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return 0, err
	}
	return s.repo.Users.BulkDelete(ctx, ids)
}
