package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"shop-service/internal/models"
	"shop-service/internal/repository"
	"shop-service/internal/service"

	"github.com/google/uuid"
)

// fakeHasher хранит пароль как есть, без bcrypt
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hash:" + password, nil }

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type fakeTokens struct {
	SignAccessFunc func(ctx context.Context, sub uuid.UUID, role string, ttl time.Duration) (string, time.Time, error)
	ParseFunc      func(ctx context.Context, token string) (*service.Claims, error)
}

func (f *fakeTokens) SignAccess(ctx context.Context, sub uuid.UUID, role string, ttl time.Duration) (string, time.Time, error) {
	if f.SignAccessFunc != nil {
		return f.SignAccessFunc(ctx, sub, role, ttl)
	}
	return "token", time.Now().Add(ttl), nil
}

func (f *fakeTokens) ParseAndValidateAccess(ctx context.Context, token string) (*service.Claims, error) {
	if f.ParseFunc != nil {
		return f.ParseFunc(ctx, token)
	}
	return nil, errors.New("bad token")
}

func TestAuthService_Register(t *testing.T) {
	var created *models.User
	users := &MockUserRepo{
		ExistsByEmailFunc: func(_ context.Context, email string) (bool, error) {
			return email == "taken@example.com", nil
		},
		CreateFunc: func(_ context.Context, u *models.User) error {
			u.ID = uuid.New()
			created = u
			return nil
		},
	}
	svc := service.NewAuthService(&repository.Repository{Users: users}, fakeHasher{}, &fakeTokens{})

	ctx := context.Background()

	u, err := svc.Register(ctx, service.RegisterInput{Name: " Ann ", Email: " Ann@Example.COM ", Password: "secret123"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	// email нормализуется, имя подрезается
	if u.Email != "ann@example.com" || u.Name != "Ann" {
		t.Fatalf("normalization mismatch: %+v", u)
	}
	if created == nil || created.PasswordHash != "hash:secret123" {
		t.Fatalf("password not hashed: %+v", created)
	}

	if _, err := svc.Register(ctx, service.RegisterInput{Name: "B", Email: "taken@example.com", Password: "secret123"}); !errors.Is(err, service.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken got %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	uid := uuid.New()
	users := &MockUserRepo{
		GetByEmailFunc: func(_ context.Context, email string) (*models.User, error) {
			if email != "admin@example.com" {
				return nil, nil
			}
			return &models.User{ID: uid, Email: email, PasswordHash: "hash:secret123", IsAdmin: true}, nil
		},
	}

	var signedRole string
	tokens := &fakeTokens{
		SignAccessFunc: func(_ context.Context, sub uuid.UUID, role string, ttl time.Duration) (string, time.Time, error) {
			signedRole = role
			return "access-token", time.Now().Add(ttl), nil
		},
	}
	svc := service.NewAuthService(&repository.Repository{Users: users}, fakeHasher{}, tokens)

	ctx := context.Background()

	res, err := svc.Login(ctx, "admin@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.AccessToken != "access-token" || signedRole != string(service.RoleAdmin) {
		t.Fatalf("token mismatch: %+v role=%s", res, signedRole)
	}

	if _, err := svc.Login(ctx, "admin@example.com", "wrong"); !errors.Is(err, service.ErrInvalidCreds) {
		t.Fatalf("wrong password: expected ErrInvalidCreds got %v", err)
	}
	if _, err := svc.Login(ctx, "nobody@example.com", "secret123"); !errors.Is(err, service.ErrInvalidCreds) {
		t.Fatalf("unknown email: expected ErrInvalidCreds got %v", err)
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	uid := uuid.New()
	tokens := &fakeTokens{
		ParseFunc: func(_ context.Context, token string) (*service.Claims, error) {
			if token != "good" {
				return nil, errors.New("expired")
			}
			return &service.Claims{UserID: uid, Role: service.RoleCustomer}, nil
		},
	}
	svc := service.NewAuthService(&repository.Repository{Users: &MockUserRepo{}}, fakeHasher{}, tokens)

	claims, err := svc.Authenticate(context.Background(), "good")
	if err != nil || claims.UserID != uid {
		t.Fatalf("Authenticate: %v %v", claims, err)
	}
	if _, err := svc.Authenticate(context.Background(), "bad"); !errors.Is(err, service.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized got %v", err)
	}
}

func TestAuthService_UpdateUser_EmailConflict(t *testing.T) {
	uid := uuid.New()
	users := &MockUserRepo{
		GetByIDFunc: func(_ context.Context, id uuid.UUID) (*models.User, error) {
			if id != uid {
				return nil, nil
			}
			return &models.User{ID: uid, Email: "old@example.com"}, nil
		},
		ExistsByEmailFunc: func(_ context.Context, email string) (bool, error) {
			return email == "taken@example.com", nil
		},
	}
	svc := service.NewAuthService(&repository.Repository{Users: users}, fakeHasher{}, &fakeTokens{})
	admin := adminCtx(uuid.New())

	taken := "taken@example.com"
	if _, err := svc.UpdateUser(admin, uid, service.UpdateUserInput{Email: &taken}); !errors.Is(err, service.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken got %v", err)
	}

	if _, err := svc.UpdateUser(customerCtx(uuid.New()), uid, service.UpdateUserInput{}); !errors.Is(err, service.ErrForbidden) {
		t.Fatalf("expected ErrForbidden got %v", err)
	}

	if _, err := svc.UpdateUser(admin, uuid.New(), service.UpdateUserInput{}); !errors.Is(err, service.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound got %v", err)
	}
}
