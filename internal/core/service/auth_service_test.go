package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Thor-asgardian/FullStack/internal/core/domain"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by id
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = "id-" + strconv.Itoa(r.nextID)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ListAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

type stubCache struct {
	entries map[string]*domain.User
	getErr  error
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string]*domain.User)}
}

func (c *stubCache) Get(_ context.Context, id string) (*domain.User, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return cloneUser(c.entries[id]), nil
}

func (c *stubCache) Set(_ context.Context, user *domain.User) error {
	c.entries[user.ID] = cloneUser(user)
	return nil
}

func newTestAuthService(repo *stubUserRepo, cache UserCache) *AuthService {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	tokens := NewTokenService("test-secret", time.Hour)
	return NewAuthService(repo, hasher, tokens, cache, zerolog.Nop())
}

func TestAuthService_SignupThenLogin(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, nil)

	user, err := svc.Signup(context.Background(), "alice", "A@X.com", "secret1", "")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role %q, got %q", domain.RoleUser, user.Role)
	}
	if user.Email != "a@x.com" {
		t.Fatalf("expected lowercased email, got %q", user.Email)
	}
	if user.PasswordHash == "secret1" {
		t.Fatalf("password stored unhashed")
	}

	token, logged, err := svc.Login(context.Background(), "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty string")
	}
	if logged.Username != "alice" {
		t.Fatalf("unexpected user: %+v", logged)
	}
}

func TestAuthService_Signup_MissingFields(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), nil)

	if _, err := svc.Signup(context.Background(), "", "a@x.com", "pw", ""); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if _, err := svc.Signup(context.Background(), "bob", "  ", "pw", ""); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields for blank email, got %v", err)
	}
}

func TestAuthService_Signup_InvalidRole(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), nil)

	if _, err := svc.Signup(context.Background(), "bob", "b@x.com", "pw", "superuser"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Signup_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, nil)

	if _, err := svc.Signup(context.Background(), "bob", "b@x.com", "pw", ""); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if _, err := svc.Signup(context.Background(), "bob", "other@x.com", "pw2", ""); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists for duplicate username, got %v", err)
	}
	if _, err := svc.Signup(context.Background(), "robert", "b@x.com", "pw2", ""); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists for duplicate email, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("failed signups must not create records, store has %d", len(repo.users))
	}
}

func TestAuthService_Login_GenericInvalidCredentials(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, nil)

	if _, err := svc.Signup(context.Background(), "dave", "dave@x.com", "goodpass", ""); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	// Wrong password and unknown email must be indistinguishable.
	_, _, wrongPw := svc.Login(context.Background(), "dave@x.com", "badpass")
	_, _, unknown := svc.Login(context.Background(), "ghost@x.com", "whatever")

	if !errors.Is(wrongPw, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPw)
	}
	if !errors.Is(unknown, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", unknown)
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), nil)

	if _, _, err := svc.Login(context.Background(), "", "pw"); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestAuthService_Profile(t *testing.T) {
	repo := newStubUserRepo()
	cache := newStubCache()
	svc := newTestAuthService(repo, cache)

	created, err := svc.Signup(context.Background(), "carol", "carol@x.com", "pw", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	user, err := svc.Profile(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Profile returned error: %v", err)
	}
	if user.Username != "carol" || user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected profile: %+v", user)
	}

	// Second read should come from the cache.
	if cache.entries[created.ID] == nil {
		t.Fatalf("expected profile to be cached after store read")
	}
	delete(repo.users, created.ID)
	if _, err := svc.Profile(context.Background(), created.ID); err != nil {
		t.Fatalf("expected cached profile after store delete, got %v", err)
	}
}

func TestAuthService_Profile_CacheErrorFallsThrough(t *testing.T) {
	repo := newStubUserRepo()
	cache := newStubCache()
	cache.getErr = errors.New("redis down")
	svc := newTestAuthService(repo, cache)

	created, err := svc.Signup(context.Background(), "erin", "erin@x.com", "pw", "")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	user, err := svc.Profile(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Profile must survive cache errors, got %v", err)
	}
	if user.Username != "erin" {
		t.Fatalf("unexpected profile: %+v", user)
	}
}

func TestAuthService_Profile_NotFound(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), nil)

	if _, err := svc.Profile(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_ListUsers(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, nil)

	_, _ = svc.Signup(context.Background(), "u1", "u1@x.com", "pw", "")
	_, _ = svc.Signup(context.Background(), "u2", "u2@x.com", "pw", domain.RoleModerator)

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}
