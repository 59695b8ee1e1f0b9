package ports

import (
	"context"

	"github.com/Thor-asgardian/FullStack/internal/core/domain"
)

type AuthService interface {
	Signup(ctx context.Context, username, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}
