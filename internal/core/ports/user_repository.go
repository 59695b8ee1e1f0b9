package ports

import (
	"context"

	"github.com/Thor-asgardian/FullStack/internal/core/domain"
)

// UserRepository is the durable credential store. Create must be atomic
// with respect to concurrent callers: when two inserts race on the same
// username or email, at most one succeeds and the rest fail with
// domain.ErrUserExists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
}
