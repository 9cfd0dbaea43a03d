package ports

import (
	"context"

	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/core/domain"
)

// AuthService registers staff users and issues JWTs on login.
type AuthService interface {
	Register(ctx context.Context, username, password, email, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
