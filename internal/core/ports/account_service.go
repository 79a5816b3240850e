package ports

import (
	"context"

	"github.com/fitapply/job-board/internal/core/domain"
)

// RegisterInput carries the signup form fields.
type RegisterInput struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
	Phone           string
	Location        string
}

type AccountService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Account, error)
	Authenticate(ctx context.Context, email, password string) (*domain.Account, error)
	Get(ctx context.Context, id string) (*domain.Account, error)
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*domain.Account, error)
}
