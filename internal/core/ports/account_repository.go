package ports

import (
	"context"

	"github.com/fitapply/job-board/internal/core/domain"
)

// ProfileUpdate carries the four mutable account fields. All of them are
// overwritten unconditionally on update.
type ProfileUpdate struct {
	FullName string
	Phone    string
	Location string
	Bio      string
}

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) error
	Count(ctx context.Context) (int64, error)
}
