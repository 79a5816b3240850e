package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fitapply/job-board/internal/core/domain"
	"github.com/fitapply/job-board/internal/core/ports"
)

const minPasswordLen = 6

// AccountService implements registration, login and profile updates.
type AccountService struct {
	repo        ports.AccountRepository
	adminEmails map[string]struct{}
	logger      zerolog.Logger
}

// NewAccountService builds an AccountService. Emails listed in adminEmails
// are granted the admin role at registration; everyone else is a member.
func NewAccountService(repo ports.AccountRepository, adminEmails []string, logger zerolog.Logger) *AccountService {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		if e = strings.TrimSpace(e); e != "" {
			admins[e] = struct{}{}
		}
	}
	return &AccountService{repo: repo, adminEmails: admins, logger: logger}
}

func (s *AccountService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Account, error) {
	if input.FullName == "" || input.Email == "" || input.Password == "" || input.ConfirmPassword == "" {
		return nil, domain.ErrMissingFields
	}
	if input.Password != input.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}
	if len(input.Password) < minPasswordLen {
		return nil, domain.ErrPasswordTooShort
	}

	// Fast path for a friendly error; the unique index on email is what
	// actually guarantees the invariant under concurrent signups.
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := domain.RoleMember
	if _, ok := s.adminEmails[input.Email]; ok {
		role = domain.RoleAdmin
	}

	account := &domain.Account{
		FullName:     input.FullName,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		Phone:        input.Phone,
		Location:     input.Location,
		Bio:          "",
		ProfileImage: avatarURL(input.FullName),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("account_id", created.ID).Str("role", created.Role).Msg("account registered")
	return created, nil
}

// Authenticate verifies email and password. Unknown email and wrong password
// both collapse to ErrInvalidCredentials so callers cannot enumerate accounts.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return account, nil
}

func (s *AccountService) Get(ctx context.Context, id string) (*domain.Account, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateProfile unconditionally overwrites the four mutable fields.
func (s *AccountService) UpdateProfile(ctx context.Context, id string, update ports.ProfileUpdate) (*domain.Account, error) {
	if err := s.repo.UpdateProfile(ctx, id, update); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// avatarURL derives a profile image from the account name, e.g.
// "Jane Doe" -> https://ui-avatars.com/api/?name=Jane+Doe
func avatarURL(fullName string) string {
	return "https://ui-avatars.com/api/?name=" + strings.ReplaceAll(fullName, " ", "+")
}
