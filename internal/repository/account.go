package repository

import (
	"context"
	"errors"

	"login-app/internal/domain"
)

var (
	// ErrDuplicateEmail is returned when an insert hits the unique email constraint.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrNotFound is returned when no account matches the lookup key.
	ErrNotFound = errors.New("account not found")
)

// AccountRepository defines persistence operations for Account entities.
type AccountRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, account *domain.Account) (int64, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
}
