package service

import (
	"context"
	"errors"

	"login-app/internal/domain"
	"login-app/internal/repository"
)

var (
	// ErrInvalidCredentials indicates a login failure. It is deliberately the
	// same for an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
)

// AccountService implements the register, authenticate and list use cases.
type AccountService interface {
	Register(ctx context.Context, in RegistrationInput) (*domain.Account, error)
	Authenticate(ctx context.Context, in LoginInput) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

type accountService struct {
	accounts repository.AccountRepository
	hasher   *PasswordHasher
}

func NewAccountService(accounts repository.AccountRepository, hasher *PasswordHasher) AccountService {
	return &accountService{accounts: accounts, hasher: hasher}
}

// Register validates the input, hashes the password and persists the
// account. The pre-check on email is advisory; the store's unique
// constraint is the authoritative guard, so a concurrent duplicate still
// comes back as ErrEmailTaken.
func (s *accountService) Register(ctx context.Context, in RegistrationInput) (*domain.Account, error) {
	if err := validateRegistration(in); err != nil {
		return nil, err
	}

	if _, err := s.accounts.GetByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	phone := in.Phone
	account := &domain.Account{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Phone:        &phone,
	}

	if _, err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return sanitizeAccount(account), nil
}

// Authenticate verifies the credentials for an email. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *accountService) Authenticate(ctx context.Context, in LoginInput) (*domain.Account, error) {
	if err := validateLogin(in); err != nil {
		return nil, err
	}

	account, err := s.accounts.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(in.Password, account.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return sanitizeAccount(account), nil
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accounts.List(ctx)
}

// sanitizeAccount strips the password hash before the account leaves the service.
func sanitizeAccount(account *domain.Account) *domain.Account {
	if account == nil {
		return nil
	}
	return &domain.Account{
		ID:        account.ID,
		Name:      account.Name,
		Email:     account.Email,
		Phone:     account.Phone,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}
