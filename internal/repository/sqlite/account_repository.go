package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"login-app/internal/domain"
	"login-app/internal/repository"
)

const createAccountsTable = `
CREATE TABLE IF NOT EXISTS accounts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

// touchUpdatedAt is the sqlite rendition of ON UPDATE CURRENT_TIMESTAMP.
const touchUpdatedAt = `
CREATE TRIGGER IF NOT EXISTS accounts_touch_updated_at
AFTER UPDATE ON accounts
FOR EACH ROW
BEGIN
	UPDATE accounts SET updated_at = CURRENT_TIMESTAMP WHERE id = NEW.id;
END;
`

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) repository.AccountRepository {
	return &AccountRepository{db: db}
}

// Init creates the accounts table and runs schema upgrades. It is idempotent:
// re-running against an existing database is not an error.
func (r *AccountRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createAccountsTable); err != nil {
		return fmt.Errorf("create accounts table: %w", err)
	}
	if err := r.ensurePhoneColumn(ctx); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, touchUpdatedAt); err != nil {
		return fmt.Errorf("create updated_at trigger: %w", err)
	}
	return nil
}

// ensurePhoneColumn adds the phone column for databases created before it
// existed. Pre-existing rows keep NULL. "duplicate column" means a current
// schema and counts as success.
func (r *AccountRepository) ensurePhoneColumn(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `ALTER TABLE accounts ADD COLUMN phone TEXT CHECK (phone IS NULL OR length(phone) <= 20)`)
	if err != nil && !strings.Contains(strings.ToLower(err.Error()), "duplicate column") {
		return fmt.Errorf("add phone column: %w", err)
	}
	return nil
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (int64, error) {
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO accounts (name, email, password_hash, phone, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		account.Name,
		account.Email,
		account.PasswordHash,
		account.Phone,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return 0, repository.ErrDuplicateEmail
		}
		return 0, fmt.Errorf("insert account: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("account last insert id: %w", err)
	}
	account.ID = id
	return id, nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, email, password_hash, phone, created_at, updated_at
FROM accounts
WHERE email = ?`,
		email,
	)
	return scanAccount(row)
}

// List returns every account's public fields. password_hash is not selected.
func (r *AccountRepository) List(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, email, phone, created_at
FROM accounts
ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var acc domain.Account
		var phone sql.NullString
		if err := rows.Scan(&acc.ID, &acc.Name, &acc.Email, &phone, &acc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan account row: %w", err)
		}
		if phone.Valid {
			acc.Phone = &phone.String
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}
	return accounts, nil
}

func scanAccount(row interface {
	Scan(dest ...any) error
}) (*domain.Account, error) {
	var acc domain.Account
	var phone sql.NullString
	if err := row.Scan(
		&acc.ID,
		&acc.Name,
		&acc.Email,
		&acc.PasswordHash,
		&phone,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}
	if phone.Valid {
		acc.Phone = &phone.String
	}
	return &acc, nil
}
