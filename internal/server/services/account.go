// Package services contains server-side business logic. This file implements
// AccountService, the account manager: creating regular and super users,
// credential checks and password changes.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/recipeapp/internal/common"
	"github.com/dmitrijs2005/recipeapp/internal/cryptox"
	"github.com/dmitrijs2005/recipeapp/internal/logging"
	"github.com/dmitrijs2005/recipeapp/internal/server/models"
	"github.com/dmitrijs2005/recipeapp/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// AccountOption sets an optional account field at creation time.
type AccountOption func(*models.Account)

func WithName(name string) AccountOption {
	return func(a *models.Account) { a.Name = name }
}

func WithStaff(staff bool) AccountOption {
	return func(a *models.Account) { a.IsStaff = staff }
}

func WithSuperuser(superuser bool) AccountOption {
	return func(a *models.Account) { a.IsSuperuser = superuser }
}

func WithActive(active bool) AccountOption {
	return func(a *models.Account) { a.IsActive = active }
}

type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      cryptox.PasswordHasher
	logger      logging.Logger
	now         func() time.Time
}

// NewAccountService constructs an AccountService. hasher produces hashes for
// new passwords; existing hashes of any supported algorithm still verify.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, hasher cryptox.PasswordHasher, logger logging.Logger) *AccountService {
	return &AccountService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		logger:      logger,
		now:         time.Now,
	}
}

// NormalizeEmail trims surrounding whitespace and lowercases the domain part,
// the text after the last "@". The local part keeps its case.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	i := strings.LastIndex(email, "@")
	if i < 0 {
		return email
	}
	return email[:i+1] + strings.ToLower(email[i+1:])
}

// CreateUser creates and stores an active, non-staff account. An empty email
// fails with common.ErrorNoEmail. An empty password leaves the account without
// a usable password. A taken email fails with common.ErrorAlreadyExists.
func (s *AccountService) CreateUser(ctx context.Context, email, password string, opts ...AccountOption) (*models.Account, error) {
	account, err := s.newAccount(email, password, opts...)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, account)
}

// CreateSuperuser is CreateUser with IsStaff and IsSuperuser forced on.
func (s *AccountService) CreateSuperuser(ctx context.Context, email, password string, opts ...AccountOption) (*models.Account, error) {
	account, err := s.newAccount(email, password, opts...)
	if err != nil {
		return nil, err
	}
	account.IsStaff = true
	account.IsSuperuser = true
	return s.save(ctx, account)
}

func (s *AccountService) newAccount(email, password string, opts ...AccountOption) (*models.Account, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, common.ErrorNoEmail
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    s.now().UTC(),
	}
	for _, opt := range opts {
		opt(account)
	}
	return account, nil
}

func (s *AccountService) hashPassword(password string) (string, error) {
	if password == "" {
		return cryptox.UnusablePassword(), nil
	}

	pw := []byte(password)
	defer common.WipeByteArray(pw)

	hash, err := s.hasher.Hash(pw)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return hash, nil
}

func (s *AccountService) save(ctx context.Context, account *models.Account) (*models.Account, error) {
	a, err := s.repomanager.Accounts(s.db).Create(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("error creating account: %w", err)
	}

	s.logger.Info(ctx, "account created",
		"id", a.ID, "staff", a.IsStaff, "superuser", a.IsSuperuser)
	return a, nil
}

// GetByEmail looks the account up by its normalized email.
func (s *AccountService) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	a, err := s.repomanager.Accounts(s.db).GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("error getting account: %w", err)
	}
	return a, nil
}

// Authenticate returns the active account matching email and password.
// Unknown emails, wrong passwords and inactive accounts all yield
// common.ErrorUnauthorized.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*models.Account, error) {
	a, err := s.repomanager.Accounts(s.db).GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// hash anyway so unknown emails take as long as wrong passwords
			_, _ = s.hasher.Hash([]byte(password))
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !a.CheckPassword(password) || !a.IsActive {
		return nil, common.ErrorUnauthorized
	}
	return a, nil
}

// SetPassword replaces the account's password. An empty password makes it unusable.
func (s *AccountService) SetPassword(ctx context.Context, id, password string) error {
	hash, err := s.hashPassword(password)
	if err != nil {
		return err
	}
	if err := s.repomanager.Accounts(s.db).UpdatePassword(ctx, id, hash); err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}

	s.logger.Info(ctx, "password changed", "id", id)
	return nil
}
