// Package bootstrap creates admin accounts: the first one without
// authentication, every later one only on behalf of an existing admin.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tasmeem/internal/auth"
	"tasmeem/pkg/types"

	"github.com/sirupsen/logrus"
)

var (
	ErrAuthRequired       = errors.New("admin exists, authentication required")
	ErrInvalidToken       = errors.New("invalid authentication")
	ErrNotAdmin           = errors.New("caller is not an admin")
	ErrMissingCredentials = errors.New("email and password are required")
)

type AdminDirectory interface {
	CountAdmins(ctx context.Context) (int, error)
	IsAdmin(ctx context.Context, userID string) (bool, error)
	CreateAdminUser(ctx context.Context, admin *types.AdminUser) error
}

type Accounts interface {
	Verify(ctx context.Context, accessToken string) (*auth.Identity, error)
	CreateUser(ctx context.Context, email, password string) (*auth.Account, error)
	DeleteUser(ctx context.Context, username string) error
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Service struct {
	logger   *logrus.Logger
	admins   AdminDirectory
	accounts Accounts
}

func New(logger *logrus.Logger, admins AdminDirectory, accounts Accounts) *Service {
	return &Service{
		logger:   logger,
		admins:   admins,
		accounts: accounts,
	}
}

// CreateAdmin authorizes the caller, then reads the credentials and creates
// the account and its admin row. Credentials are only read once the caller
// is allowed to create admins. bearer is the raw Authorization header value.
func (s *Service) CreateAdmin(ctx context.Context, bearer string, credentials func() (Credentials, error)) (*types.AdminUser, error) {
	count, err := s.admins.CountAdmins(ctx)
	if err != nil {
		return nil, fmt.Errorf("check existing admins: %w", err)
	}

	if count > 0 {
		if err := s.authorize(ctx, bearer); err != nil {
			return nil, err
		}
	}

	creds, err := credentials()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingCredentials, err)
	}
	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		return nil, ErrMissingCredentials
	}

	account, err := s.accounts.CreateUser(ctx, creds.Email, creds.Password)
	if err != nil {
		return nil, err
	}

	admin := &types.AdminUser{
		UserID: account.UserID,
		Email:  creds.Email,
	}
	if err := s.admins.CreateAdminUser(ctx, admin); err != nil {
		if derr := s.accounts.DeleteUser(ctx, account.Username); derr != nil {
			s.logger.WithError(derr).WithField("username", account.Username).Error("failed to roll back auth account")
			return nil, errors.Join(err, derr)
		}
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":     admin.UserID,
		"email":       admin.Email,
		"first_admin": count == 0,
	}).Info("admin user created")

	return admin, nil
}

func (s *Service) authorize(ctx context.Context, bearer string) error {
	if strings.TrimSpace(bearer) == "" {
		return ErrAuthRequired
	}
	token := strings.TrimSpace(strings.TrimPrefix(bearer, "Bearer "))

	identity, err := s.accounts.Verify(ctx, token)
	if err != nil {
		s.logger.WithError(err).Debug("setup-admin token rejected")
		return ErrInvalidToken
	}

	isAdmin, err := s.admins.IsAdmin(ctx, identity.UserID)
	if err != nil {
		return fmt.Errorf("check caller admin row: %w", err)
	}
	if !isAdmin {
		return ErrNotAdmin
	}

	return nil
}
