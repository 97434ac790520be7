package bootstrap

import (
	"context"
	"errors"
	"io"
	"testing"

	"tasmeem/internal/auth"
	"tasmeem/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdmins struct {
	rows      []*types.AdminUser
	insertErr error
}

func (f *fakeAdmins) CountAdmins(ctx context.Context) (int, error) {
	return len(f.rows), nil
}

func (f *fakeAdmins) IsAdmin(ctx context.Context, userID string) (bool, error) {
	for _, r := range f.rows {
		if r.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAdmins) CreateAdminUser(ctx context.Context, admin *types.AdminUser) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	admin.ID = "admin-row"
	f.rows = append(f.rows, admin)
	return nil
}

type fakeAccounts struct {
	tokens  map[string]string
	created []string
	deleted []string
}

func (f *fakeAccounts) Verify(ctx context.Context, token string) (*auth.Identity, error) {
	userID, ok := f.tokens[token]
	if !ok {
		return nil, auth.ErrInvalidToken
	}
	return &auth.Identity{UserID: userID}, nil
}

func (f *fakeAccounts) CreateUser(ctx context.Context, email, password string) (*auth.Account, error) {
	f.created = append(f.created, email)
	return &auth.Account{UserID: "sub-" + email, Username: email, Email: email}, nil
}

func (f *fakeAccounts) DeleteUser(ctx context.Context, username string) error {
	f.deleted = append(f.deleted, username)
	return nil
}

func newTestService() (*Service, *fakeAdmins, *fakeAccounts) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	admins := &fakeAdmins{}
	accounts := &fakeAccounts{tokens: map[string]string{}}
	return New(logger, admins, accounts), admins, accounts
}

func creds(email, password string) func() (Credentials, error) {
	return func() (Credentials, error) {
		return Credentials{Email: email, Password: password}, nil
	}
}

func TestFirstAdminNeedsNoAuth(t *testing.T) {
	svc, admins, _ := newTestService()

	admin, err := svc.CreateAdmin(context.Background(), "", creds("first@example.com", "Passw0rd!"))
	require.NoError(t, err)
	assert.Equal(t, "first@example.com", admin.Email)
	assert.Equal(t, "sub-first@example.com", admin.UserID)
	assert.Len(t, admins.rows, 1)
}

func TestLaterAdminRequiresAdminCaller(t *testing.T) {
	svc, admins, accounts := newTestService()
	ctx := context.Background()

	_, err := svc.CreateAdmin(ctx, "", creds("first@example.com", "Passw0rd!"))
	require.NoError(t, err)

	accounts.tokens["admin-token"] = "sub-first@example.com"
	accounts.tokens["visitor-token"] = "sub-visitor"

	read := 0
	counting := func() (Credentials, error) {
		read++
		return Credentials{Email: "second@example.com", Password: "Passw0rd!"}, nil
	}

	_, err = svc.CreateAdmin(ctx, "", counting)
	assert.ErrorIs(t, err, ErrAuthRequired)

	_, err = svc.CreateAdmin(ctx, "Bearer forged", counting)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.CreateAdmin(ctx, "Bearer visitor-token", counting)
	assert.ErrorIs(t, err, ErrNotAdmin)

	assert.Zero(t, read)
	assert.Len(t, admins.rows, 1)

	admin, err := svc.CreateAdmin(ctx, "Bearer admin-token", counting)
	require.NoError(t, err)
	assert.Equal(t, "second@example.com", admin.Email)
	assert.Len(t, admins.rows, 2)
}

func TestMissingCredentials(t *testing.T) {
	svc, _, accounts := newTestService()
	ctx := context.Background()

	_, err := svc.CreateAdmin(ctx, "", creds("", "Passw0rd!"))
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = svc.CreateAdmin(ctx, "", creds("first@example.com", ""))
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = svc.CreateAdmin(ctx, "", func() (Credentials, error) {
		return Credentials{}, errors.New("unexpected EOF")
	})
	assert.ErrorIs(t, err, ErrMissingCredentials)

	assert.Empty(t, accounts.created)
}

func TestAdminRowFailureRollsBackAccount(t *testing.T) {
	svc, admins, accounts := newTestService()
	admins.insertErr = errors.New("duplicate key value violates unique constraint")

	_, err := svc.CreateAdmin(context.Background(), "", creds("first@example.com", "Passw0rd!"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate key")
	assert.Equal(t, []string{"first@example.com"}, accounts.created)
	assert.Equal(t, []string{"first@example.com"}, accounts.deleted)
	assert.Empty(t, admins.rows)
}
