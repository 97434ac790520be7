package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	cogtypes "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer   = "https://cognito-idp.me-south-1.amazonaws.com/me-south-1_test"
	testClientID = "client-123"
	testPoolID   = "me-south-1_test"
)

type staticKeySets struct {
	set jwk.Set
	url string
}

func (s *staticKeySets) Lookup(ctx context.Context, url string) (jwk.Set, error) {
	s.url = url
	return s.set, nil
}

type signer struct {
	key jwk.Key
	set jwk.Set
}

func newSigner(t *testing.T) *signer {
	t.Helper()

	raw, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	key, err := jwk.Import(raw)
	require.NoError(t, err)
	require.NoError(t, key.Set(jwk.KeyIDKey, "test-key"))
	require.NoError(t, key.Set(jwk.AlgorithmKey, jwa.RS256()))

	pub, err := jwk.PublicKeyOf(key)
	require.NoError(t, err)

	set := jwk.NewSet()
	require.NoError(t, set.AddKey(pub))

	return &signer{key: key, set: set}
}

func (s *signer) token(t *testing.T, subject, clientID string, ttl time.Duration) string {
	t.Helper()

	tok, err := jwt.NewBuilder().
		Issuer(testIssuer).
		Subject(subject).
		IssuedAt(time.Now()).
		Expiration(time.Now().Add(ttl)).
		Claim("client_id", clientID).
		Claim("token_use", "access").
		Claim("username", subject).
		Build()
	require.NoError(t, err)

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.RS256(), s.key))
	require.NoError(t, err)
	return string(signed)
}

type fakeCognito struct {
	authResult   *cogtypes.AuthenticationResultType
	authErr      error
	createErr    error
	setPassErr   error
	deleteErr    error
	signedOut    []string
	created      []string
	deleted      []string
	passwordsSet int
}

func (f *fakeCognito) InitiateAuth(ctx context.Context, in *cognitoidentityprovider.InitiateAuthInput, _ ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.InitiateAuthOutput, error) {
	if f.authErr != nil {
		return nil, f.authErr
	}
	return &cognitoidentityprovider.InitiateAuthOutput{AuthenticationResult: f.authResult}, nil
}

func (f *fakeCognito) GlobalSignOut(ctx context.Context, in *cognitoidentityprovider.GlobalSignOutInput, _ ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.GlobalSignOutOutput, error) {
	f.signedOut = append(f.signedOut, aws.ToString(in.AccessToken))
	return &cognitoidentityprovider.GlobalSignOutOutput{}, nil
}

func (f *fakeCognito) AdminCreateUser(ctx context.Context, in *cognitoidentityprovider.AdminCreateUserInput, _ ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminCreateUserOutput, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	username := aws.ToString(in.Username)
	f.created = append(f.created, username)
	return &cognitoidentityprovider.AdminCreateUserOutput{
		User: &cogtypes.UserType{
			Username: aws.String(username),
			Attributes: []cogtypes.AttributeType{
				{Name: aws.String("sub"), Value: aws.String("sub-" + username)},
				{Name: aws.String("email"), Value: aws.String(username)},
			},
		},
	}, nil
}

func (f *fakeCognito) AdminSetUserPassword(ctx context.Context, in *cognitoidentityprovider.AdminSetUserPasswordInput, _ ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminSetUserPasswordOutput, error) {
	if f.setPassErr != nil {
		return nil, f.setPassErr
	}
	f.passwordsSet++
	return &cognitoidentityprovider.AdminSetUserPasswordOutput{}, nil
}

func (f *fakeCognito) AdminDeleteUser(ctx context.Context, in *cognitoidentityprovider.AdminDeleteUserInput, _ ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminDeleteUserOutput, error) {
	f.deleted = append(f.deleted, aws.ToString(in.Username))
	return &cognitoidentityprovider.AdminDeleteUserOutput{}, f.deleteErr
}

func TestVerify(t *testing.T) {
	s := newSigner(t)
	keys := &staticKeySets{set: s.set}
	c := NewCognito(&fakeCognito{}, keys, testPoolID, testClientID, testIssuer)
	ctx := context.Background()

	identity, err := c.Verify(ctx, s.token(t, "user-1", testClientID, time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.UserID)
	assert.Equal(t, JWKSURL(testIssuer), keys.url)

	_, err = c.Verify(ctx, s.token(t, "user-1", "other-client", time.Hour))
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = c.Verify(ctx, s.token(t, "user-1", testClientID, -time.Hour))
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = c.Verify(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := newSigner(t)
	_, err = c.Verify(ctx, other.token(t, "user-1", testClientID, time.Hour))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSignIn(t *testing.T) {
	s := newSigner(t)
	client := &fakeCognito{
		authResult: &cogtypes.AuthenticationResultType{
			AccessToken: aws.String(s.token(t, "user-1", testClientID, time.Hour)),
			ExpiresIn:   3600,
		},
	}
	c := NewCognito(client, &staticKeySets{set: s.set}, testPoolID, testClientID, testIssuer)

	session, err := c.SignIn(context.Background(), "admin@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", session.UserID)
	assert.Equal(t, "admin@example.com", session.Email)
	assert.Equal(t, 3600, session.ExpiresIn)

	require.NoError(t, c.SignOut(context.Background(), session.AccessToken))
	assert.Equal(t, []string{session.AccessToken}, client.signedOut)
}

func TestSignInRejected(t *testing.T) {
	client := &fakeCognito{authErr: &cogtypes.NotAuthorizedException{Message: aws.String("Incorrect username or password.")}}
	c := NewCognito(client, &staticKeySets{}, testPoolID, testClientID, testIssuer)

	_, err := c.SignIn(context.Background(), "admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateUser(t *testing.T) {
	client := &fakeCognito{}
	c := NewCognito(client, &staticKeySets{}, testPoolID, testClientID, testIssuer)

	account, err := c.CreateUser(context.Background(), "new@example.com", "Passw0rd!")
	require.NoError(t, err)
	assert.Equal(t, "sub-new@example.com", account.UserID)
	assert.Equal(t, 1, client.passwordsSet)
	assert.Empty(t, client.deleted)
}

func TestCreateUserRemovesAccountWhenPasswordFails(t *testing.T) {
	client := &fakeCognito{setPassErr: errors.New("password policy")}
	c := NewCognito(client, &staticKeySets{}, testPoolID, testClientID, testIssuer)

	_, err := c.CreateUser(context.Background(), "new@example.com", "short")
	require.Error(t, err)
	assert.Equal(t, []string{"new@example.com"}, client.deleted)
}
