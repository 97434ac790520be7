package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	cogtypes "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"
)

var (
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrInvalidToken       = errors.New("invalid access token")
)

// CognitoAPI is the subset of the Cognito identity provider client used here.
type CognitoAPI interface {
	InitiateAuth(ctx context.Context, params *cognitoidentityprovider.InitiateAuthInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.InitiateAuthOutput, error)
	GlobalSignOut(ctx context.Context, params *cognitoidentityprovider.GlobalSignOutInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.GlobalSignOutOutput, error)
	AdminCreateUser(ctx context.Context, params *cognitoidentityprovider.AdminCreateUserInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminCreateUserOutput, error)
	AdminSetUserPassword(ctx context.Context, params *cognitoidentityprovider.AdminSetUserPasswordInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminSetUserPasswordOutput, error)
	AdminDeleteUser(ctx context.Context, params *cognitoidentityprovider.AdminDeleteUserInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminDeleteUserOutput, error)
}

// KeySets resolves a JWKS url to its current key set. *jwk.Cache satisfies it.
type KeySets interface {
	Lookup(ctx context.Context, url string) (jwk.Set, error)
}

// Session is a signed-in user.
type Session struct {
	AccessToken string
	ExpiresIn   int
	Identity
}

// Identity is what a verified access token says about its user.
type Identity struct {
	UserID   string
	Username string
	Email    string
}

// Account is a user created through the admin API.
type Account struct {
	UserID   string
	Username string
	Email    string
}

type Cognito struct {
	client     CognitoAPI
	keys       KeySets
	userPoolID string
	clientID   string
	issuerURL  string
}

func NewCognito(client CognitoAPI, keys KeySets, userPoolID, clientID, issuerURL string) *Cognito {
	return &Cognito{
		client:     client,
		keys:       keys,
		userPoolID: userPoolID,
		clientID:   clientID,
		issuerURL:  issuerURL,
	}
}

// JWKSURL is where the pool publishes its signing keys.
func JWKSURL(issuerURL string) string {
	return fmt.Sprintf("%s/.well-known/jwks.json", issuerURL)
}

func (c *Cognito) SignIn(ctx context.Context, email, password string) (*Session, error) {
	input := &cognitoidentityprovider.InitiateAuthInput{
		AuthFlow: cogtypes.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(c.clientID),
		AuthParameters: map[string]string{
			"USERNAME": email,
			"PASSWORD": password,
		},
	}

	resp, err := c.client.InitiateAuth(ctx, input)
	if err != nil {
		var notAuthorized *cogtypes.NotAuthorizedException
		var userNotFound *cogtypes.UserNotFoundException
		if errors.As(err, &notAuthorized) || errors.As(err, &userNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("initiate auth: %w", err)
	}

	if resp.AuthenticationResult == nil || resp.AuthenticationResult.AccessToken == nil {
		return nil, fmt.Errorf("initiate auth: no access token in response")
	}

	accessToken := aws.ToString(resp.AuthenticationResult.AccessToken)

	identity, err := c.Verify(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	if identity.Email == identity.Username {
		identity.Email = email
	}

	return &Session{
		AccessToken: accessToken,
		ExpiresIn:   int(resp.AuthenticationResult.ExpiresIn),
		Identity:    *identity,
	}, nil
}

// Verify checks the token signature against the pool's JWKS and returns the
// identity it carries.
func (c *Cognito) Verify(ctx context.Context, accessToken string) (*Identity, error) {
	set, err := c.keys.Lookup(ctx, JWKSURL(c.issuerURL))
	if err != nil {
		return nil, fmt.Errorf("fetch jwks: %w", err)
	}

	options := []jwt.ParseOption{
		jwt.WithKeySet(set),
		jwt.WithValidate(true),
	}
	if c.issuerURL != "" {
		options = append(options, jwt.WithIssuer(c.issuerURL))
	}

	token, err := jwt.Parse([]byte(accessToken), options...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	userID, ok := token.Subject()
	if !ok || userID == "" {
		return nil, fmt.Errorf("%w: no subject claim", ErrInvalidToken)
	}

	var tokenUse string
	if err := token.Get("token_use", &tokenUse); err == nil && tokenUse != "access" {
		return nil, fmt.Errorf("%w: token_use is %q", ErrInvalidToken, tokenUse)
	}

	var clientID string
	if err := token.Get("client_id", &clientID); err == nil && c.clientID != "" && clientID != c.clientID {
		return nil, fmt.Errorf("%w: issued to another client", ErrInvalidToken)
	}

	identity := &Identity{UserID: userID}
	_ = token.Get("username", &identity.Username)
	if err := token.Get("email", &identity.Email); err != nil {
		identity.Email = identity.Username
	}

	return identity, nil
}

// SignOut ends every session of the token's user.
func (c *Cognito) SignOut(ctx context.Context, accessToken string) error {
	_, err := c.client.GlobalSignOut(ctx, &cognitoidentityprovider.GlobalSignOutInput{
		AccessToken: aws.String(accessToken),
	})
	if err != nil {
		return fmt.Errorf("global sign out: %w", err)
	}
	return nil
}

// CreateUser creates a confirmed account with a permanent password. If the
// password cannot be set the account is removed again.
func (c *Cognito) CreateUser(ctx context.Context, email, password string) (*Account, error) {
	out, err := c.client.AdminCreateUser(ctx, &cognitoidentityprovider.AdminCreateUserInput{
		UserPoolId: aws.String(c.userPoolID),
		Username:   aws.String(email),
		UserAttributes: []cogtypes.AttributeType{
			{Name: aws.String("email"), Value: aws.String(email)},
			{Name: aws.String("email_verified"), Value: aws.String("true")},
		},
		MessageAction: cogtypes.MessageActionTypeSuppress,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	if out.User == nil {
		return nil, fmt.Errorf("create user: empty response")
	}

	account := &Account{
		Username: aws.ToString(out.User.Username),
		Email:    email,
	}
	for _, attr := range out.User.Attributes {
		if aws.ToString(attr.Name) == "sub" {
			account.UserID = aws.ToString(attr.Value)
		}
	}
	if account.Username == "" {
		account.Username = email
	}
	if account.UserID == "" {
		err := fmt.Errorf("create user: no sub attribute for %s", account.Username)
		if derr := c.DeleteUser(ctx, account.Username); derr != nil {
			return nil, errors.Join(err, derr)
		}
		return nil, err
	}

	_, err = c.client.AdminSetUserPassword(ctx, &cognitoidentityprovider.AdminSetUserPasswordInput{
		UserPoolId: aws.String(c.userPoolID),
		Username:   aws.String(account.Username),
		Password:   aws.String(password),
		Permanent:  true,
	})
	if err != nil {
		err = fmt.Errorf("set password: %w", err)
		if derr := c.DeleteUser(ctx, account.Username); derr != nil {
			return nil, errors.Join(err, derr)
		}
		return nil, err
	}

	return account, nil
}

func (c *Cognito) DeleteUser(ctx context.Context, username string) error {
	_, err := c.client.AdminDeleteUser(ctx, &cognitoidentityprovider.AdminDeleteUserInput{
		UserPoolId: aws.String(c.userPoolID),
		Username:   aws.String(username),
	})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
