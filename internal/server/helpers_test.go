package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"html"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"tasmeem/internal/auth"
	"tasmeem/internal/bootstrap"
	"tasmeem/internal/intake"
	"tasmeem/internal/storage"
	"tasmeem/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fakeSubmissions struct {
	mu        sync.Mutex
	rows      []*types.Submission
	listCalls int
	updates   int
	updateErr error
}

func (f *fakeSubmissions) CreateSubmission(_ context.Context, s *types.Submission) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	s.ID = "sub-" + string(rune('a'+len(f.rows)))
	s.CreatedAt = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	f.rows = append([]*types.Submission{s}, f.rows...)
	return nil
}

func (f *fakeSubmissions) Submissions(context.Context) ([]*types.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.listCalls++
	out := make([]*types.Submission, len(f.rows))
	for i, row := range f.rows {
		cp := *row
		out[i] = &cp
	}
	return out, nil
}

func (f *fakeSubmissions) UpdateSubmissionStatus(_ context.Context, id string, status types.SubmissionStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.updateErr != nil {
		return f.updateErr
	}
	for _, row := range f.rows {
		if row.ID == id {
			row.Status = status
			f.updates++
			return nil
		}
	}
	return errors.New("submission not found")
}

type fakeAdmins struct {
	mu         sync.Mutex
	rows       []*types.AdminUser
	isAdminErr error
}

func (f *fakeAdmins) CountAdmins(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows), nil
}

func (f *fakeAdmins) IsAdmin(_ context.Context, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.isAdminErr != nil {
		return false, f.isAdminErr
	}
	for _, row := range f.rows {
		if row.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAdmins) CreateAdminUser(_ context.Context, admin *types.AdminUser) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	admin.ID = "admin-row"
	f.rows = append(f.rows, admin)
	return nil
}

// fakeAuth accepts "<email>" passwords equal to "secret" and issues the token
// "token-<email>" whose user id is "user-<email>".
type fakeAuth struct {
	mu       sync.Mutex
	accounts map[string]string
	signOuts int
}

func newFakeAuth() *fakeAuth {
	return &fakeAuth{accounts: map[string]string{}}
}

func (f *fakeAuth) SignIn(_ context.Context, email, password string) (*auth.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if stored, ok := f.accounts[email]; !ok || stored != password {
		return nil, auth.ErrInvalidCredentials
	}
	return &auth.Session{
		AccessToken: "token-" + email,
		ExpiresIn:   3600,
		Identity:    auth.Identity{UserID: "user-" + email, Username: email, Email: email},
	}, nil
}

func (f *fakeAuth) SignOut(context.Context, string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signOuts++
	return nil
}

func (f *fakeAuth) Verify(_ context.Context, accessToken string) (*auth.Identity, error) {
	email, ok := strings.CutPrefix(accessToken, "token-")
	if !ok {
		return nil, auth.ErrInvalidToken
	}
	return &auth.Identity{UserID: "user-" + email, Username: email, Email: email}, nil
}

func (f *fakeAuth) CreateUser(_ context.Context, email, password string) (*auth.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.accounts[email] = password
	return &auth.Account{UserID: "user-" + email, Username: email, Email: email}, nil
}

func (f *fakeAuth) DeleteUser(_ context.Context, username string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.accounts, username)
	return nil
}

type testApp struct {
	handler     http.Handler
	server      *httptest.Server
	client      *http.Client
	submissions *fakeSubmissions
	admins      *fakeAdmins
	auth        *fakeAuth
	drafts      *intake.Drafts
}

func testKey(b byte, n int) string {
	return base64.StdEncoding.EncodeToString([]byte(strings.Repeat(string(rune(b)), n)))
}

func withCSRF(config *types.Config) {
	config.CSRFKey = testKey('c', 32)
}

func newTestApp(t *testing.T, opts ...func(*types.Config)) *testApp {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	config := &types.Config{
		ServerPort:       0,
		MaxUploadMB:      8,
		DefaultLanguage:  "en",
		CookieName:       "tasmeem",
		SessionMaxAgeSec: 3600,
		CookieSecure:     false,
		CookieHashKey:    testKey('h', 32),
		CookieBlockKey:   testKey('b', 32),
	}
	for _, opt := range opts {
		opt(config)
	}

	app := &testApp{
		submissions: &fakeSubmissions{},
		admins:      &fakeAdmins{},
		auth:        newFakeAuth(),
	}
	app.drafts = intake.NewDrafts(logger, app.submissions, storage.NewMemoryStorage(), "staging", time.Hour)

	setup := bootstrap.New(logger, app.admins, app.auth)

	s, err := New(config, logger, app.drafts, app.submissions, app.admins, app.auth, setup)
	require.NoError(t, err)

	app.handler = s.Handler()
	app.server = httptest.NewServer(app.handler)
	t.Cleanup(app.server.Close)

	app.client = app.newClient(t)
	return app
}

// newClient is a browser-like client that keeps cookies and does not follow
// redirects.
func (a *testApp) newClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func (a *testApp) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()

	resp, err := a.client.Get(a.server.URL + path)
	require.NoError(t, err)
	return resp, readBody(t, resp)
}

func (a *testApp) postForm(t *testing.T, path string, values url.Values) (*http.Response, string) {
	t.Helper()

	resp, err := a.client.PostForm(a.server.URL+path, values)
	require.NoError(t, err)
	return resp, readBody(t, resp)
}

var csrfFieldPattern = regexp.MustCompile(`name="gorilla.csrf.Token" value="([^"]+)"`)

// csrfToken loads path and returns the token from its first CSRF field.
func (a *testApp) csrfToken(t *testing.T, path string) string {
	t.Helper()

	resp, body := a.get(t, path)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	match := csrfFieldPattern.FindStringSubmatch(body)
	require.Len(t, match, 2, "no csrf field on %s", path)
	return html.UnescapeString(match[1])
}

type upload struct {
	name        string
	contentType string
	body        []byte
}

func multipartBody(t *testing.T, fields url.Values, uploads ...upload) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for key, values := range fields {
		for _, v := range values {
			require.NoError(t, mw.WriteField(key, v))
		}
	}
	for _, u := range uploads {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename="%s"`, u.name))
		header.Set("Content-Type", u.contentType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(u.body)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func (a *testApp) postMultipart(t *testing.T, path string, fields url.Values, uploads ...upload) (*http.Response, string) {
	t.Helper()

	body, contentType := multipartBody(t, fields, uploads...)
	resp, err := a.client.Post(a.server.URL+path, contentType, body)
	require.NoError(t, err)
	return resp, readBody(t, resp)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}
