package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/sandcourt/beachrank/auth/users"
)

type memStorage struct {
	users   map[string]users.User
	secrets map[string]users.Secret
	created int
}

func newMemStorage() *memStorage {
	return &memStorage{
		users:   make(map[string]users.User),
		secrets: make(map[string]users.Secret),
	}
}

func (m *memStorage) CreateUser(_ context.Context, user users.User, secret users.Secret) error {
	if _, ok := m.users[user.Name]; ok {
		return errors.New("user already exists")
	}
	m.users[user.Name] = user
	m.secrets[user.Name] = secret
	m.created++
	return nil
}

func (m *memStorage) GetUser(_ context.Context, id uuid.UUID) (users.User, error) {
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return users.User{}, sql.ErrNoRows
}

func (m *memStorage) GetUserSecret(_ context.Context, user users.User) (users.Secret, error) {
	secret, ok := m.secrets[user.Name]
	if !ok {
		return users.Secret{}, sql.ErrNoRows
	}
	return secret, nil
}

func (m *memStorage) SignIn(_ context.Context, name string, passwordHash []byte) (users.User, error) {
	secret, ok := m.secrets[name]
	if !ok || !bytes.Equal(secret.PasswordHash, passwordHash) {
		return users.User{}, sql.ErrNoRows
	}
	return m.users[name], nil
}

func testConfig() Config {
	return Config{
		Token:          "test-token",
		Expiration:     "1h",
		RootPassword:   "root-pass",
		PasswordPepper: "pepper",
		Roles:          []string{users.RoleAdmin, users.RoleUser},
		// Out of order on purpose, New sorts by order field.
		Rules: []Rule{
			{Name: "api", Path: "^/api", Method: []string{"*"}, Allow: []string{"*"}, Order: 2},
			{Name: "matches", Path: `^/api/matches$`, Method: []string{"GET", "POST"}, Allow: []string{users.RoleAdmin}, Order: 0},
			{Name: "export", Path: `^/api/export`, Method: []string{"GET"}, Allow: []string{users.RoleAdmin}, Order: 1},
		},
	}
}

func TestNewCreatesRoot(t *testing.T) {
	ctx := context.Background()
	store := newMemStorage()
	s, err := New(ctx, testConfig(), store)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	root, ok := store.users["root"]
	if !ok {
		t.Fatal("root user was not created")
	}
	if !root.HasRole(users.RoleAdmin) {
		t.Errorf("root.Roles = %v, want admin", root.Roles)
	}
	if _, err := s.Login(ctx, "root", "root-pass"); err != nil {
		t.Errorf("Login(root) error = %v", err)
	}
	// A restart over the same storage must not recreate root.
	if _, err := New(ctx, testConfig(), store); err != nil {
		t.Fatalf("New() second run error = %v", err)
	}
	if store.created != 1 {
		t.Errorf("CreateUser called %d times, want 1", store.created)
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	s, err := New(ctx, testConfig(), newMemStorage())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	user, err := s.Login(ctx, "root", "root-pass")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if user.Name != "root" {
		t.Errorf("user.Name = %q, want root", user.Name)
	}
	if _, err := s.Login(ctx, "root", "wrong-pass"); err == nil {
		t.Error("Login() with wrong password must fail")
	}
	if _, err := s.Login(ctx, "nobody", "root-pass"); err == nil {
		t.Error("Login() of unknown user must fail")
	}
}

func TestAuthRules(t *testing.T) {
	ctx := context.Background()
	store := newMemStorage()
	s, err := New(ctx, testConfig(), store)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := s.SignUp(ctx, "vasya", "12345"); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	cookieFor := func(name, password string) string {
		user, err := s.Login(ctx, name, password)
		if err != nil {
			t.Fatalf("Login(%s) error = %v", name, err)
		}
		cookie, err := s.GenerateJWTCookie(user.ID, "localhost")
		if err != nil {
			t.Fatalf("GenerateJWTCookie() error = %v", err)
		}
		return cookie.Value
	}
	rootCookie := cookieFor("root", "root-pass")
	userCookie := cookieFor("vasya", "12345")

	tests := []struct {
		name     string
		cookie   string
		method   string
		url      string
		wantUser string
		wantErr  error
	}{
		{
			name:   "anonymous on open page",
			method: "GET", url: "/api",
		},
		{
			name:   "anonymous on matches list",
			method: "GET", url: "/api/matches-list",
		},
		{
			name:   "anonymous on match form",
			method: "GET", url: "/api/matches",
			wantErr: ErrForbidden,
		},
		{
			name:   "plain user on match form",
			cookie: userCookie, method: "POST", url: "/api/matches",
			wantErr: ErrForbidden,
		},
		{
			name:   "admin on match form",
			cookie: rootCookie, method: "POST", url: "/api/matches",
			wantUser: "root",
		},
		{
			// Export rule covers GET only, POST falls through to the
			// catch-all api rule.
			name:   "method not covered by rule",
			cookie: userCookie, method: "POST", url: "/api/export",
			wantUser: "vasya",
		},
		{
			name:   "url without a rule",
			method: "GET", url: "/signin",
			wantErr: ErrForbidden,
		},
		{
			name:   "garbage cookie",
			cookie: "not a jwt", method: "GET", url: "/api",
			wantErr: ErrNotAuthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := s.Auth(ctx, tt.cookie, tt.method, tt.url)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Auth() error = %v, want %v", err, tt.wantErr)
			}
			if user.Name != tt.wantUser {
				t.Errorf("Auth() user = %q, want %q", user.Name, tt.wantUser)
			}
		})
	}
}

func TestSignUpRole(t *testing.T) {
	ctx := context.Background()
	store := newMemStorage()
	s, err := New(ctx, testConfig(), store)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := s.SignUp(ctx, "petya", "qwerty"); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	user := store.users["petya"]
	if user.HasRole(users.RoleAdmin) {
		t.Error("fresh user must not get admin")
	}
	if !user.HasRole(users.RoleUser) {
		t.Errorf("user.Roles = %v, want user", user.Roles)
	}
	if err := s.SignUp(ctx, "petya", "qwerty"); err == nil {
		t.Error("duplicate SignUp() must fail")
	}
}

func TestGenerateJWTCookie(t *testing.T) {
	ctx := context.Background()
	s, err := New(ctx, testConfig(), newMemStorage())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	id := uuid.New()
	cookie, err := s.GenerateJWTCookie(id, "rating.example.org")
	if err != nil {
		t.Fatalf("GenerateJWTCookie() error = %v", err)
	}
	if cookie.Name != "token" {
		t.Errorf("cookie.Name = %q, want token", cookie.Name)
	}
	if cookie.Domain != "rating.example.org" {
		t.Errorf("cookie.Domain = %q", cookie.Domain)
	}
	if !cookie.HTTPOnly {
		t.Error("cookie must be http only")
	}
	// The cookie is signed for a user that does not exist, the
	// signature checks out but the lookup fails.
	if _, err := s.Auth(ctx, cookie.Value, "GET", "/api"); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("Auth() error = %v, want %v", err, ErrNotAuthorized)
	}
}
