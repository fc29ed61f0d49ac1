package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/caffeinetrackr/caffeinetrackr/internal/domain"
)

// ErrInvalidCredentials is returned by Login for an unknown email or a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// passwordHasher is the part of PasswordHasher the provider uses.
type passwordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) (bool, error)
}

// Provider is the authentication context: it owns the session and the
// account operations behind the sign-up form and the logout control.
type Provider struct {
	users    UserStore
	sessions *SessionStore
	hasher   passwordHasher

	// dummyHash is verified against for unknown emails so both failed
	// logins cost one argon2 run.
	dummyHash string
}

// NewProvider creates a provider over the given stores.
func NewProvider(users UserStore, sessions *SessionStore, hasher *PasswordHasher) *Provider {
	return newProvider(users, sessions, hasher)
}

func newProvider(users UserStore, sessions *SessionStore, hasher passwordHasher) *Provider {
	dummyHash, err := hasher.Hash("caffeinetrackr-no-such-account")
	if err != nil {
		panic(fmt.Sprintf("auth: hash dummy password: %v", err))
	}

	return &Provider{
		users:     users,
		sessions:  sessions,
		hasher:    hasher,
		dummyHash: dummyHash,
	}
}

// CurrentUser returns the session of the request, or nil when signed out.
func (p *Provider) CurrentUser(r *http.Request) *SessionData {
	session, err := p.sessions.Get(r)
	if err != nil {
		return nil
	}
	return session
}

// SignUp registers a new account and starts its session.
func (p *Provider) SignUp(ctx context.Context, w http.ResponseWriter, email, password string) (*User, error) {
	email = domain.NormalizeEmail(email)
	if err := domain.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := domain.ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := p.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := p.users.CreateUser(ctx, email, hash)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := p.startSession(w, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and starts a session.
func (p *Provider) Login(ctx context.Context, w http.ResponseWriter, email, password string) (*User, error) {
	email = domain.NormalizeEmail(email)
	if err := domain.ValidateEmail(email); err != nil {
		return nil, err
	}

	user, err := p.users.GetUserByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		_, _ = p.hasher.Verify(password, p.dummyHash)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	ok, err := p.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if err := p.startSession(w, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout clears the session.
func (p *Provider) Logout(w http.ResponseWriter) {
	p.sessions.Clear(w)
}

func (p *Provider) startSession(w http.ResponseWriter, user *User) error {
	session := &SessionData{
		UserID:      user.ID,
		Email:       user.Email,
		MemberSince: user.CreatedAt,
	}
	if err := p.sessions.Set(w, session); err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}
