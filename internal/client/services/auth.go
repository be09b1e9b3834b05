package services

import (
	"context"
	"database/sql"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/aivantu/aivantu/internal/client/auth"
	"github.com/aivantu/aivantu/internal/client/client"
	"github.com/aivantu/aivantu/internal/client/repositories/metadata"
	"github.com/aivantu/aivantu/internal/common"
	"github.com/aivantu/aivantu/internal/dbx"
)

// Session is the signed-in user as remembered between runs.
type Session struct {
	Email     string
	Name      string
	Picture   string
	Token     string
	ExpiresAt time.Time
}

// AuthService signs the user in and out.
//
// Signing in with a plain email only records who the user is. Signing in
// with an ID token additionally sends it as a bearer token on every request
// until it expires or the user signs out.
type AuthService interface {
	SignInWithEmail(ctx context.Context, email, name string) (*Session, error)
	SignInWithIDToken(ctx context.Context, token string) (*Session, error)
	Current(ctx context.Context) (*Session, error)
	Restore(ctx context.Context) (*Session, error)
	SignOut(ctx context.Context) error
	Email(ctx context.Context) string
	Ping(ctx context.Context) error
}

type authService struct {
	client        client.Client
	db            *sql.DB
	fallbackEmail string
	now           func() time.Time
}

// NewAuthService constructs an AuthService. fallbackEmail is used by Email
// when nobody is signed in.
func NewAuthService(client client.Client, db *sql.DB, fallbackEmail string) AuthService {
	return &authService{client: client, db: db, fallbackEmail: fallbackEmail, now: time.Now}
}

func (a *authService) getMetadataRepo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

func (a *authService) SignInWithEmail(ctx context.Context, email, name string) (*Session, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return nil, fmt.Errorf("%w: email %q", common.ErrorInvalidInput, email)
	}

	s := &Session{Email: addr.Address, Name: strings.TrimSpace(name)}
	if err := a.save(ctx, s); err != nil {
		return nil, err
	}
	a.client.SetToken("")
	return s, nil
}

func (a *authService) SignInWithIDToken(ctx context.Context, token string) (*Session, error) {
	id, err := auth.ParseIDToken(token, a.now())
	if err != nil {
		return nil, err
	}

	s := &Session{
		Email:     id.Email,
		Name:      id.Name,
		Picture:   id.Picture,
		Token:     strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer ")),
		ExpiresAt: id.ExpiresAt,
	}
	if err := a.save(ctx, s); err != nil {
		return nil, err
	}
	a.client.SetToken(s.Token)
	return s, nil
}

func (a *authService) save(ctx context.Context, s *Session) error {
	expires := ""
	if !s.ExpiresAt.IsZero() {
		expires = s.ExpiresAt.UTC().Format(time.RFC3339)
	}

	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.getMetadataRepo(tx)
		for key, value := range map[string]string{
			metadata.KeySessionEmail:   s.Email,
			metadata.KeySessionName:    s.Name,
			metadata.KeySessionPicture: s.Picture,
			metadata.KeySessionToken:   s.Token,
			metadata.KeySessionExpiry:  expires,
		} {
			if err := repo.Set(ctx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Current returns the stored session. An expired token session is cleared
// and reported as ErrNotSignedIn.
func (a *authService) Current(ctx context.Context) (*Session, error) {
	repo := a.getMetadataRepo(a.db)

	values, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	email := values[metadata.KeySessionEmail]
	if email == "" {
		return nil, ErrNotSignedIn
	}

	s := &Session{
		Email:   email,
		Name:    values[metadata.KeySessionName],
		Picture: values[metadata.KeySessionPicture],
		Token:   values[metadata.KeySessionToken],
	}
	if exp := values[metadata.KeySessionExpiry]; exp != "" {
		t, err := time.Parse(time.RFC3339, exp)
		if err != nil {
			return nil, fmt.Errorf("load session: expiry %q: %w", exp, err)
		}
		s.ExpiresAt = t
		if !a.now().Before(t) {
			if err := a.SignOut(ctx); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %w", ErrNotSignedIn, common.ErrTokenExpired)
		}
	}
	return s, nil
}

// Restore loads the stored session at startup and re-arms its token.
func (a *authService) Restore(ctx context.Context) (*Session, error) {
	s, err := a.Current(ctx)
	if err != nil {
		return nil, err
	}
	a.client.SetToken(s.Token)
	return s, nil
}

func (a *authService) SignOut(ctx context.Context) error {
	a.client.SetToken("")
	err := a.getMetadataRepo(a.db).Delete(ctx,
		metadata.KeySessionEmail,
		metadata.KeySessionName,
		metadata.KeySessionPicture,
		metadata.KeySessionToken,
		metadata.KeySessionExpiry,
	)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Email is the address requests are made on behalf of: the signed-in user,
// or the configured fallback.
func (a *authService) Email(ctx context.Context) string {
	if s, err := a.Current(ctx); err == nil {
		return s.Email
	}
	return common.FirstNonEmpty(a.fallbackEmail, common.DefaultUserEmail)
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Health(ctx)
}
