// Package auth reads the identity carried by an OAuth/OpenID ID token.
//
// The CLI never talks to the identity provider itself: the user pastes an
// ID token obtained elsewhere and the backend is trusted to verify it. The
// client only needs the claims to know who is signed in and when the
// session ends.
package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/aivantu/aivantu/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the ID token claims the client cares about.
type Claims struct {
	jwt.RegisteredClaims
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
}

// Identity is who an ID token says the user is.
type Identity struct {
	Email     string
	Name      string
	Picture   string
	ExpiresAt time.Time
}

// ParseIDToken decodes tokenString without verifying its signature and
// checks it is a JWT with an email that has not expired at now.
func ParseIDToken(tokenString string, now time.Time) (*Identity, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(tokenString), "Bearer "))
	if tokenString == "" {
		return nil, common.ErrInvalidToken
	}

	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}

	if strings.TrimSpace(claims.Email) == "" {
		return nil, fmt.Errorf("%w: no email claim", common.ErrInvalidToken)
	}

	id := &Identity{
		Email:   strings.TrimSpace(claims.Email),
		Name:    strings.TrimSpace(claims.Name),
		Picture: strings.TrimSpace(claims.Picture),
	}
	if claims.ExpiresAt != nil {
		id.ExpiresAt = claims.ExpiresAt.Time
		if !now.Before(id.ExpiresAt) {
			return nil, common.ErrTokenExpired
		}
	}
	return id, nil
}
