package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Authenticator checks admin credentials.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (bool, error)
}

// StaticAuthenticator accepts exactly one configured email/password pair.
type StaticAuthenticator struct {
	email string
	hash  []byte
}

// NewStaticAuthenticator builds an authenticator for email. When
// passwordHash is empty the plain password is hashed with bcrypt.
func NewStaticAuthenticator(email, password, passwordHash string) (*StaticAuthenticator, error) {
	if email == "" {
		return nil, errors.New("auth: admin email is empty")
	}
	hash := []byte(passwordHash)
	if passwordHash == "" {
		if password == "" {
			return nil, errors.New("auth: admin password is empty")
		}
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("auth: hash admin password: %w", err)
		}
	} else if _, err := bcrypt.Cost(hash); err != nil {
		return nil, fmt.Errorf("auth: invalid admin password hash: %w", err)
	}
	return &StaticAuthenticator{email: email, hash: hash}, nil
}

func (a *StaticAuthenticator) Authenticate(_ context.Context, email, password string) (bool, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(a.email)) == 1

	// The hash is compared even for an unknown email so both paths cost the same.
	err := bcrypt.CompareHashAndPassword(a.hash, []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("auth: compare password: %w", err)
	}
	return emailOK, nil
}
