package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenValidity is how long a sign-in lasts.
const DefaultTokenValidity = 30 * 24 * time.Hour

// Claims carries the session inside a signed token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
	Email  string `json:"email,omitempty"`
}

// Tokens signs and verifies session tokens with an HMAC secret.
type Tokens struct {
	Secret   []byte
	Validity time.Duration
	now      func() time.Time
}

func NewTokens(secret string) *Tokens {
	return &Tokens{Secret: []byte(secret), Validity: DefaultTokenValidity}
}

func (t *Tokens) clock() time.Time {
	if t.now != nil {
		return t.now()
	}
	return time.Now()
}

// Issue returns a signed token for s.
func (t *Tokens) Issue(s Session) (string, error) {
	if _, err := s.Require(); err != nil {
		return "", err
	}
	validity := t.Validity
	if validity <= 0 {
		validity = DefaultTokenValidity
	}
	issued := t.clock()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.UserID,
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(validity)),
		},
		UserID: s.UserID,
		Email:  s.Email,
	})
	signed, err := token.SignedString(t.Secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies raw and returns its session. Invalid or expired tokens
// yield ErrNotAuthenticated.
func (t *Tokens) Parse(raw string) (Session, error) {
	claims := &Claims{}
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if t.now != nil {
		opts = append(opts, jwt.WithTimeFunc(t.now))
	}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return t.Secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Session{}, fmt.Errorf("%w: session expired", ErrNotAuthenticated)
		}
		return Session{}, fmt.Errorf("%w: %v", ErrNotAuthenticated, err)
	}
	if !token.Valid {
		return Session{}, ErrNotAuthenticated
	}
	s := Session{UserID: claims.UserID, Email: claims.Email}
	if _, err := s.Require(); err != nil {
		return Session{}, err
	}
	return s, nil
}
