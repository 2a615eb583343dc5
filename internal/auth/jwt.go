// Package auth issues and verifies the HS256 bearer tokens used by the API.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// Issuer is the iss claim of every token this service signs.
	Issuer = "socialpod-api"
	// TokenTTL is how long an issued token stays valid.
	TokenTTL = 10 * time.Hour
)

var (
	ErrMissingSecret = errors.New("JWT secret not configured")
	ErrInvalidToken  = errors.New("invalid or expired token")
)

// Identity is the caller-supplied identity a token is issued for.
type Identity struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name,omitempty" validate:"omitempty,max=120"`
}

// Claims is the token payload.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Signer signs and verifies tokens with a shared HMAC secret.
type Signer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSigner returns a Signer for secret with the default TTL.
func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret), ttl: TokenTTL, now: time.Now}
}

// Issue signs a token for id.
func (s *Signer) Issue(id Identity) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrMissingSecret
	}

	now := s.now()
	claims := Claims{
		Email: id.Email,
		Name:  id.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses tokenString and returns its claims. Any failure, including
// a wrong signing method, issuer or an expired token, yields ErrInvalidToken.
func (s *Signer) Verify(tokenString string) (*Claims, error) {
	if len(s.secret) == 0 {
		return nil, ErrMissingSecret
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Email == "" {
		return nil, fmt.Errorf("%w: missing email claim", ErrInvalidToken)
	}
	return claims, nil
}
