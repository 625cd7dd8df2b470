package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bazaar/internal/domain"
)

// DefaultTokenValidity is how long an issued session token stays valid.
const DefaultTokenValidity = 7 * 24 * time.Hour

// TokenService issues and verifies signed session tokens. It holds no
// state beyond the signing secret: there is no revocation list, so a
// stolen token stays valid until it expires and logout is purely a
// client-side cookie deletion.
type TokenService struct {
	secret   []byte
	validity time.Duration
}

// NewTokenService creates a TokenService signing with the given secret.
func NewTokenService(secret string, validity time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), validity: validity}
}

// Validity returns the token lifetime, used to size the session cookie.
func (s *TokenService) Validity() time.Duration {
	return s.validity
}

// Issue returns a signed HS256 token whose subject is the user id and
// whose expiry is now plus the validity window.
func (s *TokenService) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks the signature and expiry of a token and returns the user
// id it was issued for. Expired tokens fail even when the signature is
// valid; the wrapped message distinguishes the two cases.
func (s *TokenService) Verify(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, fmt.Errorf("%w: token expired", domain.ErrUnauthorized)
		}
		return 0, fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	}

	return userID, nil
}
