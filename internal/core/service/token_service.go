package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/carsarena/parts-store/internal/core/domain"
)

// TokenService signs and verifies HS256 bearer tokens.
type TokenService struct {
	secret   string
	tokenTTL time.Duration
}

func NewTokenService(secret string, tokenTTL time.Duration) *TokenService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &TokenService{secret: secret, tokenTTL: tokenTTL}
}

// Issue signs a token embedding the claimed email, valid for the configured
// TTL from now. No credential check happens here.
func (s *TokenService) Issue(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}

// Verify validates signature and expiry and returns the embedded email.
// Every failure mode (bad signature, malformed token, expiry, wrong
// algorithm, missing email claim) collapses into ErrInvalidCredential.
func (s *TokenService) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidCredential
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return "", domain.ErrInvalidCredential
	}
	return email, nil
}
