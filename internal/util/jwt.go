package util

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const downloadAudience = "template-download"

// DownloadClaims represents the claims of a template download token
type DownloadClaims struct {
	Template string `json:"tpl"`
	jwt.RegisteredClaims
}

// DownloadSigner issues and verifies short-lived template download tokens
type DownloadSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewDownloadSigner creates a signer using HS256 with the given secret
func NewDownloadSigner(secret string, ttl time.Duration) *DownloadSigner {
	return &DownloadSigner{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL returns how long issued tokens stay valid
func (s *DownloadSigner) TTL() time.Duration {
	return s.ttl
}

// GenerateToken generates a token that unlocks the download of one template
func (s *DownloadSigner) GenerateToken(templateSlug, email string) (string, error) {
	now := s.now()
	claims := &DownloadClaims{
		Template: templateSlug,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Audience:  jwt.ClaimStrings{downloadAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken validates a download token for the given template
func (s *DownloadSigner) ValidateToken(tokenString, templateSlug string) (*DownloadClaims, error) {
	claims := &DownloadClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithAudience(downloadAudience), jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid || claims.Template != templateSlug {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
