// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/items-keeper/internal/config"
	"github.com/MKhiriev/items-keeper/models"
)

var supportedSigningMethods = []string{"HS256", "HS384", "HS512"}

var errAlgorithmMismatch = errors.New("unexpected signing algorithm")

// tokenService signs tokens with a single HMAC key and algorithm.
type tokenService struct {
	secret []byte
	method jwt.SigningMethod
	issuer string
	now    func() time.Time
}

// TokenOption configures a token service.
type TokenOption func(*tokenService)

// WithTokenClock replaces time.Now as the source of "iat", "exp" and the
// validation instant.
func WithTokenClock(now func() time.Time) TokenOption {
	return func(s *tokenService) {
		s.now = now
	}
}

// NewTokenService builds a TokenService from the auth configuration.
// Only the HMAC family is accepted.
func NewTokenService(cfg config.Auth, opts ...TokenOption) (TokenService, error) {
	if cfg.SecretKey == "" {
		return nil, ErrEmptySecretKey
	}
	if !slices.Contains(supportedSigningMethods, cfg.Algorithm) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, cfg.Algorithm)
	}

	s := &tokenService{
		secret: []byte(cfg.SecretKey),
		method: jwt.GetSigningMethod(cfg.Algorithm),
		issuer: cfg.TokenIssuer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *tokenService) Issue(subject string, ttl time.Duration) (models.Token, error) {
	if ttl <= 0 {
		return models.Token{}, ErrInvalidTokenTTL
	}

	now := s.now()
	claims := models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	claims.SignedString = signed
	return claims, nil
}

func (s *tokenService) Validate(tokenString string) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &models.Token{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != s.method.Alg() {
			return nil, fmt.Errorf("%w: %s", errAlgorithmMismatch, t.Method.Alg())
		}
		return s.secret, nil
	}, opts...)
	if err != nil {
		switch {
		case errors.Is(err, errAlgorithmMismatch):
			return "", fmt.Errorf("%w: %w", ErrTokenMalformed, err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", fmt.Errorf("%w: %w", ErrTokenInvalidSignature, err)
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", fmt.Errorf("%w: %w", ErrTokenExpired, err)
		default:
			return "", fmt.Errorf("%w: %w", ErrTokenMalformed, err)
		}
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("%w: empty subject", ErrTokenMalformed)
	}

	return claims.Subject, nil
}
