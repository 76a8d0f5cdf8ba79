package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/gokul-1998/flashdeck-service/internal/auth/service TokenGenerator

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/gokul-1998/flashdeck-service/config"
	apperrors "github.com/gokul-1998/flashdeck-service/internal/errors"
)

type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

type TokenGenerator interface {
	Generate(email string, kind TokenKind) (string, error)
	GeneratePair(email string) (access string, refresh string, err error)
	Verify(tokenString string, kind TokenKind) (*JWTCustomClaims, error)
}

type TokenService struct {
	secret        []byte
	method        jwt.SigningMethod
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	TokenType string `json:"type"`
}

// NewTokenService builds the issuer/verifier from the immutable config.
// A missing secret or a non-HMAC algorithm is a configuration error and
// fatal at startup.
func NewTokenService(cfg *config.Config) (*TokenService, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt secret is not configured")
	}

	method := jwt.GetSigningMethod(cfg.JWTAlgorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm: %s", cfg.JWTAlgorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm: %s", cfg.JWTAlgorithm)
	}

	return &TokenService{
		secret:        []byte(cfg.JWTSecret),
		method:        method,
		AccessExpiry:  time.Duration(cfg.AccessExpiryMin) * time.Minute,
		RefreshExpiry: time.Duration(cfg.RefreshExpiryDay) * 24 * time.Hour,
	}, nil
}

func (ts *TokenService) Generate(email string, kind TokenKind) (string, error) {
	now := time.Now()

	expiry := ts.AccessExpiry
	if kind == TokenKindRefresh {
		expiry = ts.RefreshExpiry
	}

	claims := JWTCustomClaims{
		TokenType: string(kind),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	// jti keeps refresh tokens minted within the same second distinct.
	if kind == TokenKindRefresh {
		claims.ID = uuid.NewString()
	}

	return jwt.NewWithClaims(ts.method, claims).SignedString(ts.secret)
}

func (ts *TokenService) GeneratePair(email string) (string, string, error) {
	accessToken, err := ts.Generate(email, TokenKindAccess)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := ts.Generate(email, TokenKindRefresh)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// Verify parses and validates the given token string and checks it is of
// the expected kind. The expiry instant itself counts as expired.
func (ts *TokenService) Verify(tokenString string, kind TokenKind) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ts.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	if !token.Valid || claims.TokenType != string(kind) {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
