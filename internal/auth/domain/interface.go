package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/gokul-1998/flashdeck-service/internal/auth/domain UserRepository

type UserRepository interface {
	// GetByEmail returns (nil, nil) when no user exists for the email.
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	// SetRefreshToken unconditionally replaces the stored refresh token
	// (login path).
	SetRefreshToken(ctx context.Context, userID, token string) error
	// RotateRefreshToken swaps current for next only if current still
	// matches the stored value. Returns false when nothing matched, which
	// covers mismatch, reuse after rotation and a never-set token.
	RotateRefreshToken(ctx context.Context, userID, current, next string) (bool, error)
}
