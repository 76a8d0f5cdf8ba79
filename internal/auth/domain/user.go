package domain

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	RefreshToken string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
