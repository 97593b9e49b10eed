package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         string    `json:"role" gorm:"default:user"` // user, admin
	CreatedAt    time.Time `json:"createdAt"`
}

// RefreshToken is the single live refresh token of a user.
type RefreshToken struct {
	UserID    string `gorm:"primaryKey;type:uuid"`
	Token     string `gorm:"not null"`
	ExpiresAt time.Time
}

// ResetToken is a one-shot password recovery token.
type ResetToken struct {
	Token     string `gorm:"primaryKey"`
	UserID    string `gorm:"type:uuid;not null"`
	ExpiresAt time.Time
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
