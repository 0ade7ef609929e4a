package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Provider identifies the credential source for an account.
type Provider string

const (
	// ProviderLocal marks password-based accounts.
	ProviderLocal Provider = "local"
	// ProviderGoogle marks accounts backed by a Google identity token.
	ProviderGoogle Provider = "google"
)

// UserStore defines persistence operations for user accounts.
// Email lookups are case-insensitive and email uniqueness is enforced
// by the store at insert time.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, user User) (User, error)
}

// User represents a stored account with credential material.
// PasswordHash is set only for local accounts. ResetCode and
// ResetCodeExpiry are both set or both nil.
type User struct {
	ID              uuid.UUID
	Name            string
	Email           string
	PasswordHash    *string
	Provider        Provider
	AvatarURL       string
	ResetCode       *string
	ResetCodeExpiry *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AccountView is the sanitized user shape returned by auth operations.
// Password hash and reset-code fields are never exposed.
type AccountView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Provider string `json:"provider"`
	Avatar   string `json:"avatar"`
}

// View returns the sanitized representation of the user.
func (u User) View() AccountView {
	return AccountView{
		ID:       u.ID.String(),
		Name:     u.Name,
		Email:    u.Email,
		Provider: string(u.Provider),
		Avatar:   u.AvatarURL,
	}
}
