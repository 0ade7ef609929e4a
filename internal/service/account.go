package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/resumeforge/resumeforge-server/internal/logger"
	"github.com/resumeforge/resumeforge-server/internal/model"
)

const (
	minPasswordLength = 6
	resetCodeTTL      = 10 * time.Minute
)

// AccountConfig carries account service settings.
type AccountConfig struct {
	// GoogleClientID, when set, must match the aud claim of Google ID
	// tokens. Empty disables the audience check.
	GoogleClientID string
	// DebugResetCode echoes the reset code in the forgot-password response.
	// Development only.
	DebugResetCode bool
}

// AuthResponse is returned by signup and both login flows.
type AuthResponse struct {
	Message     string            `json:"message"`
	User        model.AccountView `json:"user"`
	AccessToken string            `json:"accessToken"`
}

// ForgotPasswordResponse acknowledges a reset-code delivery.
type ForgotPasswordResponse struct {
	Message        string `json:"message"`
	Email          string `json:"email"`
	DebugResetCode string `json:"debugResetCode,omitempty"`
}

// ResetPasswordResponse acknowledges a completed password reset.
type ResetPasswordResponse struct {
	Message string `json:"message"`
}

// Account implements signup, login, password reset, and Google federated
// login on top of the user store.
type Account struct {
	users    model.UserStore
	hasher   model.PasswordHasher
	mailer   model.Mailer
	verifier model.TokenVerifier
	config   AccountConfig
	logger   *logger.Logger
	now      func() time.Time
}

// NewAccount creates an Account service.
func NewAccount(
	users model.UserStore,
	hasher model.PasswordHasher,
	mailer model.Mailer,
	verifier model.TokenVerifier,
	config AccountConfig,
	logger *logger.Logger,
) *Account {
	return &Account{
		users:    users,
		hasher:   hasher,
		mailer:   mailer,
		verifier: verifier,
		config:   config,
		logger:   logger,
		now:      time.Now,
	}
}

// Signup registers a local account.
func (a *Account) Signup(ctx context.Context, name, email, password string) (AuthResponse, error) {
	a.logger.Debug("Account service: starting signup",
		"email", email)

	safeName, err := required(name, "Name is required")
	if err != nil {
		return AuthResponse{}, err
	}
	safeEmail, err := normalizeEmail(email)
	if err != nil {
		return AuthResponse{}, err
	}
	safePassword, err := required(password, "Password is required")
	if err != nil {
		return AuthResponse{}, err
	}
	if len(safePassword) < minPasswordLength {
		return AuthResponse{}, model.NewValidationError("Password must be at least 6 characters")
	}

	_, err = a.users.GetByEmail(ctx, safeEmail)
	if err == nil {
		a.logger.Info("Account service: signup rejected, email taken",
			"email", safeEmail)
		return AuthResponse{}, model.NewValidationError("Account already exists with this email")
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Account service: failed to get user by email",
			"email", safeEmail,
			"error", err.Error())
		return AuthResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := a.hasher.Hash(safePassword)
	if err != nil {
		return AuthResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := a.now()
	user := model.User{
		ID:           uuid.New(),
		Name:         safeName,
		Email:        safeEmail,
		PasswordHash: &hash,
		Provider:     model.ProviderLocal,
		AvatarURL:    avatarFromEmail(safeEmail),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	saved, err := a.users.Create(ctx, user)
	if err != nil {
		a.logger.Error("Account service: failed to create user",
			"email", safeEmail,
			"error", err.Error())
		return AuthResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Account service: signup completed",
		"email", safeEmail,
		"user_id", saved.ID)

	return authResponse("Signup successful", saved), nil
}

// Login authenticates a local account with email and password.
func (a *Account) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	a.logger.Debug("Account service: starting login",
		"email", email)

	safeEmail, err := normalizeEmail(email)
	if err != nil {
		return AuthResponse{}, err
	}
	safePassword, err := required(password, "Password is required")
	if err != nil {
		return AuthResponse{}, err
	}

	user, err := a.users.GetByEmail(ctx, safeEmail)
	if errors.Is(err, model.ErrNotFound) {
		return AuthResponse{}, model.NewValidationError("Invalid email or password")
	}
	if err != nil {
		return AuthResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if user.Provider != model.ProviderLocal {
		return AuthResponse{}, model.NewValidationError("Please continue with Google for this account")
	}

	if user.PasswordHash == nil || !a.hasher.Matches(safePassword, *user.PasswordHash) {
		a.logger.Info("Account service: login rejected, bad credentials",
			"email", safeEmail)
		return AuthResponse{}, model.NewValidationError("Invalid email or password")
	}

	a.logger.Info("Account service: login completed",
		"email", safeEmail,
		"user_id", user.ID)

	return authResponse("Login successful", user), nil
}

// ForgotPassword issues a reset code and emails it to the account holder.
// The code is persisted before delivery is attempted, so a delivery failure
// leaves a usable code behind.
func (a *Account) ForgotPassword(ctx context.Context, email string) (ForgotPasswordResponse, error) {
	a.logger.Debug("Account service: starting password reset request",
		"email", email)

	safeEmail, err := normalizeEmail(email)
	if err != nil {
		return ForgotPasswordResponse{}, err
	}

	user, err := a.users.GetByEmail(ctx, safeEmail)
	if errors.Is(err, model.ErrNotFound) {
		return ForgotPasswordResponse{}, model.NewValidationError("No account found with this email")
	}
	if err != nil {
		return ForgotPasswordResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if user.Provider != model.ProviderLocal {
		return ForgotPasswordResponse{}, model.NewValidationError("Google accounts do not support password reset here")
	}

	code, err := generateResetCode()
	if err != nil {
		return ForgotPasswordResponse{}, fmt.Errorf("failed to generate reset code: %w", err)
	}

	expiry := a.now().Add(resetCodeTTL)
	user.ResetCode = &code
	user.ResetCodeExpiry = &expiry
	user.UpdatedAt = a.now()

	if _, err := a.users.Update(ctx, user); err != nil {
		a.logger.Error("Account service: failed to store reset code",
			"email", safeEmail,
			"error", err.Error())
		return ForgotPasswordResponse{}, fmt.Errorf("failed to update user: %w", err)
	}

	if err := a.mailer.SendResetCode(ctx, safeEmail, user.Name, code); err != nil {
		a.logger.Error("Account service: failed to send reset code email",
			"email", safeEmail,
			"error", err.Error())
		return ForgotPasswordResponse{}, model.NewValidationError("Could not send reset email. Check SMTP configuration.")
	}

	a.logger.Info("Account service: reset code sent",
		"email", safeEmail)

	response := ForgotPasswordResponse{
		Message: "Reset code sent to your email.",
		Email:   safeEmail,
	}
	if a.config.DebugResetCode {
		response.DebugResetCode = code
	}

	return response, nil
}

// ResetPassword sets a new password after validating the reset code.
func (a *Account) ResetPassword(ctx context.Context, email, code, newPassword string) (ResetPasswordResponse, error) {
	a.logger.Debug("Account service: starting password reset",
		"email", email)

	safeEmail, err := normalizeEmail(email)
	if err != nil {
		return ResetPasswordResponse{}, err
	}
	safeCode, err := required(code, "Reset code is required")
	if err != nil {
		return ResetPasswordResponse{}, err
	}
	safePassword, err := required(newPassword, "New password is required")
	if err != nil {
		return ResetPasswordResponse{}, err
	}
	if len(safePassword) < minPasswordLength {
		return ResetPasswordResponse{}, model.NewValidationError("Password must be at least 6 characters")
	}

	user, err := a.users.GetByEmail(ctx, safeEmail)
	if errors.Is(err, model.ErrNotFound) {
		return ResetPasswordResponse{}, model.NewValidationError("Account not found")
	}
	if err != nil {
		return ResetPasswordResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if user.Provider != model.ProviderLocal {
		return ResetPasswordResponse{}, model.NewValidationError("Google accounts do not support password reset here")
	}

	if user.ResetCode == nil || safeCode != *user.ResetCode {
		return ResetPasswordResponse{}, model.NewValidationError("Invalid reset code")
	}

	if user.ResetCodeExpiry == nil || a.now().After(*user.ResetCodeExpiry) {
		return ResetPasswordResponse{}, model.NewValidationError("Reset code expired. Request a new one.")
	}

	hash, err := a.hasher.Hash(safePassword)
	if err != nil {
		return ResetPasswordResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = &hash
	user.ResetCode = nil
	user.ResetCodeExpiry = nil
	user.UpdatedAt = a.now()

	if _, err := a.users.Update(ctx, user); err != nil {
		a.logger.Error("Account service: failed to update password",
			"email", safeEmail,
			"error", err.Error())
		return ResetPasswordResponse{}, fmt.Errorf("failed to update user: %w", err)
	}

	a.logger.Info("Account service: password reset completed",
		"email", safeEmail,
		"user_id", user.ID)

	return ResetPasswordResponse{Message: "Password reset successful"}, nil
}

// LoginWithGoogle signs a user in with a Google ID token, creating the
// account on first login. Any failure past the blank-token check surfaces as
// a single "Google login failed" validation error.
func (a *Account) LoginWithGoogle(ctx context.Context, idToken string) (AuthResponse, error) {
	a.logger.Debug("Account service: starting google login")

	safeToken, err := required(idToken, "Google token is required")
	if err != nil {
		return AuthResponse{}, err
	}

	user, err := a.googleLogin(ctx, safeToken)
	if err != nil {
		a.logger.Info("Account service: google login failed",
			"error", err.Error())
		return AuthResponse{}, model.NewValidationError("Google login failed: " + err.Error())
	}

	a.logger.Info("Account service: google login completed",
		"email", user.Email,
		"user_id", user.ID)

	return authResponse("Google login successful", user), nil
}

func (a *Account) googleLogin(ctx context.Context, idToken string) (model.User, error) {
	claims, err := a.verifier.Verify(ctx, idToken)
	if err != nil {
		return model.User{}, err
	}

	if !claims.EmailVerified {
		return model.User{}, errors.New("Google email is not verified")
	}
	if a.config.GoogleClientID != "" && a.config.GoogleClientID != claims.Audience {
		return model.User{}, errors.New("Google token audience mismatch")
	}

	email, err := normalizeEmail(claims.Email)
	if err != nil {
		return model.User{}, err
	}

	existing, err := a.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	var user model.User
	if err == nil {
		user = a.reconcileGoogleAccount(existing, claims)
		user, err = a.users.Update(ctx, user)
	} else {
		now := a.now()
		name := strings.TrimSpace(claims.Name)
		if name == "" {
			name = "Google User"
		}
		avatar := strings.TrimSpace(claims.Picture)
		if avatar == "" {
			avatar = avatarFromEmail(email)
		}
		user = model.User{
			ID:        uuid.New(),
			Name:      name,
			Email:     email,
			Provider:  model.ProviderGoogle,
			AvatarURL: avatar,
			CreatedAt: now,
			UpdatedAt: now,
		}
		user, err = a.users.Create(ctx, user)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to save user: %w", err)
	}

	return user, nil
}

// reconcileGoogleAccount converts an existing account to the google
// provider. A previously local account keeps its password hash but can no
// longer log in with it.
func (a *Account) reconcileGoogleAccount(user model.User, claims model.GoogleClaims) model.User {
	user.Provider = model.ProviderGoogle
	if name := strings.TrimSpace(claims.Name); name != "" {
		user.Name = name
	}
	if picture := strings.TrimSpace(claims.Picture); picture != "" {
		user.AvatarURL = picture
	}
	user.UpdatedAt = a.now()
	return user
}

func authResponse(message string, user model.User) AuthResponse {
	return AuthResponse{
		Message:     message,
		User:        user.View(),
		AccessToken: uuid.NewString(),
	}
}

func required(value, message string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", model.NewValidationError(message)
	}
	return trimmed, nil
}

func normalizeEmail(email string) (string, error) {
	trimmed, err := required(email, "Email is required")
	if err != nil {
		return "", err
	}
	return strings.ToLower(trimmed), nil
}

func avatarFromEmail(email string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + email
}

// generateResetCode draws a 6-digit code from crypto/rand.
func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
