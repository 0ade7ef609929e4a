package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/resumeforge/resumeforge-server/internal/mocks"
	"github.com/resumeforge/resumeforge-server/internal/model"
	"github.com/resumeforge/resumeforge-server/internal/testutil"
)

func newAccountForTest(users *mocks.UserStore, hasher *mocks.PasswordHasher, mailer *mocks.Mailer, verifier *mocks.TokenVerifier, config AccountConfig) *Account {
	return NewAccount(users, hasher, mailer, verifier, config, testutil.MakeNoopLogger())
}

func localUser(email, hash string) model.User {
	return model.User{
		ID:           uuid.New(),
		Name:         "Jane",
		Email:        email,
		PasswordHash: &hash,
		Provider:     model.ProviderLocal,
		AvatarURL:    "https://api.dicebear.com/7.x/avataaars/svg?seed=" + email,
	}
}

func TestAccount_Signup_Success(t *testing.T) {
	ctx := context.Background()
	users := &mocks.UserStore{}
	hasher := &mocks.PasswordHasher{}

	users.On("GetByEmail", mock.Anything, "jane@example.com").Return(model.User{}, model.ErrNotFound)
	hasher.On("Hash", "secret123").Return("$2a$10$digest", nil)

	var created model.User
	users.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { created = args.Get(1).(model.User) }).
		Return(func(_ context.Context, u model.User) (model.User, error) { return u, nil })

	a := newAccountForTest(users, hasher, &mocks.Mailer{}, &mocks.TokenVerifier{}, AccountConfig{})

	resp, err := a.Signup(ctx, "  Jane  ", "  Jane@Example.COM ", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "Signup successful", resp.Message)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Jane", resp.User.Name)
	assert.Equal(t, "jane@example.com", resp.User.Email)
	assert.Equal(t, "local", resp.User.Provider)
	assert.Equal(t, "https://api.dicebear.com/7.x/avataaars/svg?seed=jane@example.com", resp.User.Avatar)

	require.NotNil(t, created.PasswordHash)
	assert.Equal(t, "$2a$10$digest", *created.PasswordHash)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestAccount_Signup_Validation(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantMsg  string
	}{
		{"missing name", "   ", "jane@example.com", "secret123", "Name is required"},
		{"missing email", "Jane", "", "secret123", "Email is required"},
		{"missing password", "Jane", "jane@example.com", "  ", "Password is required"},
		{"five character password", "Jane", "jane@example.com", "12345", "Password must be at least 6 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newAccountForTest(&mocks.UserStore{}, &mocks.PasswordHasher{}, &mocks.Mailer{}, &mocks.TokenVerifier{}, AccountConfig{})

			_, err := a.Signup(context.Background(), tt.userName, tt.email, tt.password)

			var valErr *model.ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tt.wantMsg, valErr.Message)
		})
	}
}

func TestAccount_Signup_SixCharacterPasswordAccepted(t *testing.T) {
	users := &mocks.UserStore{}
	hasher := &mocks.PasswordHasher{}

	users.On("GetByEmail", mock.Anything, "jane@example.com").Return(model.User{}, model.ErrNotFound)
	hasher.On("Hash", "123456").Return("$2a$10$digest", nil)
	users.On("Create", mock.Anything, mock.Anything).
		Return(func(_ context.Context, u model.User) (model.User, error) { return u, nil })

	a := newAccountForTest(users, hasher, &mocks.Mailer{}, &mocks.TokenVerifier{}, AccountConfig{})

	_, err := a.Signup(context.Background(), "Jane", "jane@example.com", "123456")
	require.NoError(t, err)
}

func TestAccount_Signup_DuplicateEmailCaseInsensitive(t *testing.T) {
	users := &mocks.UserStore{}
	users.On("GetByEmail", mock.Anything, "jane@example.com").Return(localUser("jane@example.com", "$2a$10$digest"), nil)

	a := newAccountForTest(users, &mocks.PasswordHasher{}, &mocks.Mailer{}, &mocks.TokenVerifier{}, AccountConfig{})

	_, err := a.Signup(context.Background(), "Jane", "JANE@EXAMPLE.COM", "secret123")

	var valErr *model.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "Account already exists with this email", valErr.Message)
}

func TestAccount_Login_Success(t *testing.T) {
	user := localUser("jane@example.com", "$2a$10$digest")

	users := &mocks.UserStore{}
	hasher := &mocks.PasswordHasher{}
	users.On("GetByEmail", mock.Anything, "jane@example.com").Return(user, nil)
	hasher.On("Matches", "secret123", "$2a$10$digest").Return(true)

	a := newAccountForTest(users, hasher, &mocks.Mailer{}, &mocks.TokenVerifier{}, AccountConfig{})

	resp, err := a.Login(context.Background(), "Jane@Example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, user.ID.String(), resp.User.ID)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestAccount_Login_SameMessageForUnknownEmailAndWrongPassword(t *testing.T) {
	users := &mocks.UserStore{}
	hasher := &mocks.PasswordHasher{}

	users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(model.User{}, model.ErrNotFound)
	users.On("GetByEmail", mock.Anything, "jane@example.com").Return(localUser("jane@example.com", "$2a$10$digest"), nil)
	hasher.On("Matches", "wrong", "$2a$10$digest").Return(false)

	a := newAccountForTest(users, hasher, &mocks.Mailer{}, &mocks.TokenVerifier{}, AccountConfig{})

	_, unknownErr := a.Login(context.Background(), "nobody@example.com", "secret123")
	_, wrongErr := a.Login(context.Background(), "jane@example.com", "wrong")

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.Equal(t, "Invalid email or password", unknownErr.Error())
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAccount_Login_GoogleAccountRejected(t *testing.T) {
	user := localUser("jane@example.com", "$2a$10$digest")
	user.Provider = model.ProviderGoogle

	users := &mocks.UserStore{}
	users.On("GetByEmail", mock.Anything, "jane@example.com").Return(user, nil)

	a := newAccountForTest(users, &mocks.PasswordHasher{}, &mocks.Mailer{}, &mocks.TokenVerifier{}, AccountConfig{})

	_, err := a.Login(context.Background(), "jane@example.com", "secret123")

	var valErr *model.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "Please continue with Google for this account", valErr.Message)
}

func TestAccount_ForgotPassword_Success(t *testing.T) {
	user := localUser("jane@example.com", "$2a$10$digest")

	users := &mocks.UserStore{}
	mailer := &mocks.Mailer{}
	users.On("GetByEmail", mock.Anything, "jane@example.com").Return(user, nil)

	var stored model.User
	users.On("Update", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { stored = args.Get(1).(model.User) }).
		Return(func(_ context.Context, u model.User) (model.User, error) { return u, nil })
	mailer.On("SendResetCode", mock.Anything, "jane@example.com", "Jane", mock.Anything).Return(nil)

	a := newAccountForTest(users, &mocks.PasswordHasher{}, mailer, &mocks.TokenVerifier{}, AccountConfig{})
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return now }

	resp, err := a.ForgotPassword(context.Background(), "jane@example.com")
	require.NoError(t, err)

	assert.Equal(t, "Reset code sent to your email.", resp.Message)
	assert.Equal(t, "jane@example.com", resp.Email)
	assert.Empty(t, resp.DebugResetCode)

	require.NotNil(t, stored.ResetCode)
	assert.Len(t, *stored.ResetCode, 6)
	require.NotNil(t, stored.ResetCodeExpiry)
	assert.Equal(t, now.Add(resetCodeTTL), *stored.ResetCodeExpiry)
}

func TestAccount_ForgotPassword_DebugExposesCode(t *testing.T) {
	user := localUser("jane@example.com", "$2a$10$digest")

	users := &mocks.UserStore{}
	mailer := &mocks.Mailer{}
	users.On("GetByEmail", mock.Anything, "jane@example.com").Return(user, nil)
	users.On("Update", mock.Anything, mock.Anything).
		Return(func(_ context.Context, u model.User) (model.User, error) { return u, nil })

	var mailedCode string
	mailer.On("SendResetCode", mock.Anything, "jane@example.com", "Jane", mock.Anything).
		Run(func(args mock.Arguments) { mailedCode = args.Get(3).(string) }).
		Return(nil)

	a := newAccountForTest(users, &mocks.PasswordHasher{}, mailer, &mocks.TokenVerifier{}, AccountConfig{DebugResetCode: true})

	resp, err := a.ForgotPassword(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, mailedCode, resp.DebugResetCode)
}

func TestAccount_ForgotPassword_UnknownEmail(t *testing.T) {
	users := &mocks.UserStore{}
	users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(model.User{}, model.ErrNotFound)

	a := newAccountForTest(users, &mocks.PasswordHasher{}, &mocks.Mailer{}, &mocks.TokenVerifier{}, AccountConfig{})

	_, err := a.ForgotPassword(context.Background(), "nobody@example.com")

	var valErr *model.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "No account found with this email", valErr.Message)
}

func TestAccount_ForgotPassword_GoogleAccountRejected(t *testing.T) {
	user := localUser("jane@example.com", "$2a$10$digest")
	user.Provider = model.ProviderGoogle

	users := &mocks.UserStore{}
	users.On("GetByEmail", mock.Anything, "jane@example.com").Return(user, nil)

	a := newAccountForTest(users, &mocks.PasswordHasher{}, &mocks.Mailer{}, &mocks.TokenVerifier{}, AccountConfig{})

	_, err := a.ForgotPassword(context.Background(), "jane@example.com")

	var valErr *model.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "Google accounts do not support password reset here", valErr.Message)
}

func TestAccount_ForgotPassword_MailFailureKeepsStoredCode(t *testing.T) {
	user := localUser("jane@example.com", "$2a$10$digest")

	users := &mocks.UserStore{}
	mailer := &mocks.Mailer{}
	users.On("GetByEmail", mock.Anything, "jane@example.com").Return(user, nil)

	updated := false
	users.On("Update", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { updated = true }).
		Return(func(_ context.Context, u model.User) (model.User, error) { return u, nil })
	mailer.On("SendResetCode", mock.Anything, "jane@example.com", "Jane", mock.Anything).
		Return(errors.New("dial tcp: connection refused"))

	a := newAccountForTest(users, &mocks.PasswordHasher{}, mailer, &mocks.TokenVerifier{}, AccountConfig{})

	_, err := a.ForgotPassword(context.Background(), "jane@example.com")

	var valErr *model.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "Could not send reset email. Check SMTP configuration.", valErr.Message)
	// the code was stored before delivery was attempted
	assert.True(t, updated)
	users.AssertNumberOfCalls(t, "Update", 1)
}

func TestAccount_ResetPassword_Success(t *testing.T) {
	code := "123456"
	expiry := time.Date(2026, 8, 1, 12, 10, 0, 0, time.UTC)
	user := localUser("jane@example.com", "$2a$10$old")
	user.ResetCode = &code
	user.ResetCodeExpiry = &expiry

	users := &mocks.UserStore{}
	hasher := &mocks.PasswordHasher{}
	users.On("GetByEmail", mock.Anything, "jane@example.com").Return(user, nil)
	hasher.On("Hash", "newsecret").Return("$2a$10$new", nil)

	var stored model.User
	users.On("Update", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { stored = args.Get(1).(model.User) }).
		Return(func(_ context.Context, u model.User) (model.User, error) { return u, nil })

	a := newAccountForTest(users, hasher, &mocks.Mailer{}, &mocks.TokenVerifier{}, AccountConfig{})
	a.now = func() time.Time { return expiry.Add(-time.Minute) }

	resp, err := a.ResetPassword(context.Background(), "jane@example.com", " 123456 ", "newsecret")
	require.NoError(t, err)
	assert.Equal(t, "Password reset successful", resp.Message)

	require.NotNil(t, stored.PasswordHash)
	assert.Equal(t, "$2a$10$new", *stored.PasswordHash)
	assert.Nil(t, stored.ResetCode)
	assert.Nil(t, stored.ResetCodeExpiry)
}

func TestAccount_ResetPassword_Failures(t *testing.T) {
	code := "123456"
	expiry := time.Date(2026, 8, 1, 12, 10, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mutate  func(u *model.User)
		now     time.Time
		code    string
		wantMsg string
	}{
		{
			name:    "wrong code",
			mutate:  func(u *model.User) {},
			now:     expiry.Add(-time.Minute),
			code:    "654321",
			wantMsg: "Invalid reset code",
		},
		{
			name:    "no code issued",
			mutate:  func(u *model.User) { u.ResetCode = nil },
			now:     expiry.Add(-time.Minute),
			code:    "123456",
			wantMsg: "Invalid reset code",
		},
		{
			name:    "expired code",
			mutate:  func(u *model.User) {},
			now:     expiry.Add(time.Second),
			code:    "123456",
			wantMsg: "Reset code expired. Request a new one.",
		},
		{
			name:    "google account",
			mutate:  func(u *model.User) { u.Provider = model.ProviderGoogle },
			now:     expiry.Add(-time.Minute),
			code:    "123456",
			wantMsg: "Google accounts do not support password reset here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := localUser("jane@example.com", "$2a$10$old")
			c := code
			e := expiry
			user.ResetCode = &c
			user.ResetCodeExpiry = &e
			tt.mutate(&user)

			users := &mocks.UserStore{}
			users.On("GetByEmail", mock.Anything, "jane@example.com").Return(user, nil)

			a := newAccountForTest(users, &mocks.PasswordHasher{}, &mocks.Mailer{}, &mocks.TokenVerifier{}, AccountConfig{})
			a.now = func() time.Time { return tt.now }

			_, err := a.ResetPassword(context.Background(), "jane@example.com", tt.code, "newsecret")

			var valErr *model.ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tt.wantMsg, valErr.Message)
		})
	}
}

func TestAccount_ResetPassword_UnknownAccount(t *testing.T) {
	users := &mocks.UserStore{}
	users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(model.User{}, model.ErrNotFound)

	a := newAccountForTest(users, &mocks.PasswordHasher{}, &mocks.Mailer{}, &mocks.TokenVerifier{}, AccountConfig{})

	_, err := a.ResetPassword(context.Background(), "nobody@example.com", "123456", "newsecret")

	var valErr *model.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "Account not found", valErr.Message)
}

func TestAccount_LoginWithGoogle_NewUser(t *testing.T) {
	users := &mocks.UserStore{}
	verifier := &mocks.TokenVerifier{}

	verifier.On("Verify", mock.Anything, "id-token").Return(model.GoogleClaims{
		Audience:      "client-id-123",
		Email:         "Jane@Gmail.com",
		EmailVerified: true,
		Name:          "",
		Picture:       "",
	}, nil)
	users.On("GetByEmail", mock.Anything, "jane@gmail.com").Return(model.User{}, model.ErrNotFound)

	var created model.User
	users.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { created = args.Get(1).(model.User) }).
		Return(func(_ context.Context, u model.User) (model.User, error) { return u, nil })

	a := newAccountForTest(users, &mocks.PasswordHasher{}, &mocks.Mailer{}, verifier, AccountConfig{GoogleClientID: "client-id-123"})

	resp, err := a.LoginWithGoogle(context.Background(), "id-token")
	require.NoError(t, err)

	assert.Equal(t, "Google login successful", resp.Message)
	assert.Equal(t, "Google User", created.Name)
	assert.Equal(t, "jane@gmail.com", created.Email)
	assert.Equal(t, model.ProviderGoogle, created.Provider)
	assert.Nil(t, created.PasswordHash)
	assert.Equal(t, "https://api.dicebear.com/7.x/avataaars/svg?seed=jane@gmail.com", created.AvatarURL)
}

func TestAccount_LoginWithGoogle_ConvertsLocalAccount(t *testing.T) {
	existing := localUser("jane@gmail.com", "$2a$10$digest")

	users := &mocks.UserStore{}
	verifier := &mocks.TokenVerifier{}

	verifier.On("Verify", mock.Anything, "id-token").Return(model.GoogleClaims{
		Email:         "jane@gmail.com",
		EmailVerified: true,
		Name:          "Jane D",
		Picture:       "https://lh3.example/p.jpg",
	}, nil)
	users.On("GetByEmail", mock.Anything, "jane@gmail.com").Return(existing, nil)

	var updated model.User
	users.On("Update", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { updated = args.Get(1).(model.User) }).
		Return(func(_ context.Context, u model.User) (model.User, error) { return u, nil })

	a := newAccountForTest(users, &mocks.PasswordHasher{}, &mocks.Mailer{}, verifier, AccountConfig{})

	_, err := a.LoginWithGoogle(context.Background(), "id-token")
	require.NoError(t, err)

	assert.Equal(t, model.ProviderGoogle, updated.Provider)
	assert.Equal(t, "Jane D", updated.Name)
	assert.Equal(t, "https://lh3.example/p.jpg", updated.AvatarURL)
	// the old hash stays but password login is now disabled by provider
	require.NotNil(t, updated.PasswordHash)
	assert.Equal(t, existing.PasswordHash, updated.PasswordHash)
}

func TestAccount_LoginWithGoogle_BlankClaimsKeepExistingProfile(t *testing.T) {
	existing := localUser("jane@gmail.com", "$2a$10$digest")

	users := &mocks.UserStore{}
	verifier := &mocks.TokenVerifier{}

	verifier.On("Verify", mock.Anything, "id-token").Return(model.GoogleClaims{
		Email:         "jane@gmail.com",
		EmailVerified: true,
	}, nil)
	users.On("GetByEmail", mock.Anything, "jane@gmail.com").Return(existing, nil)

	var updated model.User
	users.On("Update", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { updated = args.Get(1).(model.User) }).
		Return(func(_ context.Context, u model.User) (model.User, error) { return u, nil })

	a := newAccountForTest(users, &mocks.PasswordHasher{}, &mocks.Mailer{}, verifier, AccountConfig{})

	_, err := a.LoginWithGoogle(context.Background(), "id-token")
	require.NoError(t, err)

	assert.Equal(t, existing.Name, updated.Name)
	assert.Equal(t, existing.AvatarURL, updated.AvatarURL)
}

func TestAccount_LoginWithGoogle_BlankToken(t *testing.T) {
	a := newAccountForTest(&mocks.UserStore{}, &mocks.PasswordHasher{}, &mocks.Mailer{}, &mocks.TokenVerifier{}, AccountConfig{})

	_, err := a.LoginWithGoogle(context.Background(), "   ")

	var valErr *model.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "Google token is required", valErr.Message)
}

func TestAccount_LoginWithGoogle_Failures(t *testing.T) {
	tests := []struct {
		name    string
		claims  model.GoogleClaims
		err     error
		wantMsg string
	}{
		{
			name:    "verifier failure",
			err:     errors.New("tokeninfo endpoint returned status 400"),
			wantMsg: "Google login failed: tokeninfo endpoint returned status 400",
		},
		{
			name:    "unverified email",
			claims:  model.GoogleClaims{Email: "jane@gmail.com", EmailVerified: false},
			wantMsg: "Google login failed: Google email is not verified",
		},
		{
			name:    "audience mismatch",
			claims:  model.GoogleClaims{Audience: "other-client", Email: "jane@gmail.com", EmailVerified: true},
			wantMsg: "Google login failed: Google token audience mismatch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &mocks.TokenVerifier{}
			verifier.On("Verify", mock.Anything, "id-token").Return(tt.claims, tt.err)

			a := newAccountForTest(&mocks.UserStore{}, &mocks.PasswordHasher{}, &mocks.Mailer{}, verifier, AccountConfig{GoogleClientID: "client-id-123"})

			_, err := a.LoginWithGoogle(context.Background(), "id-token")

			var valErr *model.ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tt.wantMsg, valErr.Message)
		})
	}
}

func TestAccount_LoginWithGoogle_EmptyClientIDSkipsAudienceCheck(t *testing.T) {
	users := &mocks.UserStore{}
	verifier := &mocks.TokenVerifier{}

	verifier.On("Verify", mock.Anything, "id-token").Return(model.GoogleClaims{
		Audience:      "any-audience",
		Email:         "jane@gmail.com",
		EmailVerified: true,
	}, nil)
	users.On("GetByEmail", mock.Anything, "jane@gmail.com").Return(model.User{}, model.ErrNotFound)
	users.On("Create", mock.Anything, mock.Anything).
		Return(func(_ context.Context, u model.User) (model.User, error) { return u, nil })

	a := newAccountForTest(users, &mocks.PasswordHasher{}, &mocks.Mailer{}, verifier, AccountConfig{})

	_, err := a.LoginWithGoogle(context.Background(), "id-token")
	require.NoError(t, err)
}

func TestGenerateResetCode(t *testing.T) {
	for range 100 {
		code, err := generateResetCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		assert.GreaterOrEqual(t, code, "100000")
		assert.LessOrEqual(t, code, "999999")
	}
}
