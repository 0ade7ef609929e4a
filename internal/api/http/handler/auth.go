// Package handler contains the HTTP handlers for the public JSON API.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resumeforge/resumeforge-server/internal/logger"
	"github.com/resumeforge/resumeforge-server/internal/service"
)

// AccountService defines the account operations the auth handler needs.
type AccountService interface {
	Signup(ctx context.Context, name, email, password string) (service.AuthResponse, error)
	Login(ctx context.Context, email, password string) (service.AuthResponse, error)
	ForgotPassword(ctx context.Context, email string) (service.ForgotPasswordResponse, error)
	ResetPassword(ctx context.Context, email, code, newPassword string) (service.ResetPasswordResponse, error)
	LoginWithGoogle(ctx context.Context, idToken string) (service.AuthResponse, error)
}

// Auth handles the /auth endpoints.
type Auth struct {
	account AccountService
	logger  *logger.Logger
}

// NewAuth creates an Auth handler.
func NewAuth(account AccountService, logger *logger.Logger) *Auth {
	return &Auth{
		account: account,
		logger:  logger,
	}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}

type googleLoginRequest struct {
	IDToken string `json:"idToken"`
}

// Signup handles POST /auth/signup.
func (h *Auth) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	resp, err := h.account.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Login handles POST /auth/login.
func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	resp, err := h.account.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ForgotPassword handles POST /auth/forgot-password.
func (h *Auth) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	resp, err := h.account.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ResetPassword handles POST /auth/reset-password.
func (h *Auth) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	resp, err := h.account.ResetPassword(c.Request.Context(), req.Email, req.Code, req.NewPassword)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Google handles POST /auth/google.
func (h *Auth) Google(c *gin.Context) {
	var req googleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	resp, err := h.account.LoginWithGoogle(c.Request.Context(), req.IDToken)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
