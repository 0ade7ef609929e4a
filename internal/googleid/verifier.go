// Package googleid validates Google ID tokens via the tokeninfo endpoint.
package googleid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/resumeforge/resumeforge-server/internal/model"
)

const defaultTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

var _ model.TokenVerifier = (*Verifier)(nil)

// Config holds verifier settings. Zero values fall back to the public
// Google endpoint and a short-timeout HTTP client.
type Config struct {
	TokenInfoURL string
	HTTPClient   *http.Client
}

// Verifier resolves ID tokens to claims by calling Google's tokeninfo API.
type Verifier struct {
	tokenInfoURL string
	client       *http.Client
}

// New creates a Verifier from config.
func New(config Config) *Verifier {
	tokenInfoURL := config.TokenInfoURL
	if tokenInfoURL == "" {
		tokenInfoURL = defaultTokenInfoURL
	}

	client := config.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	return &Verifier{
		tokenInfoURL: tokenInfoURL,
		client:       client,
	}
}

// tokenInfoResponse mirrors the tokeninfo payload. Google serves
// email_verified as the string "true"/"false" on this endpoint, so it is
// decoded leniently.
type tokenInfoResponse struct {
	Audience      string          `json:"aud"`
	Email         string          `json:"email"`
	EmailVerified json.RawMessage `json:"email_verified"`
	Name          string          `json:"name"`
	Picture       string          `json:"picture"`
}

// Verify calls the tokeninfo endpoint and returns the token's claims.
// A non-200 response means the token is invalid or expired.
func (v *Verifier) Verify(ctx context.Context, idToken string) (model.GoogleClaims, error) {
	reqURL := v.tokenInfoURL + "?id_token=" + url.QueryEscape(idToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return model.GoogleClaims{}, fmt.Errorf("failed to build tokeninfo request: %w", err)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return model.GoogleClaims{}, fmt.Errorf("failed to call tokeninfo endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.GoogleClaims{}, fmt.Errorf("tokeninfo endpoint returned status %d", resp.StatusCode)
	}

	var info tokenInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return model.GoogleClaims{}, fmt.Errorf("failed to decode tokeninfo response: %w", err)
	}

	return model.GoogleClaims{
		Audience:      info.Audience,
		Email:         info.Email,
		EmailVerified: parseFlexBool(info.EmailVerified),
		Name:          info.Name,
		Picture:       info.Picture,
	}, nil
}

// parseFlexBool accepts both JSON booleans and quoted "true"/"false".
func parseFlexBool(raw json.RawMessage) bool {
	trimmed := bytes.Trim(bytes.TrimSpace(raw), `"`)
	return string(trimmed) == "true"
}
