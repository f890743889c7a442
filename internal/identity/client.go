// Package identity wraps the external identity provider and owns the portal's
// single source of truth for the current principal.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/domain"
)

type Config struct {
	BaseURL      string
	TokenBaseURL string
	APIKey       string
	Timeout      time.Duration
}

// Client speaks the provider's accounts REST API.
type Client struct {
	base      string
	tokenBase string
	apiKey    string
	http      *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		base:      cfg.BaseURL,
		tokenBase: cfg.TokenBaseURL,
		apiKey:    cfg.APIKey,
		http:      &http.Client{Timeout: cfg.Timeout},
	}
}

// Account is the provider's view of a signed-in user plus its session tokens.
type Account struct {
	UID           string
	Email         string
	DisplayName   string
	PhotoURL      string
	EmailVerified bool
	IDToken       string
	RefreshToken  string
}

type providerError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) post(ctx context.Context, action string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	endpoint := c.base + "/v1/accounts:" + action + "?key=" + url.QueryEscape(c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: accounts:%s: %v", domain.ErrNetwork, action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var pe providerError
		if err := json.NewDecoder(resp.Body).Decode(&pe); err != nil {
			return fmt.Errorf("%w: accounts:%s returned %d", domain.ErrNetwork, action, resp.StatusCode)
		}
		return mapProviderError(pe.Error.Message)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode accounts:%s response: %v", domain.ErrNetwork, action, err)
	}
	return nil
}

// mapProviderError translates provider rejection codes into domain errors.
func mapProviderError(code string) error {
	switch code {
	case "EMAIL_EXISTS":
		return domain.ErrEmailInUse
	case "WEAK_PASSWORD", "MISSING_PASSWORD":
		return domain.ErrWeakPassword
	case "INVALID_EMAIL", "MISSING_EMAIL":
		return domain.ErrInvalidEmail
	case "EMAIL_NOT_FOUND", "USER_DISABLED", "USER_NOT_FOUND":
		return domain.ErrAccountNotFound
	case "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS":
		return domain.ErrWrongPassword
	case "TOO_MANY_ATTEMPTS_TRY_LATER":
		return domain.ErrTooManyRequests
	default:
		return fmt.Errorf("%w: provider rejected: %s", domain.ErrNetwork, code)
	}
}

type signUpRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type authResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	PhotoURL     string `json:"photoUrl"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
}

func (c *Client) SignUp(ctx context.Context, email, password string) (*Account, error) {
	var resp authResponse
	if err := c.post(ctx, "signUp", signUpRequest{Email: email, Password: password, ReturnSecureToken: true}, &resp); err != nil {
		return nil, err
	}
	return accountFromAuth(resp), nil
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*Account, error) {
	var resp authResponse
	if err := c.post(ctx, "signInWithPassword", signUpRequest{Email: email, Password: password, ReturnSecureToken: true}, &resp); err != nil {
		return nil, err
	}

	acc := accountFromAuth(resp)
	// password sign-in does not report verification state; look it up
	if err := c.fillFromLookup(ctx, acc); err != nil {
		return nil, err
	}
	return acc, nil
}

type idpRequest struct {
	PostBody            string `json:"postBody"`
	RequestURI          string `json:"requestUri"`
	ReturnSecureToken   bool   `json:"returnSecureToken"`
	ReturnIdpCredential bool   `json:"returnIdpCredential"`
}

type idpResponse struct {
	authResponse
	EmailVerified bool `json:"emailVerified"`
}

// SignInWithIDP exchanges a federated provider's ID token, obtained by the
// browser popup, for a provider session. An empty token means the user closed
// the popup without completing the flow.
func (c *Client) SignInWithIDP(ctx context.Context, providerID, providerToken string) (*Account, error) {
	if providerToken == "" {
		return nil, domain.ErrPopupClosed
	}

	var resp idpResponse
	err := c.post(ctx, "signInWithIdp", idpRequest{
		PostBody:            "id_token=" + providerToken + "&providerId=" + providerID,
		RequestURI:          "http://localhost",
		ReturnSecureToken:   true,
		ReturnIdpCredential: true,
	}, &resp)
	if err != nil {
		return nil, err
	}

	acc := accountFromAuth(resp.authResponse)
	acc.EmailVerified = resp.EmailVerified
	return acc, nil
}

type updateRequest struct {
	IDToken           string `json:"idToken"`
	DisplayName       string `json:"displayName,omitempty"`
	PhotoURL          string `json:"photoUrl,omitempty"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

func (c *Client) UpdateProfile(ctx context.Context, idToken string, input domain.UpdateProfileInput) (*Account, error) {
	var resp authResponse
	err := c.post(ctx, "update", updateRequest{
		IDToken:     idToken,
		DisplayName: input.DisplayName,
		PhotoURL:    input.PhotoURL,
	}, &resp)
	if err != nil {
		return nil, err
	}

	acc := accountFromAuth(resp)
	acc.IDToken = idToken
	return acc, nil
}

type lookupRequest struct {
	IDToken string `json:"idToken"`
}

type lookupResponse struct {
	Users []struct {
		LocalID       string `json:"localId"`
		Email         string `json:"email"`
		DisplayName   string `json:"displayName"`
		PhotoURL      string `json:"photoUrl"`
		EmailVerified bool   `json:"emailVerified"`
	} `json:"users"`
}

func (c *Client) Lookup(ctx context.Context, idToken string) (*Account, error) {
	acc := &Account{IDToken: idToken}
	if err := c.fillFromLookup(ctx, acc); err != nil {
		return nil, err
	}
	return acc, nil
}

func (c *Client) fillFromLookup(ctx context.Context, acc *Account) error {
	var resp lookupResponse
	if err := c.post(ctx, "lookup", lookupRequest{IDToken: acc.IDToken}, &resp); err != nil {
		return err
	}
	if len(resp.Users) == 0 {
		return domain.ErrAccountNotFound
	}

	u := resp.Users[0]
	acc.UID = u.LocalID
	acc.Email = u.Email
	acc.DisplayName = u.DisplayName
	acc.PhotoURL = u.PhotoURL
	acc.EmailVerified = u.EmailVerified
	return nil
}

type refreshResponse struct {
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
}

// Refresh exchanges a refresh token for a fresh ID token.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*Account, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)

	endpoint := c.tokenBase + "/v1/token?key=" + url.QueryEscape(c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBufferString(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: token refresh: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var pe providerError
		if err := json.NewDecoder(resp.Body).Decode(&pe); err != nil {
			return nil, fmt.Errorf("%w: token refresh returned %d", domain.ErrNetwork, resp.StatusCode)
		}
		return nil, mapProviderError(pe.Error.Message)
	}

	var rr refreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return nil, fmt.Errorf("%w: decode token refresh response: %v", domain.ErrNetwork, err)
	}

	acc := &Account{
		UID:          rr.UserID,
		IDToken:      rr.IDToken,
		RefreshToken: rr.RefreshToken,
	}
	if err := c.fillFromLookup(ctx, acc); err != nil {
		return nil, err
	}
	return acc, nil
}

func accountFromAuth(resp authResponse) *Account {
	return &Account{
		UID:          resp.LocalID,
		Email:        resp.Email,
		DisplayName:  resp.DisplayName,
		PhotoURL:     resp.PhotoURL,
		IDToken:      resp.IDToken,
		RefreshToken: resp.RefreshToken,
	}
}

// Principal projects the account into the domain identity object.
func (a *Account) Principal() *domain.Principal {
	return &domain.Principal{
		UID:           a.UID,
		Email:         a.Email,
		DisplayName:   a.DisplayName,
		PhotoURL:      a.PhotoURL,
		EmailVerified: a.EmailVerified,
	}
}
