package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Identity is what the provider tells us about the authenticated person.
type Identity struct {
	Subject string
	Email   string
	Name    string
}

// IdentityService exchanges an OAuth authorization code for the identity it
// represents. The provider itself (login pages, consent, sessions) is an
// external collaborator; this is the only part of its contract we consume.
type IdentityService interface {
	ExchangeCode(code string) (*Identity, error)
}

type httpIdentityService struct {
	tokenURL     string
	clientID     string
	clientSecret string
	client       *http.Client
}

// NewIdentityService builds the provider client from OAUTH_TOKEN_URL,
// OAUTH_CLIENT_ID and OAUTH_CLIENT_SECRET.
func NewIdentityService() IdentityService {
	return &httpIdentityService{
		tokenURL:     os.Getenv("OAUTH_TOKEN_URL"),
		clientID:     os.Getenv("OAUTH_CLIENT_ID"),
		clientSecret: os.Getenv("OAUTH_CLIENT_SECRET"),
		client:       &http.Client{Timeout: 10 * time.Second},
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"user"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (s *httpIdentityService) ExchangeCode(code string) (*Identity, error) {
	if s.tokenURL == "" {
		return nil, errors.New("identity provider not configured")
	}

	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("client_id", s.clientID)
	form.Set("client_secret", s.clientSecret)

	resp, err := s.client.Post(s.tokenURL, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("code exchange request failed: %w", err)
	}
	defer resp.Body.Close()

	var body tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("invalid provider response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if body.ErrorDescription != "" {
			return nil, errors.New(body.ErrorDescription)
		}
		if body.Error != "" {
			return nil, errors.New(body.Error)
		}
		return nil, fmt.Errorf("code exchange rejected with status %d", resp.StatusCode)
	}

	if body.User.ID == "" {
		return nil, errors.New("provider response carried no user")
	}

	return &Identity{
		Subject: body.User.ID,
		Email:   body.User.Email,
		Name:    body.User.Name,
	}, nil
}
