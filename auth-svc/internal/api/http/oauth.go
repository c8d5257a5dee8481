package httpapi

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"foodbites/auth-svc/internal/domain"
)

const userinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type GoogleVerifier interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (domain.GoogleProfile, error)
}

type GoogleOAuth struct {
	Config *oauth2.Config
}

func NewGoogleOAuth(clientID, clientSecret, redirectURL string) *GoogleOAuth {
	return &GoogleOAuth{
		Config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (g *GoogleOAuth) AuthURL(state string) string {
	return g.Config.AuthCodeURL(state)
}

func (g *GoogleOAuth) Exchange(ctx context.Context, code string) (domain.GoogleProfile, error) {
	var profile domain.GoogleProfile

	token, err := g.Config.Exchange(ctx, code)
	if err != nil {
		return profile, fmt.Errorf("code exchange failed: %w", err)
	}

	resp, err := g.Config.Client(ctx, token).Get(userinfoURL)
	if err != nil {
		return profile, fmt.Errorf("userinfo fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return profile, fmt.Errorf("userinfo decode failed: %w", err)
	}
	return profile, nil
}

var _ GoogleVerifier = (*GoogleOAuth)(nil)
