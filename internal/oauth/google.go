package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"covidhelp/internal/domain"
	"covidhelp/internal/repository"
)

const userInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

// ErrProvider marks failures on the identity-provider side of the exchange
// (denied consent, bad code, unreachable userinfo endpoint). Callers send
// those back to the login page; anything else is a store failure.
var ErrProvider = errors.New("identity provider error")

// Config carries the registered client settings for the Google app.
type Config struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

// Google exchanges an authorization code for a local identity, creating one
// on first login. The created record carries only the provider's stable
// subject id; no credential hash is set.
type Google struct {
	conf        *oauth2.Config
	users       repository.UserRepository
	userInfoURL string
}

func NewGoogle(cfg Config, users repository.UserRepository) *Google {
	return &Google{
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Scopes:       []string{"profile"},
			Endpoint:     google.Endpoint,
		},
		users:       users,
		userInfoURL: userInfoURL,
	}
}

// SetEndpoints overrides the provider's OAuth endpoints and userinfo URL.
// Intended for tests that stand in for the provider.
func (g *Google) SetEndpoints(endpoint oauth2.Endpoint, infoURL string) {
	g.conf.Endpoint = endpoint
	g.userInfoURL = infoURL
}

// AuthCodeURL builds the provider redirect for the login entry point.
func (g *Google) AuthCodeURL(state string) string {
	return g.conf.AuthCodeURL(state)
}

type profile struct {
	Sub  string `json:"sub"`
	Name string `json:"name"`
}

// Authenticate completes the callback half of the flow: code exchange,
// userinfo fetch, then an atomic find-or-create on the subject id.
func (g *Google) Authenticate(ctx context.Context, code string) (*domain.User, error) {
	token, err := g.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: exchanging code: %v", ErrProvider, err)
	}

	p, err := g.fetchProfile(ctx, token)
	if err != nil {
		return nil, err
	}

	return g.users.FindOrCreateByGoogleID(ctx, p.Sub)
}

func (g *Google) fetchProfile(ctx context.Context, token *oauth2.Token) (*profile, error) {
	resp, err := g.conf.Client(ctx, token).Get(g.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching userinfo: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: userinfo returned %d", ErrProvider, resp.StatusCode)
	}

	var p profile
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: decoding userinfo: %v", ErrProvider, err)
	}
	if p.Sub == "" {
		return nil, fmt.Errorf("%w: userinfo has no subject id", ErrProvider)
	}
	return &p, nil
}
