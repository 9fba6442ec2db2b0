package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/oauth2"

	"covidhelp/internal/domain"
)

type fakeUserRepo struct {
	byGoogleID map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byGoogleID: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error { return nil }
func (f *fakeUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeUserRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.Status) (*domain.User, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeUserRepo) FindWithStatus(ctx context.Context) ([]domain.User, error) { return nil, nil }
func (f *fakeUserRepo) FindByRequirement(ctx context.Context, req domain.Requirement) ([]domain.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) FindOtherRequirements(ctx context.Context) ([]domain.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) FindOrCreateByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	if u, ok := f.byGoogleID[googleID]; ok {
		return u, nil
	}
	u := &domain.User{ID: primitive.NewObjectID(), GoogleID: googleID}
	f.byGoogleID[googleID] = u
	return u, nil
}

// newTestGoogle points both provider endpoints at local test servers.
func newTestGoogle(t *testing.T, userinfoStatus int, userinfoBody string) (*Google, *fakeUserRepo) {
	t.Helper()

	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/token":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"access_token":"test-token","token_type":"Bearer"}`))
		case "/userinfo":
			w.WriteHeader(userinfoStatus)
			w.Write([]byte(userinfoBody))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(provider.Close)

	users := newFakeUserRepo()
	g := NewGoogle(Config{ClientID: "id", ClientSecret: "secret", CallbackURL: "http://localhost/cb"}, users)
	g.SetEndpoints(oauth2.Endpoint{
		AuthURL:  provider.URL + "/auth",
		TokenURL: provider.URL + "/token",
	}, provider.URL+"/userinfo")
	return g, users
}

func TestAuthenticateCreatesUserOnFirstLogin(t *testing.T) {
	g, users := newTestGoogle(t, http.StatusOK, `{"sub":"google-123","name":"Alice"}`)

	user, err := g.Authenticate(context.Background(), "some-code")
	require.NoError(t, err)
	assert.Equal(t, "google-123", user.GoogleID)
	assert.Empty(t, user.PasswordHash)
	assert.Len(t, users.byGoogleID, 1)
}

func TestAuthenticateReusesExistingUser(t *testing.T) {
	g, _ := newTestGoogle(t, http.StatusOK, `{"sub":"google-123"}`)

	first, err := g.Authenticate(context.Background(), "code-1")
	require.NoError(t, err)
	second, err := g.Authenticate(context.Background(), "code-2")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestAuthenticateUserinfoFailure(t *testing.T) {
	g, _ := newTestGoogle(t, http.StatusForbidden, "")

	_, err := g.Authenticate(context.Background(), "some-code")
	assert.ErrorIs(t, err, ErrProvider)
}

func TestAuthenticateMissingSubject(t *testing.T) {
	g, _ := newTestGoogle(t, http.StatusOK, `{"name":"No Subject"}`)

	_, err := g.Authenticate(context.Background(), "some-code")
	assert.ErrorIs(t, err, ErrProvider)
}

func TestAuthCodeURLCarriesState(t *testing.T) {
	g, _ := newTestGoogle(t, http.StatusOK, `{}`)

	url := g.AuthCodeURL("state-token")
	assert.Contains(t, url, "state=state-token")
	assert.Contains(t, url, "client_id=id")
}
