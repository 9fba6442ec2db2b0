package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"covidhelp/internal/domain"
	"covidhelp/internal/repository"
)

// CookieName is the session cookie the portal sets on login.
const CookieName = "covidhelp_session"

// Manager binds a browser to an authenticated identity. The cookie holds an
// HS256-signed token whose only payload is the session id; the store maps
// that id to a user id, and the full identity is re-hydrated from the user
// store on every request.
type Manager struct {
	store  Store
	users  repository.UserRepository
	secret []byte
	ttl    time.Duration
}

func NewManager(store Store, users repository.UserRepository, secret string, ttl time.Duration) *Manager {
	return &Manager{
		store:  store,
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Establish binds future requests from this client to the given user until
// logout or expiry.
func (m *Manager) Establish(c echo.Context, user *domain.User) error {
	sid := uuid.NewString()
	ctx := c.Request().Context()

	if err := m.store.Set(ctx, sid, user.ID.Hex(), m.ttl); err != nil {
		return fmt.Errorf("storing session: %w", err)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        sid,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return fmt.Errorf("signing session cookie: %w", err)
	}

	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		Expires:  now.Add(m.ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Current resolves the request's session to a full identity. An absent
// cookie, a tampered or expired token, and a store miss all come back as
// domain.ErrNotFound; anything else is a store failure.
func (m *Manager) Current(c echo.Context) (*domain.User, error) {
	cookie, err := c.Cookie(CookieName)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	sid, err := m.parseSessionID(cookie.Value)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	ctx := c.Request().Context()
	userID, err := m.store.Get(ctx, sid)
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return m.users.FindByID(ctx, oid)
}

// Terminate invalidates the session binding. It is a no-op for anonymous
// callers.
func (m *Manager) Terminate(c echo.Context) error {
	cookie, err := c.Cookie(CookieName)
	if err != nil {
		return nil
	}

	if sid, err := m.parseSessionID(cookie.Value); err == nil {
		if err := m.store.Delete(c.Request().Context(), sid); err != nil {
			return fmt.Errorf("deleting session: %w", err)
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return nil
}

func (m *Manager) parseSessionID(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}
	if claims.ID == "" {
		return "", errors.New("session token has no id")
	}
	return claims.ID, nil
}
