package web

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"covidhelp/internal/domain"
	"covidhelp/internal/oauth"
	"covidhelp/internal/session"
	"covidhelp/internal/usecase"
)

const stateCookieName = "covidhelp_oauth_state"

// Handler holds every route's dependencies.
type Handler struct {
	auth     *usecase.AuthService
	status   *usecase.StatusService
	offers   *usecase.OfferService
	listings *usecase.ListingService
	sessions *session.Manager
	google   *oauth.Google
}

func NewHandler(
	auth *usecase.AuthService,
	status *usecase.StatusService,
	offers *usecase.OfferService,
	listings *usecase.ListingService,
	sessions *session.Manager,
	google *oauth.Google,
) *Handler {
	return &Handler{
		auth:     auth,
		status:   status,
		offers:   offers,
		listings: listings,
		sessions: sessions,
		google:   google,
	}
}

type feedPage struct {
	Title string
	Users []domain.User
}

type servicesPage struct {
	Title  string
	Offers []domain.ServiceOffer
}

// Feed lists every user who has submitted a request.
func (h *Handler) Feed(c echo.Context) error {
	users, err := h.listings.UsersWithStatus(c.Request().Context())
	if err != nil {
		return storeFailure(c, err)
	}
	return c.Render(http.StatusOK, "feed.html", feedPage{Title: "All requests", Users: users})
}

// usersByRequirement builds the listing handler for one category page.
func (h *Handler) usersByRequirement(req domain.Requirement) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := h.listings.UsersByRequirement(c.Request().Context(), req)
		if err != nil {
			return storeFailure(c, err)
		}
		return c.Render(http.StatusOK, "feed.html", feedPage{Title: string(req), Users: users})
	}
}

// OtherUsers lists submitted requests outside the known categories.
func (h *Handler) OtherUsers(c echo.Context) error {
	users, err := h.listings.OtherUsers(c.Request().Context())
	if err != nil {
		return storeFailure(c, err)
	}
	return c.Render(http.StatusOK, "feed.html", feedPage{Title: "Other requests", Users: users})
}

func (h *Handler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", nil)
}

func (h *Handler) RegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", nil)
}

// Register creates the identity and establishes a session. A taken handle
// sends the caller back to the form, exactly like a failed login does.
func (h *Handler) Register(c echo.Context) error {
	var form credentialsForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	user, err := h.auth.Register(c.Request().Context(), form.Username, form.Password)
	if errors.Is(err, domain.ErrDuplicateHandle) {
		return c.Redirect(http.StatusSeeOther, "/register")
	}
	if err != nil {
		return storeFailure(c, err)
	}

	if err := h.sessions.Establish(c, user); err != nil {
		return storeFailure(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/feed")
}

func (h *Handler) Login(c echo.Context) error {
	var form credentialsForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	user, err := h.auth.Login(c.Request().Context(), form.Username, form.Password)
	if errors.Is(err, domain.ErrInvalidCredential) {
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	if err != nil {
		return storeFailure(c, err)
	}

	if err := h.sessions.Establish(c, user); err != nil {
		return storeFailure(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/feed")
}

func (h *Handler) Logout(c echo.Context) error {
	if err := h.sessions.Terminate(c); err != nil {
		return storeFailure(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/feed")
}

// GoogleLogin redirects the browser to the provider's consent page. The
// state token is pinned in a short-lived cookie for the callback to verify.
func (h *Handler) GoogleLogin(c echo.Context) error {
	state := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		Expires:  time.Now().Add(10 * time.Minute),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, h.google.AuthCodeURL(state))
}

// GoogleCallback completes federated login and establishes a session.
// Provider-side failures go back to the login page; store failures are 500s.
func (h *Handler) GoogleCallback(c echo.Context) error {
	cookie, err := c.Cookie(stateCookieName)
	if err != nil || cookie.Value == "" || cookie.Value != c.QueryParam("state") {
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	user, err := h.google.Authenticate(c.Request().Context(), c.QueryParam("code"))
	if errors.Is(err, oauth.ErrProvider) {
		log.Printf("google callback rejected: %v", err)
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	if err != nil {
		return storeFailure(c, err)
	}

	if err := h.sessions.Establish(c, user); err != nil {
		return storeFailure(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/feed")
}

func (h *Handler) PostPage(c echo.Context) error {
	return c.Render(http.StatusOK, "post.html", nil)
}

// SubmitStatus overwrites the caller's status record and redirects to the
// listing page for the submitted requirement.
func (h *Handler) SubmitStatus(c echo.Context) error {
	user := currentIdentity(c)
	if user == nil {
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	status, err := parseStatusForm(c)
	if err != nil {
		return err
	}

	target, err := h.status.Submit(c.Request().Context(), user.ID, status)
	if errors.Is(err, domain.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return storeFailure(c, err)
	}
	return c.Redirect(http.StatusSeeOther, target)
}

func (h *Handler) PostServicesPage(c echo.Context) error {
	return c.Render(http.StatusOK, "post-services.html", nil)
}

// SubmitOffer records an anonymous offer and redirects to its type's page.
func (h *Handler) SubmitOffer(c echo.Context) error {
	var form offerForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	target, err := h.offers.Submit(c.Request().Context(), form.toOffer())
	if err != nil {
		return storeFailure(c, err)
	}
	return c.Redirect(http.StatusSeeOther, target)
}

// listOffers builds the handler for one offer listing page. Every page shows
// the whole collection; only the title differs.
func (h *Handler) listOffers(title string) echo.HandlerFunc {
	return func(c echo.Context) error {
		offers, err := h.offers.List(c.Request().Context())
		if err != nil {
			return storeFailure(c, err)
		}
		return c.Render(http.StatusOK, "services.html", servicesPage{Title: title, Offers: offers})
	}
}

// storeFailure logs the persistence error and degrades to a generic 500. No
// store error is ever retried.
func storeFailure(c echo.Context, err error) error {
	log.Printf("store failure on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
