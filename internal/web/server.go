package web

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"covidhelp/internal/domain"
)

const (
	// Shared token bucket for the credential endpoints.
	authRateLimit = 5
	authRateBurst = 10
)

// NewServer assembles the echo instance with every route from the HTTP
// surface, the embedded renderer, and the standard middleware stack.
func NewServer(h *Handler) (*echo.Echo, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	registerRoutes(e, h)
	return e, nil
}

func registerRoutes(e *echo.Echo, h *Handler) {
	limited := rateLimit(rate.NewLimiter(authRateLimit, authRateBurst))

	e.GET("/", h.Feed)
	e.GET("/feed", h.Feed)

	e.GET("/login", h.LoginPage)
	e.GET("/register", h.RegisterPage)
	e.POST("/login", h.Login, limited)
	e.POST("/register", h.Register, limited)
	e.GET("/logout", h.Logout)

	e.GET("/auth/google", h.GoogleLogin)
	e.GET("/auth/google/covid", h.GoogleCallback)

	e.GET("/post", h.PostPage, h.requireAuth)
	e.POST("/post", h.SubmitStatus, h.requireAuth)

	// request listings by category
	for _, req := range domain.Requirements() {
		e.GET(req.Redirect(), h.usersByRequirement(req))
	}
	e.GET("/others", h.OtherUsers)

	// offer submission and listings; every listing shows the whole
	// collection, only the page title differs
	e.GET("/post-services", h.PostServicesPage)
	e.POST("/post-services", h.SubmitOffer)
	e.GET("/services", h.listOffers("All services"))
	e.GET("/otherss", h.listOffers("Other services"))
	offerTypes := []domain.OfferType{
		domain.FinancialServices,
		domain.FoodServices,
		domain.AmbulanceServices,
		domain.OfferBedsWithoutOxy,
		domain.OfferBedsWithOxygen,
		domain.OfferMedicineType,
		domain.OxygenSupply,
		domain.OfferPlasma,
		domain.Vaccination,
	}
	for _, typ := range offerTypes {
		e.GET(typ.Redirect(), h.listOffers(string(typ)))
	}
}
