package web

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"covidhelp/internal/domain"
)

type credentialsForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

type offerForm struct {
	Type   string `form:"type"`
	PName  string `form:"pname"`
	Help   string `form:"help"`
	Detail string `form:"detail"`
	City   string `form:"city"`
	State  string `form:"state"`
	Phone  string `form:"phone"`
}

func (f offerForm) toOffer() *domain.ServiceOffer {
	return &domain.ServiceOffer{
		Type:         domain.OfferType(f.Type),
		ProviderName: f.PName,
		Help:         f.Help,
		Detail:       f.Detail,
		City:         f.City,
		State:        f.State,
		Phone:        f.Phone,
	}
}

// parseStatusForm reads the request form into a typed status. Numeric fields
// are optional: absent values become zero, malformed ones are a 400 before
// anything reaches the store.
func parseStatusForm(c echo.Context) (domain.Status, error) {
	age, err := parseOptionalInt(c.FormValue("age"))
	if err != nil {
		return domain.Status{}, echo.NewHTTPError(http.StatusBadRequest, "age must be a number")
	}
	count, err := parseOptionalInt(c.FormValue("count"))
	if err != nil {
		return domain.Status{}, echo.NewHTTPError(http.StatusBadRequest, "count must be a number")
	}

	return domain.Status{
		Name:        c.FormValue("name"),
		Age:         age,
		City:        c.FormValue("city"),
		State:       c.FormValue("state"),
		Temperature: c.FormValue("temperature"),
		Count:       count,
		Contact:     c.FormValue("contact"),
		Content:     c.FormValue("content"),
		Requirement: domain.Requirement(c.FormValue("requirement")),
		Result:      c.FormValue("result"),
	}, nil
}

func parseOptionalInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
