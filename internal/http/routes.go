package http

import (
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

// AdminRoutes builds locale-prefixed admin URLs through go-urlkit route
// groups. The gate uses it for login redirects and post-login landings.
type AdminRoutes struct {
	manager *urlkit.RouteManager
}

// NewAdminRoutes constructs the admin route group. baseURL may be empty for
// relative redirects.
func NewAdminRoutes(baseURL string) *AdminRoutes {
	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "admin",
				BaseURL: strings.TrimRight(baseURL, "/"),
				Paths: map[string]string{
					"login": "/:locale/admin/login",
					"home":  "/:locale/admin",
				},
			},
		},
	})
	return &AdminRoutes{manager: manager}
}

// LoginURL builds the login redirect for the locale, optionally carrying the
// originally requested path and an error code.
func (r *AdminRoutes) LoginURL(locale, redirect, errorCode string) string {
	builder := r.manager.Group("admin").Builder("login")
	builder.WithParam("locale", locale)
	if strings.TrimSpace(redirect) != "" {
		builder.WithQuery("redirect", redirect)
	}
	if strings.TrimSpace(errorCode) != "" {
		builder.WithQuery("error", errorCode)
	}
	url, err := builder.Build()
	if err != nil {
		return fmt.Sprintf("/%s/admin/login", locale)
	}
	return url
}

// HomeURL builds the admin landing URL for the locale.
func (r *AdminRoutes) HomeURL(locale string) string {
	builder := r.manager.Group("admin").Builder("home")
	builder.WithParam("locale", locale)
	url, err := builder.Build()
	if err != nil {
		return fmt.Sprintf("/%s/admin", locale)
	}
	return url
}
