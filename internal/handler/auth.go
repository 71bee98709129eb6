package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/tickethub/internal/config"
	"github.com/iliyamo/tickethub/internal/model"
	"github.com/iliyamo/tickethub/internal/upstream"
	"github.com/iliyamo/tickethub/internal/utils"
)

// IdentityProvider is the slice of the upstream client the auth handler
// needs. Credential checking is delegated entirely to the third-party
// provider; this service stores no user records.
type IdentityProvider interface {
	Login(ctx context.Context, username, password string) (model.Session, error)
}

// AuthHandler bundles dependencies for the login endpoint.
type AuthHandler struct {
	Cfg      config.Config
	Identity IdentityProvider
}

func NewAuthHandler(cfg config.Config, identity IdentityProvider) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Identity: identity}
}

// Login handles POST /auth/login. Credentials arrive form-encoded; on a
// successful upstream check the handler mints a locally signed access
// token wrapping the confirmed username. Both a credential rejection and
// an unreachable provider answer 401 to the client — the distinction is
// kept internally (logged) but deliberately not leaked to callers probing
// for valid usernames.
func (h *AuthHandler) Login(c echo.Context) error {
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")
	if username == "" || password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	session, err := h.Identity.Login(ctx, username, password)
	if err != nil {
		if !errors.Is(err, upstream.ErrLoginRejected) {
			c.Logger().Warnf("login: identity provider failure: %v", err)
		}
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, session.Username, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"access_token": access.Token,
		"token_type":   "bearer",
	})
}
