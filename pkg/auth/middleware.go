package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pathsala/pathsala/pkg/errcodes"
	"github.com/pathsala/pathsala/pkg/models"
)

// CookieName is the name of the session cookie. Tokens can also be sent as an
// Authorization bearer header.
const CookieName = "token"

// Context keys for the authenticated entity.
const (
	ContextKeyUser    = "user"
	ContextKeyCaptain = "captain"
)

// Middleware provides the two authentication variants. Reader and captain
// tokens are validated against disjoint tables and are not interchangeable.
type Middleware struct {
	authService *Service
}

func NewMiddleware(authService *Service) *Middleware {
	return &Middleware{
		authService: authService,
	}
}

// AuthenticateReader requires a valid reader token and attaches the reader to
// the context.
func (m *Middleware) AuthenticateReader(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		token := ExtractToken(c)
		if token == "" {
			return errcodes.Unauthorized("Authentication required")
		}

		claims, err := m.authService.ValidateToken(ctx, token)
		if err != nil {
			return err
		}
		if claims.SubjectKind != SubjectReader {
			return errcodes.Unauthorized("Authentication required")
		}

		user, err := m.authService.GetUserByID(ctx, claims.SubjectID)
		if err != nil {
			return errcodes.Unauthorized("User not found")
		}

		c.Set(ContextKeyUser, user)

		return next(c)
	}
}

// AuthenticateCaptain requires a valid captain token and attaches the captain
// to the context.
func (m *Middleware) AuthenticateCaptain(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		token := ExtractToken(c)
		if token == "" {
			return errcodes.Unauthorized("Authentication required")
		}

		claims, err := m.authService.ValidateToken(ctx, token)
		if err != nil {
			return err
		}
		if claims.SubjectKind != SubjectCaptain {
			return errcodes.Unauthorized("Authentication required")
		}

		captain, err := m.authService.GetCaptainByID(ctx, claims.SubjectID)
		if err != nil {
			return errcodes.Unauthorized("Captain not found")
		}

		c.Set(ContextKeyCaptain, captain)

		return next(c)
	}
}

// ExtractToken pulls the session token from the cookie or the bearer header.
// Returns the empty string when neither is present.
func ExtractToken(c echo.Context) string {
	cookie, err := c.Cookie(CookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	return ""
}

// UserFromContext retrieves the authenticated reader set by
// AuthenticateReader.
func UserFromContext(c echo.Context) (*models.User, bool) {
	user, ok := c.Get(ContextKeyUser).(*models.User)
	return user, ok
}

// CaptainFromContext retrieves the authenticated captain set by
// AuthenticateCaptain.
func CaptainFromContext(c echo.Context) (*models.Captain, bool) {
	captain, ok := c.Get(ContextKeyCaptain).(*models.Captain)
	return captain, ok
}

// NewSessionCookie builds the HTTP-only session cookie for a token.
func NewSessionCookie(c echo.Context, token string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TokenExpiry.Seconds()),
		HttpOnly: true,
		Secure:   c.Request().TLS != nil || c.Request().Header.Get("X-Forwarded-Proto") == "https",
		SameSite: http.SameSiteLaxMode,
	}
}

// NewExpiredSessionCookie builds a cookie that clears the session.
func NewExpiredSessionCookie(c echo.Context) *http.Cookie {
	cookie := NewSessionCookie(c, "")
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)
	return cookie
}
