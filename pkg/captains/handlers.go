package captains

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pathsala/pathsala/pkg/auth"
	"github.com/pkg/errors"
)

type handler struct {
	captainService *Service
	authService    *auth.Service
}

func (h *handler) register(c echo.Context) error {
	ctx := c.Request().Context()

	params := RegisterPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	captain, err := h.captainService.Create(ctx, CreateCaptainOptions{
		Name:     params.Name,
		Email:    params.Email,
		Password: params.Password,
	})
	if err != nil {
		return err
	}

	token, err := h.authService.GenerateToken(captain.ID, auth.SubjectCaptain)
	if err != nil {
		return errors.WithStack(err)
	}
	c.SetCookie(auth.NewSessionCookie(c, token))

	return errors.WithStack(c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"token":   token,
		"captain": captain,
	}))
}

func (h *handler) login(c echo.Context) error {
	ctx := c.Request().Context()

	params := LoginPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	captain, err := h.captainService.Authenticate(ctx, params.Email, params.Password)
	if err != nil {
		return err
	}

	token, err := h.authService.GenerateToken(captain.ID, auth.SubjectCaptain)
	if err != nil {
		return errors.WithStack(err)
	}
	c.SetCookie(auth.NewSessionCookie(c, token))

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"token":   token,
		"captain": captain,
	}))
}

func (h *handler) logout(c echo.Context) error {
	ctx := c.Request().Context()

	if token := auth.ExtractToken(c); token != "" {
		if err := h.authService.RevokeToken(ctx, token); err != nil {
			return err
		}
	}
	c.SetCookie(auth.NewExpiredSessionCookie(c))

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Logged out successfully",
	}))
}

func (h *handler) profile(c echo.Context) error {
	captain, _ := auth.CaptainFromContext(c)

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"captain": captain,
	}))
}
