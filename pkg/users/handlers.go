package users

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pathsala/pathsala/pkg/auth"
	"github.com/pkg/errors"
)

type handler struct {
	userService *Service
	authService *auth.Service
}

func (h *handler) register(c echo.Context) error {
	ctx := c.Request().Context()

	params := RegisterPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.userService.Create(ctx, CreateUserOptions{
		Name:     params.Name,
		Email:    params.Email,
		Password: params.Password,
	})
	if err != nil {
		return err
	}

	token, err := h.authService.GenerateToken(user.ID, auth.SubjectReader)
	if err != nil {
		return errors.WithStack(err)
	}
	c.SetCookie(auth.NewSessionCookie(c, token))

	return errors.WithStack(c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"token":   token,
		"user":    user,
	}))
}

func (h *handler) login(c echo.Context) error {
	ctx := c.Request().Context()

	params := LoginPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.userService.Authenticate(ctx, params.Email, params.Password)
	if err != nil {
		return err
	}

	token, err := h.authService.GenerateToken(user.ID, auth.SubjectReader)
	if err != nil {
		return errors.WithStack(err)
	}
	c.SetCookie(auth.NewSessionCookie(c, token))

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"token":   token,
		"user":    user,
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
	user, _ := auth.UserFromContext(c)

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"user":    user,
	}))
}
