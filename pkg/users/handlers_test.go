package users

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pathsala/pathsala/pkg/auth"
	"github.com/pathsala/pathsala/pkg/binder"
	"github.com/pathsala/pathsala/pkg/errcodes"
	"github.com/pathsala/pathsala/pkg/testutils"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

func newTestServer(t *testing.T, db *bun.DB) (*echo.Echo, *auth.Service) {
	t.Helper()

	e := echo.New()
	b, err := binder.New()
	require.NoError(t, err)
	e.Binder = b
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	authService := auth.NewService(db, "test-secret")
	RegisterRoutes(e, db, authService, auth.NewMiddleware(authService))

	return e, authService
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRegisterLoginFlow(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	e, authService := newTestServer(t, db)
	ctx := context.Background()

	rec := postJSON(e, "/users/register", `{"name":"Alice","email":"alice@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var registered struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		User    struct {
			ID    int    `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))
	assert.True(t, registered.Success)
	require.NotEmpty(t, registered.Token)

	claims, err := authService.ValidateToken(ctx, registered.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.SubjectID)
	assert.Equal(t, auth.SubjectReader, claims.SubjectKind)

	// Login with the same credentials encodes the same subject id.
	rec = postJSON(e, "/users/login", `{"email":"alice@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var loggedIn struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loggedIn))

	claims, err = authService.ValidateToken(ctx, loggedIn.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.SubjectID)
}

func TestLoginWrongPassword(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	e, _ := newTestServer(t, db)

	rec := postJSON(e, "/users/register", `{"name":"Alice","email":"alice@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(e, "/users/login", `{"email":"alice@example.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email or password")
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	e, _ := newTestServer(t, db)

	rec := postJSON(e, "/users/register", `{"name":"Alice","email":"not-an-email","password":"secret1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "email")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	e, _ := newTestServer(t, db)

	rec := postJSON(e, "/users/register", `{"name":"Alice","email":"alice@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(e, "/users/register", `{"name":"Alice","email":"alice@example.com","password":"secret1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "duplicate_resource")
}

func TestProfileRequiresAuth(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	e, _ := newTestServer(t, db)

	req := httptest.NewRequest(http.MethodGet, "/users/profile", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfileOmitsPasswordHash(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	e, authService := newTestServer(t, db)
	user := testutils.CreateUser(t, db, "alice@example.com")

	token, err := authService.GenerateToken(user.ID, auth.SubjectReader)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/users/profile", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice@example.com")
	assert.NotContains(t, rec.Body.String(), "password_hash")
}

func TestLogoutRevokesToken(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	e, authService := newTestServer(t, db)
	user := testutils.CreateUser(t, db, "alice@example.com")

	token, err := authService.GenerateToken(user.ID, auth.SubjectReader)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/users/logout", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// The token no longer authenticates.
	req = httptest.NewRequest(http.MethodGet, "/users/profile", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
