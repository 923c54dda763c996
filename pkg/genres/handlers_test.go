package genres

import (
	"net/http"
	"net/http/httptest"
	"strconv"
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
	RegisterRoutes(e, db, auth.NewMiddleware(authService))

	return e, authService
}

func doJSON(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGenreCRUD(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	e, authService := newTestServer(t, db)

	// Writes need a captain session.
	rec := doJSON(e, http.MethodPost, "/genres/create", "", `{"name":"Poetry"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, rec.Body.String())

	captain := testutils.CreateCaptain(t, db, "captain@example.com")
	token, err := authService.GenerateToken(captain.ID, auth.SubjectCaptain)
	require.NoError(t, err)

	rec = doJSON(e, http.MethodPost, "/genres/create", token, `{"name":"Poetry"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		Genre struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		} `json:"genre"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Poetry", created.Genre.Name)

	// Missing name fails validation.
	rec = doJSON(e, http.MethodPost, "/genres/create", token, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	// Reads are public.
	rec = doJSON(e, http.MethodGet, "/genres/all", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	path := "/genres/" + strconv.Itoa(created.Genre.ID)
	rec = doJSON(e, http.MethodPut, path, token, `{"name":"Bengali Poetry"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(e, http.MethodDelete, path, token, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(e, http.MethodGet, path, "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
}
