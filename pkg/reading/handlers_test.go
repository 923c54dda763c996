package reading

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pathsala/pathsala/pkg/auth"
	"github.com/pathsala/pathsala/pkg/binder"
	"github.com/pathsala/pathsala/pkg/errcodes"
	"github.com/pathsala/pathsala/pkg/models"
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

func readerToken(t *testing.T, authService *auth.Service, userID int) string {
	t.Helper()

	token, err := authService.GenerateToken(userID, auth.SubjectReader)
	require.NoError(t, err)
	return token
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

func readerMinutes(t *testing.T, db *bun.DB, userID int) int {
	t.Helper()

	user := &models.User{}
	require.NoError(t, db.NewSelect().Model(user).Where("u.id = ?", userID).Scan(context.Background()))
	return user.TimeSpentMinutes
}

func TestUpdateTimeValidation(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	e, authService := newTestServer(t, db)
	captain := testutils.CreateCaptain(t, db, "captain@example.com")
	book := testutils.CreateBook(t, db, captain.ID, "Gitanjali", "111", testutils.BookOptions{})
	reader := testutils.CreateUser(t, db, "reader@example.com")
	token := readerToken(t, authService, reader.ID)

	// Non-positive durations never reach the counter.
	for _, minutes := range []int{0, -5} {
		body := fmt.Sprintf(`{"book_id":%d,"time_spent_minutes":%d}`, book.ID, minutes)
		rec := doJSON(e, http.MethodPost, "/reading/update-time", token, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	}
	assert.Equal(t, 0, readerMinutes(t, db, reader.ID))

	count, err := db.NewSelect().Model((*models.ReadBook)(nil)).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// A positive duration goes through.
	body := fmt.Sprintf(`{"book_id":%d,"time_spent_minutes":30}`, book.ID)
	rec := doJSON(e, http.MethodPost, "/reading/update-time", token, body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 30, readerMinutes(t, db, reader.ID))
}

func TestUpdateTimeRequiresReader(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	e, _ := newTestServer(t, db)

	rec := doJSON(e, http.MethodPost, "/reading/update-time", "", `{"book_id":1,"time_spent_minutes":10}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, rec.Body.String())
}

func TestStatsEndpoint(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	e, authService := newTestServer(t, db)
	captain := testutils.CreateCaptain(t, db, "captain@example.com")
	book := testutils.CreateBook(t, db, captain.ID, "Gitanjali", "111", testutils.BookOptions{})
	reader := testutils.CreateUser(t, db, "reader@example.com")
	token := readerToken(t, authService, reader.ID)

	body := fmt.Sprintf(`{"book_id":%d,"time_spent_minutes":90}`, book.ID)
	rec := doJSON(e, http.MethodPost, "/reading/update-time", token, body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/reading/stats", token, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Success bool `json:"success"`
		Stats   struct {
			BooksRead    int `json:"booksRead"`
			MinutesSpent int `json:"minutesSpent"`
			HoursSpent   int `json:"hoursSpent"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Stats.BooksRead)
	assert.Equal(t, 90, resp.Stats.MinutesSpent)
	assert.Equal(t, 1, resp.Stats.HoursSpent)
}
