package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A pending flash renders exactly once: the page shows it and the response
// clears the cookie.
func TestFlash_rendersOnceAfterRedirect(t *testing.T) {
	srv := newTestServer(t, studentUpstream(t))

	rec0 := httptest.NewRecorder()
	ctx := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec0)
	setFlash(ctx, "success", "Thesis submitted successfully!")
	cookies := rec0.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(sessionCookie(studentToken(t, "jdoe")))
	req.AddCookie(cookies[0])
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Thesis submitted successfully!")

	cleared := findCookie(rec, flashCookieName)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Less(t, cleared.MaxAge, 0)
}

func TestFlash_ignoresGarbageCookie(t *testing.T) {
	srv := newTestServer(t, studentUpstream(t))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(sessionCookie(studentToken(t, "jdoe")))
	req.AddCookie(&http.Cookie{Name: flashCookieName, Value: "%%%garbage"})
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Student Dashboard")
}
