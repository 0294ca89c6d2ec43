package web

import (
	"io/ioutil"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/go-playground/locales/en"
	"github.com/labstack/echo/v4"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/unithesis/portal/core"
	"github.com/unithesis/portal/core/session"
	"github.com/unithesis/portal/gateway"
)

const sessionCookieName = "portal_token"

// newTestServer wires a full server against a fake upstream handler.
func newTestServer(t *testing.T, upstream http.Handler) Server {
	up := httptest.NewServer(upstream)
	t.Cleanup(up.Close)

	conf := &core.Config{
		Debug:    true,
		TestMode: true,
		AppName:  "University Portal",
		Env:      "TEST",
		Upstream: core.UpstreamConfig{BaseURL: up.URL, Timeout: 5 * time.Second},
		Session:  core.SessionConfig{CookieName: sessionCookieName, MaxAge: time.Hour},
	}
	logger := core.NewStdLogger(log.New(ioutil.Discard, "", 0))

	validate := validator.New()
	_en := en.New()
	translator, _ := ut.New(_en, _en).GetTranslator("en")
	core.InitValidators(validate, translator)

	return NewServer(&Options{
		Conf:           conf,
		Logger:         logger,
		Gateway:        gateway.NewClient(conf.Upstream, logger),
		Sessions:       session.NewCookieStore(conf.Session),
		Validate:       validate,
		Translator:     translator,
		DisableReqLogs: true,
	})
}

func signToken(t *testing.T, subject, role string) string {
	claims := jwt.MapClaims{"sub": subject}
	if role != "" {
		claims["role"] = role
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("signToken() failed: %v", err)
	}
	return token
}

func studentToken(t *testing.T, subject string) string {
	return signToken(t, subject, session.RoleStudent)
}

func teacherToken(t *testing.T, subject string) string {
	return signToken(t, subject, session.RoleTeacher)
}

func sessionCookie(token string) *http.Cookie {
	return &http.Cookie{Name: sessionCookieName, Value: token}
}

func get(srv Server, path string, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(sessionCookie(token))
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func postForm(srv Server, path string, token string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if token != "" {
		req.AddCookie(sessionCookie(token))
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

// flashMessage decodes the one-shot alert set by a redirecting handler.
func flashMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	cookie := findCookie(rec, flashCookieName)
	if cookie == nil || cookie.Value == "" {
		return ""
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	ctx := echo.New().NewContext(req, httptest.NewRecorder())
	fl, ok := popFlash(ctx)
	if !ok {
		t.Fatalf("flashMessage() failed to decode %q", cookie.Value)
	}
	return fl.Message
}
