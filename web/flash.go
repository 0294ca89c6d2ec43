package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

const flashCookieName = "portal_flash"

// setFlash stores a one-shot alert for the next render; used on
// POST-redirect-GET so the success/failure message survives the redirect.
func setFlash(ctx echo.Context, level, msg string) {
	data, err := json.Marshal(alert{Level: level, Message: msg})
	if err != nil {
		return
	}
	ctx.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    base64.URLEncoding.EncodeToString(data),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads and clears the pending alert, if any.
func popFlash(ctx echo.Context) (alert, bool) {
	cookie, err := ctx.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return alert{}, false
	}
	ctx.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	data, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return alert{}, false
	}
	var fl alert
	if err := json.Unmarshal(data, &fl); err != nil {
		return alert{}, false
	}
	return fl, true
}
