package web

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/unithesis/portal/core/session"
)

//go:embed templates/*.html
var templatesFS embed.FS

// renderer backs echo's Renderer with the embedded html/template set.
type renderer struct {
	templates *template.Template
}

func newRenderer() *renderer {
	return &renderer{
		templates: template.Must(template.ParseFS(templatesFS, "templates/*.html")),
	}
}

func (r *renderer) Render(w io.Writer, name string, data interface{}, ctx echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

type (
	// alert is the SSR stand-in for the SPA's blocking alert: a dismissible
	// banner rendered at the top of the page.
	alert struct {
		Level   string // "success" | "danger"
		Message string
	}

	// page is the data every template receives.
	page struct {
		Title   string
		Session *session.Session
		Alerts  []alert
		Data    interface{}
	}
)

func (p *page) addAlert(level, msg string) {
	p.Alerts = append(p.Alerts, alert{Level: level, Message: msg})
}

func (p *page) fail(msg string) { p.addAlert("danger", msg) }

// newPage builds the common template payload for a request.
func newPage(ctx echo.Context, title string) *page {
	p := &page{Title: title}
	if sess, ok := contextSession(ctx); ok {
		p.Session = &sess
	}
	if fl, ok := popFlash(ctx); ok {
		p.Alerts = append(p.Alerts, fl)
	}
	return p
}
