package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/unithesis/portal/core"
)

// home is the composition root of the view tree: unauthenticated visitors get
// the login view, authenticated ones their role's dashboard. A credential
// without a teacher role claim deterministically lands on the student branch.
func (p *portal) home(ctx echo.Context) error {
	sess, ok := p.sessions.Current(ctx)
	if !ok {
		return p.renderLogin(ctx, LoginForm{})
	}
	ctx.Set(contextSessionKey, sess)

	if sess.IsTeacher() {
		return p.renderTeacherDashboard(ctx, sess)
	}
	return p.renderStudentDashboard(ctx, sess)
}

// dashboard mirrors home for authenticated users; the guard already
// redirected everyone else to root.
func (p *portal) dashboard(ctx echo.Context) error {
	sess, _ := contextSession(ctx)
	if sess.IsTeacher() {
		return p.renderTeacherDashboard(ctx, sess)
	}
	return p.renderStudentDashboard(ctx, sess)
}

func (p *portal) renderLogin(ctx echo.Context, form LoginForm) error {
	pg := newPage(ctx, "Sign In")
	form.Password = "" // never echo the password back
	pg.Data = form
	return ctx.Render(http.StatusOK, "login", pg)
}

// login exchanges credentials for the upstream token and stores it durably.
// A rejected login keeps the user on the login view; the failure is logged
// but not surfaced beyond that.
func (p *portal) login(ctx echo.Context) error {
	form := new(LoginForm)
	if err := ctx.Bind(form); err != nil {
		return err
	}
	form.Username = core.CleanString(form.Username)
	if err := p.validateForm(form); err != nil {
		return p.renderLogin(ctx, *form)
	}

	token, err := p.gw.Login(ctx.Request().Context(), form.Username, form.Password)
	if err != nil {
		p.logger.Warn("login failed", err)
		return p.renderLogin(ctx, *form)
	}
	if err := p.sessions.Save(ctx, token); err != nil {
		p.logger.Warn("login: storing credential failed", err)
		return p.renderLogin(ctx, *form)
	}

	return ctx.Redirect(http.StatusSeeOther, "/")
}

// logout clears the stored credential unconditionally; there is no upstream
// invalidation round-trip.
func (p *portal) logout(ctx echo.Context) error {
	p.sessions.Clear(ctx)
	return ctx.Redirect(http.StatusSeeOther, "/")
}
