package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/unithesis/portal/core/session"
	"github.com/unithesis/portal/gateway"
)

type applicationPageData struct {
	Form            ApplicationForm
	TeacherID       int
	Students        []gateway.Student
	AcceptanceTypes []gateway.AcceptanceType
}

// applicationPage renders the teacher's "Submit an Application" form with the
// student selection widget and the resolved teacher id.
func (p *portal) applicationPage(ctx echo.Context) error {
	sess, _ := contextSession(ctx)
	pg := newPage(ctx, "Submit an Application")
	data := p.loadApplicationPage(ctx, sess, ApplicationForm{AcceptanceType: string(gateway.AcceptanceUndefined)}, pg)
	pg.Data = data
	return ctx.Render(http.StatusOK, "application_form", pg)
}

func (p *portal) loadApplicationPage(ctx echo.Context, sess session.Session, form ApplicationForm, pg *page) *applicationPageData {
	data := &applicationPageData{Form: form, AcceptanceTypes: gateway.AcceptanceTypes}
	rctx := ctx.Request().Context()

	if students, err := p.gw.Students(rctx, sess.Token); err != nil {
		pg.fail("Failed to load students. Please try again later.")
	} else {
		data.Students = students
	}

	if teacher, err := p.gw.TeacherByUsername(rctx, sess.Token, sess.Subject); err != nil {
		pg.fail("Failed to fetch teacher information. Please try again later.")
	} else {
		data.TeacherID = teacher.ID
	}
	return data
}

// applicationSubmit creates an application. The resolved teacher id is a hard
// prerequisite: without it, no create call is issued at all. On any failure
// the form re-renders with the submitted values retained.
func (p *portal) applicationSubmit(ctx echo.Context) error {
	sess, _ := contextSession(ctx)

	form := new(ApplicationForm)
	if err := ctx.Bind(form); err != nil {
		return err
	}

	rerender := func(pg *page) error {
		pg.Data = p.loadApplicationPage(ctx, sess, *form, pg)
		return ctx.Render(http.StatusOK, "application_form", pg)
	}

	pg := newPage(ctx, "Submit an Application")
	if err := p.validateForm(form); err != nil {
		pg.fail(validationAlert(err))
		return rerender(pg)
	}

	rctx := ctx.Request().Context()
	teacher, err := p.gw.TeacherByUsername(rctx, sess.Token, sess.Subject)
	if err != nil || teacher.ID == 0 {
		pg.fail("Teacher ID is missing. Please try again.")
		return rerender(pg)
	}

	app := gateway.NewApplication{
		Theme:          form.Theme,
		Aim:            form.Aim,
		Tasks:          form.Tasks,
		Technologies:   form.Technologies,
		StudentID:      form.StudentID,
		TeacherID:      teacher.ID,
		AcceptanceType: gateway.AcceptanceType(form.AcceptanceType),
	}
	if _, err := p.gw.AddApplication(rctx, sess.Token, app); err != nil {
		p.logger.Warn("submitting application failed", err, sess)
		pg.fail("Failed to submit the application. Please try again.")
		return rerender(pg)
	}

	setFlash(ctx, "success", "Application submitted successfully")
	return ctx.Redirect(http.StatusSeeOther, "/dashboard")
}
