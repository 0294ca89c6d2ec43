package web

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/unithesis/portal/gateway"
)

type thesisPageData struct {
	Form          ThesisForm
	ApplicationID int
}

// thesisPage renders the student's thesis submission form, pre-bound to the
// ACCEPTED application named in the path.
func (p *portal) thesisPage(ctx echo.Context) error {
	appID, err := strconv.Atoi(ctx.Param("applicationID"))
	if err != nil {
		setFlash(ctx, "danger", "Application ID is missing. Please check the URL or try again.")
		return ctx.Redirect(http.StatusSeeOther, "/dashboard")
	}

	pg := newPage(ctx, "Submit a Thesis")
	pg.Data = &thesisPageData{ApplicationID: appID}
	return ctx.Render(http.StatusOK, "thesis_form", pg)
}

// thesisSubmit creates the thesis. The parsed application id is a hard
// prerequisite checked before any network call.
func (p *portal) thesisSubmit(ctx echo.Context) error {
	sess, _ := contextSession(ctx)

	appID, err := strconv.Atoi(ctx.Param("applicationID"))
	if err != nil || appID == 0 {
		setFlash(ctx, "danger", "Application ID is missing. Please try again.")
		return ctx.Redirect(http.StatusSeeOther, "/dashboard")
	}

	form := new(ThesisForm)
	if err := ctx.Bind(form); err != nil {
		return err
	}

	pg := newPage(ctx, "Submit a Thesis")
	if err := p.validateForm(form); err != nil {
		pg.fail(validationAlert(err))
		pg.Data = &thesisPageData{Form: *form, ApplicationID: appID}
		return ctx.Render(http.StatusOK, "thesis_form", pg)
	}

	thesis := gateway.NewThesis{
		Name:          form.Name,
		Text:          form.Text,
		DateUploaded:  form.DateUploaded,
		ApplicationID: appID,
	}
	if _, err := p.gw.AddThesis(ctx.Request().Context(), sess.Token, thesis); err != nil {
		p.logger.Warn("submitting thesis failed", err, sess)
		pg.fail("An error occurred while submitting the thesis. Please try again later.")
		pg.Data = &thesisPageData{Form: *form, ApplicationID: appID}
		return ctx.Render(http.StatusOK, "thesis_form", pg)
	}

	setFlash(ctx, "success", "Thesis submitted successfully!")
	return ctx.Redirect(http.StatusSeeOther, "/dashboard")
}
