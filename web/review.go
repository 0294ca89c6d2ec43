package web

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/unithesis/portal/gateway"
)

type reviewPageData struct {
	Form      ReviewForm
	ThesisID  int
	TeacherID int
}

// reviewPage renders the review form for the thesis named in the path. The
// acting teacher's id is resolved up front; without it submission is blocked.
func (p *portal) reviewPage(ctx echo.Context) error {
	sess, _ := contextSession(ctx)

	thesisID, err := strconv.Atoi(ctx.Param("thesisID"))
	if err != nil {
		setFlash(ctx, "danger", "Unknown thesis.")
		return ctx.Redirect(http.StatusSeeOther, "/dashboard")
	}

	pg := newPage(ctx, "Submit Review")
	data := &reviewPageData{ThesisID: thesisID}
	if teacher, tErr := p.gw.TeacherByUsername(ctx.Request().Context(), sess.Token, sess.Subject); tErr != nil {
		pg.fail("Failed to fetch teacher information. Please try again later.")
	} else {
		data.TeacherID = teacher.ID
	}
	pg.Data = data
	return ctx.Render(http.StatusOK, "review_form", pg)
}

// reviewSubmit creates the review. A resolved teacher id is a hard
// prerequisite: without one, no create call is issued.
func (p *portal) reviewSubmit(ctx echo.Context) error {
	sess, _ := contextSession(ctx)

	thesisID, err := strconv.Atoi(ctx.Param("thesisID"))
	if err != nil || thesisID == 0 {
		setFlash(ctx, "danger", "Unknown thesis.")
		return ctx.Redirect(http.StatusSeeOther, "/dashboard")
	}

	form := new(ReviewForm)
	if err := ctx.Bind(form); err != nil {
		return err
	}

	pg := newPage(ctx, "Submit Review")
	rerender := func(teacherID int) error {
		pg.Data = &reviewPageData{Form: *form, ThesisID: thesisID, TeacherID: teacherID}
		return ctx.Render(http.StatusOK, "review_form", pg)
	}

	if err := p.validateForm(form); err != nil {
		pg.fail(validationAlert(err))
		return rerender(0)
	}

	rctx := ctx.Request().Context()
	teacher, err := p.gw.TeacherByUsername(rctx, sess.Token, sess.Subject)
	if err != nil || teacher.ID == 0 {
		pg.fail("Failed to fetch valid teacher information.")
		return rerender(0)
	}

	review := gateway.NewReview{
		Text:         form.Text,
		DateUploaded: form.DateUploaded,
		Conclusion:   form.Conclusion == "true",
		TeacherID:    teacher.ID,
		ThesisID:     thesisID,
	}
	if _, err := p.gw.AddReview(rctx, sess.Token, review); err != nil {
		p.logger.Warn("submitting review failed", err, sess)
		pg.fail("An error occurred while submitting the review. Please try again later.")
		return rerender(teacher.ID)
	}

	setFlash(ctx, "success", "Review submitted successfully!")
	return ctx.Redirect(http.StatusSeeOther, "/")
}
