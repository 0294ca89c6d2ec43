package web

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/volatiletech/null/v8"

	"github.com/unithesis/portal/core/session"
	"github.com/unithesis/portal/gateway"
)

type (
	defendingsFilters struct {
		MinGrade          string
		MaxGrade          string
		SelectedTeacherID string
		StartDate         string
		EndDate           string
	}

	defendingsPageData struct {
		TeacherID       int
		Defendings      []gateway.Defending
		Theses          []gateway.Thesis
		Teachers        []gateway.Teacher
		FilteredTheses  []gateway.Thesis
		GraduatedCount  null.Int
		AverageStudents null.Float64
		Filters         defendingsFilters
	}
)

// defendingsPage composes the management view: scheduling, thesis linking,
// grade-range filtering and the aggregate count panels. Open to any
// authenticated role; the upstream rejects what the role may not do.
func (p *portal) defendingsPage(ctx echo.Context) error {
	sess, _ := contextSession(ctx)
	pg := newPage(ctx, "Defendings Management")
	data := &defendingsPageData{
		Filters: defendingsFilters{
			MinGrade:          ctx.QueryParam("minGrade"),
			MaxGrade:          ctx.QueryParam("maxGrade"),
			SelectedTeacherID: ctx.QueryParam("teacherId"),
			StartDate:         ctx.QueryParam("startDate"),
			EndDate:           ctx.QueryParam("endDate"),
		},
	}
	pg.Data = data

	rctx := ctx.Request().Context()

	if theses, err := p.gw.Theses(rctx, sess.Token); err != nil {
		pg.fail("Failed to load theses. Please try again later.")
	} else {
		data.Theses = theses
	}

	if teachers, err := p.gw.Teachers(rctx, sess.Token); err != nil {
		pg.fail("Failed to load teachers. Please try again later.")
	} else {
		data.Teachers = teachers
	}

	teacher, err := p.gw.TeacherByUsername(rctx, sess.Token, sess.Subject)
	if err != nil {
		pg.fail("Failed to fetch teacher information. Please try again later.")
	} else {
		data.TeacherID = teacher.ID
		if defs, dErr := p.gw.TeacherDefendings(rctx, sess.Token, teacher.ID); dErr != nil {
			pg.fail("Failed to load defendings. Please try again later.")
		} else {
			data.Defendings = defs
		}
	}

	p.loadDefendingsQueries(ctx, sess, pg, data)

	return ctx.Render(http.StatusOK, "defendings", pg)
}

// loadDefendingsQueries runs the optional filter/aggregate sub-panels, each
// driven by its own query params and each failing independently.
func (p *portal) loadDefendingsQueries(ctx echo.Context, sess session.Session, pg *page, data *defendingsPageData) {
	rctx := ctx.Request().Context()
	filters := data.Filters

	if filters.MinGrade != "" || filters.MaxGrade != "" {
		if data.TeacherID == 0 {
			pg.fail("Unable to fetch filtered theses as teacher ID is missing.")
		} else {
			minGrade, minErr := strconv.ParseFloat(filters.MinGrade, 64)
			maxGrade, maxErr := strconv.ParseFloat(filters.MaxGrade, 64)
			rng := GradeRangeForm{MinGrade: minGrade, MaxGrade: maxGrade}
			if minErr != nil || maxErr != nil || p.validateForm(&rng) != nil {
				pg.fail("Please provide a valid grade range (2 to 6).")
			} else if theses, err := p.gw.ThesesByGradeRange(rctx, sess.Token, minGrade, maxGrade, data.TeacherID); err != nil {
				pg.fail("Failed to fetch theses by grade range. Please try again later.")
			} else {
				data.FilteredTheses = theses
			}
		}
	}

	if filters.SelectedTeacherID != "" {
		if teacherID, err := strconv.Atoi(filters.SelectedTeacherID); err == nil {
			if count, cErr := p.gw.GraduatedCountByTeacher(rctx, sess.Token, teacherID); cErr != nil {
				pg.fail("Failed to load graduated students count. Please try again later.")
			} else {
				data.GraduatedCount = null.IntFrom(count)
			}
		}
	}

	if filters.StartDate != "" || filters.EndDate != "" {
		rng := DateRangeForm{StartDate: filters.StartDate, EndDate: filters.EndDate}
		if err := p.validateForm(&rng); err != nil {
			pg.fail("Please select both start and end dates.")
		} else if avg, err := p.gw.AverageDefendingStudents(rctx, sess.Token, rng.StartDate, rng.EndDate); err != nil {
			pg.fail("Failed to fetch the average defending students. Please try again later.")
		} else {
			data.AverageStudents = null.Float64From(avg)
		}
	}
}

// defendingSchedule creates a defending session. The resolved teacher id is a
// hard prerequisite checked before the create call.
func (p *portal) defendingSchedule(ctx echo.Context) error {
	sess, _ := contextSession(ctx)

	form := new(DefendingForm)
	if err := ctx.Bind(form); err != nil {
		return err
	}
	if err := p.validateForm(form); err != nil {
		setFlash(ctx, "danger", "Please select a defending date.")
		return ctx.Redirect(http.StatusSeeOther, "/defendings")
	}

	rctx := ctx.Request().Context()
	teacher, err := p.gw.TeacherByUsername(rctx, sess.Token, sess.Subject)
	if err != nil || teacher.ID == 0 {
		setFlash(ctx, "danger", "Failed to fetch valid teacher information.")
		return ctx.Redirect(http.StatusSeeOther, "/defendings")
	}

	if _, err := p.gw.AddDefending(rctx, sess.Token, teacher.ID, form.DateDefending); err != nil {
		p.logger.Warn("scheduling defending failed", err, sess)
		setFlash(ctx, "danger", "An error occurred while scheduling defending. Please try again later.")
		return ctx.Redirect(http.StatusSeeOther, "/defendings")
	}

	setFlash(ctx, "success", "Defending scheduled successfully!")
	return ctx.Redirect(http.StatusSeeOther, "/defendings")
}

// defendingLink links a thesis to a scheduled defending.
func (p *portal) defendingLink(ctx echo.Context) error {
	sess, _ := contextSession(ctx)

	form := new(LinkThesisForm)
	if err := ctx.Bind(form); err != nil {
		return err
	}
	if err := p.validateForm(form); err != nil {
		setFlash(ctx, "danger", "Please select both a thesis and a defending.")
		return ctx.Redirect(http.StatusSeeOther, "/defendings")
	}

	if err := p.gw.AddThesisDefending(ctx.Request().Context(), sess.Token, form.ThesisID, form.DefendingID); err != nil {
		p.logger.Warn("linking thesis to defending failed", err, sess)
		setFlash(ctx, "danger", "An error occurred while adding the thesis. Please try again later.")
		return ctx.Redirect(http.StatusSeeOther, "/defendings")
	}

	setFlash(ctx, "success", "Thesis successfully added to defending!")
	return ctx.Redirect(http.StatusSeeOther, "/defendings")
}
