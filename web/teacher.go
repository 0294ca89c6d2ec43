package web

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/unithesis/portal/core/session"
	"github.com/unithesis/portal/gateway"
)

type (
	teacherFilters struct {
		AcceptanceType string
		TeacherName    string
		Search         string
		StartDate      string
		EndDate        string
	}

	teacherDashboardData struct {
		Teacher             gateway.Teacher
		Applications        []gateway.Application
		TeacherNames        []string
		Theses              []gateway.Thesis
		Defendings          []gateway.Defending
		NegativeReviewCount int
		Graduated           []gateway.GraduatedStudent
		AcceptanceTypes     []gateway.AcceptanceType
		Filters             teacherFilters
	}
)

// renderTeacherDashboard assembles the teacher view: own applications (with
// edit affordances and filters), theses to review, scheduled defendings,
// negative-review count and the graduated-students date-range query.
func (p *portal) renderTeacherDashboard(ctx echo.Context, sess session.Session) error {
	pg := newPage(ctx, "Teacher Dashboard")
	data := &teacherDashboardData{
		AcceptanceTypes: gateway.AcceptanceTypes,
		Filters: teacherFilters{
			AcceptanceType: ctx.QueryParam("acceptanceType"),
			TeacherName:    ctx.QueryParam("teacherName"),
			Search:         ctx.QueryParam("search"),
			StartDate:      ctx.QueryParam("startDate"),
			EndDate:        ctx.QueryParam("endDate"),
		},
	}
	pg.Data = data

	rctx := ctx.Request().Context()

	teacher, err := p.gw.TeacherByUsername(rctx, sess.Token, sess.Subject)
	if err != nil {
		pg.fail("Failed to fetch teacher information. Please try again later.")
		return ctx.Render(http.StatusOK, "teacher_dashboard", pg)
	}
	data.Teacher = teacher

	if apps, err := p.gw.TeacherApplications(rctx, sess.Token, teacher.ID); err != nil {
		pg.fail("Failed to load applications. Please try again later.")
	} else {
		data.TeacherNames = distinctTeacherNames(apps)
		data.Applications = filterApplications(apps, data.Filters)
	}

	if theses, err := p.gw.Theses(rctx, sess.Token); err != nil {
		pg.fail("Failed to load theses. Please try again later.")
	} else {
		data.Theses = filterThesesByName(theses, data.Filters.Search)
	}

	if defs, err := p.gw.TeacherDefendings(rctx, sess.Token, teacher.ID); err != nil {
		pg.fail("Failed to load defendings. Please try again later.")
	} else {
		data.Defendings = defs
	}

	// count failures are tolerated: the badge falls back to zero
	if count, err := p.gw.NegativeReviewCount(rctx, sess.Token); err != nil {
		p.logger.Warn("fetching negative review count failed", err, sess)
	} else {
		data.NegativeReviewCount = count
	}

	if data.Filters.StartDate != "" || data.Filters.EndDate != "" {
		rng := DateRangeForm{StartDate: data.Filters.StartDate, EndDate: data.Filters.EndDate}
		if err := p.validateForm(&rng); err != nil {
			pg.fail("Please select both start and end dates.")
		} else if students, err := p.gw.GraduatedStudents(rctx, sess.Token, rng.StartDate, rng.EndDate); err != nil {
			pg.fail("Failed to fetch graduated students. Please try again later.")
		} else {
			data.Graduated = students
		}
	}

	return ctx.Render(http.StatusOK, "teacher_dashboard", pg)
}

// applicationEdit saves inline edits to one of the teacher's applications and
// returns to the dashboard.
func (p *portal) applicationEdit(ctx echo.Context) error {
	sess, _ := contextSession(ctx)

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		setFlash(ctx, "danger", "Unknown application.")
		return ctx.Redirect(http.StatusSeeOther, "/dashboard")
	}

	form := new(EditApplicationForm)
	if err := ctx.Bind(form); err != nil {
		return err
	}
	if err := p.validateForm(form); err != nil {
		setFlash(ctx, "danger", validationAlert(err))
		return ctx.Redirect(http.StatusSeeOther, "/dashboard")
	}

	app := gateway.Application{
		ID:             id,
		Theme:          form.Theme,
		Aim:            form.Aim,
		Tasks:          form.Tasks,
		Technologies:   form.Technologies,
		AcceptanceType: gateway.AcceptanceType(form.AcceptanceType),
	}
	if _, err := p.gw.EditApplication(ctx.Request().Context(), sess.Token, app); err != nil {
		p.logger.Warn("editing application failed", err, sess)
		setFlash(ctx, "danger", alertMessage(err))
	} else {
		setFlash(ctx, "success", "Application updated successfully!")
	}
	return ctx.Redirect(http.StatusSeeOther, "/dashboard")
}

func distinctTeacherNames(apps []gateway.Application) []string {
	seen := make(map[string]struct{}, len(apps))
	names := make([]string, 0, len(apps))
	for _, app := range apps {
		if app.Teacher == nil {
			continue
		}
		name := app.Teacher.FullName()
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func filterApplications(apps []gateway.Application, filters teacherFilters) []gateway.Application {
	out := make([]gateway.Application, 0, len(apps))
	for _, app := range apps {
		if filters.AcceptanceType != "" && string(app.AcceptanceType) != filters.AcceptanceType {
			continue
		}
		if filters.TeacherName != "" {
			if app.Teacher == nil || !strings.Contains(app.Teacher.FullName(), filters.TeacherName) {
				continue
			}
		}
		out = append(out, app)
	}
	return out
}

func filterThesesByName(theses []gateway.Thesis, search string) []gateway.Thesis {
	if search == "" {
		return theses
	}
	search = strings.ToLower(search)
	out := make([]gateway.Thesis, 0, len(theses))
	for _, thesis := range theses {
		if strings.Contains(strings.ToLower(thesis.Name), search) {
			out = append(out, thesis)
		}
	}
	return out
}
