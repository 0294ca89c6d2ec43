package web

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/unithesis/portal/core/session"
	"github.com/unithesis/portal/gateway"
)

type studentDashboardData struct {
	Student      gateway.Student
	Applications []gateway.Application
	Theses       []gateway.Thesis
	Defendings   []gateway.Defending
}

// renderStudentDashboard assembles the student view: applications, theses
// (with their reviews) and defending grades. Each list failure surfaces an
// alert and leaves that list empty; it never hides the rest of the page.
func (p *portal) renderStudentDashboard(ctx echo.Context, sess session.Session) error {
	pg := newPage(ctx, "Student Dashboard")
	data := &studentDashboardData{}
	pg.Data = data

	rctx := ctx.Request().Context()

	student, err := p.gw.StudentByUsername(rctx, sess.Token, sess.Subject)
	if err != nil {
		pg.fail("Failed to fetch student information. Please try again later.")
		return ctx.Render(http.StatusOK, "student_dashboard", pg)
	}
	data.Student = student

	if apps, err := p.gw.StudentApplications(rctx, sess.Token, student.ID); err != nil {
		pg.fail("Failed to load applications. Please try again later.")
	} else {
		data.Applications = apps
	}

	if theses, err := p.gw.StudentTheses(rctx, sess.Token, student.ID); err != nil {
		pg.fail("Failed to load theses or reviews. Please try again later.")
	} else {
		p.attachReviews(ctx, sess, theses)
		data.Theses = theses
	}

	if defs, err := p.gw.StudentDefendings(rctx, sess.Token, student.ID); err != nil {
		pg.fail("Failed to load defendings. Please try again later.")
	} else {
		data.Defendings = defs
	}

	return ctx.Render(http.StatusOK, "student_dashboard", pg)
}

// attachReviews fans out one review lookup per thesis and fans back in.
// Failures are isolated per item: a thesis whose review cannot be fetched
// simply renders without one, it does not abort the others.
func (p *portal) attachReviews(ctx echo.Context, sess session.Session, theses []gateway.Thesis) {
	rctx := ctx.Request().Context()

	var wg sync.WaitGroup
	for i := range theses {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			review, err := p.gw.ReviewByThesisID(rctx, sess.Token, theses[i].ID)
			if err != nil {
				if !gateway.IsNotFound(err) {
					p.logger.Warn("fetching review failed", err, sess)
				}
				return
			}
			theses[i].Review = &review
		}(i)
	}
	wg.Wait()
}
