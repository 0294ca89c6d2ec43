package web

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/unithesis/portal/core"
	"github.com/unithesis/portal/core/session"
	"github.com/unithesis/portal/gateway"
)

// portal holds the view handlers' shared dependencies. The session store and
// gateway client are injected here by the composition root; handlers never
// reach for globals.
type portal struct {
	conf       *core.Config
	logger     core.Logger
	gw         *gateway.Client
	sessions   session.Store
	validate   *validator.Validate
	translator ut.Translator
}

func registerPortal(e *echo.Echo, opts *Options) {
	p := &portal{
		conf:       opts.Conf,
		logger:     opts.Logger,
		gw:         opts.Gateway,
		sessions:   opts.Sessions,
		validate:   opts.Validate,
		translator: opts.Translator,
	}

	auth := requireAuth(opts.Sessions)
	teacher := requireRole(opts.Sessions, session.RoleTeacher)
	student := requireRole(opts.Sessions, session.RoleStudent)

	e.GET("/", p.home)
	e.POST("/login", p.login)
	e.POST("/logout", p.logout)

	e.GET("/dashboard", p.dashboard, auth)

	e.GET("/application", p.applicationPage, teacher)
	e.POST("/application", p.applicationSubmit, teacher)
	e.POST("/application/:id/edit", p.applicationEdit, teacher)

	e.GET("/thesis/:applicationID", p.thesisPage, student)
	e.POST("/thesis/:applicationID", p.thesisSubmit, student)

	e.GET("/review/:thesisID", p.reviewPage, teacher)
	e.POST("/review/:thesisID", p.reviewSubmit, teacher)

	e.GET("/defendings", p.defendingsPage, auth)
	e.POST("/defendings/schedule", p.defendingSchedule, auth)
	e.POST("/defendings/link", p.defendingLink, auth)
}
