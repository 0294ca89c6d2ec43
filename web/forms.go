package web

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/unithesis/portal/core"
)

// Every submittable view owns a named form record with explicit fields and
// validation tags; nothing is submitted off an untyped bag of values.
type (
	LoginForm struct {
		Username string `form:"username" validate:"required"`
		Password string `form:"password" validate:"required"`
	}

	ApplicationForm struct {
		Theme          string `form:"theme" validate:"required"`
		Aim            string `form:"aim" validate:"required"`
		Tasks          string `form:"tasks" validate:"required"`
		Technologies   string `form:"technologies" validate:"required"`
		StudentID      int    `form:"studentId" validate:"required"`
		AcceptanceType string `form:"acceptanceType" validate:"required,oneof=UNDEFINED ACCEPTED DENIED"`
	}

	// EditApplicationForm mirrors the editable subset of an application;
	// student and teacher links are fixed once created.
	EditApplicationForm struct {
		Theme          string `form:"theme" validate:"required"`
		Aim            string `form:"aim" validate:"required"`
		Tasks          string `form:"tasks" validate:"required"`
		Technologies   string `form:"technologies" validate:"required"`
		AcceptanceType string `form:"acceptanceType" validate:"required,oneof=UNDEFINED ACCEPTED DENIED"`
	}

	ThesisForm struct {
		Name         string `form:"name" validate:"required"`
		Text         string `form:"text" validate:"required"`
		DateUploaded string `form:"dateUploaded" validate:"required,date"`
	}

	ReviewForm struct {
		Text         string `form:"text" validate:"required"`
		DateUploaded string `form:"dateUploaded" validate:"required,date"`
		Conclusion   string `form:"conclusion" validate:"required,oneof=true false"`
	}

	DefendingForm struct {
		DateDefending string `form:"dateDefending" validate:"required,date"`
	}

	LinkThesisForm struct {
		ThesisID    int `form:"thesisId" validate:"required"`
		DefendingID int `form:"defendingId" validate:"required"`
	}

	// DateRangeForm requires both bounds; ordering is left to the upstream,
	// which returns an empty result for a reversed range.
	DateRangeForm struct {
		StartDate string `form:"startDate" validate:"required,date"`
		EndDate   string `form:"endDate" validate:"required,date"`
	}

	GradeRangeForm struct {
		MinGrade float64 `form:"minGrade" validate:"required,min=2,max=6"`
		MaxGrade float64 `form:"maxGrade" validate:"required,min=2,max=6,gtefield=MinGrade"`
	}
)

// validateForm runs the struct validators and translates failures into a
// structured core.ValidationError.
func (p *portal) validateForm(form interface{}) error {
	err := p.validate.Struct(form)
	if err == nil {
		return nil
	}
	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(err, "validating form")
	}
	flds := make([]core.FieldError, 0, len(vErrs))
	for _, vErr := range vErrs {
		flds = append(flds, core.FieldError{Field: vErr.Field(), Error: vErr.Translate(p.translator)})
	}
	return core.NewValidationError(nil, flds...)
}

// validationAlert flattens a validation result into one banner message.
func validationAlert(err error) string {
	vErr, ok := errors.Cause(err).(*core.ValidationError)
	if !ok {
		return alertMessage(err)
	}
	msgs := make([]string, 0, len(vErr.Fields))
	for _, fld := range vErr.Fields {
		msgs = append(msgs, fld.Field+": "+fld.Error)
	}
	return strings.Join(msgs, "; ")
}
