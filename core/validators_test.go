package core

import (
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) (*validator.Validate, ut.Translator) {
	validate := validator.New()
	_en := en.New()
	translator, found := ut.New(_en, _en).GetTranslator("en")
	require.True(t, found)
	InitValidators(validate, translator)
	return validate, translator
}

func TestDateValidation(t *testing.T) {
	validate, translator := newValidator(t)

	type form struct {
		EventDate string `form:"eventDate" validate:"required,date"`
	}

	t.Run("valid date", func(t *testing.T) {
		assert.NoError(t, validate.Struct(form{EventDate: "2026-06-15"}))
	})

	t.Run("rejected values", func(t *testing.T) {
		for _, val := range []string{"15/06/2026", "2026-13-40", "yesterday"} {
			err := validate.Struct(form{EventDate: val})
			require.Error(t, err, "value %q", val)

			vErrs := err.(validator.ValidationErrors)
			require.Len(t, vErrs, 1)
			assert.Equal(t, "eventDate", vErrs[0].Field())
			assert.Equal(t, "must be a valid date (YYYY-MM-DD)", vErrs[0].Translate(translator))
		}
	})

	t.Run("required text is overridden", func(t *testing.T) {
		err := validate.Struct(form{})
		require.Error(t, err)
		vErrs := err.(validator.ValidationErrors)
		require.Len(t, vErrs, 1)
		assert.Equal(t, "this field is required", vErrs[0].Translate(translator))
	})
}

func TestGtefieldAcrossFloats(t *testing.T) {
	validate, _ := newValidator(t)

	type form struct {
		MinGrade float64 `form:"minGrade" validate:"required,min=2,max=6"`
		MaxGrade float64 `form:"maxGrade" validate:"required,min=2,max=6,gtefield=MinGrade"`
	}

	assert.NoError(t, validate.Struct(form{MinGrade: 2, MaxGrade: 6}))
	assert.NoError(t, validate.Struct(form{MinGrade: 4, MaxGrade: 4}))
	assert.Error(t, validate.Struct(form{MinGrade: 5, MaxGrade: 3}))
	assert.Error(t, validate.Struct(form{MinGrade: 1, MaxGrade: 7}))
}
