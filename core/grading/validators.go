package grading

import (
	"reflect"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/gpatracker/core"
)

var (
	gradeTag  = "grade"
	gradeText = "must be one of " + strings.Join(DefaultScale.Letters(), ", ") + " or empty"
)

// InitValidators registers the grading validations on validate.
// null.String fields are validated by their string value ("" when null).
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	validate.RegisterCustomTypeFunc(nullStringValue, null.String{})

	_ = validate.RegisterValidation(gradeTag, gradeValidation)
	core.RegisterCustomTranslation(validate, translator, gradeTag, gradeText)
}

func nullStringValue(v reflect.Value) interface{} {
	if ns, ok := v.Interface().(null.String); ok {
		if ns.Valid {
			return ns.String
		}
		return ""
	}
	return nil
}

// gradeValidation only allows letters of the DefaultScale, or nothing (clears the grade).
func gradeValidation(fl validator.FieldLevel) bool {
	grade := fl.Field().String()
	if grade == "" {
		return true
	}
	_, ok := DefaultScale.Lookup(grade)
	return ok
}
