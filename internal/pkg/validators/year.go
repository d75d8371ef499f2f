package validators

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// YearValidation validates calendar year fields (year of Ph.D., publication
// year, citation year). Years before 1000 or more than one year in the
// future are rejected.
func YearValidation(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	return year >= 1000 && year <= int64(time.Now().Year())+1
}
