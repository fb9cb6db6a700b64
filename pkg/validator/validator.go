package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct checks struct tags and flattens the failures into one
// error suitable for inline display next to a form.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		var errMsgs []string
		for _, err := range err.(validator.ValidationErrors) {
			msg := fmt.Sprintf("field %s failed %q", err.Field(), err.Tag())
			if err.Param() != "" {
				msg += fmt.Sprintf(" (%s)", err.Param())
			}
			errMsgs = append(errMsgs, msg)
		}
		return fmt.Errorf("validation failed: %s", strings.Join(errMsgs, "; "))
	}
	return nil
}
