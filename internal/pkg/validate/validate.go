package validate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// v is the package-level singleton validator, initialised once at package
// load time.
var v = validator.New(validator.WithRequiredStructEnabled())

// Struct validates the given struct using its validate tags and returns a
// human-readable error, or nil when the struct is valid.
func Struct(s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		if fe.Tag() == "required" {
			msgs = append(msgs, fmt.Sprintf("%s is required", strings.ToLower(fe.Field())))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s failed '%s' validation", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}
