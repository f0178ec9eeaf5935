package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	usecasecontract "github.com/judoclub/clubsite/internal/usecase/contract"
)

// AppValidator implements the usecase.Validator interface.
type AppValidator struct {
	validate *validator.Validate
}

var _ usecasecontract.IValidator = (*AppValidator)(nil)

// TimeLayouts are the accepted time-of-day inputs.
var TimeLayouts = []string{"15:04", "15:04:05"}

// formatTags are skipped on an empty string, which is the job of notblank.
var formatTags = map[string]bool{
	"email":          true,
	"url":            true,
	"numeric":        true,
	"timeofday":      true,
	"positiveorzero": true,
}

// NewValidator creates a new validator that implements the usecase.Validator interface.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	v.RegisterValidation("notblank", notBlankFL)
	v.RegisterValidation("timeofday", timeOfDayFL)
	v.RegisterValidation("positiveorzero", positiveOrZeroFL)
	return &AppValidator{validate: v}
}

// Validate runs every tag of every rule and collects the failures as
// "field: message".
func (av *AppValidator) Validate(rules []usecasecontract.FieldRule) []string {
	var violations []string
	for _, rule := range rules {
		value, present := indirect(rule.Value)
		for _, tag := range strings.Split(rule.Tags, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			name, param := splitTag(tag)
			if !present {
				if name == "notblank" || name == "notnull" {
					violations = append(violations, rule.Field+": "+message(name, param, nil))
				}
				continue
			}
			if name == "notnull" {
				continue
			}
			if s, ok := value.(string); ok && s == "" && formatTags[name] {
				continue
			}
			if err := av.validate.Var(value, tag); err != nil {
				violations = append(violations, rule.Field+": "+message(name, param, value))
			}
		}
	}
	return violations
}

// indirect dereferences pointers and reports whether a value is present.
func indirect(v interface{}) (interface{}, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	return rv.Interface(), true
}

func splitTag(tag string) (string, string) {
	if i := strings.IndexByte(tag, '='); i >= 0 {
		return tag[:i], tag[i+1:]
	}
	return tag, ""
}

func message(name, param string, value interface{}) string {
	switch name {
	case "notblank":
		return "This value should not be blank."
	case "notnull":
		return "This value should not be null."
	case "max":
		return fmt.Sprintf("This value is too long. It should have %s characters or less.", param)
	case "min":
		return fmt.Sprintf("This value is too short. It should have %s characters or more.", param)
	case "email":
		return "This value is not a valid email address."
	case "url":
		return "This value is not a valid URL."
	case "oneof":
		return fmt.Sprintf("The value %q is not a valid choice.", fmt.Sprint(value))
	case "numeric":
		return "This value should be of type numeric."
	case "timeofday":
		return "This value is not a valid time."
	case "positiveorzero":
		return "This value should be either positive or zero."
	default:
		return "This value is not valid."
	}
}

// notBlankFL rejects empty and whitespace-only strings.
func notBlankFL(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.String:
		return strings.TrimSpace(field.String()) != ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return field.Len() > 0
	default:
		return !field.IsZero()
	}
}

// IsTimeOfDay reports whether s is a valid HH:MM or HH:MM:SS time.
func IsTimeOfDay(s string) bool {
	for _, layout := range TimeLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func timeOfDayFL(fl validator.FieldLevel) bool {
	return IsTimeOfDay(fl.Field().String())
}

// positiveOrZeroFL leaves non-numeric input to the numeric tag.
func positiveOrZeroFL(fl validator.FieldLevel) bool {
	f, err := strconv.ParseFloat(fl.Field().String(), 64)
	if err != nil {
		return true
	}
	return f >= 0
}
