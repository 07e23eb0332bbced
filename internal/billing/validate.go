package billing

import (
	"errors"
	"reflect"
	"regexp"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// emailPattern is intentionally loose: a word/dot/hyphen local part, one or
// more dotted labels and a 2-4 character final label.
var emailPattern = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`)

var messages = map[Field]string{
	FieldEmail:     "Please enter a valid email address",
	FieldFirstName: "First Name is required",
	FieldLastName:  "Last Name is required",
	FieldAddress:   "Address is required",
	FieldCity:      "City is required",
	FieldState:     "State is required",
	FieldZip:       "Zip Code must be 5 digits",
	FieldCounty:    "County is required",
}

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their record names, not Go names
	val.RegisterTagNameFunc(func(sf reflect.StructField) string {
		name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	if err := val.RegisterValidation("billing_email", func(fl validator.FieldLevel) bool {
		return ValidEmail(fl.Field().String())
	}); err != nil {
		panic("billing: register billing_email: " + err.Error())
	}

	return val
}

// ValidEmail reports whether s is non-empty and matches the email pattern.
func ValidEmail(s string) bool {
	return s != "" && emailPattern.MatchString(s)
}

// Errors maps each failing field to its message. A field that passes never
// appears as a key.
type Errors map[Field]string

// Empty reports whether no field failed.
func (e Errors) Empty() bool { return len(e) == 0 }

// Has reports whether f failed.
func (e Errors) Has(f Field) bool {
	_, ok := e[f]
	return ok
}

// Fields returns the failing fields in display order.
func (e Errors) Fields() []Field {
	out := make([]Field, 0, len(e))
	for _, f := range Fields {
		if e.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// Validate checks every rule against s and collects all failures. It has no
// side effects; identical input yields identical output.
func Validate(s State) Errors {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// only reachable if State stops being a struct
		panic("billing: validate: " + err.Error())
	}

	errs := make(Errors, len(verrs))
	for _, fe := range verrs {
		f := Field(fe.Field())
		msg, ok := messages[f]
		if !ok {
			continue
		}
		errs[f] = msg
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// RequiredFields returns the fields Validate checks, in display order.
func RequiredFields() []Field {
	return slices.DeleteFunc(slices.Clone(Fields), func(f Field) bool {
		return !f.Required()
	})
}
