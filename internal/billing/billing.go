// Package billing holds the order billing form: its field values, the
// derived full name, the generated tracking identifier and validation.
package billing

import (
	"errors"
	"fmt"
)

// DefaultStatus is the only status an order carries in this form.
const DefaultStatus = "Pending"

var (
	// ErrUnknownField is returned when setting a field the form does not have.
	ErrUnknownField = errors.New("unknown field")
	// ErrReadOnlyField is returned when setting a derived or generated field.
	ErrReadOnlyField = errors.New("read-only field")
	// ErrSubmitted is returned when editing a form that is already submitted.
	ErrSubmitted = errors.New("form already submitted")
)

// Field names one attribute of the billing record.
type Field string

const (
	FieldEmail     Field = "email"
	FieldFirstName Field = "firstName"
	FieldLastName  Field = "lastName"
	FieldFullName  Field = "fullName"
	FieldTracking  Field = "tracking"
	FieldStatus    Field = "status"
	FieldAddress   Field = "address"
	FieldAddress2  Field = "address2"
	FieldCity      Field = "city"
	FieldState     Field = "state"
	FieldZip       Field = "zip"
	FieldCounty    Field = "county"
)

// Fields lists every field in display order.
var Fields = []Field{
	FieldEmail,
	FieldFirstName,
	FieldLastName,
	FieldFullName,
	FieldTracking,
	FieldStatus,
	FieldAddress,
	FieldAddress2,
	FieldCity,
	FieldState,
	FieldZip,
	FieldCounty,
}

var labels = map[Field]string{
	FieldEmail:     "Email",
	FieldFirstName: "First Name",
	FieldLastName:  "Last Name",
	FieldFullName:  "Full Name",
	FieldTracking:  "Tracking",
	FieldStatus:    "Status",
	FieldAddress:   "Address",
	FieldAddress2:  "Address 2",
	FieldCity:      "City",
	FieldState:     "State",
	FieldZip:       "ZIP Code",
	FieldCounty:    "County",
}

// Label returns the human-readable label for f.
func (f Field) Label() string {
	if l, ok := labels[f]; ok {
		return l
	}
	return string(f)
}

// ReadOnly reports whether f is derived or generated rather than typed.
func (f Field) ReadOnly() bool {
	return f == FieldFullName || f == FieldTracking || f == FieldStatus
}

// Required reports whether f must be filled in before submitting.
func (f Field) Required() bool {
	_, ok := messages[f]
	return ok
}

// State is the order billing record. JSON keys follow the field names.
type State struct {
	Email     string `json:"email" yaml:"email" validate:"billing_email"`
	FirstName string `json:"firstName" yaml:"firstName" validate:"required"`
	LastName  string `json:"lastName" yaml:"lastName" validate:"required"`
	FullName  string `json:"fullName" yaml:"fullName"`
	Status    string `json:"status" yaml:"status"`
	Tracking  string `json:"tracking" yaml:"tracking"`
	Address   string `json:"address" yaml:"address" validate:"required"`
	Address2  string `json:"address2" yaml:"address2"`
	City      string `json:"city" yaml:"city" validate:"required"`
	State     string `json:"state" yaml:"state" validate:"required"`
	Zip       string `json:"zip" yaml:"zip" validate:"required,len=5"`
	County    string `json:"county" yaml:"county" validate:"required"`
}

// Value returns the value of f, or "" if f is not a field.
func (s State) Value(f Field) string {
	if p := s.ptr(f); p != nil {
		return *p
	}
	return ""
}

func (s *State) ptr(f Field) *string {
	switch f {
	case FieldEmail:
		return &s.Email
	case FieldFirstName:
		return &s.FirstName
	case FieldLastName:
		return &s.LastName
	case FieldFullName:
		return &s.FullName
	case FieldTracking:
		return &s.Tracking
	case FieldStatus:
		return &s.Status
	case FieldAddress:
		return &s.Address
	case FieldAddress2:
		return &s.Address2
	case FieldCity:
		return &s.City
	case FieldState:
		return &s.State
	case FieldZip:
		return &s.Zip
	case FieldCounty:
		return &s.County
	}
	return nil
}

// derivations maps a source field to the hooks that run after it changes.
var derivations = map[Field][]func(*State){
	FieldFirstName: {deriveFullName},
	FieldLastName:  {deriveFullName},
}

func deriveFullName(s *State) {
	s.FullName = s.FirstName + " " + s.LastName
}

// Mode is the widget's position in the edit/confirm cycle.
type Mode int

const (
	Editing Mode = iota
	Submitted
)

func (m Mode) String() string {
	if m == Submitted {
		return "submitted"
	}
	return "editing"
}

// Theme is the display palette. It never affects data.
type Theme int

const (
	Light Theme = iota
	Dark
)

func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

// ParseTheme maps "light" or "dark" to a Theme.
func ParseTheme(s string) (Theme, error) {
	switch s {
	case "light", "":
		return Light, nil
	case "dark":
		return Dark, nil
	}
	return Light, fmt.Errorf("parse theme %q: want light or dark", s)
}

// Form owns the billing state plus the submitted flag, the last validation
// result and the theme. It is a value type; errors are replaced, never
// mutated in place, so copies do not share state.
type Form struct {
	state     State
	errors    Errors
	submitted bool
	theme     Theme
	tracker   *Tracker
}

// NewForm creates an empty form. A nil tracker uses the wall clock.
func NewForm(tr *Tracker) Form {
	if tr == nil {
		tr = NewTracker(nil)
	}
	f := Form{tracker: tr}
	f.state = f.blank()
	return f
}

func (f Form) blank() State {
	return State{
		Status:   DefaultStatus,
		Tracking: f.tracker.Next(),
	}
}

// State returns a copy of the current record.
func (f Form) State() State { return f.state }

// Value returns the current value of a field.
func (f Form) Value(name Field) string { return f.state.Value(name) }

// Errors returns the result of the last submit, nil when none failed.
func (f Form) Errors() Errors { return f.errors }

// Submitted reports whether the form passed validation and was submitted.
func (f Form) Submitted() bool { return f.submitted }

// Theme returns the current display palette.
func (f Form) Theme() Theme { return f.theme }

// Mode returns Editing or Submitted.
func (f Form) Mode() Mode {
	if f.submitted {
		return Submitted
	}
	return Editing
}

// SetField stores value under name and runs any derivation keyed on name.
func (f *Form) SetField(name Field, value string) error {
	if f.submitted {
		return fmt.Errorf("set %s: %w", name, ErrSubmitted)
	}
	p := f.state.ptr(name)
	if p == nil {
		return fmt.Errorf("set %s: %w", name, ErrUnknownField)
	}
	if name.ReadOnly() {
		return fmt.Errorf("set %s: %w", name, ErrReadOnlyField)
	}

	*p = value
	for _, derive := range derivations[name] {
		derive(&f.state)
	}
	return nil
}

// Submit validates the current state and stores the result. When nothing
// fails the form moves to Submitted. Submitting twice is a no-op.
func (f *Form) Submit() Errors {
	if f.submitted {
		return nil
	}
	errs := Validate(f.state)
	if !errs.Empty() {
		f.errors = errs
		return errs
	}
	f.errors = nil
	f.MarkSubmitted()
	return nil
}

// MarkSubmitted flips the form to Submitted. Callers validate first.
func (f *Form) MarkSubmitted() {
	f.submitted = true
}

// Reset restores the blank record with a new tracking identifier, clears
// errors and returns to Editing. The theme is kept.
func (f *Form) Reset() {
	f.state = f.blank()
	f.errors = nil
	f.submitted = false
}

// ToggleTheme switches between light and dark.
func (f *Form) ToggleTheme() {
	if f.theme == Dark {
		f.theme = Light
		return
	}
	f.theme = Dark
}

// SetTheme sets the palette directly.
func (f *Form) SetTheme(t Theme) {
	f.theme = t
}
