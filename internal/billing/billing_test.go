package billing

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func validForm(t *testing.T) Form {
	t.Helper()
	f := NewForm(nil)
	values := []struct {
		field Field
		value string
	}{
		{FieldEmail, "a@b.co"},
		{FieldFirstName, "Jane"},
		{FieldLastName, "Doe"},
		{FieldAddress, "1 Main St"},
		{FieldCity, "Springfield"},
		{FieldState, "IL"},
		{FieldZip, "62704"},
		{FieldCounty, "Sangamon"},
	}
	for _, v := range values {
		if err := f.SetField(v.field, v.value); err != nil {
			t.Fatalf("set %s: %v", v.field, err)
		}
	}
	return f
}

func TestNewFormInitialState(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	f := NewForm(NewTracker(fixedClock(at)))

	want := State{
		Status:   "Pending",
		Tracking: "TRACK-" + "1740830400000",
	}
	if diff := cmp.Diff(want, f.State()); diff != "" {
		t.Errorf("initial state mismatch (-want +got):\n%s", diff)
	}
	if f.Mode() != Editing {
		t.Errorf("mode = %s, want editing", f.Mode())
	}
	if f.Errors() != nil {
		t.Errorf("errors = %v, want nil", f.Errors())
	}
	if f.Theme() != Light {
		t.Errorf("theme = %s, want light", f.Theme())
	}
}

func TestSetFieldDerivesFullName(t *testing.T) {
	tests := []struct {
		name  string
		edits [][2]string
		want  string
	}{
		{"first only", [][2]string{{"firstName", "Jane"}}, "Jane "},
		{"last only", [][2]string{{"lastName", "Doe"}}, " Doe"},
		{"both", [][2]string{{"firstName", "Jane"}, {"lastName", "Doe"}}, "Jane Doe"},
		{"overwrite first", [][2]string{{"firstName", "Jane"}, {"lastName", "Doe"}, {"firstName", "John"}}, "John Doe"},
		{"clear both", [][2]string{{"firstName", "Jane"}, {"lastName", "Doe"}, {"firstName", ""}, {"lastName", ""}}, " "},
		{"unicode", [][2]string{{"firstName", "Zoë"}, {"lastName", "Ångström"}}, "Zoë Ångström"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewForm(nil)
			for _, e := range tt.edits {
				if err := f.SetField(Field(e[0]), e[1]); err != nil {
					t.Fatalf("set %s: %v", e[0], err)
				}
				s := f.State()
				if s.FullName != s.FirstName+" "+s.LastName {
					t.Fatalf("after %s: fullName = %q, first = %q, last = %q", e[0], s.FullName, s.FirstName, s.LastName)
				}
			}
			if got := f.Value(FieldFullName); got != tt.want {
				t.Errorf("fullName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetFieldOtherFieldsDoNotDerive(t *testing.T) {
	f := NewForm(nil)
	for _, name := range []Field{FieldEmail, FieldAddress, FieldAddress2, FieldCity, FieldState, FieldZip, FieldCounty} {
		if err := f.SetField(name, "x"); err != nil {
			t.Fatalf("set %s: %v", name, err)
		}
	}
	if got := f.Value(FieldFullName); got != "" {
		t.Errorf("fullName = %q, want empty", got)
	}
}

func TestSetFieldErrors(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  error
	}{
		{"full name", FieldFullName, ErrReadOnlyField},
		{"status", FieldStatus, ErrReadOnlyField},
		{"tracking", FieldTracking, ErrReadOnlyField},
		{"unknown", Field("phone"), ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewForm(nil)
			before := f.State()
			err := f.SetField(tt.field, "x")
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if diff := cmp.Diff(before, f.State()); diff != "" {
				t.Errorf("state changed on rejected set (-before +after):\n%s", diff)
			}
		})
	}
}

func TestSubmitEmptyFormFailsEveryRequiredField(t *testing.T) {
	f := NewForm(nil)
	errs := f.Submit()

	want := Errors{
		FieldEmail:     "Please enter a valid email address",
		FieldFirstName: "First Name is required",
		FieldLastName:  "Last Name is required",
		FieldAddress:   "Address is required",
		FieldCity:      "City is required",
		FieldState:     "State is required",
		FieldZip:       "Zip Code must be 5 digits",
		FieldCounty:    "County is required",
	}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, f.Errors()); diff != "" {
		t.Errorf("stored errors mismatch (-want +got):\n%s", diff)
	}
	if f.Submitted() {
		t.Error("form should stay in editing")
	}
}

func TestSubmitValidForm(t *testing.T) {
	f := validForm(t)
	if errs := f.Submit(); !errs.Empty() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if f.Mode() != Submitted {
		t.Errorf("mode = %s, want submitted", f.Mode())
	}
	if got := f.Value(FieldFullName); got != "Jane Doe" {
		t.Errorf("fullName = %q, want %q", got, "Jane Doe")
	}
	if !f.Errors().Empty() {
		t.Errorf("errors = %v, want none", f.Errors())
	}
}

func TestFailedSubmitKeepsValues(t *testing.T) {
	f := validForm(t)
	if err := f.SetField(FieldZip, "1234"); err != nil {
		t.Fatal(err)
	}
	before := f.State()

	errs := f.Submit()
	if diff := cmp.Diff(Errors{FieldZip: "Zip Code must be 5 digits"}, errs); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(before, f.State()); diff != "" {
		t.Errorf("failed submit changed state:\n%s", diff)
	}
}

func TestSubmitReplacesErrors(t *testing.T) {
	f := NewForm(nil)
	f.Submit()
	if len(f.Errors()) != 8 {
		t.Fatalf("got %d errors, want 8", len(f.Errors()))
	}

	f = validForm(t)
	f.SetField(FieldCity, "")
	f.Submit()
	if diff := cmp.Diff(Errors{FieldCity: "City is required"}, f.Errors()); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmittedFormIsReadOnly(t *testing.T) {
	f := validForm(t)
	f.Submit()

	err := f.SetField(FieldCity, "Chicago")
	if !errors.Is(err, ErrSubmitted) {
		t.Fatalf("err = %v, want ErrSubmitted", err)
	}
	if f.Value(FieldCity) != "Springfield" {
		t.Errorf("city changed to %q", f.Value(FieldCity))
	}
	if errs := f.Submit(); errs != nil {
		t.Errorf("second submit = %v, want nil", errs)
	}
}

func TestResetAfterSubmit(t *testing.T) {
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tr := NewTracker(func() time.Time { return clock })
	f := NewForm(tr)
	for _, name := range RequiredFields() {
		f.SetField(name, "x")
	}
	f.SetField(FieldEmail, "a@b.co")
	f.SetField(FieldZip, "ABCDE")
	f.SetField(FieldAddress2, "Apt 4")
	f.ToggleTheme()
	if errs := f.Submit(); !errs.Empty() {
		t.Fatalf("submit: %v", errs)
	}
	oldTracking := f.Value(FieldTracking)

	clock = clock.Add(5 * time.Second)
	f.Reset()

	s := f.State()
	for _, name := range Fields {
		if name.ReadOnly() {
			continue
		}
		if got := s.Value(name); got != "" {
			t.Errorf("%s = %q after reset, want empty", name, got)
		}
	}
	if s.FullName != "" {
		t.Errorf("fullName = %q after reset, want empty", s.FullName)
	}
	if s.Status != DefaultStatus {
		t.Errorf("status = %q, want %q", s.Status, DefaultStatus)
	}
	if s.Tracking == oldTracking {
		t.Errorf("tracking not regenerated: %q", s.Tracking)
	}
	if s.Tracking != "TRACK-1740830405000" {
		t.Errorf("tracking = %q, want TRACK-1740830405000", s.Tracking)
	}
	if f.Errors() != nil {
		t.Errorf("errors = %v after reset", f.Errors())
	}
	if f.Mode() != Editing {
		t.Errorf("mode = %s after reset, want editing", f.Mode())
	}
	if f.Theme() != Dark {
		t.Error("reset should keep the theme")
	}
}

func TestResetClearsErrors(t *testing.T) {
	f := NewForm(nil)
	f.Submit()
	f.Reset()
	if f.Errors() != nil {
		t.Errorf("errors = %v after reset", f.Errors())
	}
}

func TestToggleThemeLeavesData(t *testing.T) {
	f := NewForm(nil)
	f.SetField(FieldFirstName, "Jane")
	f.Submit()
	state, errs := f.State(), f.Errors()

	f.ToggleTheme()
	if f.Theme() != Dark {
		t.Fatalf("theme = %s, want dark", f.Theme())
	}
	if diff := cmp.Diff(state, f.State()); diff != "" {
		t.Errorf("toggle changed state:\n%s", diff)
	}
	if diff := cmp.Diff(errs, f.Errors()); diff != "" {
		t.Errorf("toggle changed errors:\n%s", diff)
	}

	f.ToggleTheme()
	if f.Theme() != Light {
		t.Errorf("theme = %s, want light", f.Theme())
	}
}

func TestFormCopiesDoNotShareErrors(t *testing.T) {
	f := NewForm(nil)
	f.Submit()
	g := f
	g.SetField(FieldFirstName, "Jane")
	g.Submit()

	if !f.Errors().Has(FieldFirstName) {
		t.Error("copy's submit changed the original's errors")
	}
	if g.Errors().Has(FieldFirstName) {
		t.Error("copy should no longer fail first name")
	}
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{"", Light, false},
		{"light", Light, false},
		{"dark", Dark, false},
		{"solarized", Light, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTheme(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("theme = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFieldLabels(t *testing.T) {
	for _, f := range Fields {
		if f.Label() == "" || f.Label() == string(f) {
			t.Errorf("field %s has no label", f)
		}
	}
	if got := Field("phone").Label(); got != "phone" {
		t.Errorf("unknown label = %q", got)
	}
	if !strings.Contains(FieldZip.Label(), "ZIP") {
		t.Errorf("zip label = %q", FieldZip.Label())
	}
}
