// Package sample generates plausible order billing records for demos and
// for piping into the validate command.
// All generation uses crypto/rand.
package sample

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/zarlcorp/zorder/internal/billing"
)

// Generator produces random billing records.
type Generator struct {
	domain string
}

// New creates a generator that issues emails under domain. An empty domain
// uses example.com.
func New(domain string) *Generator {
	if domain == "" {
		domain = defaultDomain
	}
	return &Generator{domain: domain}
}

// Record returns the editable fields of a random billing record, in display
// order. Read-only fields are left to the form.
func (g *Generator) Record() []Value {
	first, last := pick(firstNames), pick(lastNames)
	p := places[randIntn(len(places))]

	return []Value{
		{billing.FieldEmail, g.Email(first, last)},
		{billing.FieldFirstName, first},
		{billing.FieldLastName, last},
		{billing.FieldAddress, g.street()},
		{billing.FieldAddress2, g.unit()},
		{billing.FieldCity, p.city},
		{billing.FieldState, p.state},
		{billing.FieldZip, p.zipPrefix + fmt.Sprintf("%02d", randIntn(100))},
		{billing.FieldCounty, p.county},
	}
}

// Value is one field assignment.
type Value struct {
	Field billing.Field
	Value string
}

// Fill writes a random record into f through SetField, so derived fields
// update as if typed.
func (g *Generator) Fill(f *billing.Form) error {
	for _, v := range g.Record() {
		if err := f.SetField(v.Field, v.Value); err != nil {
			return fmt.Errorf("fill: %w", err)
		}
	}
	return nil
}

// State returns a complete record with status and tracking filled from a
// fresh form on tr.
func (g *Generator) State(tr *billing.Tracker) (billing.State, error) {
	f := billing.NewForm(tr)
	if err := g.Fill(&f); err != nil {
		return billing.State{}, err
	}
	return f.State(), nil
}

// Email builds first.last@domain from a name, dropping anything the
// billing email pattern would reject.
func (g *Generator) Email(first, last string) string {
	local := emailSafe(first) + "." + emailSafe(last)
	if randIntn(2) == 0 {
		local += fmt.Sprintf("%02d", randIntn(100))
	}
	return local + "@" + g.domain
}

func emailSafe(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// street generates an address line like "1234 Oak Ave".
func (g *Generator) street() string {
	num := 100 + randIntn(9900)
	return fmt.Sprintf("%d %s %s", num, pick(streetNames), pick(streetSuffixes))
}

// unit leaves the optional second line empty about half the time.
func (g *Generator) unit() string {
	if randIntn(2) == 0 {
		return ""
	}
	return fmt.Sprintf("%s %d", pick(unitKinds), 1+randIntn(40))
}

// pick returns a random element from a string slice.
func pick(s []string) string {
	return s[randIntn(len(s))]
}

// randIntn returns a cryptographically random int in [0, n).
func randIntn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}
	return int(v.Int64())
}
