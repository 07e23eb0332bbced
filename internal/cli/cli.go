// Package cli implements zorder's command-line subcommands.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zarlcorp/zorder/internal/billing"
	"github.com/zarlcorp/zorder/internal/sample"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned by Validate when the order fails validation.
var ErrInvalid = errors.New("order is invalid")

// errInteractive is returned when validate would block on a terminal.
var errInteractive = errors.New("validate reads an order from stdin; pipe a YAML or JSON document")

// Config holds settings read from the environment.
type Config struct {
	Theme   billing.Theme
	LogPath string
}

// LoadConfig reads ZORDER_THEME and ZORDER_LOG.
func LoadConfig() (Config, error) {
	theme, err := billing.ParseTheme(strings.ToLower(strings.TrimSpace(os.Getenv("ZORDER_THEME"))))
	if err != nil {
		return Config{}, fmt.Errorf("ZORDER_THEME: %w", err)
	}
	return Config{
		Theme:   theme,
		LogPath: os.Getenv("ZORDER_LOG"),
	}, nil
}

// validationReport is the --json output of validate.
type validationReport struct {
	Valid  bool           `json:"valid"`
	Errors billing.Errors `json:"errors,omitempty"`
}

// DecodeOrder reads one order document. JSON is accepted as a YAML subset.
// Unknown keys are rejected.
func DecodeOrder(r io.Reader) (billing.State, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s billing.State
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return billing.State{}, fmt.Errorf("decode order: empty document")
		}
		return billing.State{}, fmt.Errorf("decode order: %w", err)
	}
	return s, nil
}

// Validate decodes an order from r, validates it and writes the result to
// w. It returns ErrInvalid when any field fails.
func Validate(r io.Reader, w io.Writer, asJSON bool) error {
	s, err := DecodeOrder(r)
	if err != nil {
		return err
	}

	errs := billing.Validate(s)

	if asJSON {
		if err := writeJSON(w, validationReport{Valid: errs.Empty(), Errors: errs}); err != nil {
			return err
		}
	} else {
		writeErrors(w, errs)
	}

	if !errs.Empty() {
		return ErrInvalid
	}
	return nil
}

func writeErrors(w io.Writer, errs billing.Errors) {
	if errs.Empty() {
		fmt.Fprintln(w, "ok")
		return
	}
	for _, f := range errs.Fields() {
		fmt.Fprintf(w, "  %-10s %s\n", f, errs[f])
	}
}

// Sample writes a generated valid order to w as YAML, or JSON with asJSON.
func Sample(w io.Writer, gen *sample.Generator, tr *billing.Tracker, asJSON bool) error {
	s, err := gen.State(tr)
	if err != nil {
		return err
	}

	if asJSON {
		return writeJSON(w, s)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// CmdValidate validates an order piped on stdin.
func CmdValidate(args []string) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(os.Stderr, "zorder: %v\n", errInteractive)
		os.Exit(2)
	}

	err := Validate(os.Stdin, os.Stdout, hasFlag(args, "--json"))
	if errors.Is(err, ErrInvalid) {
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "zorder: %v\n", err)
		os.Exit(2)
	}
}

// CmdSample prints a generated valid order.
func CmdSample(args []string) {
	if err := Sample(os.Stdout, sample.New(""), billing.NewTracker(nil), hasFlag(args, "--json")); err != nil {
		fmt.Fprintf(os.Stderr, "zorder: %v\n", err)
		os.Exit(1)
	}
}

// CmdTracking prints a fresh tracking identifier.
func CmdTracking() {
	fmt.Println(billing.NewTracker(nil).Next())
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if strings.EqualFold(a, flag) {
			return true
		}
	}
	return false
}
