package form

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrTooLong = errors.New("value too long")

var validate = validator.New()

// FieldErrors maps a field name to the problem found with its value.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e[name])
	}
	return "invalid fields: " + strings.Join(parts, "; ")
}

// CheckLength reports whether value fits in limit characters. Characters are
// counted as runes; limit <= 0 means unconstrained.
func CheckLength(value string, limit int) error {
	if limit <= 0 {
		return nil
	}
	if err := validate.Var(value, "max="+strconv.Itoa(limit)); err != nil {
		return fmt.Errorf("%w: at most %d characters", ErrTooLong, limit)
	}
	return nil
}

// Advise returns a warning for every text field whose current value is over
// its maximum length. It never blocks anything; callers show the warnings.
// Like Enforce, it measures the value with surrounding whitespace removed.
func Advise(fields []Field, values map[string]string) map[string]string {
	warnings := make(map[string]string)
	for _, f := range fields {
		if f.Kind != KindText {
			continue
		}
		if CheckLength(strings.TrimSpace(values[f.Name]), f.MaxLength) != nil {
			warnings[f.Name] = fmt.Sprintf("%s must be at most %d characters", f.Label, f.MaxLength)
		}
	}
	return warnings
}

// Enforce is the save-time check: over-length text and blank required fields
// are rejected with FieldErrors. Text is stored trimmed, so it is measured
// trimmed.
func Enforce(fields []Field, result Result) error {
	errs := FieldErrors{}
	for _, f := range fields {
		if f.Kind != KindText {
			continue
		}
		value, _ := result[f.Name].(string)
		value = strings.TrimSpace(value)
		if f.Required && value == "" {
			errs[f.Name] = f.Label + " is required"
			continue
		}
		if CheckLength(value, f.MaxLength) != nil {
			errs[f.Name] = fmt.Sprintf("%s must be at most %d characters", f.Label, f.MaxLength)
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
