package form

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrDuplicateField = errors.New("duplicate field")
	ErrUnknownField   = errors.New("unknown field")
	ErrDialogClosed   = errors.New("dialog is closed")
)

// Form is an ordered set of fields plus their current values. It knows
// nothing about the entity being edited.
type Form struct {
	title  string
	fields []Field
	index  map[string]int
	values map[string]string
}

func New(title string) *Form {
	return &Form{
		title:  title,
		index:  make(map[string]int),
		values: make(map[string]string),
	}
}

// NewWithFields builds a form and registers fields in order.
func NewWithFields(title string, fields ...Field) (*Form, error) {
	f := New(title)
	for _, field := range fields {
		if err := f.AddField(field); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (f *Form) Title() string {
	return f.title
}

// AddField registers a field after the ones already present. Its initial
// value becomes the field's current value.
func (f *Form) AddField(field Field) error {
	if strings.TrimSpace(field.Name) == "" {
		return fmt.Errorf("field %q has no name", field.Label)
	}
	if _, exists := f.index[field.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateField, field.Name)
	}
	if field.Kind == "" {
		field.Kind = KindText
	}
	f.index[field.Name] = len(f.fields)
	f.fields = append(f.fields, field)
	f.values[field.Name] = field.Initial
	return nil
}

// Fields returns the descriptors in declaration order.
func (f *Form) Fields() []Field {
	out := make([]Field, len(f.fields))
	copy(out, f.fields)
	return out
}

func (f *Form) Set(name, value string) error {
	if _, ok := f.index[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	f.values[name] = value
	return nil
}

// SetAll sets every value in values; unknown names are collected and
// reported together.
func (f *Form) SetAll(values map[string]string) error {
	errs := FieldErrors{}
	for name, value := range values {
		if err := f.Set(name, value); err != nil {
			errs[name] = "unknown field"
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (f *Form) Value(name string) (string, bool) {
	if _, ok := f.index[name]; !ok {
		return "", false
	}
	return f.values[name], true
}

// Warnings flags fields whose values are over length. Advisory only.
func (f *Form) Warnings() map[string]string {
	return Advise(f.fields, f.values)
}

// Build wires the form to a save action. Nothing is read until Submit.
func (f *Form) Build(onSave func(Result) error) *Dialog {
	return &Dialog{form: f, onSave: onSave}
}

func (f *Form) collect() (Result, error) {
	result := make(Result, len(f.fields))
	errs := FieldErrors{}
	for _, field := range f.fields {
		raw := f.values[field.Name]
		switch field.Kind {
		case KindBool:
			if strings.TrimSpace(raw) == "" {
				result[field.Name] = false
				continue
			}
			b, err := strconv.ParseBool(strings.TrimSpace(raw))
			if err != nil {
				errs[field.Name] = field.Label + " must be true or false"
				continue
			}
			result[field.Name] = b
		default:
			result[field.Name] = raw
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return result, nil
}

// Dialog is a built form waiting to be submitted or cancelled.
type Dialog struct {
	form   *Form
	onSave func(Result) error
	closed bool
}

// Submit collects every field into a Result and hands it to the save
// action. Length warnings do not stop it. The dialog closes once a save
// succeeds; a failed save leaves it open for another attempt.
func (d *Dialog) Submit() error {
	if d.closed {
		return ErrDialogClosed
	}
	result, err := d.form.collect()
	if err != nil {
		return err
	}
	if d.onSave != nil {
		if err := d.onSave(result); err != nil {
			return err
		}
	}
	d.closed = true
	return nil
}

// Cancel closes the dialog without saving.
func (d *Dialog) Cancel() {
	d.closed = true
}

func (d *Dialog) Closed() bool {
	return d.closed
}
