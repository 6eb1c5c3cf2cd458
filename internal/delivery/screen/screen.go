// Package screen declares, per entity, the forms an operator fills in, the
// fields they can filter on, and how a submitted form becomes a service
// call.
package screen

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"clinic-records/internal/filter"
	"clinic-records/internal/form"
	"clinic-records/internal/usecase"
)

var ErrUnknownVariant = errors.New("unknown variant")

// Screen is what the HTTP layer drives. Records come back already
// converted to their response DTO.
type Screen interface {
	Name() string
	Title() string
	Variants() []string
	NewForm(variant string) (*form.Form, error)
	EditForm(ctx context.Context, id string) (variant string, f *form.Form, err error)
	FilterFields() []form.Field
	List(ctx context.Context, criteria filter.Criteria) ([]any, error)
	Get(ctx context.Context, id string) (any, bool)
	Create(ctx context.Context, variant string, values map[string]string) (Outcome, error)
	Update(ctx context.Context, id, variant string, values map[string]string) (Outcome, error)
	Delete(ctx context.Context, id string) error
}

// Outcome is a saved record plus the length warnings raised while the form
// was filled in. Warnings never stop a save.
type Outcome struct {
	Record   any
	Warnings map[string]string
}

type service[T any] interface {
	Add(ctx context.Context, rec T) error
	GetAll(ctx context.Context) []T
	GetByID(ctx context.Context, id string) T
	Find(ctx context.Context, id string) (T, error)
	Update(ctx context.Context, rec T) error
	Delete(ctx context.Context, id string) error
}

type variant struct {
	name   string
	fields []form.Field
}

// crud is the flow every screen shares. The per-entity files only supply
// descriptors and the conversions between T and form values.
type crud[T any] struct {
	name      string
	title     string
	variants  []variant
	filters   []form.Field
	accessors filter.Accessors[T]
	svc       service[T]

	// decode builds a record of the named variant from a collected form.
	decode func(variant string, d *form.Decoder) T
	// encode is decode's inverse, used to pre-fill edit forms.
	encode  func(rec T) (variant string, values map[string]string)
	setID   func(rec T, id string)
	respond func(rec T) any
}

func (c *crud[T]) Name() string  { return c.name }
func (c *crud[T]) Title() string { return c.title }

func (c *crud[T]) Variants() []string {
	names := make([]string, len(c.variants))
	for i, v := range c.variants {
		names[i] = v.name
	}
	return names
}

func (c *crud[T]) FilterFields() []form.Field {
	out := make([]form.Field, len(c.filters))
	copy(out, c.filters)
	return out
}

// fieldsFor resolves a variant name; "" means the first variant.
func (c *crud[T]) fieldsFor(name string) (string, []form.Field, error) {
	if name == "" {
		return c.variants[0].name, c.variants[0].fields, nil
	}
	for _, v := range c.variants {
		if v.name == name {
			return v.name, v.fields, nil
		}
	}
	return "", nil, fmt.Errorf("%w: %s has no %q", ErrUnknownVariant, c.name, name)
}

func (c *crud[T]) NewForm(variant string) (*form.Form, error) {
	_, fields, err := c.fieldsFor(variant)
	if err != nil {
		return nil, err
	}
	return form.NewWithFields(c.title, fields...)
}

// EditForm returns a form of the record's current variant pre-filled with
// its values.
func (c *crud[T]) EditForm(ctx context.Context, id string) (string, *form.Form, error) {
	rec := c.svc.GetByID(ctx, id)
	if isNil(rec) {
		return "", nil, usecase.ErrNotFound
	}
	name, values := c.encode(rec)
	name, fields, err := c.fieldsFor(name)
	if err != nil {
		return "", nil, err
	}
	filled := make([]form.Field, len(fields))
	for i, f := range fields {
		filled[i] = f.WithInitial(values[f.Name])
	}
	f, err := form.NewWithFields(c.title, filled...)
	return name, f, err
}

func (c *crud[T]) List(ctx context.Context, criteria filter.Criteria) ([]any, error) {
	recs, err := filter.Apply(c.svc.GetAll(ctx), criteria, c.accessors)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(recs))
	for i, rec := range recs {
		out[i] = c.respond(rec)
	}
	return out, nil
}

func (c *crud[T]) Get(ctx context.Context, id string) (any, bool) {
	rec := c.svc.GetByID(ctx, id)
	if isNil(rec) {
		return nil, false
	}
	return c.respond(rec), true
}

func (c *crud[T]) Create(ctx context.Context, variant string, values map[string]string) (Outcome, error) {
	return c.submit(variant, values, func(rec T) error {
		return c.svc.Add(ctx, rec)
	})
}

// Update saves a record under id. The id is fixed: a submitted id that
// differs is rejected, a blank one is filled in. An empty variant keeps the
// stored one.
func (c *crud[T]) Update(ctx context.Context, id, variant string, values map[string]string) (Outcome, error) {
	if submitted := values["id"]; submitted != "" && submitted != id {
		return Outcome{}, &usecase.ValidationError{
			Field:   "id",
			Message: "id cannot be changed",
			Fields:  map[string]string{"id": "id cannot be changed"},
		}
	}
	if variant == "" {
		current, err := c.svc.Find(ctx, id)
		if err != nil {
			return Outcome{}, err
		}
		if isNil(current) {
			return Outcome{}, usecase.ErrNotFound
		}
		variant, _ = c.encode(current)
	}

	_, fields, err := c.fieldsFor(variant)
	if err != nil {
		return Outcome{}, err
	}
	withID := make(map[string]string, len(values)+1)
	for k, v := range values {
		withID[k] = v
	}
	if hasField(fields, "id") {
		withID["id"] = id
	}

	return c.submit(variant, withID, func(rec T) error {
		c.setID(rec, id)
		return c.svc.Update(ctx, rec)
	})
}

func (c *crud[T]) Delete(ctx context.Context, id string) error {
	return c.svc.Delete(ctx, id)
}

// submit runs one form through its dialog: fill, collect warnings, then
// Submit with a save action that enforces lengths, decodes and persists.
func (c *crud[T]) submit(variant string, values map[string]string, save func(T) error) (Outcome, error) {
	name, fields, err := c.fieldsFor(variant)
	if err != nil {
		return Outcome{}, err
	}
	f, err := form.NewWithFields(c.title, fields...)
	if err != nil {
		return Outcome{}, err
	}
	if err := f.SetAll(values); err != nil {
		return Outcome{}, asValidation(c.name, err)
	}
	warnings := f.Warnings()

	var saved T
	dialog := f.Build(func(result form.Result) error {
		if err := form.Enforce(fields, result); err != nil {
			return err
		}
		dec := result.Decoder()
		rec := c.decode(name, dec)
		if err := dec.Finish(); err != nil {
			return err
		}
		if err := save(rec); err != nil {
			return err
		}
		saved = rec
		return nil
	})
	if err := dialog.Submit(); err != nil {
		return Outcome{Warnings: warnings}, asValidation(c.name, err)
	}
	return Outcome{Record: c.respond(saved), Warnings: warnings}, nil
}

// asValidation turns form-level field errors into the service taxonomy so
// callers handle one error type for bad input.
func asValidation(name string, err error) error {
	var fieldErrs form.FieldErrors
	if errors.As(err, &fieldErrs) {
		return &usecase.ValidationError{Message: "invalid " + name, Fields: fieldErrs}
	}
	return err
}

func hasField(fields []form.Field, name string) bool {
	for _, f := range fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
