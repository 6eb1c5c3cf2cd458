package form

// Kind is the value type a field is coerced to on submit. Numbers and dates
// are carried as text and parsed by whoever decodes the result.
type Kind string

const (
	KindText Kind = "text"
	KindBool Kind = "bool"
)

// Field describes one editable or filterable attribute of an entity.
type Field struct {
	Label     string `json:"label"`
	Name      string `json:"name"`
	Kind      Kind   `json:"kind"`
	MaxLength int    `json:"max_length,omitempty"`
	Initial   string `json:"initial,omitempty"`
	Required  bool   `json:"required,omitempty"`
}

// Text returns a text field. A maxLength of zero leaves the field unconstrained.
func Text(label, name string, maxLength int) Field {
	return Field{Label: label, Name: name, Kind: KindText, MaxLength: maxLength}
}

// Bool returns a boolean field.
func Bool(label, name string) Field {
	return Field{Label: label, Name: name, Kind: KindBool}
}

// Mandatory marks the field as required at save time.
func (f Field) Mandatory() Field {
	f.Required = true
	return f
}

// WithInitial returns a copy of the field pre-filled with value.
func (f Field) WithInitial(value string) Field {
	f.Initial = value
	return f
}
