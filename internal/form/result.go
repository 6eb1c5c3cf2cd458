package form

// Result is the submitted form: field name to string or bool.
type Result map[string]any

// Decoder turns a Result into a typed value. Every getter marks its key as
// consumed; Finish reports missing, mistyped and unconsumed keys so a
// decode never falls back to a zero value silently.
type Decoder struct {
	result Result
	used   map[string]bool
	errs   FieldErrors
}

func (r Result) Decoder() *Decoder {
	return &Decoder{result: r, used: make(map[string]bool), errs: FieldErrors{}}
}

func (d *Decoder) String(name string) string {
	d.used[name] = true
	raw, ok := d.result[name]
	if !ok {
		d.errs[name] = "missing"
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		d.errs[name] = "expected text"
		return ""
	}
	return s
}

func (d *Decoder) Bool(name string) bool {
	d.used[name] = true
	raw, ok := d.result[name]
	if !ok {
		d.errs[name] = "missing"
		return false
	}
	b, ok := raw.(bool)
	if !ok {
		d.errs[name] = "expected true or false"
		return false
	}
	return b
}

// Fail records a caller-side problem with a field, such as a date that
// does not parse.
func (d *Decoder) Fail(name, message string) {
	if _, seen := d.errs[name]; !seen {
		d.errs[name] = message
	}
}

func (d *Decoder) Finish() error {
	for name := range d.result {
		if !d.used[name] {
			d.errs[name] = "unknown field"
		}
	}
	if len(d.errs) > 0 {
		return d.errs
	}
	return nil
}
