package screen

import (
	"strconv"
	"strings"
	"time"

	"clinic-records/internal/converter"
	"clinic-records/internal/form"

	"github.com/shopspring/decimal"
)

// Numbers, dates and money travel as text fields. These read one and record
// a field error on the decoder when it does not parse. Blank means zero;
// required fields are rejected earlier by form.Enforce.

func dateField(d *form.Decoder, name string) time.Time {
	raw := strings.TrimSpace(d.String(name))
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(converter.DateLayout, raw)
	if err != nil {
		d.Fail(name, "must be a date in YYYY-MM-DD form")
		return time.Time{}
	}
	return t
}

func intField(d *form.Decoder, name string) int {
	raw := strings.TrimSpace(d.String(name))
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		d.Fail(name, "must be a whole number")
		return 0
	}
	return n
}

func decimalField(d *form.Decoder, name string) decimal.Decimal {
	raw := strings.TrimSpace(d.String(name))
	if raw == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		d.Fail(name, "must be a number")
		return decimal.Zero
	}
	return v
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(converter.DateLayout)
}

func textField(d *form.Decoder, name string) string {
	return strings.TrimSpace(d.String(name))
}
