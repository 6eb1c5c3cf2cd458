package repository

import "testing"

func TestStatementBuilders(t *testing.T) {
	var e encoded
	e.add("id", "X1")
	e.add("name", "n")
	e.add("kind", "k")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"insert", insertSQL("things", e), "INSERT INTO things (id, name, kind) VALUES ($1, $2, $3)"},
		{"update writes all", updateSQL("things", e, []string{"kind"}), "UPDATE things SET name = $2, kind = $3 WHERE id = $1"},
		{"update nulls missing", updateSQL("things", e, []string{"kind", "extra"}), "UPDATE things SET name = $2, kind = $3, extra = NULL WHERE id = $1"},
		{"select", selectSQL("things", []string{"id", "name"}), "SELECT id, name FROM things"},
		{"delete", deleteSQL("things", "id"), "DELETE FROM things WHERE id = $1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestPlaceholders(t *testing.T) {
	if got := placeholders(1); got != "$1" {
		t.Errorf("placeholders(1) = %q", got)
	}
	if got := placeholders(0); got != "" {
		t.Errorf("placeholders(0) = %q", got)
	}
}
