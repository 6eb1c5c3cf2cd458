// Package filter narrows in-memory entity lists by case-insensitive
// substring terms, one term per named field.
package filter

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

var ErrUnknownField = errors.New("unknown filter field")

// Criteria maps a field name to a search term. Empty terms are ignored;
// any other term, whitespace included, is matched exactly as given.
type Criteria map[string]string

// Accessor extracts the filterable text of one field. ok is false when the
// attribute is null for that item.
type Accessor[T any] func(item T) (value string, ok bool)

// Accessors maps field names to their accessor.
type Accessors[T any] map[string]Accessor[T]

type predicate[T any] struct {
	get  Accessor[T]
	term string
}

// Apply returns the items that satisfy every non-empty criterion. Surviving
// items keep their input order. A criterion naming a field with no accessor
// is an error.
func Apply[T any](items []T, criteria Criteria, accessors Accessors[T]) ([]T, error) {
	preds, err := compile(criteria, accessors)
	if err != nil {
		return nil, err
	}
	if len(preds) == 0 {
		return items, nil
	}

	fold := cases.Fold()
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matches(item, preds, fold) {
			out = append(out, item)
		}
	}
	return out, nil
}

func compile[T any](criteria Criteria, accessors Accessors[T]) ([]predicate[T], error) {
	names := make([]string, 0, len(criteria))
	for name := range criteria {
		names = append(names, name)
	}
	sort.Strings(names)

	fold := cases.Fold()
	var unknown []string
	preds := make([]predicate[T], 0, len(names))
	for _, name := range names {
		term := criteria[name]
		if term == "" {
			continue
		}
		get, ok := accessors[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		preds = append(preds, predicate[T]{get: get, term: fold.String(term)})
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, strings.Join(unknown, ", "))
	}
	return preds, nil
}

func matches[T any](item T, preds []predicate[T], fold cases.Caser) bool {
	for _, p := range preds {
		value, ok := p.get(item)
		if !ok {
			return false
		}
		if !strings.Contains(fold.String(value), p.term) {
			return false
		}
	}
	return true
}

// CriteriaFromQuery takes the first value of every query parameter.
func CriteriaFromQuery(query url.Values) Criteria {
	criteria := make(Criteria, len(query))
	for name, values := range query {
		if len(values) == 0 || values[0] == "" {
			continue
		}
		criteria[name] = values[0]
	}
	return criteria
}

// Text adapts a plain string getter to an Accessor that is never null.
func Text[T any](get func(T) string) Accessor[T] {
	return func(item T) (string, bool) {
		return get(item), true
	}
}
