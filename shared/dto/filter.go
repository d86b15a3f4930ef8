package dto

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

const (
	FilterOperatorEq    = "eq"
	FilterOperatorLike  = "like"
	FilterOperatorIn    = "in"
	FilterOperatorExact = "exact"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

// Record exposes the filterable fields of a static record by name.
type Record interface {
	Lookup(field string) (any, bool)
}

type Filter struct {
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq like in exact"`
}

// Match reports whether the record satisfies the filter. String comparisons ignore case except
// for exact, and a []string field matches when any of its elements does.
func (f *Filter) Match(record Record) bool {
	value, ok := record.Lookup(f.Field)
	if !ok {
		return false
	}

	candidates := toStrings(value)

	switch f.Operator {
	case FilterOperatorEq:
		want := fmt.Sprint(f.Value)

		return slices.ContainsFunc(candidates, func(c string) bool { return strings.EqualFold(c, want) })
	case FilterOperatorExact:
		return slices.Contains(candidates, fmt.Sprint(f.Value))
	case FilterOperatorLike:
		needle := strings.ToLower(fmt.Sprint(f.Value))

		return slices.ContainsFunc(candidates, func(c string) bool { return strings.Contains(strings.ToLower(c), needle) })
	case FilterOperatorIn:
		for _, want := range toStrings(f.Value) {
			if slices.ContainsFunc(candidates, func(c string) bool { return strings.EqualFold(c, want) }) {
				return true
			}
		}

		return false
	default:
		return false
	}
}

type FilterGroup struct {
	Filters  []any
	Operator string
}

// Match evaluates the group against the record. An empty group matches everything;
// the operator defaults to AND.
func (f *FilterGroup) Match(record Record) bool {
	if len(f.Filters) == 0 {
		return true
	}

	anyMatched := false

	for _, filter := range f.Filters {
		var matched bool

		switch fill := filter.(type) {
		case Filter:
			matched = fill.Match(record)
		case FilterGroup:
			matched = fill.Match(record)
		default:
			continue
		}

		if f.Operator == FilterGroupOperatorOr {
			if matched {
				return true
			}

			continue
		}

		if !matched {
			return false
		}

		anyMatched = true
	}

	return anyMatched
}

// IsEmpty reports whether the group has no filters at all.
func (f *FilterGroup) IsEmpty() bool {
	return len(f.Filters) == 0
}

func toStrings(value any) []string {
	val := reflect.ValueOf(value)

	switch val.Kind() {
	case reflect.Array, reflect.Slice:
		out := make([]string, val.Len())

		for idx := range val.Len() {
			out[idx] = fmt.Sprint(val.Index(idx).Interface())
		}

		return out
	case reflect.Invalid:
		return nil
	default:
		return []string{fmt.Sprint(value)}
	}
}
