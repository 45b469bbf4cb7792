package repository

import (
	"fmt"
	"strings"
)

type filterOp int

const (
	opEq filterOp = iota
	opContains
)

// Filter is one predicate over a stored column. Column names come from
// code, never from request input.
type Filter struct {
	Field string
	Value any
	op    filterOp
}

// Eq matches records whose column equals value.
func Eq(field string, value any) Filter {
	return Filter{Field: field, Value: value, op: opEq}
}

// Contains matches records whose column contains value, case-insensitive.
func Contains(field, value string) Filter {
	return Filter{Field: field, Value: value, op: opContains}
}

type Filters []Filter

// whereClause renders the filters as a WHERE clause with placeholders
// starting at $start. Returns an empty string for an empty filter set.
func (f Filters) whereClause(start int) (string, []any) {
	if len(f) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(f))
	args := make([]any, 0, len(f))
	for i, flt := range f {
		n := start + i
		switch flt.op {
		case opContains:
			parts = append(parts, fmt.Sprintf("%s ILIKE '%%' || $%d || '%%'", flt.Field, n))
		default:
			parts = append(parts, fmt.Sprintf("%s = $%d", flt.Field, n))
		}
		args = append(args, flt.Value)
	}

	return " WHERE " + strings.Join(parts, " AND "), args
}
