package domain

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// DateLayout is the only accepted textual date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Pair is one column/value pair. Column is a trusted identifier; Value is
// always bound as a query parameter.
type Pair struct {
	Column string
	Value  any
}

// P is shorthand for constructing a Pair.
func P(column string, value any) Pair {
	return Pair{Column: column, Value: value}
}

// Pairs is a non-empty ordered list of column/value pairs. It is used both
// for SET/VALUES lists and for equality predicates ANDed together.
// The zero value is empty and is rejected by the data access layer.
type Pairs struct {
	items []Pair
}

// NewPairs builds a Pairs list; at least one pair is required by signature.
func NewPairs(first Pair, rest ...Pair) Pairs {
	items := make([]Pair, 0, 1+len(rest))
	items = append(items, first)
	items = append(items, rest...)
	return Pairs{items: items}
}

// Zip pairs columns with values positionally. The lists must be non-empty
// and of equal length.
func Zip(columns []string, values []any) (Pairs, error) {
	if len(columns) == 0 {
		return Pairs{}, errors.New("at least one column is required")
	}
	if len(columns) != len(values) {
		return Pairs{}, fmt.Errorf("column count %d does not match value count %d", len(columns), len(values))
	}
	items := make([]Pair, len(columns))
	for i := range columns {
		items[i] = Pair{Column: columns[i], Value: values[i]}
	}
	return Pairs{items: items}, nil
}

// Len returns the number of pairs.
func (p Pairs) Len() int { return len(p.items) }

// IsEmpty reports whether p holds no pairs (only possible for the zero value).
func (p Pairs) IsEmpty() bool { return len(p.items) == 0 }

// Items returns a copy of the pairs in order.
func (p Pairs) Items() []Pair {
	out := make([]Pair, len(p.items))
	copy(out, p.items)
	return out
}

// Columns returns the column names in order.
func (p Pairs) Columns() []string {
	cols := make([]string, len(p.items))
	for i, it := range p.items {
		cols[i] = it.Column
	}
	return cols
}

// Values returns the values in order.
func (p Pairs) Values() []any {
	vals := make([]any, len(p.items))
	for i, it := range p.items {
		vals[i] = it.Value
	}
	return vals
}

// Lookup returns the value bound to column, if present.
func (p Pairs) Lookup(column string) (any, bool) {
	for _, it := range p.items {
		if it.Column == column {
			return it.Value, true
		}
	}
	return nil, false
}

// Row is one result tuple, positional in SELECT column order.
type Row []any

// String returns column i as text. Dates come back as YYYY-MM-DD whether
// the driver hands them over as text or as time.Time.
func (r Row) String(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	switch v := r[i].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case time.Time:
		return v.Format(DateLayout)
	case int64:
		return strconv.FormatInt(v, 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}

// Int returns column i as an int.
func (r Row) Int(i int) (int, error) {
	if i < 0 || i >= len(r) {
		return 0, fmt.Errorf("column %d out of range (row has %d columns)", i, len(r))
	}
	switch v := r[i].(type) {
	case int64:
		return int(v), nil
	case int32:
		return int(v), nil
	case int:
		return v, nil
	case float64:
		return int(v), nil
	case string:
		return strconv.Atoi(v)
	case []byte:
		return strconv.Atoi(string(v))
	default:
		return 0, fmt.Errorf("column %d: cannot convert %T to int", i, r[i])
	}
}

// Role identifies a user role. Role values mirror roles.role_id.
type Role int

const (
	RoleAdmin Role = 1
	RoleUser  Role = 2
)

// ParseRole converts a role identifier such as "2" into a Role.
func ParseRole(s string) (Role, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, NewValidationError(fmt.Sprintf("Invalid role id: %s", s))
	}
	return Role(n), nil
}

// IsAdmin reports whether r is the administrator role.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

func (r Role) String() string { return strconv.Itoa(int(r)) }
