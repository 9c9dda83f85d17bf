// Package query turns list-endpoint URL parameters into a typed database query:
// filter predicates, a projection, a sort order and a pagination window.
//
// Each resource declares a Schema: the allow-list of fields a client may
// filter, sort or select on, together with the kind of value each holds.
// Parameters naming anything outside the schema are rejected instead of being
// passed through to the database.
package query

import (
	"fmt"
	"strings"
)

// Kind is the value type of a field, which decides how request values are
// parsed and which operators apply.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindStringArray
	KindUUID
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindStringArray:
		return "string array"
	case KindUUID:
		return "uuid"
	case KindTime:
		return "time"
	default:
		return "unknown"
	}
}

// Operator is a comparison written in bracket notation, e.g. averageCost[gte]=1000.
type Operator string

const (
	OpEq  Operator = "eq"
	OpGt  Operator = "gt"
	OpGte Operator = "gte"
	OpLt  Operator = "lt"
	OpLte Operator = "lte"
	OpIn  Operator = "in"
)

// allows reports whether op may be applied to a field of kind k.
func (k Kind) allows(op Operator) bool {
	switch op {
	case OpEq, OpIn:
		return k != KindBool || op == OpEq
	case OpGt, OpGte, OpLt, OpLte:
		return k == KindNumber || k == KindTime
	default:
		return false
	}
}

// Capability flags of a field
type Capability uint8

const (
	Filterable Capability = 1 << iota
	Sortable
	Selectable
)

// All grants every capability
const All = Filterable | Sortable | Selectable

// Field is one entry of a resource's allow-list.
type Field struct {
	// Name is the request and JSON name, e.g. "averageCost" or "location.state".
	Name string
	// Column is the SQL column the field maps to.
	Column string
	Kind   Kind
	Can    Capability
}

// Schema is the allow-list for one resource.
type Schema struct {
	fields        map[string]Field
	names         []string
	defaultSort   []Sort
	pageOnRequest bool
}

// NewSchema builds a schema from its fields. defaultSort uses the same syntax
// as the sort parameter, e.g. "-createdAt", and must name sortable fields.
func NewSchema(defaultSort string, fields ...Field) *Schema {
	s := &Schema{fields: make(map[string]Field, len(fields))}
	for _, f := range fields {
		if _, dup := s.fields[f.Name]; dup {
			panic(fmt.Sprintf("query: duplicate field %q", f.Name))
		}
		s.fields[f.Name] = f
		s.names = append(s.names, f.Name)
	}

	sorts, err := s.parseSort(defaultSort)
	if err != nil {
		panic(fmt.Sprintf("query: invalid default sort %q: %v", defaultSort, err))
	}
	s.defaultSort = sorts
	return s
}

// PageOnRequest makes queries against s cover every matching row unless the
// request names page or limit. It returns s.
func (s *Schema) PageOnRequest() *Schema {
	s.pageOnRequest = true
	return s
}

// Field looks up a field by request name
func (s *Schema) Field(name string) (Field, bool) {
	f, ok := s.fields[name]
	return f, ok
}

// Names returns the field names in declaration order
func (s *Schema) Names() []string {
	return append([]string(nil), s.names...)
}

// Sort is one ORDER BY term.
type Sort struct {
	Field Field
	Desc  bool
}

// String renders the term as SQL, e.g. "average_cost DESC".
func (s Sort) String() string {
	if s.Desc {
		return s.Field.Column + " DESC"
	}
	return s.Field.Column + " ASC"
}

func (s *Schema) parseSort(raw string) ([]Sort, error) {
	var sorts []Sort
	seen := make(map[string]bool)
	for _, part := range splitList(raw) {
		desc := strings.HasPrefix(part, "-")
		name := strings.TrimLeft(part, "-+")
		f, ok := s.fields[name]
		if !ok || f.Can&Sortable == 0 {
			return nil, fmt.Errorf("cannot sort by %q", name)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		sorts = append(sorts, Sort{Field: f, Desc: desc})
	}
	return sorts, nil
}

// splitList splits a comma-separated parameter, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
