package query

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/yigit/devcamper/internal/pkg/apperrors"
)

// Reserved parameter names; they never become filters.
const (
	ParamSelect = "select"
	ParamSort   = "sort"
	ParamPage   = "page"
	ParamLimit  = "limit"
)

const (
	DefaultPage  = 1
	DefaultLimit = 1
	// MaxLimit caps the page size a client may ask for.
	MaxLimit = 100
	// MaxPage caps the page number so the window always fits in an int64
	// offset. Anything larger is past the end of any real collection.
	MaxPage = 1<<31 - 1
)

var reserved = map[string]bool{
	ParamSelect: true,
	ParamSort:   true,
	ParamPage:   true,
	ParamLimit:  true,
}

// keyPattern matches "field" and "field[op]".
var keyPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_.]*)(?:\[([a-z]+)\])?$`)

// Query is the parsed form of a list request.
type Query struct {
	// Filter is the conjunction of every filter parameter; empty means no WHERE clause.
	Filter squirrel.And
	// Fields is the projection; nil selects every field.
	Fields []string
	Sort   []Sort
	Page   int
	Limit  int
	// Paged is false when the schema only paginates on request and the request
	// named neither page nor limit; the query then covers every matching row.
	Paged bool
}

// Offset is the index of the first row of the page.
func (q *Query) Offset() uint64 {
	if !q.Paged {
		return 0
	}
	return uint64(q.Page-1) * uint64(q.Limit)
}

// End is the exclusive index one past the last row of the page, or -1 when
// the query is not paged.
func (q *Query) End() int64 {
	if !q.Paged {
		return -1
	}
	return int64(q.Page) * int64(q.Limit)
}

// Selects reports whether field is part of the projection.
func (q *Query) Selects(field string) bool {
	if q.Fields == nil {
		return true
	}
	for _, f := range q.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// OrderBy renders the sort terms for squirrel's OrderBy.
func (q *Query) OrderBy() []string {
	out := make([]string, 0, len(q.Sort))
	for _, s := range q.Sort {
		out = append(out, s.String())
	}
	return out
}

// Apply adds the filter, order and pagination window to a select statement.
func (q *Query) Apply(sb squirrel.SelectBuilder) squirrel.SelectBuilder {
	if len(q.Filter) > 0 {
		sb = sb.Where(q.Filter)
	}
	sb = sb.OrderBy(q.OrderBy()...)
	if !q.Paged {
		return sb
	}
	return sb.Offset(q.Offset()).Limit(uint64(q.Limit))
}

// Parse builds a Query from request parameters against the schema's allow-list.
func Parse(schema *Schema, params url.Values) (*Query, error) {
	q := &Query{
		Page:  parseBounded(params.Get(ParamPage), DefaultPage, MaxPage),
		Limit: parseBounded(params.Get(ParamLimit), DefaultLimit, MaxLimit),
		Sort:  schema.defaultSort,
		Paged: !schema.pageOnRequest || params.Has(ParamPage) || params.Has(ParamLimit),
	}

	if raw := params.Get(ParamSelect); raw != "" {
		fields, err := parseSelect(schema, raw)
		if err != nil {
			return nil, err
		}
		q.Fields = fields
	}

	if raw := params.Get(ParamSort); raw != "" {
		sorts, err := schema.parseSort(raw)
		if err != nil {
			return nil, invalidParam(ParamSort, err.Error())
		}
		if len(sorts) > 0 {
			q.Sort = sorts
		}
	}

	// Sorted keys keep the generated SQL stable across requests.
	keys := make([]string, 0, len(params))
	for k := range params {
		if !reserved[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		for _, raw := range params[key] {
			pred, err := buildPredicate(schema, key, raw)
			if err != nil {
				return nil, err
			}
			q.Filter = append(q.Filter, pred)
		}
	}

	return q, nil
}

// parseBounded parses a page or limit value. Anything unparsable or below 1
// falls back to def; anything above ceiling, including values too large for
// an int64, becomes ceiling.
func parseBounded(raw string, def, ceiling int) int {
	raw = strings.TrimSpace(raw)
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-") {
			return ceiling
		}
		return def
	}
	if n < 1 {
		return def
	}
	if n > int64(ceiling) {
		return ceiling
	}
	return int(n)
}

func parseSelect(schema *Schema, raw string) ([]string, error) {
	fields := []string{}
	seen := make(map[string]bool)
	for _, name := range splitList(raw) {
		if name == "id" || seen[name] {
			continue
		}
		f, ok := schema.Field(name)
		if !ok || f.Can&Selectable == 0 {
			return nil, invalidParam(ParamSelect, fmt.Sprintf("cannot select %q", name))
		}
		seen[name] = true
		fields = append(fields, name)
	}
	return fields, nil
}

func buildPredicate(schema *Schema, key, raw string) (squirrel.Sqlizer, error) {
	m := keyPattern.FindStringSubmatch(key)
	if m == nil {
		return nil, invalidParam(key, "malformed parameter name")
	}
	name, op := m[1], Operator(m[2])
	if op == "" {
		op = OpEq
	}

	f, ok := schema.Field(name)
	if !ok || f.Can&Filterable == 0 {
		return nil, invalidParam(key, fmt.Sprintf("cannot filter by %q", name))
	}
	if !f.Kind.allows(op) {
		return nil, invalidParam(key, fmt.Sprintf("operator %q does not apply to %s field %q", op, f.Kind, name))
	}

	if op == OpIn {
		values := splitList(raw)
		if len(values) == 0 {
			return nil, invalidParam(key, "empty list")
		}
		return inPredicate(f, key, values)
	}

	v, err := parseValue(f, key, raw)
	if err != nil {
		return nil, err
	}

	switch op {
	case OpGt:
		return squirrel.Gt{f.Column: v}, nil
	case OpGte:
		return squirrel.GtOrEq{f.Column: v}, nil
	case OpLt:
		return squirrel.Lt{f.Column: v}, nil
	case OpLte:
		return squirrel.LtOrEq{f.Column: v}, nil
	}

	if f.Kind == KindStringArray {
		return squirrel.Expr("? = ANY("+f.Column+")", v), nil
	}
	return squirrel.Eq{f.Column: v}, nil
}

func inPredicate(f Field, key string, values []string) (squirrel.Sqlizer, error) {
	if f.Kind == KindStringArray {
		return squirrel.Expr(f.Column+" && ?", values), nil
	}

	parsed := make([]interface{}, 0, len(values))
	for _, raw := range values {
		v, err := parseValue(f, key, raw)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, v)
	}
	return squirrel.Eq{f.Column: parsed}, nil
}

func parseValue(f Field, key, raw string) (interface{}, error) {
	raw = strings.TrimSpace(raw)
	switch f.Kind {
	case KindNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, invalidParam(key, fmt.Sprintf("%q is not a number", raw))
		}
		return n, nil
	case KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, invalidParam(key, fmt.Sprintf("%q is not a boolean", raw))
		}
		return b, nil
	case KindUUID:
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, &apperrors.MalformedIDError{Value: raw}
		}
		// squirrel expands array values into IN lists, so uuids travel as text.
		return id.String(), nil
	case KindTime:
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t, nil
		}
		t, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return nil, invalidParam(key, fmt.Sprintf("%q is not a date", raw))
		}
		return t, nil
	default:
		return raw, nil
	}
}

func invalidParam(key, reason string) error {
	return apperrors.New(
		apperrors.ErrInvalidQueryParams,
		fmt.Sprintf("Invalid query parameter %s: %s", key, reason),
		http.StatusBadRequest,
	)
}
