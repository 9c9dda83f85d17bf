package query_test

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/devcamper/internal/pkg/apperrors"
	"github.com/yigit/devcamper/internal/pkg/query"
)

var schema = query.NewSchema("-createdAt",
	query.Field{Name: "name", Column: "name", Kind: query.KindString, Can: query.All},
	query.Field{Name: "averageCost", Column: "average_cost", Kind: query.KindNumber, Can: query.All},
	query.Field{Name: "housing", Column: "housing", Kind: query.KindBool, Can: query.All},
	query.Field{Name: "careers", Column: "careers", Kind: query.KindStringArray, Can: query.All},
	query.Field{Name: "bootcamp", Column: "bootcamp_id", Kind: query.KindUUID, Can: query.Filterable},
	query.Field{Name: "createdAt", Column: "created_at", Kind: query.KindTime, Can: query.All},
	query.Field{Name: "location.city", Column: "city", Kind: query.KindString, Can: query.Filterable | query.Sortable},
	query.Field{Name: "courses", Kind: query.KindString, Can: query.Selectable},
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func parse(t *testing.T, raw string) *query.Query {
	t.Helper()
	params, err := url.ParseQuery(raw)
	require.NoError(t, err)
	q, err := query.Parse(schema, params)
	require.NoError(t, err)
	return q
}

func parseErr(t *testing.T, raw string) error {
	t.Helper()
	params, err := url.ParseQuery(raw)
	require.NoError(t, err)
	_, err = query.Parse(schema, params)
	require.Error(t, err)
	return err
}

func toSQL(t *testing.T, q *query.Query) (string, []interface{}) {
	t.Helper()
	sql, args, err := q.Apply(psql.Select("*").From("bootcamps")).ToSql()
	require.NoError(t, err)
	return sql, args
}

func TestParseDefaults(t *testing.T) {
	assert := assert.New(t)

	q := parse(t, "")
	assert.Equal(1, q.Page)
	assert.Equal(1, q.Limit)
	assert.Nil(q.Fields)
	assert.Empty(q.Filter)
	assert.Equal([]string{"created_at DESC"}, q.OrderBy())
	assert.True(q.Selects("courses"))

	sql, args := toSQL(t, q)
	assert.Equal("SELECT * FROM bootcamps ORDER BY created_at DESC LIMIT 1 OFFSET 0", sql)
	assert.Empty(args)
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		page   int
		limit  int
		offset uint64
		end    int64
	}{
		{"explicit", "page=3&limit=10", 3, 10, 20, 30},
		{"zero page", "page=0&limit=5", 1, 5, 0, 5},
		{"negative limit", "page=2&limit=-4", 2, 1, 1, 2},
		{"not a number", "page=abc&limit=x", 1, 1, 0, 1},
		{"limit capped", "limit=5000", 1, query.MaxLimit, 0, query.MaxLimit},
		{"limit beyond int64", "limit=99999999999999999999", 1, query.MaxLimit, 0, query.MaxLimit},
		{"negative beyond int64", "page=-99999999999999999999", 1, 1, 0, 1},
		{
			"page capped", "page=4611686018427387905&limit=4",
			query.MaxPage, 4, (query.MaxPage - 1) * 4, query.MaxPage * 4,
		},
		{
			"page beyond int64", "page=99999999999999999999&limit=100",
			query.MaxPage, 100, (query.MaxPage - 1) * 100, query.MaxPage * 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			q := parse(t, tt.raw)
			assert.Equal(tt.page, q.Page)
			assert.Equal(tt.limit, q.Limit)
			assert.Equal(tt.offset, q.Offset())
			assert.Equal(tt.end, q.End())
			assert.Equal(uint64(tt.end), q.Offset()+uint64(q.Limit), "windows are contiguous")
		})
	}
}

func TestParseLargePageSQL(t *testing.T) {
	q := parse(t, "page=4611686018427387905&limit=4")

	sql, _ := toSQL(t, q)
	assert.Equal(t, "SELECT * FROM bootcamps ORDER BY created_at DESC LIMIT 4 OFFSET 8589934584", sql)
}

func TestPageOnRequest(t *testing.T) {
	courses := query.NewSchema("-createdAt",
		query.Field{Name: "title", Column: "title", Kind: query.KindString, Can: query.All},
		query.Field{Name: "createdAt", Column: "created_at", Kind: query.KindTime, Can: query.All},
	).PageOnRequest()

	t.Run("unpaged without page or limit", func(t *testing.T) {
		assert := assert.New(t)

		q, err := query.Parse(courses, url.Values{"sort": {"title"}})
		require.NoError(t, err)
		assert.False(q.Paged)
		assert.Equal(uint64(0), q.Offset())
		assert.Equal(int64(-1), q.End())

		sql, _, err := q.Apply(squirrel.Select("*").From("courses")).ToSql()
		require.NoError(t, err)
		assert.Equal("SELECT * FROM courses ORDER BY title ASC", sql)
	})

	t.Run("limit alone pages from the first row", func(t *testing.T) {
		q, err := query.Parse(courses, url.Values{"limit": {"2"}})
		require.NoError(t, err)
		assert.True(t, q.Paged)
		assert.Equal(t, 1, q.Page)

		sql, _, err := q.Apply(squirrel.Select("*").From("courses")).ToSql()
		require.NoError(t, err)
		assert.Equal(t, "SELECT * FROM courses ORDER BY created_at DESC LIMIT 2 OFFSET 0", sql)
	})

	t.Run("page alone keeps the default limit", func(t *testing.T) {
		q, err := query.Parse(courses, url.Values{"page": {"3"}})
		require.NoError(t, err)
		assert.True(t, q.Paged)
		assert.Equal(t, uint64(2), q.Offset())
	})
}

func TestParseSelect(t *testing.T) {
	t.Run("id is implied", func(t *testing.T) {
		assert := assert.New(t)

		q := parse(t, "select=id,name,name,averageCost")
		assert.Equal([]string{"name", "averageCost"}, q.Fields)
		assert.True(q.Selects("name"))
		assert.False(q.Selects("courses"))
	})

	t.Run("unknown field", func(t *testing.T) {
		err := parseErr(t, "select=name,password")

		var appErr *apperrors.ErrorResponse
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
		assert.ErrorIs(t, err, apperrors.ErrInvalidQueryParams)
	})

	t.Run("not selectable", func(t *testing.T) {
		parseErr(t, "select=location.city")
	})
}

func TestParseSort(t *testing.T) {
	assert := assert.New(t)

	q := parse(t, "sort=name,-averageCost,name")
	assert.Equal([]string{"name ASC", "average_cost DESC"}, q.OrderBy())

	q = parse(t, "sort=,")
	assert.Equal([]string{"created_at DESC"}, q.OrderBy())

	parseErr(t, "sort=bootcamp")
	parseErr(t, "sort=secret")
}

func TestParseFilter(t *testing.T) {
	t.Run("comparison operators", func(t *testing.T) {
		assert := assert.New(t)

		q := parse(t, "averageCost[gte]=1000&averageCost[lt]=20000&location.city=Boston")
		sql, args := toSQL(t, q)
		assert.Equal("SELECT * FROM bootcamps WHERE (average_cost >= $1 AND average_cost < $2 AND city = $3) ORDER BY created_at DESC LIMIT 1 OFFSET 0", sql)
		assert.Equal([]interface{}{1000.0, 20000.0, "Boston"}, args)
	})

	t.Run("array membership", func(t *testing.T) {
		assert := assert.New(t)

		q := parse(t, "careers=Business")
		sql, args := toSQL(t, q)
		assert.Contains(sql, "WHERE ($1 = ANY(careers))")
		assert.Equal([]interface{}{"Business"}, args)
	})

	t.Run("array overlap", func(t *testing.T) {
		assert := assert.New(t)

		q := parse(t, "careers[in]=Web Development,UI/UX")
		sql, args := toSQL(t, q)
		assert.Contains(sql, "WHERE (careers && $1)")
		assert.Equal([]interface{}{[]string{"Web Development", "UI/UX"}}, args)
	})

	t.Run("in list", func(t *testing.T) {
		assert := assert.New(t)

		q := parse(t, "averageCost[in]=1,2")
		sql, args := toSQL(t, q)
		assert.Contains(sql, "WHERE (average_cost IN ($1,$2))")
		assert.Equal([]interface{}{1.0, 2.0}, args)
	})

	t.Run("boolean", func(t *testing.T) {
		q := parse(t, "housing=true")
		_, args := toSQL(t, q)
		assert.Equal(t, []interface{}{true}, args)
	})

	t.Run("uuid travels as text", func(t *testing.T) {
		q := parse(t, "bootcamp=5d713995-b721-4c3b-b38c-1f5d0d3e1a01")
		_, args := toSQL(t, q)
		assert.Equal(t, []interface{}{"5d713995-b721-4c3b-b38c-1f5d0d3e1a01"}, args)
	})

	t.Run("date", func(t *testing.T) {
		q := parse(t, "createdAt[gt]=2024-01-02")
		require.Len(t, q.Filter, 1)
	})
}

func TestParseFilterRejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"unknown field", "password=x"},
		{"select-only field", "courses=x"},
		{"unknown operator", "averageCost[ne]=1"},
		{"range on string", "name[gt]=a"},
		{"in on bool", "housing[in]=true"},
		{"bad number", "averageCost=cheap"},
		{"bad bool", "housing=maybe"},
		{"bad date", "createdAt[gt]=yesterday"},
		{"empty list", "averageCost[in]=,"},
		{"malformed key", "name[gt=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseErr(t, tt.raw)

			var appErr *apperrors.ErrorResponse
			require.True(t, errors.As(err, &appErr), "got %T", err)
			assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
		})
	}
}

func TestParseMalformedUUID(t *testing.T) {
	err := parseErr(t, "bootcamp=not-a-uuid")

	var malformed *apperrors.MalformedIDError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "not-a-uuid", malformed.Value)
}

func TestSchema(t *testing.T) {
	assert := assert.New(t)

	f, ok := schema.Field("averageCost")
	assert.True(ok)
	assert.Equal("average_cost", f.Column)

	_, ok = schema.Field("nope")
	assert.False(ok)

	assert.Equal("name", schema.Names()[0])

	assert.Panics(func() {
		query.NewSchema("missing", query.Field{Name: "name", Column: "name", Can: query.All})
	})
	assert.Panics(func() {
		query.NewSchema("",
			query.Field{Name: "name", Column: "name"},
			query.Field{Name: "name", Column: "name"},
		)
	})
}
