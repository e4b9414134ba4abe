package db

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestParseQuery_Defaults(t *testing.T) {
	t.Parallel()

	q := ParseUserQuery(url.Values{})
	assert.Equal(t, 1, q.Current)
	assert.Equal(t, defaultPageSize, q.PageSize)
	assert.Empty(t, q.Conditions)
	assert.Empty(t, q.Sort)
	assert.Equal(t, int64(0), q.Offset())
}

func TestParseQuery_Pagination(t *testing.T) {
	t.Parallel()

	q := ParseUserQuery(url.Values{"current": {"3"}, "pageSize": {"20"}})
	assert.Equal(t, 3, q.Current)
	assert.Equal(t, 20, q.PageSize)
	assert.Equal(t, int64(40), q.Offset())

	// Nonsense and oversized values fall back to sane bounds.
	q = ParseUserQuery(url.Values{"current": {"-1"}, "pageSize": {"5000"}})
	assert.Equal(t, 1, q.Current)
	assert.Equal(t, maxPageSize, q.PageSize)

	q = ParseUserQuery(url.Values{"current": {"abc"}})
	assert.Equal(t, 1, q.Current)
}

func TestParseQuery_AllowListOnly(t *testing.T) {
	t.Parallel()

	values := url.Values{
		"name":         {"alice"},
		"role":         {"hr"},
		"password":     {"x"},         // not a filterable field
		"refreshToken": {"stolen"},    // not a filterable field
		"$where":       {"sleep(1)"},  // operator injection attempt
		"isDeleted":    {"true"},      // soft-delete guard is not overridable
	}

	q := ParseUserQuery(values)
	require.Len(t, q.Conditions, 2)
	assert.Equal(t, Condition{Field: "name", Op: OpMatch, Value: "alice"}, q.Conditions[0])
	assert.Equal(t, Condition{Field: "role", Op: OpEq, Value: "hr"}, q.Conditions[1])
}

func TestParseQuery_Coercion(t *testing.T) {
	t.Parallel()

	q := ParseJobQuery(url.Values{
		"minSalary": {"1000"},
		"maxSalary": {"not-a-number"},
		"isActive":  {"true"},
	})

	require.Len(t, q.Conditions, 2)
	assert.Equal(t, Condition{Field: "salary", Op: OpGte, Value: 1000}, q.Conditions[0])
	assert.Equal(t, Condition{Field: "isActive", Op: OpEq, Value: true}, q.Conditions[1])
}

func TestParseQuery_SortAllowList(t *testing.T) {
	t.Parallel()

	q := ParseJobQuery(url.Values{"sort": {"-salary"}})
	assert.Equal(t, "-salary", q.Sort)

	// Unknown sort fields are dropped.
	q = ParseJobQuery(url.Values{"sort": {"refreshToken"}})
	assert.Empty(t, q.Sort)
}

func TestBuildFilter(t *testing.T) {
	t.Parallel()

	q := Query{Conditions: []Condition{
		{Field: "name", Op: OpMatch, Value: "a.b*c"},
		{Field: "salary", Op: OpGte, Value: 1000},
		{Field: "role", Op: OpEq, Value: "hr"},
	}}

	filter := buildFilter(q)
	require.Len(t, filter, 4)

	// Always anchored on the soft-delete guard.
	assert.Equal(t, bson.E{Key: "isDeleted", Value: bson.D{{Key: "$ne", Value: true}}}, filter[0])

	// Substring match is a case-insensitive regex with metacharacters
	// escaped.
	assert.Equal(t, bson.E{Key: "name", Value: bson.D{
		{Key: "$regex", Value: `a\.b\*c`},
		{Key: "$options", Value: "i"},
	}}, filter[1])

	assert.Equal(t, bson.E{Key: "salary", Value: bson.D{{Key: "$gte", Value: 1000}}}, filter[2])
	assert.Equal(t, bson.E{Key: "role", Value: "hr"}, filter[3])
}

func TestBuildSort(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, buildSort(Query{}))
	assert.Equal(t, bson.D{{Key: "salary", Value: -1}}, buildSort(Query{Sort: "-salary"}))
	assert.Equal(t, bson.D{{Key: "name", Value: 1}}, buildSort(Query{Sort: "name"}))
}
