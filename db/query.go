package db

import (
	"net/url"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Op is a filter operator. Each allow-listed field is bound to exactly one
// operator, so callers cannot inject arbitrary query shapes.
type Op string

const (
	OpEq    Op = "eq"
	OpMatch Op = "match" // case-insensitive substring
	OpGte   Op = "gte"
	OpLte   Op = "lte"
)

// Kind tells the parser how to coerce the raw query-string value.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindBool
)

// Rule binds a query-string parameter to a document field, an operator and
// a value kind. The per-resource rule sets below are the complete filter
// surface; anything else in the query string is ignored.
type Rule struct {
	Param string
	Field string
	Op    Op
	Kind  Kind
}

// Condition is one parsed filter term.
type Condition struct {
	Field string
	Op    Op
	Value any
}

// Query is a parsed, validated listing request.
type Query struct {
	Conditions []Condition
	Sort       string // document field, "-" prefix for descending
	Current    int
	PageSize   int
}

func (q Query) Offset() int64 {
	return int64(q.Current-1) * int64(q.PageSize)
}

func (q Query) Limit() int64 {
	return int64(q.PageSize)
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

var userRules = []Rule{
	{Param: "name", Field: "name", Op: OpMatch, Kind: KindString},
	{Param: "email", Field: "email", Op: OpEq, Kind: KindString},
	{Param: "role", Field: "role", Op: OpEq, Kind: KindString},
	{Param: "company", Field: "company._id", Op: OpEq, Kind: KindString},
}

var companyRules = []Rule{
	{Param: "name", Field: "name", Op: OpMatch, Kind: KindString},
	{Param: "address", Field: "address", Op: OpMatch, Kind: KindString},
}

var jobRules = []Rule{
	{Param: "name", Field: "name", Op: OpMatch, Kind: KindString},
	{Param: "location", Field: "location", Op: OpMatch, Kind: KindString},
	{Param: "level", Field: "level", Op: OpEq, Kind: KindString},
	{Param: "company", Field: "company._id", Op: OpEq, Kind: KindString},
	{Param: "minSalary", Field: "salary", Op: OpGte, Kind: KindInt},
	{Param: "maxSalary", Field: "salary", Op: OpLte, Kind: KindInt},
	{Param: "isActive", Field: "isActive", Op: OpEq, Kind: KindBool},
	{Param: "skills", Field: "skills", Op: OpEq, Kind: KindString},
}

var userSortable = []string{"name", "email", "createdAt", "updatedAt"}
var companySortable = []string{"name", "createdAt", "updatedAt"}
var jobSortable = []string{"name", "salary", "startDate", "endDate", "createdAt", "updatedAt"}

// ParseUserQuery builds a Query from raw query-string values using the user
// allow-list.
func ParseUserQuery(values url.Values) Query {
	return parseQuery(values, userRules, userSortable)
}

func ParseCompanyQuery(values url.Values) Query {
	return parseQuery(values, companyRules, companySortable)
}

func ParseJobQuery(values url.Values) Query {
	return parseQuery(values, jobRules, jobSortable)
}

func parseQuery(values url.Values, rules []Rule, sortable []string) Query {
	q := Query{Current: 1, PageSize: defaultPageSize}

	if n, err := strconv.Atoi(values.Get("current")); err == nil && n > 0 {
		q.Current = n
	}
	if n, err := strconv.Atoi(values.Get("pageSize")); err == nil && n > 0 {
		q.PageSize = min(n, maxPageSize)
	}

	for _, r := range rules {
		raw := values.Get(r.Param)
		if raw == "" {
			continue
		}
		value, ok := coerce(raw, r.Kind)
		if !ok {
			continue
		}
		q.Conditions = append(q.Conditions, Condition{Field: r.Field, Op: r.Op, Value: value})
	}

	if sort := values.Get("sort"); sort != "" {
		field := strings.TrimPrefix(sort, "-")
		for _, s := range sortable {
			if s == field {
				q.Sort = sort
				break
			}
		}
	}

	return q
}

func coerce(raw string, kind Kind) (any, bool) {
	switch kind {
	case KindInt:
		n, err := strconv.Atoi(raw)
		return n, err == nil
	case KindBool:
		b, err := strconv.ParseBool(raw)
		return b, err == nil
	default:
		return raw, true
	}
}

// notDeleted excludes soft-deleted documents; every read predicate starts
// from it.
func notDeleted() bson.D {
	return bson.D{{Key: "isDeleted", Value: bson.D{{Key: "$ne", Value: true}}}}
}

// buildFilter translates parsed conditions into a bson filter, always
// anchored on the soft-delete guard.
func buildFilter(q Query) bson.D {
	filter := notDeleted()
	for _, c := range q.Conditions {
		switch c.Op {
		case OpMatch:
			filter = append(filter, bson.E{Key: c.Field, Value: bson.D{
				{Key: "$regex", Value: regexQuote(c.Value.(string))},
				{Key: "$options", Value: "i"},
			}})
		case OpGte:
			filter = append(filter, bson.E{Key: c.Field, Value: bson.D{{Key: "$gte", Value: c.Value}}})
		case OpLte:
			filter = append(filter, bson.E{Key: c.Field, Value: bson.D{{Key: "$lte", Value: c.Value}}})
		default:
			filter = append(filter, bson.E{Key: c.Field, Value: c.Value})
		}
	}
	return filter
}

func buildSort(q Query) bson.D {
	if q.Sort == "" {
		return bson.D{{Key: "createdAt", Value: -1}}
	}
	if field, ok := strings.CutPrefix(q.Sort, "-"); ok {
		return bson.D{{Key: field, Value: -1}}
	}
	return bson.D{{Key: q.Sort, Value: 1}}
}

var regexEscaper = strings.NewReplacer(
	`\`, `\\`, `.`, `\.`, `+`, `\+`, `*`, `\*`, `?`, `\?`,
	`(`, `\(`, `)`, `\)`, `[`, `\[`, `]`, `\]`, `{`, `\{`, `}`, `\}`,
	`^`, `\^`, `$`, `\$`, `|`, `\|`,
)

func regexQuote(s string) string {
	return regexEscaper.Replace(s)
}
