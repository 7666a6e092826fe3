/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package query

import (
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/errors"
	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/keys"
)

// Operator is a native comparison operator.
type Operator string

// Native operators the backing store understands.
const (
	OpEqual          Operator = "="
	OpLess           Operator = "<"
	OpLessOrEqual    Operator = "<="
	OpGreater        Operator = ">"
	OpGreaterOrEqual Operator = ">="
	OpNotEqual       Operator = "!="
	OpIn             Operator = "in"
)

// operators maps filter operator names onto native operators. A name
// missing from this table is unsupported and fails the compile.
var operators = map[string]Operator{
	"lt":  OpLess,
	"lte": OpLessOrEqual,
	"gt":  OpGreater,
	"gte": OpGreaterOrEqual,
	"ne":  OpNotEqual,
	"in":  OpIn,
}

// Where maps field names to either a literal (equality) or an operator
// object such as {"lt": 30}.
type Where map[string]interface{}

// Filter is the abstract filter shape handed down by the framework.
// Order is a single "field DIRECTION" string or a list of them.
type Filter struct {
	ID     string          `mapstructure:"id"`
	Where  Where           `mapstructure:"where"`
	Order  interface{}     `mapstructure:"order"`
	Limit  int             `mapstructure:"limit"`
	Skip   int             `mapstructure:"skip"`
	Fields map[string]bool `mapstructure:"fields"`
}

// Empty reports whether the filter constrains the query at all.
func (f *Filter) Empty() bool {
	if f == nil {
		return true
	}
	return len(f.Where) == 0 && f.Order == nil && f.Limit == 0 && f.Skip == 0 && len(f.Fields) == 0
}

// Predicate is one compiled where clause. Multiple predicates on a
// plan are implicitly ANDed; there is no native OR.
type Predicate struct {
	Field string
	Op    Operator
	Value interface{}
}

// OrderSpec is one compiled ordering directive.
type OrderSpec struct {
	Field      string
	Descending bool
}

// Plan is a composed query against a single kind: predicates, ordering
// directives, offset pagination, and an optional field projection. An
// empty Projection means all fields. Plans are built per request and
// discarded after use.
type Plan struct {
	Root       keys.Key
	Predicates []Predicate
	Orders     []OrderSpec
	Limit      int
	Offset     int
	Projection []string
}

// Compile converts an abstract filter into a query plan rooted at the
// given kind key.
//
// A nil or empty filter compiles to the bare plan (full kind fetch).
// An order list that normalizes to zero entries short-circuits the
// whole compile and returns a nil plan: the caller has nothing to run.
func Compile(root keys.Key, f *Filter) (*Plan, error) {
	plan := &Plan{Root: root}
	if f == nil {
		return plan, nil
	}

	order, present, err := normalizeOrder(f.Order)
	if err != nil {
		return nil, err
	}
	if present && len(order) == 0 {
		return nil, nil
	}

	preds, err := compileWhere(f.Where)
	if err != nil {
		return nil, err
	}
	plan.Predicates = preds
	plan.Orders = compileOrder(order)
	plan.Limit = f.Limit
	plan.Offset = f.Skip
	plan.Projection = compileProjection(f.Fields)
	return plan, nil
}

// ParseFilter decodes a loosely-typed filter object, as received from
// the framework layer, into a Filter.
func ParseFilter(raw map[string]interface{}) (*Filter, error) {
	f, err := decodeFilter(raw)
	if err != nil {
		return nil, errors.NewInvalidFilterError(err.Error())
	}
	return f, nil
}

// compileWhere turns each where entry into a predicate. Scalar values
// become equality predicates; operator objects become one comparison
// predicate per operator key. An unrecognized operator fails the
// compile instead of silently dropping the clause.
func compileWhere(where Where) ([]Predicate, error) {
	if len(where) == 0 {
		return nil, nil
	}

	fields := make([]string, 0, len(where))
	for field := range where {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var preds []Predicate
	for _, field := range fields {
		value := where[field]
		cond, ok := asOperatorObject(value)
		if !ok {
			preds = append(preds, Predicate{Field: field, Op: OpEqual, Value: value})
			continue
		}

		names := make([]string, 0, len(cond))
		for name := range cond {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			op, known := operators[name]
			if !known {
				return nil, errors.NewUnsupportedOperatorError(field, name)
			}
			preds = append(preds, Predicate{Field: field, Op: op, Value: cond[name]})
		}
	}
	return preds, nil
}

// compileOrder parses "field DIRECTION" entries. DESC (any case) maps
// to descending, any other direction token to ascending. An entry
// without a direction token produces no directive; it is skipped with
// a warning.
func compileOrder(entries []string) []OrderSpec {
	var specs []OrderSpec
	for _, entry := range entries {
		parts := strings.Fields(entry)
		if len(parts) != 2 {
			log.WithField("order", entry).Warn("skipping order entry without a direction token")
			continue
		}
		specs = append(specs, OrderSpec{
			Field:      parts[0],
			Descending: strings.EqualFold(parts[1], "DESC"),
		})
	}
	return specs
}

// compileProjection collects the field names mapped to exactly true.
// If no field is true the select list stays empty, which the backing
// store reads as "all fields": an all-false fields object excludes
// nothing.
func compileProjection(fields map[string]bool) []string {
	var selected []string
	for field, include := range fields {
		if include {
			selected = append(selected, field)
		}
	}
	sort.Strings(selected)
	return selected
}

// normalizeOrder accepts a single order string or a list of them and
// returns the entry list plus whether an order clause was present at
// all.
func normalizeOrder(order interface{}) ([]string, bool, error) {
	switch v := order.(type) {
	case nil:
		return nil, false, nil
	case string:
		return []string{v}, true, nil
	case []string:
		return v, true, nil
	case []interface{}:
		entries := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, true, errors.NewInvalidFilterError("order entries must be strings")
			}
			entries = append(entries, s)
		}
		return entries, true, nil
	default:
		return nil, true, errors.NewInvalidFilterError("order must be a string or a list of strings")
	}
}

// asOperatorObject reports whether a where value is an operator object
// rather than a literal.
func asOperatorObject(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case Where:
		return m, true
	default:
		return nil, false
	}
}
