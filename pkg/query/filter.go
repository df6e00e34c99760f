// Package query builds SQL filter predicates as composable values.
//
// The access-resolution engine constructs its direct and effective access
// predicates as Filter values, which compile deterministically to a SQL
// condition with positional ? placeholders. Stores interpolate the
// compiled condition into their fixed FROM clauses and run it through
// GORM's Raw interface.
package query

import (
	"fmt"
	"strings"
)

// Filter is a SQL condition that can be compiled to a fragment with args.
type Filter interface {
	compile(sb *strings.Builder, args *[]interface{})
}

// Compile renders a filter into a SQL condition and its arguments.
// A nil filter compiles to a condition that matches everything.
func Compile(f Filter) (string, []interface{}) {
	if f == nil {
		return "1=1", nil
	}
	var sb strings.Builder
	args := make([]interface{}, 0, 4)
	f.compile(&sb, &args)
	return sb.String(), args
}

type comparison struct {
	column string
	op     string
	value  interface{}
}

func (c comparison) compile(sb *strings.Builder, args *[]interface{}) {
	sb.WriteString(c.column)
	sb.WriteString(" ")
	sb.WriteString(c.op)
	sb.WriteString(" ?")
	*args = append(*args, c.value)
}

// Eq matches column = value.
func Eq(column string, value interface{}) Filter {
	return comparison{column: column, op: "=", value: value}
}

// Ne matches column <> value.
func Ne(column string, value interface{}) Filter {
	return comparison{column: column, op: "<>", value: value}
}

type inFilter struct {
	column string
	values []interface{}
}

func (f inFilter) compile(sb *strings.Builder, args *[]interface{}) {
	if len(f.values) == 0 {
		// An empty IN list matches nothing.
		sb.WriteString("1=0")
		return
	}
	sb.WriteString(f.column)
	sb.WriteString(" IN (")
	for i, v := range f.values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("?")
		*args = append(*args, v)
	}
	sb.WriteString(")")
}

// In matches column IN (values...).
func In(column string, values ...interface{}) Filter {
	return inFilter{column: column, values: values}
}

// InStrings matches column IN (values...) for a string slice.
func InStrings(column string, values []string) Filter {
	vs := make([]interface{}, len(values))
	for i, v := range values {
		vs[i] = v
	}
	return inFilter{column: column, values: vs}
}

type notFilter struct {
	inner Filter
}

func (f notFilter) compile(sb *strings.Builder, args *[]interface{}) {
	sb.WriteString("NOT (")
	f.inner.compile(sb, args)
	sb.WriteString(")")
}

// Not negates a filter.
func Not(f Filter) Filter {
	return notFilter{inner: f}
}

type composite struct {
	op       string
	children []Filter
}

func (f composite) compile(sb *strings.Builder, args *[]interface{}) {
	if len(f.children) == 0 {
		sb.WriteString("1=1")
		return
	}
	if len(f.children) == 1 {
		f.children[0].compile(sb, args)
		return
	}
	sb.WriteString("(")
	for i, child := range f.children {
		if i > 0 {
			sb.WriteString(" ")
			sb.WriteString(f.op)
			sb.WriteString(" ")
		}
		child.compile(sb, args)
	}
	sb.WriteString(")")
}

// And combines filters conjunctively. Nil children are skipped.
func And(filters ...Filter) Filter {
	return composite{op: "AND", children: compact(filters)}
}

// Or combines filters disjunctively. Nil children are skipped.
func Or(filters ...Filter) Filter {
	return composite{op: "OR", children: compact(filters)}
}

func compact(filters []Filter) []Filter {
	out := make([]Filter, 0, len(filters))
	for _, f := range filters {
		if f != nil {
			out = append(out, f)
		}
	}
	return out
}

type startsWith struct {
	column     string
	prefix     string
	ignoreCase bool
}

func (f startsWith) compile(sb *strings.Builder, args *[]interface{}) {
	if f.ignoreCase {
		sb.WriteString("LOWER(")
		sb.WriteString(f.column)
		sb.WriteString(") LIKE LOWER(?)")
	} else {
		sb.WriteString(f.column)
		sb.WriteString(" LIKE ?")
	}
	*args = append(*args, likePrefix(f.prefix)+"%")
}

// StartsWith matches string prefixes, optionally case-insensitively.
func StartsWith(column, prefix string, ignoreCase bool) Filter {
	return startsWith{column: column, prefix: prefix, ignoreCase: ignoreCase}
}

func likePrefix(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

type nullFilter struct {
	column string
	not    bool
}

func (f nullFilter) compile(sb *strings.Builder, args *[]interface{}) {
	sb.WriteString(f.column)
	if f.not {
		sb.WriteString(" IS NOT NULL")
	} else {
		sb.WriteString(" IS NULL")
	}
}

// IsNull matches column IS NULL.
func IsNull(column string) Filter {
	return nullFilter{column: column}
}

// NotNull matches column IS NOT NULL.
func NotNull(column string) Filter {
	return nullFilter{column: column, not: true}
}

type existsFilter struct {
	from  string
	where Filter
}

func (f existsFilter) compile(sb *strings.Builder, args *[]interface{}) {
	sb.WriteString("EXISTS (SELECT 1 FROM ")
	sb.WriteString(f.from)
	sb.WriteString(" WHERE ")
	cond, sub := Compile(f.where)
	sb.WriteString(cond)
	*args = append(*args, sub...)
	sb.WriteString(")")
}

// Exists builds a correlated EXISTS subquery against the given FROM
// clause. Column references in the where filter may refer to aliases of
// the enclosing query.
func Exists(from string, where Filter) Filter {
	return existsFilter{from: from, where: where}
}

type rawFilter struct {
	sql  string
	args []interface{}
}

func (f rawFilter) compile(sb *strings.Builder, args *[]interface{}) {
	sb.WriteString(f.sql)
	*args = append(*args, f.args...)
}

// Raw embeds a literal SQL condition. Used for correlation predicates that
// compare two columns rather than a column and a value.
func Raw(sql string, args ...interface{}) Filter {
	return rawFilter{sql: sql, args: args}
}

// ColumnEq matches two columns against each other, e.g. a join predicate
// between an enclosing alias and a subquery alias.
func ColumnEq(left, right string) Filter {
	return rawFilter{sql: fmt.Sprintf("%s = %s", left, right)}
}
