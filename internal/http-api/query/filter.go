package query

import (
	"strings"

	"gorm.io/gorm"
)

// MatchMode selects how a filter condition compares against a column.
type MatchMode int

const (
	// MatchContains is a case-insensitive substring match.
	MatchContains MatchMode = iota
	// MatchEquals is an exact comparison.
	MatchEquals
)

// Condition is one (column, value, match-mode) tuple.
type Condition struct {
	Column string
	Mode   MatchMode
	Value  any
}

// Filter collects the conditions built from the optional query parameters of
// a listing request. Unset parameters add no condition, so an empty filter
// matches everything. Construction does no I/O; Apply attaches the conditions
// to a gorm query.
type Filter struct {
	conds []Condition
}

func NewFilter() *Filter {
	return &Filter{}
}

// Contains adds a case-insensitive substring condition. Empty values are
// skipped (unset means wildcard).
func (f *Filter) Contains(column, value string) *Filter {
	if value == "" {
		return f
	}
	f.conds = append(f.conds, Condition{Column: column, Mode: MatchContains, Value: value})
	return f
}

// ContainsEach adds one substring condition per value; all of them must
// match. Used for list-backed columns such as genres and keywords.
func (f *Filter) ContainsEach(column string, values []string) *Filter {
	for _, value := range values {
		f.Contains(column, value)
	}
	return f
}

// Equals adds an exact-match condition. Callers add it only for parameters
// that were actually supplied.
func (f *Filter) Equals(column string, value any) *Filter {
	f.conds = append(f.conds, Condition{Column: column, Mode: MatchEquals, Value: value})
	return f
}

// Conditions returns the collected tuples in insertion order.
func (f *Filter) Conditions() []Condition {
	return f.conds
}

// Apply attaches every condition to the query.
func (f *Filter) Apply(db *gorm.DB) *gorm.DB {
	for _, cond := range f.conds {
		switch cond.Mode {
		case MatchContains:
			pattern := "%" + escapeLike(cond.Value.(string)) + "%"
			db = db.Where(cond.Column+" ILIKE ?", pattern)
		case MatchEquals:
			db = db.Where(cond.Column+" = ?", cond.Value)
		}
	}
	return db
}

// escapeLike neutralizes LIKE metacharacters in user input
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
