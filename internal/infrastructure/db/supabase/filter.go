package supabase

import "strings"

// Filter maps columns to PostgREST predicate expressions. Entries are
// either a column bound to an "eq.value" predicate, or the single "or"
// key bound to a "(colA.eq.v1,colB.eq.v2)" disjunction.
type Filter map[string]string

// Eq builds an equality filter: column=eq.value.
func Eq(column, value string) Filter {
	return Filter{column: "eq." + value}
}

// Or builds a disjunction filter over equality predicates:
// or=(a.eq.x,b.eq.y).
func Or(preds ...string) Filter {
	return Filter{"or": "(" + strings.Join(preds, ",") + ")"}
}

// EqPred builds a single "column.eq.value" predicate for use inside Or.
func EqPred(column, value string) string {
	return column + ".eq." + value
}
