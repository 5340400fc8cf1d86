// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package cargo

import (
	"fmt"
	"strings"
)

// WhereBuilder accumulates Cargo where-clause conditions. Conditions are
// AND-joined; an empty builder renders to the empty string so the where
// parameter can be omitted.
type WhereBuilder struct {
	conds []string
}

// escape neutralizes embedded double quotes in filter values so a value can
// never terminate its quoted literal early.
func escape(value string) string {
	return strings.ReplaceAll(value, `"`, `\"`)
}

// Raw appends a pre-built condition verbatim. Used for expressions the
// quoted-match helpers cannot express, such as date function comparisons.
func (b *WhereBuilder) Raw(cond string) *WhereBuilder {
	b.conds = append(b.conds, cond)
	return b
}

// Match appends `field = "value"`.
func (b *WhereBuilder) Match(field, value string) *WhereBuilder {
	b.conds = append(b.conds, fmt.Sprintf(`%s = "%s"`, field, escape(value)))
	return b
}

// MatchAny appends an OR-group matching value against each of the numbered
// fields field1..fieldN, e.g. a recipe material against material1..material6.
func (b *WhereBuilder) MatchAny(prefix string, slots int, value string) *WhereBuilder {
	parts := make([]string, slots)
	for i := 0; i < slots; i++ {
		parts[i] = fmt.Sprintf(`%s%d = "%s"`, prefix, i+1, escape(value))
	}
	b.conds = append(b.conds, "("+strings.Join(parts, " OR ")+")")
	return b
}

// MatchSet appends a group requiring every value to appear among the
// numbered fields prefix1..prefixN, in any arrangement. With two values over
// two slots this renders the classic
// ((c1 = "a" AND c2 = "b") OR (c1 = "b" AND c2 = "a")) shape.
// Returns an error when more values are given than slots exist.
func (b *WhereBuilder) MatchSet(prefix string, slots int, values []string) error {
	if len(values) == 0 {
		return nil
	}
	if len(values) > slots {
		return fmt.Errorf("cannot match more than %d values against %s fields", slots, prefix)
	}

	if len(values) == 1 {
		b.MatchAny(prefix, slots, values[0])
		return nil
	}

	var groups []string
	for _, assignment := range slotArrangements(slots, len(values)) {
		parts := make([]string, len(values))
		for i, slot := range assignment {
			parts[i] = fmt.Sprintf(`%s%d = "%s"`, prefix, slot, escape(values[i]))
		}
		groups = append(groups, "("+strings.Join(parts, " AND ")+")")
	}
	b.conds = append(b.conds, "("+strings.Join(groups, " OR ")+")")
	return nil
}

// slotArrangements returns every ordered selection of m distinct slots out
// of 1..n.
func slotArrangements(n, m int) [][]int {
	var out [][]int
	used := make([]bool, n+1)
	current := make([]int, 0, m)

	var recurse func()
	recurse = func() {
		if len(current) == m {
			out = append(out, append([]int(nil), current...))
			return
		}
		for slot := 1; slot <= n; slot++ {
			if used[slot] {
				continue
			}
			used[slot] = true
			current = append(current, slot)
			recurse()
			current = current[:len(current)-1]
			used[slot] = false
		}
	}
	recurse()
	return out
}

// Empty reports whether no conditions have been added.
func (b *WhereBuilder) Empty() bool {
	return len(b.conds) == 0
}

// String renders the AND-joined where clause, or "" when empty.
func (b *WhereBuilder) String() string {
	return strings.Join(b.conds, " AND ")
}
