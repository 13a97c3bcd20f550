// Package career maps extracted skills to suggested roles.
package career

import (
	"sort"
	"strings"
)

const (
	NoSkills      = "Unable to detect career path (no skills found)"
	GeneralCareer = "General Career Path (consider exploring more domains)"
)

// Suggester returns career suggestions for a set of skills. The result is
// never empty.
type Suggester interface {
	Suggest(skills []string) []string
}

// Role is a career with the lowercase keywords that point to it.
type Role struct {
	Name     string
	Keywords []string
}

// Table suggests every role sharing at least one keyword with the skills.
type Table struct {
	roles []Role
}

var _ Suggester = (*Table)(nil)

// NewTable returns a Table over roles, or over DefaultRoles when roles is empty.
func NewTable(roles []Role) *Table {
	if len(roles) == 0 {
		roles = DefaultRoles()
	}
	normalized := make([]Role, 0, len(roles))
	for _, r := range roles {
		kws := make([]string, 0, len(r.Keywords))
		for _, k := range r.Keywords {
			if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
				kws = append(kws, k)
			}
		}
		normalized = append(normalized, Role{Name: r.Name, Keywords: kws})
	}
	return &Table{roles: normalized}
}

// Suggest matches skills exactly (case-insensitive) against role keywords and
// returns the matching role names sorted alphabetically.
func (t *Table) Suggest(skills []string) []string {
	if len(skills) == 0 {
		return []string{NoSkills}
	}

	have := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		have[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}

	out := make([]string, 0)
	for _, r := range t.roles {
		for _, k := range r.Keywords {
			if _, ok := have[k]; ok {
				out = append(out, r.Name)
				break
			}
		}
	}
	if len(out) == 0 {
		return []string{GeneralCareer}
	}
	sort.Strings(out)
	return dedupe(out)
}

// dedupe removes adjacent duplicates from a sorted slice.
func dedupe(sorted []string) []string {
	out := sorted[:1]
	for _, s := range sorted[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}
	return out
}
