package useragent

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/dlclark/regexp2"
)

// patternOptions are applied to every rule pattern. ECMAScript keeps \w and
// \d ASCII. IgnoreCase and \s would also accept some non-ASCII runes, so
// inputs are masked to ASCII before matching (see newSubject).
const patternOptions = regexp2.IgnoreCase | regexp2.ECMAScript

// Rule declares one matcher: alternative patterns in priority order and the
// extractors bound to their capture groups.
type Rule struct {
	Patterns   []string
	Extractors []Extractor
}

// CategoryRules is the ordered rule list of one classification axis.
// Earlier rules take precedence over later ones.
type CategoryRules struct {
	Category Category
	Rules    []Rule
}

// Table is a compiled, immutable set of category groups. It is safe for
// concurrent use and is meant to be built once and shared.
type Table struct {
	groups [len(categoryOrder)]categoryGroup
}

type categoryGroup struct {
	category Category
	matchers []*Matcher
}

// NewTable compiles rules into a Table. Categories may be given in any order
// and may be omitted, in which case they never produce values. A positive
// matchTimeout bounds every single pattern search.
func NewTable(rules []CategoryRules, matchTimeout time.Duration) (*Table, error) {
	t := &Table{}
	for i, c := range categoryOrder {
		t.groups[i].category = c
	}

	seen := make(map[Category]bool, len(rules))
	for _, cr := range rules {
		idx := cr.Category.index()
		if idx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, cr.Category)
		}
		if seen[cr.Category] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCategory, cr.Category)
		}
		seen[cr.Category] = true

		matchers := make([]*Matcher, 0, len(cr.Rules))
		for ri, rule := range cr.Rules {
			m, err := compileRule(cr.Category, ri, rule, matchTimeout)
			if err != nil {
				return nil, err
			}
			matchers = append(matchers, m)
		}
		t.groups[idx].matchers = matchers
	}

	return t, nil
}

// MustNewTable is like NewTable but panics on error. It is meant for tables
// declared in code, where a bad pattern is a programming error.
func MustNewTable(rules []CategoryRules, matchTimeout time.Duration) *Table {
	t, err := NewTable(rules, matchTimeout)
	if err != nil {
		panic(err)
	}
	return t
}

func compileRule(c Category, index int, rule Rule, matchTimeout time.Duration) (*Matcher, error) {
	if len(rule.Patterns) == 0 {
		return nil, fmt.Errorf("%w: %s rule %d", ErrEmptyRule, c, index)
	}

	for _, e := range rule.Extractors {
		if e.Field.Category() != c {
			return nil, fmt.Errorf("%w: %s rule %d writes %s", ErrFieldOutsideCategory, c, index, e.Field)
		}
	}

	m := &Matcher{
		category:   c,
		index:      index,
		patterns:   make([]*regexp2.Regexp, 0, len(rule.Patterns)),
		extractors: slices.Clone(rule.Extractors),
	}
	for i := range m.extractors {
		m.extractors[i].Normalizer.Table = maps.Clone(m.extractors[i].Normalizer.Table)
	}
	for pi, p := range rule.Patterns {
		re, err := regexp2.Compile(p, patternOptions)
		if err != nil {
			return nil, fmt.Errorf("%w: %s rule %d pattern %d %q: %w", ErrInvalidPattern, c, index, pi, p, err)
		}
		if matchTimeout > 0 {
			re.MatchTimeout = matchTimeout
		}
		m.patterns = append(m.patterns, re)
	}
	return m, nil
}

// Len returns the number of rules compiled for category c.
func (t *Table) Len(c Category) int {
	idx := c.index()
	if idx < 0 {
		return 0
	}
	return len(t.groups[idx].matchers)
}

// classify runs every category group against input and returns the result.
// Categories are independent: a miss in one never stops the others.
// aborted reports whether any pattern search hit the match timeout.
func (t *Table) classify(input string, logger *slog.Logger) (r Result, aborted bool) {
	in := newSubject(input)
	for i := range t.groups {
		if t.groups[i].apply(in, &r, logger) {
			aborted = true
		}
	}
	return r, aborted
}

// apply runs the group's matchers in order and stops at the first success.
func (g *categoryGroup) apply(in subject, r *Result, logger *slog.Logger) (aborted bool) {
	for _, m := range g.matchers {
		matched, a := m.tryMatch(in, r, logger)
		aborted = aborted || a
		if matched {
			break
		}
	}
	return aborted
}
