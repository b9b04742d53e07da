package life

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// DefaultRule names the rule selected when none is configured.
const DefaultRule = "Conway's Game of Life"

// ErrUnknownRule is wrapped by every rule lookup failure.
var ErrUnknownRule = errors.New("unknown rule set")

// ConfigurationError reports a rule name that is neither registered nor a
// valid B/S rulestring.
type ConfigurationError struct {
	Name string
	Err  error
}

// Error names the rejected input and the failure.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("life: %v: %q", e.Err, e.Name)
}

// Unwrap returns ErrUnknownRule or ErrUnknownPattern.
func (e *ConfigurationError) Unwrap() error { return e.Err }

// CountSet is a set of neighbor counts in [0, 8].
type CountSet uint16

// NewCountSet builds a set from the provided counts. Values outside [0, 8]
// are ignored.
func NewCountSet(counts ...int) CountSet {
	var s CountSet
	for _, n := range counts {
		if n >= 0 && n <= 8 {
			s |= 1 << n
		}
	}
	return s
}

// Has reports whether n is in the set.
func (s CountSet) Has(n int) bool {
	return n >= 0 && n <= 8 && s&(1<<n) != 0
}

// Counts returns the members in ascending order.
func (s CountSet) Counts() []int {
	var out []int
	for n := 0; n <= 8; n++ {
		if s.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

func (s CountSet) String() string {
	var b strings.Builder
	for _, n := range s.Counts() {
		b.WriteByte(byte('0' + n))
	}
	return b.String()
}

// RuleSet pairs the neighbor counts that cause a birth with those that let a
// live cell survive.
type RuleSet struct {
	Name    string
	Birth   CountSet
	Survive CountSet
}

// String renders the rule in B/S notation.
func (r RuleSet) String() string {
	return "B" + r.Birth.String() + "/S" + r.Survive.String()
}

// NextState applies the rule to a cell with the given state and live neighbor
// count.
func (r RuleSet) NextState(curr uint8, neighbors int) uint8 {
	if curr == 1 {
		if r.Survive.Has(neighbors) {
			return 1
		}
		return 0
	}
	if r.Birth.Has(neighbors) {
		return 1
	}
	return 0
}

var rules = map[string]RuleSet{}

func registerRule(name string, birth, survive []int) {
	if name == "" {
		return
	}
	rules[name] = RuleSet{Name: name, Birth: NewCountSet(birth...), Survive: NewCountSet(survive...)}
}

func init() {
	registerRule(DefaultRule, []int{3}, []int{2, 3})
	registerRule("3-4 Life", []int{3, 4}, []int{3, 4})
	registerRule("Amoeba", []int{3, 5, 7}, []int{1, 3, 5, 8})
	registerRule("Coagulations", []int{3, 7, 8}, []int{2, 3, 5, 6, 7, 8})
	registerRule("Coral", []int{3}, []int{4, 5, 6, 7, 8})
	registerRule("Corrosion of Conformity", []int{3}, []int{1, 2, 4})
	registerRule("Day & Night", []int{3, 6, 7, 8}, []int{3, 4, 6, 7, 8})
	registerRule("Life Without Death", []int{3}, []int{0, 1, 2, 3, 4, 5, 6, 7, 8})
	registerRule("Gnarl", []int{1}, []int{1})
	registerRule("High Life", []int{3, 6}, []int{2, 3})
	registerRule("Inverse Life", []int{0, 1, 2, 3, 4, 7, 8}, []int{3, 4, 6, 7, 8})
	registerRule("Long Life", []int{3, 4, 5}, []int{5})
	registerRule("Maze", []int{3}, []int{1, 2, 3, 4, 5})
	registerRule("Mazectric", []int{3}, []int{1, 2, 3, 4})
	registerRule("Pseudo Life", []int{3, 5, 7}, []int{2, 3, 8})
	registerRule("Replicator", []int{1, 3, 5, 7}, []int{1, 3, 5, 7})
	registerRule("Seeds", []int{2}, nil)
	registerRule("Serviettes", []int{2, 3, 4}, nil)
	registerRule("Stains", []int{3, 6, 7, 8}, []int{2, 3, 5, 6, 7, 8})
	registerRule("Walled Cities", []int{3, 6, 7, 8}, []int{2, 3, 5, 6, 7, 8})
}

// Names returns the registered rule names in sorted order.
func Names() []string {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup resolves a rule by exact name, by a loose match ignoring case and
// punctuation ("highlife"), or as a rulestring such as "B36/S23".
func Lookup(name string) (RuleSet, error) {
	if r, ok := rules[name]; ok {
		return r, nil
	}
	key := normalizeName(name)
	if key != "" {
		for n, r := range rules {
			if normalizeName(n) == key {
				return r, nil
			}
		}
	}
	if r, ok := parseRuleString(name); ok {
		return r, nil
	}
	return RuleSet{}, &ConfigurationError{Name: name, Err: ErrUnknownRule}
}

func normalizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// parseRuleString accepts "B<digits>/S<digits>" in either order and any case.
func parseRuleString(s string) (RuleSet, bool) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return RuleSet{}, false
	}
	var birth, survive CountSet
	var haveB, haveS bool
	for _, part := range parts {
		if part == "" {
			return RuleSet{}, false
		}
		set, ok := parseCounts(part[1:])
		if !ok {
			return RuleSet{}, false
		}
		switch part[0] {
		case 'B', 'b':
			if haveB {
				return RuleSet{}, false
			}
			birth, haveB = set, true
		case 'S', 's':
			if haveS {
				return RuleSet{}, false
			}
			survive, haveS = set, true
		default:
			return RuleSet{}, false
		}
	}
	if !haveB || !haveS {
		return RuleSet{}, false
	}
	r := RuleSet{Birth: birth, Survive: survive}
	r.Name = r.String()
	return r, true
}

func parseCounts(digits string) (CountSet, bool) {
	var set CountSet
	for _, d := range digits {
		if d < '0' || d > '8' {
			return 0, false
		}
		set |= 1 << (d - '0')
	}
	return set, true
}
