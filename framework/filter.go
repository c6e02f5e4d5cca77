package framework

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Filter is a function that can determine whether to run a specific test or not.
type Filter func(TestID) bool

type RegexFilters struct {
	MustMatch    PathPatternList
	MustNotMatch RegexList
}

// AsFilter selects a test if it is not excluded by MustNotMatch and, when MustMatch is defined,
// its path is consistent with at least one of the MustMatch patterns. Ancestors of a matching
// test are always selected, so that "courier login/missing" reaches "missing login".
func (r RegexFilters) AsFilter(id TestID) bool {
	if r.MustNotMatch.AnyMatch(id.String()) {
		return false
	}
	return !r.MustMatch.IsDefined() || r.MustMatch.AnyMatch(id)
}

// RegexList is a set of patterns matched against the full slash-separated test ID.
type RegexList struct {
	patterns []*regexp.Regexp
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (r *RegexList) Set(value string) error {
	rx, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	r.patterns = append(r.patterns, rx)
	return nil
}

func (r RegexList) Type() string { return "regex" }

// Patterns returns the source of each pattern in the order they were added.
func (r RegexList) Patterns() []string {
	ret := make([]string, 0, len(r.patterns))
	for _, p := range r.patterns {
		ret = append(ret, p.String())
	}
	return ret
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// PathPatternList is a set of patterns in the same form as "go test -run": each one is split on
// "/" and the Nth element is matched against the Nth element of the test path.
type PathPatternList struct {
	patterns [][]*regexp.Regexp
	raw      []string
}

func (p PathPatternList) String() string {
	var ss []string
	for _, r := range p.raw {
		ss = append(ss, `"`+r+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (p *PathPatternList) Set(value string) error {
	var levels []*regexp.Regexp
	for _, part := range strings.Split(value, "/") {
		rx, err := regexp.Compile(part)
		if err != nil {
			return fmt.Errorf("invalid regex %q: %w", part, err)
		}
		levels = append(levels, rx)
	}
	p.patterns = append(p.patterns, levels)
	p.raw = append(p.raw, value)
	return nil
}

func (p PathPatternList) Type() string { return "pattern" }

func (p PathPatternList) IsDefined() bool {
	return len(p.patterns) != 0
}

func (p PathPatternList) AnyMatch(id TestID) bool {
	for _, levels := range p.patterns {
		if matchLevels(levels, id.Path) {
			return true
		}
	}
	return false
}

func matchLevels(levels []*regexp.Regexp, path []string) bool {
	for i, name := range path {
		if i >= len(levels) {
			break
		}
		if !levels[i].MatchString(name) {
			return false
		}
	}
	return true
}

func PrintFilterDescription(out io.Writer, filters RegexFilters) {
	if filters.MustMatch.IsDefined() || filters.MustNotMatch.IsDefined() {
		fmt.Fprintln(out, "Some tests will be skipped based on the filter criteria for this test run:")
		if filters.MustMatch.IsDefined() {
			fmt.Fprintf(out, "  skip any not matching %s\n", filters.MustMatch)
		}
		if filters.MustNotMatch.IsDefined() {
			fmt.Fprintf(out, "  skip any matching %s\n", filters.MustNotMatch)
		}
		fmt.Fprintln(out)
	}
}
