// Package match implements the record matching and ordering engine: plain
// substring and regexp matchers over attribute selections, the attribute
// comparator, and the filter/search argument grammars.
package match

import (
	"regexp"
	"sort"
	"strings"

	"github.com/paqtool/paq/internal/pkg"
)

// filterPrefix splits "fields!:phrase" arguments: optional field codes,
// optional negation, then the phrase.
var filterPrefix = regexp.MustCompile(`^(([A-Za-z]*)(!?):)?(.*)$`)

// searchPrefix splits "fields:phrase" arguments. Search has no negation.
var searchPrefix = regexp.MustCompile(`^([A-Za-z]*):(.*)$`)

// alnumOnly gates the fast path: purely alphanumeric phrases are matched as
// literal substrings instead of compiled patterns.
var alnumOnly = regexp.MustCompile(`^[[:alnum:]]+$`)

// Plain reports whether any selected attribute of the record contains the
// phrase, case-insensitively.
func Plain(r *pkg.Record, attrs pkg.AttributeSet, phrase string) bool {
	needle := strings.ToLower(phrase)
	for _, attr := range attrs.Attributes() {
		if strings.Contains(strings.ToLower(r.GetAttr(attr)), needle) {
			return true
		}
	}
	return false
}

// Pattern reports whether the pattern matches any selected attribute of the
// record. Case-insensitivity is the caller's concern (compile with "(?i)").
func Pattern(r *pkg.Record, attrs pkg.AttributeSet, re *regexp.Regexp) bool {
	for _, attr := range attrs.Attributes() {
		if re.MatchString(r.GetAttr(attr)) {
			return true
		}
	}
	return false
}

// Less orders two records lexicographically by the chosen attribute.
func Less(a, b *pkg.Record, attr pkg.Attribute) bool {
	return a.GetAttr(attr) < b.GetAttr(attr)
}

// SortBy stably sorts records in place by the chosen attribute.
func SortBy(records []*pkg.Record, attr pkg.Attribute) {
	sort.SliceStable(records, func(i, j int) bool {
		return Less(records[i], records[j], attr)
	})
}

// FilterSpec is a parsed filter argument: the attribute selection, the match
// sense, and either a literal phrase or a compiled pattern.
type FilterSpec struct {
	Attrs  pkg.AttributeSet
	Negate bool
	Phrase string

	re *regexp.Regexp // nil on the fast path
}

// ParseFilter parses a "[(fields)(!)?:]phrase" argument. The attribute
// selection defaults to name+description and is replaced only when the field
// list is non-empty. A non-alphanumeric phrase is compiled as a
// case-insensitive pattern; compile failure is returned as an error and must
// leave the caller's state untouched.
func ParseFilter(arg string) (FilterSpec, error) {
	spec := FilterSpec{Attrs: pkg.DefaultAttributeSet()}

	m := filterPrefix.FindStringSubmatch(arg)
	fields, negate, phrase := m[2], m[3], m[4]

	spec.Negate = negate == "!"
	spec.Phrase = phrase
	if fields != "" {
		if set := pkg.ParseAttributeSet(fields); !set.Empty() {
			spec.Attrs = set
		}
	}

	if phrase == "" || alnumOnly.MatchString(phrase) {
		return spec, nil
	}

	re, err := regexp.Compile("(?i)" + phrase)
	if err != nil {
		return FilterSpec{}, err
	}
	spec.re = re
	return spec, nil
}

// Matches applies the spec's predicate to one record, negation included.
func (s FilterSpec) Matches(r *pkg.Record) bool {
	var hit bool
	if s.re != nil {
		hit = Pattern(r, s.Attrs, s.re)
	} else {
		hit = Plain(r, s.Attrs, s.Phrase)
	}
	if s.Negate {
		return !hit
	}
	return hit
}

// Apply removes every record the spec rejects, preserving relative order of
// survivors. The input slice is reused.
func Apply(records []*pkg.Record, spec FilterSpec) []*pkg.Record {
	kept := records[:0]
	for _, r := range records {
		if spec.Matches(r) {
			kept = append(kept, r)
		}
	}
	return kept
}

// SearchSpec is a parsed search argument: attribute selection plus a literal
// phrase. Search always uses the plain matcher and ignores negation.
type SearchSpec struct {
	Attrs  pkg.AttributeSet
	Phrase string
}

// ParseSearch parses a "[(fields):]phrase" argument.
func ParseSearch(arg string) SearchSpec {
	spec := SearchSpec{Attrs: pkg.DefaultAttributeSet(), Phrase: arg}

	if m := searchPrefix.FindStringSubmatch(arg); m != nil {
		spec.Phrase = m[2]
		if set := pkg.ParseAttributeSet(m[1]); !set.Empty() {
			spec.Attrs = set
		}
	}
	return spec
}

// Search scans for the next matching record. The scan starts immediately
// after the focus index and wraps to the start only when that starting point
// was not already index 0. Returns the match index, or false when no record
// matches anywhere.
func Search(records []*pkg.Record, focus int, spec SearchSpec) (int, bool) {
	start := focus + 1
	for i := start; i < len(records); i++ {
		if Plain(records[i], spec.Attrs, spec.Phrase) {
			return i, true
		}
	}
	if start == 0 {
		return 0, false
	}
	for i := 0; i < len(records); i++ {
		if Plain(records[i], spec.Attrs, spec.Phrase) {
			return i, true
		}
	}
	return 0, false
}

// ColorCode assigns each record a group slot derived from the chosen
// attribute: records sharing a value share a slot, slots numbered by first
// appearance. Runs over the full collection.
func ColorCode(records []*pkg.Record, attr pkg.Attribute) {
	groups := make(map[string]int)
	for _, r := range records {
		v := r.GetAttr(attr)
		g, ok := groups[v]
		if !ok {
			g = len(groups)
			groups[v] = g
		}
		r.Group = g
	}
}
