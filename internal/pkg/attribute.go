package pkg

// Attribute identifies one named string field of a Record.
type Attribute int

const (
	AttrName Attribute = iota
	AttrVersion
	AttrDescription
	AttrURL
	AttrRepository
	AttrPackager
	AttrBuildDate
	AttrInstallState
	AttrLicense

	attrCount
)

// attrCodes maps each attribute to its single-character command code.
var attrCodes = [attrCount]byte{
	AttrName:         'n',
	AttrVersion:      'v',
	AttrDescription:  'd',
	AttrURL:          'u',
	AttrRepository:   'r',
	AttrPackager:     'p',
	AttrBuildDate:    'b',
	AttrInstallState: 's',
	AttrLicense:      'l',
}

var attrNames = [attrCount]string{
	AttrName:         "Name",
	AttrVersion:      "Version",
	AttrDescription:  "Description",
	AttrURL:          "URL",
	AttrRepository:   "Repository",
	AttrPackager:     "Packager",
	AttrBuildDate:    "Build Date",
	AttrInstallState: "Install State",
	AttrLicense:      "License",
}

// Code returns the single-character command code for the attribute.
func (a Attribute) Code() byte {
	if a < 0 || a >= attrCount {
		return 0
	}
	return attrCodes[a]
}

// String returns the human-readable attribute name.
func (a Attribute) String() string {
	if a < 0 || a >= attrCount {
		return ""
	}
	return attrNames[a]
}

// Attributes returns all attributes in declaration order.
func Attributes() []Attribute {
	attrs := make([]Attribute, attrCount)
	for i := range attrs {
		attrs[i] = Attribute(i)
	}
	return attrs
}

// AttributeForCode resolves a single-character command code to an attribute.
// Returns false for unknown codes.
func AttributeForCode(c byte) (Attribute, bool) {
	for a, code := range attrCodes {
		if code == c {
			return Attribute(a), true
		}
	}
	return 0, false
}

// AttributeSet is an ordered set of attribute selectors. Duplicates are
// suppressed; insertion order is preserved for iteration.
type AttributeSet struct {
	attrs []Attribute
}

// DefaultAttributeSet returns the default selection: name and description.
func DefaultAttributeSet() AttributeSet {
	return AttributeSet{attrs: []Attribute{AttrName, AttrDescription}}
}

// ParseAttributeSet builds a set from a string of attribute codes.
// Unknown codes are ignored, duplicates kept once in first-seen order.
// An empty or all-unknown code string yields an empty set.
func ParseAttributeSet(codes string) AttributeSet {
	var s AttributeSet
	for i := 0; i < len(codes); i++ {
		attr, ok := AttributeForCode(codes[i])
		if !ok {
			continue
		}
		s.add(attr)
	}
	return s
}

func (s *AttributeSet) add(attr Attribute) {
	for _, a := range s.attrs {
		if a == attr {
			return
		}
	}
	s.attrs = append(s.attrs, attr)
}

// Attributes returns the selectors in insertion order.
func (s AttributeSet) Attributes() []Attribute {
	return s.attrs
}

// Len returns the number of selectors in the set.
func (s AttributeSet) Len() int {
	return len(s.attrs)
}

// Empty reports whether the set has no selectors.
func (s AttributeSet) Empty() bool {
	return len(s.attrs) == 0
}
