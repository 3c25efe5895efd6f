package pkg

// Install states as stored in the package database.
const (
	StateInstalled    = "installed"
	StateNotInstalled = "not installed"
	StateUpgradable   = "upgradable"
)

// Record is one catalog entry with named string attributes. Records are
// created by the loader and referenced by pointer for the process lifetime;
// queue membership tests compare pointers, never values.
type Record struct {
	Name         string `json:"name"`
	Version      string `json:"version"`
	Description  string `json:"description"`
	URL          string `json:"url"`
	Repository   string `json:"repository"`
	Packager     string `json:"packager"`
	BuildDate    string `json:"buildDate"`
	InstallState string `json:"installState"`
	License      string `json:"license"`

	// Group is the display grouping slot assigned by the colorcode
	// operation: records sharing a value of the colored attribute share
	// a group. Rendering maps it onto a palette.
	Group int `json:"-"`
}

// GetAttr returns the value of the given attribute. Lookup never fails:
// unknown selectors return the empty string.
func (r *Record) GetAttr(attr Attribute) string {
	switch attr {
	case AttrName:
		return r.Name
	case AttrVersion:
		return r.Version
	case AttrDescription:
		return r.Description
	case AttrURL:
		return r.URL
	case AttrRepository:
		return r.Repository
	case AttrPackager:
		return r.Packager
	case AttrBuildDate:
		return r.BuildDate
	case AttrInstallState:
		return r.InstallState
	case AttrLicense:
		return r.License
	default:
		return ""
	}
}
