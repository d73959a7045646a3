package directory

// Entry is one selectable row: a region code, its display name, its dial
// prefix and the group letter it is filed under.
type Entry struct {
	Key       string `json:"key" yaml:"key"`
	Primary   string `json:"primary" yaml:"primary"`
	Secondary string `json:"secondary" yaml:"secondary"`
	Group     string `json:"group,omitempty" yaml:"group,omitempty"`
}

// SectionKind tells the pinned, common and alphabetical sections apart.
type SectionKind int

const (
	SectionPinned SectionKind = iota
	SectionCommon
	SectionGroup
	SectionResults
)

func (k SectionKind) String() string {
	switch k {
	case SectionPinned:
		return "pinned"
	case SectionCommon:
		return "common"
	case SectionGroup:
		return "group"
	case SectionResults:
		return "results"
	default:
		return "unknown"
	}
}

// Section is an ordered run of entries. Title is empty for the pinned section
// and absent (HasTitle false) for filter results.
type Section struct {
	Kind       SectionKind `json:"kind" yaml:"kind"`
	Title      string      `json:"title" yaml:"title"`
	HasTitle   bool        `json:"-" yaml:"-"`
	IndexTitle string      `json:"index,omitempty" yaml:"index,omitempty"`
	Entries    []Entry     `json:"entries" yaml:"entries"`
}

// SelectFunc is called with the entry the user picked.
type SelectFunc func(Entry)

// Index titles of the synthetic sections.
const (
	PinnedIndexTitle = "•"
	CommonIndexTitle = "★"
)

// DefaultCommonTitle names the common section when no title is configured.
const DefaultCommonTitle = "Common"
