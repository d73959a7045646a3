package directory

// View pairs a base directory with the current search query. Every query
// change recomputes the result list from scratch; the base is never touched.
type View struct {
	base    *Directory
	query   string
	results []Entry
}

// NewView creates a view that is not filtering.
func NewView(base *Directory) *View {
	return &View{base: base}
}

// SetQuery updates the query and reports whether it changed.
func (v *View) SetQuery(query string) bool {
	if query == v.query {
		return false
	}
	v.query = query
	v.results = v.base.Filter(query)
	return true
}

// Query returns the current query.
func (v *View) Query() string {
	return v.query
}

// Filtering reports whether a non-empty query is active.
func (v *View) Filtering() bool {
	return v.query != ""
}

// Results returns the flat filter results, nil when not filtering.
func (v *View) Results() []Entry {
	return v.results
}

// Empty reports whether a query is active and matched nothing.
func (v *View) Empty() bool {
	return v.Filtering() && len(v.results) == 0
}

// Sections is what the caller should display: the grouped base sections, or
// a single untitled section of results while filtering.
func (v *View) Sections() []Section {
	if !v.Filtering() {
		return v.base.Sections()
	}
	if len(v.results) == 0 {
		return nil
	}
	return []Section{{Kind: SectionResults, Entries: v.results}}
}

// Entry returns the entry at a flat row index across Sections.
func (v *View) Entry(row int) (Entry, bool) {
	if row < 0 {
		return Entry{}, false
	}
	for _, s := range v.Sections() {
		if row < len(s.Entries) {
			return s.Entries[row], true
		}
		row -= len(s.Entries)
	}
	return Entry{}, false
}

// Rows is the number of entries across Sections.
func (v *View) Rows() int {
	n := 0
	for _, s := range v.Sections() {
		n += len(s.Entries)
	}
	return n
}
