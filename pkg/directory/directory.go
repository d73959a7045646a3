package directory

import (
	"slices"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Options controls which synthetic sections Build prepends.
type Options struct {
	// Pinned is the key shown alone in the first section, usually the
	// currently selected region. Unknown keys add no section.
	Pinned string
	// Common keys are shown, in this order, in the section after the pinned
	// one. Unknown keys are dropped silently.
	Common      []string
	HidePinned  bool
	HideCommon  bool
	CommonTitle string
	// Locale drives the collation of Primary. The zero tag uses the root
	// collation.
	Locale language.Tag
}

// Directory is the grouped, immutable view of a static entry list.
type Directory struct {
	entries   []Entry
	match     []matchKey
	byKey     map[string]int
	sections  []Section
	hasPinned bool
	hasCommon bool
}

type matchKey struct {
	primary   string
	key       string
	secondary string
}

// Build sorts source by Primary, files it into letter groups and prepends the
// pinned and common sections. Source is not modified.
func Build(source []Entry, opts Options) *Directory {
	entries := slices.Clone(source)

	col := collate.New(opts.Locale, collate.IgnoreCase)
	sort.SliceStable(entries, func(i, j int) bool {
		return col.CompareString(entries[i].Primary, entries[j].Primary) < 0
	})

	d := &Directory{
		entries: entries,
		match:   make([]matchKey, len(entries)),
		byKey:   make(map[string]int, len(entries)),
	}
	for i := range entries {
		if entries[i].Group == "" {
			entries[i].Group = groupOf(entries[i].Primary)
		}
		d.match[i] = matchKey{
			primary:   foldCase(entries[i].Primary),
			key:       foldCase(entries[i].Key),
			secondary: foldCase(entries[i].Secondary),
		}
		if _, dup := d.byKey[normalizeKey(entries[i].Key)]; !dup {
			d.byKey[normalizeKey(entries[i].Key)] = i
		}
	}

	if !opts.HidePinned {
		if pinned, ok := d.Lookup(opts.Pinned); ok {
			d.hasPinned = true
			d.sections = append(d.sections, Section{
				Kind:       SectionPinned,
				HasTitle:   true,
				IndexTitle: PinnedIndexTitle,
				Entries:    []Entry{pinned},
			})
		}
	}

	if !opts.HideCommon {
		var common []Entry
		for _, key := range opts.Common {
			if entry, ok := d.Lookup(key); ok {
				common = append(common, entry)
			}
		}
		if len(common) > 0 {
			title := opts.CommonTitle
			if title == "" {
				title = DefaultCommonTitle
			}
			d.hasCommon = true
			d.sections = append(d.sections, Section{
				Kind:       SectionCommon,
				Title:      title,
				HasTitle:   true,
				IndexTitle: CommonIndexTitle,
				Entries:    common,
			})
		}
	}

	d.sections = append(d.sections, groups(entries)...)
	return d
}

// groups folds sorted entries into contiguous runs sharing a group letter.
func groups(entries []Entry) []Section {
	var out []Section
	for _, entry := range entries {
		if n := len(out); n > 0 && out[n-1].IndexTitle == entry.Group {
			out[n-1].Entries = append(out[n-1].Entries, entry)
			continue
		}
		out = append(out, Section{
			Kind:       SectionGroup,
			Title:      firstRune(entry.Primary),
			HasTitle:   true,
			IndexTitle: entry.Group,
			Entries:    []Entry{entry},
		})
	}
	return out
}

// Sections returns the grouped sections in display order.
func (d *Directory) Sections() []Section {
	return slices.Clone(d.sections)
}

// Entries returns every entry in sorted order.
func (d *Directory) Entries() []Entry {
	return slices.Clone(d.entries)
}

// Len is the number of entries.
func (d *Directory) Len() int {
	return len(d.entries)
}

// HasPinned reports whether the pinned section is present.
func (d *Directory) HasPinned() bool {
	return d.hasPinned
}

// HasCommon reports whether the common section is present. It is false when
// none of the configured common keys resolved.
func (d *Directory) HasCommon() bool {
	return d.hasCommon
}

// Lookup finds an entry by key, ignoring case.
func (d *Directory) Lookup(key string) (Entry, bool) {
	if key == "" {
		return Entry{}, false
	}
	i, ok := d.byKey[normalizeKey(key)]
	if !ok {
		return Entry{}, false
	}
	return d.entries[i], true
}

// IndexTitles returns one short title per section, for jump lists.
func (d *Directory) IndexTitles() []string {
	titles := make([]string, 0, len(d.sections))
	for _, s := range d.sections {
		titles = append(titles, s.IndexTitle)
	}
	return titles
}

// Filter returns, in sorted order, every entry whose Primary, Key or
// Secondary contains query, ignoring case. An empty query disables filtering
// and returns nil: the caller shows Sections instead.
func (d *Directory) Filter(query string) []Entry {
	if query == "" {
		return nil
	}
	q := foldCase(query)
	out := []Entry{}
	for i, m := range d.match {
		if strings.Contains(m.primary, q) || strings.Contains(m.key, q) || strings.Contains(m.secondary, q) {
			out = append(out, d.entries[i])
		}
	}
	return out
}

func normalizeKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}

func firstRune(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	return string(r)
}
