package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/pluqqy/dialpad/pkg/formatter"
)

func sampleEntries() []Entry {
	return []Entry{
		{Key: "KZ", Primary: "Kazakhstan", Secondary: "+7"},
		{Key: "US", Primary: "United States", Secondary: "+1"},
		{Key: "GB", Primary: "United Kingdom", Secondary: "+44"},
	}
}

func keys(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Key)
	}
	return out
}

func TestBuildPinnedAndCommon(t *testing.T) {
	d := Build(sampleEntries(), Options{Pinned: "KZ", Common: []string{"US"}})

	sections := d.Sections()
	require.Len(t, sections, 4)

	assert.Equal(t, SectionPinned, sections[0].Kind)
	assert.Equal(t, []string{"KZ"}, keys(sections[0].Entries))
	assert.True(t, sections[0].HasTitle)
	assert.Equal(t, "", sections[0].Title)

	assert.Equal(t, SectionCommon, sections[1].Kind)
	assert.Equal(t, []string{"US"}, keys(sections[1].Entries))
	assert.Equal(t, DefaultCommonTitle, sections[1].Title)

	assert.Equal(t, []string{"KZ"}, keys(sections[2].Entries))
	assert.Equal(t, "K", sections[2].IndexTitle)
	assert.Equal(t, []string{"GB", "US"}, keys(sections[3].Entries))
	assert.Equal(t, "U", sections[3].IndexTitle)

	assert.True(t, d.HasPinned())
	assert.True(t, d.HasCommon())
	assert.Equal(t, []string{PinnedIndexTitle, CommonIndexTitle, "K", "U"}, d.IndexTitles())
}

func TestBuildDropsUnknownCommon(t *testing.T) {
	d := Build(sampleEntries(), Options{Common: []string{"XX", "YY"}})

	assert.False(t, d.HasCommon())
	assert.False(t, d.HasPinned())
	for _, s := range d.Sections() {
		assert.Equal(t, SectionGroup, s.Kind)
	}
}

func TestBuildCommonKeepsConfiguredOrder(t *testing.T) {
	d := Build(sampleEntries(), Options{Common: []string{"us", "XX", "KZ"}, CommonTitle: "Popular"})

	sections := d.Sections()
	require.NotEmpty(t, sections)
	assert.Equal(t, "Popular", sections[0].Title)
	assert.Equal(t, []string{"US", "KZ"}, keys(sections[0].Entries))
}

func TestBuildHiddenSections(t *testing.T) {
	d := Build(sampleEntries(), Options{
		Pinned:     "KZ",
		Common:     []string{"US"},
		HidePinned: true,
		HideCommon: true,
	})

	assert.False(t, d.HasPinned())
	assert.False(t, d.HasCommon())
	assert.Len(t, d.Sections(), 2)
}

func TestBuildDoesNotModifySource(t *testing.T) {
	source := sampleEntries()
	Build(source, Options{})

	assert.Equal(t, sampleEntries(), source)
}

func TestBuildGroupsFoldDiacritics(t *testing.T) {
	source := []Entry{
		{Key: "AX", Primary: "Åland Islands"},
		{Key: "AF", Primary: "Afghanistan"},
		{Key: "AL", Primary: "Albania"},
		{Key: "BE", Primary: "Belgium"},
	}
	d := Build(source, Options{Locale: language.English})

	sections := d.Sections()
	require.Len(t, sections, 2)
	assert.Equal(t, "A", sections[0].IndexTitle)
	assert.Equal(t, []string{"AF", "AX", "AL"}, keys(sections[0].Entries))
	assert.Equal(t, "B", sections[1].IndexTitle)
}

func TestGroupKeepsCase(t *testing.T) {
	source := []Entry{
		{Key: "SZ", Primary: "eSwatini"},
		{Key: "EG", Primary: "Égypte"},
		{Key: "XX", Primary: ""},
	}
	d := Build(source, Options{Locale: language.English})

	groups := map[string]string{}
	for _, e := range d.Entries() {
		groups[e.Key] = e.Group
	}
	assert.Equal(t, "e", groups["SZ"])
	assert.Equal(t, "E", groups["EG"])
	assert.Equal(t, "", groups["XX"])
}

func TestBuildIsStable(t *testing.T) {
	source := []Entry{
		{Key: "B1", Primary: "Same"},
		{Key: "A1", Primary: "Same"},
		{Key: "C1", Primary: "Other"},
	}
	first := Build(source, Options{}).Entries()
	second := Build(source, Options{}).Entries()

	assert.Equal(t, []string{"C1", "B1", "A1"}, keys(first))
	assert.Equal(t, first, second)
}

func TestFilter(t *testing.T) {
	d := Build(sampleEntries(), Options{Pinned: "KZ"})

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty query disables filtering", query: "", want: nil},
		{name: "name substring", query: "united", want: []string{"GB", "US"}},
		{name: "key", query: "kz", want: []string{"KZ"}},
		{name: "dial prefix", query: "+44", want: []string{"GB"}},
		{name: "no match", query: "atlantis", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Filter(tt.query)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.want, keys(got))
		})
	}
}

func TestViewRecomputesFromBase(t *testing.T) {
	v := NewView(Build(sampleEntries(), Options{Pinned: "KZ"}))

	assert.False(t, v.Filtering())
	assert.Equal(t, 4, v.Rows())

	assert.True(t, v.SetQuery("unit"))
	assert.False(t, v.SetQuery("unit"))
	sections := v.Sections()
	require.Len(t, sections, 1)
	assert.Equal(t, SectionResults, sections[0].Kind)
	assert.False(t, sections[0].HasTitle)
	assert.Equal(t, []string{"GB", "US"}, keys(sections[0].Entries))

	// Widening the query must not depend on the narrower result.
	v.SetQuery("united kingdom")
	v.SetQuery("a")
	assert.Equal(t, []string{"KZ", "US"}, keys(v.Results()))

	v.SetQuery("zzz")
	assert.True(t, v.Empty())
	assert.Nil(t, v.Sections())

	v.SetQuery("")
	assert.False(t, v.Filtering())
	entry, ok := v.Entry(0)
	require.True(t, ok)
	assert.Equal(t, "KZ", entry.Key)
	_, ok = v.Entry(v.Rows())
	assert.False(t, ok)
}

func TestFlag(t *testing.T) {
	assert.Equal(t, "🇺🇸", Flag("US"))
	assert.Equal(t, "🇬🇧", Flag("gb"))
	assert.Equal(t, "", Flag("001"))
	assert.Equal(t, "", Flag("U1"))
	assert.Equal(t, "", Flag(""))
}

func TestRegions(t *testing.T) {
	entries := Regions(language.English, formatter.NewPhoneNumbers())
	require.NotEmpty(t, entries)

	d := Build(entries, Options{Locale: language.English})
	us, ok := d.Lookup("us")
	require.True(t, ok)
	assert.Equal(t, "United States", us.Primary)
	assert.Equal(t, "+1", us.Secondary)

	kz, ok := d.Lookup("KZ")
	require.True(t, ok)
	assert.Equal(t, "+7", kz.Secondary)

	for _, e := range entries {
		assert.Len(t, e.Key, 2)
		assert.NotEmpty(t, e.Primary)
	}
}
