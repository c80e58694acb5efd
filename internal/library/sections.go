// Package library groups a flat list of titles into the sections shown by the
// index bar.
package library

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Item is one browsable title.
type Item struct {
	ID        string
	Title     string
	SortTitle string // falls back to Title when empty
	Year      int    // 0 when unknown
}

func (it Item) sortKey() string {
	if s := strings.TrimSpace(it.SortTitle); s != "" {
		return s
	}
	return strings.TrimSpace(it.Title)
}

// GroupBy selects how items are split into sections.
type GroupBy string

const (
	GroupByLetter GroupBy = "letter"
	GroupByYear   GroupBy = "year"
)

// ParseGroupBy converts a config value. Unknown values group by letter.
func ParseGroupBy(s string) GroupBy {
	if strings.EqualFold(strings.TrimSpace(s), string(GroupByYear)) {
		return GroupByYear
	}
	return GroupByLetter
}

// Options controls Build.
type Options struct {
	GroupBy GroupBy
	// FullAlphabet emits "#" and A-Z even for letters with no titles.
	FullAlphabet bool
	// Language drives collation inside a section. Zero value means English.
	Language language.Tag
}

const (
	otherLabel       = "#"
	unknownYearLabel = "?"
)

// Section is a labelled run of items.
type Section struct {
	Label string
	Items []Item
}

// Row is one line of the flattened list: a section header or an item.
type Row struct {
	Section int
	Item    int // -1 for a header
}

// Header reports whether the row is a section header.
func (r Row) Header() bool { return r.Item < 0 }

// Index is the sectioned view of a library. Empty sections are kept so the
// label column stays stable; they have no header row.
type Index struct {
	Sections []Section

	rows    []Row
	offsets []int
}

// Build groups items into sections.
func Build(items []Item, opts Options) *Index {
	lang := opts.Language
	if lang == language.Und {
		lang = language.English
	}
	coll := collate.New(lang, collate.IgnoreCase, collate.Loose)

	var sections []Section
	switch opts.GroupBy {
	case GroupByYear:
		sections = groupByYear(items)
	default:
		sections = groupByLetter(items, opts.FullAlphabet, coll)
	}
	for i := range sections {
		its := sections[i].Items
		sort.SliceStable(its, func(a, b int) bool {
			return coll.CompareString(its[a].sortKey(), its[b].sortKey()) < 0
		})
	}

	idx := &Index{Sections: sections}
	idx.flatten()
	return idx
}

var folder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// SectionKey returns the letter section a title belongs to: its first letter
// with diacritics removed and upper-cased, or "#" when it does not start
// with a letter.
func SectionKey(title string) string {
	title = strings.TrimSpace(title)
	r, _ := utf8.DecodeRuneInString(title)
	if r == utf8.RuneError || !unicode.IsLetter(r) {
		return otherLabel
	}
	folded, _, err := transform.String(folder, string(r))
	if err != nil || folded == "" {
		folded = string(r)
	}
	// Upper-casing may expand a rune ("ß" to "SS"); the section is its first.
	upper := cases.Upper(language.Und).String(folded)
	first, _ := utf8.DecodeRuneInString(upper)
	return string(first)
}

func isLatinLetter(key string) bool {
	return len(key) == 1 && key[0] >= 'A' && key[0] <= 'Z'
}

func groupByLetter(items []Item, full bool, coll *collate.Collator) []Section {
	buckets := make(map[string][]Item)
	for _, it := range items {
		key := SectionKey(it.sortKey())
		buckets[key] = append(buckets[key], it)
	}

	var labels []string
	if full || len(buckets[otherLabel]) > 0 {
		labels = append(labels, otherLabel)
	}
	for c := 'A'; c <= 'Z'; c++ {
		key := string(c)
		if full || len(buckets[key]) > 0 {
			labels = append(labels, key)
		}
	}
	var extra []string
	for key := range buckets {
		if key != otherLabel && !isLatinLetter(key) {
			extra = append(extra, key)
		}
	}
	coll.SortStrings(extra)
	labels = append(labels, extra...)

	sections := make([]Section, len(labels))
	for i, l := range labels {
		sections[i] = Section{Label: l, Items: buckets[l]}
	}
	return sections
}

func yearLabel(year int) string {
	if year <= 0 {
		return unknownYearLabel
	}
	return fmt.Sprintf("%ds", year/10*10)
}

func groupByYear(items []Item) []Section {
	buckets := make(map[int][]Item)
	for _, it := range items {
		decade := -1
		if it.Year > 0 {
			decade = it.Year / 10 * 10
		}
		buckets[decade] = append(buckets[decade], it)
	}
	decades := make([]int, 0, len(buckets))
	for d := range buckets {
		if d >= 0 {
			decades = append(decades, d)
		}
	}
	sort.Ints(decades)
	if _, ok := buckets[-1]; ok {
		decades = append(decades, -1)
	}

	sections := make([]Section, len(decades))
	for i, d := range decades {
		sections[i] = Section{Label: yearLabel(d), Items: buckets[d]}
	}
	return sections
}

func (x *Index) flatten() {
	x.rows = x.rows[:0]
	x.offsets = make([]int, len(x.Sections))
	for s, sec := range x.Sections {
		x.offsets[s] = len(x.rows)
		if len(sec.Items) == 0 {
			continue
		}
		x.rows = append(x.rows, Row{Section: s, Item: -1})
		for i := range sec.Items {
			x.rows = append(x.rows, Row{Section: s, Item: i})
		}
	}
}

// SectionLabels returns the short label of every section.
func (x *Index) SectionLabels() []string {
	labels := make([]string, len(x.Sections))
	for i, s := range x.Sections {
		labels[i] = s.Label
	}
	return labels
}

// ExtendedTitles returns the preview text of every section, e.g. "A · 12 titles".
func (x *Index) ExtendedTitles() []string {
	titles := make([]string, len(x.Sections))
	for i, s := range x.Sections {
		titles[i] = s.Label + " · " + countLabel(len(s.Items))
	}
	return titles
}

func countLabel(n int) string {
	if n == 1 {
		return "1 title"
	}
	return fmt.Sprintf("%d titles", n)
}

// ItemCount returns the number of items in a section, 0 when out of range.
func (x *Index) ItemCount(section int) int {
	if section < 0 || section >= len(x.Sections) {
		return 0
	}
	return len(x.Sections[section].Items)
}

// Item returns the item at (section, item).
func (x *Index) Item(section, item int) (Item, bool) {
	if item < 0 || item >= x.ItemCount(section) {
		return Item{}, false
	}
	return x.Sections[section].Items[item], true
}

// Total is the number of items across all sections.
func (x *Index) Total() int {
	n := 0
	for _, s := range x.Sections {
		n += len(s.Items)
	}
	return n
}

// Len is the number of rows in the flattened list, headers included.
func (x *Index) Len() int { return len(x.rows) }

// Row returns the flattened row at i.
func (x *Index) Row(i int) Row { return x.rows[i] }

// RowIndex returns the flattened row of (section, item). The header row of a
// section is returned when item is negative. Empty or unknown sections map to
// the row where the next non-empty section starts.
func (x *Index) RowIndex(section, item int) int {
	if section < 0 {
		return 0
	}
	if section >= len(x.offsets) {
		return len(x.rows)
	}
	base := x.offsets[section]
	n := len(x.Sections[section].Items)
	if n == 0 {
		return base
	}
	if item < 0 {
		return base
	}
	if item >= n {
		item = n - 1
	}
	return base + 1 + item
}

// SectionAt returns the section owning row i, clamped to the list.
func (x *Index) SectionAt(i int) int {
	if len(x.rows) == 0 {
		return 0
	}
	if i < 0 {
		i = 0
	}
	if i >= len(x.rows) {
		i = len(x.rows) - 1
	}
	return x.rows[i].Section
}
