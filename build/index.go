package build

import (
	"sort"

	"github.com/tkowalczyk/scansite"
)

// accumulator collects documents per bucket key in first-seen key order,
// deduplicating each bucket's document list by document key.
type accumulator struct {
	order []string
	docs  map[string][]*scansite.Document
	seen  map[string]map[string]struct{}
}

func newAccumulator() *accumulator {
	return &accumulator{
		docs: make(map[string][]*scansite.Document),
		seen: make(map[string]map[string]struct{}),
	}
}

func (a *accumulator) add(key string, doc *scansite.Document) {
	members, ok := a.seen[key]
	if !ok {
		a.order = append(a.order, key)
		members = make(map[string]struct{})
		a.seen[key] = members
	}
	if _, dup := members[doc.Key]; dup {
		return
	}
	members[doc.Key] = struct{}{}
	a.docs[key] = append(a.docs[key], doc)
}

// buildIndexes derives the five inverted indices from the assembled
// documents. Names are passed through the canonicalizer here as well as at
// assembly time, so a raw spelling can never land in a different bucket
// than the document's own entity list shows.
func buildIndexes(docs []*scansite.Document, canon *scansite.Canonicalizer) scansite.Indexes {
	return scansite.Indexes{
		People:        entityIndex(docs, canon, scansite.People),
		Organizations: entityIndex(docs, canon, scansite.Organizations),
		Locations:     entityIndex(docs, canon, scansite.Locations),
		Dates:         dateIndex(docs),
		DocumentTypes: typeIndex(docs, canon),
	}
}

func entityIndex(docs []*scansite.Document, canon *scansite.Canonicalizer, cat scansite.EntityCategory) []scansite.IndexEntry {
	acc := newAccumulator()
	for _, doc := range docs {
		for _, name := range doc.Entities.Category(cat) {
			acc.add(canon.Name(cat, name), doc)
		}
	}

	entries := make([]scansite.IndexEntry, 0, len(acc.order))
	for _, name := range acc.order {
		entries = append(entries, scansite.IndexEntry{
			Name:  name,
			Docs:  acc.docs[name],
			Count: len(acc.docs[name]),
		})
	}

	sortByCount(entries)
	return entries
}

func typeIndex(docs []*scansite.Document, canon *scansite.Canonicalizer) []scansite.IndexEntry {
	acc := newAccumulator()
	display := make(map[string]string)
	for _, doc := range docs {
		key := canon.TypeKey(doc.Meta.DocumentType)
		if _, ok := display[key]; !ok {
			display[key] = scansite.FormatType(doc.Meta.DocumentType)
		}
		acc.add(key, doc)
	}

	entries := make([]scansite.IndexEntry, 0, len(acc.order))
	for _, key := range acc.order {
		entries = append(entries, scansite.IndexEntry{
			Name:  display[key],
			Docs:  acc.docs[key],
			Count: len(acc.docs[key]),
		})
	}

	sortByCount(entries)
	return entries
}

// dateIndex groups by the normalized date key, not the display string, so a
// bare "2005" never merges with "2005-01-01". Ordering is by descending
// normalized key: recency, not frequency, is the natural order for dates.
func dateIndex(docs []*scansite.Document) []scansite.DateIndexEntry {
	acc := newAccumulator()
	for _, doc := range docs {
		for _, raw := range doc.Entities.Dates {
			acc.add(scansite.NormalizeDate(raw), doc)
		}
	}

	entries := make([]scansite.DateIndexEntry, 0, len(acc.order))
	for _, key := range acc.order {
		entries = append(entries, scansite.DateIndexEntry{
			Name:           scansite.FormatDate(key),
			NormalizedDate: key,
			Docs:           acc.docs[key],
			Count:          len(acc.docs[key]),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].NormalizedDate > entries[j].NormalizedDate
	})
	return entries
}

func sortByCount(entries []scansite.IndexEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Name < entries[j].Name
	})
}
