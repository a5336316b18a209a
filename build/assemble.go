package build

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/tkowalczyk/scansite"
)

// assembleDocuments groups pages into documents by normalized document
// number and derives each document's consolidated metadata, entity sets,
// and concatenated text. Every page lands in exactly one document; pages
// without a usable document number are grouped by normalized filename and
// counted in the returned fallback total.
func assembleDocuments(pages []*scansite.Page, canon *scansite.Canonicalizer, logger *slog.Logger) ([]*scansite.Document, int) {
	groups := make(map[string][]*scansite.Page)
	var order []string
	var fallback int

	for _, page := range pages {
		key := scansite.NormalizeDocNumber(page.Meta.DocumentNumber)
		if key == "" {
			// Filename fallback. A document number that normalizes to
			// nothing is treated the same as a missing one.
			key = scansite.NormalizeDocNumber(page.Filename)
			if key == "" {
				key = page.Filename
			}
			fallback++
			logger.Warn("page has no usable document number, grouping by filename",
				"path", page.Path,
				"key", key,
			)
		}

		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], page)
	}

	docs := make([]*scansite.Document, 0, len(order))
	for _, key := range order {
		docs = append(docs, assembleDocument(key, groups[key], canon))
	}

	sort.Slice(docs, func(i, j int) bool {
		if docs[i].DocumentNumber != docs[j].DocumentNumber {
			return docs[i].DocumentNumber < docs[j].DocumentNumber
		}
		return docs[i].Key < docs[j].Key
	})

	return docs, fallback
}

func assembleDocument(key string, pages []*scansite.Page, canon *scansite.Canonicalizer) *scansite.Document {
	// Ascending numeric page number; pages without one sort first. The sort
	// must be stable so equal page numbers keep their input order.
	sort.SliceStable(pages, func(i, j int) bool {
		return scansite.PageNum(pages[i].Meta.PageNumber) < scansite.PageNum(pages[j].Meta.PageNumber)
	})

	var rawNums, folders []string
	rawSeen := make(map[string]struct{})
	folderSeen := make(map[string]struct{})
	for _, page := range pages {
		if raw := page.Meta.DocumentNumber; raw != "" {
			if _, ok := rawSeen[raw]; !ok {
				rawSeen[raw] = struct{}{}
				rawNums = append(rawNums, raw)
			}
		}
		if _, ok := folderSeen[page.Folder]; !ok {
			folderSeen[page.Folder] = struct{}{}
			folders = append(folders, page.Folder)
		}
	}

	// Show the raw spelling only when every page agrees on it.
	displayNum := key
	if len(rawNums) == 1 {
		displayNum = rawNums[0]
	}

	texts := make([]string, len(pages))
	for i, page := range pages {
		texts[i] = page.FullText
	}

	meta := pages[0].Meta
	dateKey := scansite.NormalizeDate(meta.Date)
	if meta.DocumentType != "" {
		meta.DocumentType = canon.Type(meta.DocumentType)
	}
	if meta.Date != "" {
		meta.Date = scansite.FormatDate(dateKey)
	}

	return &scansite.Document{
		Key:                key,
		DocumentNumber:     displayNum,
		RawDocumentNumbers: rawNums,
		Pages:              pages,
		PageCount:          len(pages),
		Meta:               meta,
		DateKey:            dateKey,
		Entities:           mergeEntities(pages, canon),
		FullText:           strings.Join(texts, scansite.PageBreak),
		Folders:            folders,
	}
}

// mergeEntities unions each category's raw values across all pages, maps
// them through the canonicalizer, and deduplicates again after
// canonicalization so variant spellings collapse to one entry. Results are
// sorted, making the union independent of page order.
func mergeEntities(pages []*scansite.Page, canon *scansite.Canonicalizer) scansite.Entities {
	var merged scansite.Entities
	for _, cat := range scansite.Categories() {
		raw := make(map[string]struct{})
		for _, page := range pages {
			for _, v := range page.Entities.Category(cat) {
				raw[v] = struct{}{}
			}
		}

		canonical := make(map[string]struct{}, len(raw))
		for v := range raw {
			canonical[canon.Name(cat, v)] = struct{}{}
		}

		if len(canonical) == 0 {
			continue
		}
		values := make([]string, 0, len(canonical))
		for v := range canonical {
			values = append(values, v)
		}
		sort.Strings(values)
		merged.SetCategory(cat, values)
	}
	return merged
}
