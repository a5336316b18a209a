package scansite

// IndexEntry is one bucket in an inverted index: a canonical value and the
// distinct documents referencing it. Count is the number of distinct
// documents, not the number of mentions.
type IndexEntry struct {
	Name  string      `json:"name"`
	Docs  []*Document `json:"-"`
	Count int         `json:"count"`
}

// DateIndexEntry is a date bucket. NormalizedDate is the grouping key
// ("2010-02-03", "2005-00-00", or an unparseable raw string); Name is the
// display form.
type DateIndexEntry struct {
	Name           string      `json:"name"`
	NormalizedDate string      `json:"normalizedDate"`
	Docs           []*Document `json:"-"`
	Count          int         `json:"count"`
}

// Indexes holds the five derived index buckets. Entity and type buckets are
// ordered by descending document count; date buckets by descending
// normalized date, most recent first.
type Indexes struct {
	People        []IndexEntry     `json:"people"`
	Organizations []IndexEntry     `json:"organizations"`
	Locations     []IndexEntry     `json:"locations"`
	Dates         []DateIndexEntry `json:"dates"`
	DocumentTypes []IndexEntry     `json:"documentTypes"`
}

// Bucket returns the entity index for a mapped category, or nil for
// categories without an entity index.
func (ix *Indexes) Bucket(cat EntityCategory) []IndexEntry {
	switch cat {
	case People:
		return ix.People
	case Organizations:
		return ix.Organizations
	case Locations:
		return ix.Locations
	}
	return nil
}
