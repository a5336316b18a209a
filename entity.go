package scansite

import "strings"

// EntityCategory identifies one of the per-page entity lists extracted by
// the vision model.
type EntityCategory string

// Entity categories.
const (
	People           EntityCategory = "people"
	Organizations    EntityCategory = "organizations"
	Locations        EntityCategory = "locations"
	Dates            EntityCategory = "dates"
	ReferenceNumbers EntityCategory = "reference_numbers"
)

// Categories lists every entity category in display order.
func Categories() []EntityCategory {
	return []EntityCategory{People, Organizations, Locations, Dates, ReferenceNumbers}
}

// MappedCategories lists the categories covered by the external
// entity-dedupe mapping file.
func MappedCategories() []EntityCategory {
	return []EntityCategory{People, Organizations, Locations}
}

// Entities holds the entity lists for a page or document. On a page the
// values are raw extraction output; on a document they are canonicalized
// and deduplicated.
type Entities struct {
	People           []string `json:"people,omitempty"`
	Organizations    []string `json:"organizations,omitempty"`
	Locations        []string `json:"locations,omitempty"`
	Dates            []string `json:"dates,omitempty"`
	ReferenceNumbers []string `json:"referenceNumbers,omitempty"`
}

// Category returns the list for the given category.
func (e *Entities) Category(cat EntityCategory) []string {
	switch cat {
	case People:
		return e.People
	case Organizations:
		return e.Organizations
	case Locations:
		return e.Locations
	case Dates:
		return e.Dates
	case ReferenceNumbers:
		return e.ReferenceNumbers
	}
	return nil
}

// SetCategory replaces the list for the given category.
func (e *Entities) SetCategory(cat EntityCategory, values []string) {
	switch cat {
	case People:
		e.People = values
	case Organizations:
		e.Organizations = values
	case Locations:
		e.Locations = values
	case Dates:
		e.Dates = values
	case ReferenceNumbers:
		e.ReferenceNumbers = values
	}
}

// EntityMappings holds the externally-produced raw name → canonical name
// mappings for the three mapped categories. A nil or partially-populated
// value is valid: missing mappings fall back to identity.
type EntityMappings struct {
	People        map[string]string `json:"people"`
	Organizations map[string]string `json:"organizations"`
	Locations     map[string]string `json:"locations"`
}

// Category returns the mapping for the given category, or nil.
func (m *EntityMappings) Category(cat EntityCategory) map[string]string {
	if m == nil {
		return nil
	}
	switch cat {
	case People:
		return m.People
	case Organizations:
		return m.Organizations
	case Locations:
		return m.Locations
	}
	return nil
}

// Canonicalizer resolves raw entity names and document types to their
// canonical forms using externally-supplied mappings. With empty mappings
// every lookup degrades to identity, so the pipeline works without the
// dedupe batch jobs having run.
//
// The same Canonicalizer instance must be used at assembly time and at
// index-building time; applying it in only one place would let a raw name
// land in a different index bucket than the document's own entity list shows.
type Canonicalizer struct {
	entities *EntityMappings
	types    map[string]string
}

// NewCanonicalizer creates a Canonicalizer. Both arguments may be nil.
func NewCanonicalizer(entities *EntityMappings, types map[string]string) *Canonicalizer {
	return &Canonicalizer{entities: entities, types: types}
}

// Name returns the canonical form of a raw entity name, or the raw name
// unchanged when no mapping exists.
func (c *Canonicalizer) Name(cat EntityCategory, raw string) string {
	if m := c.entities.Category(cat); m != nil {
		if canonical, ok := m[raw]; ok {
			return canonical
		}
	}
	return raw
}

// Type returns the canonical display form of a raw document type, or the
// trimmed raw value when no mapping exists. Mappings are expected to carry
// correct display casing already.
func (c *Canonicalizer) Type(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if canonical, ok := c.types[trimmed]; ok {
		return canonical
	}
	return trimmed
}

// TypeKey returns the normalized grouping key for a raw document type:
// the canonical form, lowercased and trimmed.
func (c *Canonicalizer) TypeKey(raw string) string {
	return strings.ToLower(strings.TrimSpace(c.Type(raw)))
}

// FormatType returns the display form of a canonical document type, or
// "Unknown" when absent.
func FormatType(display string) string {
	if display == "" {
		return "Unknown"
	}
	return display
}
