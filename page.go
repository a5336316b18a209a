package scansite

import "context"

// FolderRoot is the folder recorded for pages found at the top level of the
// scan directory.
const FolderRoot = "root"

// PageMeta holds the document metadata the vision model attached to a scan.
// Values are raw strings as extracted; an empty string means the field was
// absent. Absent, empty, and unparseable values intentionally collapse to
// the same state, matching the shape of the extraction output.
type PageMeta struct {
	DocumentNumber string            `json:"documentNumber,omitempty"`
	PageNumber     string            `json:"pageNumber,omitempty"`
	DocumentType   string            `json:"documentType,omitempty"`
	Date           string            `json:"date,omitempty"`
	Extra          map[string]string `json:"extra,omitempty"`
}

// Page represents one OCR'd scan. Identity is the source path; pages are
// immutable once loaded.
type Page struct {
	Path        string   `json:"path"`     // relative to the scan root
	Filename    string   `json:"filename"` // base name, extension stripped
	Folder      string   `json:"folder"`   // immediate containing folder, or FolderRoot
	Meta        PageMeta `json:"meta"`
	Entities    Entities `json:"entities"`
	FullText    string   `json:"-"`
	ContentHash string   `json:"contentHash"` // xxhash of FullText, hex
}

// LoadReport summarizes anomalies encountered during a directory scan.
// A non-empty report is not an error: the pipeline builds a best-effort
// corpus from whatever parsed.
type LoadReport struct {
	Loaded        int      `json:"loaded"`
	Skipped       []string `json:"skipped,omitempty"`       // files that failed to parse
	DuplicateText []string `json:"duplicateText,omitempty"` // pages whose text duplicates an earlier page
}

// PageLoader discovers and parses page records from a directory tree.
// A parse failure for one file never aborts the scan; failed files are
// recorded in the report and skipped.
type PageLoader interface {
	LoadPages(ctx context.Context, dir string) ([]*Page, *LoadReport, error)
}
