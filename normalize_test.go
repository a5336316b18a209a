package scansite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tkowalczyk/scansite"
)

func TestNormalizeDocNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "already normalized", raw: "doc-12-a", want: "doc-12-a"},
		{name: "lowercases", raw: "DOC-12-A", want: "doc-12-a"},
		{name: "punctuation becomes hyphens", raw: "Doc #12-A", want: "doc-12-a"},
		{name: "spaces become hyphens", raw: "DOC 12 A", want: "doc-12-a"},
		{name: "collapses hyphen runs", raw: "doc -- 12", want: "doc-12"},
		{name: "trims leading and trailing", raw: "  (Doc 12)  ", want: "doc-12"},
		{name: "empty input", raw: "", want: ""},
		{name: "only punctuation", raw: "###", want: ""},
		{name: "unicode letters collapse", raw: "exposé 12", want: "expos-12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, scansite.NormalizeDocNumber(tt.raw))
		})
	}

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"Doc #12-A", "DOC 12 A", "scan_042", "Exhibit (B)"} {
			once := scansite.NormalizeDocNumber(raw)
			assert.Equal(t, once, scansite.NormalizeDocNumber(once), "input %q", raw)
		}
	})

	t.Run("variants that normalize equal share a key", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t,
			scansite.NormalizeDocNumber("DOC-12 A"),
			scansite.NormalizeDocNumber("doc12a"),
		)
	})
}

func TestNormalizeDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "iso passes through", raw: "2010-02-03", want: "2010-02-03"},
		{name: "bare year", raw: "2005", want: "2005-00-00"},
		{name: "full month name", raw: "February 3, 2010", want: "2010-02-03"},
		{name: "abbreviated month", raw: "Feb 3, 2010", want: "2010-02-03"},
		{name: "abbreviated with period", raw: "Feb. 3, 2010", want: "2010-02-03"},
		{name: "case insensitive month", raw: "FEBRUARY 3, 2010", want: "2010-02-03"},
		{name: "day first", raw: "3 February 2010", want: "2010-02-03"},
		{name: "year slash", raw: "2010/2/3", want: "2010-02-03"},
		{name: "year dot", raw: "2010.02.03", want: "2010-02-03"},
		{name: "us slash", raw: "2/3/2010", want: "2010-02-03"},
		{name: "us dot", raw: "02.03.2010", want: "2010-02-03"},
		{name: "sept abbreviation", raw: "Sept 9, 1999", want: "1999-09-09"},
		{name: "unparseable passes through", raw: "sometime in spring", want: "sometime in spring"},
		{name: "unknown month passes through", raw: "Smarch 1, 2010", want: "Smarch 1, 2010"},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, scansite.NormalizeDate(tt.raw))
		})
	}

	t.Run("distinct unparseable dates stay distinct", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t,
			scansite.NormalizeDate("early 2002"),
			scansite.NormalizeDate("late 2002"),
		)
	})
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
		want string
	}{
		{name: "year only sentinel", key: "2005-00-00", want: "2005"},
		{name: "full date", key: "2005-02-15", want: "February 15, 2005"},
		{name: "strips leading zero day", key: "2010-02-03", want: "February 3, 2010"},
		{name: "unparseable passes through", key: "sometime in spring", want: "sometime in spring"},
		{name: "empty", key: "", want: "Unknown Date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, scansite.FormatDate(tt.key))
		})
	}

	t.Run("round trip through normalize", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "February 3, 2010", scansite.FormatDate(scansite.NormalizeDate("Feb 3, 2010")))
		assert.Equal(t, "2005", scansite.FormatDate(scansite.NormalizeDate("2005")))
	})
}

func TestPageNum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "plain number", raw: "14", want: 14},
		{name: "page of total", raw: "24 of 66", want: 24},
		{name: "page slash total", raw: "24/66", want: 24},
		{name: "prefixed", raw: "Page 7", want: 7},
		{name: "missing", raw: "", want: 0},
		{name: "non numeric", raw: "unknown", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, scansite.PageNum(tt.raw))
		})
	}
}
