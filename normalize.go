package scansite

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// NormalizeDocNumber derives the stable grouping key for a raw document
// number: lowercase, every character outside [a-z0-9-] replaced with a
// hyphen, runs collapsed, leading/trailing hyphens trimmed. Returns "" for
// absent or effectively-empty input, in which case the caller must fall
// back to another key source.
//
// Two raw spellings group together iff they normalize identically, which is
// what re-merges documents whose numbers the vision model transcribed
// inconsistently ("Doc #12-A" vs "DOC 12 A").
func NormalizeDocNumber(raw string) string {
	var sb strings.Builder
	prevHyphen := true // suppress leading hyphens

	for _, r := range strings.ToLower(raw) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
			prevHyphen = false
		} else if !prevHyphen {
			sb.WriteRune('-')
			prevHyphen = true
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}

var (
	isoDateRe   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	yearOnlyRe  = regexp.MustCompile(`^\d{4}$`)
	monthDayRe  = regexp.MustCompile(`^([A-Za-z]+)\.?\s+(\d{1,2}),?\s+(\d{4})$`)
	dayMonthRe  = regexp.MustCompile(`^(\d{1,2})\s+([A-Za-z]+)\.?,?\s+(\d{4})$`)
	yearFirstRe = regexp.MustCompile(`^(\d{4})[/.](\d{1,2})[/.](\d{1,2})$`)
	usSlashRe   = regexp.MustCompile(`^(\d{1,2})[/.](\d{1,2})[/.](\d{4})$`)
	firstIntRe  = regexp.MustCompile(`\d+`)
)

// months maps lowercase month names to their zero-padded numbers.
var months = map[string]string{
	"january": "01", "february": "02", "march": "03", "april": "04",
	"may": "05", "june": "06", "july": "07", "august": "08",
	"september": "09", "october": "10", "november": "11", "december": "12",
}

// monthNumber resolves a month token (full name or abbreviation of at least
// three letters) against the month table. Returns "" when unrecognized.
func monthNumber(token string) string {
	t := strings.ToLower(token)
	if n, ok := months[t]; ok {
		return n
	}
	if len(t) < 3 {
		return ""
	}
	for name, n := range months {
		if strings.HasPrefix(name, t) {
			return n
		}
	}
	return ""
}

// NormalizeDate canonicalizes a raw date string to a sortable key. It is a
// total function: recognized formats become "YYYY-MM-DD" (with "YYYY-00-00"
// as the year-only sentinel), everything else passes through unchanged and
// serves as its own grouping key. Slash and dot numeric dates are read as
// US month-first; day-first input like "03/04/2005" is indistinguishable
// and will be misread, a known limitation inherited from the source data.
func NormalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	if isoDateRe.MatchString(s) {
		return s
	}
	if yearOnlyRe.MatchString(s) {
		return s + "-00-00"
	}
	if m := monthDayRe.FindStringSubmatch(s); m != nil {
		if month := monthNumber(m[1]); month != "" {
			return fmt.Sprintf("%s-%s-%02d", m[3], month, atoi(m[2]))
		}
	}
	if m := dayMonthRe.FindStringSubmatch(s); m != nil {
		if month := monthNumber(m[2]); month != "" {
			return fmt.Sprintf("%s-%s-%02d", m[3], month, atoi(m[1]))
		}
	}
	if m := yearFirstRe.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s-%02d-%02d", m[1], atoi(m[2]), atoi(m[3]))
	}
	if m := usSlashRe.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s-%02d-%02d", m[3], atoi(m[1]), atoi(m[2]))
	}

	return raw
}

// monthNames indexes display names by zero-padded month number.
var monthNames = map[string]string{
	"01": "January", "02": "February", "03": "March", "04": "April",
	"05": "May", "06": "June", "07": "July", "08": "August",
	"09": "September", "10": "October", "11": "November", "12": "December",
}

// FormatDate renders a normalized date key for display: year-only sentinels
// become the bare year, full ISO keys become "Month D, YYYY", anything else
// passes through unchanged, and empty input becomes "Unknown Date".
func FormatDate(key string) string {
	if key == "" {
		return "Unknown Date"
	}
	if strings.HasSuffix(key, "-00-00") && yearOnlyRe.MatchString(key[:4]) && len(key) == 10 {
		return key[:4]
	}
	if !isoDateRe.MatchString(key) {
		return key
	}

	name, ok := monthNames[key[5:7]]
	if !ok {
		return key
	}
	day, err := strconv.Atoi(key[8:10])
	if err != nil || day == 0 {
		return key
	}
	return fmt.Sprintf("%s %d, %s", name, day, key[:4])
}

// atoi converts a digits-only regexp capture; captures are guaranteed numeric.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// PageNum extracts the sort key from a raw page-number string: the first
// run of digits ("24 of 66" → 24, "24/66" → 24), or 0 when missing or
// non-numeric. The zero default makes unnumbered pages sort first.
func PageNum(raw string) int {
	m := firstIntRe.FindString(raw)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}
