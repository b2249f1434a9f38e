package service

import (
	"regexp"
	"time"
)

// Sheet exports carry dates as DD/MM/YYYY with an optional time part; API
// sources use ISO-8601. dmyPattern matches the sheet form.
var dmyPattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})(?:[ T](\d{1,2}):(\d{2})(?::(\d{2}))?)?$`)

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseSubmissionDate resolves a raw date string from a submission record.
// Day-first sheet dates take precedence over ISO forms so 03/04/2025 reads
// as 3 April, not 4 March.
func ParseSubmissionDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	if m := dmyPattern.FindStringSubmatch(raw); m != nil {
		day, month, year := atoi(m[1]), atoi(m[2]), atoi(m[3])
		hour, min, sec := atoi(m[4]), atoi(m[5]), atoi(m[6])
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return time.Time{}, false
		}
		return time.Date(year, time.Month(month), day, hour, min, sec, 0, time.UTC), true
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}
