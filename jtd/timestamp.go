package jtd

import "regexp"

// timestampRE matches an RFC 3339 date-time, case-insensitively on the
// T/Z separators, accepting the :60 leap-second encoding and any valid
// UTC offset (spec.md §4.3).
var timestampRE = regexp.MustCompile(
	`(?i)^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:([0-5]\d|60)(\.\d+)?(Z|[+-]\d{2}:\d{2})$`,
)

var monthDays = [...]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isValidTimestamp(s string) bool {
	if !timestampRE.MatchString(s) {
		return false
	}
	month := int(s[5]-'0')*10 + int(s[6]-'0')
	day := int(s[8]-'0')*10 + int(s[9]-'0')
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > monthDays[month-1] {
		return false
	}
	hour := int(s[11]-'0')*10 + int(s[12]-'0')
	return hour <= 23
}
