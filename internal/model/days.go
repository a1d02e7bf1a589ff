package model

import "strings"

// Weekdays is the fixed token set for attendance days, in week order.
var Weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var weekdaySet = func() map[string]bool {
	m := make(map[string]bool, len(Weekdays))
	for _, d := range Weekdays {
		m[d] = true
	}
	return m
}()

func ValidDay(token string) bool { return weekdaySet[token] }

// EncodeDays is the canonical wire encoding for the days column:
// tokens joined with ", ". An empty day list encodes as "".
func EncodeDays(days []string) string {
	return strings.Join(days, ", ")
}

// ParseDays decodes the days column. It accepts the canonical comma-joined
// form and the legacy bracket form "['Mon', 'Wed']" written by an older
// revision of the dashboard. Unknown tokens are dropped.
func ParseDays(s string) []string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		s = s[1 : len(s)-1]
	}
	if s == "" {
		return nil
	}
	var days []string
	for _, part := range strings.Split(s, ",") {
		token := strings.Trim(strings.TrimSpace(part), `'"`)
		if weekdaySet[token] {
			days = append(days, token)
		}
	}
	return days
}
