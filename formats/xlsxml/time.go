package xlsxml

import "time"

// parseDateTime accepts the xls-xml DateTime text shape, an
// RFC3339-like timestamp without a zone offset
// ("2021-01-02T03:04:05.000").
func parseDateTime(s string) (year, month, day, hour, minute, second int, ok bool) {
	for _, layout := range []string{"2006-01-02T15:04:05.000", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second(), true
		}
	}
	return 0, 0, 0, 0, 0, 0, false
}
