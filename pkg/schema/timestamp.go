package schema

import "time"

// isoLayout is the canonical local timestamp format of the output document.
const isoLayout = "2006-01-02T15:04:05"

// stampLayouts are tried in order when parsing a timestamp cell. Short month
// and day layouts also accept their zero-padded forms.
var stampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
}

// Timestamp normalizes a date cell plus an optional time-of-day cell into a
// canonical "YYYY-MM-DDTHH:MM:SS" Text value. If the pair is unparseable the
// date cell is retried alone; any remaining failure yields Null. A Null date
// is Null regardless of the clock cell.
func Timestamp(date, clock Value) Value {
	if date.IsNull() {
		return Value{}
	}
	if !clock.IsNull() {
		if t, ok := parseStamp(date.String() + " " + clock.String()); ok {
			return Text(t.Format(isoLayout))
		}
	}
	if t, ok := parseStamp(date.String()); ok {
		return Text(t.Format(isoLayout))
	}
	return Value{}
}

func parseStamp(s string) (time.Time, bool) {
	for _, layout := range stampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
