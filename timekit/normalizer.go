package timekit

import (
	"fmt"
	"time"
)

// HoChiMinhTZ is the civil timezone every timestamp in the system is pinned
// to. A fixed offset avoids DST surprises and keeps comparisons stable no
// matter which host the process runs on.
var HoChiMinhTZ = time.FixedZone("UTC+7", 7*60*60)

const (
	dateLayout     = "2006-01-02"
	displayLayout  = "02/01/2006"
	clockLayout    = "15:04"
	dateTimeLayout = "2006-01-02T15:04:05"
)

// Normalizer converts arbitrary timestamp representations into civil time
// and owns all date comparison and formatting. No other package does raw
// timestamp arithmetic on store data.
type Normalizer struct {
	loc *time.Location
}

func NewNormalizer(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = HoChiMinhTZ
	}
	return &Normalizer{loc: loc}
}

func (n *Normalizer) Location() *time.Location {
	return n.loc
}

func (n *Normalizer) Now() time.Time {
	return time.Now().In(n.loc)
}

// ToCivilTime accepts a time.Time, epoch milliseconds or a timestamp string
// and shifts it into the civil zone. Unparseable input yields the current
// civil time: callers treat a missing time as "now" for display purposes,
// so this deliberately never fails. Do not turn this into an error return
// without revisiting every caller.
func (n *Normalizer) ToCivilTime(value any) time.Time {
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return n.Now()
		}
		return v.In(n.loc)
	case *time.Time:
		if v == nil || v.IsZero() {
			return n.Now()
		}
		return v.In(n.loc)
	case int64:
		return time.UnixMilli(v).In(n.loc)
	case int:
		return time.UnixMilli(int64(v)).In(n.loc)
	case float64:
		return time.UnixMilli(int64(v)).In(n.loc)
	case string:
		if t, err := n.parseString(v); err == nil {
			return t
		}
		return n.Now()
	default:
		return n.Now()
	}
}

// IsValidDate reports whether the value parses into a usable timestamp
// without the fail-open fallback kicking in.
func (n *Normalizer) IsValidDate(value any) bool {
	switch v := value.(type) {
	case time.Time:
		return !v.IsZero()
	case *time.Time:
		return v != nil && !v.IsZero()
	case int64, int, float64:
		return true
	case string:
		_, err := n.parseString(v)
		return err == nil
	default:
		return false
	}
}

func (n *Normalizer) parseString(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty time string")
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(n.loc), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(n.loc), nil
	}

	// Formats without an offset are taken as already being civil time.
	layouts := []string{
		dateTimeLayout,
		"2006-01-02 15:04:05",
		dateLayout,
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, n.loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("failed to parse time: %v", s)
}

// ParseDate is the strict counterpart used by validation paths: a
// YYYY-MM-DD string or an error, no fallback.
func (n *Normalizer) ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, n.loc)
}

// FormatDate renders DD/MM/YYYY for user-facing output.
func (n *Normalizer) FormatDate(t time.Time) string {
	return t.In(n.loc).Format(displayLayout)
}

// FormatTime renders HH:MM.
func (n *Normalizer) FormatTime(t time.Time) string {
	return t.In(n.loc).Format(clockLayout)
}

// DateString renders the YYYY-MM-DD day bucket used as grouping key.
func (n *Normalizer) DateString(t time.Time) string {
	return t.In(n.loc).Format(dateLayout)
}

func (n *Normalizer) truncateToDay(t time.Time) time.Time {
	t = t.In(n.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, n.loc)
}

// IsBefore compares at day granularity.
func (n *Normalizer) IsBefore(a, b time.Time) bool {
	return n.truncateToDay(a).Before(n.truncateToDay(b))
}

// IsAfter compares at day granularity.
func (n *Normalizer) IsAfter(a, b time.Time) bool {
	return n.truncateToDay(a).After(n.truncateToDay(b))
}

// DaysBetween returns whole calendar days from a to b, negative when b is
// earlier.
func (n *Normalizer) DaysBetween(a, b time.Time) int {
	from := n.truncateToDay(a)
	to := n.truncateToDay(b)
	return int(to.Sub(from).Hours() / 24)
}
