package core

import (
	"fmt"
	"math"
)

// ZeroDuration is the canonical rendering of zero worked hours.
const ZeroDuration = "0 giờ 0 phút"

// FormatDuration renders a numeric hour count as the Vietnamese
// "H giờ M phút" string used everywhere hours are displayed. Whole hours
// omit the minutes part; durations under one hour omit the hours part.
func FormatDuration(hours float64) string {
	if hours <= 0 {
		return ZeroDuration
	}

	h := int(hours)
	m := int(math.Round((hours - float64(h)) * 60))
	if m == 60 {
		h++
		m = 0
	}

	switch {
	case h > 0 && m == 0:
		return fmt.Sprintf("%d giờ", h)
	case h == 0:
		return fmt.Sprintf("%d phút", m)
	default:
		return fmt.Sprintf("%d giờ %d phút", h, m)
	}
}
