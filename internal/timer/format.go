package timer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format renders elapsed seconds as HH:MM:SS.ss.
// Minutes and hours come from floor division, so 59.999s renders as
// "00:00:60.00" rather than rolling over; the seconds field is rounded only
// for display. Negative and non-finite input renders as zero.
func Format(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		seconds = 0
	}
	minutes, secs := divmod(seconds, 60)
	hours, minutes := divmod(minutes, 60)
	return fmt.Sprintf("%s:%02.0f:%05.2f", groupThousands(hours), minutes, secs)
}

func divmod(x, y float64) (q, r float64) {
	q = math.Floor(x / y)
	r = x - q*y
	return q, r
}

// groupThousands formats a whole number of hours zero-padded to two digits
// with comma separators.
func groupThousands(h float64) string {
	s := strconv.FormatFloat(h, 'f', 0, 64)
	if len(s) < 2 {
		return "0" + s
	}
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
