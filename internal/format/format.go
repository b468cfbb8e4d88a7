// Package format holds the presentation conventions shared by the profile
// page, fun-fact generators, and snapshot output.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Hours renders decimal hours: whole values without a fraction ("41"),
// fractional values with exactly one decimal ("3.1"). Thousands are grouped.
func Hours(h float64) string {
	rounded := math.Round(h*10) / 10
	if rounded == math.Trunc(rounded) {
		return Count(int(rounded))
	}
	whole := math.Trunc(rounded)
	frac := math.Abs(rounded - whole)
	return fmt.Sprintf("%s.%d", Count(int(whole)), int(math.Round(frac*10)))
}

// HoursLabel renders hours with the "hrs" suffix used on fact cards,
// always with one decimal: "3.1 hrs", "41.0 hrs".
func HoursLabel(h float64) string {
	return fmt.Sprintf("%.1f hrs", h)
}

// Count renders an integer with comma-grouped thousands.
func Count(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
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
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// NauticalMiles renders a distance rounded to whole nautical miles.
func NauticalMiles(nm float64) string {
	return fmt.Sprintf("%s nm", Count(int(math.Round(nm))))
}

// Latitude renders a latitude as an absolute value with hemisphere suffix,
// e.g. "40.79°N" or "33.94°S". The equator renders as north.
func Latitude(lat float64) string {
	hemisphere := "N"
	if lat < 0 {
		hemisphere = "S"
	}
	return fmt.Sprintf("%.2f°%s", math.Abs(lat), hemisphere)
}
