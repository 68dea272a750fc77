// Package format holds the presentation-layer derivations shared by every
// call site that renders document metadata. Sizes and dates are always
// recomputed from the stored fields, never cached on the records.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FileSize renders a byte count with binary-prefix scaling (base 1024) and
// two-decimal rounding, trimming trailing zeros: 2048 -> "2 KB",
// 1536 -> "1.5 KB".
func FileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	exp := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if exp >= len(sizeUnits) {
		exp = len(sizeUnits) - 1
	}
	value := float64(bytes) / math.Pow(1024, float64(exp))
	s := strconv.FormatFloat(round2(value), 'f', -1, 64)
	return s + " " + sizeUnits[exp]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DateTime renders an upload timestamp the way the document cards show it,
// e.g. "Jan 15, 2024, 02:30 PM".
func DateTime(t time.Time) string {
	return t.Format("Jan 2, 2006, 03:04 PM")
}

// Date renders a date-only string, e.g. "Jan 15, 2024". Inputs are the
// backend's ISO date strings; malformed values pass through unchanged.
func Date(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("Jan 2, 2006")
}

// Percent renders a 0..1 relevance score as a rounded percentage, e.g.
// 0.95 -> "95% match".
func Percent(score float64) string {
	return fmt.Sprintf("%d%% match", int(math.Round(score*100)))
}

// Plural appends "s" to a noun unless count is exactly one.
func Plural(count int, noun string) string {
	if count == 1 {
		return noun
	}
	if strings.HasSuffix(noun, "s") {
		return noun
	}
	return noun + "s"
}
