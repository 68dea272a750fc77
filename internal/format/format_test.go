package format

import (
	"testing"
	"time"
)

func TestFileSize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		bytes int64
		want  string
	}{
		{0, "0 Bytes"},
		{1, "1 Bytes"},
		{512, "512 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{2048, "2 KB"},
		{1048576, "1 MB"},
		{1572864, "1.5 MB"},
		{1073741824, "1 GB"},
		{1234567, "1.18 MB"},
		// Beyond GB the scale stops at GB.
		{2199023255552, "2048 GB"},
	}

	for _, tc := range cases {
		if got := FileSize(tc.bytes); got != tc.want {
			t.Errorf("FileSize(%d) = %q, want %q", tc.bytes, got, tc.want)
		}
	}
}

func TestDateTime(t *testing.T) {
	t.Parallel()
	ts := time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)
	if got := DateTime(ts); got != "Jan 15, 2024, 02:30 PM" {
		t.Errorf("DateTime = %q", got)
	}
}

func TestDate(t *testing.T) {
	t.Parallel()
	if got := Date("2024-01-15"); got != "Jan 15, 2024" {
		t.Errorf("Date = %q", got)
	}
	if got := Date("not-a-date"); got != "not-a-date" {
		t.Errorf("malformed input should pass through, got %q", got)
	}
}

func TestPercent(t *testing.T) {
	t.Parallel()
	cases := []struct {
		score float64
		want  string
	}{
		{0.95, "95% match"},
		{0.87, "87% match"},
		{0.684, "68% match"},
		{1, "100% match"},
	}
	for _, tc := range cases {
		if got := Percent(tc.score); got != tc.want {
			t.Errorf("Percent(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestPlural(t *testing.T) {
	t.Parallel()
	if got := Plural(1, "document"); got != "document" {
		t.Errorf("Plural(1) = %q", got)
	}
	if got := Plural(2, "document"); got != "documents" {
		t.Errorf("Plural(2) = %q", got)
	}
	if got := Plural(0, "result"); got != "results" {
		t.Errorf("Plural(0) = %q", got)
	}
}
