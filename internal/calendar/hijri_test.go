package calendar

import (
	"strings"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestToHijri(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want Hijri
	}{
		{"millennium", date(2000, time.January, 1), Hijri{1420, 9, 24}},
		{"ramadan 1445", date(2024, time.March, 11), Hijri{1445, 9, 1}},
		{"ramadan 1446", date(2025, time.March, 1), Hijri{1446, 9, 1}},
		{"ramadan 1447", date(2026, time.February, 18), Hijri{1447, 9, 1}},
		// The arithmetic calendar puts this day on the 6th.
		{"umm al-qura table", date(2026, time.October, 18), Hijri{1448, 5, 7}},
		{"first table day", date(1937, time.March, 14), Hijri{1356, 1, 1}},
		{"arithmetic after table", date(2100, time.January, 1), Hijri{1523, 10, 19}},
		{"arithmetic before table", date(1900, time.January, 1), Hijri{1317, 8, 28}},
		// Dates before 1582 are read as Julian calendar dates.
		{"epoch", date(622, time.July, 16), Hijri{1, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToHijri(tt.in)
			if err != nil {
				t.Fatalf("ToHijri(%s): %v", tt.in.Format(time.DateOnly), err)
			}
			if got != tt.want {
				t.Errorf("ToHijri(%s) = %+v, want %+v", tt.in.Format(time.DateOnly), got, tt.want)
			}
		})
	}
}

func TestToHijriBeforeEpoch(t *testing.T) {
	if h, err := ToHijri(date(600, time.January, 1)); err == nil {
		t.Errorf("ToHijri(600-01-01) = %+v, want error", h)
	}
}

func TestToHijriUsesOwnLocation(t *testing.T) {
	kiritimati := time.FixedZone("LINT", 14*60*60)
	in := time.Date(2000, time.January, 1, 5, 0, 0, 0, kiritimati)

	got, err := ToHijri(in)
	if err != nil {
		t.Fatal(err)
	}
	if want := (Hijri{1420, 9, 24}); got != want {
		t.Errorf("ToHijri = %+v, want %+v", got, want)
	}
}

func TestToHijriMonotonic(t *testing.T) {
	prev, err := ToHijri(date(2024, time.January, 1))
	if err != nil {
		t.Fatal(err)
	}
	for d := date(2024, time.January, 2); d.Year() < 2027; d = d.AddDate(0, 0, 1) {
		h, err := ToHijri(d)
		if err != nil {
			t.Fatalf("%s: %v", d.Format(time.DateOnly), err)
		}
		switch {
		case h.Year == prev.Year && h.Month == prev.Month:
			if h.Day != prev.Day+1 {
				t.Fatalf("%s: day %d after %d", d.Format(time.DateOnly), h.Day, prev.Day)
			}
		case h.Day != 1:
			t.Fatalf("%s: new month starts on day %d", d.Format(time.DateOnly), h.Day)
		case prev.Day < 29 || prev.Day > 30:
			t.Fatalf("%s: previous month had %d days", d.Format(time.DateOnly), prev.Day)
		}
		prev = h
	}
}

func TestHijriString(t *testing.T) {
	h := Hijri{Year: 1420, Month: 9, Day: 24}
	if got := h.String(); got != "24 Ramadan 1420 AH" {
		t.Errorf("String = %q", got)
	}
}

func TestFormat(t *testing.T) {
	got := Format(date(2000, time.January, 1))
	want := "Saturday, 1 January 2000 - 24 Ramadan 1420 AH"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormatWithoutHijri(t *testing.T) {
	got := Format(date(600, time.January, 1))
	if strings.Contains(got, "AH") || !strings.HasSuffix(got, "January 0600") {
		t.Errorf("Format = %q, want the Gregorian date only", got)
	}
}
