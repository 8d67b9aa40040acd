// Package calendar renders the tracker's date header with its Hijri date.
//
// Dates covered by the Umm al-Qura tables (1937-2077) use them. Other dates
// fall back to the arithmetic calendar, which can differ by a day or two.
package calendar

import (
	"fmt"
	"time"

	"github.com/hablullah/go-hijri"
)

var monthNames = [12]string{
	"Muharram", "Safar", "Rabi al-Awwal", "Rabi al-Thani",
	"Jumada al-Ula", "Jumada al-Akhirah", "Rajab", "Shaban",
	"Ramadan", "Shawwal", "Dhu al-Qadah", "Dhu al-Hijjah",
}

// Hijri is a date in the Islamic calendar.
type Hijri struct {
	Year  int
	Month int // 1-12
	Day   int
}

func (h Hijri) MonthName() string {
	return monthNames[h.Month-1]
}

func (h Hijri) String() string {
	return fmt.Sprintf("%d %s %d AH", h.Day, h.MonthName(), h.Year)
}

// ToHijri converts the calendar date of t, read in t's own location.
// Dates before 622 CE have no Hijri date.
func ToHijri(t time.Time) (Hijri, error) {
	d := time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)

	if uq, err := hijri.CreateUmmAlQuraDate(d); err == nil {
		return Hijri{Year: int(uq.Year), Month: int(uq.Month), Day: int(uq.Day)}, nil
	}

	h, err := hijri.CreateHijriDate(d, hijri.Default)
	if err != nil {
		return Hijri{}, fmt.Errorf("convert %s to hijri: %w", d.Format(time.DateOnly), err)
	}
	return Hijri{Year: int(h.Year), Month: int(h.Month), Day: int(h.Day)}, nil
}

// Format renders the tracker's date header, e.g.
// "Saturday, 1 January 2000 - 24 Ramadan 1420 AH". The Hijri part is left
// out when the date has none.
func Format(t time.Time) string {
	s := t.Format("Monday, 2 January 2006")
	if h, err := ToHijri(t); err == nil {
		s += " - " + h.String()
	}
	return s
}
