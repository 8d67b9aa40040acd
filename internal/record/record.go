// Package record models the daily tracker record and talks to the record
// backend over HTTP.
package record

import (
	"fmt"
	"math"
)

// Record is one day of the tracker, as served by GET /records/{date}.
type Record struct {
	Date string `json:"date"`

	Fajr    bool `json:"fajr"`
	Dhuhr   bool `json:"dhuhr"`
	Asr     bool `json:"asr"`
	Maghrib bool `json:"maghrib"`
	Isha    bool `json:"isha"`

	FajrSunnah    bool `json:"fajr_sunnah"`
	DhuhrSunnah   bool `json:"dhuhr_sunnah"`
	MaghribSunnah bool `json:"maghrib_sunnah"`
	IshaSunnah    bool `json:"isha_sunnah"`

	Taraweeh    bool `json:"taraweeh"`
	ShafAndWitr bool `json:"shaf_and_witr"`
	Qiyam       bool `json:"qiyam"`

	QuranReading bool    `json:"quran_reading"`
	JuzRead      *string `json:"juz_read"`

	MorningAdhkar  bool `json:"morning_adhkar"`
	EveningAdhkar  bool `json:"evening_adhkar"`
	DuaBeforeIftar bool `json:"dua_before_iftar"`

	AIStudySession bool `json:"ai_study_session"`

	DailyJournal         *string  `json:"daily_journal"`
	SentimentScore       *float64 `json:"sentiment_score"`
	AIEncouragingMessage *string  `json:"ai_encouraging_message"`
}

// Group is a section of the tracker form.
type Group string

const (
	GroupFard   Group = "Fard prayers"
	GroupSunnah Group = "Sunnah prayers"
	GroupNight  Group = "Night prayers"
	GroupQuran  Group = "Quran"
	GroupAdhkar Group = "Adhkar"
	GroupStudy  Group = "Productivity"
)

// Field describes one checkbox of the tracker form.
type Field struct {
	Name  string
	Label string
	Group Group
	ptr   func(*Record) *bool
}

// Fields lists the boolean fields in display order.
var Fields = []Field{
	{"fajr", "Fajr", GroupFard, func(r *Record) *bool { return &r.Fajr }},
	{"dhuhr", "Dhuhr", GroupFard, func(r *Record) *bool { return &r.Dhuhr }},
	{"asr", "Asr", GroupFard, func(r *Record) *bool { return &r.Asr }},
	{"maghrib", "Maghrib", GroupFard, func(r *Record) *bool { return &r.Maghrib }},
	{"isha", "Isha", GroupFard, func(r *Record) *bool { return &r.Isha }},

	{"fajr_sunnah", "Fajr sunnah", GroupSunnah, func(r *Record) *bool { return &r.FajrSunnah }},
	{"dhuhr_sunnah", "Dhuhr sunnah", GroupSunnah, func(r *Record) *bool { return &r.DhuhrSunnah }},
	{"maghrib_sunnah", "Maghrib sunnah", GroupSunnah, func(r *Record) *bool { return &r.MaghribSunnah }},
	{"isha_sunnah", "Isha sunnah", GroupSunnah, func(r *Record) *bool { return &r.IshaSunnah }},

	{"taraweeh", "Taraweeh", GroupNight, func(r *Record) *bool { return &r.Taraweeh }},
	{"shaf_and_witr", "Shaf & witr", GroupNight, func(r *Record) *bool { return &r.ShafAndWitr }},
	{"qiyam", "Qiyam", GroupNight, func(r *Record) *bool { return &r.Qiyam }},

	{"quran_reading", "Quran reading", GroupQuran, func(r *Record) *bool { return &r.QuranReading }},

	{"morning_adhkar", "Morning adhkar", GroupAdhkar, func(r *Record) *bool { return &r.MorningAdhkar }},
	{"evening_adhkar", "Evening adhkar", GroupAdhkar, func(r *Record) *bool { return &r.EveningAdhkar }},
	{"dua_before_iftar", "Dua before iftar", GroupAdhkar, func(r *Record) *bool { return &r.DuaBeforeIftar }},

	{"ai_study_session", "Study session", GroupStudy, func(r *Record) *bool { return &r.AIStudySession }},
}

// TextField describes one free-text input of the tracker form.
type TextField struct {
	Name  string
	Label string
	Group Group
	ptr   func(*Record) **string
}

// TextFields lists the free-text inputs. Each is shown after the checkboxes
// of its group.
var TextFields = []TextField{
	{"juz_read", "Juz read", GroupQuran, func(r *Record) **string { return &r.JuzRead }},
}

var fieldIndex = func() map[string]Field {
	m := make(map[string]Field, len(Fields))
	for _, f := range Fields {
		m[f.Name] = f
	}
	return m
}()

// Bool returns the value of the named boolean field.
func (r *Record) Bool(name string) bool {
	f, ok := fieldIndex[name]
	if !ok {
		return false
	}
	return *f.ptr(r)
}

// Set applies value to the named field locally, the same change Update sends
// to the backend.
func (r *Record) Set(name string, value any) error {
	if f, ok := fieldIndex[name]; ok {
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("field %q: want bool, got %T", name, value)
		}
		*f.ptr(r) = b
		return nil
	}

	switch name {
	case "juz_read", "daily_journal", "ai_encouraging_message":
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("field %q: want string, got %T", name, value)
		}
		switch name {
		case "juz_read":
			r.JuzRead = &s
		case "daily_journal":
			r.DailyJournal = &s
		default:
			r.AIEncouragingMessage = &s
		}
		return nil
	case "sentiment_score":
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("field %q: want float64, got %T", name, value)
		}
		r.SentimentScore = &v
		return nil
	}
	return fmt.Errorf("unknown field %q", name)
}

// Progress is the rounded percentage of checked boolean fields.
func (r *Record) Progress() int {
	checked := 0
	for _, f := range Fields {
		if *f.ptr(r) {
			checked++
		}
	}
	return int(math.Round(float64(checked) / float64(len(Fields)) * 100))
}

// Text returns the value of the named text field, or "" when unset.
func (r *Record) Text(name string) string {
	for _, f := range TextFields {
		if f.Name == name {
			if p := *f.ptr(r); p != nil {
				return *p
			}
			return ""
		}
	}
	return ""
}

// Journal returns the journal text, or "" when unset.
func (r *Record) Journal() string {
	if r.DailyJournal == nil {
		return ""
	}
	return *r.DailyJournal
}

// Feedback returns the AI message, or "" when unset.
func (r *Record) Feedback() string {
	if r.AIEncouragingMessage == nil {
		return ""
	}
	return *r.AIEncouragingMessage
}
