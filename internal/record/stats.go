package record

// Summary aggregates a window of records for the stats view.
type Summary struct {
	Days int
	// Rates maps each boolean field name to its completion rate in [0,1].
	Rates map[string]float64
	// SunnahDays counts days on which all four Sunnah prayers were done.
	SunnahDays  int
	AvgProgress float64
}

// Summarize computes completion rates over recs.
func Summarize(recs []Record) Summary {
	s := Summary{Days: len(recs), Rates: make(map[string]float64, len(Fields))}
	if len(recs) == 0 {
		return s
	}

	counts := make(map[string]int, len(Fields))
	var progress int
	for i := range recs {
		r := &recs[i]
		for _, f := range Fields {
			if *f.ptr(r) {
				counts[f.Name]++
			}
		}
		if r.FajrSunnah && r.DhuhrSunnah && r.MaghribSunnah && r.IshaSunnah {
			s.SunnahDays++
		}
		progress += r.Progress()
	}
	for _, f := range Fields {
		s.Rates[f.Name] = float64(counts[f.Name]) / float64(len(recs))
	}
	s.AvgProgress = float64(progress) / float64(len(recs))
	return s
}
