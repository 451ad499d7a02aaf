package forest

import "sort"

// Forecast is an ordered, sparse list of weather changes.
// The zero value is not usable; build one with NewForecast.
type Forecast struct {
	entries []Entry
}

// NewForecast validates and copies entries.
// Returns ErrEmptyForecast for no entries and ErrUnorderedForecast when
// days do not strictly increase.
func NewForecast(entries []Entry) (Forecast, error) {
	if len(entries) == 0 {
		return Forecast{}, ErrEmptyForecast
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Day <= entries[i-1].Day {
			return Forecast{}, ErrUnorderedForecast
		}
	}
	out := make([]Entry, len(entries))
	copy(out, entries)

	return Forecast{entries: out}, nil
}

// Entries returns a copy of the forecast entries.
func (fc Forecast) Entries() []Entry {
	out := make([]Entry, len(fc.entries))
	copy(out, fc.entries)

	return out
}

// Resolve returns the weather in effect on day by forward-filling the
// forecast: the most recent entry with Day <= day wins. Changed reports
// whether that entry is for day itself.
//
// Days before the first entry take the first entry's weather with
// Changed=false. Days past the last entry keep the last weather.
//
// Complexity: O(log n).
func (fc Forecast) Resolve(day int) Conditions {
	if len(fc.entries) == 0 {
		return Conditions{Weather: Rain}
	}
	// first entry strictly after day
	k := sort.Search(len(fc.entries), func(i int) bool {
		return fc.entries[i].Day > day
	})
	if k == 0 {
		return Conditions{Weather: fc.entries[0].Weather}
	}
	e := fc.entries[k-1]

	return Conditions{Weather: e.Weather, Changed: e.Day == day}
}
