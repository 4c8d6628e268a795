package model

import "time"

// Bar is a single daily observation in a price series.
type Bar struct {
	Time   time.Time
	Close  float64
	Volume float64
}

// PriceSeries holds time-ordered observations for one instrument.
// Bars are strictly increasing by timestamp with no duplicates. The series
// is owned by the caller that fetched it and lives for one run only.
type PriceSeries struct {
	Symbol    string
	Bars      []Bar
	FetchedAt time.Time
}

// Len returns the number of observations.
func (s *PriceSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Bars)
}

// Closes returns the close prices in series order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// Last returns the most recent observation. The series must be non-empty.
func (s *PriceSeries) Last() Bar {
	return s.Bars[len(s.Bars)-1]
}
