package model

import "fmt"

// IndicatorQuery identifies one country/indicator time series and the
// year range to fetch for it.
type IndicatorQuery struct {
	CountryCode   string // ISO alpha-2 or alpha-3, e.g. "US", "CAN"
	IndicatorCode string // World Bank dotted code, e.g. "NY.GDP.MKTP.CD"
	StartYear     int
	EndYear       int
}

// Validate checks that the query is well formed before it is sent anywhere.
func (q IndicatorQuery) Validate() error {
	if q.CountryCode == "" {
		return fmt.Errorf("country code is required")
	}
	if q.IndicatorCode == "" {
		return fmt.Errorf("indicator code is required")
	}
	if q.StartYear > q.EndYear {
		return fmt.Errorf("start year %d is after end year %d", q.StartYear, q.EndYear)
	}
	return nil
}

// DateRange returns the year range in the API's "start:end" form.
func (q IndicatorQuery) DateRange() string {
	return fmt.Sprintf("%d:%d", q.StartYear, q.EndYear)
}

// Sample is one cleaned observation: a year and its numeric value.
type Sample struct {
	Year  int
	Value float64
}

// Series is a sequence of samples ordered ascending by year with no
// duplicate years. It is built fresh per query and not mutated afterwards.
type Series []Sample

// Years returns the sample years in series order.
func (s Series) Years() []int {
	years := make([]int, len(s))
	for i, sample := range s {
		years[i] = sample.Year
	}
	return years
}

// Values returns the sample values in series order.
func (s Series) Values() []float64 {
	values := make([]float64, len(s))
	for i, sample := range s {
		values[i] = sample.Value
	}
	return values
}
