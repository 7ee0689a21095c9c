package models

import (
	"time"
)

// Recognized age-bracket literals for the analytics filter.
const (
	AgeGroupUnder18 = "<18"
	AgeGroup18To40  = "18-40"
	AgeGroupOver40  = ">40"
)

// ClickFilter holds the conjunctive predicates applied to the join of
// feature_clicks and users. Nil/empty fields mean "no filter".
type ClickFilter struct {
	StartDate *time.Time // timestamp >= StartDate, inclusive
	EndDate   *time.Time // timestamp <= EndDate, inclusive
	Gender    string     // exact match on users.gender
	AgeGroup  string     // one of the AgeGroup* literals; anything else is ignored
}

// FeatureCount is one bar-chart row: total clicks for a feature name.
type FeatureCount struct {
	FeatureName string `json:"feature_name" db:"feature_name"`
	Count       int64  `json:"count" db:"count"`
}

// DateCount is one line-chart row: clicks per calendar day for the
// selected feature, time-of-day truncated.
type DateCount struct {
	Date  string `json:"date" db:"date"`
	Count int64  `json:"count" db:"count"`
}
