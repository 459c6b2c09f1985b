package domain

import "strings"

type LifeStage string

const (
	StagePuppy  LifeStage = "Puppy"
	StageAdult  LifeStage = "Adult"
	StageSenior LifeStage = "Senior"
)

type ActivityLevel string

const (
	ActivityLow      ActivityLevel = "Low"
	ActivityNormal   ActivityLevel = "Normal"
	ActivityHigh     ActivityLevel = "High"
	ActivityAthletic ActivityLevel = "Athletic/Working"
)

// ActivityLevels is the canonical ordering used by selectors and validation.
var ActivityLevels = []ActivityLevel{ActivityLow, ActivityNormal, ActivityHigh, ActivityAthletic}

// ParseActivityLevel accepts the display value or a short alias
// ("athletic", "working"), case-insensitively.
func ParseActivityLevel(s string) (ActivityLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return ActivityLow, true
	case "normal":
		return ActivityNormal, true
	case "high":
		return ActivityHigh, true
	case "athletic/working", "athletic", "working":
		return ActivityAthletic, true
	}
	return "", false
}

type Category string

const (
	CategoryMeat    Category = "Meat"
	CategoryVeg     Category = "Veg"
	CategoryCarb    Category = "Carb"
	CategoryOil     Category = "Oil"
	CategoryTreat   Category = "Treat"
	CategoryUnknown Category = "Unknown"
)

// Categories lists the catalog categories in display order.
var Categories = []Category{CategoryMeat, CategoryVeg, CategoryCarb, CategoryOil, CategoryTreat}

type PreferenceLabel string

const (
	PrefDislike PreferenceLabel = "Dislike"
	PrefNeutral PreferenceLabel = "Neutral"
	PrefLike    PreferenceLabel = "Like"
	PrefLove    PreferenceLabel = "Love"
)

// PreferenceLabels is ordered by score.
var PreferenceLabels = []PreferenceLabel{PrefDislike, PrefNeutral, PrefLike, PrefLove}

// Score maps a label onto the 0..3 ordinal scale. Unrecognized labels count
// as Neutral.
func (p PreferenceLabel) Score() int {
	switch p {
	case PrefDislike:
		return 0
	case PrefLike:
		return 2
	case PrefLove:
		return 3
	default:
		return 1
	}
}

// ParsePreferenceLabel matches labels case-insensitively.
func ParsePreferenceLabel(s string) (PreferenceLabel, bool) {
	for _, l := range PreferenceLabels {
		if strings.EqualFold(string(l), s) {
			return l, true
		}
	}
	return "", false
}
